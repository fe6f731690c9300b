package domain

import (
	"fmt"
	"math"
	"time"
)

// CalculateBMR estimates the basal metabolic rate in kcal/day using the
// Harris-Benedict formulas, rounded to the nearest integer. Inputs are not
// validated here; that is the caller's job.
func CalculateBMR(gender string, weightKg, heightCm float64, age int) int {
	if gender == GenderMale {
		return int(math.Round(88.362 + 13.397*weightKg + 4.799*heightCm - 5.677*float64(age)))
	}
	return int(math.Round(447.593 + 9.247*weightKg + 3.098*heightCm - 4.330*float64(age)))
}

// CalculateAge returns the whole calendar years between birthDate
// (YYYY-MM-DD) and now, subtracting one if the birthday has not yet occurred
// this year. A future birthDate yields a negative age; only an unparseable
// date is an error.
func CalculateAge(birthDate string, now time.Time) (int, error) {
	birth, err := time.Parse("2006-01-02", birthDate)
	if err != nil {
		return 0, fmt.Errorf("invalid birth date %q: %w", birthDate, err)
	}
	age := now.Year() - birth.Year()
	if now.Month() < birth.Month() || (now.Month() == birth.Month() && now.Day() < birth.Day()) {
		age--
	}
	return age, nil
}
