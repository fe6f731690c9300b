package domain

import "time"

// Gender codes as stored in profiles.
const (
	GenderMale   = "L"
	GenderFemale = "P"
)

// Profile holds the body metrics for one user. There is at most one profile
// per email and saves replace it wholesale. BMR and Age are snapshots taken
// at save time, not recomputed on read.
type Profile struct {
	Name        string    `json:"name"`
	Gender      string    `json:"gender"`
	BirthDate   string    `json:"birthDate"`
	Weight      float64   `json:"weight"`
	Height      float64   `json:"height"`
	BMR         int       `json:"bmr"`
	Age         int       `json:"age"`
	CompletedAt time.Time `json:"completedAt"`
}

// ValidGender reports whether g is one of the recognised gender codes.
func ValidGender(g string) bool {
	return g == GenderMale || g == GenderFemale
}
