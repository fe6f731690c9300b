package store

import (
	"fmt"
	"strings"
	"time"
)

// Every record key carries this prefix so the backing store can be shared
// with other applications without collisions.
const keyPrefix = "ifjourney"

func usersKey() string {
	return keyPrefix + "_users"
}

func profileKey(email string) string {
	return fmt.Sprintf("%s_profile_%s", keyPrefix, normalizeEmail(email))
}

func fastingKey(email string) string {
	return fmt.Sprintf("%s_fasting_%s", keyPrefix, normalizeEmail(email))
}

func mealsKey(email, date string) string {
	return fmt.Sprintf("%s_meal_%s_%s", keyPrefix, normalizeEmail(email), date)
}

func workoutsKey(email, date string) string {
	return fmt.Sprintf("%s_workout_%s_%s", keyPrefix, normalizeEmail(email), date)
}

func loginSessionKey(token string) string {
	return fmt.Sprintf("%s_session_%s", keyPrefix, token)
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// TodayDate returns t formatted as the YYYY-MM-DD partition key.
func TodayDate(t time.Time) string {
	return t.Format("2006-01-02")
}
