package domain

import "time"

// MealEntry is one logged meal. Entries live in per-(user, day) lists and
// keep their insertion order.
type MealEntry struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Calories  int       `json:"calories"`
	Timestamp time.Time `json:"timestamp"`
}

// WorkoutEntry is one logged workout, partitioned like meals. Duration is in
// minutes.
type WorkoutEntry struct {
	ID             string    `json:"id"`
	Date           string    `json:"date"`
	Type           string    `json:"type"`
	Duration       int       `json:"duration"`
	CaloriesBurned int       `json:"caloriesBurned"`
	CompletedAt    time.Time `json:"completedAt"`
}
