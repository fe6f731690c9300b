package domain

import "context"

// Repository ports over the record store. Implementations persist each
// entity kind under its own deterministic key; every save is a whole-value
// overwrite with last-writer-wins semantics.

// UserRepository is the port for the global user list.
type UserRepository interface {
	Users(ctx context.Context) ([]User, error)
	SaveUsers(ctx context.Context, users []User) error
	AppendUser(ctx context.Context, user User) error
	FindUser(ctx context.Context, email string) (*User, error)
}

// ProfileRepository is the port for per-user body profiles.
type ProfileRepository interface {
	Profile(ctx context.Context, email string) (*Profile, error)
	SaveProfile(ctx context.Context, email string, p Profile) error
}

// FastingRepository is the port for the single fasting record per user.
// A nil record means no session exists.
type FastingRepository interface {
	FastingSession(ctx context.Context, email string) (*FastingSession, error)
	SaveFastingSession(ctx context.Context, email string, sess FastingSession) error
	DeleteFastingSession(ctx context.Context, email string) error
}

// MealRepository is the port for date-partitioned meal lists.
type MealRepository interface {
	Meals(ctx context.Context, email, date string) ([]MealEntry, error)
	SaveMeals(ctx context.Context, email, date string, meals []MealEntry) error
}

// WorkoutRepository is the port for date-partitioned workout lists.
type WorkoutRepository interface {
	Workouts(ctx context.Context, email, date string) ([]WorkoutEntry, error)
	SaveWorkouts(ctx context.Context, email, date string, workouts []WorkoutEntry) error
	AppendWorkout(ctx context.Context, email string, w WorkoutEntry) error
}

// LoginSessionRepository is the port for token-keyed login markers.
type LoginSessionRepository interface {
	LoginSession(ctx context.Context, token string) (*LoginSession, error)
	SaveLoginSession(ctx context.Context, sess LoginSession) error
	DeleteLoginSession(ctx context.Context, token string) error
}
