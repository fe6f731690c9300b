// Package store implements the typed record repository on top of the
// key-value port. All writes are whole-value overwrites of a single key;
// there are no transactions across keys and the last writer wins.
package store

import (
	"context"
	"strings"

	"ifjourney/internal/domain"
)

// Store gives typed CRUD access to every record kind.
type Store struct {
	kv domain.KeyValueStore
}

// New creates a Store backed by the given key-value store.
func New(kv domain.KeyValueStore) *Store {
	return &Store{kv: kv}
}

// Ensure the repository ports are met.
var (
	_ domain.UserRepository         = (*Store)(nil)
	_ domain.ProfileRepository      = (*Store)(nil)
	_ domain.FastingRepository      = (*Store)(nil)
	_ domain.MealRepository         = (*Store)(nil)
	_ domain.WorkoutRepository      = (*Store)(nil)
	_ domain.LoginSessionRepository = (*Store)(nil)
)

func getRecord[T any](ctx context.Context, kv domain.KeyValueStore, key string) (*T, error) {
	raw, ok, err := kv.Get(ctx, key)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, nil
	}
	var v T
	if !decode(raw, &v) {
		// Corrupt slot: degrade to absent rather than fail.
		return nil, nil
	}
	return &v, nil
}

func putRecord[T any](ctx context.Context, kv domain.KeyValueStore, key string, v T) error {
	raw, err := encode(v)
	if err != nil {
		return err
	}
	return kv.Set(ctx, key, raw)
}

func getList[T any](ctx context.Context, kv domain.KeyValueStore, key string) ([]T, error) {
	raw, ok, err := kv.Get(ctx, key)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, nil
	}
	var items []T
	if !decode(raw, &items) {
		return nil, nil
	}
	return items, nil
}

func putList[T any](ctx context.Context, kv domain.KeyValueStore, key string, items []T) error {
	if items == nil {
		items = []T{}
	}
	raw, err := encode(items)
	if err != nil {
		return err
	}
	return kv.Set(ctx, key, raw)
}

// --- Users ---

// Users returns every registered user.
func (s *Store) Users(ctx context.Context) ([]domain.User, error) {
	return getList[domain.User](ctx, s.kv, usersKey())
}

// SaveUsers overwrites the full user list.
func (s *Store) SaveUsers(ctx context.Context, users []domain.User) error {
	return putList(ctx, s.kv, usersKey(), users)
}

// AppendUser adds a user to the global list.
func (s *Store) AppendUser(ctx context.Context, user domain.User) error {
	users, err := s.Users(ctx)
	if err != nil {
		return err
	}
	return s.SaveUsers(ctx, append(users, user))
}

// FindUser returns the user with the given email, matched
// case-insensitively, or nil if none is registered.
func (s *Store) FindUser(ctx context.Context, email string) (*domain.User, error) {
	users, err := s.Users(ctx)
	if err != nil {
		return nil, err
	}
	for i := range users {
		if strings.EqualFold(users[i].Email, email) {
			return &users[i], nil
		}
	}
	return nil, nil
}

// --- Profile ---

// Profile returns the body-metrics profile for email, or nil if absent.
func (s *Store) Profile(ctx context.Context, email string) (*domain.Profile, error) {
	return getRecord[domain.Profile](ctx, s.kv, profileKey(email))
}

// SaveProfile overwrites the profile for email wholesale.
func (s *Store) SaveProfile(ctx context.Context, email string, p domain.Profile) error {
	return putRecord(ctx, s.kv, profileKey(email), p)
}

// --- Fasting session ---

// FastingSession returns the fasting record for email, or nil if none exists.
func (s *Store) FastingSession(ctx context.Context, email string) (*domain.FastingSession, error) {
	return getRecord[domain.FastingSession](ctx, s.kv, fastingKey(email))
}

// SaveFastingSession overwrites the fasting record for email.
func (s *Store) SaveFastingSession(ctx context.Context, email string, sess domain.FastingSession) error {
	return putRecord(ctx, s.kv, fastingKey(email), sess)
}

// DeleteFastingSession removes the fasting record for email.
func (s *Store) DeleteFastingSession(ctx context.Context, email string) error {
	return s.kv.Delete(ctx, fastingKey(email))
}

// --- Meals ---

// Meals returns the ordered meal list for one (email, date) partition.
func (s *Store) Meals(ctx context.Context, email, date string) ([]domain.MealEntry, error) {
	return getList[domain.MealEntry](ctx, s.kv, mealsKey(email, date))
}

// SaveMeals overwrites the meal list for one partition.
func (s *Store) SaveMeals(ctx context.Context, email, date string, meals []domain.MealEntry) error {
	return putList(ctx, s.kv, mealsKey(email, date), meals)
}

// --- Workouts ---

// Workouts returns the ordered workout list for one (email, date) partition.
func (s *Store) Workouts(ctx context.Context, email, date string) ([]domain.WorkoutEntry, error) {
	return getList[domain.WorkoutEntry](ctx, s.kv, workoutsKey(email, date))
}

// SaveWorkouts overwrites the workout list for one partition.
func (s *Store) SaveWorkouts(ctx context.Context, email, date string, workouts []domain.WorkoutEntry) error {
	return putList(ctx, s.kv, workoutsKey(email, date), workouts)
}

// AppendWorkout adds a workout to the partition named by its Date field.
func (s *Store) AppendWorkout(ctx context.Context, email string, w domain.WorkoutEntry) error {
	workouts, err := s.Workouts(ctx, email, w.Date)
	if err != nil {
		return err
	}
	return s.SaveWorkouts(ctx, email, w.Date, append(workouts, w))
}

// --- Login sessions ---

// LoginSession returns the login marker stored under token, or nil.
func (s *Store) LoginSession(ctx context.Context, token string) (*domain.LoginSession, error) {
	return getRecord[domain.LoginSession](ctx, s.kv, loginSessionKey(token))
}

// SaveLoginSession stores the login marker under its token.
func (s *Store) SaveLoginSession(ctx context.Context, sess domain.LoginSession) error {
	return putRecord(ctx, s.kv, loginSessionKey(sess.Token), sess)
}

// DeleteLoginSession removes the login marker for token.
func (s *Store) DeleteLoginSession(ctx context.Context, token string) error {
	return s.kv.Delete(ctx, loginSessionKey(token))
}
