package app

import (
	"context"
	"errors"
	"strings"
	"time"

	"ifjourney/internal/domain"

	"github.com/google/uuid"
)

// WorkoutService encapsulates the per-day workout log use cases.
type WorkoutService struct {
	repo domain.WorkoutRepository
	now  func() time.Time
}

// NewWorkoutService creates a WorkoutService backed by the given repository.
func NewWorkoutService(repo domain.WorkoutRepository) *WorkoutService {
	return &WorkoutService{repo: repo, now: time.Now}
}

// List returns the workouts logged for one day, in insertion order.
func (s *WorkoutService) List(ctx context.Context, email, date string) ([]domain.WorkoutEntry, error) {
	return s.repo.Workouts(ctx, email, date)
}

// Add appends a workout to the day named by date and returns the stored
// entry.
func (s *WorkoutService) Add(ctx context.Context, email, date, workoutType string, durationMinutes, caloriesBurned int) (*domain.WorkoutEntry, error) {
	workoutType = strings.TrimSpace(workoutType)
	if workoutType == "" {
		return nil, errors.New("workout type is required")
	}
	if durationMinutes <= 0 {
		return nil, errors.New("duration must be > 0 minutes")
	}
	if caloriesBurned < 0 {
		return nil, errors.New("caloriesBurned must be >= 0")
	}

	entry := domain.WorkoutEntry{
		ID:             uuid.NewString(),
		Date:           date,
		Type:           workoutType,
		Duration:       durationMinutes,
		CaloriesBurned: caloriesBurned,
		CompletedAt:    s.now().UTC(),
	}
	if err := s.repo.AppendWorkout(ctx, email, entry); err != nil {
		return nil, err
	}
	return &entry, nil
}

// TotalBurned sums the calories burned for one day.
func (s *WorkoutService) TotalBurned(ctx context.Context, email, date string) (int, error) {
	workouts, err := s.repo.Workouts(ctx, email, date)
	if err != nil {
		return 0, err
	}
	var total int
	for _, w := range workouts {
		total += w.CaloriesBurned
	}
	return total, nil
}
