package app

import (
	"context"
	"errors"
	"strings"
	"time"

	"ifjourney/internal/domain"

	"github.com/google/uuid"
)

// MealService encapsulates the per-day meal log use cases. Lists are read,
// modified and written back whole; the store does not support true appends.
type MealService struct {
	repo domain.MealRepository
	now  func() time.Time
}

// NewMealService creates a MealService backed by the given repository.
func NewMealService(repo domain.MealRepository) *MealService {
	return &MealService{repo: repo, now: time.Now}
}

// List returns the meals logged for one day, in insertion order.
func (s *MealService) List(ctx context.Context, email, date string) ([]domain.MealEntry, error) {
	return s.repo.Meals(ctx, email, date)
}

// Add appends a meal to the day's list and returns the stored entry.
func (s *MealService) Add(ctx context.Context, email, date, name string, calories int) (*domain.MealEntry, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, errors.New("meal name is required")
	}
	if calories < 0 {
		return nil, errors.New("calories must be >= 0")
	}

	meals, err := s.repo.Meals(ctx, email, date)
	if err != nil {
		return nil, err
	}
	entry := domain.MealEntry{
		ID:        uuid.NewString(),
		Name:      name,
		Calories:  calories,
		Timestamp: s.now().UTC(),
	}
	if err := s.repo.SaveMeals(ctx, email, date, append(meals, entry)); err != nil {
		return nil, err
	}
	return &entry, nil
}

// Remove deletes the meal with the given id from the day's list, reporting
// whether anything was removed.
func (s *MealService) Remove(ctx context.Context, email, date, id string) (bool, error) {
	meals, err := s.repo.Meals(ctx, email, date)
	if err != nil {
		return false, err
	}
	kept := meals[:0]
	for _, m := range meals {
		if m.ID != id {
			kept = append(kept, m)
		}
	}
	if len(kept) == len(meals) {
		return false, nil
	}
	if err := s.repo.SaveMeals(ctx, email, date, kept); err != nil {
		return false, err
	}
	return true, nil
}

// ReplaceAll overwrites the day's list wholesale. Entries without an id are
// assigned one.
func (s *MealService) ReplaceAll(ctx context.Context, email, date string, meals []domain.MealEntry) error {
	for i := range meals {
		if meals[i].ID == "" {
			meals[i].ID = uuid.NewString()
		}
		if meals[i].Timestamp.IsZero() {
			meals[i].Timestamp = s.now().UTC()
		}
	}
	return s.repo.SaveMeals(ctx, email, date, meals)
}

// TotalCalories sums the calories logged for one day.
func (s *MealService) TotalCalories(ctx context.Context, email, date string) (int, error) {
	meals, err := s.repo.Meals(ctx, email, date)
	if err != nil {
		return 0, err
	}
	var total int
	for _, m := range meals {
		total += m.Calories
	}
	return total, nil
}
