package app

import (
	"context"
	"errors"
	"strings"
	"time"

	"ifjourney/internal/domain"
)

// ProfileService encapsulates the body-metrics profile use cases.
type ProfileService struct {
	repo domain.ProfileRepository
	now  func() time.Time
}

// NewProfileService creates a ProfileService backed by the given repository.
func NewProfileService(repo domain.ProfileRepository) *ProfileService {
	return &ProfileService{repo: repo, now: time.Now}
}

// Get returns the stored profile for email, or nil if none was saved. BMR
// and age are the snapshots taken at save time.
func (s *ProfileService) Get(ctx context.Context, email string) (*domain.Profile, error) {
	return s.repo.Profile(ctx, email)
}

// Save validates the inputs, derives the BMR and age snapshots, and
// overwrites the profile wholesale.
func (s *ProfileService) Save(ctx context.Context, email, name, gender, birthDate string, weightKg, heightCm float64) (*domain.Profile, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, errors.New("name is required")
	}
	if !domain.ValidGender(gender) {
		return nil, errors.New("gender must be \"L\" or \"P\"")
	}
	if weightKg <= 0 || heightCm <= 0 {
		return nil, errors.New("weight and height must be > 0")
	}

	now := s.now()
	age, err := domain.CalculateAge(birthDate, now)
	if err != nil {
		return nil, err
	}

	p := domain.Profile{
		Name:        name,
		Gender:      gender,
		BirthDate:   birthDate,
		Weight:      weightKg,
		Height:      heightCm,
		BMR:         domain.CalculateBMR(gender, weightKg, heightCm, age),
		Age:         age,
		CompletedAt: now.UTC(),
	}
	if err := s.repo.SaveProfile(ctx, email, p); err != nil {
		return nil, err
	}
	return &p, nil
}
