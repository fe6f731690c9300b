package app

import (
	"context"
	"errors"
	"time"

	"ifjourney/internal/domain"
)

var (
	// ErrNoActiveSession indicates there is no fasting record to act on.
	ErrNoActiveSession = errors.New("no fasting session exists")
	// ErrInvalidTransition indicates the session is not in a state that
	// permits the requested transition.
	ErrInvalidTransition = errors.New("invalid fasting state transition")
)

// FastingService owns the fasting-session state machine. The timer is never
// advanced by a running clock: elapsed and remaining time are derived on
// demand from the stored start time and planned duration.
type FastingService struct {
	repo domain.FastingRepository
	now  func() time.Time
}

// NewFastingService creates a FastingService backed by the given repository.
func NewFastingService(repo domain.FastingRepository) *FastingService {
	return &FastingService{repo: repo, now: time.Now}
}

// FastingStatus is the on-demand view of a session returned by Current.
type FastingStatus struct {
	Session          domain.FastingSession `json:"session"`
	ElapsedMinutes   float64               `json:"elapsedMinutes"`
	RemainingMinutes float64               `json:"remainingMinutes"`
}

// Current returns the session with derived timing, or nil if none exists.
func (s *FastingService) Current(ctx context.Context, email string) (*FastingStatus, error) {
	sess, err := s.repo.FastingSession(ctx, email)
	if err != nil {
		return nil, err
	}
	if sess == nil {
		return nil, nil
	}
	now := s.now()
	return &FastingStatus{
		Session:          *sess,
		ElapsedMinutes:   sess.ElapsedMinutes(now),
		RemainingMinutes: sess.RemainingMinutes(now),
	}, nil
}

// Start begins a new active session. Any existing record is replaced
// without error: last start wins.
func (s *FastingService) Start(ctx context.Context, email, method string, durationMinutes int) (*domain.FastingSession, error) {
	if method == "" {
		return nil, errors.New("method is required")
	}
	if durationMinutes <= 0 {
		return nil, errors.New("duration must be > 0 minutes")
	}
	sess := domain.FastingSession{
		Method:    method,
		StartTime: s.now().UTC(),
		Duration:  durationMinutes,
		Status:    domain.StatusActive,
	}
	if err := s.repo.SaveFastingSession(ctx, email, sess); err != nil {
		return nil, err
	}
	return &sess, nil
}

// Pause freezes an active session, capturing the remaining minutes
// (clamped to zero) so the countdown can continue later.
func (s *FastingService) Pause(ctx context.Context, email string) (*domain.FastingSession, error) {
	sess, err := s.repo.FastingSession(ctx, email)
	if err != nil {
		return nil, err
	}
	if sess == nil {
		return nil, ErrNoActiveSession
	}
	if sess.Status != domain.StatusActive {
		return nil, ErrInvalidTransition
	}

	remaining := float64(sess.Duration) - sess.ElapsedMinutes(s.now())
	if remaining < 0 {
		remaining = 0
	}
	sess.PausedTime = &remaining
	sess.Status = domain.StatusPaused
	if err := s.repo.SaveFastingSession(ctx, email, *sess); err != nil {
		return nil, err
	}
	return sess, nil
}

// Resume reactivates a paused session. The start time is rebased so that
// elapsed-time accounting stays continuous regardless of how long the pause
// lasted.
func (s *FastingService) Resume(ctx context.Context, email string) (*domain.FastingSession, error) {
	sess, err := s.repo.FastingSession(ctx, email)
	if err != nil {
		return nil, err
	}
	if sess == nil {
		return nil, ErrNoActiveSession
	}
	if sess.Status != domain.StatusPaused {
		return nil, ErrInvalidTransition
	}

	var remaining float64
	if sess.PausedTime != nil {
		remaining = *sess.PausedTime
	}
	consumed := float64(sess.Duration) - remaining
	sess.StartTime = s.now().UTC().Add(-time.Duration(consumed * float64(time.Minute)))
	sess.PausedTime = nil
	sess.Status = domain.StatusActive
	if err := s.repo.SaveFastingSession(ctx, email, *sess); err != nil {
		return nil, err
	}
	return sess, nil
}

// Complete finishes an active or paused session. The record is kept for
// historical display until Clear is called.
func (s *FastingService) Complete(ctx context.Context, email string) (*domain.FastingSession, error) {
	sess, err := s.repo.FastingSession(ctx, email)
	if err != nil {
		return nil, err
	}
	if sess == nil {
		return nil, ErrNoActiveSession
	}
	if sess.Status == domain.StatusCompleted {
		return nil, ErrInvalidTransition
	}

	sess.Status = domain.StatusCompleted
	sess.PausedTime = nil
	if err := s.repo.SaveFastingSession(ctx, email, *sess); err != nil {
		return nil, err
	}
	return sess, nil
}

// Clear deletes the session record unconditionally.
func (s *FastingService) Clear(ctx context.Context, email string) error {
	return s.repo.DeleteFastingSession(ctx, email)
}
