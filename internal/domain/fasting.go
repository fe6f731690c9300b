package domain

import "time"

// Fasting session statuses.
const (
	StatusActive    = "active"
	StatusPaused    = "paused"
	StatusCompleted = "completed"
)

// FastingSession is the single fasting timer record for a user. Absence of
// the record means no session exists; its presence is the "in progress or
// last session" signal.
type FastingSession struct {
	Method    string    `json:"method"`
	StartTime time.Time `json:"startTime"`
	Duration  int       `json:"duration"`
	Status    string    `json:"status"`
	// PausedTime is the remaining minutes captured at pause. It is set only
	// while Status is StatusPaused.
	PausedTime *float64 `json:"pausedTime,omitempty"`
}

// ElapsedMinutes returns the wall-clock minutes since the session started.
func (s *FastingSession) ElapsedMinutes(now time.Time) float64 {
	return now.Sub(s.StartTime).Minutes()
}

// RemainingMinutes returns the planned minutes left. While paused it is
// frozen at the value captured by the pause; once completed it is zero.
func (s *FastingSession) RemainingMinutes(now time.Time) float64 {
	switch s.Status {
	case StatusPaused:
		if s.PausedTime != nil {
			return *s.PausedTime
		}
		return 0
	case StatusCompleted:
		return 0
	default:
		remaining := float64(s.Duration) - s.ElapsedMinutes(now)
		if remaining < 0 {
			return 0
		}
		return remaining
	}
}
