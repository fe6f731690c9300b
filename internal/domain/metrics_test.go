package domain

import (
	"testing"
	"time"
)

func TestCalculateBMR(t *testing.T) {
	tests := []struct {
		name   string
		gender string
		weight float64
		height float64
		age    int
		want   int
	}{
		{"male", GenderMale, 70, 175, 30, 1696},
		{"female", GenderFemale, 60, 165, 25, 1405},
		{"male older", GenderMale, 82.5, 180, 45, 1802},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := CalculateBMR(tc.gender, tc.weight, tc.height, tc.age)
			if got != tc.want {
				t.Errorf("CalculateBMR(%q, %v, %v, %d) = %d, want %d",
					tc.gender, tc.weight, tc.height, tc.age, got, tc.want)
			}
		})
	}
}

func TestCalculateAge(t *testing.T) {
	tests := []struct {
		name  string
		birth string
		now   string
		want  int
	}{
		{"day before birthday", "2000-06-15", "2024-06-14", 23},
		{"on birthday", "2000-06-15", "2024-06-15", 24},
		{"later in year", "2000-06-15", "2024-12-01", 24},
		{"earlier month", "2000-06-15", "2024-03-01", 23},
		{"future birth date", "2030-01-01", "2024-06-01", -6},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			now, err := time.Parse("2006-01-02", tc.now)
			if err != nil {
				t.Fatal(err)
			}
			got, err := CalculateAge(tc.birth, now)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tc.want {
				t.Errorf("CalculateAge(%q) at %s = %d, want %d", tc.birth, tc.now, got, tc.want)
			}
		})
	}
}

func TestCalculateAge_InvalidDate(t *testing.T) {
	if _, err := CalculateAge("not-a-date", time.Now()); err == nil {
		t.Fatal("expected error for unparseable date")
	}
}

func TestFastingSessionRemaining(t *testing.T) {
	start := time.Date(2026, 1, 15, 8, 0, 0, 0, time.UTC)
	s := &FastingSession{Method: "16:8", StartTime: start, Duration: 960, Status: StatusActive}

	if got := s.ElapsedMinutes(start.Add(90 * time.Minute)); got != 90 {
		t.Errorf("ElapsedMinutes = %v, want 90", got)
	}
	if got := s.RemainingMinutes(start.Add(90 * time.Minute)); got != 870 {
		t.Errorf("RemainingMinutes = %v, want 870", got)
	}

	// Overshooting the planned duration clamps to zero.
	if got := s.RemainingMinutes(start.Add(2000 * time.Minute)); got != 0 {
		t.Errorf("RemainingMinutes after overshoot = %v, want 0", got)
	}

	// Paused sessions are frozen at the captured remainder.
	frozen := 500.0
	s.Status = StatusPaused
	s.PausedTime = &frozen
	if got := s.RemainingMinutes(start.Add(3000 * time.Minute)); got != 500 {
		t.Errorf("paused RemainingMinutes = %v, want 500", got)
	}

	s.Status = StatusCompleted
	if got := s.RemainingMinutes(start); got != 0 {
		t.Errorf("completed RemainingMinutes = %v, want 0", got)
	}
}
