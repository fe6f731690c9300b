package app

import (
	"context"
	"testing"

	"ifjourney/internal/adapter/memory"
	"ifjourney/internal/domain"
	"ifjourney/internal/store"
)

func TestMealAddListRemove(t *testing.T) {
	ctx := context.Background()
	svc := NewMealService(store.New(memory.New()))
	email, date := "ann@x.com", "2024-01-01"

	first, err := svc.Add(ctx, email, date, "oatmeal", 300)
	if err != nil {
		t.Fatalf("Add: %v", err)
	}
	if first.ID == "" {
		t.Error("expected generated id")
	}
	second, _ := svc.Add(ctx, email, date, "salad", 250)

	meals, err := svc.List(ctx, email, date)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(meals) != 2 || meals[0].Name != "oatmeal" || meals[1].Name != "salad" {
		t.Errorf("insertion order lost: %+v", meals)
	}

	// The neighbouring date is a separate partition.
	other, _ := svc.List(ctx, email, "2024-01-02")
	if len(other) != 0 {
		t.Errorf("expected empty list, got %+v", other)
	}

	total, _ := svc.TotalCalories(ctx, email, date)
	if total != 550 {
		t.Errorf("total = %d, want 550", total)
	}

	removed, err := svc.Remove(ctx, email, date, first.ID)
	if err != nil || !removed {
		t.Fatalf("Remove = %v, %v", removed, err)
	}
	removed, _ = svc.Remove(ctx, email, date, "no-such-id")
	if removed {
		t.Error("expected false for unknown id")
	}

	meals, _ = svc.List(ctx, email, date)
	if len(meals) != 1 || meals[0].ID != second.ID {
		t.Errorf("after remove: %+v", meals)
	}
}

func TestMealValidation(t *testing.T) {
	ctx := context.Background()
	svc := NewMealService(store.New(memory.New()))

	if _, err := svc.Add(ctx, "a@x.com", "2024-01-01", "  ", 100); err == nil {
		t.Error("expected error for blank name")
	}
	if _, err := svc.Add(ctx, "a@x.com", "2024-01-01", "soup", -5); err == nil {
		t.Error("expected error for negative calories")
	}
}

func TestMealReplaceAll(t *testing.T) {
	ctx := context.Background()
	svc := NewMealService(store.New(memory.New()))
	email, date := "ann@x.com", "2024-01-01"

	_, _ = svc.Add(ctx, email, date, "oatmeal", 300)
	err := svc.ReplaceAll(ctx, email, date, []domain.MealEntry{
		{Name: "eggs", Calories: 200},
		{ID: "keep-me", Name: "toast", Calories: 120},
	})
	if err != nil {
		t.Fatalf("ReplaceAll: %v", err)
	}

	meals, _ := svc.List(ctx, email, date)
	if len(meals) != 2 {
		t.Fatalf("expected 2 meals, got %d", len(meals))
	}
	if meals[0].ID == "" || meals[0].Timestamp.IsZero() {
		t.Errorf("missing id/timestamp not filled: %+v", meals[0])
	}
	if meals[1].ID != "keep-me" {
		t.Errorf("existing id replaced: %+v", meals[1])
	}
}

func TestWorkoutAddAndTotals(t *testing.T) {
	ctx := context.Background()
	svc := NewWorkoutService(store.New(memory.New()))
	email, date := "ann@x.com", "2024-01-01"

	if _, err := svc.Add(ctx, email, date, "run", 30, 280); err != nil {
		t.Fatalf("Add: %v", err)
	}
	if _, err := svc.Add(ctx, email, date, "lift", 45, 180); err != nil {
		t.Fatalf("Add: %v", err)
	}

	workouts, err := svc.List(ctx, email, date)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(workouts) != 2 || workouts[0].Type != "run" || workouts[1].Type != "lift" {
		t.Errorf("append order lost: %+v", workouts)
	}
	if workouts[0].Date != date {
		t.Errorf("date = %q, want %q", workouts[0].Date, date)
	}

	total, _ := svc.TotalBurned(ctx, email, date)
	if total != 460 {
		t.Errorf("total burned = %d, want 460", total)
	}

	// Other dates and users are isolated.
	other, _ := svc.List(ctx, email, "2024-01-02")
	if len(other) != 0 {
		t.Errorf("expected empty list, got %+v", other)
	}
}

func TestWorkoutValidation(t *testing.T) {
	ctx := context.Background()
	svc := NewWorkoutService(store.New(memory.New()))

	if _, err := svc.Add(ctx, "a@x.com", "2024-01-01", "", 30, 100); err == nil {
		t.Error("expected error for blank type")
	}
	if _, err := svc.Add(ctx, "a@x.com", "2024-01-01", "run", 0, 100); err == nil {
		t.Error("expected error for zero duration")
	}
	if _, err := svc.Add(ctx, "a@x.com", "2024-01-01", "run", 30, -1); err == nil {
		t.Error("expected error for negative calories")
	}
}
