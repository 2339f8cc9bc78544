package habit

import (
	"errors"
	"testing"
	"time"

	"github.com/stridecoach/stride/internal/models"
)

func testHabit(freq models.Frequency, progress map[string]models.ProgressEntry) models.Habit {
	return models.Habit{
		ID:        "h1",
		Name:      "Meditate",
		Frequency: freq,
		Progress:  progress,
	}
}

// now is mid-day on Wednesday 2024-01-17
var testNow = time.Date(2024, 1, 17, 14, 30, 0, 0, time.UTC)

func TestToggleCompletion_CompletesAndCountsStreak(t *testing.T) {
	h := testHabit(daily, completedDays("2024-01-15", "2024-01-16"))

	updated, outcome, err := ToggleCompletion(h, "2024-01-17", testNow)
	if err != nil {
		t.Fatalf("ToggleCompletion() error = %v", err)
	}
	if !outcome.Completed {
		t.Error("outcome.Completed = false, want true")
	}
	if outcome.NewStreak != 3 {
		t.Errorf("outcome.NewStreak = %d, want 3", outcome.NewStreak)
	}
	if !outcome.IsNewRecord {
		t.Error("outcome.IsNewRecord = false, want true for a first record")
	}
	if updated.LongestStreak != 3 {
		t.Errorf("LongestStreak = %d, want 3", updated.LongestStreak)
	}
	entry := updated.Progress["2024-01-17"]
	if !entry.Completed || entry.Timestamp != testNow.UnixMilli() {
		t.Errorf("progress entry = %+v, want completed with toggle timestamp", entry)
	}
}

func TestToggleCompletion_FutureDateRejected(t *testing.T) {
	h := testHabit(daily, completedDays("2024-01-16"))

	updated, _, err := ToggleCompletion(h, "2024-01-18", testNow)
	var futureErr *FutureDateError
	if !errors.As(err, &futureErr) {
		t.Fatalf("ToggleCompletion() error = %v, want FutureDateError", err)
	}
	if _, ok := updated.Progress["2024-01-18"]; ok {
		t.Error("progress was mutated by a rejected toggle")
	}
	if len(updated.Progress) != len(h.Progress) {
		t.Error("progress map changed size after rejected toggle")
	}
}

func TestToggleCompletion_DoubleToggleRestoresState(t *testing.T) {
	h := testHabit(daily, completedDays("2024-01-15", "2024-01-16"))
	originalStreak := ComputeCurrentStreak(h.Progress, h.Frequency, testNow)

	once, _, err := ToggleCompletion(h, "2024-01-17", testNow)
	if err != nil {
		t.Fatalf("first toggle: %v", err)
	}
	twice, outcome, err := ToggleCompletion(once, "2024-01-17", testNow)
	if err != nil {
		t.Fatalf("second toggle: %v", err)
	}

	if outcome.Completed {
		t.Error("second toggle should un-complete the day")
	}
	if twice.Progress["2024-01-17"].Completed {
		t.Error("progress flag should be back to incomplete")
	}
	if twice.CurrentStreak != originalStreak {
		t.Errorf("CurrentStreak = %d after double toggle, want %d", twice.CurrentStreak, originalStreak)
	}
}

func TestToggleCompletion_LongestStreakNeverDecreases(t *testing.T) {
	h := testHabit(daily, nil)
	days := []string{"2024-01-13", "2024-01-14", "2024-01-15", "2024-01-16", "2024-01-17"}

	var err error
	for _, day := range days {
		h, _, err = ToggleCompletion(h, day, testNow)
		if err != nil {
			t.Fatalf("toggle %s: %v", day, err)
		}
		if h.LongestStreak < h.CurrentStreak {
			t.Fatalf("LongestStreak %d < CurrentStreak %d after toggling %s", h.LongestStreak, h.CurrentStreak, day)
		}
	}
	if h.LongestStreak != 5 {
		t.Errorf("LongestStreak = %d, want 5", h.LongestStreak)
	}

	// Un-complete the middle day: current streak collapses, record stands.
	h, _, err = ToggleCompletion(h, "2024-01-15", testNow)
	if err != nil {
		t.Fatalf("un-complete: %v", err)
	}
	if h.CurrentStreak != 2 {
		t.Errorf("CurrentStreak = %d after breaking the chain, want 2", h.CurrentStreak)
	}
	if h.LongestStreak != 5 {
		t.Errorf("LongestStreak = %d, want 5 to be retained", h.LongestStreak)
	}
}

func TestToggleCompletion_IsNewRecordOnlyOnImprovement(t *testing.T) {
	h := testHabit(daily, completedDays("2024-01-16"))
	h.LongestStreak = 10

	h, outcome, err := ToggleCompletion(h, "2024-01-17", testNow)
	if err != nil {
		t.Fatalf("ToggleCompletion() error = %v", err)
	}
	if outcome.IsNewRecord {
		t.Error("IsNewRecord = true, want false when below the historical record")
	}
	if h.LongestStreak != 10 {
		t.Errorf("LongestStreak = %d, want 10", h.LongestStreak)
	}
}

func TestToggleCompletion_IneligibleDayAllowed(t *testing.T) {
	// The engine does not gate toggles on eligibility; the UI does.
	h := testHabit(monWedFri, nil)

	h, outcome, err := ToggleCompletion(h, "2024-01-16", testNow) // a Tuesday
	if err != nil {
		t.Fatalf("ToggleCompletion() error = %v", err)
	}
	if !outcome.Completed {
		t.Error("ineligible-day toggle should still record completion")
	}
	if h.CurrentStreak != 0 {
		t.Errorf("CurrentStreak = %d, want 0: ineligible completions never count", h.CurrentStreak)
	}
}

func TestToggleCompletion_MalformedFrequency(t *testing.T) {
	h := testHabit(models.Frequency{Type: models.FrequencyWeekly}, completedDays("2024-01-16"))

	updated, _, err := ToggleCompletion(h, "2024-01-16", testNow)
	var malformed *MalformedFrequencyError
	if !errors.As(err, &malformed) {
		t.Fatalf("ToggleCompletion() error = %v, want MalformedFrequencyError", err)
	}
	if updated.CurrentStreak != h.CurrentStreak || len(updated.Progress) != len(h.Progress) {
		t.Error("habit changed despite malformed frequency")
	}
}

func TestToggleCompletion_InvalidDate(t *testing.T) {
	h := testHabit(daily, nil)
	if _, _, err := ToggleCompletion(h, "01/17/2024", testNow); err == nil {
		t.Error("expected error for malformed date string")
	}
}
