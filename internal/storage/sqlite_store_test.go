package storage

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/stridecoach/stride/internal/models"
)

func newTestSQLiteStore(t *testing.T) *SQLiteStore {
	t.Helper()
	store := NewSQLiteStore(filepath.Join(t.TempDir(), "stride.db"))
	if err := store.Init(); err != nil {
		t.Fatalf("Init() error = %v", err)
	}
	t.Cleanup(func() { _ = store.Close() })
	return store
}

func sampleHabit(name string) models.Habit {
	return models.Habit{
		ID:   uuid.New().String(),
		Name: name,
		Frequency: models.Frequency{
			Type: models.FrequencyWeekly,
			Days: []time.Weekday{time.Monday, time.Wednesday, time.Friday},
		},
		Progress: map[string]models.ProgressEntry{
			"2024-01-15": {Completed: true, Timestamp: 1705327800000},
			"2024-01-17": {Completed: false, Timestamp: 1705500600000},
		},
		CurrentStreak: 1,
		LongestStreak: 4,
		ReminderTime:  "08:30",
		CreatedAt:     time.Date(2024, 1, 1, 9, 0, 0, 0, time.UTC),
	}
}

func TestSQLiteStoreHabitRoundtrip(t *testing.T) {
	store := newTestSQLiteStore(t)

	habit := sampleHabit("Morning run")
	if err := store.AddHabit(habit); err != nil {
		t.Fatalf("AddHabit() error = %v", err)
	}

	got, err := store.GetHabit(habit.ID)
	if err != nil {
		t.Fatalf("GetHabit() error = %v", err)
	}

	if got.Name != habit.Name {
		t.Errorf("Name = %q, want %q", got.Name, habit.Name)
	}
	if got.Frequency.Type != models.FrequencyWeekly {
		t.Errorf("Frequency.Type = %q, want %q", got.Frequency.Type, models.FrequencyWeekly)
	}
	if len(got.Frequency.Days) != 3 {
		t.Fatalf("Frequency.Days has %d entries, want 3", len(got.Frequency.Days))
	}
	if got.ReminderTime != "08:30" {
		t.Errorf("ReminderTime = %q, want %q", got.ReminderTime, "08:30")
	}
	if got.LongestStreak != 4 {
		t.Errorf("LongestStreak = %d, want 4", got.LongestStreak)
	}
	if len(got.Progress) != 2 {
		t.Fatalf("Progress has %d entries, want 2", len(got.Progress))
	}
	entry := got.Progress["2024-01-15"]
	if !entry.Completed || entry.Timestamp != 1705327800000 {
		t.Errorf("Progress[2024-01-15] = %+v, want completed with original timestamp", entry)
	}
	if e := got.Progress["2024-01-17"]; e.Completed {
		t.Errorf("Progress[2024-01-17] should be an explicit incomplete entry")
	}
}

func TestSQLiteStoreUpdateHabitPersistsProgress(t *testing.T) {
	store := newTestSQLiteStore(t)

	habit := sampleHabit("Read")
	if err := store.AddHabit(habit); err != nil {
		t.Fatalf("AddHabit() error = %v", err)
	}

	habit.Progress["2024-01-19"] = models.ProgressEntry{Completed: true, Timestamp: 1705672800000}
	habit.Progress["2024-01-15"] = models.ProgressEntry{Completed: false, Timestamp: 1705672900000}
	habit.CurrentStreak = 2
	habit.LongestStreak = 5
	if err := store.UpdateHabit(habit); err != nil {
		t.Fatalf("UpdateHabit() error = %v", err)
	}

	got, err := store.GetHabit(habit.ID)
	if err != nil {
		t.Fatalf("GetHabit() error = %v", err)
	}
	if len(got.Progress) != 3 {
		t.Fatalf("Progress has %d entries, want 3", len(got.Progress))
	}
	if got.Progress["2024-01-15"].Completed {
		t.Errorf("Progress[2024-01-15] should have been flipped to incomplete")
	}
	if got.CurrentStreak != 2 || got.LongestStreak != 5 {
		t.Errorf("streaks = (%d, %d), want (2, 5)", got.CurrentStreak, got.LongestStreak)
	}
}

func TestSQLiteStoreGetHabitByName(t *testing.T) {
	store := newTestSQLiteStore(t)

	habit := sampleHabit("Meditate")
	if err := store.AddHabit(habit); err != nil {
		t.Fatalf("AddHabit() error = %v", err)
	}

	got, err := store.GetHabitByName("Meditate")
	if err != nil {
		t.Fatalf("GetHabitByName() error = %v", err)
	}
	if got.ID != habit.ID {
		t.Errorf("ID = %q, want %q", got.ID, habit.ID)
	}

	if _, err := store.GetHabitByName("No such habit"); err == nil {
		t.Error("GetHabitByName() on unknown name should fail")
	}
}

func TestSQLiteStoreSoftDeleteAndRestore(t *testing.T) {
	store := newTestSQLiteStore(t)

	habit := sampleHabit("Stretch")
	if err := store.AddHabit(habit); err != nil {
		t.Fatalf("AddHabit() error = %v", err)
	}

	if err := store.DeleteHabit(habit.ID); err != nil {
		t.Fatalf("DeleteHabit() error = %v", err)
	}

	if _, err := store.GetHabit(habit.ID); err == nil {
		t.Error("GetHabit() should not return a deleted habit")
	}

	active, err := store.GetAllHabits(false)
	if err != nil {
		t.Fatalf("GetAllHabits(false) error = %v", err)
	}
	if len(active) != 0 {
		t.Errorf("GetAllHabits(false) returned %d habits, want 0", len(active))
	}

	all, err := store.GetAllHabits(true)
	if err != nil {
		t.Fatalf("GetAllHabits(true) error = %v", err)
	}
	if len(all) != 1 {
		t.Fatalf("GetAllHabits(true) returned %d habits, want 1", len(all))
	}
	if all[0].DeletedAt == nil {
		t.Error("deleted habit should carry a deleted_at timestamp")
	}

	if err := store.DeleteHabit(habit.ID); err == nil {
		t.Error("DeleteHabit() on an already-deleted habit should fail")
	}

	if err := store.RestoreHabit(habit.ID); err != nil {
		t.Fatalf("RestoreHabit() error = %v", err)
	}
	got, err := store.GetHabit(habit.ID)
	if err != nil {
		t.Fatalf("GetHabit() after restore error = %v", err)
	}
	if got.DeletedAt != nil {
		t.Error("restored habit should have no deleted_at")
	}

	if err := store.RestoreHabit(habit.ID); err == nil {
		t.Error("RestoreHabit() on an active habit should fail")
	}
}

func TestSQLiteStoreSettings(t *testing.T) {
	store := newTestSQLiteStore(t)

	// Fresh database yields defaults
	settings, err := store.GetSettings()
	if err != nil {
		t.Fatalf("GetSettings() error = %v", err)
	}
	if !settings.RemindersEnabled {
		t.Error("default settings should have reminders enabled")
	}

	settings.FirstName = "Ada"
	settings.Phone = "+15550100"
	settings.Timezone = "Europe/Berlin"
	if err := store.SaveSettings(settings); err != nil {
		t.Fatalf("SaveSettings() error = %v", err)
	}

	got, err := store.GetSettings()
	if err != nil {
		t.Fatalf("GetSettings() after save error = %v", err)
	}
	if got.FirstName != "Ada" || got.Phone != "+15550100" || got.Timezone != "Europe/Berlin" {
		t.Errorf("GetSettings() = %+v, want saved values", got)
	}
}

func TestSQLiteStoreLoadRequiresInit(t *testing.T) {
	store := NewSQLiteStore(filepath.Join(t.TempDir(), "missing.db"))
	if err := store.Load(); err == nil {
		t.Error("Load() on a missing database should fail")
	}
}
