package storage

import "github.com/stridecoach/stride/internal/models"

// Provider is the persistence boundary for habits and settings. Habit reads
// return the full progress ledger; UpdateHabit persists the habit row and its
// progress entries as one logical write.
type Provider interface {
	// Lifecycle
	Init() error
	Load() error
	Close() error

	// Settings
	GetSettings() (models.Settings, error)
	SaveSettings(models.Settings) error

	// Habits
	AddHabit(models.Habit) error
	GetHabit(id string) (models.Habit, error)
	GetHabitByName(name string) (models.Habit, error)
	GetAllHabits(includeDeleted bool) ([]models.Habit, error)
	UpdateHabit(models.Habit) error
	DeleteHabit(id string) error
	RestoreHabit(id string) error

	// Utils
	GetConfigPath() string
}
