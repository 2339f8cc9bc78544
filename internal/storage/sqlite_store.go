package storage

import (
	"database/sql"

	"github.com/stridecoach/stride/internal/models"
	"github.com/stridecoach/stride/internal/storage/sqlite"
)

// SQLiteStore adapts sqlite.Store to the Provider interface
type SQLiteStore struct {
	store *sqlite.Store
}

// NewSQLiteStore creates a new SQLite store
func NewSQLiteStore(path string) *SQLiteStore {
	return &SQLiteStore{store: sqlite.NewStore(path)}
}

func (s *SQLiteStore) Init() error           { return s.store.Init() }
func (s *SQLiteStore) Load() error           { return s.store.Load() }
func (s *SQLiteStore) Close() error          { return s.store.Close() }
func (s *SQLiteStore) GetConfigPath() string { return s.store.GetConfigPath() }

// GetDB exposes the underlying connection for backup and doctor checks
func (s *SQLiteStore) GetDB() *sql.DB { return s.store.GetDB() }

func (s *SQLiteStore) GetSettings() (models.Settings, error)     { return s.store.GetSettings() }
func (s *SQLiteStore) SaveSettings(settings models.Settings) error { return s.store.SaveSettings(settings) }

func (s *SQLiteStore) AddHabit(habit models.Habit) error        { return s.store.AddHabit(habit) }
func (s *SQLiteStore) GetHabit(id string) (models.Habit, error) { return s.store.GetHabit(id) }
func (s *SQLiteStore) GetHabitByName(name string) (models.Habit, error) {
	return s.store.GetHabitByName(name)
}
func (s *SQLiteStore) GetAllHabits(includeDeleted bool) ([]models.Habit, error) {
	return s.store.GetAllHabits(includeDeleted)
}
func (s *SQLiteStore) UpdateHabit(habit models.Habit) error { return s.store.UpdateHabit(habit) }
func (s *SQLiteStore) DeleteHabit(id string) error          { return s.store.DeleteHabit(id) }
func (s *SQLiteStore) RestoreHabit(id string) error         { return s.store.RestoreHabit(id) }
