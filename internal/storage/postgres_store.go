package storage

import (
	"net/url"
	"strings"

	"github.com/stridecoach/stride/internal/models"
	"github.com/stridecoach/stride/internal/storage/postgres"
)

// PostgresStore adapts postgres.Store to the Provider interface
type PostgresStore struct {
	store *postgres.Store
}

// NewPostgresStore creates a new PostgreSQL store from a connection string
func NewPostgresStore(connStr string) *PostgresStore {
	return &PostgresStore{store: postgres.New(connStr)}
}

func (s *PostgresStore) Init() error           { return s.store.Init() }
func (s *PostgresStore) Load() error           { return s.store.Load() }
func (s *PostgresStore) Close() error          { return s.store.Close() }
func (s *PostgresStore) GetConfigPath() string { return s.store.GetConfigPath() }

func (s *PostgresStore) GetSettings() (models.Settings, error)       { return s.store.GetSettings() }
func (s *PostgresStore) SaveSettings(settings models.Settings) error { return s.store.SaveSettings(settings) }

func (s *PostgresStore) AddHabit(habit models.Habit) error        { return s.store.AddHabit(habit) }
func (s *PostgresStore) GetHabit(id string) (models.Habit, error) { return s.store.GetHabit(id) }
func (s *PostgresStore) GetHabitByName(name string) (models.Habit, error) {
	return s.store.GetHabitByName(name)
}
func (s *PostgresStore) GetAllHabits(includeDeleted bool) ([]models.Habit, error) {
	return s.store.GetAllHabits(includeDeleted)
}
func (s *PostgresStore) UpdateHabit(habit models.Habit) error { return s.store.UpdateHabit(habit) }
func (s *PostgresStore) DeleteHabit(id string) error          { return s.store.DeleteHabit(id) }
func (s *PostgresStore) RestoreHabit(id string) error         { return s.store.RestoreHabit(id) }

// IsPostgresConnString reports whether the config argument selects the
// PostgreSQL backend.
func IsPostgresConnString(s string) bool {
	return strings.HasPrefix(s, "postgres://") || strings.HasPrefix(s, "postgresql://")
}

// HasEmbeddedCredentials reports whether a PostgreSQL connection string
// carries a password. Embedded credentials are rejected; users must rely on
// the OS keyring, environment, or .pgpass instead.
func HasEmbeddedCredentials(connStr string) bool {
	if IsPostgresConnString(connStr) {
		u, err := url.Parse(connStr)
		if err != nil {
			return false
		}
		if u.User != nil {
			if _, set := u.User.Password(); set {
				return true
			}
		}
		return false
	}

	// DSN style: space-separated key=value pairs
	for _, part := range strings.Fields(connStr) {
		kv := strings.SplitN(part, "=", 2)
		if len(kv) == 2 && strings.EqualFold(kv[0], "password") {
			return true
		}
	}
	return false
}
