package storage

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"time"

	"github.com/stridecoach/stride/internal/constants"
	"github.com/stridecoach/stride/internal/models"
)

type jsonFile struct {
	Version  int                     `json:"version"`
	Settings models.Settings         `json:"settings"`
	Habits   map[string]models.Habit `json:"habits"`
}

// JSONStore persists the whole data set as one pretty-printed JSON file.
// Every write rewrites the file, which is fine at habit-tracker scale.
type JSONStore struct {
	path string
	file *jsonFile
}

func NewJSONStore(configPath string) *JSONStore {
	return &JSONStore{path: configPath}
}

func (s *JSONStore) Init() error {
	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0700); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	if _, err := os.Stat(s.path); err == nil {
		return fmt.Errorf("storage already initialized at %s", s.path)
	}

	s.file = &jsonFile{
		Version: 1,
		Settings: models.Settings{
			Timezone:         constants.DefaultTimezone,
			CoachEndpoint:    constants.DefaultCoachEndpoint,
			RemindersEnabled: constants.DefaultRemindersEnabled,
		},
		Habits: make(map[string]models.Habit),
	}

	return s.save()
}

func (s *JSONStore) Load() error {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return fmt.Errorf("storage not initialized, run '%s init' first", constants.AppName)
		}
		return fmt.Errorf("failed to read storage: %w", err)
	}

	s.file = &jsonFile{}
	if err := json.Unmarshal(data, s.file); err != nil {
		return fmt.Errorf("failed to parse storage: %w", err)
	}

	if s.file.Habits == nil {
		s.file.Habits = make(map[string]models.Habit)
	}
	for id, h := range s.file.Habits {
		s.file.Habits[id] = normalizeHabit(h)
	}

	return nil
}

// normalizeHabit closes the record shape of data written by older builds or
// edited by hand: missing progress maps become empty, missing entry fields
// stay zero-valued.
func normalizeHabit(h models.Habit) models.Habit {
	if h.Progress == nil {
		h.Progress = make(map[string]models.ProgressEntry)
	}
	if h.Frequency.Type == "" {
		h.Frequency.Type = models.FrequencyDaily
	}
	return h
}

func (s *JSONStore) Close() error {
	return nil
}

func (s *JSONStore) save() error {
	data, err := json.MarshalIndent(s.file, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to serialize storage: %w", err)
	}

	if err := os.WriteFile(s.path, data, 0600); err != nil {
		return fmt.Errorf("failed to write storage: %w", err)
	}

	return nil
}

func (s *JSONStore) GetSettings() (models.Settings, error) {
	if s.file == nil {
		return models.Settings{}, fmt.Errorf("storage not loaded")
	}
	return s.file.Settings, nil
}

func (s *JSONStore) SaveSettings(settings models.Settings) error {
	if s.file == nil {
		return fmt.Errorf("storage not loaded")
	}
	s.file.Settings = settings
	return s.save()
}

func (s *JSONStore) AddHabit(habit models.Habit) error {
	if s.file == nil {
		return fmt.Errorf("storage not loaded")
	}
	s.file.Habits[habit.ID] = normalizeHabit(habit)
	return s.save()
}

func (s *JSONStore) GetHabit(id string) (models.Habit, error) {
	if s.file == nil {
		return models.Habit{}, fmt.Errorf("storage not loaded")
	}

	habit, ok := s.file.Habits[id]
	if !ok || habit.DeletedAt != nil {
		return models.Habit{}, fmt.Errorf("habit not found: %s", id)
	}
	return habit, nil
}

func (s *JSONStore) GetHabitByName(name string) (models.Habit, error) {
	if s.file == nil {
		return models.Habit{}, fmt.Errorf("storage not loaded")
	}

	for _, habit := range s.file.Habits {
		if habit.Name == name && habit.DeletedAt == nil {
			return habit, nil
		}
	}
	return models.Habit{}, fmt.Errorf("habit not found: %s", name)
}

func (s *JSONStore) GetAllHabits(includeDeleted bool) ([]models.Habit, error) {
	if s.file == nil {
		return nil, fmt.Errorf("storage not loaded")
	}

	habits := make([]models.Habit, 0, len(s.file.Habits))
	for _, habit := range s.file.Habits {
		if !includeDeleted && habit.DeletedAt != nil {
			continue
		}
		habits = append(habits, habit)
	}
	sort.Slice(habits, func(i, j int) bool { return habits[i].CreatedAt.Before(habits[j].CreatedAt) })

	return habits, nil
}

func (s *JSONStore) UpdateHabit(habit models.Habit) error {
	if s.file == nil {
		return fmt.Errorf("storage not loaded")
	}

	if _, ok := s.file.Habits[habit.ID]; !ok {
		return fmt.Errorf("habit not found: %s", habit.ID)
	}
	s.file.Habits[habit.ID] = normalizeHabit(habit)
	return s.save()
}

func (s *JSONStore) DeleteHabit(id string) error {
	if s.file == nil {
		return fmt.Errorf("storage not loaded")
	}

	habit, ok := s.file.Habits[id]
	if !ok || habit.DeletedAt != nil {
		return fmt.Errorf("habit not found or already deleted: %s", id)
	}

	now := time.Now().UTC()
	habit.DeletedAt = &now
	s.file.Habits[id] = habit
	return s.save()
}

func (s *JSONStore) RestoreHabit(id string) error {
	if s.file == nil {
		return fmt.Errorf("storage not loaded")
	}

	habit, ok := s.file.Habits[id]
	if !ok {
		return fmt.Errorf("habit not found: %s", id)
	}
	if habit.DeletedAt == nil {
		return fmt.Errorf("cannot restore a habit that is not deleted: %s", id)
	}

	habit.DeletedAt = nil
	s.file.Habits[id] = habit
	return s.save()
}

func (s *JSONStore) GetConfigPath() string {
	return s.path
}
