package sqlite

import (
	"database/sql"
	"errors"

	"github.com/stridecoach/stride/internal/constants"
	"github.com/stridecoach/stride/internal/models"
)

func (s *Store) GetSettings() (models.Settings, error) {
	row := s.db.QueryRow(`
		SELECT first_name, phone, timezone, coach_endpoint, reminders_enabled
		FROM settings WHERE id = 1`)

	var settings models.Settings
	var remindersEnabled int
	err := row.Scan(&settings.FirstName, &settings.Phone, &settings.Timezone,
		&settings.CoachEndpoint, &remindersEnabled)
	if errors.Is(err, sql.ErrNoRows) {
		return defaultSettings(), nil
	}
	if err != nil {
		return models.Settings{}, err
	}
	settings.RemindersEnabled = remindersEnabled != 0
	return settings, nil
}

func (s *Store) SaveSettings(settings models.Settings) error {
	_, err := s.db.Exec(`
		INSERT INTO settings (id, first_name, phone, timezone, coach_endpoint, reminders_enabled)
		VALUES (1, ?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			first_name = excluded.first_name,
			phone = excluded.phone,
			timezone = excluded.timezone,
			coach_endpoint = excluded.coach_endpoint,
			reminders_enabled = excluded.reminders_enabled`,
		settings.FirstName, settings.Phone, settings.Timezone,
		settings.CoachEndpoint, boolToInt(settings.RemindersEnabled))
	return err
}

func defaultSettings() models.Settings {
	return models.Settings{
		Timezone:         constants.DefaultTimezone,
		CoachEndpoint:    constants.DefaultCoachEndpoint,
		RemindersEnabled: constants.DefaultRemindersEnabled,
	}
}
