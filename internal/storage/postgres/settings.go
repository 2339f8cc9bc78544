package postgres

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
	err := row.Scan(&settings.FirstName, &settings.Phone, &settings.Timezone,
		&settings.CoachEndpoint, &settings.RemindersEnabled)
	if errors.Is(err, sql.ErrNoRows) {
		return models.Settings{
			Timezone:         constants.DefaultTimezone,
			CoachEndpoint:    constants.DefaultCoachEndpoint,
			RemindersEnabled: constants.DefaultRemindersEnabled,
		}, nil
	}
	if err != nil {
		return models.Settings{}, err
	}
	return settings, nil
}

func (s *Store) SaveSettings(settings models.Settings) error {
	_, err := s.db.Exec(`
		INSERT INTO settings (id, first_name, phone, timezone, coach_endpoint, reminders_enabled)
		VALUES (1, $1, $2, $3, $4, $5)
		ON CONFLICT (id) DO UPDATE SET
			first_name = EXCLUDED.first_name,
			phone = EXCLUDED.phone,
			timezone = EXCLUDED.timezone,
			coach_endpoint = EXCLUDED.coach_endpoint,
			reminders_enabled = EXCLUDED.reminders_enabled`,
		settings.FirstName, settings.Phone, settings.Timezone,
		settings.CoachEndpoint, settings.RemindersEnabled)
	return err
}
