package postgres

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/stridecoach/stride/internal/models"
)

const habitColumns = "id, name, frequency_type, frequency_days, reminder_time, current_streak, longest_streak, created_at, deleted_at"

func (s *Store) AddHabit(habit models.Habit) error {
	return s.UpdateHabit(habit)
}

func (s *Store) GetHabit(id string) (models.Habit, error) {
	row := s.db.QueryRow(`
		SELECT `+habitColumns+`
		FROM habits WHERE id = $1 AND deleted_at IS NULL`, id)
	return s.scanHabitWithProgress(row)
}

func (s *Store) GetHabitByName(name string) (models.Habit, error) {
	row := s.db.QueryRow(`
		SELECT `+habitColumns+`
		FROM habits WHERE name = $1 AND deleted_at IS NULL`, name)
	return s.scanHabitWithProgress(row)
}

func (s *Store) GetAllHabits(includeDeleted bool) ([]models.Habit, error) {
	query := "SELECT " + habitColumns + " FROM habits"
	if !includeDeleted {
		query += " WHERE deleted_at IS NULL"
	}
	query += " ORDER BY created_at"

	rows, err := s.db.Query(query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var habits []models.Habit
	for rows.Next() {
		h, err := scanHabit(rows)
		if err != nil {
			return nil, err
		}
		habits = append(habits, h)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	for i := range habits {
		progress, err := s.loadProgress(habits[i].ID)
		if err != nil {
			return nil, err
		}
		habits[i].Progress = progress
	}

	return habits, nil
}

func (s *Store) UpdateHabit(habit models.Habit) error {
	var deletedAt sql.NullString
	if habit.DeletedAt != nil {
		deletedAt = sql.NullString{String: habit.DeletedAt.Format(time.RFC3339), Valid: true}
	}

	tx, err := s.db.Begin()
	if err != nil {
		return err
	}

	_, err = tx.Exec(`
		INSERT INTO habits (`+habitColumns+`)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		ON CONFLICT (id) DO UPDATE SET
			name = EXCLUDED.name,
			frequency_type = EXCLUDED.frequency_type,
			frequency_days = EXCLUDED.frequency_days,
			reminder_time = EXCLUDED.reminder_time,
			current_streak = EXCLUDED.current_streak,
			longest_streak = EXCLUDED.longest_streak,
			deleted_at = EXCLUDED.deleted_at`,
		habit.ID, habit.Name, string(habit.Frequency.Type), models.FormatWeekdays(habit.Frequency.Days),
		habit.ReminderTime, habit.CurrentStreak, habit.LongestStreak,
		habit.CreatedAt.Format(time.RFC3339), deletedAt)
	if err != nil {
		_ = tx.Rollback()
		return err
	}

	for day, entry := range habit.Progress {
		_, err = tx.Exec(`
			INSERT INTO habit_progress (habit_id, day, completed, timestamp)
			VALUES ($1, $2, $3, $4)
			ON CONFLICT (habit_id, day) DO UPDATE SET
				completed = EXCLUDED.completed,
				timestamp = EXCLUDED.timestamp`,
			habit.ID, day, entry.Completed, entry.Timestamp)
		if err != nil {
			_ = tx.Rollback()
			return err
		}
	}

	return tx.Commit()
}

func (s *Store) DeleteHabit(id string) error {
	result, err := s.db.Exec(`
		UPDATE habits SET deleted_at = $1 WHERE id = $2 AND deleted_at IS NULL`,
		time.Now().Format(time.RFC3339), id)
	if err != nil {
		return err
	}
	return requireRowAffected(result, "habit not found or already deleted")
}

func (s *Store) RestoreHabit(id string) error {
	result, err := s.db.Exec(`
		UPDATE habits SET deleted_at = NULL WHERE id = $1 AND deleted_at IS NOT NULL`, id)
	if err != nil {
		return err
	}
	return requireRowAffected(result, "habit not found or not deleted")
}

func (s *Store) loadProgress(habitID string) (map[string]models.ProgressEntry, error) {
	rows, err := s.db.Query(`
		SELECT day, completed, timestamp FROM habit_progress WHERE habit_id = $1`, habitID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	progress := make(map[string]models.ProgressEntry)
	for rows.Next() {
		var day string
		var entry models.ProgressEntry
		if err := rows.Scan(&day, &entry.Completed, &entry.Timestamp); err != nil {
			return nil, err
		}
		progress[day] = entry
	}
	return progress, rows.Err()
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanHabit(row rowScanner) (models.Habit, error) {
	var h models.Habit
	var freqType, freqDays, createdAt string
	var deletedAt sql.NullString

	err := row.Scan(&h.ID, &h.Name, &freqType, &freqDays, &h.ReminderTime,
		&h.CurrentStreak, &h.LongestStreak, &createdAt, &deletedAt)
	if err != nil {
		return models.Habit{}, err
	}

	days, err := models.ParseWeekdayList(freqDays)
	if err != nil {
		return models.Habit{}, fmt.Errorf("habit %s has invalid frequency days: %w", h.ID, err)
	}
	h.Frequency = models.Frequency{Type: models.FrequencyType(freqType), Days: days}

	h.CreatedAt, err = time.Parse(time.RFC3339, createdAt)
	if err != nil {
		return models.Habit{}, fmt.Errorf("failed to parse created_at for habit %s: %w", h.ID, err)
	}
	if deletedAt.Valid {
		t, err := time.Parse(time.RFC3339, deletedAt.String)
		if err != nil {
			return models.Habit{}, fmt.Errorf("failed to parse deleted_at for habit %s: %w", h.ID, err)
		}
		h.DeletedAt = &t
	}

	return h, nil
}

func (s *Store) scanHabitWithProgress(row rowScanner) (models.Habit, error) {
	h, err := scanHabit(row)
	if err != nil {
		return models.Habit{}, err
	}
	h.Progress, err = s.loadProgress(h.ID)
	if err != nil {
		return models.Habit{}, err
	}
	return h, nil
}

func requireRowAffected(result sql.Result, msg string) error {
	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return fmt.Errorf("%s", msg)
	}
	return nil
}
