package models

import "time"

// FrequencyType represents how often a habit is expected to be performed
type FrequencyType string

const (
	FrequencyDaily  FrequencyType = "daily"
	FrequencyWeekly FrequencyType = "weekly"
)

// Frequency is a habit's recurrence rule. For weekly habits, Days holds the
// weekdays the habit is expected on; it is ignored for daily habits.
type Frequency struct {
	Type FrequencyType  `json:"type"`
	Days []time.Weekday `json:"days,omitempty"`
}

// ProgressEntry is the per-date completion record for a habit. Absence of an
// entry means "no record", which is distinct from an explicit completed=false.
type ProgressEntry struct {
	Completed bool  `json:"completed"`
	Timestamp int64 `json:"timestamp"` // epoch millis of the last toggle
}

// Habit represents a recurring practice to track
type Habit struct {
	ID            string                   `json:"id"`
	Name          string                   `json:"name"`
	Frequency     Frequency                `json:"frequency"`
	Progress      map[string]ProgressEntry `json:"progress,omitempty"` // keyed by YYYY-MM-DD
	CurrentStreak int                      `json:"current_streak"`
	LongestStreak int                      `json:"longest_streak"`
	ReminderTime  string                   `json:"reminder_time,omitempty"` // HH:MM, empty means no reminder
	CreatedAt     time.Time                `json:"created_at"`
	DeletedAt     *time.Time               `json:"deleted_at,omitempty"`
}
