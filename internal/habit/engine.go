package habit

import (
	"fmt"
	"math"
	"time"

	"github.com/stridecoach/stride/internal/constants"
	"github.com/stridecoach/stride/internal/models"
)

// LookbackDays bounds how far back streak computation searches. A streak
// cannot be carried across more than this many days of history.
const LookbackDays = 30

// ToggleOutcome describes the result of a completion toggle.
type ToggleOutcome struct {
	Completed   bool
	NewStreak   int
	IsNewRecord bool
}

// IsEligibleDay reports whether the habit is expected to be performed on the
// given date. Daily habits are eligible every day; weekly habits only on the
// weekdays in their frequency rule.
func IsEligibleDay(date time.Time, freq models.Frequency) bool {
	switch freq.Type {
	case models.FrequencyDaily:
		return true
	case models.FrequencyWeekly:
		for _, wd := range freq.Days {
			if date.Weekday() == wd {
				return true
			}
		}
		return false
	default:
		return false
	}
}

// ValidateFrequency checks that a frequency rule is well-formed. Weekly rules
// must name at least one valid weekday.
func ValidateFrequency(freq models.Frequency) error {
	switch freq.Type {
	case models.FrequencyDaily:
		return nil
	case models.FrequencyWeekly:
		if len(freq.Days) == 0 {
			return &MalformedFrequencyError{Reason: "weekly frequency has no days"}
		}
		for _, wd := range freq.Days {
			if wd < time.Sunday || wd > time.Saturday {
				return &MalformedFrequencyError{Reason: fmt.Sprintf("invalid weekday %d", wd)}
			}
		}
		return nil
	default:
		return &MalformedFrequencyError{Reason: fmt.Sprintf("unknown frequency type %q", freq.Type)}
	}
}

// ToggleCompletion flips the completion flag for the given day (YYYY-MM-DD)
// and recomputes both streak fields. It is a pure function: the input habit is
// not mutated, and on error the returned habit equals the input.
//
// Toggling a date after today is rejected with FutureDateError. Toggling an
// ineligible day is deliberately allowed; callers gate eligibility in the UI.
func ToggleCompletion(h models.Habit, day string, now time.Time) (models.Habit, ToggleOutcome, error) {
	if err := ValidateFrequency(h.Frequency); err != nil {
		return h, ToggleOutcome{}, err
	}

	date, err := time.ParseInLocation(constants.DateFormat, day, now.Location())
	if err != nil {
		return h, ToggleOutcome{}, fmt.Errorf("invalid date %q (expected YYYY-MM-DD): %w", day, err)
	}
	today := dateOnly(now)
	if date.After(today) {
		return h, ToggleOutcome{}, &FutureDateError{Date: day}
	}

	progress := make(map[string]models.ProgressEntry, len(h.Progress)+1)
	for k, v := range h.Progress {
		progress[k] = v
	}
	completed := !progress[day].Completed
	progress[day] = models.ProgressEntry{Completed: completed, Timestamp: now.UnixMilli()}

	prevLongest := h.LongestStreak
	h.Progress = progress
	h.CurrentStreak = ComputeCurrentStreak(progress, h.Frequency, today)
	if h.CurrentStreak > h.LongestStreak {
		h.LongestStreak = h.CurrentStreak
	}

	return h, ToggleOutcome{
		Completed:   completed,
		NewStreak:   h.CurrentStreak,
		IsNewRecord: h.CurrentStreak > prevLongest,
	}, nil
}

// ComputeCurrentStreak counts consecutive completed eligible days, scanning
// backward from the most recent completed eligible day within the lookback
// window. Today being uncompleted does not break a streak carried from prior
// days; any earlier uncompleted eligible day does.
func ComputeCurrentStreak(progress map[string]models.ProgressEntry, freq models.Frequency, today time.Time) int {
	day := dateOnly(today)
	floor := day.AddDate(0, 0, -LookbackDays)

	// Find the anchor: the most recent completed eligible day.
	var anchor time.Time
	found := false
	for d, i := day, 0; !d.Before(floor); d, i = d.AddDate(0, 0, -1), i+1 {
		if !IsEligibleDay(d, freq) {
			continue
		}
		if completedOn(progress, d) {
			anchor = d
			found = true
			break
		}
		if i > 0 {
			// An uncompleted eligible day strictly before today breaks the streak.
			return 0
		}
	}
	if !found {
		return 0
	}

	// Count backward from the anchor. Ineligible days neither break nor
	// extend the streak.
	streak := 1
	for d := anchor.AddDate(0, 0, -1); !d.Before(floor); d = d.AddDate(0, 0, -1) {
		if !IsEligibleDay(d, freq) {
			continue
		}
		if !completedOn(progress, d) {
			break
		}
		streak++
	}
	return streak
}

// ComputeWeeklyCompletion returns the completion percentage for the
// Monday-anchored week containing today. Future days and ineligible days are
// excluded from both numerator and denominator.
func ComputeWeeklyCompletion(progress map[string]models.ProgressEntry, freq models.Frequency, today time.Time) int {
	day := dateOnly(today)
	weekStart := StartOfWeek(day)

	completed, total := 0, 0
	for i := 0; i < 7; i++ {
		d := weekStart.AddDate(0, 0, i)
		if d.After(day) {
			continue
		}
		if !IsEligibleDay(d, freq) {
			continue
		}
		total++
		if completedOn(progress, d) {
			completed++
		}
	}

	if total == 0 {
		return 0
	}
	return int(math.Round(float64(completed) / float64(total) * 100))
}

// StartOfWeek returns the Monday on or before the given date, at midnight in
// the date's location.
func StartOfWeek(t time.Time) time.Time {
	d := dateOnly(t)
	offset := (int(d.Weekday()) + 6) % 7
	return d.AddDate(0, 0, -offset)
}

func completedOn(progress map[string]models.ProgressEntry, d time.Time) bool {
	entry, ok := progress[d.Format(constants.DateFormat)]
	return ok && entry.Completed
}

func dateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
