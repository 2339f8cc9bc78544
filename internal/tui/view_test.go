package tui

import (
	"testing"
	"time"

	"github.com/stridecoach/stride/internal/models"
)

func TestWeekCells(t *testing.T) {
	// Wednesday Jan 17 2024; week runs Mon 15 .. Sun 21
	now := time.Date(2024, 1, 17, 12, 0, 0, 0, time.UTC)

	h := models.Habit{
		Frequency: models.Frequency{
			Type: models.FrequencyWeekly,
			Days: []time.Weekday{time.Monday, time.Tuesday, time.Wednesday, time.Friday},
		},
		Progress: map[string]models.ProgressEntry{
			"2024-01-15": {Completed: true, Timestamp: 1},
		},
	}

	cells := weekCells(h, now)
	want := []dayCell{
		dayCompleted,  // Mon: completed
		dayMissed,     // Tue: eligible, past, not completed
		dayPending,    // Wed: today, not completed yet
		dayIneligible, // Thu
		dayPending,    // Fri: eligible, future
		dayIneligible, // Sat
		dayIneligible, // Sun
	}

	for i := range want {
		if cells[i] != want[i] {
			t.Errorf("cells[%d] = %v, want %v", i, cells[i], want[i])
		}
	}
}

func TestWeekCellsDailyAllPendingOnMonday(t *testing.T) {
	monday := time.Date(2024, 1, 15, 8, 0, 0, 0, time.UTC)
	h := models.Habit{
		Frequency: models.Frequency{Type: models.FrequencyDaily},
		Progress:  map[string]models.ProgressEntry{},
	}

	for i, cell := range weekCells(h, monday) {
		if cell != dayPending {
			t.Errorf("cells[%d] = %v, want pending", i, cell)
		}
	}
}
