package habit

import (
	"testing"
	"time"

	"github.com/stridecoach/stride/internal/constants"
	"github.com/stridecoach/stride/internal/models"
)

func mustDate(t *testing.T, s string) time.Time {
	t.Helper()
	d, err := time.Parse(constants.DateFormat, s)
	if err != nil {
		t.Fatalf("bad test date %q: %v", s, err)
	}
	return d
}

func completedDays(days ...string) map[string]models.ProgressEntry {
	progress := make(map[string]models.ProgressEntry, len(days))
	for _, day := range days {
		progress[day] = models.ProgressEntry{Completed: true, Timestamp: 1}
	}
	return progress
}

var (
	daily      = models.Frequency{Type: models.FrequencyDaily}
	monWedFri  = models.Frequency{Type: models.FrequencyWeekly, Days: []time.Weekday{time.Monday, time.Wednesday, time.Friday}}
	fridayOnly = models.Frequency{Type: models.FrequencyWeekly, Days: []time.Weekday{time.Friday}}
)

func TestIsEligibleDay(t *testing.T) {
	// 2024-01-16 is a Tuesday, 2024-01-17 a Wednesday
	tue := mustDate(t, "2024-01-16")
	wed := mustDate(t, "2024-01-17")

	if !IsEligibleDay(tue, daily) {
		t.Error("daily habit should be eligible every day")
	}
	if IsEligibleDay(tue, monWedFri) {
		t.Error("Tuesday should not be eligible for a mon/wed/fri habit")
	}
	if !IsEligibleDay(wed, monWedFri) {
		t.Error("Wednesday should be eligible for a mon/wed/fri habit")
	}
	if IsEligibleDay(wed, models.Frequency{Type: "biweekly"}) {
		t.Error("unknown frequency type should never be eligible")
	}
}

func TestComputeCurrentStreak_DailyThreeDays(t *testing.T) {
	progress := completedDays("2024-01-15", "2024-01-16", "2024-01-17")
	today := mustDate(t, "2024-01-17")

	if got := ComputeCurrentStreak(progress, daily, today); got != 3 {
		t.Errorf("ComputeCurrentStreak() = %d, want 3", got)
	}
}

func TestComputeCurrentStreak_TodayPendingDoesNotBreak(t *testing.T) {
	// Completed yesterday and the day before but not yet today: the carried
	// streak is still visible.
	progress := completedDays("2024-01-15", "2024-01-16")
	today := mustDate(t, "2024-01-17")

	if got := ComputeCurrentStreak(progress, daily, today); got != 2 {
		t.Errorf("ComputeCurrentStreak() = %d, want 2", got)
	}
}

func TestComputeCurrentStreak_MissedYesterdayBreaks(t *testing.T) {
	// Completed d-3 and d-2 but missed d-1: the gap breaks the streak even
	// though today is still pending.
	progress := completedDays("2024-01-14", "2024-01-15")
	today := mustDate(t, "2024-01-17")

	if got := ComputeCurrentStreak(progress, daily, today); got != 0 {
		t.Errorf("ComputeCurrentStreak() = %d, want 0", got)
	}
}

func TestComputeCurrentStreak_IneligibleDayCompletionIgnored(t *testing.T) {
	// Only a Tuesday is completed; Tuesdays are not eligible for mon/wed/fri,
	// so no eligible day is completed at all.
	progress := completedDays("2024-01-16")
	today := mustDate(t, "2024-01-17")

	if got := ComputeCurrentStreak(progress, monWedFri, today); got != 0 {
		t.Errorf("ComputeCurrentStreak() = %d, want 0", got)
	}
}

func TestComputeCurrentStreak_WeeklySkipsIneligibleGaps(t *testing.T) {
	// Fri 12th, Mon 15th, Wed 17th completed: the weekend and Tuesday are
	// ineligible and must not break the chain.
	progress := completedDays("2024-01-12", "2024-01-15", "2024-01-17")
	today := mustDate(t, "2024-01-17")

	if got := ComputeCurrentStreak(progress, monWedFri, today); got != 3 {
		t.Errorf("ComputeCurrentStreak() = %d, want 3", got)
	}
}

func TestComputeCurrentStreak_LookbackCap(t *testing.T) {
	today := mustDate(t, "2024-03-01")
	progress := make(map[string]models.ProgressEntry)
	for i := 31; i <= 45; i++ {
		day := today.AddDate(0, 0, -i).Format(constants.DateFormat)
		progress[day] = models.ProgressEntry{Completed: true, Timestamp: 1}
	}

	if got := ComputeCurrentStreak(progress, daily, today); got != 0 {
		t.Errorf("ComputeCurrentStreak() = %d, want 0 for completions outside the %d-day window", got, LookbackDays)
	}
}

func TestComputeCurrentStreak_FullWindow(t *testing.T) {
	// Every day from today-30 through today-1 completed, today pending: the
	// window holds exactly 30 countable days.
	today := mustDate(t, "2024-03-01")
	progress := make(map[string]models.ProgressEntry)
	for i := 1; i <= LookbackDays; i++ {
		day := today.AddDate(0, 0, -i).Format(constants.DateFormat)
		progress[day] = models.ProgressEntry{Completed: true, Timestamp: 1}
	}

	if got := ComputeCurrentStreak(progress, daily, today); got != LookbackDays {
		t.Errorf("ComputeCurrentStreak() = %d, want %d", got, LookbackDays)
	}
}

func TestComputeCurrentStreak_ExplicitIncompleteBreaks(t *testing.T) {
	// An explicit completed=false entry behaves like a missed day.
	progress := completedDays("2024-01-15", "2024-01-17")
	progress["2024-01-16"] = models.ProgressEntry{Completed: false, Timestamp: 1}
	today := mustDate(t, "2024-01-17")

	if got := ComputeCurrentStreak(progress, daily, today); got != 1 {
		t.Errorf("ComputeCurrentStreak() = %d, want 1", got)
	}
}

func TestComputeWeeklyCompletion(t *testing.T) {
	tests := []struct {
		name     string
		progress map[string]models.ProgressEntry
		freq     models.Frequency
		today    string
		want     int
	}{
		{
			name:     "daily two of three elapsed days",
			progress: completedDays("2024-01-15", "2024-01-16"),
			freq:     daily,
			today:    "2024-01-17",
			want:     67, // round(100 * 2/3)
		},
		{
			name:     "weekly counts only eligible days",
			progress: completedDays("2024-01-15"),
			freq:     monWedFri,
			today:    "2024-01-17",
			want:     50, // Mon done, Wed pending
		},
		{
			name:     "no eligible days elapsed yet",
			progress: completedDays(),
			freq:     fridayOnly,
			today:    "2024-01-17",
			want:     0,
		},
		{
			name:     "full week completed",
			progress: completedDays("2024-01-15", "2024-01-16", "2024-01-17", "2024-01-18", "2024-01-19", "2024-01-20", "2024-01-21"),
			freq:     daily,
			today:    "2024-01-21",
			want:     100,
		},
		{
			name:     "empty progress",
			progress: completedDays(),
			freq:     daily,
			today:    "2024-01-17",
			want:     0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			today := mustDate(t, tt.today)
			if got := ComputeWeeklyCompletion(tt.progress, tt.freq, today); got != tt.want {
				t.Errorf("ComputeWeeklyCompletion() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestStartOfWeek(t *testing.T) {
	tests := []struct {
		date string
		want string
	}{
		{"2024-01-17", "2024-01-15"}, // Wednesday -> Monday
		{"2024-01-15", "2024-01-15"}, // Monday is its own week start
		{"2024-01-21", "2024-01-15"}, // Sunday belongs to the preceding Monday
	}
	for _, tt := range tests {
		got := StartOfWeek(mustDate(t, tt.date)).Format(constants.DateFormat)
		if got != tt.want {
			t.Errorf("StartOfWeek(%s) = %s, want %s", tt.date, got, tt.want)
		}
	}
}

func TestValidateFrequency(t *testing.T) {
	if err := ValidateFrequency(daily); err != nil {
		t.Errorf("daily frequency should be valid, got %v", err)
	}
	if err := ValidateFrequency(monWedFri); err != nil {
		t.Errorf("mon/wed/fri frequency should be valid, got %v", err)
	}

	err := ValidateFrequency(models.Frequency{Type: models.FrequencyWeekly})
	if _, ok := err.(*MalformedFrequencyError); !ok {
		t.Errorf("weekly frequency without days: got %v, want MalformedFrequencyError", err)
	}

	err = ValidateFrequency(models.Frequency{Type: models.FrequencyWeekly, Days: []time.Weekday{time.Weekday(9)}})
	if _, ok := err.(*MalformedFrequencyError); !ok {
		t.Errorf("out-of-range weekday: got %v, want MalformedFrequencyError", err)
	}

	err = ValidateFrequency(models.Frequency{Type: "biweekly"})
	if _, ok := err.(*MalformedFrequencyError); !ok {
		t.Errorf("unknown type: got %v, want MalformedFrequencyError", err)
	}
}
