package habits

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/huh"
	"github.com/google/uuid"

	"github.com/stridecoach/stride/internal/cli"
	"github.com/stridecoach/stride/internal/constants"
	"github.com/stridecoach/stride/internal/habit"
	"github.com/stridecoach/stride/internal/models"
	"github.com/stridecoach/stride/internal/utils"
)

type HabitCmd struct {
	Add     HabitAddCmd     `cmd:"" help:"Add a new habit."`
	List    HabitListCmd    `cmd:"" help:"List habits with streaks and weekly completion."`
	Toggle  HabitToggleCmd  `cmd:"" help:"Toggle a habit's completion for a day."`
	Today   HabitTodayCmd   `cmd:"" help:"Show today's habit status."`
	Log     HabitLogCmd     `cmd:"" help:"Show a habit calendar log."`
	Days    HabitDaysCmd    `cmd:"" help:"Change the weekdays of a weekly habit."`
	Delete  HabitDeleteCmd  `cmd:"" help:"Delete a habit (soft delete)."`
	Restore HabitRestoreCmd `cmd:"" help:"Restore a deleted habit."`
}

type HabitAddCmd struct {
	Name        string `arg:"" optional:"" help:"Habit name."`
	Weekly      string `help:"Comma-separated weekdays for a weekly habit (e.g. mon,wed,fri). Omit for daily."`
	Reminder    string `help:"Reminder time in HH:MM format."`
	Interactive bool   `short:"i" help:"Add the habit through an interactive form."`
}

func (c *HabitAddCmd) Run(ctx *cli.Context) error {
	if err := ctx.Store.Load(); err != nil {
		return err
	}

	name := c.Name
	weekly := c.Weekly
	reminder := c.Reminder

	if c.Interactive {
		var isWeekly bool
		var days []string
		form := huh.NewForm(
			huh.NewGroup(
				huh.NewInput().
					Title("Habit name").
					Value(&name).
					Validate(func(s string) error {
						if strings.TrimSpace(s) == "" {
							return fmt.Errorf("name is required")
						}
						return nil
					}),
				huh.NewConfirm().
					Title("Only on specific weekdays?").
					Value(&isWeekly),
			),
			huh.NewGroup(
				huh.NewMultiSelect[string]().
					Title("Weekdays").
					Options(
						huh.NewOption("Monday", "mon"),
						huh.NewOption("Tuesday", "tue"),
						huh.NewOption("Wednesday", "wed"),
						huh.NewOption("Thursday", "thu"),
						huh.NewOption("Friday", "fri"),
						huh.NewOption("Saturday", "sat"),
						huh.NewOption("Sunday", "sun"),
					).
					Value(&days),
			).WithHideFunc(func() bool { return !isWeekly }),
			huh.NewGroup(
				huh.NewInput().
					Title("Reminder time (HH:MM, optional)").
					Value(&reminder).
					Validate(func(s string) error {
						if s != "" && !utils.ValidateTimeFormat(s) {
							return fmt.Errorf("expected HH:MM")
						}
						return nil
					}),
			),
		)
		if err := form.Run(); err != nil {
			return err
		}
		weekly = strings.Join(days, ",")
	}

	if strings.TrimSpace(name) == "" {
		return fmt.Errorf("habit name is required (pass it as an argument or use --interactive)")
	}
	if reminder != "" && !utils.ValidateTimeFormat(reminder) {
		return fmt.Errorf("invalid reminder time: %s (expected HH:MM)", reminder)
	}

	if _, err := ctx.Store.GetHabitByName(name); err == nil {
		return fmt.Errorf("habit with name %q already exists", name)
	}

	freq := models.Frequency{Type: models.FrequencyDaily}
	if weekly != "" {
		days, err := cli.ParseWeekdays(weekly)
		if err != nil {
			return err
		}
		freq = models.Frequency{Type: models.FrequencyWeekly, Days: days}
	}
	if err := habit.ValidateFrequency(freq); err != nil {
		return err
	}

	h := models.Habit{
		ID:           uuid.New().String(),
		Name:         name,
		Frequency:    freq,
		Progress:     make(map[string]models.ProgressEntry),
		ReminderTime: reminder,
		CreatedAt:    time.Now(),
	}

	if err := ctx.Store.AddHabit(h); err != nil {
		return err
	}

	fmt.Printf("Added habit: %s (%s)\n", name, cli.FormatFrequency(freq))
	return nil
}

type HabitListCmd struct {
	Deleted bool `help:"Include deleted habits."`
}

func (c *HabitListCmd) Run(ctx *cli.Context) error {
	if err := ctx.Store.Load(); err != nil {
		return err
	}

	habits, err := ctx.Store.GetAllHabits(c.Deleted)
	if err != nil {
		return err
	}
	if len(habits) == 0 {
		fmt.Println("No habits found.")
		return nil
	}

	now, err := nowFromSettings(ctx)
	if err != nil {
		return err
	}

	for _, h := range habits {
		if h.DeletedAt != nil {
			fmt.Printf("%-24s [DELETED]\n", h.Name)
			continue
		}
		weekly := habit.ComputeWeeklyCompletion(h.Progress, h.Frequency, now)
		fmt.Printf("%-24s %-22s streak %d (best %d)  week %d%%\n",
			h.Name, cli.FormatFrequency(h.Frequency), h.CurrentStreak, h.LongestStreak, weekly)
	}

	return nil
}

type HabitToggleCmd struct {
	Name string `arg:"" help:"Habit name."`
	Date string `help:"Date in YYYY-MM-DD format (default: today)."`
}

func (c *HabitToggleCmd) Run(ctx *cli.Context) error {
	if err := ctx.Store.Load(); err != nil {
		return err
	}

	h, err := ctx.Store.GetHabitByName(c.Name)
	if err != nil {
		return fmt.Errorf("habit %q not found", c.Name)
	}

	now, err := nowFromSettings(ctx)
	if err != nil {
		return err
	}

	day := c.Date
	if day == "" {
		day = now.Format(constants.DateFormat)
	}

	updated, outcome, err := habit.ToggleCompletion(h, day, now)
	if err != nil {
		return err
	}
	if err := ctx.Store.UpdateHabit(updated); err != nil {
		return err
	}

	if outcome.Completed {
		fmt.Printf("Completed %q for %s. Current streak: %d\n", c.Name, day, outcome.NewStreak)
		if outcome.IsNewRecord {
			fmt.Printf("New record! Longest streak is now %d.\n", updated.LongestStreak)
		}
	} else {
		fmt.Printf("Marked %q incomplete for %s. Current streak: %d\n", c.Name, day, outcome.NewStreak)
	}
	return nil
}

type HabitTodayCmd struct{}

func (c *HabitTodayCmd) Run(ctx *cli.Context) error {
	if err := ctx.Store.Load(); err != nil {
		return err
	}

	habits, err := ctx.Store.GetAllHabits(false)
	if err != nil {
		return err
	}
	if len(habits) == 0 {
		fmt.Println("No habits found.")
		return nil
	}

	now, err := nowFromSettings(ctx)
	if err != nil {
		return err
	}
	today := now.Format(constants.DateFormat)

	fmt.Printf("Habits for %s:\n\n", today)
	completed, eligible := 0, 0
	for _, h := range habits {
		if !habit.IsEligibleDay(now, h.Frequency) {
			fmt.Printf(" -  %s (not scheduled today)\n", h.Name)
			continue
		}
		eligible++
		status := "[ ]"
		if entry, ok := h.Progress[today]; ok && entry.Completed {
			status = "[x]"
			completed++
		}
		fmt.Printf("%s %s\n", status, h.Name)
	}

	fmt.Printf("\nCompleted: %d/%d\n", completed, eligible)
	return nil
}

type HabitLogCmd struct {
	Name string `arg:"" optional:"" help:"Show log for a specific habit only."`
	Days int    `help:"Number of days to show." default:"14"`
}

func (c *HabitLogCmd) Run(ctx *cli.Context) error {
	if err := ctx.Store.Load(); err != nil {
		return err
	}

	habits, err := ctx.Store.GetAllHabits(false)
	if err != nil {
		return err
	}

	if c.Name != "" {
		var selected []models.Habit
		for _, h := range habits {
			if h.Name == c.Name {
				selected = append(selected, h)
				break
			}
		}
		if len(selected) == 0 {
			return fmt.Errorf("habit %q not found", c.Name)
		}
		habits = selected
	}
	if len(habits) == 0 {
		fmt.Println("No habits found.")
		return nil
	}
	if c.Days < 1 {
		return fmt.Errorf("--days must be at least 1")
	}

	now, err := nowFromSettings(ctx)
	if err != nil {
		return err
	}
	start := now.AddDate(0, 0, -(c.Days - 1))

	fmt.Printf("Habit log (last %d days):\n\n", c.Days)

	const nameWidth = 20
	fmt.Print(padName("Habit", nameWidth))
	for i := 0; i < c.Days; i++ {
		fmt.Printf(" %5s", start.AddDate(0, 0, i).Format("01/02"))
	}
	fmt.Println()
	fmt.Println(strings.Repeat("-", nameWidth+6*c.Days))

	for _, h := range habits {
		fmt.Print(padName(h.Name, nameWidth))
		for i := 0; i < c.Days; i++ {
			day := start.AddDate(0, 0, i)
			fmt.Printf("  %s   ", logMarker(h, day))
		}
		fmt.Println()
	}

	fmt.Println("\nx completed   . missed   (blank) not scheduled")
	return nil
}

// logMarker renders one calendar cell: completed, missed-eligible, or
// ineligible.
func logMarker(h models.Habit, day time.Time) string {
	dayStr := day.Format(constants.DateFormat)
	if entry, ok := h.Progress[dayStr]; ok && entry.Completed {
		return "x"
	}
	if habit.IsEligibleDay(day, h.Frequency) {
		return "."
	}
	return " "
}

func padName(name string, width int) string {
	if len(name) > width {
		if width >= 5 {
			return name[:width-3] + "..."
		}
		return name[:width]
	}
	return name + strings.Repeat(" ", width-len(name))
}

type HabitDaysCmd struct {
	Name string `arg:"" help:"Habit name."`
	Days string `arg:"" help:"Comma-separated weekdays (e.g. mon,wed,fri)."`
}

func (c *HabitDaysCmd) Run(ctx *cli.Context) error {
	if err := ctx.Store.Load(); err != nil {
		return err
	}

	h, err := ctx.Store.GetHabitByName(c.Name)
	if err != nil {
		return fmt.Errorf("habit %q not found", c.Name)
	}

	days, err := cli.ParseWeekdays(c.Days)
	if err != nil {
		return err
	}

	h.Frequency = models.Frequency{Type: models.FrequencyWeekly, Days: days}
	if err := habit.ValidateFrequency(h.Frequency); err != nil {
		return err
	}

	// Streaks depend on eligibility, so recompute against the new schedule
	now, err := nowFromSettings(ctx)
	if err != nil {
		return err
	}
	h.CurrentStreak = habit.ComputeCurrentStreak(h.Progress, h.Frequency, now)
	if h.CurrentStreak > h.LongestStreak {
		h.LongestStreak = h.CurrentStreak
	}

	if err := ctx.Store.UpdateHabit(h); err != nil {
		return err
	}

	fmt.Printf("Updated %q: %s\n", c.Name, cli.FormatFrequency(h.Frequency))
	return nil
}

type HabitDeleteCmd struct {
	Name string `arg:"" help:"Habit name to delete."`
}

func (c *HabitDeleteCmd) Run(ctx *cli.Context) error {
	if err := ctx.Store.Load(); err != nil {
		return err
	}

	h, err := ctx.Store.GetHabitByName(c.Name)
	if err != nil {
		return fmt.Errorf("habit %q not found", c.Name)
	}

	if err := ctx.Store.DeleteHabit(h.ID); err != nil {
		return err
	}

	fmt.Printf("Deleted habit: %s\n", c.Name)
	fmt.Printf("(This is a soft delete. Use '%s habit restore' to undo)\n", constants.AppName)
	return nil
}

type HabitRestoreCmd struct {
	Name string `arg:"" help:"Habit name to restore."`
}

func (c *HabitRestoreCmd) Run(ctx *cli.Context) error {
	if err := ctx.Store.Load(); err != nil {
		return err
	}

	habits, err := ctx.Store.GetAllHabits(true)
	if err != nil {
		return err
	}

	var target *models.Habit
	for i := range habits {
		if habits[i].Name == c.Name && habits[i].DeletedAt != nil {
			target = &habits[i]
			break
		}
	}
	if target == nil {
		return fmt.Errorf("deleted habit %q not found", c.Name)
	}

	if err := ctx.Store.RestoreHabit(target.ID); err != nil {
		return err
	}

	fmt.Printf("Restored habit: %s\n", c.Name)
	return nil
}

func nowFromSettings(ctx *cli.Context) (time.Time, error) {
	settings, err := ctx.Store.GetSettings()
	if err != nil {
		return time.Time{}, fmt.Errorf("failed to get settings: %w", err)
	}
	return utils.NowInTimezone(settings.Timezone)
}
