package system

import (
	"fmt"

	"github.com/stridecoach/stride/internal/cli"
	"github.com/stridecoach/stride/internal/notifier"
	"github.com/stridecoach/stride/internal/utils"
)

// RemindCmd is run by a cron job or the tray app scheduler, not by hand.
type RemindCmd struct {
	DryRun bool `help:"Print reminders to stdout instead of sending them."`
}

func (c *RemindCmd) Run(ctx *cli.Context) error {
	if err := ctx.Store.Load(); err != nil {
		return err
	}

	settings, err := ctx.Store.GetSettings()
	if err != nil {
		return fmt.Errorf("failed to get settings: %w", err)
	}

	if !settings.RemindersEnabled {
		if c.DryRun {
			fmt.Println("Reminders are disabled in settings.")
		}
		return nil
	}

	now, err := utils.NowInTimezone(settings.Timezone)
	if err != nil {
		return err
	}

	habits, err := ctx.Store.GetAllHabits(false)
	if err != nil {
		return err
	}

	n := notifier.New()
	for _, h := range notifier.DueReminders(habits, now) {
		msg := fmt.Sprintf("Time for %s (%s)", h.Name, h.ReminderTime)
		if c.DryRun {
			fmt.Println("[DryRun] " + msg)
			continue
		}
		if err := n.Notify(msg); err != nil {
			// Keep checking remaining habits
			fmt.Printf("Failed to send reminder for %q: %v\n", h.Name, err)
		}
	}

	return nil
}
