package system

import (
	"fmt"
	"io/fs"
	"time"

	"github.com/stridecoach/stride/internal/backup"
	"github.com/stridecoach/stride/internal/cli"
	"github.com/stridecoach/stride/internal/habit"
	"github.com/stridecoach/stride/internal/migration"
	"github.com/stridecoach/stride/internal/storage"
	"github.com/stridecoach/stride/internal/utils"
	"github.com/stridecoach/stride/migrations"
)

type DoctorCmd struct{}

func (cmd *DoctorCmd) Run(ctx *cli.Context) error {
	fmt.Println("Running diagnostics...")
	fmt.Println()

	hasError := false
	dbReachable := false

	if err := ctx.Store.Load(); err != nil {
		fmt.Printf("FAIL database reachable\n     %v\n", err)
		hasError = true
	} else {
		fmt.Printf("ok   database reachable\n")
		dbReachable = true
	}

	if sqliteStore, ok := ctx.Store.(*storage.SQLiteStore); ok && dbReachable {
		if err := checkSchemaVersion(sqliteStore); err != nil {
			fmt.Printf("FAIL schema version\n     %v\n", err)
			hasError = true
		} else {
			fmt.Printf("ok   schema version\n")
		}
	} else {
		fmt.Printf("skip schema version (SQLite only)\n")
	}

	if _, ok := ctx.Store.(*storage.SQLiteStore); ok {
		if err := checkBackupsPresent(ctx); err != nil {
			fmt.Printf("warn backups present\n     %v\n", err)
		} else {
			fmt.Printf("ok   backups present\n")
		}
	} else {
		fmt.Printf("skip backups (SQLite only)\n")
	}

	if err := checkClockTimezone(ctx, dbReachable); err != nil {
		fmt.Printf("FAIL clock/timezone\n     %v\n", err)
		hasError = true
	} else {
		fmt.Printf("ok   clock/timezone\n")
	}

	if dbReachable {
		if err := checkHabitIntegrity(ctx); err != nil {
			fmt.Printf("FAIL habit integrity\n     %v\n", err)
			hasError = true
		} else {
			fmt.Printf("ok   habit integrity\n")
		}
	} else {
		fmt.Printf("skip habit integrity (database not reachable)\n")
	}

	fmt.Println()
	if hasError {
		return fmt.Errorf("diagnostics found problems")
	}
	fmt.Println("All checks passed.")
	return nil
}

func checkSchemaVersion(store *storage.SQLiteStore) error {
	subFS, err := fs.Sub(migrations.FS, "sqlite")
	if err != nil {
		return err
	}
	return migration.NewRunner(store.GetDB(), subFS).ValidateVersion()
}

func checkBackupsPresent(ctx *cli.Context) error {
	mgr := backup.NewManager(ctx.Store.GetConfigPath())
	backups, err := mgr.ListBackups()
	if err != nil {
		return err
	}
	if len(backups) == 0 {
		return fmt.Errorf("no backups found; one will be created the next time the TUI starts")
	}
	if age := time.Since(backups[0].Timestamp); age > 7*24*time.Hour {
		return fmt.Errorf("latest backup is %.0f days old", age.Hours()/24)
	}
	return nil
}

func checkClockTimezone(ctx *cli.Context, dbReachable bool) error {
	timezone := "Local"
	if dbReachable {
		settings, err := ctx.Store.GetSettings()
		if err != nil {
			return err
		}
		timezone = settings.Timezone
	}
	if !utils.ValidateTimezone(timezone) {
		return fmt.Errorf("configured timezone %q is not a valid IANA timezone", timezone)
	}
	now, err := utils.NowInTimezone(timezone)
	if err != nil {
		return err
	}
	if now.Year() < 2020 {
		return fmt.Errorf("system clock looks wrong: %s", now.Format(time.RFC3339))
	}
	return nil
}

// checkHabitIntegrity verifies stored streaks agree with the progress ledger
// and that frequencies are well formed.
func checkHabitIntegrity(ctx *cli.Context) error {
	settings, err := ctx.Store.GetSettings()
	if err != nil {
		return err
	}
	now, err := utils.NowInTimezone(settings.Timezone)
	if err != nil {
		return err
	}

	habits, err := ctx.Store.GetAllHabits(false)
	if err != nil {
		return err
	}

	seenNames := make(map[string]bool)
	for _, h := range habits {
		if err := habit.ValidateFrequency(h.Frequency); err != nil {
			return fmt.Errorf("habit %q: %w", h.Name, err)
		}
		if seenNames[h.Name] {
			return fmt.Errorf("duplicate habit name: %q", h.Name)
		}
		seenNames[h.Name] = true

		expected := habit.ComputeCurrentStreak(h.Progress, h.Frequency, now)
		if h.CurrentStreak != expected {
			return fmt.Errorf("habit %q: stored streak %d disagrees with computed streak %d", h.Name, h.CurrentStreak, expected)
		}
		if h.LongestStreak < h.CurrentStreak {
			return fmt.Errorf("habit %q: longest streak %d is below current streak %d", h.Name, h.LongestStreak, h.CurrentStreak)
		}
	}
	return nil
}
