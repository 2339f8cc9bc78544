package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/alecthomas/kong"

	"github.com/stridecoach/stride/internal/cli"
	"github.com/stridecoach/stride/internal/cli/backups"
	"github.com/stridecoach/stride/internal/cli/coach"
	"github.com/stridecoach/stride/internal/cli/habits"
	"github.com/stridecoach/stride/internal/cli/settings"
	"github.com/stridecoach/stride/internal/cli/system"
	"github.com/stridecoach/stride/internal/constants"
	"github.com/stridecoach/stride/internal/keyring"
	"github.com/stridecoach/stride/internal/logger"
	"github.com/stridecoach/stride/internal/storage"
)

var CLI struct {
	Version kong.VersionFlag
	Debug   bool   `help:"Enable debug logging."`
	Config  string `help:"Database path or PostgreSQL connection string. For PostgreSQL, credentials must NOT be embedded in the connection string. Use the OS keyring, environment variables, or .pgpass instead." type:"path" default:"~/.config/stride/stride.db"`

	Init     system.InitCmd       `cmd:"" help:"Initialize stride storage."`
	Doctor   system.DoctorCmd     `cmd:"" help:"Run health checks and diagnostics."`
	Tui      system.TuiCmd        `cmd:"" help:"Launch the interactive TUI." default:"1"`
	Habit    habits.HabitCmd      `cmd:"" help:"Manage habits and daily progress."`
	Coach    coach.CoachCmd       `cmd:"" help:"Coaching calls."`
	Settings settings.SettingsCmd `cmd:"" help:"Manage application settings."`
	Backup   backups.BackupCmd    `cmd:"" help:"Manage database backups."`
	Remind   system.RemindCmd     `cmd:"" hidden:"" help:"Send due habit reminders (used by the scheduler)."`
}

func main() {
	ctx := kong.Parse(&CLI,
		kong.Name(constants.AppName),
		kong.Description("Habit coaching companion: streaks, reminders, and coaching calls"),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{
			Compact:             true,
			NoExpandSubcommands: true,
		}),
		kong.Vars{"version": constants.Version},
	)

	store := selectStore(resolveConfig())

	if err := logger.Init(logger.Config{
		Debug:     CLI.Debug,
		ConfigDir: filepath.Dir(store.GetConfigPath()),
	}); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: failed to initialize logging: %v\n", err)
	}

	appCtx := &cli.Context{Store: store}

	err := ctx.Run(appCtx)
	if closeErr := store.Close(); closeErr != nil {
		logger.Warn("Failed to close store", "error", closeErr)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// resolveConfig prefers an explicit --config, then a connection string from
// the OS keyring, then the default database path.
func resolveConfig() string {
	if CLI.Config != "" && CLI.Config != defaultConfigPath() {
		return CLI.Config
	}
	if connStr, err := keyring.GetConnectionString(); err == nil && connStr != "" {
		return connStr
	}
	return CLI.Config
}

func defaultConfigPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return constants.DefaultConfigPath
	}
	return filepath.Join(home, strings.TrimPrefix(constants.DefaultConfigPath, "~/"))
}

func selectStore(config string) storage.Provider {
	if storage.IsPostgresConnString(config) {
		if storage.HasEmbeddedCredentials(config) {
			fmt.Fprintln(os.Stderr, "Error: PostgreSQL connection strings with embedded credentials are not allowed.")
			fmt.Fprintln(os.Stderr, "Use one of these alternatives:")
			fmt.Fprintf(os.Stderr, "  1. OS keyring:   %s settings set-connection \"postgresql://user@host:5432/%s\"\n", constants.AppName, constants.AppName)
			fmt.Fprintln(os.Stderr, "  2. .pgpass file: keep the password out of the connection string")
			os.Exit(1)
		}
		return storage.NewPostgresStore(config)
	}
	if strings.HasSuffix(config, ".json") {
		return storage.NewJSONStore(config)
	}
	return storage.NewSQLiteStore(config)
}
