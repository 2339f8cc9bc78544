package settings

import (
	"fmt"

	"github.com/stridecoach/stride/internal/cli"
	"github.com/stridecoach/stride/internal/keyring"
	"github.com/stridecoach/stride/internal/storage"
	"github.com/stridecoach/stride/internal/utils"
)

type SettingsCmd struct {
	Show          SettingsShowCmd          `cmd:"" default:"1" help:"Show current settings."`
	Set           SettingsSetCmd           `cmd:"" help:"Update settings."`
	SetConnection SettingsSetConnectionCmd `cmd:"" name:"set-connection" help:"Store a PostgreSQL connection string in the OS keyring."`
}

type SettingsShowCmd struct{}

func (c *SettingsShowCmd) Run(ctx *cli.Context) error {
	if err := ctx.Store.Load(); err != nil {
		return err
	}

	settings, err := ctx.Store.GetSettings()
	if err != nil {
		return fmt.Errorf("failed to get settings: %w", err)
	}

	fmt.Println("Current Settings:")
	fmt.Printf("  First Name:      %s\n", orUnset(settings.FirstName))
	fmt.Printf("  Phone:           %s\n", orUnset(settings.Phone))
	fmt.Printf("  Timezone:        %s\n", settings.Timezone)
	fmt.Printf("  Coach Endpoint:  %s\n", settings.CoachEndpoint)
	fmt.Printf("  Reminders:       %v\n", settings.RemindersEnabled)
	return nil
}

func orUnset(s string) string {
	if s == "" {
		return "(not set)"
	}
	return s
}

type SettingsSetCmd struct {
	FirstName     *string `help:"First name used by the coaching bots."`
	Phone         *string `help:"Phone number for coaching calls (E.164 format)."`
	Timezone      *string `help:"IANA timezone for day boundaries (e.g. Europe/Berlin)."`
	CoachEndpoint *string `help:"Base URL of the coach dispatch service."`
	Reminders     *bool   `help:"Enable or disable habit reminders."`
}

func (c *SettingsSetCmd) Run(ctx *cli.Context) error {
	if err := ctx.Store.Load(); err != nil {
		return err
	}

	settings, err := ctx.Store.GetSettings()
	if err != nil {
		return fmt.Errorf("failed to get settings: %w", err)
	}

	updated := false
	if c.FirstName != nil {
		settings.FirstName = *c.FirstName
		updated = true
	}
	if c.Phone != nil {
		settings.Phone = *c.Phone
		updated = true
	}
	if c.Timezone != nil {
		if !utils.ValidateTimezone(*c.Timezone) {
			return fmt.Errorf("invalid timezone: %s", *c.Timezone)
		}
		settings.Timezone = *c.Timezone
		updated = true
	}
	if c.CoachEndpoint != nil {
		settings.CoachEndpoint = *c.CoachEndpoint
		updated = true
	}
	if c.Reminders != nil {
		settings.RemindersEnabled = *c.Reminders
		updated = true
	}

	if !updated {
		fmt.Println("No changes specified. Use flags to update settings.")
		return nil
	}

	if err := ctx.Store.SaveSettings(settings); err != nil {
		return fmt.Errorf("failed to save settings: %w", err)
	}
	fmt.Println("Settings updated successfully.")
	return nil
}

type SettingsSetConnectionCmd struct {
	ConnString string `arg:"" optional:"" help:"PostgreSQL connection string (postgres://...)."`
	Delete     bool   `help:"Remove the stored connection string instead."`
}

func (c *SettingsSetConnectionCmd) Run(ctx *cli.Context) error {
	if c.Delete {
		if err := keyring.DeleteConnectionString(); err != nil {
			return err
		}
		fmt.Println("Removed stored connection string.")
		return nil
	}

	if c.ConnString == "" {
		return fmt.Errorf("connection string is required (or pass --delete)")
	}
	if !storage.IsPostgresConnString(c.ConnString) {
		return fmt.Errorf("expected a postgres:// or postgresql:// connection string")
	}
	if storage.HasEmbeddedCredentials(c.ConnString) {
		return fmt.Errorf("connection string contains an embedded password; use environment variables or .pgpass instead")
	}

	if err := keyring.SetConnectionString(c.ConnString); err != nil {
		return err
	}
	fmt.Println("Stored connection string in the OS keyring.")
	return nil
}
