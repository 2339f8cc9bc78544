package cli

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/stridecoach/stride/internal/backup"
	"github.com/stridecoach/stride/internal/logger"
	"github.com/stridecoach/stride/internal/models"
	"github.com/stridecoach/stride/internal/storage"
)

type Context struct {
	Store storage.Provider
}

// PerformAutomaticBackup creates an automatic backup and silently handles errors
func (c *Context) PerformAutomaticBackup() {
	if _, ok := c.Store.(*storage.SQLiteStore); !ok {
		return
	}
	mgr := backup.NewManager(c.Store.GetConfigPath())
	if _, err := mgr.CreateBackup(); err != nil {
		// Log warning but don't interrupt user workflow
		logger.Warn("Automatic backup failed", "error", err)
	}
}

// ParseWeekdays parses a comma-separated list of weekdays. Accepts short ids
// ("mon"), full names ("monday"), and numbers (0=Sunday, 6=Saturday).
func ParseWeekdays(s string) ([]time.Weekday, error) {
	parts := strings.Split(s, ",")
	var weekdays []time.Weekday

	dayMap := map[string]time.Weekday{
		"sun":       time.Sunday,
		"sunday":    time.Sunday,
		"mon":       time.Monday,
		"monday":    time.Monday,
		"tue":       time.Tuesday,
		"tuesday":   time.Tuesday,
		"wed":       time.Wednesday,
		"wednesday": time.Wednesday,
		"thu":       time.Thursday,
		"thursday":  time.Thursday,
		"fri":       time.Friday,
		"friday":    time.Friday,
		"sat":       time.Saturday,
		"saturday":  time.Saturday,
	}

	seen := make(map[time.Weekday]bool)
	for _, part := range parts {
		part = strings.TrimSpace(strings.ToLower(part))
		wd, ok := dayMap[part]
		if !ok {
			num, err := strconv.Atoi(part)
			if err != nil || num < 0 || num > 6 {
				return nil, fmt.Errorf("invalid weekday: %s", part)
			}
			wd = time.Weekday(num)
		}
		if seen[wd] {
			continue
		}
		seen[wd] = true
		weekdays = append(weekdays, wd)
	}

	return weekdays, nil
}

// FormatFrequency formats a habit frequency into a human-readable string
func FormatFrequency(freq models.Frequency) string {
	switch freq.Type {
	case models.FrequencyDaily:
		return "daily"
	case models.FrequencyWeekly:
		if len(freq.Days) > 0 {
			var days []string
			for _, wd := range freq.Days {
				days = append(days, models.WeekdayID(wd))
			}
			return fmt.Sprintf("weekly on %s", strings.Join(days, ","))
		}
		return "weekly"
	default:
		return "unknown"
	}
}
