package models

import (
	"fmt"
	"strings"
	"time"
)

var weekdayIDs = map[time.Weekday]string{
	time.Sunday:    "sun",
	time.Monday:    "mon",
	time.Tuesday:   "tue",
	time.Wednesday: "wed",
	time.Thursday:  "thu",
	time.Friday:    "fri",
	time.Saturday:  "sat",
}

// WeekdayID returns the short lowercase identifier for a weekday ("mon".."sun").
func WeekdayID(wd time.Weekday) string {
	return weekdayIDs[wd]
}

// ParseWeekdayID parses a short weekday identifier back into a time.Weekday.
func ParseWeekdayID(id string) (time.Weekday, error) {
	for wd, s := range weekdayIDs {
		if s == strings.ToLower(strings.TrimSpace(id)) {
			return wd, nil
		}
	}
	return 0, fmt.Errorf("unrecognized weekday %q", id)
}

// FormatWeekdays renders a weekday set as a comma-separated id list, e.g. "mon,wed,fri".
func FormatWeekdays(days []time.Weekday) string {
	ids := make([]string, 0, len(days))
	for _, wd := range days {
		ids = append(ids, WeekdayID(wd))
	}
	return strings.Join(ids, ",")
}

// ParseWeekdayList parses a comma-separated id list produced by FormatWeekdays.
func ParseWeekdayList(s string) ([]time.Weekday, error) {
	if strings.TrimSpace(s) == "" {
		return nil, nil
	}
	var days []time.Weekday
	for _, part := range strings.Split(s, ",") {
		wd, err := ParseWeekdayID(part)
		if err != nil {
			return nil, err
		}
		days = append(days, wd)
	}
	return days, nil
}
