package habit

import "fmt"

// FutureDateError is returned when a toggle targets a date after today.
// The habit is left untouched.
type FutureDateError struct {
	Date string
}

func (e *FutureDateError) Error() string {
	return fmt.Sprintf("cannot record progress for future date %s", e.Date)
}

// MalformedFrequencyError is returned when a habit's frequency rule cannot be
// evaluated: an unknown type, or a weekly rule with no (or invalid) days.
type MalformedFrequencyError struct {
	Reason string
}

func (e *MalformedFrequencyError) Error() string {
	return fmt.Sprintf("malformed frequency: %s", e.Reason)
}
