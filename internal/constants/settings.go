package constants

const (
	DefaultTimezone         = "Local"
	DefaultRemindersEnabled = true

	// DefaultCoachEndpoint is where call dispatch requests are sent unless
	// the user configures their own coaching service.
	DefaultCoachEndpoint = "https://coach.stridecoach.dev"
)
