package models

// Settings represents application-wide settings
type Settings struct {
	FirstName        string `json:"first_name"`        // user's first name, passed to the coaching service
	Phone            string `json:"phone"`             // phone number dialed by coach calls, E.164 format
	Timezone         string `json:"timezone"`          // IANA timezone name, or "Local" for the system timezone
	CoachEndpoint    string `json:"coach_endpoint"`    // base URL of the call dispatch service
	RemindersEnabled bool   `json:"reminders_enabled"` // whether habit reminders are sent
}
