package constants

import "time"

// Context keys
const (
	ContextKeyUserID = "userID"
)

// Authentication
const (
	MinPasswordLength = 8
	TokenLifetime     = 72 * time.Hour
)

// Time and date formats used across the API
const (
	// TimeOfDayLayout is the zero-padded 24-hour clock format for scheduled
	// dose times (e.g. "08:00"). Dose ordering relies on this being
	// fixed-width, so every stored time must match it.
	TimeOfDayLayout = "15:04"

	// DateLayout is the calendar-date format accepted in query parameters
	// and log payloads.
	DateLayout = "2006-01-02"
)

// Validation limits
const (
	MaxLogNotesLength = 200
)
