package gcalendar

import "time"

// Reminder lead times for mirrored tasks, in minutes before the event.
const (
	ReminderDayBefore  = 24 * 60
	ReminderHourBefore = 60
)

// DefaultTimezone is used when no timezone is configured.
const DefaultTimezone = "UTC"

// Event is a simplified representation of a Google Calendar event.
type Event struct {
	ID       string
	Summary  string
	HtmlLink string
	Date     time.Time
}
