package model

import "time"

// Task is a stored task row. The interpreter only reads tasks and proposes
// mutations; the store owns them.
type Task struct {
	ID              int64
	Title           string
	DueDate         *time.Time // date only; time component is always midnight
	CalendarEventID string     // opaque Google Calendar event id, empty when not mirrored
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// DueOn reports whether the task is due on the same calendar day as t.
func (t Task) DueOn(day time.Time) bool {
	if t.DueDate == nil {
		return false
	}
	y1, m1, d1 := t.DueDate.Date()
	y2, m2, d2 := day.Date()
	return y1 == y2 && m1 == m2 && d1 == d2
}

type Environment string

const (
	EnvironmentDevelopment Environment = "development"
	EnvironmentProduction  Environment = "production"
)
