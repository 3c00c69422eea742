package todo

import (
	"context"
	"time"

	"github.com/Waghib/Speech-To-Plan-reminder/internal/model"
)

//go:generate mockery --name UseCase
type UseCase interface {
	// Create inserts a task unless an equivalent one already exists. A due
	// date on the request may instead be backfilled onto an undated twin.
	Create(ctx context.Context, input CreateInput) (CreateOutput, error)

	// ListAll returns every task, newest first.
	ListAll(ctx context.Context) ([]model.Task, error)

	// Search returns tasks whose title contains the query, case-insensitive.
	Search(ctx context.Context, query string) ([]model.Task, error)

	// DeleteByIDs removes the given tasks and returns how many existed.
	DeleteByIDs(ctx context.Context, ids []int64) (int64, error)

	// DeleteByName deletes the single task matching name, or returns the
	// ambiguous matches without deleting anything.
	DeleteByName(ctx context.Context, name string) (DeleteByNameOutput, error)
}

// CalendarMirror mirrors dated tasks into an external calendar. Implemented
// by pkg/gcalendar; a nil mirror disables mirroring.
type CalendarMirror interface {
	CreateAllDayEvent(ctx context.Context, title string, date time.Time) (string, error)
	DeleteEvent(ctx context.Context, eventID string) error
}
