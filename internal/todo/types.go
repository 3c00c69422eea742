package todo

import (
	"time"

	"github.com/Waghib/Speech-To-Plan-reminder/internal/model"
)

// --- UseCase Inputs ---

type CreateInput struct {
	Title   string
	DueDate *time.Time
}

// --- UseCase Outputs ---

// CreateOutput reports what actually happened to a creation request. At most
// one of Duplicate and Backfilled is true; Task is always populated with the
// surviving row.
type CreateOutput struct {
	Task model.Task

	// Duplicate means an equivalent task already existed and no row was
	// inserted.
	Duplicate bool

	// Backfilled means the existing task had no due date and the request's
	// date was written onto it instead of inserting a new row.
	Backfilled bool
}

// DeleteByNameOutput resolves a spoken deletion target. Exactly one match
// deletes the task; several matches delete nothing and return the candidates
// for the caller to present.
type DeleteByNameOutput struct {
	Deleted *model.Task
	Matches []model.Task
}
