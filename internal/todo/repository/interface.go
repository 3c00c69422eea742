package repository

import (
	"context"

	"github.com/Waghib/Speech-To-Plan-reminder/internal/model"
)

// Repository defines all data access methods for the Task entity.
type Repository interface {
	CreateTask(ctx context.Context, opt CreateTaskOptions) (model.Task, error)
	ListTasks(ctx context.Context) ([]model.Task, error)
	SearchTasks(ctx context.Context, query string) ([]model.Task, error)
	DeleteTasks(ctx context.Context, ids []int64) ([]model.Task, error)

	// UpdateDueDate writes a due date onto a task only while the stored date
	// is still NULL. The returned task reflects the row after the attempt.
	UpdateDueDate(ctx context.Context, opt UpdateDueDateOptions) (model.Task, error)

	// SetCalendarEventID records the mirrored calendar event for a task.
	SetCalendarEventID(ctx context.Context, id int64, eventID string) error
}
