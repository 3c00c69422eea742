package repository

import "time"

// CreateTaskOptions holds parameters for inserting a new Task.
type CreateTaskOptions struct {
	Title   string
	DueDate *time.Time
}

// UpdateDueDateOptions holds parameters for the conditional due-date write.
type UpdateDueDateOptions struct {
	ID      int64
	DueDate time.Time
}
