package postgre

import (
	"context"
	"database/sql"

	"github.com/lib/pq"

	"github.com/Waghib/Speech-To-Plan-reminder/internal/model"
	repo "github.com/Waghib/Speech-To-Plan-reminder/internal/todo/repository"
)

const taskColumns = `id, title, due_date, calendar_event_id, created_at, updated_at`

// scanTask reads one task row, mapping the nullable columns.
func scanTask(row interface{ Scan(...any) error }) (model.Task, error) {
	var (
		t       model.Task
		due     sql.NullTime
		eventID sql.NullString
	)
	if err := row.Scan(&t.ID, &t.Title, &due, &eventID, &t.CreatedAt, &t.UpdatedAt); err != nil {
		return model.Task{}, err
	}
	if due.Valid {
		d := due.Time
		t.DueDate = &d
	}
	t.CalendarEventID = eventID.String
	return t, nil
}

// CreateTask inserts a new Task row and returns the created entity.
func (r *implRepository) CreateTask(ctx context.Context, opt repo.CreateTaskOptions) (model.Task, error) {
	const query = `
		INSERT INTO todos (title, due_date, created_at, updated_at)
		VALUES ($1, $2, NOW(), NOW())
		RETURNING ` + taskColumns

	var due sql.NullTime
	if opt.DueDate != nil {
		due = sql.NullTime{Time: *opt.DueDate, Valid: true}
	}

	t, err := scanTask(r.db.QueryRowContext(ctx, query, opt.Title, due))
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("CreateTask"), err)
		return model.Task{}, repo.ErrFailedToInsert
	}
	return t, nil
}

// ListTasks returns every task, newest first.
func (r *implRepository) ListTasks(ctx context.Context) ([]model.Task, error) {
	const query = `SELECT ` + taskColumns + ` FROM todos ORDER BY created_at DESC`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("ListTasks"), err)
		return nil, repo.ErrFailedToList
	}
	defer rows.Close()

	tasks, err := collectTasks(rows)
	if err != nil {
		r.l.Errorf(ctx, "%s scan: %v", r.dsn("ListTasks"), err)
		return nil, repo.ErrFailedToList
	}
	return tasks, nil
}

// SearchTasks returns tasks whose title contains query, case-insensitive.
func (r *implRepository) SearchTasks(ctx context.Context, query string) ([]model.Task, error) {
	const q = `SELECT ` + taskColumns + ` FROM todos WHERE title ILIKE $1 ORDER BY created_at DESC`

	rows, err := r.db.QueryContext(ctx, q, "%"+query+"%")
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("SearchTasks"), err)
		return nil, repo.ErrFailedToSearch
	}
	defer rows.Close()

	tasks, err := collectTasks(rows)
	if err != nil {
		r.l.Errorf(ctx, "%s scan: %v", r.dsn("SearchTasks"), err)
		return nil, repo.ErrFailedToSearch
	}
	return tasks, nil
}

// DeleteTasks removes the given tasks and returns the rows that existed.
func (r *implRepository) DeleteTasks(ctx context.Context, ids []int64) ([]model.Task, error) {
	const query = `DELETE FROM todos WHERE id = ANY($1) RETURNING ` + taskColumns

	rows, err := r.db.QueryContext(ctx, query, pq.Array(ids))
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("DeleteTasks"), err)
		return nil, repo.ErrFailedToDelete
	}
	defer rows.Close()

	tasks, err := collectTasks(rows)
	if err != nil {
		r.l.Errorf(ctx, "%s scan: %v", r.dsn("DeleteTasks"), err)
		return nil, repo.ErrFailedToDelete
	}
	return tasks, nil
}

// UpdateDueDate fills in a task's due date only while the stored value is
// still NULL. The row lock makes concurrent backfills of the same task
// serialize; the loser sees the winner's date and leaves it alone.
func (r *implRepository) UpdateDueDate(ctx context.Context, opt repo.UpdateDueDateOptions) (model.Task, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		r.l.Errorf(ctx, "%s begin: %v", r.dsn("UpdateDueDate"), err)
		return model.Task{}, repo.ErrFailedToUpdate
	}
	defer tx.Rollback()

	const selectQuery = `SELECT ` + taskColumns + ` FROM todos WHERE id = $1 FOR UPDATE`
	t, err := scanTask(tx.QueryRowContext(ctx, selectQuery, opt.ID))
	if err == sql.ErrNoRows {
		return model.Task{}, repo.ErrTaskNotFound
	}
	if err != nil {
		r.l.Errorf(ctx, "%s select: %v", r.dsn("UpdateDueDate"), err)
		return model.Task{}, repo.ErrFailedToUpdate
	}

	if t.DueDate != nil {
		// Already dated, nothing to write.
		return t, tx.Commit()
	}

	const updateQuery = `
		UPDATE todos SET due_date = $1, updated_at = NOW()
		WHERE id = $2
		RETURNING ` + taskColumns
	t, err = scanTask(tx.QueryRowContext(ctx, updateQuery, opt.DueDate, opt.ID))
	if err != nil {
		r.l.Errorf(ctx, "%s update: %v", r.dsn("UpdateDueDate"), err)
		return model.Task{}, repo.ErrFailedToUpdate
	}
	return t, tx.Commit()
}

// SetCalendarEventID records the mirrored calendar event for a task.
func (r *implRepository) SetCalendarEventID(ctx context.Context, id int64, eventID string) error {
	const query = `UPDATE todos SET calendar_event_id = $1, updated_at = NOW() WHERE id = $2`

	if _, err := r.db.ExecContext(ctx, query, eventID, id); err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("SetCalendarEventID"), err)
		return repo.ErrFailedToUpdate
	}
	return nil
}

func collectTasks(rows *sql.Rows) ([]model.Task, error) {
	var tasks []model.Task
	for rows.Next() {
		t, err := scanTask(rows)
		if err != nil {
			return nil, err
		}
		tasks = append(tasks, t)
	}
	return tasks, rows.Err()
}
