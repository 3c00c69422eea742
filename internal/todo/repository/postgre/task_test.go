package postgre

import (
	"context"
	"errors"
	"testing"
	"time"

	sqlmock "github.com/DATA-DOG/go-sqlmock"

	repo "github.com/Waghib/Speech-To-Plan-reminder/internal/todo/repository"
	"github.com/Waghib/Speech-To-Plan-reminder/pkg/log"
)

var taskCols = []string{"id", "title", "due_date", "calendar_event_id", "created_at", "updated_at"}

func newMockRepo(t *testing.T) (repo.Repository, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	t.Cleanup(func() { db.Close() })
	return New(db, log.NewNop()), mock
}

func TestCreateTask(t *testing.T) {
	r, mock := newMockRepo(t)
	now := time.Now()
	due := time.Date(2025, 6, 2, 0, 0, 0, 0, time.UTC)

	mock.ExpectQuery(`INSERT INTO todos`).
		WithArgs("Buy milk", sqlmock.AnyArg()).
		WillReturnRows(sqlmock.NewRows(taskCols).
			AddRow(int64(1), "Buy milk", due, nil, now, now))

	task, err := r.CreateTask(context.Background(), repo.CreateTaskOptions{Title: "Buy milk", DueDate: &due})
	if err != nil {
		t.Fatalf("CreateTask: %v", err)
	}
	if task.ID != 1 || task.Title != "Buy milk" {
		t.Errorf("unexpected task: %+v", task)
	}
	if task.DueDate == nil || !task.DueDate.Equal(due) {
		t.Errorf("due = %v, want %v", task.DueDate, due)
	}
	if task.CalendarEventID != "" {
		t.Errorf("event id = %q, want empty", task.CalendarEventID)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Error(err)
	}
}

func TestCreateTask_Error(t *testing.T) {
	r, mock := newMockRepo(t)

	mock.ExpectQuery(`INSERT INTO todos`).
		WillReturnError(errors.New("connection refused"))

	_, err := r.CreateTask(context.Background(), repo.CreateTaskOptions{Title: "Buy milk"})
	if !errors.Is(err, repo.ErrFailedToInsert) {
		t.Errorf("expected ErrFailedToInsert, got %v", err)
	}
}

func TestListTasks(t *testing.T) {
	r, mock := newMockRepo(t)
	now := time.Now()

	mock.ExpectQuery(`SELECT .+ FROM todos ORDER BY created_at DESC`).
		WillReturnRows(sqlmock.NewRows(taskCols).
			AddRow(int64(2), "Call mom", nil, "evt-2", now, now).
			AddRow(int64(1), "Buy milk", now, nil, now, now))

	tasks, err := r.ListTasks(context.Background())
	if err != nil {
		t.Fatalf("ListTasks: %v", err)
	}
	if len(tasks) != 2 {
		t.Fatalf("len = %d, want 2", len(tasks))
	}
	if tasks[0].ID != 2 || tasks[0].DueDate != nil || tasks[0].CalendarEventID != "evt-2" {
		t.Errorf("unexpected first task: %+v", tasks[0])
	}
}

func TestSearchTasks(t *testing.T) {
	r, mock := newMockRepo(t)
	now := time.Now()

	mock.ExpectQuery(`SELECT .+ FROM todos WHERE title ILIKE`).
		WithArgs("%milk%").
		WillReturnRows(sqlmock.NewRows(taskCols).
			AddRow(int64(1), "Buy milk", nil, nil, now, now))

	tasks, err := r.SearchTasks(context.Background(), "milk")
	if err != nil {
		t.Fatalf("SearchTasks: %v", err)
	}
	if len(tasks) != 1 || tasks[0].Title != "Buy milk" {
		t.Errorf("unexpected tasks: %+v", tasks)
	}
}

func TestDeleteTasks(t *testing.T) {
	r, mock := newMockRepo(t)
	now := time.Now()

	mock.ExpectQuery(`DELETE FROM todos WHERE id = ANY`).
		WillReturnRows(sqlmock.NewRows(taskCols).
			AddRow(int64(3), "Old task", nil, "evt-3", now, now))

	deleted, err := r.DeleteTasks(context.Background(), []int64{3, 99})
	if err != nil {
		t.Fatalf("DeleteTasks: %v", err)
	}
	if len(deleted) != 1 || deleted[0].ID != 3 {
		t.Errorf("unexpected deleted rows: %+v", deleted)
	}
}

func TestUpdateDueDate_FillsNullDate(t *testing.T) {
	r, mock := newMockRepo(t)
	now := time.Now()
	due := time.Date(2025, 6, 2, 0, 0, 0, 0, time.UTC)

	mock.ExpectBegin()
	mock.ExpectQuery(`SELECT .+ FROM todos WHERE id = \$1 FOR UPDATE`).
		WithArgs(int64(1)).
		WillReturnRows(sqlmock.NewRows(taskCols).
			AddRow(int64(1), "Buy milk", nil, nil, now, now))
	mock.ExpectQuery(`UPDATE todos SET due_date`).
		WithArgs(due, int64(1)).
		WillReturnRows(sqlmock.NewRows(taskCols).
			AddRow(int64(1), "Buy milk", due, nil, now, now))
	mock.ExpectCommit()

	task, err := r.UpdateDueDate(context.Background(), repo.UpdateDueDateOptions{ID: 1, DueDate: due})
	if err != nil {
		t.Fatalf("UpdateDueDate: %v", err)
	}
	if task.DueDate == nil || !task.DueDate.Equal(due) {
		t.Errorf("due = %v, want %v", task.DueDate, due)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Error(err)
	}
}

func TestUpdateDueDate_LeavesExistingDate(t *testing.T) {
	r, mock := newMockRepo(t)
	now := time.Now()
	existing := time.Date(2025, 6, 9, 0, 0, 0, 0, time.UTC)
	due := time.Date(2025, 6, 2, 0, 0, 0, 0, time.UTC)

	mock.ExpectBegin()
	mock.ExpectQuery(`SELECT .+ FROM todos WHERE id = \$1 FOR UPDATE`).
		WithArgs(int64(1)).
		WillReturnRows(sqlmock.NewRows(taskCols).
			AddRow(int64(1), "Buy milk", existing, nil, now, now))
	mock.ExpectCommit()

	task, err := r.UpdateDueDate(context.Background(), repo.UpdateDueDateOptions{ID: 1, DueDate: due})
	if err != nil {
		t.Fatalf("UpdateDueDate: %v", err)
	}
	if task.DueDate == nil || !task.DueDate.Equal(existing) {
		t.Errorf("due = %v, want untouched %v", task.DueDate, existing)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Error(err)
	}
}

func TestSetCalendarEventID(t *testing.T) {
	r, mock := newMockRepo(t)

	mock.ExpectExec(`UPDATE todos SET calendar_event_id`).
		WithArgs("evt-1", int64(1)).
		WillReturnResult(sqlmock.NewResult(0, 1))

	if err := r.SetCalendarEventID(context.Background(), 1, "evt-1"); err != nil {
		t.Fatalf("SetCalendarEventID: %v", err)
	}
}
