package usecase

import (
	"context"
	"strings"

	"github.com/Waghib/Speech-To-Plan-reminder/internal/interpreter"
	"github.com/Waghib/Speech-To-Plan-reminder/internal/model"
	"github.com/Waghib/Speech-To-Plan-reminder/internal/todo"
	repo "github.com/Waghib/Speech-To-Plan-reminder/internal/todo/repository"
)

// Create inserts a task unless an equivalent one already exists. Calendar
// mirroring is best effort: a calendar failure is logged and the task is
// kept.
func (uc *implUseCase) Create(ctx context.Context, input todo.CreateInput) (todo.CreateOutput, error) {
	title := strings.TrimSpace(input.Title)
	if title == "" {
		return todo.CreateOutput{}, todo.ErrEmptyTitle
	}

	existing, err := uc.repo.ListTasks(ctx)
	if err != nil {
		uc.l.Errorf(ctx, "uc.Create ListTasks: %v", err)
		return todo.CreateOutput{}, err
	}

	if m := interpreter.FindDuplicate(existing, title, input.DueDate); m.Duplicate {
		if !m.Backfill {
			return todo.CreateOutput{Task: findTask(existing, m.TaskID), Duplicate: true}, nil
		}

		task, err := uc.repo.UpdateDueDate(ctx, repo.UpdateDueDateOptions{
			ID:      m.TaskID,
			DueDate: *input.DueDate,
		})
		if err != nil {
			uc.l.Errorf(ctx, "uc.Create UpdateDueDate: %v", err)
			return todo.CreateOutput{}, err
		}
		uc.mirror(ctx, &task)
		return todo.CreateOutput{Task: task, Backfilled: true}, nil
	}

	task, err := uc.repo.CreateTask(ctx, repo.CreateTaskOptions{Title: title, DueDate: input.DueDate})
	if err != nil {
		uc.l.Errorf(ctx, "uc.Create CreateTask: %v", err)
		return todo.CreateOutput{}, err
	}
	uc.mirror(ctx, &task)
	return todo.CreateOutput{Task: task}, nil
}

// ListAll returns every task, newest first.
func (uc *implUseCase) ListAll(ctx context.Context) ([]model.Task, error) {
	tasks, err := uc.repo.ListTasks(ctx)
	if err != nil {
		uc.l.Errorf(ctx, "uc.ListAll: %v", err)
		return nil, err
	}
	return tasks, nil
}

// Search returns tasks whose title contains the query, case-insensitive.
func (uc *implUseCase) Search(ctx context.Context, query string) ([]model.Task, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return nil, todo.ErrEmptyQuery
	}

	tasks, err := uc.repo.SearchTasks(ctx, query)
	if err != nil {
		uc.l.Errorf(ctx, "uc.Search: %v", err)
		return nil, err
	}
	return tasks, nil
}

// DeleteByIDs removes the given tasks and returns how many existed. Mirrored
// calendar events are removed best effort.
func (uc *implUseCase) DeleteByIDs(ctx context.Context, ids []int64) (int64, error) {
	if len(ids) == 0 {
		return 0, nil
	}

	deleted, err := uc.repo.DeleteTasks(ctx, ids)
	if err != nil {
		uc.l.Errorf(ctx, "uc.DeleteByIDs: %v", err)
		return 0, err
	}

	for _, t := range deleted {
		if t.CalendarEventID == "" || uc.calendar == nil {
			continue
		}
		if err := uc.calendar.DeleteEvent(ctx, t.CalendarEventID); err != nil {
			uc.l.Warnf(ctx, "uc.DeleteByIDs calendar event %s: %v", t.CalendarEventID, err)
		}
	}
	return int64(len(deleted)), nil
}

// DeleteByName deletes the single task matching name. Several matches delete
// nothing; the candidates come back for the caller to present.
func (uc *implUseCase) DeleteByName(ctx context.Context, name string) (todo.DeleteByNameOutput, error) {
	matches, err := uc.Search(ctx, name)
	if err != nil {
		return todo.DeleteByNameOutput{}, err
	}

	switch len(matches) {
	case 0:
		return todo.DeleteByNameOutput{}, todo.ErrTaskNotFound
	case 1:
		if _, err := uc.DeleteByIDs(ctx, []int64{matches[0].ID}); err != nil {
			return todo.DeleteByNameOutput{}, err
		}
		return todo.DeleteByNameOutput{Deleted: &matches[0]}, nil
	default:
		return todo.DeleteByNameOutput{Matches: matches}, nil
	}
}

// mirror creates the calendar event for a dated task and records its id.
// Every failure here is non-fatal; the stored task is the source of truth.
func (uc *implUseCase) mirror(ctx context.Context, task *model.Task) {
	if uc.calendar == nil || task.DueDate == nil || task.CalendarEventID != "" {
		return
	}

	eventID, err := uc.calendar.CreateAllDayEvent(ctx, task.Title, *task.DueDate)
	if err != nil {
		uc.l.Warnf(ctx, "uc.mirror CreateAllDayEvent %q: %v", task.Title, err)
		return
	}

	if err := uc.repo.SetCalendarEventID(ctx, task.ID, eventID); err != nil {
		uc.l.Warnf(ctx, "uc.mirror SetCalendarEventID %d: %v", task.ID, err)
		return
	}
	task.CalendarEventID = eventID
}

func findTask(tasks []model.Task, id int64) model.Task {
	for _, t := range tasks {
		if t.ID == id {
			return t
		}
	}
	return model.Task{}
}
