package usecase

import (
	"context"
	"errors"
	"fmt"

	"github.com/Waghib/Speech-To-Plan-reminder/internal/interpreter"
	"github.com/Waghib/Speech-To-Plan-reminder/internal/todo"
)

// pathKind distinguishes the wording of rule-path and model-path replies.
type pathKind int

const (
	rulePath pathKind = iota
	modelPath
)

// execute runs an Action against the todo usecase and formats the reply.
// All failures terminate here as user-facing text.
func (uc *implUseCase) execute(ctx context.Context, act interpreter.Action, path pathKind) string {
	switch act.Kind {
	case interpreter.KindCreate:
		return uc.executeCreate(ctx, act, path)

	case interpreter.KindList:
		tasks, err := uc.todoUC.ListAll(ctx)
		if err != nil {
			uc.l.Errorf(ctx, "uc.execute ListAll: %v", err)
			return msgError
		}
		return formatAllTasks(tasks)

	case interpreter.KindSearch:
		tasks, err := uc.todoUC.Search(ctx, act.Query)
		if err != nil {
			uc.l.Errorf(ctx, "uc.execute Search: %v", err)
			return msgError
		}
		return formatSearchResults(act.Query, tasks)

	case interpreter.KindDeleteByID:
		n, err := uc.todoUC.DeleteByIDs(ctx, act.IDs)
		if err != nil {
			uc.l.Errorf(ctx, "uc.execute DeleteByIDs: %v", err)
			return msgError
		}
		if n == 0 {
			return msgTaskNotFound
		}
		return msgTaskDeleted

	case interpreter.KindDeleteByName:
		return uc.executeDeleteByName(ctx, act.Name)

	default:
		return msgNotUnderstood
	}
}

func (uc *implUseCase) executeCreate(ctx context.Context, act interpreter.Action, path pathKind) string {
	input := todo.CreateInput{Title: act.Title, DueDate: act.DueDate}

	// Model replies carry the date as unresolved text.
	if input.DueDate == nil && act.DueDateText != "" {
		if due, err := uc.dates.Parse(act.DueDateText, uc.now()); err == nil {
			input.DueDate = &due
		} else {
			uc.l.Warnf(ctx, "uc.executeCreate unrecognized date %q", act.DueDateText)
		}
	}

	out, err := uc.todoUC.Create(ctx, input)
	if err != nil {
		uc.l.Errorf(ctx, "uc.execute Create: %v", err)
		return msgError
	}

	switch {
	case out.Backfilled:
		return fmt.Sprintf("I've updated '%s' with the new due date.", out.Task.Title)
	case out.Duplicate:
		return fmt.Sprintf("You already have '%s' on your list.", out.Task.Title)
	case path == rulePath:
		return fmt.Sprintf("I'll add '%s' to your tasks.", out.Task.Title)
	default:
		return fmt.Sprintf("Added '%s' to your tasks!", out.Task.Title)
	}
}

// executeDeleteByName resolves a spoken target through search. Exactly one
// match deletes; several matches are reported without deleting.
func (uc *implUseCase) executeDeleteByName(ctx context.Context, name string) string {
	out, err := uc.todoUC.DeleteByName(ctx, name)
	if err != nil {
		if errors.Is(err, todo.ErrTaskNotFound) {
			return fmt.Sprintf("No tasks found matching '%s'.", name)
		}
		uc.l.Errorf(ctx, "uc.execute DeleteByName: %v", err)
		return msgError
	}

	if out.Deleted != nil {
		return msgTaskDeleted
	}
	return formatSearchResults(name, out.Matches) +
		"\nPlease be more specific about which one to delete."
}
