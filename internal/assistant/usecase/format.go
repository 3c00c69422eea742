package usecase

import (
	"fmt"
	"strings"

	"github.com/Waghib/Speech-To-Plan-reminder/internal/model"
	"github.com/Waghib/Speech-To-Plan-reminder/pkg/response"
)

const (
	msgEmptyList     = "You don't have any tasks yet. Try adding some!"
	msgTaskDeleted   = "Task deleted successfully!"
	msgTaskNotFound  = "Task not found."
	msgNotUnderstood = "I didn't understand that"
	msgError         = "Sorry, I encountered an error. Please try again."
	msgNoModel       = "I can help with your tasks. Try 'add buy milk tomorrow' or 'show my tasks'."
)

// formatTaskLines renders tasks as a bullet list, one per line, with the due
// date suffix for dated tasks.
func formatTaskLines(tasks []model.Task) string {
	lines := make([]string, 0, len(tasks))
	for _, t := range tasks {
		line := "• " + t.Title
		if t.DueDate != nil {
			line += fmt.Sprintf(" (Due: %s)", t.DueDate.Format(response.DateFormat))
		}
		lines = append(lines, line)
	}
	return strings.Join(lines, "\n")
}

func formatAllTasks(tasks []model.Task) string {
	if len(tasks) == 0 {
		return msgEmptyList
	}
	return "Here are your tasks:\n" + formatTaskLines(tasks)
}

func formatSearchResults(query string, tasks []model.Task) string {
	if len(tasks) == 0 {
		return fmt.Sprintf("No tasks found matching '%s'.", query)
	}
	return fmt.Sprintf("Found %d tasks matching '%s':\n%s", len(tasks), query, formatTaskLines(tasks))
}
