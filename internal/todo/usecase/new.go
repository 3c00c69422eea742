package usecase

import (
	"github.com/Waghib/Speech-To-Plan-reminder/internal/todo"
	"github.com/Waghib/Speech-To-Plan-reminder/internal/todo/repository"
	"github.com/Waghib/Speech-To-Plan-reminder/pkg/log"
)

// implUseCase is the private implementation of todo.UseCase.
type implUseCase struct {
	repo     repository.Repository
	calendar todo.CalendarMirror // nil disables mirroring
	l        log.Logger
}

// New creates a new todo UseCase implementation. calendar may be nil when no
// calendar is configured.
func New(repo repository.Repository, calendar todo.CalendarMirror, l log.Logger) *implUseCase {
	return &implUseCase{
		repo:     repo,
		calendar: calendar,
		l:        l,
	}
}
