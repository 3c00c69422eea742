package todo

import "errors"

var (
	ErrEmptyTitle   = errors.New("task title is empty")
	ErrEmptyQuery   = errors.New("search query is empty")
	ErrTaskNotFound = errors.New("task not found")
)
