package interpreter

import (
	"errors"
	"fmt"
	"time"
)

// Kind discriminates the Action variants.
type Kind string

const (
	KindCreate       Kind = "create"
	KindList         Kind = "list"
	KindSearch       Kind = "search"
	KindDeleteByID   Kind = "delete_by_id"
	KindDeleteByName Kind = "delete_by_name"
)

// Action is a structured task command derived from free-form text.
// Exactly one kind is populated; the non-matching fields stay zero.
type Action struct {
	Kind Kind

	// KindCreate
	Title       string
	DueDate     *time.Time // resolved by the rule path
	DueDateText string     // unresolved date string from a model reply

	// KindSearch
	Query string

	// KindDeleteByID
	IDs []int64

	// KindDeleteByName; resolved to ids through a store lookup
	Name string

	// Set when the title came from the keyword-window or middle-third
	// heuristics, or fell back to the default title.
	LowConfidence bool
}

// ReplyType discriminates the two reply shapes the model is allowed to emit.
type ReplyType string

const (
	ReplyOutput ReplyType = "output"
	ReplyAction ReplyType = "action"
)

// Reply is a normalized generative-model reply: either final text for the
// user, or an action that must be executed before any text exists.
type Reply struct {
	Type     ReplyType
	Output   string
	Action   *Action
	Function string // raw function name from the model, set on action replies
}

// ErrNoMatch is the routing signal that the rule path could not classify the
// input. It is not a failure; the caller falls back to the generative model.
var ErrNoMatch = errors.New("interpreter: no rule matched")

// ErrMalformedReply means the model output is not one of the two recognized
// shapes after a strict parse.
var ErrMalformedReply = errors.New("interpreter: model reply is not a recognized shape")

// UnknownFunctionError is returned when an action reply names a function
// outside the fixed protocol set.
type UnknownFunctionError struct {
	Function string
}

func (e *UnknownFunctionError) Error() string {
	return fmt.Sprintf("interpreter: unknown function %q in model reply", e.Function)
}
