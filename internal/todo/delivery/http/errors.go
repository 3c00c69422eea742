package http

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/Waghib/Speech-To-Plan-reminder/internal/todo"
	"github.com/Waghib/Speech-To-Plan-reminder/pkg/response"
)

var errInvalidPayload = errors.New("invalid payload")

// respondError translates domain errors into HTTP responses.
func (h *handler) respondError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, todo.ErrEmptyTitle), errors.Is(err, todo.ErrEmptyQuery), errors.Is(err, errInvalidPayload):
		response.Error(c, err, nil)
	case errors.Is(err, todo.ErrTaskNotFound):
		response.NotFound(c, err)
	default:
		response.InternalError(c, err)
	}
}
