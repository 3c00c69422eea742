package http

import (
	"github.com/gin-gonic/gin"

	"github.com/Waghib/Speech-To-Plan-reminder/internal/todo"
	"github.com/Waghib/Speech-To-Plan-reminder/pkg/datemath"
	"github.com/Waghib/Speech-To-Plan-reminder/pkg/log"
)

// Handler is the public interface for the todo HTTP delivery layer.
type Handler interface {
	Create(c *gin.Context)
	List(c *gin.Context)
	Search(c *gin.Context)
	Delete(c *gin.Context)
}

type handler struct {
	l     log.Logger
	uc    todo.UseCase
	dates *datemath.Parser
}

// New creates a new HTTP handler for the todo domain.
func New(l log.Logger, uc todo.UseCase, dates *datemath.Parser) *handler {
	return &handler{
		l:     l,
		uc:    uc,
		dates: dates,
	}
}
