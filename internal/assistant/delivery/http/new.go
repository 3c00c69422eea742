package http

import (
	"github.com/gin-gonic/gin"

	"github.com/Waghib/Speech-To-Plan-reminder/internal/assistant"
	"github.com/Waghib/Speech-To-Plan-reminder/pkg/log"
)

// Handler is the public interface for the assistant HTTP delivery layer.
type Handler interface {
	Chat(c *gin.Context)
	Transcribe(c *gin.Context)
	TranscribeChat(c *gin.Context)
}

type handler struct {
	l  log.Logger
	uc assistant.UseCase
}

// New creates a new HTTP handler for the assistant.
func New(l log.Logger, uc assistant.UseCase) *handler {
	return &handler{
		l:  l,
		uc: uc,
	}
}
