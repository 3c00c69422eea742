package http

import (
	"github.com/gin-gonic/gin"
)

// RegisterRoutes maps HTTP verbs and paths to Handler methods.
func RegisterRoutes(rg *gin.RouterGroup, h Handler) {
	rg.POST("/chat", h.Chat)
	rg.POST("/transcribe", h.Transcribe)
	rg.POST("/transcribe_chat", h.TranscribeChat)
}
