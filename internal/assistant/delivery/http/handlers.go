package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/Waghib/Speech-To-Plan-reminder/internal/assistant"
	"github.com/Waghib/Speech-To-Plan-reminder/pkg/response"
)

// sessionID scopes the model conversation. The extension sends a stable
// X-Session-ID; without one each request gets a fresh session.
func sessionID(c *gin.Context) string {
	if id := c.GetHeader("X-Session-ID"); id != "" {
		return id
	}
	return uuid.NewString()
}

// The chat and transcription endpoints return the bare payloads the browser
// extension expects, not the standard response envelope.

// Chat godoc
// @Summary     Process a chat message
// @Description Interprets free-form text and runs the resulting task operation.
// @Tags        Assistant
// @Accept      json
// @Produce     json
// @Param       X-Session-ID header string  false "Conversation id for the model session"
// @Param       body         body   chatReq true  "User message"
// @Success     200 {object} chatResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Router      /chat [POST]
func (h *handler) Chat(c *gin.Context) {
	ctx := c.Request.Context()

	var req chatReq
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, err, nil)
		return
	}

	out, err := h.uc.Chat(ctx, assistant.ChatInput{SessionID: sessionID(c), Text: req.Text})
	if err != nil {
		h.l.Errorf(ctx, "uc.Chat: %v", err)
		response.Error(c, err, nil)
		return
	}

	c.JSON(http.StatusOK, chatResp{Response: out.Response})
}

// Transcribe godoc
// @Summary     Transcribe audio
// @Description Converts base64-encoded audio into text via the Whisper server.
// @Tags        Assistant
// @Accept      json
// @Produce     json
// @Param       body body audioReq true "Base64 audio payload"
// @Success     200 {object} transcriptionResp
// @Router      /transcribe [POST]
func (h *handler) Transcribe(c *gin.Context) {
	ctx := c.Request.Context()

	var req audioReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusOK, transcriptionResp{Success: false, Error: err.Error()})
		return
	}

	text, err := h.uc.Transcribe(ctx, req.Audio)
	if err != nil {
		h.l.Errorf(ctx, "uc.Transcribe: %v", err)
		c.JSON(http.StatusOK, transcriptionResp{Success: false, Error: err.Error()})
		return
	}

	c.JSON(http.StatusOK, transcriptionResp{Success: true, Transcription: text})
}

// TranscribeChat godoc
// @Summary     Transcribe audio and process it as a chat message
// @Description Converts audio to text and runs the text through the interpreter pipeline.
// @Tags        Assistant
// @Accept      json
// @Produce     json
// @Param       X-Session-ID header string   false "Conversation id for the model session"
// @Param       body         body   audioReq true  "Base64 audio payload"
// @Success     200 {object} transcriptionResp
// @Router      /transcribe_chat [POST]
func (h *handler) TranscribeChat(c *gin.Context) {
	ctx := c.Request.Context()

	var req audioReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusOK, transcriptionResp{Success: false, Error: err.Error()})
		return
	}

	out, err := h.uc.TranscribeChat(ctx, assistant.TranscribeChatInput{
		SessionID:   sessionID(c),
		AudioBase64: req.Audio,
	})
	if err != nil {
		h.l.Errorf(ctx, "uc.TranscribeChat: %v", err)
		c.JSON(http.StatusOK, transcriptionResp{Success: false, Error: err.Error()})
		return
	}

	c.JSON(http.StatusOK, transcriptionResp{
		Success:       true,
		Transcription: out.Transcription,
		ChatResponse:  out.Response,
	})
}
