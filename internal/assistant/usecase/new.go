package usecase

import (
	"time"

	"github.com/Waghib/Speech-To-Plan-reminder/internal/assistant"
	"github.com/Waghib/Speech-To-Plan-reminder/internal/interpreter"
	"github.com/Waghib/Speech-To-Plan-reminder/internal/todo"
	"github.com/Waghib/Speech-To-Plan-reminder/pkg/datemath"
	"github.com/Waghib/Speech-To-Plan-reminder/pkg/log"
)

// implUseCase is the private implementation of assistant.UseCase.
type implUseCase struct {
	todoUC      todo.UseCase
	extractor   *interpreter.Extractor
	model       assistant.ChatModel   // nil disables the generative fallback
	transcriber assistant.Transcriber // nil disables audio endpoints
	dates       *datemath.Parser
	now         func() time.Time
	l           log.Logger
}

// New creates a new assistant UseCase implementation. model and transcriber
// may be nil when the corresponding collaborator is not configured.
func New(
	todoUC todo.UseCase,
	dates *datemath.Parser,
	model assistant.ChatModel,
	transcriber assistant.Transcriber,
	l log.Logger,
) *implUseCase {
	return &implUseCase{
		todoUC:      todoUC,
		extractor:   interpreter.NewExtractor(dates, time.Now),
		model:       model,
		transcriber: transcriber,
		dates:       dates,
		now:         time.Now,
		l:           l,
	}
}
