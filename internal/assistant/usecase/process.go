package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"strings"

	"github.com/Waghib/Speech-To-Plan-reminder/internal/assistant"
	"github.com/Waghib/Speech-To-Plan-reminder/internal/interpreter"
)

// chatState tracks where a turn is in the pipeline. Used for tracing only;
// the control flow below is the authority.
type chatState string

const (
	stateReceived      chatState = "received"
	stateRuleMatched   chatState = "rule_matched"
	stateAwaitingModel chatState = "awaiting_model"
	stateModelResolved chatState = "model_resolved"
	stateExecuting     chatState = "executing"
	stateResponded     chatState = "responded"
)

// Chat runs one turn: rule path first, generative model on no-match, strict
// parse then tolerant cleanup on the model reply. Collaborator failures end
// in an apologetic string; nothing propagates to the transport except input
// validation.
func (uc *implUseCase) Chat(ctx context.Context, input assistant.ChatInput) (assistant.ChatOutput, error) {
	text := strings.TrimSpace(input.Text)
	if text == "" {
		return assistant.ChatOutput{}, assistant.ErrEmptyMessage
	}
	uc.trace(ctx, input.SessionID, stateReceived)

	act, err := uc.extractor.Extract(text)
	if err == nil {
		uc.trace(ctx, input.SessionID, stateRuleMatched)
		uc.trace(ctx, input.SessionID, stateExecuting)
		resp := uc.execute(ctx, act, rulePath)
		uc.trace(ctx, input.SessionID, stateResponded)
		return assistant.ChatOutput{Response: resp}, nil
	}
	if !errors.Is(err, interpreter.ErrNoMatch) {
		uc.l.Errorf(ctx, "uc.Chat Extract: %v", err)
		return assistant.ChatOutput{Response: msgError}, nil
	}

	uc.trace(ctx, input.SessionID, stateAwaitingModel)
	if uc.model == nil {
		return assistant.ChatOutput{Response: msgNoModel}, nil
	}

	raw, err := uc.model.Send(ctx, input.SessionID, text)
	if err != nil {
		uc.l.Errorf(ctx, "uc.Chat model.Send: %v", err)
		return assistant.ChatOutput{Response: msgError}, nil
	}
	uc.trace(ctx, input.SessionID, stateModelResolved)

	resp := uc.resolveModelReply(ctx, input.SessionID, raw)
	uc.trace(ctx, input.SessionID, stateResponded)
	return assistant.ChatOutput{Response: unwrapOutput(resp)}, nil
}

// unwrapOutput strips a stray {"output": ...} envelope that survived the
// pipeline, so the frontend never renders raw JSON.
func unwrapOutput(s string) string {
	var m map[string]any
	if err := json.Unmarshal([]byte(s), &m); err != nil {
		return s
	}
	if out, ok := m["output"].(string); ok {
		return out
	}
	return s
}

// resolveModelReply turns a raw model reply into the final response. Only a
// strictly parsed reply is executed; everything else is display-only text
// from the tolerant cleaner.
func (uc *implUseCase) resolveModelReply(ctx context.Context, sessionID, raw string) string {
	reply, err := interpreter.ParseModelReply(raw)
	if err != nil {
		var ufe *interpreter.UnknownFunctionError
		if errors.As(err, &ufe) {
			return "Unsupported function: " + ufe.Function
		}
		return interpreter.CleanReply(raw)
	}

	switch reply.Type {
	case interpreter.ReplyOutput:
		if strings.TrimSpace(reply.Output) == "" {
			return msgNotUnderstood
		}
		return reply.Output
	case interpreter.ReplyAction:
		uc.trace(ctx, sessionID, stateExecuting)
		return uc.execute(ctx, *reply.Action, modelPath)
	default:
		return interpreter.CleanReply(raw)
	}
}

// Transcribe converts base64-encoded audio into text.
func (uc *implUseCase) Transcribe(ctx context.Context, audioBase64 string) (string, error) {
	if uc.transcriber == nil {
		return "", assistant.ErrNoTranscriber
	}
	if strings.TrimSpace(audioBase64) == "" {
		return "", assistant.ErrEmptyAudio
	}

	text, err := uc.transcriber.Transcribe(ctx, audioBase64)
	if err != nil {
		uc.l.Errorf(ctx, "uc.Transcribe: %v", err)
		return "", err
	}
	return text, nil
}

// TranscribeChat transcribes audio and runs the text through Chat.
func (uc *implUseCase) TranscribeChat(ctx context.Context, input assistant.TranscribeChatInput) (assistant.TranscribeChatOutput, error) {
	text, err := uc.Transcribe(ctx, input.AudioBase64)
	if err != nil {
		return assistant.TranscribeChatOutput{}, err
	}

	out, err := uc.Chat(ctx, assistant.ChatInput{SessionID: input.SessionID, Text: text})
	if err != nil {
		return assistant.TranscribeChatOutput{}, err
	}

	return assistant.TranscribeChatOutput{
		Transcription: text,
		Response:      out.Response,
	}, nil
}

func (uc *implUseCase) trace(ctx context.Context, sessionID string, s chatState) {
	uc.l.Debugf(ctx, "assistant.Chat session=%s state=%s", sessionID, s)
}
