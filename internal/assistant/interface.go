package assistant

import "context"

//go:generate mockery --name UseCase
type UseCase interface {
	// Chat runs one text turn through the interpreter pipeline and always
	// produces a user-facing response.
	Chat(ctx context.Context, input ChatInput) (ChatOutput, error)

	// Transcribe converts base64-encoded audio into text.
	Transcribe(ctx context.Context, audioBase64 string) (string, error)

	// TranscribeChat transcribes audio and feeds the text through Chat.
	TranscribeChat(ctx context.Context, input TranscribeChatInput) (TranscribeChatOutput, error)
}

// ChatModel is a conversation-scoped generative model. Send blocks until the
// model replies; the raw reply may be any of the shapes the interpreter
// normalizes.
type ChatModel interface {
	Send(ctx context.Context, sessionID, text string) (string, error)
}

// Transcriber converts audio to text. Implemented by pkg/transcribe against
// the external Whisper server.
type Transcriber interface {
	Transcribe(ctx context.Context, audioBase64 string) (string, error)
}
