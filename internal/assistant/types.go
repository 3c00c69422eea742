package assistant

// ChatInput is one user turn. SessionID scopes the generative-model
// conversation; requests sharing an id share history.
type ChatInput struct {
	SessionID string
	Text      string
}

// ChatOutput is the user-facing reply. Every input produces one; pipeline
// failures surface here as apologetic text, never as errors.
type ChatOutput struct {
	Response string
}

// TranscribeChatInput carries base64-encoded audio through the full
// transcribe-then-interpret pipeline.
type TranscribeChatInput struct {
	SessionID   string
	AudioBase64 string
}

// TranscribeChatOutput returns both what was heard and what was done.
type TranscribeChatOutput struct {
	Transcription string
	Response      string
}
