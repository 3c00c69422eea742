package assistant

import "errors"

var (
	ErrEmptyMessage  = errors.New("message is empty")
	ErrEmptyAudio    = errors.New("audio payload is empty")
	ErrNoTranscriber = errors.New("no transcriber configured")
)
