package transcribe

// transcribeRequest is the wire request to the Whisper server.
type transcribeRequest struct {
	Audio string `json:"audio"` // base64-encoded audio
}

// transcribeResponse is the wire response from the Whisper server.
type transcribeResponse struct {
	Success       bool   `json:"success"`
	Transcription string `json:"transcription"`
	Error         string `json:"error"`
}
