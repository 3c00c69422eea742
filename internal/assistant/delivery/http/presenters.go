package http

// chatReq matches the browser-extension frontend payload.
type chatReq struct {
	Text string `json:"text" binding:"required"`
}

type chatResp struct {
	Response string `json:"response"`
}

type audioReq struct {
	Audio string `json:"audio" binding:"required"` // base64-encoded audio
}

type transcriptionResp struct {
	Success       bool   `json:"success"`
	Transcription string `json:"transcription,omitempty"`
	ChatResponse  string `json:"chat_response,omitempty"`
	Error         string `json:"error,omitempty"`
}
