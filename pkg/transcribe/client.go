package transcribe

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"
)

// DefaultTimeout is generous: the Whisper server decodes and transcribes the
// whole clip before answering.
const DefaultTimeout = 120 * time.Second

// Client calls the external Whisper transcription server.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// NewClient creates a transcription client for the given server base URL.
func NewClient(baseURL string) *Client {
	return &Client{
		baseURL:    baseURL,
		httpClient: &http.Client{Timeout: DefaultTimeout},
	}
}

// Transcribe sends base64-encoded audio and returns the transcription text.
func (c *Client) Transcribe(ctx context.Context, audioBase64 string) (string, error) {
	body, err := json.Marshal(transcribeRequest{Audio: audioBase64})
	if err != nil {
		return "", fmt.Errorf("transcribe: failed to marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/transcribe", bytes.NewBuffer(body))
	if err != nil {
		return "", fmt.Errorf("transcribe: failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("transcribe: failed to call server: %w", err)
	}
	defer resp.Body.Close()

	var result transcribeResponse
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return "", fmt.Errorf("transcribe: failed to decode response: %w", err)
	}

	if resp.StatusCode != http.StatusOK || !result.Success {
		msg := result.Error
		if msg == "" {
			msg = fmt.Sprintf("status %d", resp.StatusCode)
		}
		return "", fmt.Errorf("transcribe: server error: %s", msg)
	}

	return result.Transcription, nil
}
