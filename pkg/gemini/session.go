package gemini

import (
	"context"
	"fmt"
	"sync"
	"time"
)

// ChatSession is one conversation with the model: a fixed system instruction
// plus an append-only turn history. Safe for concurrent use; turns serialize
// on the session mutex.
type ChatSession struct {
	mu      sync.Mutex
	client  *Client
	system  Content
	history []Content
}

// NewChatSession creates a session seeded with the assistant system prompt
// for the current year.
func NewChatSession(client *Client) *ChatSession {
	return &ChatSession{
		client: client,
		system: Content{Parts: []Part{{Text: SystemPrompt(time.Now().Year())}}},
	}
}

// Send appends the user turn, asks the model, appends the model turn, and
// returns the raw reply text. History only grows on success.
func (s *ChatSession) Send(ctx context.Context, text string) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	contents := make([]Content, 0, len(s.history)+1)
	contents = append(contents, s.history...)
	contents = append(contents, Content{Role: "user", Parts: []Part{{Text: text}}})

	resp, err := s.client.GenerateContent(ctx, GenerateRequest{
		SystemInstruction: &s.system,
		Contents:          contents,
	})
	if err != nil {
		return "", err
	}

	reply := resp.Text()
	if reply == "" {
		return "", fmt.Errorf("gemini: empty model reply")
	}

	s.history = append(contents, Content{Role: "model", Parts: []Part{{Text: reply}}})
	return reply, nil
}

// Len returns the number of turns in the history.
func (s *ChatSession) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.history)
}
