package gemini

import (
	"context"

	lru "github.com/hashicorp/golang-lru/v2"
)

// SessionStore hands out per-conversation chat sessions, bounded by an LRU so
// abandoned conversations age out instead of leaking.
type SessionStore struct {
	client   *Client
	sessions *lru.Cache[string, *ChatSession]
}

// NewSessionStore creates a store on top of the given client. size <= 0 falls
// back to DefaultSessionCacheSize.
func NewSessionStore(client *Client, size int) (*SessionStore, error) {
	if size <= 0 {
		size = DefaultSessionCacheSize
	}
	cache, err := lru.New[string, *ChatSession](size)
	if err != nil {
		return nil, err
	}
	return &SessionStore{client: client, sessions: cache}, nil
}

// Session returns the chat session for a conversation id, creating it on
// first use.
func (st *SessionStore) Session(id string) *ChatSession {
	if s, ok := st.sessions.Get(id); ok {
		return s
	}
	s := NewChatSession(st.client)
	// A racing first use may have added one already; keep the stored session.
	if prev, ok, _ := st.sessions.PeekOrAdd(id, s); ok {
		return prev
	}
	return s
}

// Send routes a message through the conversation's session.
func (st *SessionStore) Send(ctx context.Context, sessionID, text string) (string, error) {
	return st.Session(sessionID).Send(ctx, text)
}
