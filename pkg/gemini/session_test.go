package gemini

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"testing"
	"time"
)

func TestChatSession_HistoryGrows(t *testing.T) {
	var calls int
	c, _ := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		calls++

		var req GenerateRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			t.Fatalf("decode request: %v", err)
		}

		// The system instruction rides outside the turn history and names
		// the current year.
		if req.SystemInstruction == nil {
			t.Fatal("missing system instruction")
		}
		if !strings.Contains(req.SystemInstruction.Parts[0].Text, strconv.Itoa(time.Now().Year())) {
			t.Error("system instruction does not carry the current year")
		}

		// Turn N carries 2N-1 contents: all prior turns plus the new user turn.
		if want := 2*calls - 1; len(req.Contents) != want {
			t.Errorf("call %d: len(contents) = %d, want %d", calls, len(req.Contents), want)
		}

		fmt.Fprintf(w, `{"candidates": [{"content": {"parts": [{"text": "reply %d"}]}}]}`, calls)
	})

	s := NewChatSession(c)
	for i := 1; i <= 3; i++ {
		reply, err := s.Send(context.Background(), fmt.Sprintf("turn %d", i))
		if err != nil {
			t.Fatalf("Send %d: %v", i, err)
		}
		if reply != fmt.Sprintf("reply %d", i) {
			t.Errorf("reply = %q", reply)
		}
		if s.Len() != 2*i {
			t.Errorf("history after turn %d = %d, want %d", i, s.Len(), 2*i)
		}
	}
}

func TestChatSession_ErrorLeavesHistoryUntouched(t *testing.T) {
	var fail bool
	c, _ := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		if fail {
			w.WriteHeader(http.StatusInternalServerError)
			return
		}
		w.Write([]byte(`{"candidates": [{"content": {"parts": [{"text": "ok"}]}}]}`))
	})

	s := NewChatSession(c)
	if _, err := s.Send(context.Background(), "first"); err != nil {
		t.Fatalf("Send: %v", err)
	}

	fail = true
	if _, err := s.Send(context.Background(), "second"); err == nil {
		t.Fatal("expected error")
	}
	if s.Len() != 2 {
		t.Errorf("history = %d after failed turn, want 2", s.Len())
	}
}

func TestSessionStore_SharedPerID(t *testing.T) {
	c, _ := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"candidates": [{"content": {"parts": [{"text": "ok"}]}}]}`))
	})

	st, err := NewSessionStore(c, 8)
	if err != nil {
		t.Fatalf("NewSessionStore: %v", err)
	}

	if st.Session("a") != st.Session("a") {
		t.Error("same id should return the same session")
	}
	if st.Session("a") == st.Session("b") {
		t.Error("different ids should not share a session")
	}

	if _, err := st.Send(context.Background(), "a", "hello"); err != nil {
		t.Fatalf("Send: %v", err)
	}
	if st.Session("a").Len() != 2 {
		t.Errorf("history = %d, want 2", st.Session("a").Len())
	}
	if st.Session("b").Len() != 0 {
		t.Errorf("session b history = %d, want 0", st.Session("b").Len())
	}
}
