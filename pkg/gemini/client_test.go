package gemini

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func newTestServer(t *testing.T, handler http.HandlerFunc) (*Client, *httptest.Server) {
	t.Helper()
	ts := httptest.NewServer(handler)
	t.Cleanup(ts.Close)

	c := NewClient("test-key")
	c.SetAPIURL(ts.URL)
	return c, ts
}

func TestGenerateContent(t *testing.T) {
	c, _ := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		if !strings.Contains(r.URL.Path, ":generateContent") {
			t.Errorf("unexpected path: %s", r.URL.Path)
		}
		if r.URL.Query().Get("key") != "test-key" {
			t.Errorf("missing api key in query")
		}

		var req GenerateRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			t.Fatalf("decode request: %v", err)
		}
		if len(req.Contents) != 1 || req.Contents[0].Parts[0].Text != "hello" {
			t.Errorf("unexpected contents: %+v", req.Contents)
		}

		w.Write([]byte(`{"candidates": [{"content": {"parts": [{"text": "hi there"}]}}]}`))
	})

	resp, err := c.GenerateContent(context.Background(), GenerateRequest{
		Contents: []Content{{Role: "user", Parts: []Part{{Text: "hello"}}}},
	})
	if err != nil {
		t.Fatalf("GenerateContent: %v", err)
	}
	if resp.Text() != "hi there" {
		t.Errorf("text = %q", resp.Text())
	}
}

func TestGenerateContent_APIError(t *testing.T) {
	c, _ := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
		w.Write([]byte(`{"error": "quota exceeded"}`))
	})

	_, err := c.GenerateContent(context.Background(), GenerateRequest{})
	if err == nil || !strings.Contains(err.Error(), "429") {
		t.Errorf("expected API error with status, got %v", err)
	}
}

func TestResponseText_Empty(t *testing.T) {
	var resp GenerateResponse
	if resp.Text() != "" {
		t.Errorf("Text() on empty response = %q", resp.Text())
	}
}
