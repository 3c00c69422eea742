package httpserver_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/Waghib/Speech-To-Plan-reminder/internal/httpserver"
	"github.com/Waghib/Speech-To-Plan-reminder/internal/middleware"
	"github.com/Waghib/Speech-To-Plan-reminder/pkg/log"
)

type stubTodoHandler struct{ called map[string]bool }

func (s *stubTodoHandler) Create(c *gin.Context) { s.mark(c, "create") }
func (s *stubTodoHandler) List(c *gin.Context)   { s.mark(c, "list") }
func (s *stubTodoHandler) Search(c *gin.Context) { s.mark(c, "search") }
func (s *stubTodoHandler) Delete(c *gin.Context) { s.mark(c, "delete") }

func (s *stubTodoHandler) mark(c *gin.Context, name string) {
	s.called[name] = true
	c.Status(http.StatusOK)
}

type stubAssistantHandler struct{ called map[string]bool }

func (s *stubAssistantHandler) Chat(c *gin.Context)           { s.mark(c, "chat") }
func (s *stubAssistantHandler) Transcribe(c *gin.Context)     { s.mark(c, "transcribe") }
func (s *stubAssistantHandler) TranscribeChat(c *gin.Context) { s.mark(c, "transcribe_chat") }

func (s *stubAssistantHandler) mark(c *gin.Context, name string) {
	s.called[name] = true
	c.Status(http.StatusOK)
}

func newTestConfig() (httpserver.Config, *stubTodoHandler, *stubAssistantHandler) {
	todoH := &stubTodoHandler{called: map[string]bool{}}
	assistantH := &stubAssistantHandler{called: map[string]bool{}}
	logger := log.NewNop()

	return httpserver.Config{
		Logger:           logger,
		Port:             8080,
		Mode:             gin.TestMode,
		Environment:      "development",
		Middleware:       middleware.New(logger, middleware.RateLimitConfig{}),
		TodoHandler:      todoH,
		AssistantHandler: assistantH,
	}, todoH, assistantH
}

func TestNew_Validation(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*httpserver.Config)
	}{
		{"missing logger", func(c *httpserver.Config) { c.Logger = nil }},
		{"missing port", func(c *httpserver.Config) { c.Port = 0 }},
		{"missing mode", func(c *httpserver.Config) { c.Mode = "" }},
		{"missing todo handler", func(c *httpserver.Config) { c.TodoHandler = nil }},
		{"missing assistant handler", func(c *httpserver.Config) { c.AssistantHandler = nil }},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			cfg, _, _ := newTestConfig()
			tc.mutate(&cfg)
			if _, err := httpserver.New(cfg.Logger, cfg); err == nil {
				t.Error("expected a validation error")
			}
		})
	}
}

func TestNew_Valid(t *testing.T) {
	cfg, _, _ := newTestConfig()
	if _, err := httpserver.New(cfg.Logger, cfg); err != nil {
		t.Fatalf("New: %v", err)
	}
}

func TestHealthRoutes(t *testing.T) {
	cfg, _, _ := newTestConfig()
	srv, err := httpserver.New(cfg.Logger, cfg)
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	for _, path := range []string{"/health", "/ready", "/live"} {
		w := httptest.NewRecorder()
		srv.Handler().ServeHTTP(w, httptest.NewRequest(http.MethodGet, path, nil))

		if w.Code != http.StatusOK {
			t.Errorf("%s status = %d", path, w.Code)
			continue
		}

		var resp map[string]any
		if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
			t.Fatalf("%s unmarshal: %v", path, err)
		}
		data := resp["data"].(map[string]any)
		if data["service"] != httpserver.ServiceName {
			t.Errorf("%s service = %v", path, data["service"])
		}
	}
}

func TestDomainRoutes(t *testing.T) {
	cfg, todoH, assistantH := newTestConfig()
	srv, err := httpserver.New(cfg.Logger, cfg)
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	routes := []struct {
		method string
		path   string
		mark   func() bool
	}{
		{http.MethodGet, "/todos", func() bool { return todoH.called["list"] }},
		{http.MethodPost, "/todos", func() bool { return todoH.called["create"] }},
		{http.MethodGet, "/todos/search", func() bool { return todoH.called["search"] }},
		{http.MethodDelete, "/todos/1", func() bool { return todoH.called["delete"] }},
		{http.MethodPost, "/chat", func() bool { return assistantH.called["chat"] }},
		{http.MethodPost, "/transcribe", func() bool { return assistantH.called["transcribe"] }},
		{http.MethodPost, "/transcribe_chat", func() bool { return assistantH.called["transcribe_chat"] }},
	}

	for _, rt := range routes {
		w := httptest.NewRecorder()
		srv.Handler().ServeHTTP(w, httptest.NewRequest(rt.method, rt.path, nil))

		if w.Code != http.StatusOK {
			t.Errorf("%s %s status = %d", rt.method, rt.path, w.Code)
		}
		if !rt.mark() {
			t.Errorf("%s %s did not reach its handler", rt.method, rt.path)
		}
	}
}
