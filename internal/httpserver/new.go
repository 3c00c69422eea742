package httpserver

import (
	"errors"

	"github.com/gin-gonic/gin"

	assistantHTTP "github.com/Waghib/Speech-To-Plan-reminder/internal/assistant/delivery/http"
	"github.com/Waghib/Speech-To-Plan-reminder/internal/middleware"
	todoHTTP "github.com/Waghib/Speech-To-Plan-reminder/internal/todo/delivery/http"
	"github.com/Waghib/Speech-To-Plan-reminder/pkg/log"
)

// HTTPServer holds all dependencies for the HTTP server.
type HTTPServer struct {
	// Server
	gin         *gin.Engine
	l           log.Logger
	port        int
	mode        string
	environment string
	mw          middleware.Middleware

	// Todo domain
	todoHandler todoHTTP.Handler

	// Assistant domain (chat + transcription)
	assistantHandler assistantHTTP.Handler
}

// Config is the dependency bag passed to New().
type Config struct {
	Logger      log.Logger
	Port        int
	Mode        string
	Environment string
	Middleware  middleware.Middleware

	// Todo domain
	TodoHandler todoHTTP.Handler

	// Assistant domain (chat + transcription)
	AssistantHandler assistantHTTP.Handler
}

// New creates a new HTTPServer instance.
func New(logger log.Logger, cfg Config) (*HTTPServer, error) {
	gin.SetMode(cfg.Mode)

	srv := &HTTPServer{
		l:                logger,
		gin:              gin.New(),
		port:             cfg.Port,
		mode:             cfg.Mode,
		environment:      cfg.Environment,
		mw:               cfg.Middleware,
		todoHandler:      cfg.TodoHandler,
		assistantHandler: cfg.AssistantHandler,
	}

	if err := srv.validate(); err != nil {
		return nil, err
	}

	if err := srv.mapHandlers(); err != nil {
		return nil, err
	}

	return srv, nil
}

func (srv HTTPServer) validate() error {
	if srv.l == nil {
		return errors.New("logger is required")
	}
	if srv.mode == "" {
		return errors.New("mode is required")
	}
	if srv.port == 0 {
		return errors.New("port is required")
	}
	if srv.todoHandler == nil {
		return errors.New("todo handler is required")
	}
	if srv.assistantHandler == nil {
		return errors.New("assistant handler is required")
	}
	return nil
}
