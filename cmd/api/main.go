package main

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	_ "github.com/lib/pq"

	"github.com/Waghib/Speech-To-Plan-reminder/config"
	_ "github.com/Waghib/Speech-To-Plan-reminder/docs" // Swagger docs
	"github.com/Waghib/Speech-To-Plan-reminder/internal/assistant"
	assistantHTTP "github.com/Waghib/Speech-To-Plan-reminder/internal/assistant/delivery/http"
	assistantUC "github.com/Waghib/Speech-To-Plan-reminder/internal/assistant/usecase"
	"github.com/Waghib/Speech-To-Plan-reminder/internal/httpserver"
	"github.com/Waghib/Speech-To-Plan-reminder/internal/middleware"
	"github.com/Waghib/Speech-To-Plan-reminder/internal/todo"
	todoHTTP "github.com/Waghib/Speech-To-Plan-reminder/internal/todo/delivery/http"
	todoRepo "github.com/Waghib/Speech-To-Plan-reminder/internal/todo/repository/postgre"
	todoUC "github.com/Waghib/Speech-To-Plan-reminder/internal/todo/usecase"
	"github.com/Waghib/Speech-To-Plan-reminder/pkg/datemath"
	"github.com/Waghib/Speech-To-Plan-reminder/pkg/gcalendar"
	"github.com/Waghib/Speech-To-Plan-reminder/pkg/gemini"
	"github.com/Waghib/Speech-To-Plan-reminder/pkg/log"
	"github.com/Waghib/Speech-To-Plan-reminder/pkg/transcribe"
)

// @title       Speech-To-Plan Reminder API
// @description Voice and chat driven task planner with Gemini interpretation, Postgres storage, and Google Calendar sync.
// @version     1
// @host        localhost:8080
// @schemes     http
func main() {
	// 1. Configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Failed to load config: ", err)
		return
	}

	// 2. Logger
	logger := log.Init(log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info(ctx, "Starting Speech-To-Plan reminder...")
	logger.Infof(ctx, "Environment: %s", cfg.Environment.Name)

	// 3. Postgres
	db, err := sql.Open("postgres", cfg.Postgres.URL)
	if err != nil {
		logger.Error(ctx, "Failed to open Postgres connection: ", err)
		return
	}
	defer db.Close()

	if err := db.PingContext(ctx); err != nil {
		logger.Error(ctx, "Failed to reach Postgres: ", err)
		return
	}
	logger.Info(ctx, "Postgres connected")

	// 4. DateMath parser
	timezone := cfg.Gemini.Timezone
	dateParser, dtErr := datemath.NewParser(timezone)
	if dtErr != nil {
		logger.Warnf(ctx, "Invalid timezone %q, falling back to UTC: %v", timezone, dtErr)
		dateParser, _ = datemath.NewParser("UTC")
	}

	// 5. Google Calendar client (optional)
	var calendarMirror todo.CalendarMirror
	if cfg.GoogleCalendar.CredentialsPath != "" {
		calendarClient, calErr := gcalendar.NewClientFromCredentialsFile(ctx, cfg.GoogleCalendar.CredentialsPath)
		if calErr != nil {
			logger.Warnf(ctx, "Google Calendar not available (optional): %v", calErr)
		} else {
			calendarClient.SetCalendarID(cfg.GoogleCalendar.CalendarID)
			calendarClient.SetTimezone(cfg.GoogleCalendar.Timezone)
			calendarMirror = calendarClient
			logger.Info(ctx, "Google Calendar initialized")
		}
	} else {
		logger.Info(ctx, "Google Calendar credentials not configured, running without calendar sync")
	}

	// 6. Todo domain
	taskRepo := todoRepo.New(db, logger)
	taskUC := todoUC.New(taskRepo, calendarMirror, logger)
	todoHandler := todoHTTP.New(logger, taskUC, dateParser)

	// 7. Gemini chat model (optional)
	var chatModel assistant.ChatModel
	if cfg.Gemini.APIKey != "" {
		geminiClient := gemini.NewClient(cfg.Gemini.APIKey)
		geminiClient.SetModel(cfg.Gemini.Model)

		sessions, stErr := gemini.NewSessionStore(geminiClient, cfg.Chat.SessionCacheSize)
		if stErr != nil {
			logger.Error(ctx, "Failed to create Gemini session store: ", stErr)
			return
		}
		chatModel = sessions
		logger.Info(ctx, "Gemini chat model initialized")
	} else {
		logger.Warn(ctx, "GEMINI_API_KEY not set, chat falls back to rule-based interpretation only")
	}

	// 8. Whisper transcription client (optional)
	var transcriber assistant.Transcriber
	if cfg.Whisper.URL != "" {
		transcriber = transcribe.NewClient(cfg.Whisper.URL)
		logger.Infof(ctx, "Whisper transcription service at %s", cfg.Whisper.URL)
	} else {
		logger.Warn(ctx, "whisper.url not set, audio endpoints disabled")
	}

	// 9. Assistant domain
	chatUC := assistantUC.New(taskUC, dateParser, chatModel, transcriber, logger)
	assistantHandler := assistantHTTP.New(logger, chatUC)

	// 10. HTTP Server
	mw := middleware.New(logger, middleware.RateLimitConfig{
		RequestsPerSecond: cfg.HTTPServer.RateLimit.RequestsPerSecond,
		Burst:             cfg.HTTPServer.RateLimit.Burst,
	})

	httpServer, err := httpserver.New(logger, httpserver.Config{
		Logger:           logger,
		Port:             cfg.HTTPServer.Port,
		Mode:             cfg.HTTPServer.Mode,
		Environment:      cfg.Environment.Name,
		Middleware:       mw,
		TodoHandler:      todoHandler,
		AssistantHandler: assistantHandler,
	})
	if err != nil {
		logger.Error(ctx, "Failed to initialize HTTP server: ", err)
		return
	}

	// 11. Run
	if err := httpServer.Run(ctx); err != nil {
		logger.Error(ctx, "Failed to run server: ", err)
		return
	}

	logger.Info(ctx, "Server stopped gracefully")
}
