package httpserver

import (
	"context"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	assistantHTTP "github.com/Waghib/Speech-To-Plan-reminder/internal/assistant/delivery/http"
	"github.com/Waghib/Speech-To-Plan-reminder/internal/model"
	todoHTTP "github.com/Waghib/Speech-To-Plan-reminder/internal/todo/delivery/http"
)

func (srv HTTPServer) mapHandlers() error {
	srv.registerMiddlewares()
	srv.registerSystemRoutes()

	if err := srv.registerDomainRoutes(); err != nil {
		return err
	}

	return nil
}

func (srv HTTPServer) registerMiddlewares() {
	ctx := context.Background()

	srv.gin.Use(gin.Recovery())
	srv.gin.Use(srv.mw.RequestID())
	srv.gin.Use(srv.mw.CORS())
	srv.gin.Use(srv.mw.RateLimit())

	if srv.environment == string(model.EnvironmentProduction) {
		srv.l.Infof(ctx, "CORS mode: production")
	} else {
		srv.l.Infof(ctx, "CORS mode: %s", srv.environment)
	}
}

func (srv HTTPServer) registerSystemRoutes() {
	srv.gin.GET("/health", srv.healthCheck)
	srv.gin.GET("/ready", srv.readyCheck)
	srv.gin.GET("/live", srv.liveCheck)

	srv.gin.GET("/swagger/*any", ginSwagger.WrapHandler(
		swaggerFiles.Handler,
		ginSwagger.URL("doc.json"),
		ginSwagger.DefaultModelsExpandDepth(-1),
	))
}

// registerDomainRoutes registers all domain routes.
func (srv HTTPServer) registerDomainRoutes() error {
	ctx := context.Background()

	// The browser extension calls /chat, /transcribe and /todos without
	// a version prefix, so everything hangs off the root group.
	root := srv.gin.Group("")

	todoHTTP.RegisterRoutes(root, srv.todoHandler)
	srv.l.Info(ctx, "Todo routes registered at /todos")

	assistantHTTP.RegisterRoutes(root, srv.assistantHandler)
	srv.l.Info(ctx, "Assistant routes registered at /chat, /transcribe, /transcribe_chat")

	return nil
}
