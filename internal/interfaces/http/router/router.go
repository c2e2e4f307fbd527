package router

import (
	"github.com/packhouse/backend/internal/infrastructure/config"
	"github.com/packhouse/backend/internal/infrastructure/logger"
	"github.com/packhouse/backend/internal/interfaces/http/handler"
	"github.com/packhouse/backend/internal/interfaces/http/middleware"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// Handlers bundles everything the router mounts
type Handlers struct {
	System    *handler.SystemHandler
	Orders    *handler.OrderHandler
	Documents *handler.DocumentHandler
}

// New builds the gin engine with middleware and all routes mounted
func New(cfg *config.Config, log *zap.Logger, h Handlers) *gin.Engine {
	if cfg.App.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	if len(cfg.HTTP.TrustedProxies) > 0 {
		_ = r.SetTrustedProxies(cfg.HTTP.TrustedProxies)
	}

	r.Use(middleware.RequestID())
	r.Use(logger.GinMiddleware(log))
	r.Use(logger.Recovery(log))
	r.Use(middleware.Secure())

	r.GET("/health", h.System.Health)

	v1 := r.Group("/api/v1")
	{
		v1.GET("/orders", h.Orders.List)
		v1.POST("/documents", h.Documents.Generate)
		v1.POST("/printed", h.Orders.Mark)
		v1.DELETE("/printed", h.Orders.Unmark)
		v1.DELETE("/printed/all", h.Orders.Clear)
	}

	return r
}
