// Package http wires the HTTP surface of the service: router, middleware
// chain, and server lifecycle.
package http

import (
	"github.com/gin-gonic/gin"

	"github.com/turtacn/pharmyrus/internal/config"
	"github.com/turtacn/pharmyrus/internal/infrastructure/monitoring/logging"
	"github.com/turtacn/pharmyrus/internal/infrastructure/monitoring/prometheus"
	"github.com/turtacn/pharmyrus/internal/interfaces/http/handlers"
	"github.com/turtacn/pharmyrus/internal/interfaces/http/middleware"
)

// RouterDeps bundles everything the router mounts.
type RouterDeps struct {
	Search    *handlers.SearchHandler
	Health    *handlers.HealthHandler
	Collector prometheus.MetricsCollector
	Log       logging.Logger
}

// NewRouter builds the gin engine with the full middleware chain and all
// routes mounted.
func NewRouter(cfg config.ServerConfig, deps RouterDeps) *gin.Engine {
	gin.SetMode(ginMode(cfg.Mode))

	r := gin.New()
	r.Use(
		gin.Recovery(),
		middleware.RequestID(),
		middleware.RequestLogging(deps.Log, middleware.DefaultLoggingConfig()),
		middleware.CORS(),
	)

	r.GET("/", deps.Health.Info)
	r.GET("/healthz", deps.Health.Health)
	r.GET("/readyz", deps.Health.Ready)
	if deps.Collector != nil {
		r.GET("/metrics", gin.WrapH(deps.Collector.Handler()))
	}

	api := r.Group("/api/v1")
	api.POST("/search", deps.Search.Search)

	// Legacy route from before the API was versioned.
	r.POST("/search", deps.Search.Search)

	return r
}

func ginMode(mode string) string {
	switch mode {
	case "debug":
		return gin.DebugMode
	case "test":
		return gin.TestMode
	default:
		return gin.ReleaseMode
	}
}
