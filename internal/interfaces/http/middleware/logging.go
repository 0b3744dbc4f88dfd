package middleware

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/turtacn/pharmyrus/internal/infrastructure/monitoring/logging"
)

// LoggingConfig tunes the request logging middleware.
type LoggingConfig struct {
	// SkipPaths are not logged at all; probes and scrapes hit them every few
	// seconds.
	SkipPaths []string

	// SlowThreshold promotes a request to a warning.  Search requests run for
	// minutes by design, so the default is generous.
	SlowThreshold time.Duration
}

// DefaultLoggingConfig returns the standard logging configuration.
func DefaultLoggingConfig() LoggingConfig {
	return LoggingConfig{
		SkipPaths:     []string{"/healthz", "/readyz", "/metrics"},
		SlowThreshold: 30 * time.Minute,
	}
}

// RequestLogging logs one line per completed request.  5xx responses log at
// error level, 4xx at warn, everything else at info.
func RequestLogging(log logging.Logger, cfg LoggingConfig) gin.HandlerFunc {
	log = log.Named("http")
	skip := make(map[string]struct{}, len(cfg.SkipPaths))
	for _, p := range cfg.SkipPaths {
		skip[p] = struct{}{}
	}

	return func(c *gin.Context) {
		if _, ok := skip[c.Request.URL.Path]; ok {
			c.Next()
			return
		}

		start := time.Now()
		c.Next()
		took := time.Since(start)

		fields := []logging.Field{
			logging.String("method", c.Request.Method),
			logging.String("path", c.Request.URL.Path),
			logging.Int("status", c.Writer.Status()),
			logging.Duration("took", took),
			logging.String("request_id", GetRequestID(c)),
			logging.String("remote", c.ClientIP()),
		}

		switch status := c.Writer.Status(); {
		case status >= 500:
			log.Error("request failed", fields...)
		case status >= 400:
			log.Warn("request rejected", fields...)
		case cfg.SlowThreshold > 0 && took > cfg.SlowThreshold:
			log.Warn("slow request", fields...)
		default:
			log.Info("request served", fields...)
		}
	}
}
