package handler

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// RequestIDHeader carries the per-request correlation id.
const RequestIDHeader = "X-Request-ID"

// requestIDKey is the gin context key for the correlation id.
const requestIDKey = "request_id"

// CORSMiddleware returns a middleware that enables permissive CORS.
// The comparison UI is served from a different origin during development.
func CORSMiddleware() gin.HandlerFunc {
	cfg := cors.DefaultConfig()
	cfg.AllowAllOrigins = true
	cfg.AllowHeaders = append(cfg.AllowHeaders, RequestIDHeader)
	return cors.New(cfg)
}

// RequestIDMiddleware assigns each request a correlation id, honoring one
// supplied by the caller.
func RequestIDMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(RequestIDHeader)
		if id == "" {
			id = uuid.NewString()
		}

		c.Set(requestIDKey, id)
		c.Header(RequestIDHeader, id)

		c.Next()
	}
}

// LoggingMiddleware returns a middleware that logs request details in JSON format.
func LoggingMiddleware(logger *slog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		path := c.Request.URL.Path
		query := c.Request.URL.RawQuery

		c.Next()

		latency := time.Since(start)
		requestID := c.GetString(requestIDKey)

		logger.Info("request completed",
			slog.String("method", c.Request.Method),
			slog.String("path", path),
			slog.String("query", query),
			slog.Int("status", c.Writer.Status()),
			slog.Duration("latency", latency),
			slog.String("client_ip", c.ClientIP()),
			slog.String("request_id", requestID),
			slog.String("user_agent", c.Request.UserAgent()),
		)
	}
}

// RecoveryMiddleware returns a middleware that recovers from panics.
// It logs the error and returns a 500 response.
func RecoveryMiddleware(logger *slog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if err := recover(); err != nil {
				logger.Error("panic recovered",
					slog.Any("error", err),
					slog.String("path", c.Request.URL.Path),
					slog.String("request_id", c.GetString(requestIDKey)),
				)

				c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{
					"error": "Internal server error",
				})
			}
		}()

		c.Next()
	}
}
