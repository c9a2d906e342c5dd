package httpapi

import (
	"crypto/subtle"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"logix-research/internal/adapter/logging"
	"logix-research/internal/domain/ports"
)

const requestIDHeader = "X-Request-ID"

// requestID tags the request context with the incoming X-Request-ID or a
// fresh UUID so every log line of the request carries it.
func requestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(requestIDHeader)
		if id == "" {
			id = uuid.NewString()
		}
		c.Request = c.Request.WithContext(logging.WithRequestID(c.Request.Context(), id))
		c.Header(requestIDHeader, id)
		c.Next()
	}
}

func accessLog(logger ports.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		args := []any{
			"method", c.Request.Method,
			"path", c.Request.URL.Path,
			"status", c.Writer.Status(),
			"duration", time.Since(start),
		}
		ctx := c.Request.Context()
		switch {
		case c.Writer.Status() >= http.StatusInternalServerError:
			logger.Error(ctx, "request failed", args...)
		case c.Writer.Status() >= http.StatusBadRequest:
			logger.Warn(ctx, "request rejected", args...)
		default:
			logger.Info(ctx, "request served", args...)
		}
	}
}

func recovery(logger ports.Logger) gin.HandlerFunc {
	return gin.CustomRecovery(func(c *gin.Context, recovered any) {
		logger.Error(c.Request.Context(), "handler panic", "panic", recovered)
		abortDetail(c, http.StatusInternalServerError, "internal server error")
	})
}

// requireAPIKey rejects requests whose X-API-Key header does not match key.
// An empty key rejects every request.
func requireAPIKey(key string) gin.HandlerFunc {
	expected := []byte(key)
	return func(c *gin.Context) {
		got := c.GetHeader(APIKeyHeader)
		if got == "" {
			abortDetail(c, http.StatusForbidden, "Not authenticated")
			return
		}
		if len(expected) == 0 || subtle.ConstantTimeCompare([]byte(got), expected) != 1 {
			abortDetail(c, http.StatusForbidden, "Invalid API Key")
			return
		}
		c.Next()
	}
}
