// Package httpapi exposes the research use case and the frontend over HTTP.
package httpapi

import (
	"context"
	"net/http"
	"path/filepath"
	"time"

	"github.com/gin-gonic/gin"

	"logix-research/internal/domain/ports"
)

// APIKeyHeader is the request header carrying the shared secret.
const APIKeyHeader = "X-API-Key"

// Options controls the routes mounted by NewRouter.
type Options struct {
	APIKey         string
	StaticDir      string
	RequestTimeout time.Duration
}

// Handler serves the research API.
type Handler struct {
	researcher ports.Researcher
	logger     ports.Logger
	timeout    time.Duration
}

// NewRouter builds the gin engine with the API, the static mount and the index page.
func NewRouter(research ports.Researcher, logger ports.Logger, opts Options) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)

	h := &Handler{
		researcher: research,
		logger:     logger,
		timeout:    opts.RequestTimeout,
	}

	router := gin.New()
	router.Use(requestID(), accessLog(logger), recovery(logger))

	router.GET("/healthz", h.health)
	router.GET("/openapi.json", openAPIDocument)
	router.GET("/docs", docsPage)

	api := router.Group("/api", requireAPIKey(opts.APIKey))
	api.POST("/research", h.research)

	router.Static("/static", opts.StaticDir)
	index := filepath.Join(opts.StaticDir, "index.html")
	router.GET("/", func(c *gin.Context) {
		c.File(index)
	})

	return router
}

func (h *Handler) health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

func (h *Handler) requestContext(c *gin.Context) (context.Context, context.CancelFunc) {
	ctx := c.Request.Context()
	if h.timeout <= 0 {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, h.timeout)
}

func abortDetail(c *gin.Context, status int, detail string) {
	c.AbortWithStatusJSON(status, gin.H{"detail": detail})
}
