package api

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
)

const requestIDKey = "request_id"

// NewRouter assembles the HTTP surface: the dashboard API under
// /api/v1/dashboard plus health and metrics endpoints.
func NewRouter(h *DashboardHandler, log *zap.SugaredLogger) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery(), requestID(), requestLogger(log))

	router.GET("/health", func(c *gin.Context) {
		c.String(http.StatusOK, "OK")
	})
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	h.Register(router.Group("/api/v1/dashboard"))
	return router
}

// requestID tags every request with an id, honoring one supplied by the
// client.
func requestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader("X-Request-ID")
		if id == "" {
			id = uuid.NewString()
		}
		c.Set(requestIDKey, id)
		c.Writer.Header().Set("X-Request-ID", id)
		c.Next()
	}
}

func requestLogger(log *zap.SugaredLogger) gin.HandlerFunc {
	return func(c *gin.Context) {
		started := time.Now()
		c.Next()
		log.Infow("http request",
			"method", c.Request.Method,
			"path", c.Request.URL.Path,
			"status", c.Writer.Status(),
			"duration_ms", time.Since(started).Milliseconds(),
			"request_id", c.GetString(requestIDKey),
		)
	}
}
