package middleware

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/customeros/socialstack/internal/logger"
	"github.com/customeros/socialstack/internal/utils"
)

// AccessLogMiddleware writes one structured line per request.
func AccessLogMiddleware(log logger.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		log.With(
			"method", c.Request.Method,
			"path", c.Request.URL.Path,
			"status", c.Writer.Status(),
			"duration", time.Since(start).String(),
			"requestId", utils.GetRequestIdFromContext(c.Request.Context()),
		).Info("request handled")
	}
}
