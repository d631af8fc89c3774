package middleware

import (
	"github.com/gin-gonic/gin"
	gonanoid "github.com/matoous/go-nanoid/v2"

	"github.com/customeros/socialstack/internal/utils"
)

// RequestIdMiddleware reuses the caller's X-Request-Id or generates one, and
// echoes it on the response.
func RequestIdMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		requestId := c.GetHeader(utils.RequestIdHeader)
		if requestId == "" {
			id, err := gonanoid.New()
			if err == nil {
				requestId = id
			}
		}
		c.Set("RequestId", requestId)
		c.Header(utils.RequestIdHeader, requestId)
		c.Next()
	}
}

// CustomContextMiddleware adds custom context to all requests
func CustomContextMiddleware(appSource string) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := utils.WithCustomContextFromGinRequest(c, appSource)
		c.Request = c.Request.WithContext(ctx)
		c.Next()
	}
}
