package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/opentracing/opentracing-go/log"

	"github.com/customeros/socialstack/internal/tracing"
)

// TracingMiddleware creates a new span for each request and adds common tags.
// GraphQL requests are named after their operationName when one is sent.
func TracingMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		operationName := c.Request.Method + " " + c.FullPath()
		if c.Request.Method == "POST" {
			if gqlOperation := tracing.ExtractGraphQLMethodName(c.Request); gqlOperation != "" {
				operationName = "graphql " + gqlOperation
			}
		}

		ctx, span := tracing.StartHttpServerTracerSpanWithHeader(
			c.Request.Context(),
			operationName,
			c.Request.Header,
		)
		defer span.Finish()

		tracing.SetDefaultRestSpanTags(ctx, span)

		// Store span in context
		c.Request = c.Request.WithContext(ctx)

		// Process request
		c.Next()

		span.SetTag("http.status_code", c.Writer.Status())
		if c.Writer.Status() >= 400 {
			span.SetTag("error", true)
			span.LogFields(log.String("event", "error"))
		}
	}
}
