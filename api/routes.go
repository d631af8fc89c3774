package api

import (
	"github.com/99designs/gqlgen/graphql/playground"
	"github.com/gin-gonic/gin"
	"github.com/graph-gophers/graphql-go"
	"github.com/graph-gophers/graphql-go/relay"
	"github.com/opentracing/opentracing-go"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/customeros/socialstack/api/middleware"
	"github.com/customeros/socialstack/api/rest/handlers"
	"github.com/customeros/socialstack/config"
	"github.com/customeros/socialstack/internal/logger"
	"github.com/customeros/socialstack/internal/repository"
	"github.com/customeros/socialstack/internal/tracing"
)

const (
	AppSource   = "socialstack"
	GraphQLPath = "/graphql"
)

// RegisterRoutes mounts the GraphQL endpoint and, when enabled, the
// playground and the operational endpoints.
func RegisterRoutes(r *gin.Engine, schema *graphql.Schema, cfg *config.AppConfig, store *repository.Store, log logger.Logger) {
	if schema == nil {
		panic("Schema cannot be nil")
	}

	// Add recovery middlewares
	r.Use(gin.Recovery())                                         // Gin's built-in recovery
	r.Use(tracing.RecoveryWithJaeger(opentracing.GlobalTracer())) // Our custom Jaeger recovery
	r.Use(middleware.RequestIdMiddleware())
	r.Use(middleware.CustomContextMiddleware(AppSource))
	r.Use(middleware.AccessLogMiddleware(log))

	gql := r.Group(GraphQLPath)
	gql.Use(middleware.TracingMiddleware())
	{
		gql.POST("", gin.WrapH(&relay.Handler{Schema: schema}))
		if cfg.PlaygroundEnabled {
			gql.GET("", gin.WrapH(playground.Handler("socialstack", GraphQLPath)))
		}
	}

	if cfg.OpsEndpointsEnabled {
		r.GET("/health", handlers.HealthCheck)
		r.GET("/status", handlers.Status(store))
		r.GET("/metrics", gin.WrapH(promhttp.Handler()))
	}
}
