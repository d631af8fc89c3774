package server

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"os/signal"
	"runtime/debug"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/graph-gophers/graphql-go"
	"github.com/opentracing/opentracing-go"
	"github.com/opentracing/opentracing-go/ext"
	"github.com/pkg/errors"

	"github.com/customeros/socialstack/api"
	"github.com/customeros/socialstack/api/graphql/resolver"
	"github.com/customeros/socialstack/api/graphql/schema"
	"github.com/customeros/socialstack/config"
	"github.com/customeros/socialstack/internal/cron"
	"github.com/customeros/socialstack/internal/logger"
	"github.com/customeros/socialstack/internal/repository"
	"github.com/customeros/socialstack/internal/tracing"
)

type Server struct {
	config       *config.Config
	log          logger.Logger
	httpServer   *http.Server
	router       *gin.Engine
	schema       *graphql.Schema
	repositories *repository.Repositories
	cronManager  *cron.CronManager
	tracerCloser io.Closer
}

func NewServer(cfg *config.Config) (*Server, error) {
	// Initialize logger
	appLogger := logger.NewAppLogger(cfg.Logger)
	appLogger.InitLogger()

	// Initialize tracing
	tracer, closer, err := tracing.NewJaegerTracer(cfg.Tracing, appLogger)
	if err != nil {
		return nil, errors.Wrap(err, "could not initialize jaeger tracer")
	}
	opentracing.SetGlobalTracer(tracer)

	// Initialize repositories over a fresh in-memory store
	store := repository.NewStore()
	repos := repository.InitRepositories(store, cfg.AppConfig.PasswordHashCost)

	// Bind resolvers to the schema
	gqlSchema, err := schema.Parse(
		resolver.NewResolver(repos),
		schema.Options(appLogger, cfg.AppConfig.GraphQLMaxParallelism)...,
	)
	if err != nil {
		closer.Close()
		return nil, errors.Wrap(err, "could not parse graphql schema")
	}

	// Initialize Gin
	gin.SetMode(gin.ReleaseMode)
	router := gin.New()

	return &Server{
		config:       cfg,
		log:          appLogger,
		router:       router,
		schema:       gqlSchema,
		repositories: repos,
		cronManager:  cron.NewCronManager(cfg.Cron, appLogger, store),
		tracerCloser: closer,
		httpServer: &http.Server{
			Addr:    ":" + cfg.AppConfig.APIPort,
			Handler: router,
		},
	}, nil
}

func (s *Server) Initialize() error {
	api.RegisterRoutes(s.router, s.schema, s.config.AppConfig, s.repositories.Store, s.log)

	if err := s.cronManager.StartCron(); err != nil {
		return errors.Wrap(err, "could not start cron manager")
	}
	return nil
}

func (s *Server) recoverWithJaeger(name string) {
	if r := recover(); r != nil {
		// Create a new span for the panic
		span := opentracing.GlobalTracer().StartSpan(
			fmt.Sprintf("panic.%s", name),
		)
		defer span.Finish()

		// Mark span as failed
		ext.Error.Set(span, true)

		span.LogKV(
			"event", "panic",
			"process", name,
			"error", fmt.Sprintf("%v", r),
			"stack", string(debug.Stack()),
		)

		s.log.Errorf("Panic in %s: %v\n%s", name, r, debug.Stack())
	}
}

func (s *Server) wrapGoroutine(name string, fn func()) {
	defer s.recoverWithJaeger(name)
	fn()
}

func (s *Server) Run() error {
	if err := s.Initialize(); err != nil {
		return err
	}

	// Start HTTP server in a goroutine with panic recovery
	go s.wrapGoroutine("http_server", func() {
		s.log.Infof("Starting HTTP server on %s", s.httpServer.Addr)
		if err := s.httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			s.log.Errorf("HTTP server error: %v", err)
		}
	})
	s.log.Infof("SocialStack is now running, GraphQL endpoint at http://localhost%s%s", s.httpServer.Addr, api.GraphQLPath)

	return s.waitForShutdown()
}

func (s *Server) waitForShutdown() error {
	defer s.recoverWithJaeger("shutdown")

	// Set up signal handling for graceful shutdown
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	<-stop
	s.log.Info("Shutting down...")

	timeout := time.Duration(s.config.AppConfig.ShutdownTimeoutSeconds) * time.Second
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), timeout)
	defer shutdownCancel()

	var shutdownErr error
	if err := s.httpServer.Shutdown(shutdownCtx); err != nil {
		s.log.Errorf("HTTP server shutdown error: %v", err)
		shutdownErr = err
	} else {
		s.log.Info("HTTP server shut down successfully")
	}

	s.cronManager.Stop()

	if s.tracerCloser != nil {
		s.tracerCloser.Close()
	}
	_ = s.log.Sync()

	return shutdownErr
}
