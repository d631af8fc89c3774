package schema

import (
	"context"
	_ "embed"
	"runtime/debug"

	"github.com/graph-gophers/graphql-go"
	gqllog "github.com/graph-gophers/graphql-go/log"

	"github.com/customeros/socialstack/internal/logger"
)

//go:embed schema.graphql
var SDL string

// Parse binds the root resolver to the schema. It fails when a declared
// field has no matching resolver method.
func Parse(rootResolver interface{}, opts ...graphql.SchemaOpt) (*graphql.Schema, error) {
	return graphql.ParseSchema(SDL, rootResolver, opts...)
}

// Options returns the engine options used by the server: bounded field
// parallelism and panic reporting through the app logger.
func Options(log logger.Logger, maxParallelism int) []graphql.SchemaOpt {
	opts := []graphql.SchemaOpt{graphql.Logger(PanicLogger(log))}
	if maxParallelism > 0 {
		opts = append(opts, graphql.MaxParallelism(maxParallelism))
	}
	return opts
}

type panicLogger struct {
	log logger.Logger
}

// PanicLogger reports resolver panics recovered by the engine through the app logger.
func PanicLogger(log logger.Logger) gqllog.Logger {
	return &panicLogger{log: log}
}

func (l *panicLogger) LogPanic(_ context.Context, value interface{}) {
	l.log.Errorf("graphql: panic occurred: %v\n%s", value, debug.Stack())
}
