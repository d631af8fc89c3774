package resolver

import (
	"context"
	"time"

	"github.com/opentracing/opentracing-go"

	api_errors "github.com/customeros/socialstack/api/errors"
	"github.com/customeros/socialstack/internal/metrics"
	"github.com/customeros/socialstack/internal/repository"
	"github.com/customeros/socialstack/internal/tracing"
)

// defaultPostsLimit and defaultPostsOffset apply when posts is called without a window.
const (
	defaultPostsLimit  = 10
	defaultPostsOffset = 0
)

// Resolver is the root resolver for both Query and Mutation.
type Resolver struct {
	repositories *repository.Repositories
}

func NewResolver(repos *repository.Repositories) *Resolver {
	return &Resolver{
		repositories: repos,
	}
}

// startResolver opens a span for a root field and returns the callback
// that records its outcome and maps the error for the response.
func startResolver(ctx context.Context, field string) (context.Context, func(err error) error) {
	start := time.Now()
	span, ctx := opentracing.StartSpanFromContext(ctx, "Resolver."+field)
	tracing.SetDefaultGraphqlSpanTags(ctx, span)

	return ctx, func(err error) error {
		defer span.Finish()
		metrics.ObserveResolver(field, start, err)
		if err != nil {
			tracing.TraceErr(span, err)
			return api_errors.FromError(err)
		}
		return nil
	}
}
