package api_errors

import (
	"github.com/pkg/errors"
	"github.com/vektah/gqlparser/v2/gqlerror"

	apperrors "github.com/customeros/socialstack/internal/errors"
)

const (
	CodeNotFound = "NOT_FOUND"
	CodeInternal = "INTERNAL_ERROR"
)

// GraphQLError is returned by resolvers. The engine copies Extensions into
// the error entry of the response.
type GraphQLError struct {
	gqlErr *gqlerror.Error
	cause  error
}

// NewError creates a standardized GraphQL error
func NewError(message string, code string, extensions map[string]interface{}) *GraphQLError {
	if extensions == nil {
		extensions = make(map[string]interface{})
	}
	extensions["code"] = code

	return &GraphQLError{
		gqlErr: &gqlerror.Error{
			Message:    message,
			Extensions: extensions,
		},
	}
}

func (e *GraphQLError) Error() string {
	return e.gqlErr.Message
}

func (e *GraphQLError) Extensions() map[string]interface{} {
	return e.gqlErr.Extensions
}

func (e *GraphQLError) Code() string {
	code, _ := e.gqlErr.Extensions["code"].(string)
	return code
}

func (e *GraphQLError) Unwrap() error {
	return e.cause
}

// FromError maps a repository error onto the GraphQL error codes.
func FromError(err error) error {
	if err == nil {
		return nil
	}
	var gqlErr *GraphQLError
	if errors.As(err, &gqlErr) {
		return gqlErr
	}

	code := CodeInternal
	if errors.Is(err, apperrors.ErrAuthorNotFound) {
		code = CodeNotFound
	}

	mapped := NewError(err.Error(), code, nil)
	mapped.cause = err
	return mapped
}
