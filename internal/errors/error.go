package errors

import "github.com/pkg/errors"

var (
	// post errors
	ErrAuthorNotFound = errors.New("Author not found")
)
