package config

import (
	"errors"
	"fmt"
)

// Errors returned by configuration operations.
var (
	// ErrMalformedConfig indicates the source could not be parsed into a
	// structurally valid configuration.
	ErrMalformedConfig = errors.New("malformed config")

	// ErrConfigUnavailable indicates the source is absent or unreadable.
	ErrConfigUnavailable = errors.New("config unavailable")
)

// ParseError describes a parse failure in a configuration file.
type ParseError struct {
	// Path is the file path that failed to parse.
	Path string
	// Message describes the parse error.
	Message string
	// Err is the underlying error.
	Err error
}

// Error implements the error interface.
func (e *ParseError) Error() string {
	return fmt.Sprintf("parse error in %s: %s", e.Path, e.Message)
}

// Unwrap returns the underlying error.
func (e *ParseError) Unwrap() error {
	return e.Err
}

// Is matches ParseError against ErrMalformedConfig.
func (e *ParseError) Is(target error) bool {
	return target == ErrMalformedConfig
}
