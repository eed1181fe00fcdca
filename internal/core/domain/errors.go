package domain

import (
	"errors"
	"fmt"
	"strings"
)

// ErrAssetNotFound is an error thrown when an asset row is not found
var ErrAssetNotFound = errors.New("asset not found")

// ErrFileNotFound is an error thrown when the physical file is missing
var ErrFileNotFound = errors.New("file not found")

// ErrMovieNotFound is an error thrown when a movie is not found
var ErrMovieNotFound = errors.New("movie not found")

// ErrActorNotFound is an error thrown when an actor is not found
var ErrActorNotFound = errors.New("actor not found")

// ErrStudioNotFound is an error thrown when a studio is not found
var ErrStudioNotFound = errors.New("studio not found")

// ErrUserNotFound is an error thrown when a user is not found
var ErrUserNotFound = errors.New("user not found")

// ErrAlreadyExists is an error thrown when entity already exists
var ErrAlreadyExists = errors.New("already exists")

// ErrStudioInUse is an error thrown when deleting a studio still referenced by movies
var ErrStudioInUse = errors.New("studio still referenced by movies")

// ErrInvalidCredentials is an error thrown when login fails
var ErrInvalidCredentials = errors.New("invalid credentials")

// ErrNoVideoStream is an error thrown when a video holds no decodable video stream
var ErrNoVideoStream = errors.New("no video stream")

// ErrStorageConsistency is an error thrown when the metadata row could not be
// removed and the physical files were deliberately left alone
var ErrStorageConsistency = errors.New("storage consistency failure")

// FieldError is a single field/message validation failure.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidationError accumulates field errors for one request. Callers build it
// with pure validation functions and decide the transport mapping themselves.
type ValidationError struct {
	Fields []FieldError
}

func (e *ValidationError) Error() string {
	parts := make([]string, 0, len(e.Fields))
	for _, f := range e.Fields {
		parts = append(parts, fmt.Sprintf("%s: %s", f.Field, f.Message))
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

// NewValidationError wraps field errors, returning nil when there are none.
func NewValidationError(fields []FieldError) error {
	if len(fields) == 0 {
		return nil
	}
	return &ValidationError{Fields: fields}
}
