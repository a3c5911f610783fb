package apperr

import (
	"errors"
	"fmt"
)

// Kind classifies every failure this service can surface. The set is closed:
// handlers map each kind to exactly one HTTP status.
type Kind int

const (
	// KindBadRequest means the caller's input failed validation.
	KindBadRequest Kind = iota
	// KindNotFound means the request was well-formed but matched no data.
	KindNotFound
	// KindStorage means communication with Postgres failed or returned
	// malformed data. The cause is logged, never sent to the client.
	KindStorage
	// KindConfig means startup configuration is invalid. Fatal, never
	// produced mid-request.
	KindConfig
)

// Error is the typed error carried between the repository, service, and HTTP
// layers. Message is safe to show to clients; Err is the wrapped cause and
// stays server-side.
type Error struct {
	Kind    Kind
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

// Unwrap exposes the underlying cause to errors.Is / errors.As.
func (e *Error) Unwrap() error {
	return e.Err
}

// BadRequest builds a validation failure with a caller-visible message.
func BadRequest(message string) *Error {
	return &Error{Kind: KindBadRequest, Message: message}
}

// NotFound builds the canonical absence error for a pair.
func NotFound(pair string) *Error {
	return &Error{Kind: KindNotFound, Message: fmt.Sprintf("Prediction not found for pair: %s", pair)}
}

// Storage wraps a driver-level failure. The client-visible message is always
// the generic one; err carries the detail for logs.
func Storage(err error) *Error {
	return &Error{Kind: KindStorage, Message: "Database error", Err: err}
}

// Config builds a startup configuration failure.
func Config(message string) *Error {
	return &Error{Kind: KindConfig, Message: message}
}

// KindOf extracts the Kind from err, unwrapping as needed.
// ok is false when err carries no *Error anywhere in its chain.
func KindOf(err error) (Kind, bool) {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind, true
	}
	return 0, false
}
