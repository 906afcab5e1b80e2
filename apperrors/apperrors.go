// apperrors.go - Error taxonomy shared by all layers
//
// Lower layers classify failures with these kinds; only the HTTP boundary
// converts a kind to a status code and JSON body. Nothing in between is
// allowed to swallow an error silently.

package apperrors

import (
	"errors"
	"fmt"
)

type Kind int // Kind classifies an error into the taxonomy

const (
	KindUnexpected     Kind = iota // Storage/infra failure → 500, generic message
	KindAuthentication             // Missing/invalid/expired credential → 401
	KindAuthorization              // Authenticated but forbidden → 403
	KindValidation                 // Malformed input fields → 400
	KindNotFound                   // Unknown resource → 404
	KindConflict                   // Uniqueness violation → 409
)

// FieldError reports a validation failure for a single input field.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// Error carries a taxonomy kind, a client-safe message, optional per-field
// validation details, and the wrapped cause (never shown to clients).
type Error struct {
	Kind    Kind
	Message string
	Fields  []FieldError
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *Error) Unwrap() error { return e.Err }

// Authentication builds a 401-class error.
func Authentication(message string) *Error {
	return &Error{Kind: KindAuthentication, Message: message}
}

// Authorization builds a 403-class error.
func Authorization(message string) *Error {
	return &Error{Kind: KindAuthorization, Message: message}
}

// Validation builds a 400-class error from per-field messages.
func Validation(fields ...FieldError) *Error {
	return &Error{Kind: KindValidation, Message: "Validation failed", Fields: fields}
}

// NotFound builds a 404-class error.
func NotFound(message string) *Error {
	return &Error{Kind: KindNotFound, Message: message}
}

// Conflict builds a 409-class error.
func Conflict(message string) *Error {
	return &Error{Kind: KindConflict, Message: message}
}

// Unexpected wraps an infrastructure failure. The client-safe message stays
// generic; the cause is kept for logs only.
func Unexpected(message string, err error) *Error {
	return &Error{Kind: KindUnexpected, Message: message, Err: err}
}

// KindOf extracts the taxonomy kind from any error. Unclassified errors
// report KindUnexpected.
func KindOf(err error) Kind {
	var appErr *Error
	if errors.As(err, &appErr) {
		return appErr.Kind
	}
	return KindUnexpected
}
