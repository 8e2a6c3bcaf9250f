// Package apperror defines the application-wide error taxonomy and its HTTP mapping.
// Expected failures are represented as *Error values carrying a Kind; handlers pass any
// error to Respond, which writes the stable {success, message, errors} envelope.
package apperror

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
)

// Kind classifies a caller-visible failure.
type Kind int

const (
	// Unknown is the fallback kind for unexpected errors. It maps to a generic 500.
	Unknown Kind = iota

	// ValidationFailed indicates one or more request fields violated a field rule.
	ValidationFailed

	// Conflict indicates a unique-key collision, e.g. a duplicate email on registration.
	Conflict

	// Unauthenticated indicates a missing or malformed Authorization header.
	Unauthenticated

	// InvalidToken indicates a token that failed signature or expiry checks.
	InvalidToken

	// StaleUser indicates a verifiable token whose subject no longer exists.
	StaleUser

	// InvalidCredentials indicates a failed login. The message is identical whether
	// the email was unknown or the password was wrong, to prevent account enumeration.
	InvalidCredentials

	// NotFound indicates a missing resource.
	NotFound

	// StoreUnavailable indicates the backing store could not be reached. It is never
	// conflated with an authentication failure.
	StoreUnavailable

	// TooManyRequests indicates the client exceeded a rate limit.
	TooManyRequests
)

// Error is an application error with a stable caller-visible status and message.
type Error struct {
	Kind    Kind
	Message string
	// Fields holds per-field messages for ValidationFailed errors.
	Fields map[string]string
	// Err is the wrapped cause, if any. It is logged but never sent to the caller.
	Err error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

func (e *Error) Unwrap() error { return e.Err }

// New creates an Error with the given kind and caller-visible message.
func New(kind Kind, message string) *Error {
	return &Error{Kind: kind, Message: message}
}

// Wrap creates an Error that carries an internal cause.
func Wrap(kind Kind, message string, err error) *Error {
	return &Error{Kind: kind, Message: message, Err: err}
}

// Validation creates a ValidationFailed error from a field-to-message map.
func Validation(fields map[string]string) *Error {
	return &Error{Kind: ValidationFailed, Message: "Validation error", Fields: fields}
}

// Status returns the HTTP status code for the error's kind.
func (e *Error) Status() int {
	switch e.Kind {
	case ValidationFailed, Conflict:
		return http.StatusBadRequest
	case Unauthenticated, InvalidToken, StaleUser, InvalidCredentials:
		return http.StatusUnauthorized
	case NotFound:
		return http.StatusNotFound
	case TooManyRequests:
		return http.StatusTooManyRequests
	case StoreUnavailable:
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}

// guardMessage is the single message returned for every guard failure. The three
// kinds stay distinguishable in code, but callers see one uniform response.
const guardMessage = "Invalid or expired token. Please log in again"

// publicMessage returns the message sent to the caller. Token-related kinds collapse
// to one uniform message and Unknown never leaks its cause.
func (e *Error) publicMessage() string {
	switch e.Kind {
	case Unauthenticated, InvalidToken, StaleUser:
		return guardMessage
	case Unknown:
		return "Something went wrong"
	case StoreUnavailable:
		return "Service temporarily unavailable"
	default:
		return e.Message
	}
}

// body is the stable error envelope shared by every failure response.
type body struct {
	Success bool              `json:"success"`
	Message string            `json:"message"`
	Errors  map[string]string `json:"errors,omitempty"`
}

// Respond writes err to the response in the stable envelope. Errors that are not
// *Error values are logged and surfaced as a generic 500.
func Respond(c *gin.Context, err error) {
	var appErr *Error
	if !errors.As(err, &appErr) {
		slog.Error("unexpected error", "error", err, "path", c.FullPath())
		c.JSON(http.StatusInternalServerError, body{Success: false, Message: "Something went wrong"})
		return
	}
	if appErr.Err != nil {
		slog.Warn("request failed", "error", appErr.Err, "message", appErr.Message, "path", c.FullPath())
	}
	c.JSON(appErr.Status(), body{
		Success: false,
		Message: appErr.publicMessage(),
		Errors:  appErr.Fields,
	})
}
