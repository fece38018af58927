package apperr

import "errors"

// Error is the application error carried across the core's public contract.
// Status maps directly to the HTTP status the boundary should respond with.
type Error struct {
	// Status is the HTTP status code equivalent.
	Status int
	// Message is the short machine-readable message returned to callers.
	Message string
	// Details carries optional human-readable context (string or per-field map).
	Details any
	// cause is the underlying error, kept for logging only.
	cause error
}

func (e *Error) Error() string {
	if e.cause != nil {
		return e.Message + ": " + e.cause.Error()
	}
	return e.Message
}

// Unwrap exposes the underlying cause for errors.Is/As chains.
func (e *Error) Unwrap() error {
	return e.cause
}

// UpstreamUnavailable reports that an external data source could not be used.
func UpstreamUnavailable(detail string, cause error) *Error {
	return &Error{
		Status:  503,
		Message: "External data source unavailable",
		Details: detail,
		cause:   cause,
	}
}

// NotFound reports that a requested record does not exist.
func NotFound(msg string) *Error {
	return &Error{Status: 404, Message: msg}
}

// ValidationFailed reports malformed request input with per-field messages.
func ValidationFailed(details any) *Error {
	return &Error{Status: 400, Message: "Validation failed", Details: details}
}

// Internal wraps an unexpected failure. The caller-facing message is generic;
// the cause is retained for logging.
func Internal(cause error) *Error {
	return &Error{Status: 500, Message: "Internal server error", cause: cause}
}

// Wrap passes taxonomy errors through unchanged and converts anything else
// into an Internal error. Nil stays nil.
func Wrap(err error) error {
	if err == nil {
		return nil
	}
	var appErr *Error
	if errors.As(err, &appErr) {
		return appErr
	}
	return Internal(err)
}
