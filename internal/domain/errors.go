package domain

import "errors"

// ErrValidation is the kind of error returned when a create request fails a
// domain constraint (coordinate bounds, empty names).
// Handlers should map this to HTTP 422 Unprocessable Entity.
var ErrValidation = errors.New("validation error")

// ErrQuery is the kind of error returned for a structurally invalid
// combination of read parameters, e.g. an offset without a limit.
// Handlers should map this to HTTP 400.
var ErrQuery = errors.New("query error")

// ErrNotFound is the kind of error returned when a well-formed read matched
// no rides. Handlers should map this to HTTP 404.
var ErrNotFound = errors.New("not found")

// ErrServer is the kind of error returned when the storage layer failed.
// Handlers should map this to HTTP 500 and never echo the cause.
var ErrServer = errors.New("server error")

// ErrStorage marks a fault raised by the database driver. The repo wraps every
// driver error with it; the service converts it to ErrServer.
var ErrStorage = errors.New("storage error")

// Caller-facing messages shared across layers.
const (
	MsgOffsetWithoutLimit = "Offset must be provided with limit"
	MsgRidesNotFound      = "Could not find any rides"
	MsgUnknown            = "Unknown error"
)

// Error is a classified failure. Kind is one of the sentinel errors above,
// Message is safe to show to API clients, and Err is the optional cause,
// which is kept for logs only.
type Error struct {
	Kind    error
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return e.Kind.Error() + ": " + e.Message + ": " + e.Err.Error()
	}
	return e.Kind.Error() + ": " + e.Message
}

// Unwrap exposes both the kind and the cause to errors.Is and errors.As.
func (e *Error) Unwrap() []error {
	if e.Err != nil {
		return []error{e.Kind, e.Err}
	}
	return []error{e.Kind}
}

// ValidationError returns an ErrValidation-kind error with msg.
func ValidationError(msg string) *Error {
	return &Error{Kind: ErrValidation, Message: msg}
}

// QueryError returns an ErrQuery-kind error with msg.
func QueryError(msg string) *Error {
	return &Error{Kind: ErrQuery, Message: msg}
}

// NotFoundError returns the ErrNotFound-kind error reported for empty reads.
func NotFoundError() *Error {
	return &Error{Kind: ErrNotFound, Message: MsgRidesNotFound}
}

// ServerError wraps cause in an ErrServer-kind error with a generic message.
func ServerError(cause error) *Error {
	return &Error{Kind: ErrServer, Message: MsgUnknown, Err: cause}
}

// MessageOf returns the client-safe message carried by err, or "" when err
// is not a classified *Error.
func MessageOf(err error) string {
	var de *Error
	if errors.As(err, &de) {
		return de.Message
	}
	return ""
}
