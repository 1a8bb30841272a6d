package dispatch

import (
	"errors"
	"fmt"
)

// Kind classifies a dispatch failure.
type Kind int

const (
	InvalidArguments Kind = iota + 1
	InternalError
	MethodNotFound
)

func (k Kind) String() string {
	switch k {
	case InvalidArguments:
		return "invalid arguments"
	case InternalError:
		return "internal error"
	case MethodNotFound:
		return "method not found"
	default:
		return "unknown"
	}
}

// Error is the failure returned by the dispatcher. Err holds the underlying
// cause, if any.
type Error struct {
	Kind    Kind
	Message string
	Err     error
}

func (e *Error) Error() string { return e.Message }

func (e *Error) Unwrap() error { return e.Err }

func invalidArguments(format string, args ...any) *Error {
	return &Error{Kind: InvalidArguments, Message: fmt.Sprintf(format, args...)}
}

func methodNotFound(format string, args ...any) *Error {
	return &Error{Kind: MethodNotFound, Message: fmt.Sprintf(format, args...)}
}

func internalError(what string, err error) *Error {
	return &Error{Kind: InternalError, Message: fmt.Sprintf("%s: %v", what, err), Err: err}
}

// KindOf returns the Kind of a dispatch error, or InternalError for any
// other non-nil error.
func KindOf(err error) Kind {
	if err == nil {
		return 0
	}
	var de *Error
	if errors.As(err, &de) {
		return de.Kind
	}
	return InternalError
}
