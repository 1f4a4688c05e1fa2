package errs

import (
	"errors"
	"fmt"
)

// Kind classifies a catalog error. Every error produced below the HTTP
// layer carries exactly one Kind.
type Kind int

const (
	// Other is the zero Kind: an unclassified failure.
	Other Kind = iota

	// InvalidValue marks a constraint, enum, or range violation caught
	// either client-side before a write or by a database CHECK constraint.
	InvalidValue

	// NotFound marks an id-addressed operation that matched no row.
	NotFound

	// DuplicateName marks a uniqueness violation on a natural key
	// (category name).
	DuplicateName

	// DuplicateAssociation marks a uniqueness violation on the
	// (equipment_id, category_id) membership pair. The package service
	// absorbs this internally for its upsert; it only reaches callers
	// from code paths that insert memberships directly.
	DuplicateAssociation

	// DanglingReference marks a foreign-key violation: a membership
	// referencing equipment or a category that does not exist.
	DanglingReference

	// PoolExhausted means no connection became free within the configured
	// connection timeout.
	PoolExhausted

	// ConnectionUnavailable means the backend cannot be reached at all.
	// Fatal until an operator intervenes; not retried indefinitely.
	ConnectionUnavailable

	// QueryError marks a malformed statement. A programming error, never
	// expected in normal operation, and never exposed with raw SQL.
	QueryError
)

// String returns the stable machine-readable name of the Kind. These names
// double as the `code` field of API error responses.
func (k Kind) String() string {
	switch k {
	case InvalidValue:
		return "INVALID_VALUE"
	case NotFound:
		return "NOT_FOUND"
	case DuplicateName:
		return "DUPLICATE_NAME"
	case DuplicateAssociation:
		return "DUPLICATE_ASSOCIATION"
	case DanglingReference:
		return "DANGLING_REFERENCE"
	case PoolExhausted:
		return "POOL_EXHAUSTED"
	case ConnectionUnavailable:
		return "CONNECTION_UNAVAILABLE"
	case QueryError:
		return "QUERY_ERROR"
	default:
		return "ERROR"
	}
}

// Error is the domain error type for the catalog.
//
// Constraint carries the violated database constraint name when one is
// known (check violations name it per the execution-helper contract).
type Error struct {
	Kind       Kind
	Message    string
	Constraint string

	err error
}

func (e *Error) Error() string {
	if e.Constraint != "" {
		return fmt.Sprintf("%s (constraint %s)", e.Message, e.Constraint)
	}
	return e.Message
}

// Unwrap exposes the underlying driver error for logging. The global error
// handler never serializes it to clients.
func (e *Error) Unwrap() error {
	return e.err
}

// Is lets errors.Is match on Kind:
//
//	errors.Is(err, &errs.Error{Kind: errs.NotFound})
//
// A target with Kind Other matches any *Error.
func (e *Error) Is(target error) bool {
	var t *Error
	if !errors.As(target, &t) {
		return false
	}
	return t.Kind == Other || t.Kind == e.Kind
}

// New builds a domain error with the given kind and message.
func New(kind Kind, message string) *Error {
	return &Error{Kind: kind, Message: message}
}

// Newf builds a domain error with a formatted message.
func Newf(kind Kind, format string, args ...any) *Error {
	return &Error{Kind: kind, Message: fmt.Sprintf(format, args...)}
}

// Wrap builds a domain error that retains the underlying cause.
func Wrap(kind Kind, message string, err error) *Error {
	return &Error{Kind: kind, Message: message, err: err}
}

// WithConstraint returns a copy naming the violated constraint.
func (e *Error) WithConstraint(name string) *Error {
	clone := *e
	clone.Constraint = name
	return &clone
}

// KindOf reports the Kind of err, or Other when err is not a domain error.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return Other
}

// IsKind reports whether err carries the given Kind.
func IsKind(err error, kind Kind) bool {
	return KindOf(err) == kind
}
