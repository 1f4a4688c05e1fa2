// Package sqlerr translates database driver errors into the catalog's
// domain taxonomy.
//
// It parses SQLSTATE codes from pgx/pgconn and converts them into
// errs.Error values (unique violation on a name -> DuplicateName, foreign
// key violation -> DanglingReference, and so on), so the repositories above
// never inspect driver errors and raw SQL never leaks to callers.
package sqlerr

import (
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
)

// Code classifies a Postgres SQLSTATE into the handful of categories the
// catalog cares about.
type Code int

const (
	Other Code = iota
	UniqueViolation
	ForeignKeyViolation
	NotNullViolation
	CheckViolation
	SyntaxOrAccessError
	ConnectionFailure
)

// SQLSTATE values. Class 42 (syntax/access) and class 08 (connection) are
// matched by prefix in MapCode.
const (
	uniqueViolationCode     = "23505"
	foreignKeyViolationCode = "23503"
	notNullViolationCode    = "23502"
	checkViolationCode      = "23514"
)

// MapCode maps a raw SQLSTATE to a Code.
func MapCode(sqlstate string) Code {
	switch sqlstate {
	case uniqueViolationCode:
		return UniqueViolation
	case foreignKeyViolationCode:
		return ForeignKeyViolation
	case notNullViolationCode:
		return NotNullViolation
	case checkViolationCode:
		return CheckViolation
	}
	if len(sqlstate) >= 2 {
		switch sqlstate[:2] {
		case "42":
			return SyntaxOrAccessError
		case "08":
			return ConnectionFailure
		}
	}
	return Other
}

// Error is the structured form of a Postgres server error. It keeps the
// original SQLSTATE plus the schema metadata needed to phrase messages and
// name violated constraints.
type Error struct {
	Code           Code
	DatabaseCode   string
	Message        string
	SchemaName     string
	TableName      string
	ColumnName     string
	ConstraintName string

	driverErr error
}

func (e *Error) Error() string {
	return e.Message
}

// Unwrap exposes the original *pgconn.PgError.
func (e *Error) Unwrap() error {
	return e.driverErr
}

// ConvertPgError converts a raw pgconn.PgError into a sqlerr.Error.
func ConvertPgError(src *pgconn.PgError) *Error {
	return &Error{
		Code:           MapCode(src.Code),
		DatabaseCode:   src.Code,
		Message:        src.Message,
		SchemaName:     src.SchemaName,
		TableName:      src.TableName,
		ColumnName:     src.ColumnName,
		ConstraintName: src.ConstraintName,
		driverErr:      src,
	}
}

// ErrCode reports the mapped Code for err, or Other when err does not wrap
// a sqlerr.Error.
func ErrCode(err error) Code {
	var pgerr *Error
	if errors.As(err, &pgerr) {
		return pgerr.Code
	}
	return Other
}
