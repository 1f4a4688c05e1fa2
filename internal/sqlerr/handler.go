package sqlerr

import (
	"context"
	"errors"
	"regexp"
	"strings"

	"github.com/gearshed/gearshed/internal/errs"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Translate converts a low-level database error into a catalog domain
// error. It is called by the execution helper after every failed statement,
// so repositories only ever see errs.Error values.
//
// Mapping:
//   - already a *errs.Error: returned unchanged
//   - pgx.ErrNoRows: errs.NotFound
//   - unique violation: errs.DuplicateAssociation for the membership pair
//     constraint, errs.DuplicateName otherwise
//   - foreign key violation: errs.DanglingReference naming the missing entity
//   - check / not-null violation: errs.InvalidValue naming the constraint
//   - syntax/access SQLSTATE class: errs.QueryError (message sanitized)
//   - connection SQLSTATE class or transport failure: errs.ConnectionUnavailable
//   - context deadline: errs.PoolExhausted (the only deadline crossing this
//     boundary is the acquire/statement timeout)
func Translate(err error) error {
	if err == nil {
		return nil
	}

	var domainErr *errs.Error
	if errors.As(err, &domainErr) {
		return err
	}

	if errors.Is(err, pgx.ErrNoRows) {
		return errs.Wrap(errs.NotFound, "record not found", err)
	}

	var pgerr *pgconn.PgError
	if errors.As(err, &pgerr) {
		return translatePgError(ConvertPgError(pgerr))
	}

	if errors.Is(err, context.DeadlineExceeded) {
		return errs.Wrap(errs.PoolExhausted, "no database connection became available within the configured timeout", err)
	}

	var connectErr *pgconn.ConnectError
	if errors.As(err, &connectErr) {
		return errs.Wrap(errs.ConnectionUnavailable, "database is unreachable", err)
	}

	return errs.Wrap(errs.Other, "database operation failed", err)
}

func translatePgError(sqlErr *Error) error {
	switch sqlErr.Code {
	case UniqueViolation:
		if isAssociationConstraint(sqlErr.ConstraintName) {
			return errs.Wrap(errs.DuplicateAssociation,
				"this equipment is already part of the package", sqlErr).
				WithConstraint(sqlErr.ConstraintName)
		}
		return errs.Wrap(errs.DuplicateName,
			duplicateMessage(sqlErr), sqlErr).
			WithConstraint(sqlErr.ConstraintName)

	case ForeignKeyViolation:
		entity := entityName(sqlErr.TableName, fkColumn(sqlErr))
		return errs.Wrap(errs.DanglingReference,
			"the referenced "+entity+" does not exist", sqlErr).
			WithConstraint(sqlErr.ConstraintName)

	case CheckViolation:
		return errs.Wrap(errs.InvalidValue,
			checkMessage(sqlErr), sqlErr).
			WithConstraint(sqlErr.ConstraintName)

	case NotNullViolation:
		field := humanizeText(sqlErr.ColumnName)
		if field == "" {
			field = "field"
		}
		return errs.Wrap(errs.InvalidValue, "the "+field+" is required", sqlErr)

	case SyntaxOrAccessError:
		// Never propagate statement text; the driver error stays wrapped
		// for logs only.
		return errs.Wrap(errs.QueryError, "internal query error", sqlErr)

	case ConnectionFailure:
		return errs.Wrap(errs.ConnectionUnavailable, "database is unreachable", sqlErr)

	default:
		return errs.Wrap(errs.Other, "database operation failed", sqlErr)
	}
}

// isAssociationConstraint reports whether a unique constraint belongs to
// the equipment_categories junction pair.
func isAssociationConstraint(constraintName string) bool {
	return strings.Contains(constraintName, "equipment_categories")
}

func duplicateMessage(sqlErr *Error) string {
	entity := entityName(sqlErr.TableName, sqlErr.ColumnName)
	if column := columnForUniqueViolation(sqlErr.ConstraintName); column != "" {
		return "a " + entity + " with this " + strings.ReplaceAll(column, "_", " ") + " already exists"
	}
	return "a " + entity + " with this identifier already exists"
}

func checkMessage(sqlErr *Error) string {
	if field := humanizeText(sqlErr.ColumnName); field != "" {
		return "the " + field + " value does not meet required conditions"
	}
	return "one or more values do not meet required conditions"
}

// entityName infers an entity name for messages. A column like
// "equipment_id" names the entity directly; otherwise fall back to the
// singularized table name.
func entityName(tableName, columnName string) string {
	if columnName != "" && strings.HasSuffix(strings.ToLower(columnName), "_id") {
		return strings.TrimSuffix(strings.ToLower(columnName), "_id")
	}
	if tableName != "" {
		entity := tableName
		switch {
		case strings.HasSuffix(entity, "ies"):
			entity = strings.TrimSuffix(entity, "ies") + "y"
		case strings.HasSuffix(entity, "s") && len(entity) > 1:
			entity = entity[:len(entity)-1]
		}
		return entity
	}
	return "record"
}

// fkConstraintRe matches the "<table>_<column>_fkey" convention Postgres
// uses for named foreign key constraints.
var fkConstraintRe = regexp.MustCompile(`_([^_]+_id)_fkey$`)

// fkColumn returns the referencing column of a foreign key violation.
// Postgres leaves the column detail empty on FK errors, so it is inferred
// from the constraint name when needed.
func fkColumn(sqlErr *Error) string {
	if sqlErr.ColumnName != "" {
		return sqlErr.ColumnName
	}
	if matches := fkConstraintRe.FindStringSubmatch(sqlErr.ConstraintName); len(matches) > 1 {
		return matches[1]
	}
	return ""
}

// humanizeText converts snake_case identifiers into Title Case,
// e.g. "rental_price_per_day" -> "Rental Price Per Day".
func humanizeText(text string) string {
	if text == "" {
		return ""
	}
	return cases.Title(language.English).String(strings.ReplaceAll(text, "_", " "))
}

// uniqueConstraintRe matches the "<table>_<column>_key" convention Postgres
// uses for named unique constraints.
var uniqueConstraintRe = regexp.MustCompile(`_([^_]+)_(?:key|ukey)$`)

// columnForUniqueViolation infers the column name from a unique constraint
// name. Supports "unique_<table>_<column>" and "<table>_<column>_key".
func columnForUniqueViolation(constraintName string) string {
	if constraintName == "" {
		return ""
	}
	if strings.HasPrefix(constraintName, "unique_") {
		parts := strings.Split(constraintName, "_")
		if len(parts) >= 3 {
			return parts[len(parts)-1]
		}
	}
	if matches := uniqueConstraintRe.FindStringSubmatch(constraintName); len(matches) > 1 {
		return matches[1]
	}
	return ""
}
