package sqlerr

import (
	"context"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gearshed/gearshed/internal/errs"
)

func TestTranslateNil(t *testing.T) {
	assert.NoError(t, Translate(nil))
}

func TestTranslatePassesThroughDomainErrors(t *testing.T) {
	orig := errs.New(errs.NotFound, "equipment with id 7 not found")
	assert.Same(t, orig, Translate(orig))
}

func TestTranslateNoRows(t *testing.T) {
	err := Translate(pgx.ErrNoRows)
	assert.True(t, errs.IsKind(err, errs.NotFound))
}

func TestTranslateUniqueViolationOnName(t *testing.T) {
	err := Translate(&pgconn.PgError{
		Code:           "23505",
		TableName:      "categories",
		ConstraintName: "categories_name_key",
	})

	require.True(t, errs.IsKind(err, errs.DuplicateName))
	assert.Contains(t, err.Error(), "name already exists")
}

func TestTranslateUniqueViolationOnMembershipPair(t *testing.T) {
	err := Translate(&pgconn.PgError{
		Code:           "23505",
		TableName:      "equipment_categories",
		ConstraintName: "equipment_categories_equipment_id_category_id_key",
	})

	assert.True(t, errs.IsKind(err, errs.DuplicateAssociation))
}

func TestTranslateForeignKeyViolation(t *testing.T) {
	err := Translate(&pgconn.PgError{
		Code:           "23503",
		TableName:      "equipment_categories",
		ConstraintName: "equipment_categories_category_id_fkey",
	})

	require.True(t, errs.IsKind(err, errs.DanglingReference))
	assert.Contains(t, err.Error(), "category")
}

func TestTranslateCheckViolation(t *testing.T) {
	err := Translate(&pgconn.PgError{
		Code:           "23514",
		TableName:      "equipment",
		ColumnName:     "weight",
		ConstraintName: "equipment_weight_check",
	})

	require.True(t, errs.IsKind(err, errs.InvalidValue))

	var domainErr *errs.Error
	require.ErrorAs(t, err, &domainErr)
	assert.Equal(t, "equipment_weight_check", domainErr.Constraint)
}

func TestTranslateNotNullViolation(t *testing.T) {
	err := Translate(&pgconn.PgError{
		Code:       "23502",
		TableName:  "equipment",
		ColumnName: "description",
	})

	require.True(t, errs.IsKind(err, errs.InvalidValue))
	assert.Contains(t, err.Error(), "Description")
}

func TestTranslateSyntaxErrorHidesStatement(t *testing.T) {
	err := Translate(&pgconn.PgError{
		Code:    "42601",
		Message: `syntax error at or near "SELCT"`,
	})

	require.True(t, errs.IsKind(err, errs.QueryError))
	assert.NotContains(t, err.Error(), "SELCT")
}

func TestTranslateConnectionClass(t *testing.T) {
	err := Translate(&pgconn.PgError{Code: "08006"})
	assert.True(t, errs.IsKind(err, errs.ConnectionUnavailable))
}

func TestTranslateDeadlineExceeded(t *testing.T) {
	err := Translate(context.DeadlineExceeded)
	assert.True(t, errs.IsKind(err, errs.PoolExhausted))
}

func TestMapCode(t *testing.T) {
	assert.Equal(t, UniqueViolation, MapCode("23505"))
	assert.Equal(t, ForeignKeyViolation, MapCode("23503"))
	assert.Equal(t, NotNullViolation, MapCode("23502"))
	assert.Equal(t, CheckViolation, MapCode("23514"))
	assert.Equal(t, SyntaxOrAccessError, MapCode("42P01"))
	assert.Equal(t, ConnectionFailure, MapCode("08001"))
	assert.Equal(t, Other, MapCode("40001"))
}

func TestColumnForUniqueViolation(t *testing.T) {
	assert.Equal(t, "name", columnForUniqueViolation("categories_name_key"))
	assert.Equal(t, "name", columnForUniqueViolation("unique_categories_name"))
	assert.Equal(t, "", columnForUniqueViolation("some_index"))
}
