package errorutil_test

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "github.com/spec-kit/hr-service/pkg/util/errorutil"
)

func TestToDomainError_NoRows(t *testing.T) {
	t.Parallel()

	de := apperrors.ToDomainError(fmt.Errorf("get user: %w", pgx.ErrNoRows))
	assert.Equal(t, "NOT_FOUND", de.Code)
	assert.Equal(t, http.StatusNotFound, de.HTTPStatus)
	assert.True(t, apperrors.IsNotFound(pgx.ErrNoRows))
}

func TestToDomainError_PassThrough(t *testing.T) {
	t.Parallel()

	original := apperrors.NewConflict("duplicate", nil)
	de := apperrors.ToDomainError(fmt.Errorf("wrapped: %w", original))
	assert.Same(t, original, error(de))
}

func TestToDomainError_Internal(t *testing.T) {
	t.Parallel()

	de := apperrors.ToDomainError(errors.New("boom"))
	assert.Equal(t, "INTERNAL_ERROR", de.Code)
	assert.Equal(t, http.StatusInternalServerError, de.HTTPStatus)
	assert.Nil(t, apperrors.MapError(nil))
}

func TestToDomainError_PgErrors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		pgErr   *pgconn.PgError
		code    string
		status  int
		message string
	}{
		{
			name: "foreign key",
			pgErr: &pgconn.PgError{
				Code:           "23503",
				TableName:      "employees",
				ConstraintName: "employees_user_id_fkey",
				Detail:         `Key (user_id)=(8f0f) is not present in table "users".`,
			},
			code:    "INVALID_REFERENCE",
			status:  http.StatusBadRequest,
			message: "The referenced User does not exist",
		},
		{
			name:    "unique with column",
			pgErr:   &pgconn.PgError{Code: "23505", TableName: "users", ConstraintName: "users_email_key"},
			code:    "CONFLICT",
			status:  http.StatusConflict,
			message: "A User with this Email already exists",
		},
		{
			name:    "unique without column",
			pgErr:   &pgconn.PgError{Code: "23505", TableName: "employees", ConstraintName: "uniq_x"},
			code:    "CONFLICT",
			status:  http.StatusConflict,
			message: "A Employee with this identifier already exists",
		},
		{
			name:    "not null",
			pgErr:   &pgconn.PgError{Code: "23502", TableName: "payrolls", ColumnName: "start_date"},
			code:    "VALIDATION_FAILED",
			status:  http.StatusBadRequest,
			message: "The Start Date is required",
		},
		{
			name:    "check",
			pgErr:   &pgconn.PgError{Code: "23514", TableName: "payrolls"},
			code:    "VALIDATION_FAILED",
			status:  http.StatusBadRequest,
			message: "One or more values do not meet required conditions",
		},
		{
			name:    "numeric overflow",
			pgErr:   &pgconn.PgError{Code: "22003", Message: "numeric field overflow"},
			code:    "VALIDATION_FAILED",
			status:  http.StatusBadRequest,
			message: "A numeric value is out of range",
		},
		{
			name:    "string too long",
			pgErr:   &pgconn.PgError{Code: "22001", Message: "value too long for type character varying(15)"},
			code:    "VALIDATION_FAILED",
			status:  http.StatusBadRequest,
			message: "A value is too long for its field",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			de := apperrors.ToDomainError(fmt.Errorf("create: %w", tc.pgErr))
			require.NotNil(t, de)
			assert.Equal(t, tc.code, de.Code)
			assert.Equal(t, tc.status, de.HTTPStatus)
			assert.Equal(t, tc.message, de.Message)
		})
	}
}

func TestMapNotFound(t *testing.T) {
	t.Parallel()

	err := apperrors.MapNotFound(pgx.ErrNoRows, "employee", "abc")
	de := apperrors.ToDomainError(err)
	assert.Equal(t, "employee not found", de.Message)
	assert.Equal(t, "abc", de.Details["id"])

	assert.NoError(t, apperrors.MapNotFound(nil, "employee", "abc"))
}
