package errorutil

import (
	"database/sql"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Postgres SQLSTATE codes surfaced to clients.
const (
	pgForeignKeyViolation = "23503"
	pgUniqueViolation     = "23505"
	pgNotNullViolation    = "23502"
	pgCheckViolation      = "23514"
	pgNumericOutOfRange   = "22003"
	pgStringTooLong       = "22001"
)

// DomainError standardizes application errors.
type DomainError struct {
	Code       string
	Message    string
	HTTPStatus int
	Details    map[string]any
	Err        error
}

func (e *DomainError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *DomainError) Unwrap() error {
	return e.Err
}

// NewDomainError constructs a DomainError.
func NewDomainError(code, message string, status int, details map[string]any) *DomainError {
	return &DomainError{Code: code, Message: message, HTTPStatus: status, Details: details}
}

func NewValidationError(message string, details map[string]any) error {
	return NewDomainError("VALIDATION_FAILED", message, http.StatusBadRequest, details)
}

func NewNotFound(resource string, details map[string]any) error {
	if details == nil {
		details = map[string]any{}
	}
	return &DomainError{
		Code:       "NOT_FOUND",
		Message:    fmt.Sprintf("%s not found", resource),
		HTTPStatus: http.StatusNotFound,
		Details:    details,
	}
}

func NewConflict(message string, details map[string]any) error {
	return NewDomainError("CONFLICT", message, http.StatusConflict, details)
}

// NewInvalidReference reports a link to a record that does not exist.
func NewInvalidReference(entity string, details map[string]any) error {
	return NewDomainError("INVALID_REFERENCE",
		fmt.Sprintf("The referenced %s does not exist", entity), http.StatusBadRequest, details)
}

func NewInternalError(err error) error {
	return &DomainError{
		Code:       "INTERNAL_ERROR",
		Message:    "internal server error",
		HTTPStatus: http.StatusInternalServerError,
		Err:        err,
	}
}

// IsNotFound reports whether err means the row does not exist.
func IsNotFound(err error) bool {
	if errors.Is(err, pgx.ErrNoRows) || errors.Is(err, sql.ErrNoRows) {
		return true
	}
	var domainErr *DomainError
	return errors.As(err, &domainErr) && domainErr.Code == "NOT_FOUND"
}

// ToDomainError converts generic errors to DomainError.
func ToDomainError(err error) *DomainError {
	if err == nil {
		return nil
	}
	var domainErr *DomainError
	if errors.As(err, &domainErr) {
		return domainErr
	}
	if errors.Is(err, pgx.ErrNoRows) || errors.Is(err, sql.ErrNoRows) {
		return NewNotFound("resource", nil).(*DomainError)
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		if mapped := fromPgError(pgErr); mapped != nil {
			return mapped
		}
	}
	return NewInternalError(err).(*DomainError)
}

// MapError converts err into a *DomainError, leaving nil untouched.
func MapError(err error) error {
	if err == nil {
		return nil
	}
	return ToDomainError(err)
}

// MapNotFound maps a missing row to a NOT_FOUND error naming the resource.
func MapNotFound(err error, resource, id string) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, pgx.ErrNoRows) || errors.Is(err, sql.ErrNoRows) {
		return NewNotFound(resource, map[string]any{"id": id})
	}
	return MapError(err)
}

func fromPgError(pgErr *pgconn.PgError) *DomainError {
	details := map[string]any{}
	if pgErr.ConstraintName != "" {
		details["constraint"] = pgErr.ConstraintName
	}
	entity := entityName(pgErr.TableName, pgErr.ColumnName, pgErr.Detail)

	switch pgErr.Code {
	case pgForeignKeyViolation:
		return NewInvalidReference(entity, details).(*DomainError)
	case pgUniqueViolation:
		if column := uniqueColumn(pgErr.ConstraintName, pgErr.TableName); column != "" {
			details["field"] = column
			return NewDomainError("CONFLICT",
				fmt.Sprintf("A %s with this %s already exists", entity, humanize(column)), http.StatusConflict, details)
		}
		return NewDomainError("CONFLICT",
			fmt.Sprintf("A %s with this identifier already exists", entity), http.StatusConflict, details)
	case pgNotNullViolation:
		field := humanize(pgErr.ColumnName)
		if field == "" {
			field = "field"
		}
		return NewDomainError("VALIDATION_FAILED",
			fmt.Sprintf("The %s is required", field), http.StatusBadRequest, details)
	case pgCheckViolation:
		return NewDomainError("VALIDATION_FAILED",
			"One or more values do not meet required conditions", http.StatusBadRequest, details)
	case pgNumericOutOfRange:
		return NewDomainError("VALIDATION_FAILED",
			"A numeric value is out of range", http.StatusBadRequest, details)
	case pgStringTooLong:
		return NewDomainError("VALIDATION_FAILED",
			"A value is too long for its field", http.StatusBadRequest, details)
	}
	return nil
}

// entityName prefers the referenced column ("user_id" -> "User"), then the table name.
// Foreign key errors name the referencing column inside Detail: Key (user_id)=(...) ...
func entityName(table, column, detail string) string {
	if column == "" && strings.HasPrefix(detail, "Key (") {
		if end := strings.Index(detail, ")"); end > len("Key (") {
			column = detail[len("Key ("):end]
		}
	}
	if strings.HasSuffix(strings.ToLower(column), "_id") {
		return humanize(strings.TrimSuffix(strings.ToLower(column), "_id"))
	}
	if table != "" {
		entity := table
		if strings.HasSuffix(entity, "s") && len(entity) > 1 {
			entity = entity[:len(entity)-1]
		}
		return humanize(entity)
	}
	return "record"
}

// uniqueColumn extracts the column from "<table>_<column>_key" constraint names.
func uniqueColumn(constraint, table string) string {
	if constraint == "" || table == "" {
		return ""
	}
	name := strings.TrimPrefix(constraint, table+"_")
	if name == constraint {
		return ""
	}
	return strings.TrimSuffix(name, "_key")
}

func humanize(text string) string {
	if text == "" {
		return ""
	}
	return cases.Title(language.English).String(strings.ReplaceAll(text, "_", " "))
}
