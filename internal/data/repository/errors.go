package repository

import (
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"
)

// ConflictError reports which uniqueness constraint a write violated, so
// callers can tell a duplicate user ID from a duplicate email without
// matching on error text.
type ConflictError struct {
	Field string // "id" or "email"
}

func (e *ConflictError) Error() string {
	return fmt.Sprintf("%s already exists", e.Field)
}

const uniqueViolationCode = "23505"

// classifyUniqueViolation maps a postgres unique-violation error to a
// ConflictError, or returns nil when err is something else. The email
// constraint is matched by name; the only other unique constraint on
// student_staff is the user_id primary key.
func classifyUniqueViolation(err error) *ConflictError {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) || pgErr.Code != uniqueViolationCode {
		return nil
	}

	if strings.Contains(pgErr.ConstraintName, "email") {
		return &ConflictError{Field: "email"}
	}
	return &ConflictError{Field: "id"}
}
