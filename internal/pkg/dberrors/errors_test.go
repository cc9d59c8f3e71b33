package dberrors

import (
	"errors"
	"fmt"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
)

func uniqueErr(constraint string) error {
	return &pgconn.PgError{Code: "23505", ConstraintName: constraint}
}

func TestIsUniqueViolation(t *testing.T) {
	t.Parallel()

	assert.True(t, IsUniqueViolation(uniqueErr("student_pkey")))
	assert.True(t, IsUniqueViolation(fmt.Errorf("insert failed: %w", uniqueErr("student_pkey"))))

	assert.False(t, IsUniqueViolation(&pgconn.PgError{Code: "23503"}))
	assert.False(t, IsUniqueViolation(errors.New("duplicate key value violates unique constraint")))
	assert.False(t, IsUniqueViolation(nil))
}

func TestIsUniqueViolationOn(t *testing.T) {
	t.Parallel()

	assert.True(t, IsUniqueViolationOn(uniqueErr("student_pkey"), "student_pkey"))
	assert.False(t, IsUniqueViolationOn(uniqueErr("student_pkey"), "enrollment_pkey"))
	assert.False(t, IsUniqueViolationOn(&pgconn.PgError{Code: "23503", ConstraintName: "student_pkey"}, "student_pkey"))
}
