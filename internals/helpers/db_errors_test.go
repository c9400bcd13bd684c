package helper

import (
	"errors"
	"fmt"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
)

func TestIsUniqueViolation(t *testing.T) {
	pgxErr := &pgconn.PgError{
		Code:    "23505",
		Message: "duplicate key value violates unique constraint \"idx_attendees_attendee_cpf\"",
	}
	assert.True(t, IsUniqueViolation(pgxErr))
	assert.True(t, IsUniqueViolation(fmt.Errorf("insert attendee: %w", pgxErr)), "erro embrulhado também classifica")

	assert.True(t, IsUniqueViolation(&pq.Error{Code: "23505"}))

	// driver de teste (sqlite)
	assert.True(t, IsUniqueViolation(errors.New("UNIQUE constraint failed: attendees.attendee_cpf")))

	assert.False(t, IsUniqueViolation(nil))
	assert.False(t, IsUniqueViolation(&pgconn.PgError{Code: "23503", Message: "foreign key violation"}))
	assert.False(t, IsUniqueViolation(errors.New("connection refused")))
}
