package helper

import (
	"errors"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/lib/pq"
)

// IsUniqueViolation reconhece violação de constraint única vinda do banco.
// A checagem de CPF duplicado é feita por SELECT antes do INSERT, mas duas
// inscrições simultâneas ainda podem passar pela checagem e colidir na
// constraint; este helper classifica esse segundo caminho.
func IsUniqueViolation(err error) bool {
	if err == nil {
		return false
	}
	// driver de produção (gorm.io/driver/postgres usa pgx por baixo)
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == "23505"
	}
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return pqErr.Code == "23505"
	}
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "duplicate key") ||
		strings.Contains(msg, "unique constraint") ||
		strings.Contains(msg, "23505")
}
