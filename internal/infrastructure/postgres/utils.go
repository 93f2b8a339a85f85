package postgres

import (
	"errors"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"
)

// isUniqueViolation verifica si un error es una violación de constraint único (23505).
func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == "23505" // unique_violation
	}
	return strings.Contains(err.Error(), "23505")
}

// sortDir traduce el booleano de dirección a SQL. Nunca interpola entrada del
// usuario: solo estas dos constantes llegan al ORDER BY.
func sortDir(asc bool) string {
	if asc {
		return "ASC"
	}
	return "DESC"
}
