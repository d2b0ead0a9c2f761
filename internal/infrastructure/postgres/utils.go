package postgres

import (
	"errors"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"

	"github.com/jhoicas/Portal-empleo-api/internal/domain"
)

// isUniqueViolation verifica si un error es una violación de constraint único (23505).
func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == "23505" // unique_violation
	}
	return strings.Contains(err.Error(), "23505")
}

// translateUnique convierte una violación de unicidad en DuplicateError nombrando el
// campo ofensor; cualquier otro error pasa sin tocar.
func translateUnique(err error, field string) error {
	if err == nil {
		return nil
	}
	if isUniqueViolation(err) {
		return &domain.DuplicateError{Field: field}
	}
	return err
}
