package repositories

import (
	"fmt"

	"github.com/lexluc/lexluc-platform/internal/core/domain"
	"github.com/lexluc/lexluc-platform/internal/infrastructure/db"
)

// paginate appends LIMIT/OFFSET placeholders when the caller asked for a page.
func paginate(query string, params domain.ListParams, args ...any) (string, []any) {
	if !params.Paginated() {
		return query, args
	}
	limit, offset := params.Window()
	n := len(args)
	query += fmt.Sprintf(" LIMIT $%d OFFSET $%d", n+1, n+2)
	return query, append(args, limit, offset)
}

func notFound(entity string, key any) error {
	return domain.Errorf(domain.ErrNotFound, "%s %v not found", entity, key)
}

// writeError maps constraint violations onto domain errors.
func writeError(op string, err error) error {
	switch {
	case db.IsUniqueViolation(err):
		return domain.Errorf(domain.ErrConflict, "%s: a record with the same unique field already exists", op)
	case db.IsForeignKeyViolation(err):
		return domain.Errorf(domain.ErrInvalidInput, "%s: referenced record does not exist", op)
	default:
		return fmt.Errorf("failed to %s: %w", op, err)
	}
}
