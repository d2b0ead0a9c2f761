package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/jhoicas/Portal-empleo-api/internal/domain/entity"
)

// approvableSQL operaciones de aprobación comunes a toda tabla aprobable.
// Las transiciones son sentencias condicionales únicas sobre pending_approval = TRUE:
// el resultado (filas afectadas) es la única fuente de verdad, sin read-then-write.
type approvableSQL struct {
	pool  *pgxpool.Pool
	table string
	kind  entity.RecordKind
	// createdByExpr expresión SQL del creador; los registros usan created_by y los
	// usuarios managed_by (su creador/supervisor).
	createdByExpr string
}

// Exists indica si el registro existe, en cualquier estado.
func (a approvableSQL) Exists(ctx context.Context, id string) (bool, error) {
	var exists bool
	query := `SELECT EXISTS (SELECT 1 FROM ` + a.table + ` WHERE id = $1)`
	if err := a.pool.QueryRow(ctx, query, id).Scan(&exists); err != nil {
		return false, fmt.Errorf("exists %s: %w", a.table, err)
	}
	return exists, nil
}

// ApproveIfPending marca aprobado solo si el registro sigue pendiente.
func (a approvableSQL) ApproveIfPending(ctx context.Context, id, approverID string, at time.Time) (bool, error) {
	query := `
		UPDATE ` + a.table + `
		SET is_approved = TRUE, pending_approval = FALSE, approved_by = $2, approved_at = $3, updated_at = $3
		WHERE id = $1 AND pending_approval = TRUE`
	tag, err := a.pool.Exec(ctx, query, id, approverID, at)
	if err != nil {
		return false, fmt.Errorf("approve %s: %w", a.table, err)
	}
	return tag.RowsAffected() == 1, nil
}

// DeleteIfPending elimina el registro solo si sigue pendiente (rechazo = borrado duro).
func (a approvableSQL) DeleteIfPending(ctx context.Context, id string) (bool, error) {
	query := `DELETE FROM ` + a.table + ` WHERE id = $1 AND pending_approval = TRUE`
	tag, err := a.pool.Exec(ctx, query, id)
	if err != nil {
		return false, fmt.Errorf("reject %s: %w", a.table, err)
	}
	return tag.RowsAffected() == 1, nil
}

// ListPending lista pendientes, más recientes primero.
func (a approvableSQL) ListPending(ctx context.Context, limit, offset int) ([]entity.PendingRecord, error) {
	createdBy := a.createdByExpr
	if createdBy == "" {
		createdBy = "created_by"
	}
	query := `
		SELECT id, name, ` + createdBy + `, created_at FROM ` + a.table + `
		WHERE pending_approval = TRUE ORDER BY created_at DESC LIMIT $1 OFFSET $2`
	rows, err := a.pool.Query(ctx, query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list pending %s: %w", a.table, err)
	}
	defer rows.Close()
	var list []entity.PendingRecord
	for rows.Next() {
		p := entity.PendingRecord{Kind: a.kind}
		if err := rows.Scan(&p.ID, &p.Name, &p.CreatedBy, &p.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan pending %s: %w", a.table, err)
		}
		list = append(list, p)
	}
	return list, rows.Err()
}

// scopeClause arma el predicado de visibilidad y sus argumentos a partir del scope.
// ownerCol es la columna de dueño (created_by en registros, id en usuarios).
func scopeClause(ownerCol string, all bool, actorID string, argPos int) (string, []any) {
	if all {
		return "TRUE", nil
	}
	return fmt.Sprintf("(%s = $%d OR managed_by = $%d)", ownerCol, argPos, argPos), []any{actorID}
}
