package repository

import (
	"context"
	"time"

	"github.com/jhoicas/Portal-empleo-api/internal/domain/entity"
)

// ApprovableStore puerto mínimo que la máquina de aprobación necesita por kind.
// Las mutaciones son actualizaciones condicionales (compare-and-swap sobre
// pending_approval) y devuelven si tocaron exactamente una fila: dos aprobadores
// compitiendo por el mismo registro nunca tienen éxito ambos.
type ApprovableStore interface {
	// Exists indica si el registro existe, en cualquier estado.
	Exists(ctx context.Context, id string) (bool, error)
	// ApproveIfPending marca aprobado solo si pending_approval es true.
	ApproveIfPending(ctx context.Context, id, approverID string, at time.Time) (bool, error)
	// DeleteIfPending elimina el registro solo si pending_approval es true (rechazo).
	DeleteIfPending(ctx context.Context, id string) (bool, error)
	// ListPending lista los registros pendientes, más recientes primero.
	ListPending(ctx context.Context, limit, offset int) ([]entity.PendingRecord, error)
}

// VisibilityScope limita listados según el grafo de propiedad: los actores no-admin
// solo ven registros que crearon o que supervisan.
type VisibilityScope struct {
	ActorID string
	All     bool // admin+: sin restricción
}

// ScopeAll alcance sin restricción (admin o superior).
func ScopeAll() VisibilityScope {
	return VisibilityScope{All: true}
}

// ScopeOwnedBy alcance restringido al actor (dueño o supervisor).
func ScopeOwnedBy(actorID string) VisibilityScope {
	return VisibilityScope{ActorID: actorID}
}
