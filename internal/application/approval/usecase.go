// Package approval implementa la máquina de estados de aprobación común a todos los
// registros aprobables. Estados: auto-aprobado (terminal, directo), pendiente
// (inicial para creadores bajo el umbral), aprobado (terminal) y rechazado
// (terminal, modelado como borrado). Un registro que sale de pendiente no vuelve.
package approval

import (
	"context"
	"time"

	"github.com/jhoicas/Portal-empleo-api/internal/domain"
	"github.com/jhoicas/Portal-empleo-api/internal/domain/authz"
	"github.com/jhoicas/Portal-empleo-api/internal/domain/entity"
	"github.com/jhoicas/Portal-empleo-api/internal/domain/repository"
	"github.com/jhoicas/Portal-empleo-api/pkg/logger"
)

// Dispatcher contrato mínimo hacia el despachador de notificaciones.
type Dispatcher interface {
	NotifyPendingApproval(ctx context.Context, kind entity.RecordKind, entityID, entityName string, submitter *entity.User) error
}

// kindOrder orden fijo para el listado de pendientes.
var kindOrder = []entity.RecordKind{
	entity.KindEmpresa,
	entity.KindAgente,
	entity.KindBolsa,
	entity.KindReporter,
	entity.KindUsuario,
}

// UseCase máquina de aprobación sobre un registro de stores por kind.
type UseCase struct {
	stores     map[entity.RecordKind]repository.ApprovableStore
	dispatcher Dispatcher
	log        *logger.Logger
}

// New construye la máquina; los stores se registran con Register.
func New(dispatcher Dispatcher, log *logger.Logger) *UseCase {
	return &UseCase{
		stores:     make(map[entity.RecordKind]repository.ApprovableStore),
		dispatcher: dispatcher,
		log:        log,
	}
}

// Register asocia el store de persistencia de un kind.
func (uc *UseCase) Register(kind entity.RecordKind, store repository.ApprovableStore) {
	uc.stores[kind] = store
}

// InitialState decide el estado inicial según el rango del creador: admin o superior
// crea auto-aprobado; cualquier rango menor crea pendiente.
func (uc *UseCase) InitialState(creator *entity.User) entity.Approval {
	if creator.Role.AtLeast(entity.RoleAdmin) {
		return entity.AutoApproved()
	}
	return entity.PendingInitial()
}

// NotifySubmitted dispara el aviso a los aprobadores tras persistir un registro
// pendiente. Fan-out best-effort: el fallo se loguea y nunca se propaga al creador;
// el registro pendiente y su notificación pueden quedar inconsistentes ante fallo parcial.
func (uc *UseCase) NotifySubmitted(ctx context.Context, creator *entity.User, kind entity.RecordKind, entityID, entityName string) {
	if err := uc.dispatcher.NotifyPendingApproval(ctx, kind, entityID, entityName, creator); err != nil {
		uc.log.Error().Err(err).
			Str("kind", string(kind)).
			Str("entity_id", entityID).
			Msg("fallo al notificar registro pendiente")
	}
}

// Approve transición pendiente -> aprobado. Actualización condicional única sobre
// pending_approval=true: si no toca filas, el registro ya salió de pendiente
// (ErrInvalidTransition) o no existe (ErrNotFound).
func (uc *UseCase) Approve(ctx context.Context, approver *entity.User, kind entity.RecordKind, id string) error {
	store, err := uc.storeFor(kind)
	if err != nil {
		return err
	}
	if d := authz.CanApproveOrReject(approver); !d.Allowed {
		return domain.Denied(d.Reason)
	}
	ok, err := store.ApproveIfPending(ctx, id, approver.ID, time.Now())
	if err != nil {
		return domain.Upstream(err)
	}
	if !ok {
		return uc.transitionFailure(ctx, store, id)
	}
	uc.log.Info().Str("kind", string(kind)).Str("id", id).Str("approver", approver.ID).Msg("registro aprobado")
	return nil
}

// Reject transición pendiente -> rechazado. El rechazo elimina el registro de forma
// permanente (borrado condicional sobre pending_approval=true); no queda rastro más
// allá de la notificación ya persistida.
func (uc *UseCase) Reject(ctx context.Context, approver *entity.User, kind entity.RecordKind, id, reason string) error {
	store, err := uc.storeFor(kind)
	if err != nil {
		return err
	}
	if d := authz.CanApproveOrReject(approver); !d.Allowed {
		return domain.Denied(d.Reason)
	}
	ok, err := store.DeleteIfPending(ctx, id)
	if err != nil {
		return domain.Upstream(err)
	}
	if !ok {
		return uc.transitionFailure(ctx, store, id)
	}
	uc.log.Info().Str("kind", string(kind)).Str("id", id).
		Str("approver", approver.ID).Str("reason", reason).Msg("registro rechazado y eliminado")
	return nil
}

// ListPending lista todos los registros pendientes, por kind en orden fijo.
// Restringido a aprobadores.
func (uc *UseCase) ListPending(ctx context.Context, actor *entity.User, limit, offset int) ([]entity.PendingRecord, error) {
	if d := authz.CanApproveOrReject(actor); !d.Allowed {
		return nil, domain.Denied(d.Reason)
	}
	var all []entity.PendingRecord
	for _, kind := range kindOrder {
		store, ok := uc.stores[kind]
		if !ok {
			continue
		}
		list, err := store.ListPending(ctx, limit, offset)
		if err != nil {
			return nil, domain.Upstream(err)
		}
		all = append(all, list...)
	}
	return all, nil
}

func (uc *UseCase) storeFor(kind entity.RecordKind) (repository.ApprovableStore, error) {
	store, ok := uc.stores[kind]
	if !ok {
		return nil, domain.Invalid("kind", "tipo de registro desconocido: "+string(kind))
	}
	return store, nil
}

// transitionFailure distingue registro inexistente de transición inválida cuando la
// actualización condicional no tocó filas.
func (uc *UseCase) transitionFailure(ctx context.Context, store repository.ApprovableStore, id string) error {
	exists, err := store.Exists(ctx, id)
	if err != nil {
		return domain.Upstream(err)
	}
	if !exists {
		return domain.ErrNotFound
	}
	return domain.ErrInvalidTransition
}
