// Package notification implementa el despachador de notificaciones de aprobación:
// cálculo del snapshot de destinatarios, persistencia del aviso y seguimiento de
// lectura por destinatario.
package notification

import (
	"context"
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"github.com/jhoicas/Portal-empleo-api/internal/domain"
	"github.com/jhoicas/Portal-empleo-api/internal/domain/entity"
	"github.com/jhoicas/Portal-empleo-api/internal/domain/repository"
	"github.com/jhoicas/Portal-empleo-api/pkg/logger"
)

// Títulos por kind para el aviso de pendiente.
var kindTitles = map[entity.RecordKind]string{
	entity.KindEmpresa:  "Nueva empresa pendiente de aprobación",
	entity.KindAgente:   "Nuevo agente territorial pendiente de aprobación",
	entity.KindBolsa:    "Nueva bolsa de empleo pendiente de aprobación",
	entity.KindReporter: "Nuevo reportero pendiente de aprobación",
	entity.KindUsuario:  "Nuevo usuario pendiente de aprobación",
}

const (
	unreadCap     = 50
	statsCacheKey = "notif:stats"
	statsCacheTTL = time.Minute
)

// Cache puerto opcional para cachear estadísticas (Redis). Un valor nil desactiva el cache.
type Cache interface {
	Get(ctx context.Context, key string) (string, bool)
	Set(ctx context.Context, key, value string, ttl time.Duration)
	Delete(ctx context.Context, keys ...string)
}

// UseCase despachador de notificaciones.
type UseCase struct {
	repo  repository.NotificationRepository
	users repository.UserRepository
	cache Cache
	log   *logger.Logger
}

// New construye el despachador. cache puede ser nil.
func New(repo repository.NotificationRepository, users repository.UserRepository, cache Cache, log *logger.Logger) *UseCase {
	return &UseCase{repo: repo, users: users, cache: cache, log: log}
}

// NotifyPendingApproval crea un aviso para los aprobadores activos en este instante.
// El conjunto de destinatarios queda congelado en la notificación; un admin activado
// después no la verá. Con cero aprobadores activos la llamada es un no-op silencioso:
// la creación del registro no debe fallar por falta de destinatarios.
func (uc *UseCase) NotifyPendingApproval(ctx context.Context, kind entity.RecordKind, entityID, entityName string, submitter *entity.User) error {
	recipients, err := uc.users.ListActiveApproverIDs(ctx)
	if err != nil {
		return domain.Upstream(err)
	}
	if len(recipients) == 0 {
		uc.log.Warn().Str("kind", string(kind)).Str("entity_id", entityID).
			Msg("sin aprobadores activos, no se crea notificación")
		return nil
	}

	title := kindTitles[kind]
	if title == "" {
		title = "Nuevo registro pendiente de aprobación"
	}
	n := &entity.Notification{
		ID:            uuid.New().String(),
		Type:          kind,
		Title:         title,
		Message:       submitter.Name + " registró \"" + entityName + "\" y requiere aprobación",
		EntityID:      entityID,
		EntityName:    entityName,
		CreatedBy:     submitter.ID,
		CreatedByName: submitter.Name,
		Recipients:    recipients,
		CreatedAt:     time.Now(),
	}
	if err := uc.repo.Create(ctx, n); err != nil {
		return domain.Upstream(err)
	}
	uc.invalidateStats(ctx)
	return nil
}

// ListUnread lista las notificaciones no leídas del usuario, más recientes primero,
// con tope de 50.
func (uc *UseCase) ListUnread(ctx context.Context, userID string) ([]*entity.Notification, error) {
	list, err := uc.repo.ListUnread(ctx, userID, unreadCap)
	if err != nil {
		return nil, domain.Upstream(err)
	}
	return list, nil
}

// MarkRead agrega la entrada de lectura de forma atómica. Si la actualización
// condicional no toca filas (no es destinatario o ya estaba leída) devuelve
// ErrNotFoundOrRead; el caller debe tratarlo como no fatal.
func (uc *UseCase) MarkRead(ctx context.Context, notificationID, userID string) error {
	ok, err := uc.repo.MarkRead(ctx, notificationID, userID, time.Now())
	if err != nil {
		return domain.Upstream(err)
	}
	if !ok {
		return domain.ErrNotFoundOrRead
	}
	return nil
}

// MarkAllRead marca como leídas todas las no leídas del usuario. Sin garantía
// todo-o-nada: devuelve cuántas quedaron marcadas.
func (uc *UseCase) MarkAllRead(ctx context.Context, userID string) (int64, error) {
	n, err := uc.repo.MarkAllRead(ctx, userID, time.Now())
	if err != nil {
		return 0, domain.Upstream(err)
	}
	return n, nil
}

// PurgeOlderThan elimina toda notificación (leída o no) anterior al corte.
// Política de retención burda, no por destinatario.
func (uc *UseCase) PurgeOlderThan(ctx context.Context, days int) (int64, error) {
	if days <= 0 {
		days = 30
	}
	cutoff := time.Now().AddDate(0, 0, -days)
	n, err := uc.repo.PurgeOlderThan(ctx, cutoff)
	if err != nil {
		return 0, domain.Upstream(err)
	}
	if n > 0 {
		uc.invalidateStats(ctx)
		uc.log.Info().Int64("deleted", n).Int("days", days).Msg("purga de notificaciones")
	}
	return n, nil
}

// Stats devuelve total y conteos por tipo con la creación más reciente.
// Solo visibilidad operativa; nunca participa en decisiones de acceso.
func (uc *UseCase) Stats(ctx context.Context) (*StatsResult, error) {
	if uc.cache != nil {
		if raw, ok := uc.cache.Get(ctx, statsCacheKey); ok {
			var cached StatsResult
			if err := json.Unmarshal([]byte(raw), &cached); err == nil {
				return &cached, nil
			}
		}
	}
	total, byType, err := uc.repo.Stats(ctx)
	if err != nil {
		return nil, domain.Upstream(err)
	}
	res := &StatsResult{Total: total, ByType: byType}
	if uc.cache != nil {
		if raw, err := json.Marshal(res); err == nil {
			uc.cache.Set(ctx, statsCacheKey, string(raw), statsCacheTTL)
		}
	}
	return res, nil
}

// StatsResult totales de notificaciones para el panel operativo.
type StatsResult struct {
	Total  int64                         `json:"total"`
	ByType []entity.NotificationTypeStat `json:"by_type"`
}

func (uc *UseCase) invalidateStats(ctx context.Context) {
	if uc.cache != nil {
		uc.cache.Delete(ctx, statsCacheKey)
	}
}
