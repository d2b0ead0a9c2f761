package repository

import (
	"context"
	"time"

	"github.com/jhoicas/Portal-empleo-api/internal/domain/entity"
)

// NotificationRepository define el puerto de persistencia para Notification.
// MarkRead y MarkAllRead son inserciones condicionales: solo agregan la entrada de
// lectura si el usuario está en el snapshot de destinatarios y aún no la tiene.
type NotificationRepository interface {
	Create(ctx context.Context, n *entity.Notification) error
	ListUnread(ctx context.Context, userID string, limit int) ([]*entity.Notification, error)
	// MarkRead devuelve false si no tocó ninguna fila (no es destinatario o ya leída).
	MarkRead(ctx context.Context, notificationID, userID string, at time.Time) (bool, error)
	// MarkAllRead devuelve cuántas notificaciones quedaron marcadas; el éxito parcial es aceptable.
	MarkAllRead(ctx context.Context, userID string, at time.Time) (int64, error)
	// PurgeOlderThan elimina sin condiciones toda notificación anterior al corte, leída o no.
	PurgeOlderThan(ctx context.Context, cutoff time.Time) (int64, error)
	Stats(ctx context.Context) (int64, []entity.NotificationTypeStat, error)
	Delete(ctx context.Context, id string) error
}
