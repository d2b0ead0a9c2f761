package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/jhoicas/Portal-empleo-api/internal/domain/entity"
	"github.com/jhoicas/Portal-empleo-api/internal/domain/repository"
)

var _ repository.NotificationRepository = (*NotificationRepo)(nil)

const notificationColumns = `id, type, title, message, entity_id, entity_name,
	created_by, created_by_name, recipients, created_at`

// NotificationRepo implementación del puerto NotificationRepository sobre PostgreSQL.
// Los destinatarios viven como TEXT[] en la fila: el snapshot viaja con la notificación.
type NotificationRepo struct {
	pool *pgxpool.Pool
}

// NewNotificationRepository construye el adaptador de persistencia para notificaciones.
func NewNotificationRepository(pool *pgxpool.Pool) *NotificationRepo {
	return &NotificationRepo{pool: pool}
}

// Create persiste una notificación con su snapshot de destinatarios.
func (r *NotificationRepo) Create(ctx context.Context, n *entity.Notification) error {
	query := `
		INSERT INTO notifications (` + notificationColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`
	_, err := r.pool.Exec(ctx, query,
		n.ID, string(n.Type), n.Title, n.Message, n.EntityID, n.EntityName,
		n.CreatedBy, n.CreatedByName, n.Recipients, n.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert notification: %w", err)
	}
	return nil
}

// ListUnread lista las notificaciones dirigidas al usuario que aún no tienen
// entrada de lectura suya, más recientes primero.
func (r *NotificationRepo) ListUnread(ctx context.Context, userID string, limit int) ([]*entity.Notification, error) {
	query := `
		SELECT ` + notificationColumns + ` FROM notifications n
		WHERE $1 = ANY (n.recipients)
		  AND NOT EXISTS (
			SELECT 1 FROM notification_reads nr
			WHERE nr.notification_id = n.id AND nr.user_id = $1
		  )
		ORDER BY n.created_at DESC LIMIT $2`
	rows, err := r.pool.Query(ctx, query, userID, limit)
	if err != nil {
		return nil, fmt.Errorf("list unread: %w", err)
	}
	defer rows.Close()
	var list []*entity.Notification
	for rows.Next() {
		var n entity.Notification
		var kind string
		if err := rows.Scan(
			&n.ID, &kind, &n.Title, &n.Message, &n.EntityID, &n.EntityName,
			&n.CreatedBy, &n.CreatedByName, &n.Recipients, &n.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan notification: %w", err)
		}
		n.Type = entity.RecordKind(kind)
		list = append(list, &n)
	}
	return list, rows.Err()
}

// MarkRead inserta la entrada de lectura solo si el usuario es destinatario y aún no
// la tiene. Devuelve false cuando no tocó filas: no existe, no le pertenece o ya leída.
func (r *NotificationRepo) MarkRead(ctx context.Context, notificationID, userID string, at time.Time) (bool, error) {
	query := `
		INSERT INTO notification_reads (notification_id, user_id, read_at)
		SELECT $1, $2, $3
		WHERE EXISTS (
			SELECT 1 FROM notifications WHERE id = $1 AND $2 = ANY (recipients)
		)
		ON CONFLICT (notification_id, user_id) DO NOTHING`
	tag, err := r.pool.Exec(ctx, query, notificationID, userID, at)
	if err != nil {
		return false, fmt.Errorf("mark read: %w", err)
	}
	return tag.RowsAffected() == 1, nil
}

// MarkAllRead inserta entradas de lectura para todo lo no leído del usuario y devuelve
// cuántas agregó.
func (r *NotificationRepo) MarkAllRead(ctx context.Context, userID string, at time.Time) (int64, error) {
	query := `
		INSERT INTO notification_reads (notification_id, user_id, read_at)
		SELECT n.id, $1, $2 FROM notifications n
		WHERE $1 = ANY (n.recipients)
		ON CONFLICT (notification_id, user_id) DO NOTHING`
	tag, err := r.pool.Exec(ctx, query, userID, at)
	if err != nil {
		return 0, fmt.Errorf("mark all read: %w", err)
	}
	return tag.RowsAffected(), nil
}

// PurgeOlderThan elimina toda notificación anterior al corte, leída o no. Las entradas
// de lectura caen en cascada por FK.
func (r *NotificationRepo) PurgeOlderThan(ctx context.Context, cutoff time.Time) (int64, error) {
	tag, err := r.pool.Exec(ctx, `DELETE FROM notifications WHERE created_at < $1`, cutoff)
	if err != nil {
		return 0, fmt.Errorf("purge notifications: %w", err)
	}
	return tag.RowsAffected(), nil
}

// Stats total de notificaciones y conteo por tipo con la creación más reciente.
func (r *NotificationRepo) Stats(ctx context.Context) (int64, []entity.NotificationTypeStat, error) {
	var total int64
	if err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM notifications`).Scan(&total); err != nil {
		return 0, nil, fmt.Errorf("count notifications: %w", err)
	}
	query := `
		SELECT type, COUNT(*), MAX(created_at) FROM notifications
		GROUP BY type ORDER BY COUNT(*) DESC`
	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return 0, nil, fmt.Errorf("stats notifications: %w", err)
	}
	defer rows.Close()
	var stats []entity.NotificationTypeStat
	for rows.Next() {
		var s entity.NotificationTypeStat
		var kind string
		if err := rows.Scan(&kind, &s.Count, &s.LatestAt); err != nil {
			return 0, nil, fmt.Errorf("scan stat: %w", err)
		}
		s.Type = entity.RecordKind(kind)
		stats = append(stats, s)
	}
	return total, stats, rows.Err()
}

// Delete elimina una notificación puntual.
func (r *NotificationRepo) Delete(ctx context.Context, id string) error {
	_, err := r.pool.Exec(ctx, `DELETE FROM notifications WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete notification: %w", err)
	}
	return nil
}
