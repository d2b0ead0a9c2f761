package dto

import "time"

// NotificationResponse aviso de aprobación pendiente para un destinatario.
type NotificationResponse struct {
	ID            string    `json:"id"`
	Type          string    `json:"type"`
	Title         string    `json:"title"`
	Message       string    `json:"message"`
	EntityID      string    `json:"entity_id"`
	EntityName    string    `json:"entity_name"`
	CreatedBy     string    `json:"created_by"`
	CreatedByName string    `json:"created_by_name"`
	CreatedAt     time.Time `json:"created_at"`
}

// NotificationListResponse listado de notificaciones no leídas.
type NotificationListResponse struct {
	Items []NotificationResponse `json:"items"`
}

// MarkAllReadResponse resultado de marcar todas como leídas.
type MarkAllReadResponse struct {
	Marked int64 `json:"marked"`
}

// PurgeResponse resultado de la purga por retención.
type PurgeResponse struct {
	Deleted int64 `json:"deleted"`
}

// NotificationTypeStatResponse conteo por tipo.
type NotificationTypeStatResponse struct {
	Type     string    `json:"type"`
	Count    int64     `json:"count"`
	LatestAt time.Time `json:"latest_at"`
}

// NotificationStatsResponse totales para visibilidad operativa.
type NotificationStatsResponse struct {
	Total  int64                          `json:"total"`
	ByType []NotificationTypeStatResponse `json:"by_type"`
}
