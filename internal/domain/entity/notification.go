package entity

import "time"

// Notification aviso de un registro pendiente de aprobación.
// Recipients es un snapshot congelado al momento de creación: los aprobadores
// activos en ese instante. Nunca se re-calcula ni se re-dirige.
type Notification struct {
	ID            string
	Type          RecordKind
	Title         string
	Message       string
	EntityID      string
	EntityName    string
	CreatedBy     string
	CreatedByName string
	Recipients    []string
	CreatedAt     time.Time
}

// NotificationRead entrada de lectura: única por (notificación, usuario).
type NotificationRead struct {
	NotificationID string
	UserID         string
	ReadAt         time.Time
}

// NotificationTypeStat conteo por tipo con la creación más reciente, para visibilidad operativa.
type NotificationTypeStat struct {
	Type     RecordKind
	Count    int64
	LatestAt time.Time
}
