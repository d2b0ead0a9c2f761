package dto

import "time"

// RejectRequest motivo opcional del rechazo.
type RejectRequest struct {
	Reason string `json:"reason,omitempty"`
}

// PendingRecordResponse registro pendiente en el listado de aprobadores.
type PendingRecordResponse struct {
	Kind      string    `json:"kind"`
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	CreatedBy string    `json:"created_by"`
	CreatedAt time.Time `json:"created_at"`
}

// PendingListResponse listado de registros pendientes por kind.
type PendingListResponse struct {
	Items []PendingRecordResponse `json:"items"`
}

// ApprovalResultResponse confirmación de una transición de aprobación.
type ApprovalResultResponse struct {
	Kind   string `json:"kind"`
	ID     string `json:"id"`
	Status string `json:"status"` // aprobado | rechazado
}
