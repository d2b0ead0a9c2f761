package dto

import "time"

// CreateReporterRequest alta de reportero.
type CreateReporterRequest struct {
	Name     string `json:"name"`
	Document string `json:"document"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`
	Zone     string `json:"zone"`
}

// UpdateReporterRequest edición de reportero (el documento no se edita).
type UpdateReporterRequest struct {
	Name  string `json:"name"`
	Email string `json:"email"`
	Phone string `json:"phone"`
	Zone  string `json:"zone"`
}

// ReporterResponse representación pública de un reportero.
type ReporterResponse struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Document string `json:"document"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`
	Zone     string `json:"zone"`

	CreatedBy string  `json:"created_by"`
	ManagedBy *string `json:"managed_by,omitempty"`
	ApprovalState
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// ReporterListResponse listado paginado de reporteros.
type ReporterListResponse struct {
	Items []ReporterResponse `json:"items"`
	Page  PageResponse       `json:"page"`
}
