package dto

import "time"

// CreateJobBoardRequest alta de bolsa de empleo.
type CreateJobBoardRequest struct {
	Name         string `json:"name"`
	Institution  string `json:"institution"`
	City         string `json:"city"`
	ContactName  string `json:"contact_name"`
	ContactEmail string `json:"contact_email"`
	Capacity     int    `json:"capacity"`
}

// UpdateJobBoardRequest edición de bolsa de empleo.
type UpdateJobBoardRequest struct {
	Name         string `json:"name"`
	Institution  string `json:"institution"`
	City         string `json:"city"`
	ContactName  string `json:"contact_name"`
	ContactEmail string `json:"contact_email"`
	Capacity     int    `json:"capacity"`
}

// JobBoardResponse representación pública de una bolsa de empleo.
type JobBoardResponse struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	Institution  string `json:"institution"`
	City         string `json:"city"`
	ContactName  string `json:"contact_name"`
	ContactEmail string `json:"contact_email"`
	Capacity     int    `json:"capacity"`

	CreatedBy string  `json:"created_by"`
	ManagedBy *string `json:"managed_by,omitempty"`
	ApprovalState
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// JobBoardListResponse listado paginado de bolsas de empleo.
type JobBoardListResponse struct {
	Items []JobBoardResponse `json:"items"`
	Page  PageResponse       `json:"page"`
}
