package dto

import "time"

// CreateAgentRequest alta de agente territorial.
type CreateAgentRequest struct {
	Name         string `json:"name"`
	Document     string `json:"document"`
	Email        string `json:"email"`
	Phone        string `json:"phone"`
	Departamento string `json:"departamento"`
	Municipio    string `json:"municipio"`
}

// UpdateAgentRequest edición de agente (el documento no se edita).
type UpdateAgentRequest struct {
	Name         string `json:"name"`
	Email        string `json:"email"`
	Phone        string `json:"phone"`
	Departamento string `json:"departamento"`
	Municipio    string `json:"municipio"`
}

// AgentResponse representación pública de un agente territorial.
type AgentResponse struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	Document     string `json:"document"`
	Email        string `json:"email"`
	Phone        string `json:"phone"`
	Departamento string `json:"departamento"`
	Municipio    string `json:"municipio"`

	CreatedBy string  `json:"created_by"`
	ManagedBy *string `json:"managed_by,omitempty"`
	ApprovalState
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// AgentListResponse listado paginado de agentes.
type AgentListResponse struct {
	Items []AgentResponse `json:"items"`
	Page  PageResponse    `json:"page"`
}
