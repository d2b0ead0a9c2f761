package entity

import "time"

// Agent representa un agente territorial (registro aprobable).
type Agent struct {
	ID           string
	Name         string
	Document     string // documento de identidad, único
	Email        string
	Phone        string
	Departamento string
	Municipio    string
	CreatedBy    string
	ManagedBy    *string
	Approval
	CreatedAt time.Time
	UpdatedAt time.Time
}
