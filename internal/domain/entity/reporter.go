package entity

import "time"

// Reporter representa un reportero de campo (registro aprobable).
type Reporter struct {
	ID        string
	Name      string
	Document  string // documento de identidad, único
	Email     string
	Phone     string
	Zone      string // zona asignada de cobertura
	CreatedBy string
	ManagedBy *string
	Approval
	CreatedAt time.Time
	UpdatedAt time.Time
}
