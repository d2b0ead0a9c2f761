package entity

import "time"

// JobBoard representa una bolsa de empleo (registro aprobable).
type JobBoard struct {
	ID           string
	Name         string
	Institution  string // institución que la opera
	City         string
	ContactName  string
	ContactEmail string
	Capacity     int // vacantes gestionables simultáneamente
	CreatedBy    string
	ManagedBy    *string
	Approval
	CreatedAt time.Time
	UpdatedAt time.Time
}
