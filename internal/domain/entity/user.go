package entity

import "time"

// User representa un usuario del portal con rol jerárquico.
// ManagedBy es una referencia débil al usuario que lo creó/supervisa; se usa solo
// para alcance de visibilidad, nunca para ciclo de vida.
type User struct {
	ID           string
	Email        string
	PasswordHash string // bcrypt hash, nunca plano en dominio después de persistir
	Name         string
	Role         Role
	ManagedBy    *string
	IsActive     bool
	Approval
	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsApprover indica si el usuario puede aprobar/rechazar registros pendientes.
func (u *User) IsApprover() bool {
	return u.Role.AtLeast(RoleAdmin)
}
