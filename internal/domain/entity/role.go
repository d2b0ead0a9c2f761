package entity

// Role identifica el rol jerárquico de un usuario. Enumeración cerrada y totalmente
// ordenada; el rango se deriva de la posición y nunca se muta.
type Role string

// Roles válidos, de menor a mayor rango.
const (
	RoleReportero  Role = "reportero"
	RoleOperador   Role = "operador_bolsa"
	RoleGerente    Role = "gerente_territorial"
	RoleAdmin      Role = "admin"
	RoleSuperAdmin Role = "super_admin"
)

// roleRanks tabla inmutable de rangos. Un rol desconocido queda en 0 (rango mínimo),
// de modo que cualquier comparación contra él resuelve en "rango insuficiente".
var roleRanks = map[Role]int{
	RoleReportero:  1,
	RoleOperador:   2,
	RoleGerente:    3,
	RoleAdmin:      4,
	RoleSuperAdmin: 5,
}

// Rank devuelve el rango entero del rol (1..5); 0 si el rol es desconocido.
func (r Role) Rank() int {
	return roleRanks[r]
}

// AtLeast indica si el rol tiene rango mayor o igual al requerido.
func (r Role) AtLeast(required Role) bool {
	return r.Rank() >= required.Rank()
}

// IsValid indica si el valor pertenece a la enumeración.
func (r Role) IsValid() bool {
	_, ok := roleRanks[r]
	return ok
}

// ParseRole convierte un string en Role validando membresía.
func ParseRole(s string) (Role, bool) {
	r := Role(s)
	return r, r.IsValid()
}
