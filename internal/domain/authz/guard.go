// Package authz implementa el guard de autorización: funciones de decisión puras
// sobre la jerarquía de roles y el grafo de propiedad. Ninguna decisión tiene
// efectos secundarios; el motivo de rechazo siempre acompaña al resultado.
package authz

import "github.com/jhoicas/Portal-empleo-api/internal/domain/entity"

// Decision resultado de una función de decisión. Reason se llena solo en rechazos
// y es apto para mostrarse al usuario.
type Decision struct {
	Allowed bool
	Reason  string
}

func allow() Decision {
	return Decision{Allowed: true}
}

func deny(reason string) Decision {
	return Decision{Allowed: false, Reason: reason}
}

// CanAssignRole decide si el actor puede asignar (crear o reasignar) el rol destino.
// Regla estricta: el rango del actor debe superar al destino; rango igual siempre se
// niega. Caso especial: un gerente territorial nunca toca el rol gerente territorial,
// ni siquiera el propio.
func CanAssignRole(actor *entity.User, target entity.Role) Decision {
	if actor.Role == entity.RoleGerente && target == entity.RoleGerente {
		return deny("un gerente territorial no puede asignar el rol gerente territorial")
	}
	if actor.Role.Rank() <= target.Rank() {
		return deny("el rango del rol destino es igual o superior al suyo")
	}
	return allow()
}

// CanCreateRecord decide si el actor puede crear un registro del kind dado.
// Misma regla estricta de rango que CanAssignRole, contra el rango equivalente del kind.
func CanCreateRecord(actor *entity.User, kind entity.RecordKind) Decision {
	if actor.Role.Rank() <= kind.Rank() {
		return deny("su rango no permite crear registros de tipo " + string(kind))
	}
	return allow()
}

// CanViewOrEditRecord decide visibilidad/edición: admin+ ve todo; si no, debe ser
// el dueño (createdBy) o el supervisor (managedBy) del registro.
func CanViewOrEditRecord(actor *entity.User, ownerID string, managedBy *string) Decision {
	if actor.Role.AtLeast(entity.RoleAdmin) {
		return allow()
	}
	if ownerID == actor.ID {
		return allow()
	}
	if managedBy != nil && *managedBy == actor.ID {
		return allow()
	}
	return deny("el registro no le pertenece ni está bajo su supervisión")
}

// CanApproveOrReject decide si el actor puede aprobar o rechazar registros pendientes.
func CanApproveOrReject(actor *entity.User) Decision {
	if actor.Role.AtLeast(entity.RoleAdmin) {
		return allow()
	}
	return deny("se requiere rango administrador o superior")
}

// CanDeleteUser decide el borrado de usuarios: solo super_admin, y nunca sobre sí mismo.
// La auto-eliminación se niega siempre, sin importar el rango.
func CanDeleteUser(actor *entity.User, targetID string) Decision {
	if actor.ID == targetID {
		return deny("no puede eliminar su propia cuenta")
	}
	if actor.Role != entity.RoleSuperAdmin {
		return deny("se requiere rango super administrador")
	}
	return allow()
}

// CanChangePassword decide el cambio de contraseña: admin+ puede cambiar la de
// cualquiera (sin verificar la actual); cualquier usuario puede cambiar la propia
// (verificando la actual primero, responsabilidad del caso de uso).
func CanChangePassword(actor *entity.User, targetID string) Decision {
	if actor.Role.AtLeast(entity.RoleAdmin) {
		return allow()
	}
	if actor.ID == targetID {
		return allow()
	}
	return deny("no es su cuenta y no tiene privilegios para cambiarla")
}
