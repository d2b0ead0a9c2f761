package authz_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jhoicas/Portal-empleo-api/internal/domain/authz"
	"github.com/jhoicas/Portal-empleo-api/internal/domain/entity"
)

func userWith(id string, role entity.Role) *entity.User {
	return &entity.User{ID: id, Role: role, IsActive: true}
}

func TestCanAssignRole_ReglaEstricta(t *testing.T) {
	roles := []entity.Role{
		entity.RoleReportero,
		entity.RoleOperador,
		entity.RoleGerente,
		entity.RoleAdmin,
		entity.RoleSuperAdmin,
	}
	for _, actorRole := range roles {
		for _, target := range roles {
			actor := userWith("a1", actorRole)
			d := authz.CanAssignRole(actor, target)
			if actorRole.Rank() > target.Rank() {
				assert.True(t, d.Allowed, "%s debe poder asignar %s", actorRole, target)
			} else {
				assert.False(t, d.Allowed, "%s no debe poder asignar %s", actorRole, target)
				assert.NotEmpty(t, d.Reason, "todo rechazo lleva motivo")
			}
		}
	}
}

func TestCanAssignRole_GerenteNuncaAsignaGerente(t *testing.T) {
	actor := userWith("g1", entity.RoleGerente)
	d := authz.CanAssignRole(actor, entity.RoleGerente)
	assert.False(t, d.Allowed)
	assert.Contains(t, d.Reason, "gerente territorial")
}

func TestCanAssignRole_RolDesconocidoNoAsignaNada(t *testing.T) {
	actor := userWith("x1", entity.Role("rol_viejo"))
	d := authz.CanAssignRole(actor, entity.RoleReportero)
	assert.False(t, d.Allowed, "rango 0 nunca supera a nadie")
}

func TestCanCreateRecord(t *testing.T) {
	cases := []struct {
		role    entity.Role
		kind    entity.RecordKind
		allowed bool
	}{
		{entity.RoleOperador, entity.KindEmpresa, true},
		{entity.RoleOperador, entity.KindReporter, true},
		{entity.RoleOperador, entity.KindBolsa, false},
		{entity.RoleGerente, entity.KindBolsa, true},
		{entity.RoleGerente, entity.KindAgente, false},
		{entity.RoleAdmin, entity.KindAgente, true},
		{entity.RoleReportero, entity.KindEmpresa, false},
		{entity.RoleReportero, entity.KindReporter, false},
	}
	for _, tc := range cases {
		actor := userWith("u1", tc.role)
		d := authz.CanCreateRecord(actor, tc.kind)
		assert.Equal(t, tc.allowed, d.Allowed, "%s crea %s", tc.role, tc.kind)
	}
}

func TestCanViewOrEditRecord(t *testing.T) {
	ownerID := "owner-1"
	supervisorID := "sup-1"

	t.Run("admin ve todo", func(t *testing.T) {
		d := authz.CanViewOrEditRecord(userWith("adm", entity.RoleAdmin), ownerID, nil)
		assert.True(t, d.Allowed)
	})
	t.Run("dueño ve lo suyo", func(t *testing.T) {
		d := authz.CanViewOrEditRecord(userWith(ownerID, entity.RoleOperador), ownerID, nil)
		assert.True(t, d.Allowed)
	})
	t.Run("supervisor ve lo de sus supervisados", func(t *testing.T) {
		d := authz.CanViewOrEditRecord(userWith(supervisorID, entity.RoleGerente), ownerID, &supervisorID)
		assert.True(t, d.Allowed)
	})
	t.Run("tercero no ve nada", func(t *testing.T) {
		d := authz.CanViewOrEditRecord(userWith("otro", entity.RoleGerente), ownerID, &supervisorID)
		assert.False(t, d.Allowed)
		assert.NotEmpty(t, d.Reason)
	})
}

func TestCanApproveOrReject(t *testing.T) {
	assert.True(t, authz.CanApproveOrReject(userWith("a", entity.RoleAdmin)).Allowed)
	assert.True(t, authz.CanApproveOrReject(userWith("s", entity.RoleSuperAdmin)).Allowed)
	assert.False(t, authz.CanApproveOrReject(userWith("g", entity.RoleGerente)).Allowed)
	assert.False(t, authz.CanApproveOrReject(userWith("r", entity.RoleReportero)).Allowed)
}

func TestCanDeleteUser(t *testing.T) {
	t.Run("solo super_admin elimina", func(t *testing.T) {
		assert.True(t, authz.CanDeleteUser(userWith("s1", entity.RoleSuperAdmin), "u9").Allowed)
		assert.False(t, authz.CanDeleteUser(userWith("a1", entity.RoleAdmin), "u9").Allowed)
	})
	t.Run("auto-eliminación negada incluso para super_admin", func(t *testing.T) {
		d := authz.CanDeleteUser(userWith("s1", entity.RoleSuperAdmin), "s1")
		assert.False(t, d.Allowed)
		assert.Contains(t, d.Reason, "propia cuenta")
	})
}

func TestCanChangePassword(t *testing.T) {
	assert.True(t, authz.CanChangePassword(userWith("a1", entity.RoleAdmin), "otro").Allowed)
	assert.True(t, authz.CanChangePassword(userWith("u1", entity.RoleReportero), "u1").Allowed)
	assert.False(t, authz.CanChangePassword(userWith("u1", entity.RoleReportero), "u2").Allowed)
}
