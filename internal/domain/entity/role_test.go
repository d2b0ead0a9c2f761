package entity_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jhoicas/Portal-empleo-api/internal/domain/entity"
)

func TestRole_RangosOrdenados(t *testing.T) {
	orden := []entity.Role{
		entity.RoleReportero,
		entity.RoleOperador,
		entity.RoleGerente,
		entity.RoleAdmin,
		entity.RoleSuperAdmin,
	}
	for i := 1; i < len(orden); i++ {
		assert.Greater(t, orden[i].Rank(), orden[i-1].Rank(),
			"%s debe superar a %s", orden[i], orden[i-1])
	}
}

func TestRole_DesconocidoRangoCero(t *testing.T) {
	assert.Equal(t, 0, entity.Role("gerente").Rank(), "rol desconocido debe rankear 0")
	assert.Equal(t, 0, entity.Role("").Rank())
	assert.False(t, entity.Role("gerente").AtLeast(entity.RoleReportero),
		"rol desconocido nunca alcanza el rango mínimo")
}

func TestRole_AtLeast(t *testing.T) {
	assert.True(t, entity.RoleAdmin.AtLeast(entity.RoleAdmin))
	assert.True(t, entity.RoleSuperAdmin.AtLeast(entity.RoleAdmin))
	assert.False(t, entity.RoleGerente.AtLeast(entity.RoleAdmin))
}

func TestParseRole(t *testing.T) {
	r, ok := entity.ParseRole("gerente_territorial")
	assert.True(t, ok)
	assert.Equal(t, entity.RoleGerente, r)

	_, ok = entity.ParseRole("gerente")
	assert.False(t, ok, "valores fuera de la enumeración deben rechazarse")
}

func TestRecordKind_Rangos(t *testing.T) {
	assert.Equal(t, 1, entity.KindEmpresa.Rank())
	assert.Equal(t, 1, entity.KindReporter.Rank())
	assert.Equal(t, 2, entity.KindBolsa.Rank())
	assert.Equal(t, 3, entity.KindAgente.Rank())
	assert.Equal(t, 0, entity.KindUsuario.Rank(), "usuario no tiene rango fijo; depende del rol pedido")
}

func TestRecordKind_IsValid(t *testing.T) {
	assert.True(t, entity.KindBolsa.IsValid())
	assert.False(t, entity.RecordKind("vacante").IsValid())
}

func TestApproval_EstadosIniciales(t *testing.T) {
	auto := entity.AutoApproved()
	assert.True(t, auto.IsApproved)
	assert.False(t, auto.PendingApproval)

	pending := entity.PendingInitial()
	assert.False(t, pending.IsApproved)
	assert.True(t, pending.PendingApproval)
}
