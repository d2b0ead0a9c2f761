package approval_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Portal-empleo-api/internal/application/approval"
	"github.com/jhoicas/Portal-empleo-api/internal/domain"
	"github.com/jhoicas/Portal-empleo-api/internal/domain/entity"
	"github.com/jhoicas/Portal-empleo-api/pkg/logger"
)

// fakeStore store aprobable en memoria: id -> pendiente.
type fakeStore struct {
	pending  map[string]bool
	approved map[string]string // id -> approver
}

func newFakeStore(ids ...string) *fakeStore {
	s := &fakeStore{pending: map[string]bool{}, approved: map[string]string{}}
	for _, id := range ids {
		s.pending[id] = true
	}
	return s
}

func (s *fakeStore) Exists(_ context.Context, id string) (bool, error) {
	_, ok := s.pending[id]
	return ok, nil
}

func (s *fakeStore) ApproveIfPending(_ context.Context, id, approverID string, _ time.Time) (bool, error) {
	if !s.pending[id] {
		return false, nil
	}
	s.pending[id] = false
	s.approved[id] = approverID
	return true, nil
}

func (s *fakeStore) DeleteIfPending(_ context.Context, id string) (bool, error) {
	if !s.pending[id] {
		return false, nil
	}
	delete(s.pending, id)
	return true, nil
}

func (s *fakeStore) ListPending(_ context.Context, _, _ int) ([]entity.PendingRecord, error) {
	var list []entity.PendingRecord
	for id, p := range s.pending {
		if p {
			list = append(list, entity.PendingRecord{ID: id})
		}
	}
	return list, nil
}

// fakeDispatcher cuenta los avisos enviados.
type fakeDispatcher struct {
	calls int
	err   error
}

func (d *fakeDispatcher) NotifyPendingApproval(_ context.Context, _ entity.RecordKind, _, _ string, _ *entity.User) error {
	d.calls++
	return d.err
}

func testLogger() *logger.Logger {
	return logger.New(logger.Config{Env: "production", Level: "error"})
}

func admin() *entity.User {
	return &entity.User{ID: "admin-1", Role: entity.RoleAdmin, IsActive: true}
}

func gerente() *entity.User {
	return &entity.User{ID: "ger-1", Role: entity.RoleGerente, IsActive: true}
}

func TestInitialState(t *testing.T) {
	uc := approval.New(&fakeDispatcher{}, testLogger())

	t.Run("admin crea auto-aprobado", func(t *testing.T) {
		st := uc.InitialState(admin())
		assert.True(t, st.IsApproved)
		assert.False(t, st.PendingApproval)
	})
	t.Run("gerente crea pendiente", func(t *testing.T) {
		st := uc.InitialState(gerente())
		assert.False(t, st.IsApproved)
		assert.True(t, st.PendingApproval)
	})
	t.Run("super_admin crea auto-aprobado", func(t *testing.T) {
		st := uc.InitialState(&entity.User{ID: "s", Role: entity.RoleSuperAdmin})
		assert.True(t, st.IsApproved)
	})
}

func TestApprove_Pendiente(t *testing.T) {
	store := newFakeStore("emp-1")
	uc := approval.New(&fakeDispatcher{}, testLogger())
	uc.Register(entity.KindEmpresa, store)

	err := uc.Approve(context.Background(), admin(), entity.KindEmpresa, "emp-1")
	require.NoError(t, err)
	assert.Equal(t, "admin-1", store.approved["emp-1"])
	assert.False(t, store.pending["emp-1"])
}

func TestApprove_YaAprobado_TransicionInvalida(t *testing.T) {
	store := newFakeStore("emp-1")
	uc := approval.New(&fakeDispatcher{}, testLogger())
	uc.Register(entity.KindEmpresa, store)

	require.NoError(t, uc.Approve(context.Background(), admin(), entity.KindEmpresa, "emp-1"))

	err := uc.Approve(context.Background(), admin(), entity.KindEmpresa, "emp-1")
	assert.ErrorIs(t, err, domain.ErrInvalidTransition,
		"la segunda aprobación debe fallar sin efectos")
}

func TestApprove_Inexistente_NotFound(t *testing.T) {
	uc := approval.New(&fakeDispatcher{}, testLogger())
	uc.Register(entity.KindEmpresa, newFakeStore())

	err := uc.Approve(context.Background(), admin(), entity.KindEmpresa, "no-existe")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestApprove_SinRango_Denegado(t *testing.T) {
	store := newFakeStore("emp-1")
	uc := approval.New(&fakeDispatcher{}, testLogger())
	uc.Register(entity.KindEmpresa, store)

	err := uc.Approve(context.Background(), gerente(), entity.KindEmpresa, "emp-1")
	var dErr *domain.AuthzDeniedError
	require.True(t, errors.As(err, &dErr), "gerente no puede aprobar")
	assert.True(t, store.pending["emp-1"], "el registro debe seguir pendiente")
}

func TestApprove_KindDesconocido(t *testing.T) {
	uc := approval.New(&fakeDispatcher{}, testLogger())
	err := uc.Approve(context.Background(), admin(), entity.RecordKind("vacante"), "x")
	var vErr *domain.ValidationError
	assert.True(t, errors.As(err, &vErr))
}

func TestReject_EliminaElRegistro(t *testing.T) {
	store := newFakeStore("rep-1")
	uc := approval.New(&fakeDispatcher{}, testLogger())
	uc.Register(entity.KindReporter, store)

	require.NoError(t, uc.Reject(context.Background(), admin(), entity.KindReporter, "rep-1", "datos incompletos"))

	exists, err := store.Exists(context.Background(), "rep-1")
	require.NoError(t, err)
	assert.False(t, exists, "el rechazo elimina el registro de forma permanente")
}

func TestReject_DobleRechazo_NotFound(t *testing.T) {
	store := newFakeStore("rep-1")
	uc := approval.New(&fakeDispatcher{}, testLogger())
	uc.Register(entity.KindReporter, store)

	require.NoError(t, uc.Reject(context.Background(), admin(), entity.KindReporter, "rep-1", ""))

	err := uc.Reject(context.Background(), admin(), entity.KindReporter, "rep-1", "")
	assert.ErrorIs(t, err, domain.ErrNotFound, "el registro ya no existe tras el primer rechazo")
}

func TestReject_RegistroYaAprobado_TransicionInvalida(t *testing.T) {
	store := newFakeStore("bol-1")
	uc := approval.New(&fakeDispatcher{}, testLogger())
	uc.Register(entity.KindBolsa, store)

	require.NoError(t, uc.Approve(context.Background(), admin(), entity.KindBolsa, "bol-1"))

	err := uc.Reject(context.Background(), admin(), entity.KindBolsa, "bol-1", "")
	assert.ErrorIs(t, err, domain.ErrInvalidTransition,
		"un registro aprobado no puede rechazarse")
}

func TestListPending_SoloAprobadores(t *testing.T) {
	uc := approval.New(&fakeDispatcher{}, testLogger())
	uc.Register(entity.KindEmpresa, newFakeStore("emp-1", "emp-2"))
	uc.Register(entity.KindReporter, newFakeStore("rep-1"))

	list, err := uc.ListPending(context.Background(), admin(), 20, 0)
	require.NoError(t, err)
	assert.Len(t, list, 3)

	_, err = uc.ListPending(context.Background(), gerente(), 20, 0)
	var dErr *domain.AuthzDeniedError
	assert.True(t, errors.As(err, &dErr))
}

func TestNotifySubmitted_BestEffort(t *testing.T) {
	d := &fakeDispatcher{err: errors.New("broker caído")}
	uc := approval.New(d, testLogger())

	// No hay valor de retorno: el fallo del despachador jamás llega al creador.
	uc.NotifySubmitted(context.Background(), gerente(), entity.KindEmpresa, "emp-1", "Acme")
	assert.Equal(t, 1, d.calls)
}
