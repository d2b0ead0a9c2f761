package usecase_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/jhoicas/Portal-empleo-api/internal/application/approval"
	"github.com/jhoicas/Portal-empleo-api/internal/application/dto"
	"github.com/jhoicas/Portal-empleo-api/internal/application/usecase"
	"github.com/jhoicas/Portal-empleo-api/internal/domain"
	"github.com/jhoicas/Portal-empleo-api/internal/domain/entity"
	"github.com/jhoicas/Portal-empleo-api/internal/domain/repository"
	"github.com/jhoicas/Portal-empleo-api/pkg/logger"
)

// fakeUserRepo repositorio de usuarios en memoria.
type fakeUserRepo struct {
	users map[string]*entity.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: map[string]*entity.User{}}
}

func (r *fakeUserRepo) Create(_ context.Context, u *entity.User) error {
	r.users[u.ID] = u
	return nil
}

func (r *fakeUserRepo) GetByID(_ context.Context, id string) (*entity.User, error) {
	return r.users[id], nil
}

func (r *fakeUserRepo) GetByEmail(_ context.Context, email string) (*entity.User, error) {
	for _, u := range r.users {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, nil
}

func (r *fakeUserRepo) Update(_ context.Context, u *entity.User) error {
	r.users[u.ID] = u
	return nil
}

func (r *fakeUserRepo) UpdatePassword(_ context.Context, id, hash string, at time.Time) error {
	if u, ok := r.users[id]; ok {
		u.PasswordHash = hash
		u.UpdatedAt = at
	}
	return nil
}

func (r *fakeUserRepo) List(_ context.Context, scope repository.VisibilityScope, _, _ int) ([]*entity.User, error) {
	var list []*entity.User
	for _, u := range r.users {
		if scope.All || u.ID == scope.ActorID || (u.ManagedBy != nil && *u.ManagedBy == scope.ActorID) {
			list = append(list, u)
		}
	}
	return list, nil
}

func (r *fakeUserRepo) Delete(_ context.Context, id string) error {
	delete(r.users, id)
	return nil
}

func (r *fakeUserRepo) ListActiveApproverIDs(_ context.Context) ([]string, error) {
	var ids []string
	for _, u := range r.users {
		if u.IsActive && u.Role.AtLeast(entity.RoleAdmin) {
			ids = append(ids, u.ID)
		}
	}
	return ids, nil
}

func (r *fakeUserRepo) Exists(_ context.Context, id string) (bool, error) {
	_, ok := r.users[id]
	return ok, nil
}

func (r *fakeUserRepo) ApproveIfPending(_ context.Context, id, approverID string, at time.Time) (bool, error) {
	u, ok := r.users[id]
	if !ok || !u.PendingApproval {
		return false, nil
	}
	u.PendingApproval = false
	u.IsApproved = true
	u.ApprovedBy = &approverID
	u.ApprovedAt = &at
	return true, nil
}

func (r *fakeUserRepo) DeleteIfPending(_ context.Context, id string) (bool, error) {
	u, ok := r.users[id]
	if !ok || !u.PendingApproval {
		return false, nil
	}
	delete(r.users, id)
	return true, nil
}

func (r *fakeUserRepo) ListPending(_ context.Context, _, _ int) ([]entity.PendingRecord, error) {
	var list []entity.PendingRecord
	for _, u := range r.users {
		if u.PendingApproval {
			list = append(list, entity.PendingRecord{Kind: entity.KindUsuario, ID: u.ID, Name: u.Name})
		}
	}
	return list, nil
}

// fakeDispatcher cuenta los avisos de registro pendiente.
type fakeDispatcher struct {
	calls int
}

func (d *fakeDispatcher) NotifyPendingApproval(_ context.Context, _ entity.RecordKind, _, _ string, _ *entity.User) error {
	d.calls++
	return nil
}

func buildUserUC(repo *fakeUserRepo, d *fakeDispatcher) *usecase.UserUseCase {
	log := logger.New(logger.Config{Env: "production", Level: "error"})
	machine := approval.New(d, log)
	machine.Register(entity.KindUsuario, repo)
	return usecase.NewUserUseCase(repo, machine)
}

func superAdmin() *entity.User {
	return &entity.User{ID: "sa-1", Email: "root@portal.co", Role: entity.RoleSuperAdmin, IsActive: true}
}

func gerenteActor() *entity.User {
	return &entity.User{ID: "ger-1", Email: "ger@portal.co", Role: entity.RoleGerente, IsActive: true}
}

func TestUserCreate_AdminCreaAutoAprobado(t *testing.T) {
	repo := newFakeUserRepo()
	d := &fakeDispatcher{}
	uc := buildUserUC(repo, d)

	out, err := uc.Create(context.Background(), superAdmin(), dto.CreateUserRequest{
		Email:    "nuevo@portal.co",
		Password: "secreta123",
		Name:     "Nuevo Admin",
		Role:     "admin",
	})
	require.NoError(t, err)
	assert.True(t, out.IsApproved)
	assert.False(t, out.PendingApproval)
	assert.Equal(t, 0, d.calls, "un alta auto-aprobada no notifica")

	created := repo.users[out.ID]
	require.NotNil(t, created)
	require.NotNil(t, created.ManagedBy)
	assert.Equal(t, "sa-1", *created.ManagedBy, "el creador queda como supervisor")
	assert.NotEqual(t, "secreta123", created.PasswordHash, "la contraseña nunca se guarda en claro")
}

func TestUserCreate_GerenteCreaPendienteYNotifica(t *testing.T) {
	repo := newFakeUserRepo()
	d := &fakeDispatcher{}
	uc := buildUserUC(repo, d)

	out, err := uc.Create(context.Background(), gerenteActor(), dto.CreateUserRequest{
		Email:    "op@portal.co",
		Password: "secreta123",
		Role:     "operador_bolsa",
	})
	require.NoError(t, err)
	assert.True(t, out.PendingApproval)
	assert.Equal(t, 1, d.calls, "el alta pendiente dispara el aviso a aprobadores")
}

func TestUserCreate_RolIgualOSuperior_Denegado(t *testing.T) {
	uc := buildUserUC(newFakeUserRepo(), &fakeDispatcher{})

	_, err := uc.Create(context.Background(), gerenteActor(), dto.CreateUserRequest{
		Email:    "otro@portal.co",
		Password: "secreta123",
		Role:     "gerente_territorial",
	})
	var dErr *domain.AuthzDeniedError
	assert.True(t, errors.As(err, &dErr))
}

func TestUserCreate_EmailDuplicado(t *testing.T) {
	repo := newFakeUserRepo()
	uc := buildUserUC(repo, &fakeDispatcher{})

	_, err := uc.Create(context.Background(), superAdmin(), dto.CreateUserRequest{
		Email: "dup@portal.co", Password: "secreta123", Role: "admin",
	})
	require.NoError(t, err)

	_, err = uc.Create(context.Background(), superAdmin(), dto.CreateUserRequest{
		Email: "dup@portal.co", Password: "secreta123", Role: "admin",
	})
	var dupErr *domain.DuplicateError
	require.True(t, errors.As(err, &dupErr))
	assert.Equal(t, "email", dupErr.Field)
}

func TestUserCreate_PasswordCorta(t *testing.T) {
	uc := buildUserUC(newFakeUserRepo(), &fakeDispatcher{})
	_, err := uc.Create(context.Background(), superAdmin(), dto.CreateUserRequest{
		Email: "x@portal.co", Password: "corta", Role: "admin",
	})
	var vErr *domain.ValidationError
	assert.True(t, errors.As(err, &vErr))
}

func TestUserDelete_AutoEliminacionSiempreInvalida(t *testing.T) {
	repo := newFakeUserRepo()
	actor := superAdmin()
	repo.users[actor.ID] = actor
	uc := buildUserUC(repo, &fakeDispatcher{})

	err := uc.Delete(context.Background(), actor, actor.ID)
	var vErr *domain.ValidationError
	require.True(t, errors.As(err, &vErr),
		"la auto-eliminación se rechaza como validación, no como autorización")
	assert.NotNil(t, repo.users[actor.ID], "la cuenta debe seguir existiendo")
}

func TestUserDelete_SoloSuperAdmin(t *testing.T) {
	repo := newFakeUserRepo()
	target := &entity.User{ID: "u-9", Email: "u9@portal.co", Role: entity.RoleReportero}
	repo.users[target.ID] = target
	uc := buildUserUC(repo, &fakeDispatcher{})

	adminActor := &entity.User{ID: "adm-1", Role: entity.RoleAdmin, IsActive: true}
	err := uc.Delete(context.Background(), adminActor, target.ID)
	var dErr *domain.AuthzDeniedError
	require.True(t, errors.As(err, &dErr), "admin no alcanza para eliminar usuarios")

	require.NoError(t, uc.Delete(context.Background(), superAdmin(), target.ID))
	assert.Nil(t, repo.users[target.ID])
}

func TestUserList_AlcancePorPropiedad(t *testing.T) {
	repo := newFakeUserRepo()
	gerID := "ger-1"
	repo.users["ger-1"] = &entity.User{ID: "ger-1", Role: entity.RoleGerente, IsActive: true}
	repo.users["sub-1"] = &entity.User{ID: "sub-1", Role: entity.RoleOperador, ManagedBy: &gerID}
	repo.users["ajeno"] = &entity.User{ID: "ajeno", Role: entity.RoleOperador}
	uc := buildUserUC(repo, &fakeDispatcher{})

	out, err := uc.List(context.Background(), gerenteActor(), dto.PageRequest{})
	require.NoError(t, err)
	assert.Len(t, out.Items, 2, "el gerente ve su cuenta y sus supervisados")

	outAll, err := uc.List(context.Background(), superAdmin(), dto.PageRequest{})
	require.NoError(t, err)
	assert.Len(t, outAll.Items, 3, "admin+ ve todo")
}

func TestUserUpdate_ReasignacionDeRolPasaPorElGuard(t *testing.T) {
	repo := newFakeUserRepo()
	gerID := "ger-1"
	repo.users["sub-1"] = &entity.User{ID: "sub-1", Email: "s@portal.co", Role: entity.RoleReportero, ManagedBy: &gerID}
	uc := buildUserUC(repo, &fakeDispatcher{})

	// Subir a operador (rango 2 < gerente 3) permitido.
	out, err := uc.Update(context.Background(), gerenteActor(), "sub-1", dto.UpdateUserRequest{Role: "operador_bolsa"})
	require.NoError(t, err)
	assert.Equal(t, "operador_bolsa", out.Role)

	// Subir a gerente: el caso especial lo niega siempre.
	_, err = uc.Update(context.Background(), gerenteActor(), "sub-1", dto.UpdateUserRequest{Role: "gerente_territorial"})
	var dErr *domain.AuthzDeniedError
	assert.True(t, errors.As(err, &dErr))
}

func TestUserPasswordHash_EsVerificable(t *testing.T) {
	repo := newFakeUserRepo()
	uc := buildUserUC(repo, &fakeDispatcher{})

	out, err := uc.Create(context.Background(), superAdmin(), dto.CreateUserRequest{
		Email: "h@portal.co", Password: "secreta123", Role: "admin",
	})
	require.NoError(t, err)

	stored := repo.users[out.ID]
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(stored.PasswordHash), []byte("secreta123")))
}
