package auth_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/jhoicas/Portal-empleo-api/internal/application/auth"
	"github.com/jhoicas/Portal-empleo-api/internal/application/dto"
	"github.com/jhoicas/Portal-empleo-api/internal/domain"
	"github.com/jhoicas/Portal-empleo-api/internal/domain/entity"
	"github.com/jhoicas/Portal-empleo-api/internal/domain/repository"
	pkgjwt "github.com/jhoicas/Portal-empleo-api/pkg/jwt"
)

// fakeUserRepo solo implementa lo que auth consulta.
type fakeUserRepo struct {
	repository.UserRepository
	users map[string]*entity.User
}

func (r *fakeUserRepo) GetByEmail(_ context.Context, email string) (*entity.User, error) {
	for _, u := range r.users {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, nil
}

func (r *fakeUserRepo) GetByID(_ context.Context, id string) (*entity.User, error) {
	return r.users[id], nil
}

func (r *fakeUserRepo) UpdatePassword(_ context.Context, id, hash string, at time.Time) error {
	if u, ok := r.users[id]; ok {
		u.PasswordHash = hash
		u.UpdatedAt = at
	}
	return nil
}

func hashOf(t *testing.T, password string) string {
	t.Helper()
	h, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)
	return string(h)
}

func testCfg() auth.JWTConfig {
	return auth.JWTConfig{Secret: "test-secret", ExpMinutes: 60, Issuer: "portal-empleo-test"}
}

func TestLogin_Exitoso(t *testing.T) {
	repo := &fakeUserRepo{users: map[string]*entity.User{
		"u1": {
			ID: "u1", Email: "adm@portal.co", PasswordHash: hashOf(t, "secreta123"),
			Name: "Admin", Role: entity.RoleAdmin, IsActive: true,
			Approval: entity.AutoApproved(),
		},
	}}
	uc := auth.NewAuthUseCase(repo, testCfg())

	out, err := uc.Login(context.Background(), dto.LoginRequest{Email: "adm@portal.co", Password: "secreta123"})
	require.NoError(t, err)
	assert.NotEmpty(t, out.Token)
	assert.Equal(t, "admin", out.User.Role)

	userID, role, err := pkgjwt.Parse("test-secret", out.Token)
	require.NoError(t, err)
	assert.Equal(t, "u1", userID)
	assert.Equal(t, "admin", role)
}

func TestLogin_PasswordIncorrecta(t *testing.T) {
	repo := &fakeUserRepo{users: map[string]*entity.User{
		"u1": {ID: "u1", Email: "a@portal.co", PasswordHash: hashOf(t, "correcta"), IsActive: true},
	}}
	uc := auth.NewAuthUseCase(repo, testCfg())

	_, err := uc.Login(context.Background(), dto.LoginRequest{Email: "a@portal.co", Password: "equivocada"})
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
}

func TestLogin_EmailInexistente(t *testing.T) {
	uc := auth.NewAuthUseCase(&fakeUserRepo{users: map[string]*entity.User{}}, testCfg())
	_, err := uc.Login(context.Background(), dto.LoginRequest{Email: "nadie@portal.co", Password: "x"})
	assert.ErrorIs(t, err, domain.ErrUserNotFound)
}

func TestLogin_CuentaInactivaOPendiente(t *testing.T) {
	repo := &fakeUserRepo{users: map[string]*entity.User{
		"inactivo": {
			ID: "inactivo", Email: "off@portal.co", PasswordHash: hashOf(t, "secreta123"),
			IsActive: false, Approval: entity.AutoApproved(),
		},
		"pendiente": {
			ID: "pendiente", Email: "pend@portal.co", PasswordHash: hashOf(t, "secreta123"),
			IsActive: true, Approval: entity.PendingInitial(),
		},
	}}
	uc := auth.NewAuthUseCase(repo, testCfg())

	_, err := uc.Login(context.Background(), dto.LoginRequest{Email: "off@portal.co", Password: "secreta123"})
	assert.ErrorIs(t, err, domain.ErrForbidden, "cuenta inactiva no inicia sesión")

	_, err = uc.Login(context.Background(), dto.LoginRequest{Email: "pend@portal.co", Password: "secreta123"})
	assert.ErrorIs(t, err, domain.ErrForbidden, "cuenta pendiente de aprobación no inicia sesión")
}

func TestChangePassword_PropioVerificaLaActual(t *testing.T) {
	repo := &fakeUserRepo{users: map[string]*entity.User{
		"u1": {ID: "u1", Email: "u@portal.co", PasswordHash: hashOf(t, "vieja1234"), Role: entity.RoleOperador, IsActive: true},
	}}
	uc := auth.NewAuthUseCase(repo, testCfg())
	actor := repo.users["u1"]

	err := uc.ChangePassword(context.Background(), actor, "u1", dto.ChangePasswordRequest{
		CurrentPassword: "equivocada",
		NewPassword:     "nueva12345",
		ConfirmPassword: "nueva12345",
	})
	var vErr *domain.ValidationError
	require.True(t, errors.As(err, &vErr), "la contraseña actual debe verificarse en el cambio propio")

	err = uc.ChangePassword(context.Background(), actor, "u1", dto.ChangePasswordRequest{
		CurrentPassword: "vieja1234",
		NewPassword:     "nueva12345",
		ConfirmPassword: "nueva12345",
	})
	require.NoError(t, err)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(repo.users["u1"].PasswordHash), []byte("nueva12345")))
}

func TestChangePassword_AdminNoNecesitaLaActual(t *testing.T) {
	repo := &fakeUserRepo{users: map[string]*entity.User{
		"u1": {ID: "u1", Email: "u@portal.co", PasswordHash: hashOf(t, "vieja1234"), Role: entity.RoleOperador, IsActive: true},
	}}
	uc := auth.NewAuthUseCase(repo, testCfg())
	adminActor := &entity.User{ID: "adm-1", Role: entity.RoleAdmin, IsActive: true}

	err := uc.ChangePassword(context.Background(), adminActor, "u1", dto.ChangePasswordRequest{
		NewPassword:     "reseteada99",
		ConfirmPassword: "reseteada99",
	})
	require.NoError(t, err)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(repo.users["u1"].PasswordHash), []byte("reseteada99")))
}

func TestChangePassword_AjenaSinPrivilegios(t *testing.T) {
	repo := &fakeUserRepo{users: map[string]*entity.User{
		"u1": {ID: "u1", PasswordHash: hashOf(t, "vieja1234"), Role: entity.RoleOperador},
	}}
	uc := auth.NewAuthUseCase(repo, testCfg())
	otro := &entity.User{ID: "u2", Role: entity.RoleOperador, IsActive: true}

	err := uc.ChangePassword(context.Background(), otro, "u1", dto.ChangePasswordRequest{
		NewPassword: "nueva12345", ConfirmPassword: "nueva12345",
	})
	var dErr *domain.AuthzDeniedError
	assert.True(t, errors.As(err, &dErr))
}

func TestChangePassword_Validaciones(t *testing.T) {
	repo := &fakeUserRepo{users: map[string]*entity.User{
		"u1": {ID: "u1", PasswordHash: hashOf(t, "vieja1234"), Role: entity.RoleOperador},
	}}
	uc := auth.NewAuthUseCase(repo, testCfg())
	adminActor := &entity.User{ID: "adm-1", Role: entity.RoleAdmin, IsActive: true}

	var vErr *domain.ValidationError

	err := uc.ChangePassword(context.Background(), adminActor, "u1", dto.ChangePasswordRequest{
		NewPassword: "corta", ConfirmPassword: "corta",
	})
	assert.True(t, errors.As(err, &vErr), "mínimo 8 caracteres")

	err = uc.ChangePassword(context.Background(), adminActor, "u1", dto.ChangePasswordRequest{
		NewPassword: "nueva12345", ConfirmPassword: "distinta123",
	})
	assert.True(t, errors.As(err, &vErr), "la confirmación debe coincidir")
}
