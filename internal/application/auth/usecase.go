package auth

import (
	"context"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/jhoicas/Portal-empleo-api/internal/application/dto"
	"github.com/jhoicas/Portal-empleo-api/internal/domain"
	"github.com/jhoicas/Portal-empleo-api/internal/domain/authz"
	"github.com/jhoicas/Portal-empleo-api/internal/domain/entity"
	"github.com/jhoicas/Portal-empleo-api/internal/domain/repository"
	"github.com/jhoicas/Portal-empleo-api/pkg/jwt"
)

// JWTConfig configuración para generación de tokens.
type JWTConfig struct {
	Secret     string
	ExpMinutes int
	Issuer     string
}

// AuthUseCase casos de uso de autenticación: login y cambio de contraseña.
type AuthUseCase struct {
	userRepo repository.UserRepository
	jwtCfg   JWTConfig
}

// NewAuthUseCase construye el caso de uso de auth.
func NewAuthUseCase(userRepo repository.UserRepository, jwtCfg JWTConfig) *AuthUseCase {
	return &AuthUseCase{userRepo: userRepo, jwtCfg: jwtCfg}
}

// Login verifica email/password, genera JWT y retorna token + usuario.
// Cuentas inactivas o aún pendientes de aprobación no pueden iniciar sesión.
func (uc *AuthUseCase) Login(ctx context.Context, in dto.LoginRequest) (*dto.LoginResponse, error) {
	user, err := uc.userRepo.GetByEmail(ctx, in.Email)
	if err != nil {
		return nil, domain.Upstream(err)
	}
	if user == nil {
		return nil, domain.ErrUserNotFound
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(in.Password)); err != nil {
		return nil, domain.ErrUnauthorized
	}
	if !user.IsActive || user.PendingApproval {
		return nil, domain.ErrForbidden
	}
	token, err := jwt.Generate(uc.jwtCfg.Secret, user.ID, string(user.Role), uc.jwtCfg.Issuer, uc.jwtCfg.ExpMinutes)
	if err != nil {
		return nil, domain.Upstream(err)
	}
	return &dto.LoginResponse{
		Token: token,
		User:  *ToUserResponse(user),
	}, nil
}

// ChangePassword cambia la contraseña del usuario destino.
// admin+ cambia la de cualquiera sin verificar la actual; el cambio propio exige
// verificar la contraseña vigente primero.
func (uc *AuthUseCase) ChangePassword(ctx context.Context, actor *entity.User, targetID string, in dto.ChangePasswordRequest) error {
	if d := authz.CanChangePassword(actor, targetID); !d.Allowed {
		return domain.Denied(d.Reason)
	}
	if len(in.NewPassword) < 8 {
		return domain.Invalid("new_password", "debe tener al menos 8 caracteres")
	}
	if in.NewPassword != in.ConfirmPassword {
		return domain.Invalid("confirm_password", "la confirmación no coincide")
	}

	target, err := uc.userRepo.GetByID(ctx, targetID)
	if err != nil {
		return domain.Upstream(err)
	}
	if target == nil {
		return domain.ErrNotFound
	}

	// Solo el cambio propio verifica la contraseña actual.
	if actor.ID == targetID {
		if err := bcrypt.CompareHashAndPassword([]byte(target.PasswordHash), []byte(in.CurrentPassword)); err != nil {
			return domain.Invalid("current_password", "la contraseña actual no es válida")
		}
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.NewPassword), bcrypt.DefaultCost)
	if err != nil {
		return domain.Upstream(err)
	}
	if err := uc.userRepo.UpdatePassword(ctx, targetID, string(hash), time.Now()); err != nil {
		return domain.Upstream(err)
	}
	return nil
}

// ToUserResponse convierte la entidad a su representación pública.
func ToUserResponse(u *entity.User) *dto.UserResponse {
	if u == nil {
		return nil
	}
	return &dto.UserResponse{
		ID:        u.ID,
		Email:     u.Email,
		Name:      u.Name,
		Role:      string(u.Role),
		ManagedBy: u.ManagedBy,
		IsActive:  u.IsActive,
		ApprovalState: dto.ApprovalState{
			IsApproved:      u.IsApproved,
			PendingApproval: u.PendingApproval,
			ApprovedBy:      u.ApprovedBy,
			ApprovedAt:      u.ApprovedAt,
		},
		CreatedAt: u.CreatedAt,
		UpdatedAt: u.UpdatedAt,
	}
}
