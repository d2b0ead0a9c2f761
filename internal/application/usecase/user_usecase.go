package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/jhoicas/Portal-empleo-api/internal/application/approval"
	"github.com/jhoicas/Portal-empleo-api/internal/application/dto"
	"github.com/jhoicas/Portal-empleo-api/internal/domain"
	"github.com/jhoicas/Portal-empleo-api/internal/domain/authz"
	"github.com/jhoicas/Portal-empleo-api/internal/domain/entity"
	"github.com/jhoicas/Portal-empleo-api/internal/domain/repository"
)

// UserUseCase casos de uso de gestión de usuarios: alta con aprobación, edición,
// borrado y listado con alcance por propiedad.
type UserUseCase struct {
	repo    repository.UserRepository
	machine *approval.UseCase
}

// NewUserUseCase construye el caso de uso de usuarios.
func NewUserUseCase(repo repository.UserRepository, machine *approval.UseCase) *UserUseCase {
	return &UserUseCase{repo: repo, machine: machine}
}

// Create crea un usuario subordinado al actor. El rol destino debe ser de rango
// estrictamente menor al del actor; el estado inicial lo decide la máquina de
// aprobación y, si queda pendiente, se notifica a los aprobadores.
func (uc *UserUseCase) Create(ctx context.Context, actor *entity.User, in dto.CreateUserRequest) (*dto.UserResponse, error) {
	if in.Email == "" || in.Password == "" {
		return nil, domain.Invalid("email", "email y password son requeridos")
	}
	if len(in.Password) < 8 {
		return nil, domain.Invalid("password", "debe tener al menos 8 caracteres")
	}
	role, ok := entity.ParseRole(in.Role)
	if !ok {
		return nil, domain.Invalid("role", "rol desconocido: "+in.Role)
	}
	if d := authz.CanAssignRole(actor, role); !d.Allowed {
		return nil, domain.Denied(d.Reason)
	}

	existing, err := uc.repo.GetByEmail(ctx, in.Email)
	if err != nil {
		return nil, domain.Upstream(err)
	}
	if existing != nil {
		return nil, &domain.DuplicateError{Field: "email"}
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, domain.Upstream(err)
	}
	name := in.Name
	if name == "" {
		name = in.Email
	}
	now := time.Now()
	user := &entity.User{
		ID:           uuid.New().String(),
		Email:        in.Email,
		PasswordHash: string(hash),
		Name:         name,
		Role:         role,
		ManagedBy:    &actor.ID,
		IsActive:     true,
		Approval:     uc.machine.InitialState(actor),
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := uc.repo.Create(ctx, user); err != nil {
		return nil, err
	}
	if user.PendingApproval {
		uc.machine.NotifySubmitted(ctx, actor, entity.KindUsuario, user.ID, user.Name)
	}
	return toUserResponse(user), nil
}

// GetByID obtiene un usuario visible para el actor (admin+, él mismo o su supervisor).
func (uc *UserUseCase) GetByID(ctx context.Context, actor *entity.User, id string) (*dto.UserResponse, error) {
	user, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, domain.Upstream(err)
	}
	if user == nil {
		return nil, domain.ErrNotFound
	}
	if d := authz.CanViewOrEditRecord(actor, user.ID, user.ManagedBy); !d.Allowed {
		return nil, domain.Denied(d.Reason)
	}
	return toUserResponse(user), nil
}

// List lista usuarios; los no-admin solo ven su propia cuenta y las que supervisan.
func (uc *UserUseCase) List(ctx context.Context, actor *entity.User, page dto.PageRequest) (*dto.UserListResponse, error) {
	page.DefaultPage()
	scope := repository.ScopeOwnedBy(actor.ID)
	if actor.Role.AtLeast(entity.RoleAdmin) {
		scope = repository.ScopeAll()
	}
	list, err := uc.repo.List(ctx, scope, page.Limit, page.Offset)
	if err != nil {
		return nil, domain.Upstream(err)
	}
	items := make([]dto.UserResponse, 0, len(list))
	for _, u := range list {
		items = append(items, *toUserResponse(u))
	}
	return &dto.UserListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: page.Limit, Offset: page.Offset},
	}, nil
}

// Update edita nombre, rol y estado activo. La reasignación de rol pasa por el
// mismo guard estricto que la creación.
func (uc *UserUseCase) Update(ctx context.Context, actor *entity.User, id string, in dto.UpdateUserRequest) (*dto.UserResponse, error) {
	user, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, domain.Upstream(err)
	}
	if user == nil {
		return nil, domain.ErrNotFound
	}
	if d := authz.CanViewOrEditRecord(actor, user.ID, user.ManagedBy); !d.Allowed {
		return nil, domain.Denied(d.Reason)
	}
	if in.Role != "" && entity.Role(in.Role) != user.Role {
		role, ok := entity.ParseRole(in.Role)
		if !ok {
			return nil, domain.Invalid("role", "rol desconocido: "+in.Role)
		}
		if d := authz.CanAssignRole(actor, role); !d.Allowed {
			return nil, domain.Denied(d.Reason)
		}
		user.Role = role
	}
	if in.Name != "" {
		user.Name = in.Name
	}
	if in.IsActive != nil {
		user.IsActive = *in.IsActive
	}
	user.UpdatedAt = time.Now()
	if err := uc.repo.Update(ctx, user); err != nil {
		return nil, domain.Upstream(err)
	}
	return toUserResponse(user), nil
}

// Delete elimina un usuario. Solo super_admin; la auto-eliminación se rechaza
// siempre como error de validación, sin importar el rango.
func (uc *UserUseCase) Delete(ctx context.Context, actor *entity.User, id string) error {
	if actor.ID == id {
		return domain.Invalid("id", "no puede eliminar su propia cuenta")
	}
	if d := authz.CanDeleteUser(actor, id); !d.Allowed {
		return domain.Denied(d.Reason)
	}
	user, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return domain.Upstream(err)
	}
	if user == nil {
		return domain.ErrNotFound
	}
	if err := uc.repo.Delete(ctx, id); err != nil {
		return domain.Upstream(err)
	}
	return nil
}

func toUserResponse(u *entity.User) *dto.UserResponse {
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
