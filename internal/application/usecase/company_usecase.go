package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/Portal-empleo-api/internal/application/approval"
	"github.com/jhoicas/Portal-empleo-api/internal/application/dto"
	"github.com/jhoicas/Portal-empleo-api/internal/domain"
	"github.com/jhoicas/Portal-empleo-api/internal/domain/authz"
	"github.com/jhoicas/Portal-empleo-api/internal/domain/entity"
	"github.com/jhoicas/Portal-empleo-api/internal/domain/repository"
)

// CompanyUseCase casos de uso para empresas (registro aprobable).
type CompanyUseCase struct {
	repo    repository.CompanyRepository
	machine *approval.UseCase
}

// NewCompanyUseCase construye el caso de uso con el puerto de persistencia.
func NewCompanyUseCase(repo repository.CompanyRepository, machine *approval.UseCase) *CompanyUseCase {
	return &CompanyUseCase{repo: repo, machine: machine}
}

// Create crea una empresa. El estado inicial lo decide la máquina de aprobación:
// creador admin+ auto-aprueba; cualquier otro queda pendiente y se notifica.
func (uc *CompanyUseCase) Create(ctx context.Context, actor *entity.User, in dto.CreateCompanyRequest) (*dto.CompanyResponse, error) {
	if in.Name == "" || in.NIT == "" {
		return nil, domain.Invalid("nit", "name y nit son requeridos")
	}
	if d := authz.CanCreateRecord(actor, entity.KindEmpresa); !d.Allowed {
		return nil, domain.Denied(d.Reason)
	}
	existing, err := uc.repo.GetByNIT(ctx, in.NIT)
	if err != nil {
		return nil, domain.Upstream(err)
	}
	if existing != nil {
		return nil, &domain.DuplicateError{Field: "nit"}
	}
	now := time.Now()
	company := &entity.Company{
		ID:        uuid.New().String(),
		Name:      in.Name,
		NIT:       in.NIT,
		Address:   in.Address,
		Phone:     in.Phone,
		Email:     in.Email,
		Sector:    in.Sector,
		Capital:   in.Capital,
		CreatedBy: actor.ID,
		ManagedBy: actor.ManagedBy,
		Approval:  uc.machine.InitialState(actor),
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := uc.repo.Create(ctx, company); err != nil {
		return nil, err
	}
	if company.PendingApproval {
		uc.machine.NotifySubmitted(ctx, actor, entity.KindEmpresa, company.ID, company.Name)
	}
	return toCompanyResponse(company), nil
}

// GetByID obtiene una empresa visible para el actor.
func (uc *CompanyUseCase) GetByID(ctx context.Context, actor *entity.User, id string) (*dto.CompanyResponse, error) {
	company, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, domain.Upstream(err)
	}
	if company == nil {
		return nil, domain.ErrNotFound
	}
	if d := authz.CanViewOrEditRecord(actor, company.CreatedBy, company.ManagedBy); !d.Allowed {
		return nil, domain.Denied(d.Reason)
	}
	return toCompanyResponse(company), nil
}

// List lista empresas con alcance por propiedad.
func (uc *CompanyUseCase) List(ctx context.Context, actor *entity.User, page dto.PageRequest) (*dto.CompanyListResponse, error) {
	page.DefaultPage()
	scope := repository.ScopeOwnedBy(actor.ID)
	if actor.Role.AtLeast(entity.RoleAdmin) {
		scope = repository.ScopeAll()
	}
	list, err := uc.repo.List(ctx, scope, page.Limit, page.Offset)
	if err != nil {
		return nil, domain.Upstream(err)
	}
	items := make([]dto.CompanyResponse, 0, len(list))
	for _, c := range list {
		items = append(items, *toCompanyResponse(c))
	}
	return &dto.CompanyListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: page.Limit, Offset: page.Offset},
	}, nil
}

// Update edita los campos de la empresa. Los campos de aprobación solo los muta la
// máquina de estados, nunca una edición.
func (uc *CompanyUseCase) Update(ctx context.Context, actor *entity.User, id string, in dto.UpdateCompanyRequest) (*dto.CompanyResponse, error) {
	company, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, domain.Upstream(err)
	}
	if company == nil {
		return nil, domain.ErrNotFound
	}
	if d := authz.CanViewOrEditRecord(actor, company.CreatedBy, company.ManagedBy); !d.Allowed {
		return nil, domain.Denied(d.Reason)
	}
	if in.Name != "" {
		company.Name = in.Name
	}
	company.Address = in.Address
	company.Phone = in.Phone
	company.Email = in.Email
	company.Sector = in.Sector
	if !in.Capital.IsZero() {
		company.Capital = in.Capital
	}
	company.UpdatedAt = time.Now()
	if err := uc.repo.Update(ctx, company); err != nil {
		return nil, domain.Upstream(err)
	}
	return toCompanyResponse(company), nil
}

func toCompanyResponse(c *entity.Company) *dto.CompanyResponse {
	if c == nil {
		return nil
	}
	return &dto.CompanyResponse{
		ID:        c.ID,
		Name:      c.Name,
		NIT:       c.NIT,
		Address:   c.Address,
		Phone:     c.Phone,
		Email:     c.Email,
		Sector:    c.Sector,
		Capital:   c.Capital,
		CreatedBy: c.CreatedBy,
		ManagedBy: c.ManagedBy,
		ApprovalState: dto.ApprovalState{
			IsApproved:      c.IsApproved,
			PendingApproval: c.PendingApproval,
			ApprovedBy:      c.ApprovedBy,
			ApprovedAt:      c.ApprovedAt,
		},
		CreatedAt: c.CreatedAt,
		UpdatedAt: c.UpdatedAt,
	}
}
