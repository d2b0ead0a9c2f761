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

// ReporterUseCase casos de uso para reporteros (registro aprobable).
type ReporterUseCase struct {
	repo    repository.ReporterRepository
	machine *approval.UseCase
}

// NewReporterUseCase construye el caso de uso de reporteros.
func NewReporterUseCase(repo repository.ReporterRepository, machine *approval.UseCase) *ReporterUseCase {
	return &ReporterUseCase{repo: repo, machine: machine}
}

// Create crea un reportero por la máquina de aprobación.
func (uc *ReporterUseCase) Create(ctx context.Context, actor *entity.User, in dto.CreateReporterRequest) (*dto.ReporterResponse, error) {
	if in.Name == "" || in.Document == "" {
		return nil, domain.Invalid("document", "name y document son requeridos")
	}
	if d := authz.CanCreateRecord(actor, entity.KindReporter); !d.Allowed {
		return nil, domain.Denied(d.Reason)
	}
	existing, err := uc.repo.GetByDocument(ctx, in.Document)
	if err != nil {
		return nil, domain.Upstream(err)
	}
	if existing != nil {
		return nil, &domain.DuplicateError{Field: "document"}
	}
	now := time.Now()
	reporter := &entity.Reporter{
		ID:        uuid.New().String(),
		Name:      in.Name,
		Document:  in.Document,
		Email:     in.Email,
		Phone:     in.Phone,
		Zone:      in.Zone,
		CreatedBy: actor.ID,
		ManagedBy: actor.ManagedBy,
		Approval:  uc.machine.InitialState(actor),
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := uc.repo.Create(ctx, reporter); err != nil {
		return nil, err
	}
	if reporter.PendingApproval {
		uc.machine.NotifySubmitted(ctx, actor, entity.KindReporter, reporter.ID, reporter.Name)
	}
	return toReporterResponse(reporter), nil
}

// GetByID obtiene un reportero visible para el actor.
func (uc *ReporterUseCase) GetByID(ctx context.Context, actor *entity.User, id string) (*dto.ReporterResponse, error) {
	reporter, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, domain.Upstream(err)
	}
	if reporter == nil {
		return nil, domain.ErrNotFound
	}
	if d := authz.CanViewOrEditRecord(actor, reporter.CreatedBy, reporter.ManagedBy); !d.Allowed {
		return nil, domain.Denied(d.Reason)
	}
	return toReporterResponse(reporter), nil
}

// List lista reporteros con alcance por propiedad.
func (uc *ReporterUseCase) List(ctx context.Context, actor *entity.User, page dto.PageRequest) (*dto.ReporterListResponse, error) {
	page.DefaultPage()
	scope := repository.ScopeOwnedBy(actor.ID)
	if actor.Role.AtLeast(entity.RoleAdmin) {
		scope = repository.ScopeAll()
	}
	list, err := uc.repo.List(ctx, scope, page.Limit, page.Offset)
	if err != nil {
		return nil, domain.Upstream(err)
	}
	items := make([]dto.ReporterResponse, 0, len(list))
	for _, r := range list {
		items = append(items, *toReporterResponse(r))
	}
	return &dto.ReporterListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: page.Limit, Offset: page.Offset},
	}, nil
}

// Update edita los datos de contacto y zona del reportero.
func (uc *ReporterUseCase) Update(ctx context.Context, actor *entity.User, id string, in dto.UpdateReporterRequest) (*dto.ReporterResponse, error) {
	reporter, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, domain.Upstream(err)
	}
	if reporter == nil {
		return nil, domain.ErrNotFound
	}
	if d := authz.CanViewOrEditRecord(actor, reporter.CreatedBy, reporter.ManagedBy); !d.Allowed {
		return nil, domain.Denied(d.Reason)
	}
	if in.Name != "" {
		reporter.Name = in.Name
	}
	reporter.Email = in.Email
	reporter.Phone = in.Phone
	reporter.Zone = in.Zone
	reporter.UpdatedAt = time.Now()
	if err := uc.repo.Update(ctx, reporter); err != nil {
		return nil, domain.Upstream(err)
	}
	return toReporterResponse(reporter), nil
}

func toReporterResponse(r *entity.Reporter) *dto.ReporterResponse {
	if r == nil {
		return nil
	}
	return &dto.ReporterResponse{
		ID:       r.ID,
		Name:     r.Name,
		Document: r.Document,
		Email:    r.Email,
		Phone:    r.Phone,
		Zone:     r.Zone,

		CreatedBy: r.CreatedBy,
		ManagedBy: r.ManagedBy,
		ApprovalState: dto.ApprovalState{
			IsApproved:      r.IsApproved,
			PendingApproval: r.PendingApproval,
			ApprovedBy:      r.ApprovedBy,
			ApprovedAt:      r.ApprovedAt,
		},
		CreatedAt: r.CreatedAt,
		UpdatedAt: r.UpdatedAt,
	}
}
