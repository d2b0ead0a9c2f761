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

// JobBoardUseCase casos de uso para bolsas de empleo (registro aprobable).
type JobBoardUseCase struct {
	repo    repository.JobBoardRepository
	machine *approval.UseCase
}

// NewJobBoardUseCase construye el caso de uso de bolsas de empleo.
func NewJobBoardUseCase(repo repository.JobBoardRepository, machine *approval.UseCase) *JobBoardUseCase {
	return &JobBoardUseCase{repo: repo, machine: machine}
}

// Create crea una bolsa de empleo por la máquina de aprobación. Un gerente
// territorial la crea pendiente; un admin+ la crea auto-aprobada.
func (uc *JobBoardUseCase) Create(ctx context.Context, actor *entity.User, in dto.CreateJobBoardRequest) (*dto.JobBoardResponse, error) {
	if in.Name == "" || in.Institution == "" {
		return nil, domain.Invalid("name", "name e institution son requeridos")
	}
	if d := authz.CanCreateRecord(actor, entity.KindBolsa); !d.Allowed {
		return nil, domain.Denied(d.Reason)
	}
	now := time.Now()
	board := &entity.JobBoard{
		ID:           uuid.New().String(),
		Name:         in.Name,
		Institution:  in.Institution,
		City:         in.City,
		ContactName:  in.ContactName,
		ContactEmail: in.ContactEmail,
		Capacity:     in.Capacity,
		CreatedBy:    actor.ID,
		ManagedBy:    actor.ManagedBy,
		Approval:     uc.machine.InitialState(actor),
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := uc.repo.Create(ctx, board); err != nil {
		return nil, err
	}
	if board.PendingApproval {
		uc.machine.NotifySubmitted(ctx, actor, entity.KindBolsa, board.ID, board.Name)
	}
	return toJobBoardResponse(board), nil
}

// GetByID obtiene una bolsa visible para el actor.
func (uc *JobBoardUseCase) GetByID(ctx context.Context, actor *entity.User, id string) (*dto.JobBoardResponse, error) {
	board, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, domain.Upstream(err)
	}
	if board == nil {
		return nil, domain.ErrNotFound
	}
	if d := authz.CanViewOrEditRecord(actor, board.CreatedBy, board.ManagedBy); !d.Allowed {
		return nil, domain.Denied(d.Reason)
	}
	return toJobBoardResponse(board), nil
}

// List lista bolsas de empleo con alcance por propiedad.
func (uc *JobBoardUseCase) List(ctx context.Context, actor *entity.User, page dto.PageRequest) (*dto.JobBoardListResponse, error) {
	page.DefaultPage()
	scope := repository.ScopeOwnedBy(actor.ID)
	if actor.Role.AtLeast(entity.RoleAdmin) {
		scope = repository.ScopeAll()
	}
	list, err := uc.repo.List(ctx, scope, page.Limit, page.Offset)
	if err != nil {
		return nil, domain.Upstream(err)
	}
	items := make([]dto.JobBoardResponse, 0, len(list))
	for _, b := range list {
		items = append(items, *toJobBoardResponse(b))
	}
	return &dto.JobBoardListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: page.Limit, Offset: page.Offset},
	}, nil
}

// Update edita los datos de la bolsa de empleo.
func (uc *JobBoardUseCase) Update(ctx context.Context, actor *entity.User, id string, in dto.UpdateJobBoardRequest) (*dto.JobBoardResponse, error) {
	board, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, domain.Upstream(err)
	}
	if board == nil {
		return nil, domain.ErrNotFound
	}
	if d := authz.CanViewOrEditRecord(actor, board.CreatedBy, board.ManagedBy); !d.Allowed {
		return nil, domain.Denied(d.Reason)
	}
	if in.Name != "" {
		board.Name = in.Name
	}
	if in.Institution != "" {
		board.Institution = in.Institution
	}
	board.City = in.City
	board.ContactName = in.ContactName
	board.ContactEmail = in.ContactEmail
	if in.Capacity > 0 {
		board.Capacity = in.Capacity
	}
	board.UpdatedAt = time.Now()
	if err := uc.repo.Update(ctx, board); err != nil {
		return nil, domain.Upstream(err)
	}
	return toJobBoardResponse(board), nil
}

func toJobBoardResponse(b *entity.JobBoard) *dto.JobBoardResponse {
	if b == nil {
		return nil
	}
	return &dto.JobBoardResponse{
		ID:           b.ID,
		Name:         b.Name,
		Institution:  b.Institution,
		City:         b.City,
		ContactName:  b.ContactName,
		ContactEmail: b.ContactEmail,
		Capacity:     b.Capacity,
		CreatedBy:    b.CreatedBy,
		ManagedBy:    b.ManagedBy,
		ApprovalState: dto.ApprovalState{
			IsApproved:      b.IsApproved,
			PendingApproval: b.PendingApproval,
			ApprovedBy:      b.ApprovedBy,
			ApprovedAt:      b.ApprovedAt,
		},
		CreatedAt: b.CreatedAt,
		UpdatedAt: b.UpdatedAt,
	}
}
