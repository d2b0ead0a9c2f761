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

// AgentUseCase casos de uso para agentes territoriales (registro aprobable).
// Crear un agente exige rango superior a gerente territorial, es decir admin+,
// por lo que en la práctica todo agente nace auto-aprobado salvo redistribución
// de rangos futura.
type AgentUseCase struct {
	repo    repository.AgentRepository
	machine *approval.UseCase
}

// NewAgentUseCase construye el caso de uso de agentes.
func NewAgentUseCase(repo repository.AgentRepository, machine *approval.UseCase) *AgentUseCase {
	return &AgentUseCase{repo: repo, machine: machine}
}

// Create crea un agente territorial por la máquina de aprobación.
func (uc *AgentUseCase) Create(ctx context.Context, actor *entity.User, in dto.CreateAgentRequest) (*dto.AgentResponse, error) {
	if in.Name == "" || in.Document == "" {
		return nil, domain.Invalid("document", "name y document son requeridos")
	}
	if d := authz.CanCreateRecord(actor, entity.KindAgente); !d.Allowed {
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
	agent := &entity.Agent{
		ID:           uuid.New().String(),
		Name:         in.Name,
		Document:     in.Document,
		Email:        in.Email,
		Phone:        in.Phone,
		Departamento: in.Departamento,
		Municipio:    in.Municipio,
		CreatedBy:    actor.ID,
		ManagedBy:    actor.ManagedBy,
		Approval:     uc.machine.InitialState(actor),
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := uc.repo.Create(ctx, agent); err != nil {
		return nil, err
	}
	if agent.PendingApproval {
		uc.machine.NotifySubmitted(ctx, actor, entity.KindAgente, agent.ID, agent.Name)
	}
	return toAgentResponse(agent), nil
}

// GetByID obtiene un agente visible para el actor.
func (uc *AgentUseCase) GetByID(ctx context.Context, actor *entity.User, id string) (*dto.AgentResponse, error) {
	agent, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, domain.Upstream(err)
	}
	if agent == nil {
		return nil, domain.ErrNotFound
	}
	if d := authz.CanViewOrEditRecord(actor, agent.CreatedBy, agent.ManagedBy); !d.Allowed {
		return nil, domain.Denied(d.Reason)
	}
	return toAgentResponse(agent), nil
}

// List lista agentes con alcance por propiedad.
func (uc *AgentUseCase) List(ctx context.Context, actor *entity.User, page dto.PageRequest) (*dto.AgentListResponse, error) {
	page.DefaultPage()
	scope := repository.ScopeOwnedBy(actor.ID)
	if actor.Role.AtLeast(entity.RoleAdmin) {
		scope = repository.ScopeAll()
	}
	list, err := uc.repo.List(ctx, scope, page.Limit, page.Offset)
	if err != nil {
		return nil, domain.Upstream(err)
	}
	items := make([]dto.AgentResponse, 0, len(list))
	for _, a := range list {
		items = append(items, *toAgentResponse(a))
	}
	return &dto.AgentListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: page.Limit, Offset: page.Offset},
	}, nil
}

// Update edita los datos de contacto y zona del agente.
func (uc *AgentUseCase) Update(ctx context.Context, actor *entity.User, id string, in dto.UpdateAgentRequest) (*dto.AgentResponse, error) {
	agent, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, domain.Upstream(err)
	}
	if agent == nil {
		return nil, domain.ErrNotFound
	}
	if d := authz.CanViewOrEditRecord(actor, agent.CreatedBy, agent.ManagedBy); !d.Allowed {
		return nil, domain.Denied(d.Reason)
	}
	if in.Name != "" {
		agent.Name = in.Name
	}
	agent.Email = in.Email
	agent.Phone = in.Phone
	agent.Departamento = in.Departamento
	agent.Municipio = in.Municipio
	agent.UpdatedAt = time.Now()
	if err := uc.repo.Update(ctx, agent); err != nil {
		return nil, domain.Upstream(err)
	}
	return toAgentResponse(agent), nil
}

func toAgentResponse(a *entity.Agent) *dto.AgentResponse {
	if a == nil {
		return nil
	}
	return &dto.AgentResponse{
		ID:           a.ID,
		Name:         a.Name,
		Document:     a.Document,
		Email:        a.Email,
		Phone:        a.Phone,
		Departamento: a.Departamento,
		Municipio:    a.Municipio,
		CreatedBy:    a.CreatedBy,
		ManagedBy:    a.ManagedBy,
		ApprovalState: dto.ApprovalState{
			IsApproved:      a.IsApproved,
			PendingApproval: a.PendingApproval,
			ApprovedBy:      a.ApprovedBy,
			ApprovedAt:      a.ApprovedAt,
		},
		CreatedAt: a.CreatedAt,
		UpdatedAt: a.UpdatedAt,
	}
}
