package repository

import (
	"context"

	"github.com/jhoicas/Portal-empleo-api/internal/domain/entity"
)

// AgentRepository define el puerto de persistencia para Agent (agente territorial).
type AgentRepository interface {
	ApprovableStore

	Create(ctx context.Context, agent *entity.Agent) error
	GetByID(ctx context.Context, id string) (*entity.Agent, error)
	GetByDocument(ctx context.Context, document string) (*entity.Agent, error)
	Update(ctx context.Context, agent *entity.Agent) error
	List(ctx context.Context, scope VisibilityScope, limit, offset int) ([]*entity.Agent, error)
}
