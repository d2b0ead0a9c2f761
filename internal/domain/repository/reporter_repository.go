package repository

import (
	"context"

	"github.com/jhoicas/Portal-empleo-api/internal/domain/entity"
)

// ReporterRepository define el puerto de persistencia para Reporter.
type ReporterRepository interface {
	ApprovableStore

	Create(ctx context.Context, reporter *entity.Reporter) error
	GetByID(ctx context.Context, id string) (*entity.Reporter, error)
	GetByDocument(ctx context.Context, document string) (*entity.Reporter, error)
	Update(ctx context.Context, reporter *entity.Reporter) error
	List(ctx context.Context, scope VisibilityScope, limit, offset int) ([]*entity.Reporter, error)
}
