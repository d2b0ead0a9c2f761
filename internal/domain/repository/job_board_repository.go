package repository

import (
	"context"

	"github.com/jhoicas/Portal-empleo-api/internal/domain/entity"
)

// JobBoardRepository define el puerto de persistencia para JobBoard (bolsa de empleo).
type JobBoardRepository interface {
	ApprovableStore

	Create(ctx context.Context, board *entity.JobBoard) error
	GetByID(ctx context.Context, id string) (*entity.JobBoard, error)
	Update(ctx context.Context, board *entity.JobBoard) error
	List(ctx context.Context, scope VisibilityScope, limit, offset int) ([]*entity.JobBoard, error)
}
