package repository

import (
	"context"
	"time"

	"github.com/jhoicas/Portal-empleo-api/internal/domain/entity"
)

// UserRepository define el puerto de persistencia para User (DIP).
type UserRepository interface {
	ApprovableStore

	Create(ctx context.Context, user *entity.User) error
	GetByID(ctx context.Context, id string) (*entity.User, error)
	GetByEmail(ctx context.Context, email string) (*entity.User, error)
	Update(ctx context.Context, user *entity.User) error
	UpdatePassword(ctx context.Context, id, passwordHash string, at time.Time) error
	List(ctx context.Context, scope VisibilityScope, limit, offset int) ([]*entity.User, error)
	Delete(ctx context.Context, id string) error
	// ListActiveApproverIDs ids de usuarios activos con rango admin o superior,
	// evaluados en el instante de la llamada (snapshot de destinatarios).
	ListActiveApproverIDs(ctx context.Context) ([]string, error)
}
