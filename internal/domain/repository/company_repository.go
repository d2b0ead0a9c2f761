package repository

import (
	"context"

	"github.com/jhoicas/Portal-empleo-api/internal/domain/entity"
)

// CompanyRepository define el puerto de persistencia para Company.
type CompanyRepository interface {
	ApprovableStore

	Create(ctx context.Context, company *entity.Company) error
	GetByID(ctx context.Context, id string) (*entity.Company, error)
	GetByNIT(ctx context.Context, nit string) (*entity.Company, error)
	Update(ctx context.Context, company *entity.Company) error
	List(ctx context.Context, scope VisibilityScope, limit, offset int) ([]*entity.Company, error)
}
