package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/jhoicas/Portal-empleo-api/internal/domain/entity"
	"github.com/jhoicas/Portal-empleo-api/internal/domain/repository"
)

var _ repository.CompanyRepository = (*CompanyRepo)(nil)

const companyColumns = `id, name, nit, address, phone, email, sector, capital,
	created_by, managed_by, is_approved, pending_approval, approved_by, approved_at,
	created_at, updated_at`

// CompanyRepo implementación del puerto CompanyRepository sobre PostgreSQL.
type CompanyRepo struct {
	approvableSQL
	pool *pgxpool.Pool
}

// NewCompanyRepository construye el adaptador de persistencia para empresas.
func NewCompanyRepository(pool *pgxpool.Pool) *CompanyRepo {
	return &CompanyRepo{
		approvableSQL: approvableSQL{pool: pool, table: "companies", kind: entity.KindEmpresa},
		pool:          pool,
	}
}

// Create persiste una empresa. Devuelve DuplicateError{nit} si el NIT ya existe.
func (r *CompanyRepo) Create(ctx context.Context, company *entity.Company) error {
	query := `
		INSERT INTO companies (` + companyColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16)`
	_, err := r.pool.Exec(ctx, query,
		company.ID, company.Name, company.NIT, company.Address, company.Phone, company.Email,
		company.Sector, company.Capital, company.CreatedBy, company.ManagedBy,
		company.IsApproved, company.PendingApproval, company.ApprovedBy, company.ApprovedAt,
		company.CreatedAt, company.UpdatedAt,
	)
	if err := translateUnique(err, "nit"); err != nil {
		return fmt.Errorf("insert company: %w", err)
	}
	return nil
}

// GetByID obtiene una empresa por ID; nil si no existe.
func (r *CompanyRepo) GetByID(ctx context.Context, id string) (*entity.Company, error) {
	return r.getOne(ctx, `SELECT `+companyColumns+` FROM companies WHERE id = $1`, id)
}

// GetByNIT obtiene una empresa por NIT; nil si no existe.
func (r *CompanyRepo) GetByNIT(ctx context.Context, nit string) (*entity.Company, error) {
	return r.getOne(ctx, `SELECT `+companyColumns+` FROM companies WHERE nit = $1 LIMIT 1`, nit)
}

func (r *CompanyRepo) getOne(ctx context.Context, query string, arg any) (*entity.Company, error) {
	var c entity.Company
	err := r.pool.QueryRow(ctx, query, arg).Scan(
		&c.ID, &c.Name, &c.NIT, &c.Address, &c.Phone, &c.Email, &c.Sector, &c.Capital,
		&c.CreatedBy, &c.ManagedBy, &c.IsApproved, &c.PendingApproval, &c.ApprovedBy,
		&c.ApprovedAt, &c.CreatedAt, &c.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get company: %w", err)
	}
	return &c, nil
}

// Update actualiza los datos editables de la empresa.
func (r *CompanyRepo) Update(ctx context.Context, company *entity.Company) error {
	query := `
		UPDATE companies
		SET name = $2, address = $3, phone = $4, email = $5, sector = $6, capital = $7, updated_at = $8
		WHERE id = $1`
	_, err := r.pool.Exec(ctx, query,
		company.ID, company.Name, company.Address, company.Phone, company.Email,
		company.Sector, company.Capital, company.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update company: %w", err)
	}
	return nil
}

// List lista empresas según el alcance de visibilidad.
func (r *CompanyRepo) List(ctx context.Context, scope repository.VisibilityScope, limit, offset int) ([]*entity.Company, error) {
	where, args := scopeClause("created_by", scope.All, scope.ActorID, 3)
	query := `
		SELECT ` + companyColumns + ` FROM companies
		WHERE ` + where + ` ORDER BY created_at DESC LIMIT $1 OFFSET $2`
	rows, err := r.pool.Query(ctx, query, append([]any{limit, offset}, args...)...)
	if err != nil {
		return nil, fmt.Errorf("list companies: %w", err)
	}
	defer rows.Close()
	var list []*entity.Company
	for rows.Next() {
		var c entity.Company
		if err := rows.Scan(
			&c.ID, &c.Name, &c.NIT, &c.Address, &c.Phone, &c.Email, &c.Sector, &c.Capital,
			&c.CreatedBy, &c.ManagedBy, &c.IsApproved, &c.PendingApproval, &c.ApprovedBy,
			&c.ApprovedAt, &c.CreatedAt, &c.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan company: %w", err)
		}
		list = append(list, &c)
	}
	return list, rows.Err()
}
