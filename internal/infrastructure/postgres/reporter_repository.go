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

var _ repository.ReporterRepository = (*ReporterRepo)(nil)

const reporterColumns = `id, name, document, email, phone, zone,
	created_by, managed_by, is_approved, pending_approval, approved_by, approved_at,
	created_at, updated_at`

// ReporterRepo implementación del puerto ReporterRepository sobre PostgreSQL.
type ReporterRepo struct {
	approvableSQL
	pool *pgxpool.Pool
}

// NewReporterRepository construye el adaptador de persistencia para reporteros.
func NewReporterRepository(pool *pgxpool.Pool) *ReporterRepo {
	return &ReporterRepo{
		approvableSQL: approvableSQL{pool: pool, table: "reporters", kind: entity.KindReporter},
		pool:          pool,
	}
}

// Create persiste un reportero. Devuelve DuplicateError{document} si el documento ya existe.
func (r *ReporterRepo) Create(ctx context.Context, reporter *entity.Reporter) error {
	query := `
		INSERT INTO reporters (` + reporterColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)`
	_, err := r.pool.Exec(ctx, query,
		reporter.ID, reporter.Name, reporter.Document, reporter.Email, reporter.Phone,
		reporter.Zone, reporter.CreatedBy, reporter.ManagedBy,
		reporter.IsApproved, reporter.PendingApproval, reporter.ApprovedBy, reporter.ApprovedAt,
		reporter.CreatedAt, reporter.UpdatedAt,
	)
	if err := translateUnique(err, "document"); err != nil {
		return fmt.Errorf("insert reporter: %w", err)
	}
	return nil
}

// GetByID obtiene un reportero por ID; nil si no existe.
func (r *ReporterRepo) GetByID(ctx context.Context, id string) (*entity.Reporter, error) {
	return r.getOne(ctx, `SELECT `+reporterColumns+` FROM reporters WHERE id = $1`, id)
}

// GetByDocument obtiene un reportero por documento; nil si no existe.
func (r *ReporterRepo) GetByDocument(ctx context.Context, document string) (*entity.Reporter, error) {
	return r.getOne(ctx, `SELECT `+reporterColumns+` FROM reporters WHERE document = $1 LIMIT 1`, document)
}

func (r *ReporterRepo) getOne(ctx context.Context, query string, arg any) (*entity.Reporter, error) {
	var rep entity.Reporter
	err := r.pool.QueryRow(ctx, query, arg).Scan(
		&rep.ID, &rep.Name, &rep.Document, &rep.Email, &rep.Phone, &rep.Zone,
		&rep.CreatedBy, &rep.ManagedBy, &rep.IsApproved, &rep.PendingApproval,
		&rep.ApprovedBy, &rep.ApprovedAt, &rep.CreatedAt, &rep.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get reporter: %w", err)
	}
	return &rep, nil
}

// Update actualiza los datos editables del reportero.
func (r *ReporterRepo) Update(ctx context.Context, reporter *entity.Reporter) error {
	query := `
		UPDATE reporters
		SET name = $2, email = $3, phone = $4, zone = $5, updated_at = $6
		WHERE id = $1`
	_, err := r.pool.Exec(ctx, query,
		reporter.ID, reporter.Name, reporter.Email, reporter.Phone, reporter.Zone, reporter.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update reporter: %w", err)
	}
	return nil
}

// List lista reporteros según el alcance de visibilidad.
func (r *ReporterRepo) List(ctx context.Context, scope repository.VisibilityScope, limit, offset int) ([]*entity.Reporter, error) {
	where, args := scopeClause("created_by", scope.All, scope.ActorID, 3)
	query := `
		SELECT ` + reporterColumns + ` FROM reporters
		WHERE ` + where + ` ORDER BY created_at DESC LIMIT $1 OFFSET $2`
	rows, err := r.pool.Query(ctx, query, append([]any{limit, offset}, args...)...)
	if err != nil {
		return nil, fmt.Errorf("list reporters: %w", err)
	}
	defer rows.Close()
	var list []*entity.Reporter
	for rows.Next() {
		var rep entity.Reporter
		if err := rows.Scan(
			&rep.ID, &rep.Name, &rep.Document, &rep.Email, &rep.Phone, &rep.Zone,
			&rep.CreatedBy, &rep.ManagedBy, &rep.IsApproved, &rep.PendingApproval,
			&rep.ApprovedBy, &rep.ApprovedAt, &rep.CreatedAt, &rep.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan reporter: %w", err)
		}
		list = append(list, &rep)
	}
	return list, rows.Err()
}
