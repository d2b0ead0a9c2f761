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

var _ repository.JobBoardRepository = (*JobBoardRepo)(nil)

const jobBoardColumns = `id, name, institution, city, contact_name, contact_email, capacity,
	created_by, managed_by, is_approved, pending_approval, approved_by, approved_at,
	created_at, updated_at`

// JobBoardRepo implementación del puerto JobBoardRepository sobre PostgreSQL.
type JobBoardRepo struct {
	approvableSQL
	pool *pgxpool.Pool
}

// NewJobBoardRepository construye el adaptador de persistencia para bolsas de empleo.
func NewJobBoardRepository(pool *pgxpool.Pool) *JobBoardRepo {
	return &JobBoardRepo{
		approvableSQL: approvableSQL{pool: pool, table: "job_boards", kind: entity.KindBolsa},
		pool:          pool,
	}
}

// Create persiste una bolsa de empleo.
func (r *JobBoardRepo) Create(ctx context.Context, board *entity.JobBoard) error {
	query := `
		INSERT INTO job_boards (` + jobBoardColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15)`
	_, err := r.pool.Exec(ctx, query,
		board.ID, board.Name, board.Institution, board.City, board.ContactName,
		board.ContactEmail, board.Capacity, board.CreatedBy, board.ManagedBy,
		board.IsApproved, board.PendingApproval, board.ApprovedBy, board.ApprovedAt,
		board.CreatedAt, board.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert job board: %w", err)
	}
	return nil
}

// GetByID obtiene una bolsa por ID; nil si no existe.
func (r *JobBoardRepo) GetByID(ctx context.Context, id string) (*entity.JobBoard, error) {
	var b entity.JobBoard
	query := `SELECT ` + jobBoardColumns + ` FROM job_boards WHERE id = $1`
	err := r.pool.QueryRow(ctx, query, id).Scan(
		&b.ID, &b.Name, &b.Institution, &b.City, &b.ContactName, &b.ContactEmail, &b.Capacity,
		&b.CreatedBy, &b.ManagedBy, &b.IsApproved, &b.PendingApproval, &b.ApprovedBy,
		&b.ApprovedAt, &b.CreatedAt, &b.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get job board: %w", err)
	}
	return &b, nil
}

// Update actualiza los datos editables de la bolsa.
func (r *JobBoardRepo) Update(ctx context.Context, board *entity.JobBoard) error {
	query := `
		UPDATE job_boards
		SET name = $2, institution = $3, city = $4, contact_name = $5, contact_email = $6,
		    capacity = $7, updated_at = $8
		WHERE id = $1`
	_, err := r.pool.Exec(ctx, query,
		board.ID, board.Name, board.Institution, board.City, board.ContactName,
		board.ContactEmail, board.Capacity, board.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update job board: %w", err)
	}
	return nil
}

// List lista bolsas según el alcance de visibilidad.
func (r *JobBoardRepo) List(ctx context.Context, scope repository.VisibilityScope, limit, offset int) ([]*entity.JobBoard, error) {
	where, args := scopeClause("created_by", scope.All, scope.ActorID, 3)
	query := `
		SELECT ` + jobBoardColumns + ` FROM job_boards
		WHERE ` + where + ` ORDER BY created_at DESC LIMIT $1 OFFSET $2`
	rows, err := r.pool.Query(ctx, query, append([]any{limit, offset}, args...)...)
	if err != nil {
		return nil, fmt.Errorf("list job boards: %w", err)
	}
	defer rows.Close()
	var list []*entity.JobBoard
	for rows.Next() {
		var b entity.JobBoard
		if err := rows.Scan(
			&b.ID, &b.Name, &b.Institution, &b.City, &b.ContactName, &b.ContactEmail, &b.Capacity,
			&b.CreatedBy, &b.ManagedBy, &b.IsApproved, &b.PendingApproval, &b.ApprovedBy,
			&b.ApprovedAt, &b.CreatedAt, &b.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan job board: %w", err)
		}
		list = append(list, &b)
	}
	return list, rows.Err()
}
