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

var _ repository.AgentRepository = (*AgentRepo)(nil)

const agentColumns = `id, name, document, email, phone, departamento, municipio,
	created_by, managed_by, is_approved, pending_approval, approved_by, approved_at,
	created_at, updated_at`

// AgentRepo implementación del puerto AgentRepository sobre PostgreSQL.
type AgentRepo struct {
	approvableSQL
	pool *pgxpool.Pool
}

// NewAgentRepository construye el adaptador de persistencia para agentes territoriales.
func NewAgentRepository(pool *pgxpool.Pool) *AgentRepo {
	return &AgentRepo{
		approvableSQL: approvableSQL{pool: pool, table: "agents", kind: entity.KindAgente},
		pool:          pool,
	}
}

// Create persiste un agente. Devuelve DuplicateError{document} si el documento ya existe.
func (r *AgentRepo) Create(ctx context.Context, agent *entity.Agent) error {
	query := `
		INSERT INTO agents (` + agentColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15)`
	_, err := r.pool.Exec(ctx, query,
		agent.ID, agent.Name, agent.Document, agent.Email, agent.Phone,
		agent.Departamento, agent.Municipio, agent.CreatedBy, agent.ManagedBy,
		agent.IsApproved, agent.PendingApproval, agent.ApprovedBy, agent.ApprovedAt,
		agent.CreatedAt, agent.UpdatedAt,
	)
	if err := translateUnique(err, "document"); err != nil {
		return fmt.Errorf("insert agent: %w", err)
	}
	return nil
}

// GetByID obtiene un agente por ID; nil si no existe.
func (r *AgentRepo) GetByID(ctx context.Context, id string) (*entity.Agent, error) {
	return r.getOne(ctx, `SELECT `+agentColumns+` FROM agents WHERE id = $1`, id)
}

// GetByDocument obtiene un agente por documento; nil si no existe.
func (r *AgentRepo) GetByDocument(ctx context.Context, document string) (*entity.Agent, error) {
	return r.getOne(ctx, `SELECT `+agentColumns+` FROM agents WHERE document = $1 LIMIT 1`, document)
}

func (r *AgentRepo) getOne(ctx context.Context, query string, arg any) (*entity.Agent, error) {
	var a entity.Agent
	err := r.pool.QueryRow(ctx, query, arg).Scan(
		&a.ID, &a.Name, &a.Document, &a.Email, &a.Phone, &a.Departamento, &a.Municipio,
		&a.CreatedBy, &a.ManagedBy, &a.IsApproved, &a.PendingApproval, &a.ApprovedBy,
		&a.ApprovedAt, &a.CreatedAt, &a.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get agent: %w", err)
	}
	return &a, nil
}

// Update actualiza los datos editables del agente.
func (r *AgentRepo) Update(ctx context.Context, agent *entity.Agent) error {
	query := `
		UPDATE agents
		SET name = $2, email = $3, phone = $4, departamento = $5, municipio = $6, updated_at = $7
		WHERE id = $1`
	_, err := r.pool.Exec(ctx, query,
		agent.ID, agent.Name, agent.Email, agent.Phone,
		agent.Departamento, agent.Municipio, agent.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update agent: %w", err)
	}
	return nil
}

// List lista agentes según el alcance de visibilidad.
func (r *AgentRepo) List(ctx context.Context, scope repository.VisibilityScope, limit, offset int) ([]*entity.Agent, error) {
	where, args := scopeClause("created_by", scope.All, scope.ActorID, 3)
	query := `
		SELECT ` + agentColumns + ` FROM agents
		WHERE ` + where + ` ORDER BY created_at DESC LIMIT $1 OFFSET $2`
	rows, err := r.pool.Query(ctx, query, append([]any{limit, offset}, args...)...)
	if err != nil {
		return nil, fmt.Errorf("list agents: %w", err)
	}
	defer rows.Close()
	var list []*entity.Agent
	for rows.Next() {
		var a entity.Agent
		if err := rows.Scan(
			&a.ID, &a.Name, &a.Document, &a.Email, &a.Phone, &a.Departamento, &a.Municipio,
			&a.CreatedBy, &a.ManagedBy, &a.IsApproved, &a.PendingApproval, &a.ApprovedBy,
			&a.ApprovedAt, &a.CreatedAt, &a.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan agent: %w", err)
		}
		list = append(list, &a)
	}
	return list, rows.Err()
}
