package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/jhoicas/Portal-empleo-api/internal/domain/entity"
	"github.com/jhoicas/Portal-empleo-api/internal/domain/repository"
)

var _ repository.UserRepository = (*UserRepo)(nil)

const userColumns = `id, email, password_hash, name, role, managed_by, is_active,
	is_approved, pending_approval, approved_by, approved_at, created_at, updated_at`

// UserRepo implementación del puerto UserRepository sobre PostgreSQL.
type UserRepo struct {
	approvableSQL
	pool *pgxpool.Pool
}

// NewUserRepository construye el adaptador de persistencia para usuarios.
func NewUserRepository(pool *pgxpool.Pool) *UserRepo {
	return &UserRepo{
		approvableSQL: approvableSQL{
			pool:          pool,
			table:         "users",
			kind:          entity.KindUsuario,
			createdByExpr: "COALESCE(managed_by::text, '')",
		},
		pool: pool,
	}
}

// Create persiste un nuevo usuario. Devuelve DuplicateError{email} si el email ya existe.
func (r *UserRepo) Create(ctx context.Context, user *entity.User) error {
	query := `
		INSERT INTO users (` + userColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)`
	_, err := r.pool.Exec(ctx, query,
		user.ID, user.Email, user.PasswordHash, user.Name, string(user.Role), user.ManagedBy,
		user.IsActive, user.IsApproved, user.PendingApproval, user.ApprovedBy, user.ApprovedAt,
		user.CreatedAt, user.UpdatedAt,
	)
	if err := translateUnique(err, "email"); err != nil {
		return fmt.Errorf("insert user: %w", err)
	}
	return nil
}

// GetByID obtiene un usuario por ID; nil si no existe.
func (r *UserRepo) GetByID(ctx context.Context, id string) (*entity.User, error) {
	return r.getOne(ctx, `SELECT `+userColumns+` FROM users WHERE id = $1`, id)
}

// GetByEmail obtiene un usuario por email; nil si no existe.
func (r *UserRepo) GetByEmail(ctx context.Context, email string) (*entity.User, error) {
	return r.getOne(ctx, `SELECT `+userColumns+` FROM users WHERE email = $1 LIMIT 1`, email)
}

func (r *UserRepo) getOne(ctx context.Context, query string, arg any) (*entity.User, error) {
	var u entity.User
	var role string
	err := r.pool.QueryRow(ctx, query, arg).Scan(
		&u.ID, &u.Email, &u.PasswordHash, &u.Name, &role, &u.ManagedBy, &u.IsActive,
		&u.IsApproved, &u.PendingApproval, &u.ApprovedBy, &u.ApprovedAt,
		&u.CreatedAt, &u.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get user: %w", err)
	}
	u.Role = entity.Role(role)
	return &u, nil
}

// Update actualiza email, nombre, rol y estado activo. Los campos de aprobación se
// mutan únicamente vía ApproveIfPending.
func (r *UserRepo) Update(ctx context.Context, user *entity.User) error {
	query := `
		UPDATE users SET email = $2, name = $3, role = $4, is_active = $5, updated_at = $6
		WHERE id = $1`
	_, err := r.pool.Exec(ctx, query,
		user.ID, user.Email, user.Name, string(user.Role), user.IsActive, user.UpdatedAt,
	)
	if err := translateUnique(err, "email"); err != nil {
		return fmt.Errorf("update user: %w", err)
	}
	return nil
}

// UpdatePassword cambia solo el hash de contraseña.
func (r *UserRepo) UpdatePassword(ctx context.Context, id, passwordHash string, at time.Time) error {
	_, err := r.pool.Exec(ctx,
		`UPDATE users SET password_hash = $2, updated_at = $3 WHERE id = $1`,
		id, passwordHash, at,
	)
	if err != nil {
		return fmt.Errorf("update password: %w", err)
	}
	return nil
}

// List lista usuarios según el alcance de visibilidad: sin restricción para admin+,
// o la propia cuenta más las supervisadas.
func (r *UserRepo) List(ctx context.Context, scope repository.VisibilityScope, limit, offset int) ([]*entity.User, error) {
	where, args := scopeClause("id", scope.All, scope.ActorID, 3)
	query := `
		SELECT ` + userColumns + ` FROM users
		WHERE ` + where + ` ORDER BY created_at DESC LIMIT $1 OFFSET $2`
	rows, err := r.pool.Query(ctx, query, append([]any{limit, offset}, args...)...)
	if err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}
	defer rows.Close()
	var list []*entity.User
	for rows.Next() {
		var u entity.User
		var role string
		if err := rows.Scan(
			&u.ID, &u.Email, &u.PasswordHash, &u.Name, &role, &u.ManagedBy, &u.IsActive,
			&u.IsApproved, &u.PendingApproval, &u.ApprovedBy, &u.ApprovedAt,
			&u.CreatedAt, &u.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan user: %w", err)
		}
		u.Role = entity.Role(role)
		list = append(list, &u)
	}
	return list, rows.Err()
}

// Delete elimina un usuario por ID.
func (r *UserRepo) Delete(ctx context.Context, id string) error {
	_, err := r.pool.Exec(ctx, `DELETE FROM users WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete user: %w", err)
	}
	return nil
}

// ListActiveApproverIDs ids de usuarios activos con rango admin o superior, evaluados
// ahora. Es el snapshot de destinatarios de una notificación nueva.
func (r *UserRepo) ListActiveApproverIDs(ctx context.Context) ([]string, error) {
	query := `SELECT id FROM users WHERE role IN ($1, $2) AND is_active = TRUE`
	rows, err := r.pool.Query(ctx, query, string(entity.RoleAdmin), string(entity.RoleSuperAdmin))
	if err != nil {
		return nil, fmt.Errorf("list approvers: %w", err)
	}
	defer rows.Close()
	var ids []string
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("scan approver: %w", err)
		}
		ids = append(ids, id)
	}
	return ids, rows.Err()
}
