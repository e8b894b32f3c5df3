package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/Dileepadari/placement-navigator/pkg/model"
)

// CreateUser inserts the user, an empty profile and the default viewer role
// in one transaction.
func (r *Repository) CreateUser(ctx context.Context, email, passwordHash, fullName string) (uuid.UUID, error) {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return uuid.Nil, fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback(ctx)

	var id uuid.UUID
	const insertUser = `
INSERT INTO users (email, password_hash) VALUES ($1, $2) RETURNING id`
	if err := tx.QueryRow(ctx, insertUser, email, passwordHash).Scan(&id); err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return uuid.Nil, fmt.Errorf("email already exists: %w", err)
		}
		return uuid.Nil, fmt.Errorf("insert user: %w", err)
	}

	const insertProfile = `
INSERT INTO profiles (user_id, email, full_name) VALUES ($1, $2, NULLIF($3, ''))`
	if _, err := tx.Exec(ctx, insertProfile, id, email, fullName); err != nil {
		return uuid.Nil, fmt.Errorf("insert profile: %w", err)
	}

	const insertRole = `
INSERT INTO user_roles (user_id, role) VALUES ($1, 'viewer')`
	if _, err := tx.Exec(ctx, insertRole, id); err != nil {
		return uuid.Nil, fmt.Errorf("insert role: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return uuid.Nil, fmt.Errorf("commit tx: %w", err)
	}
	return id, nil
}

func (r *Repository) GetUserByEmail(ctx context.Context, email string) (*model.User, error) {
	const q = `
SELECT id, email, password_hash, created_at, updated_at
FROM users
WHERE email = $1`

	var u model.User
	row := r.db.QueryRow(ctx, q, email)
	if err := row.Scan(&u.ID, &u.Email, &u.PasswordHash, &u.CreatedAt, &u.UpdatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("user not found: %w", err)
		}
		return nil, fmt.Errorf("scan user by email: %w", err)
	}
	return &u, nil
}

func (r *Repository) GetUserByID(ctx context.Context, id uuid.UUID) (*model.User, error) {
	const q = `
SELECT id, email, password_hash, created_at, updated_at
FROM users
WHERE id = $1`

	var u model.User
	row := r.db.QueryRow(ctx, q, id)
	if err := row.Scan(&u.ID, &u.Email, &u.PasswordHash, &u.CreatedAt, &u.UpdatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("user not found: %w", err)
		}
		return nil, fmt.Errorf("scan user by id: %w", err)
	}
	return &u, nil
}

// GetUserRole returns the user's role, defaulting to viewer when no row
// exists.
func (r *Repository) GetUserRole(ctx context.Context, userID uuid.UUID) (model.AppRole, error) {
	const q = `SELECT role FROM user_roles WHERE user_id = $1`

	var role model.AppRole
	if err := r.db.QueryRow(ctx, q, userID).Scan(&role); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.RoleViewer, nil
		}
		return "", fmt.Errorf("scan user role: %w", err)
	}
	return role, nil
}
