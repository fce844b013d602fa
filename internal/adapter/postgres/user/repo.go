// Package user implements the User repository using PostgreSQL.
package user

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/wordwell/backend/internal/adapter/postgres"
	"github.com/wordwell/backend/internal/domain"
)

// Repo provides user persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new user repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

const userColumns = `id, email, password_hash, created_at`

const createSQL = `
INSERT INTO users (id, email, password_hash, created_at)
VALUES ($1, lower($2), $3, $4)
RETURNING ` + userColumns

const getByIDSQL = `
SELECT ` + userColumns + `
FROM users
WHERE id = $1`

const getByEmailSQL = `
SELECT ` + userColumns + `
FROM users
WHERE email = lower($1)`

// Create inserts a new user. Emails are stored lowercased; a duplicate
// email maps to domain.ErrAlreadyExists via the unique constraint.
func (r *Repo) Create(ctx context.Context, u *domain.User) (*domain.User, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	now := time.Now().UTC().Truncate(time.Microsecond)

	row := querier.QueryRow(ctx, createSQL, u.ID, u.Email, u.PasswordHash, now)

	created, err := scanUser(row)
	if err != nil {
		return nil, postgres.MapError(err, "user", u.ID)
	}

	return created, nil
}

// GetByID returns a user by primary key.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	u, err := scanUser(querier.QueryRow(ctx, getByIDSQL, id))
	if err != nil {
		return nil, postgres.MapError(err, "user", id)
	}

	return u, nil
}

// GetByEmail returns a user by email (case-insensitive).
func (r *Repo) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	u, err := scanUser(querier.QueryRow(ctx, getByEmailSQL, email))
	if err != nil {
		return nil, postgres.MapError(err, "user", uuid.Nil)
	}

	return u, nil
}

func scanUser(row pgx.Row) (*domain.User, error) {
	var u domain.User
	if err := row.Scan(&u.ID, &u.Email, &u.PasswordHash, &u.CreatedAt); err != nil {
		return nil, err
	}
	return &u, nil
}
