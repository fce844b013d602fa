// Package session implements the LearningSession repository using PostgreSQL.
// The word-id snapshot is stored as a uuid[] column: membership is fixed at
// creation and survives later edits to the underlying words.
package session

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/wordwell/backend/internal/adapter/postgres"
	"github.com/wordwell/backend/internal/domain"
)

// Repo provides learning session persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new session repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

// ---------------------------------------------------------------------------
// SQL constants
// ---------------------------------------------------------------------------

const sessionColumns = `id, user_id, word_ids, session_type, completed, created_at`

const createSQL = `
INSERT INTO learning_sessions (id, user_id, word_ids, session_type, completed, created_at)
VALUES ($1, $2, $3, $4, false, $5)
RETURNING ` + sessionColumns

const getByIDSQL = `
SELECT ` + sessionColumns + `
FROM learning_sessions
WHERE id = $1 AND user_id = $2`

const markCompletedSQL = `
UPDATE learning_sessions
SET completed = true
WHERE id = $1 AND user_id = $2 AND completed = false
RETURNING ` + sessionColumns

const getByUserIDSQL = `
SELECT ` + sessionColumns + `
FROM learning_sessions
WHERE user_id = $1
ORDER BY created_at DESC
LIMIT $2 OFFSET $3`

const countByUserIDSQL = `
SELECT count(*) FROM learning_sessions WHERE user_id = $1`

const deleteStaleSQL = `
DELETE FROM learning_sessions
WHERE completed = false AND created_at < $1`

const countStaleSQL = `
SELECT count(*) FROM learning_sessions
WHERE completed = false AND created_at < $1`

// ---------------------------------------------------------------------------
// Read operations
// ---------------------------------------------------------------------------

// GetByID returns a session by primary key filtered by user_id.
// Returns domain.ErrNotFound if the session does not exist or belongs to another user.
func (r *Repo) GetByID(ctx context.Context, userID, sessionID uuid.UUID) (*domain.LearningSession, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	session, err := scanSession(querier.QueryRow(ctx, getByIDSQL, sessionID, userID))
	if err != nil {
		return nil, postgres.MapError(err, "session", sessionID)
	}

	return session, nil
}

// GetByUserID returns sessions for a user with pagination (newest-first).
// Returns sessions, total count, and error.
func (r *Repo) GetByUserID(ctx context.Context, userID uuid.UUID, limit, offset int) ([]*domain.LearningSession, int, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	var total int
	if err := querier.QueryRow(ctx, countByUserIDSQL, userID).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count sessions by user_id: %w", err)
	}

	rows, err := querier.Query(ctx, getByUserIDSQL, userID, limit, offset)
	if err != nil {
		return nil, 0, fmt.Errorf("get sessions by user_id: %w", err)
	}
	defer rows.Close()

	sessions := []*domain.LearningSession{}
	for rows.Next() {
		session, scanErr := scanSession(rows)
		if scanErr != nil {
			return nil, 0, fmt.Errorf("get sessions by user_id: %w", scanErr)
		}
		sessions = append(sessions, session)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, err
	}

	return sessions, total, nil
}

// ---------------------------------------------------------------------------
// Write operations
// ---------------------------------------------------------------------------

// Create inserts a new learning session and returns the persisted row.
// The completed flag always starts false regardless of the input value.
func (r *Repo) Create(ctx context.Context, session *domain.LearningSession) (*domain.LearningSession, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	now := time.Now().UTC().Truncate(time.Microsecond)

	row := querier.QueryRow(ctx, createSQL,
		session.ID,
		session.UserID,
		session.WordIDs,
		string(session.SessionKind),
		now,
	)

	created, err := scanSession(row)
	if err != nil {
		return nil, postgres.MapError(err, "session", session.ID)
	}

	return created, nil
}

// MarkCompleted flips the completed flag false→true. The WHERE guard makes
// the transition fire at most once: a second call returns domain.ErrConflict,
// and a missing or foreign session returns domain.ErrNotFound.
func (r *Repo) MarkCompleted(ctx context.Context, userID, sessionID uuid.UUID) (*domain.LearningSession, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	completed, err := scanSession(querier.QueryRow(ctx, markCompletedSQL, sessionID, userID))
	if err == nil {
		return completed, nil
	}
	if !errors.Is(err, pgx.ErrNoRows) {
		return nil, postgres.MapError(err, "session", sessionID)
	}

	// No row updated: distinguish "already completed" from "does not exist".
	existing, getErr := r.GetByID(ctx, userID, sessionID)
	if getErr != nil {
		return nil, getErr
	}
	if existing.Completed {
		return nil, fmt.Errorf("session %s already completed: %w", sessionID, domain.ErrConflict)
	}
	return nil, fmt.Errorf("session %s: %w", sessionID, domain.ErrNotFound)
}

// DeleteStale removes never-completed sessions created before the threshold
// and returns the number of deleted rows. Associated results are removed by
// the ON DELETE CASCADE constraint.
func (r *Repo) DeleteStale(ctx context.Context, threshold time.Time) (int64, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	ct, err := querier.Exec(ctx, deleteStaleSQL, threshold)
	if err != nil {
		return 0, postgres.MapError(err, "session", uuid.Nil)
	}

	return ct.RowsAffected(), nil
}

// CountStale reports how many sessions DeleteStale would remove for the
// same threshold. Used by the cleanup command's dry-run mode.
func (r *Repo) CountStale(ctx context.Context, threshold time.Time) (int64, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	var count int64
	if err := querier.QueryRow(ctx, countStaleSQL, threshold).Scan(&count); err != nil {
		return 0, postgres.MapError(err, "session", uuid.Nil)
	}

	return count, nil
}

// ---------------------------------------------------------------------------
// Row scanning helpers
// ---------------------------------------------------------------------------

func scanSession(row pgx.Row) (*domain.LearningSession, error) {
	var (
		session domain.LearningSession
		kind    string
	)

	if err := row.Scan(&session.ID, &session.UserID, &session.WordIDs,
		&kind, &session.Completed, &session.CreatedAt); err != nil {
		return nil, err
	}

	session.SessionKind = domain.SessionKind(kind)

	return &session, nil
}
