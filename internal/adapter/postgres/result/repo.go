// Package result implements the TestResult repository using PostgreSQL.
// Results are append-only: there is no update or delete path on this
// entity, and a unique (session_id, word_id) constraint backstops the
// one-result-per-word rule.
package result

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/wordwell/backend/internal/adapter/postgres"
	"github.com/wordwell/backend/internal/domain"
)

// Repo provides test result persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new result repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

// ---------------------------------------------------------------------------
// SQL constants
// ---------------------------------------------------------------------------

const resultColumns = `id, session_id, word_id, test_type, correct, user_answer, created_at`

const createSQL = `
INSERT INTO test_results (id, session_id, word_id, test_type, correct, user_answer, created_at)
VALUES ($1, $2, $3, $4, $5, $6, $7)
RETURNING ` + resultColumns

const listBySessionSQL = `
SELECT ` + resultColumns + `
FROM test_results
WHERE session_id = $1
ORDER BY created_at ASC, id ASC`

const countBySessionSQL = `
SELECT count(*) FROM test_results WHERE session_id = $1`

// ---------------------------------------------------------------------------
// Operations
// ---------------------------------------------------------------------------

// Create appends one result row and returns the persisted domain.TestResult.
// A duplicate (session, word) pair maps to domain.ErrAlreadyExists; a
// session id with no session row maps to domain.ErrNotFound.
func (r *Repo) Create(ctx context.Context, result *domain.TestResult) (*domain.TestResult, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	now := time.Now().UTC().Truncate(time.Microsecond)

	row := querier.QueryRow(ctx, createSQL,
		result.ID,
		result.SessionID,
		result.WordID,
		string(result.TestKind),
		result.Correct,
		result.UserAnswer,
		now,
	)

	created, err := scanResult(row)
	if err != nil {
		return nil, postgres.MapError(err, "result", result.ID)
	}

	return created, nil
}

// ListBySession returns a session's results in recording order.
func (r *Repo) ListBySession(ctx context.Context, sessionID uuid.UUID) ([]domain.TestResult, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	rows, err := querier.Query(ctx, listBySessionSQL, sessionID)
	if err != nil {
		return nil, fmt.Errorf("list results for session %s: %w", sessionID, err)
	}
	defer rows.Close()

	results := []domain.TestResult{}
	for rows.Next() {
		res, scanErr := scanResult(rows)
		if scanErr != nil {
			return nil, fmt.Errorf("list results for session %s: %w", sessionID, scanErr)
		}
		results = append(results, *res)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return results, nil
}

// CountBySession returns how many results a session has recorded so far.
// The count doubles as the current deck position for the sequential-advance
// rule.
func (r *Repo) CountBySession(ctx context.Context, sessionID uuid.UUID) (int, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	var count int
	if err := querier.QueryRow(ctx, countBySessionSQL, sessionID).Scan(&count); err != nil {
		return 0, fmt.Errorf("count results for session %s: %w", sessionID, err)
	}

	return count, nil
}

// ---------------------------------------------------------------------------
// Row scanning helpers
// ---------------------------------------------------------------------------

func scanResult(row pgx.Row) (*domain.TestResult, error) {
	var (
		res  domain.TestResult
		kind string
	)

	if err := row.Scan(&res.ID, &res.SessionID, &res.WordID,
		&kind, &res.Correct, &res.UserAnswer, &res.CreatedAt); err != nil {
		return nil, err
	}

	res.TestKind = domain.TestKind(kind)

	return &res, nil
}
