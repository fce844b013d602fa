// Package word implements the Word repository using PostgreSQL.
// Queries are built with squirrel: the deck filter matches either the
// grouping code or the legacy target-language column, and the same OR
// condition drives bulk deck deletion.
package word

import (
	"context"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/wordwell/backend/internal/adapter/postgres"
	"github.com/wordwell/backend/internal/domain"
)

// Repo provides word persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new word repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

const wordsTable = "words"

var wordColumns = []string{
	"id", "user_id", "original_word", "translation",
	"source_language", "target_language", "language_code", "audio_url", "created_at",
}

// builder is the squirrel statement builder with PostgreSQL placeholders.
var builder = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

// deckFilter matches words belonging to a language deck: rows whose
// grouping code equals the requested code, or legacy rows whose
// target-language column does while the grouping code is unset.
func deckFilter(userID uuid.UUID, code domain.LanguageCode) sq.Sqlizer {
	return sq.And{
		sq.Eq{"user_id": userID},
		sq.Or{
			sq.Eq{"language_code": code},
			sq.Eq{"target_language": code},
		},
	}
}

// ---------------------------------------------------------------------------
// Read operations
// ---------------------------------------------------------------------------

// GetByID returns a word by primary key filtered by user_id.
// Returns domain.ErrNotFound if the word does not exist or belongs to another user.
func (r *Repo) GetByID(ctx context.Context, userID, wordID uuid.UUID) (*domain.Word, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	query, args, err := builder.
		Select(wordColumns...).
		From(wordsTable).
		Where(sq.Eq{"id": wordID, "user_id": userID}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("word %s: build query: %w", wordID, err)
	}

	word, err := scanWord(querier.QueryRow(ctx, query, args...))
	if err != nil {
		return nil, postgres.MapError(err, "word", wordID)
	}

	return word, nil
}

// ListByUser returns all words for a user, newest-first.
func (r *Repo) ListByUser(ctx context.Context, userID uuid.UUID) ([]domain.Word, error) {
	query, args, err := builder.
		Select(wordColumns...).
		From(wordsTable).
		Where(sq.Eq{"user_id": userID}).
		OrderBy("created_at DESC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("list words: build query: %w", err)
	}

	return r.list(ctx, query, args)
}

// ListByLanguage returns the user's words for one language deck, newest-first.
// An empty result is not an error.
func (r *Repo) ListByLanguage(ctx context.Context, userID uuid.UUID, code domain.LanguageCode) ([]domain.Word, error) {
	query, args, err := builder.
		Select(wordColumns...).
		From(wordsTable).
		Where(deckFilter(userID, code)).
		OrderBy("created_at DESC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("list words by language: build query: %w", err)
	}

	return r.list(ctx, query, args)
}

// GetByIDs returns the subset of the given words owned by the user.
// Order follows the ids argument; missing ids are silently skipped so a
// session deck survives later word deletions.
func (r *Repo) GetByIDs(ctx context.Context, userID uuid.UUID, ids []uuid.UUID) ([]domain.Word, error) {
	if len(ids) == 0 {
		return []domain.Word{}, nil
	}

	query, args, err := builder.
		Select(wordColumns...).
		From(wordsTable).
		Where(sq.Eq{"user_id": userID, "id": ids}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("get words by ids: build query: %w", err)
	}

	fetched, err := r.list(ctx, query, args)
	if err != nil {
		return nil, err
	}

	byID := make(map[uuid.UUID]domain.Word, len(fetched))
	for _, w := range fetched {
		byID[w.ID] = w
	}

	ordered := make([]domain.Word, 0, len(fetched))
	for _, id := range ids {
		if w, ok := byID[id]; ok {
			ordered = append(ordered, w)
		}
	}

	return ordered, nil
}

// CountByLanguage returns per-deck word counts for a user, largest first.
// Legacy rows without a grouping code are bucketed under their
// target-language column.
func (r *Repo) CountByLanguage(ctx context.Context, userID uuid.UUID) ([]domain.LanguageCount, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	query, args, err := builder.
		Select("COALESCE(NULLIF(language_code, ''), target_language) AS code", "count(*)").
		From(wordsTable).
		Where(sq.Eq{"user_id": userID}).
		GroupBy("code").
		OrderBy("count(*) DESC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("count by language: build query: %w", err)
	}

	rows, err := querier.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("count by language: %w", err)
	}
	defer rows.Close()

	counts := []domain.LanguageCount{}
	for rows.Next() {
		var c domain.LanguageCount
		if err := rows.Scan(&c.LanguageCode, &c.Count); err != nil {
			return nil, fmt.Errorf("count by language: scan: %w", err)
		}
		counts = append(counts, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("count by language: %w", err)
	}

	return counts, nil
}

// ---------------------------------------------------------------------------
// Write operations
// ---------------------------------------------------------------------------

// Create inserts a new word and returns the persisted domain.Word.
func (r *Repo) Create(ctx context.Context, word *domain.Word) (*domain.Word, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	now := time.Now().UTC().Truncate(time.Microsecond)

	query, args, err := builder.
		Insert(wordsTable).
		Columns("id", "user_id", "original_word", "translation",
			"source_language", "target_language", "language_code", "audio_url", "created_at").
		Values(word.ID, word.UserID, word.OriginalWord, word.Translation,
			word.SourceLanguage, word.TargetLanguage, word.LanguageCode, word.AudioURL, now).
		Suffix("RETURNING " + columnList()).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("word %s: build insert: %w", word.ID, err)
	}

	created, err := scanWord(querier.QueryRow(ctx, query, args...))
	if err != nil {
		return nil, postgres.MapError(err, "word", word.ID)
	}

	return created, nil
}

// UpdateTexts updates a word's original text and translation.
// Returns domain.ErrNotFound if the word does not exist or belongs to another user.
func (r *Repo) UpdateTexts(ctx context.Context, userID, wordID uuid.UUID, original, translation string) (*domain.Word, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	query, args, err := builder.
		Update(wordsTable).
		Set("original_word", original).
		Set("translation", translation).
		Where(sq.Eq{"id": wordID, "user_id": userID}).
		Suffix("RETURNING " + columnList()).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("word %s: build update: %w", wordID, err)
	}

	updated, err := scanWord(querier.QueryRow(ctx, query, args...))
	if err != nil {
		return nil, postgres.MapError(err, "word", wordID)
	}

	return updated, nil
}

// Delete removes a single word.
// Returns domain.ErrNotFound if nothing was deleted.
func (r *Repo) Delete(ctx context.Context, userID, wordID uuid.UUID) error {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	query, args, err := builder.
		Delete(wordsTable).
		Where(sq.Eq{"id": wordID, "user_id": userID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("word %s: build delete: %w", wordID, err)
	}

	ct, err := querier.Exec(ctx, query, args...)
	if err != nil {
		return postgres.MapError(err, "word", wordID)
	}
	if ct.RowsAffected() == 0 {
		return fmt.Errorf("word %s: %w", wordID, domain.ErrNotFound)
	}

	return nil
}

// DeleteByLanguage removes an entire language deck for a user and returns
// the number of deleted rows. Deleting an empty deck is not an error.
func (r *Repo) DeleteByLanguage(ctx context.Context, userID uuid.UUID, code domain.LanguageCode) (int64, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	query, args, err := builder.
		Delete(wordsTable).
		Where(deckFilter(userID, code)).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("delete language deck %s: build delete: %w", code, err)
	}

	ct, err := querier.Exec(ctx, query, args...)
	if err != nil {
		return 0, postgres.MapError(err, "word", uuid.Nil)
	}

	return ct.RowsAffected(), nil
}

// ---------------------------------------------------------------------------
// Row scanning helpers
// ---------------------------------------------------------------------------

func columnList() string {
	s := wordColumns[0]
	for _, c := range wordColumns[1:] {
		s += ", " + c
	}
	return s
}

func (r *Repo) list(ctx context.Context, query string, args []any) ([]domain.Word, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	rows, err := querier.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query words: %w", err)
	}
	defer rows.Close()

	return scanWords(rows)
}

// scanWord scans a single word row. The nullable grouping column is
// resolved to the legacy target-language field here, so core logic never
// sees an unset code.
func scanWord(row pgx.Row) (*domain.Word, error) {
	var (
		w            domain.Word
		languageCode *string
	)

	if err := row.Scan(&w.ID, &w.UserID, &w.OriginalWord, &w.Translation,
		&w.SourceLanguage, &w.TargetLanguage, &languageCode, &w.AudioURL, &w.CreatedAt); err != nil {
		return nil, err
	}

	code := ""
	if languageCode != nil {
		code = *languageCode
	}
	w.LanguageCode = domain.ResolveLanguageCode(code, w.TargetLanguage)

	return &w, nil
}

func scanWords(rows pgx.Rows) ([]domain.Word, error) {
	words := []domain.Word{}
	for rows.Next() {
		w, err := scanWord(rows)
		if err != nil {
			return nil, fmt.Errorf("scan word: %w", err)
		}
		words = append(words, *w)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return words, nil
}
