package testhelper

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/wordwell/backend/internal/domain"
)

// uniqueSuffix returns a short unique string for generating non-conflicting test data.
func uniqueSuffix() string {
	return uuid.New().String()[:8]
}

// SeedUser creates a user row and returns the filled domain.User.
func SeedUser(t *testing.T, pool *pgxpool.Pool) domain.User {
	t.Helper()
	ctx := context.Background()

	suffix := uniqueSuffix()
	now := time.Now().UTC().Truncate(time.Microsecond)
	user := domain.User{
		ID:           uuid.New(),
		Email:        "testuser-" + suffix + "@example.com",
		PasswordHash: "$2a$10$" + suffix, // not a real hash; repos never verify it
		CreatedAt:    now,
	}

	_, err := pool.Exec(ctx,
		`INSERT INTO users (id, email, password_hash, created_at)
		 VALUES ($1, $2, $3, $4)`,
		user.ID, user.Email, user.PasswordHash, user.CreatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedUser insert user: %v", err)
	}

	return user
}

// WordSpec controls optional fields of a seeded word.
type WordSpec struct {
	Original     string
	Translation  string
	SourceLang   string
	TargetLang   string
	LanguageCode *string // nil seeds a legacy row without a grouping code
}

// SeedWord inserts one word row for the user and returns it as stored.
// Zero-value spec fields get usable defaults.
func SeedWord(t *testing.T, pool *pgxpool.Pool, userID uuid.UUID, spec WordSpec) domain.Word {
	t.Helper()
	ctx := context.Background()

	suffix := uniqueSuffix()
	if spec.Original == "" {
		spec.Original = "word-" + suffix
	}
	if spec.Translation == "" {
		spec.Translation = "translation-" + suffix
	}
	if spec.SourceLang == "" {
		spec.SourceLang = "en"
	}
	if spec.TargetLang == "" {
		spec.TargetLang = "es"
	}

	now := time.Now().UTC().Truncate(time.Microsecond)
	word := domain.Word{
		ID:             uuid.New(),
		UserID:         userID,
		OriginalWord:   spec.Original,
		Translation:    spec.Translation,
		SourceLanguage: spec.SourceLang,
		TargetLanguage: spec.TargetLang,
		CreatedAt:      now,
	}

	code := ""
	if spec.LanguageCode != nil {
		code = *spec.LanguageCode
	}
	word.LanguageCode = domain.ResolveLanguageCode(code, word.TargetLanguage)

	_, err := pool.Exec(ctx,
		`INSERT INTO words (id, user_id, original_word, translation, source_language, target_language, language_code, created_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
		word.ID, word.UserID, word.OriginalWord, word.Translation,
		word.SourceLanguage, word.TargetLanguage, spec.LanguageCode, word.CreatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedWord insert: %v", err)
	}

	return word
}

// SeedSession inserts a learning session snapshotting the given word ids.
func SeedSession(t *testing.T, pool *pgxpool.Pool, userID uuid.UUID, kind domain.SessionKind, wordIDs []uuid.UUID) domain.LearningSession {
	t.Helper()
	ctx := context.Background()

	now := time.Now().UTC().Truncate(time.Microsecond)
	session := domain.LearningSession{
		ID:          uuid.New(),
		UserID:      userID,
		WordIDs:     wordIDs,
		SessionKind: kind,
		CreatedAt:   now,
	}

	_, err := pool.Exec(ctx,
		`INSERT INTO learning_sessions (id, user_id, word_ids, session_type, completed, created_at)
		 VALUES ($1, $2, $3, $4, false, $5)`,
		session.ID, session.UserID, session.WordIDs, string(session.SessionKind), session.CreatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedSession insert: %v", err)
	}

	return session
}
