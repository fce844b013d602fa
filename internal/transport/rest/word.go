package rest

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/wordwell/backend/internal/domain"
	"github.com/wordwell/backend/internal/service/word"
)

// wordService defines the minimal interface needed by WordHandler.
type wordService interface {
	AddWord(ctx context.Context, input word.AddWordInput) (*domain.Word, error)
	GetWord(ctx context.Context, wordID uuid.UUID) (*domain.Word, error)
	ListWords(ctx context.Context) ([]domain.Word, error)
	ListByLanguage(ctx context.Context, code domain.LanguageCode) ([]domain.Word, error)
	LanguageCounts(ctx context.Context) ([]domain.LanguageCount, error)
	UpdateWord(ctx context.Context, input word.UpdateWordInput) (*domain.Word, error)
	DeleteWord(ctx context.Context, wordID uuid.UUID) error
	DeleteLanguage(ctx context.Context, code domain.LanguageCode) (int64, error)
	TranslateText(ctx context.Context, input word.TranslateInput) (string, error)
}

// WordHandler serves vocabulary REST endpoints.
type WordHandler struct {
	svc wordService
	log *slog.Logger
}

// NewWordHandler creates a WordHandler.
func NewWordHandler(svc wordService, logger *slog.Logger) *WordHandler {
	return &WordHandler{svc: svc, log: logger.With("handler", "word")}
}

// Word payloads keep the legacy snake_case field names so existing
// clients keep working.
type wordRequest struct {
	OriginalWord   string  `json:"original_word"`
	Translation    string  `json:"translation"`
	SourceLanguage string  `json:"source_language"`
	TargetLanguage string  `json:"target_language"`
	LanguageCode   string  `json:"language_code"`
	AudioURL       *string `json:"audio_url,omitempty"`
}

type wordResponse struct {
	ID             string    `json:"id"`
	OriginalWord   string    `json:"original_word"`
	Translation    string    `json:"translation"`
	SourceLanguage string    `json:"source_language"`
	TargetLanguage string    `json:"target_language"`
	LanguageCode   string    `json:"language_code"`
	AudioURL       *string   `json:"audio_url,omitempty"`
	CreatedAt      time.Time `json:"created_at"`
}

type languageCountResponse struct {
	LanguageCode string `json:"language_code"`
	Count        int    `json:"count"`
}

// Create handles POST /words.
func (h *WordHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req wordRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	created, err := h.svc.AddWord(r.Context(), word.AddWordInput{
		OriginalWord:   req.OriginalWord,
		Translation:    req.Translation,
		SourceLanguage: req.SourceLanguage,
		TargetLanguage: req.TargetLanguage,
		LanguageCode:   req.LanguageCode,
		AudioURL:       req.AudioURL,
	})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, toWordResponse(created))
}

// List handles GET /words with an optional ?language= filter.
func (h *WordHandler) List(w http.ResponseWriter, r *http.Request) {
	var (
		words []domain.Word
		err   error
	)
	if code := r.URL.Query().Get("language"); code != "" {
		words, err = h.svc.ListByLanguage(r.Context(), code)
	} else {
		words, err = h.svc.ListWords(r.Context())
	}
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	out := make([]wordResponse, len(words))
	for i := range words {
		out[i] = toWordResponse(&words[i])
	}
	writeJSON(w, http.StatusOK, map[string]any{"words": out})
}

// Get handles GET /words/{id}.
func (h *WordHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid word id")
		return
	}

	found, err := h.svc.GetWord(r.Context(), id)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, toWordResponse(found))
}

// Update handles PATCH /words/{id}.
func (h *WordHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid word id")
		return
	}

	var req wordRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	updated, err := h.svc.UpdateWord(r.Context(), word.UpdateWordInput{
		WordID:       id,
		OriginalWord: req.OriginalWord,
		Translation:  req.Translation,
	})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, toWordResponse(updated))
}

// Delete handles DELETE /words/{id}.
func (h *WordHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid word id")
		return
	}

	if err := h.svc.DeleteWord(r.Context(), id); err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// Languages handles GET /languages: per-deck word counts.
func (h *WordHandler) Languages(w http.ResponseWriter, r *http.Request) {
	counts, err := h.svc.LanguageCounts(r.Context())
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	out := make([]languageCountResponse, len(counts))
	for i, c := range counts {
		out[i] = languageCountResponse{LanguageCode: c.LanguageCode, Count: c.Count}
	}
	writeJSON(w, http.StatusOK, map[string]any{"languages": out})
}

// DeleteLanguage handles DELETE /languages/{code}: removes a whole deck.
func (h *WordHandler) DeleteLanguage(w http.ResponseWriter, r *http.Request) {
	code := r.PathValue("code")

	deleted, err := h.svc.DeleteLanguage(r.Context(), code)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{"deleted_count": deleted})
}

type translateRequest struct {
	Text           string `json:"text"`
	SourceLanguage string `json:"source_language"`
	TargetLanguage string `json:"target_language"`
}

// Translate handles POST /translate.
func (h *WordHandler) Translate(w http.ResponseWriter, r *http.Request) {
	var req translateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	translated, err := h.svc.TranslateText(r.Context(), word.TranslateInput{
		Text:           req.Text,
		SourceLanguage: req.SourceLanguage,
		TargetLanguage: req.TargetLanguage,
	})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"translation": translated})
}

func toWordResponse(w *domain.Word) wordResponse {
	return wordResponse{
		ID:             w.ID.String(),
		OriginalWord:   w.OriginalWord,
		Translation:    w.Translation,
		SourceLanguage: w.SourceLanguage,
		TargetLanguage: w.TargetLanguage,
		LanguageCode:   w.LanguageCode,
		AudioURL:       w.AudioURL,
		CreatedAt:      w.CreatedAt,
	}
}
