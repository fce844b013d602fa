package rest

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/google/uuid"

	"github.com/wordwell/backend/internal/domain"
	"github.com/wordwell/backend/internal/service/session"
)

// sessionService defines the minimal interface needed by SessionHandler.
type sessionService interface {
	StartSession(ctx context.Context, input session.StartSessionInput) (*session.StartResult, error)
	GetSession(ctx context.Context, sessionID uuid.UUID) (*session.SessionState, error)
	ListSessions(ctx context.Context, input session.ListSessionsInput) ([]*domain.LearningSession, int, error)
	SubmitAnswer(ctx context.Context, input session.SubmitAnswerInput) (*session.SubmitResult, error)
	GetSummary(ctx context.Context, sessionID uuid.UUID) (*domain.SessionSummary, error)
}

// SessionHandler serves learning-session REST endpoints.
type SessionHandler struct {
	svc sessionService
	log *slog.Logger
}

// NewSessionHandler creates a SessionHandler.
func NewSessionHandler(svc sessionService, logger *slog.Logger) *SessionHandler {
	return &SessionHandler{svc: svc, log: logger.With("handler", "session")}
}

type startSessionRequest struct {
	LanguageCode string `json:"language_code"`
	SessionType  string `json:"session_type"`
}

type sessionResponse struct {
	ID          string    `json:"id"`
	SessionType string    `json:"session_type"`
	Completed   bool      `json:"completed"`
	CreatedAt   time.Time `json:"created_at"`
}

type sessionStateResponse struct {
	Session  sessionResponse `json:"session"`
	Words    []wordResponse  `json:"words"`
	Position int             `json:"position"`
	Total    int             `json:"total"`
}

type submitAnswerRequest struct {
	WordID     string `json:"word_id"`
	TestType   string `json:"test_type"`
	UserAnswer string `json:"user_answer"`
}

type resultResponse struct {
	ID         string    `json:"id"`
	WordID     string    `json:"word_id"`
	TestType   string    `json:"test_type"`
	Correct    bool      `json:"correct"`
	UserAnswer string    `json:"user_answer"`
	CreatedAt  time.Time `json:"created_at"`
}

type summaryResponse struct {
	SessionID    string           `json:"session_id"`
	Total        int              `json:"total"`
	CorrectCount int              `json:"correct_count"`
	AccuracyPct  int              `json:"accuracy_pct"`
	Results      []resultResponse `json:"results"`
}

type submitAnswerResponse struct {
	Result    resultResponse   `json:"result"`
	Correct   bool             `json:"correct"`
	Position  int              `json:"position"`
	Total     int              `json:"total"`
	Completed bool             `json:"completed"`
	Summary   *summaryResponse `json:"summary,omitempty"`
}

// Start handles POST /sessions.
func (h *SessionHandler) Start(w http.ResponseWriter, r *http.Request) {
	var req startSessionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	started, err := h.svc.StartSession(r.Context(), session.StartSessionInput{
		LanguageCode: req.LanguageCode,
		SessionKind:  domain.SessionKind(req.SessionType),
	})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	words := make([]wordResponse, len(started.Words))
	for i := range started.Words {
		words[i] = toWordResponse(&started.Words[i])
	}
	writeJSON(w, http.StatusCreated, sessionStateResponse{
		Session:  toSessionResponse(started.Session),
		Words:    words,
		Position: 0,
		Total:    len(started.Words),
	})
}

// Get handles GET /sessions/{id}: the session, its deck, and the
// position of the next unanswered item.
func (h *SessionHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid session id")
		return
	}

	state, err := h.svc.GetSession(r.Context(), id)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	words := make([]wordResponse, len(state.Words))
	for i := range state.Words {
		words[i] = toWordResponse(&state.Words[i])
	}
	writeJSON(w, http.StatusOK, sessionStateResponse{
		Session:  toSessionResponse(state.Session),
		Words:    words,
		Position: state.Position,
		Total:    len(state.Words),
	})
}

// List handles GET /sessions with optional ?limit= and ?offset=.
func (h *SessionHandler) List(w http.ResponseWriter, r *http.Request) {
	var input session.ListSessionsInput
	q := r.URL.Query()
	if v := q.Get("limit"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			writeError(w, http.StatusBadRequest, "invalid limit")
			return
		}
		input.Limit = n
	}
	if v := q.Get("offset"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			writeError(w, http.StatusBadRequest, "invalid offset")
			return
		}
		input.Offset = n
	}

	sessions, total, err := h.svc.ListSessions(r.Context(), input)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	out := make([]sessionResponse, len(sessions))
	for i, s := range sessions {
		out[i] = toSessionResponse(s)
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"sessions": out,
		"total":    total,
	})
}

// SubmitAnswer handles POST /sessions/{id}/answers.
func (h *SessionHandler) SubmitAnswer(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid session id")
		return
	}

	var req submitAnswerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	wordID, err := uuid.Parse(req.WordID)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid word id")
		return
	}

	res, err := h.svc.SubmitAnswer(r.Context(), session.SubmitAnswerInput{
		SessionID: id,
		WordID:    wordID,
		TestKind:  domain.TestKind(req.TestType),
		Answer:    req.UserAnswer,
	})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	resp := submitAnswerResponse{
		Result:    toResultResponse(*res.Result),
		Correct:   res.Correct,
		Position:  res.Position,
		Total:     res.Total,
		Completed: res.Completed,
	}
	if res.Summary != nil {
		s := toSummaryResponse(res.Summary)
		resp.Summary = &s
	}
	writeJSON(w, http.StatusOK, resp)
}

// Summary handles GET /sessions/{id}/summary.
func (h *SessionHandler) Summary(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid session id")
		return
	}

	summary, err := h.svc.GetSummary(r.Context(), id)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, toSummaryResponse(summary))
}

func toSessionResponse(s *domain.LearningSession) sessionResponse {
	return sessionResponse{
		ID:          s.ID.String(),
		SessionType: s.SessionKind.String(),
		Completed:   s.Completed,
		CreatedAt:   s.CreatedAt,
	}
}

func toResultResponse(r domain.TestResult) resultResponse {
	return resultResponse{
		ID:         r.ID.String(),
		WordID:     r.WordID.String(),
		TestType:   r.TestKind.String(),
		Correct:    r.Correct,
		UserAnswer: r.UserAnswer,
		CreatedAt:  r.CreatedAt,
	}
}

func toSummaryResponse(s *domain.SessionSummary) summaryResponse {
	results := make([]resultResponse, len(s.Results))
	for i, r := range s.Results {
		results[i] = toResultResponse(r)
	}
	return summaryResponse{
		SessionID:    s.SessionID.String(),
		Total:        s.Total,
		CorrectCount: s.CorrectCount,
		AccuracyPct:  s.AccuracyPct,
		Results:      results,
	}
}
