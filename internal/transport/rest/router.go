package rest

import (
	"log/slog"
	"net/http"

	"github.com/wordwell/backend/internal/config"
	"github.com/wordwell/backend/internal/transport/middleware"
)

// Handlers groups everything the router mounts.
type Handlers struct {
	Health       *HealthHandler
	Auth         *AuthHandler
	Word         *WordHandler
	Session      *SessionHandler
	Capabilities *CapabilitiesHandler
}

// RouterDeps carries the cross-cutting pieces the middleware chain needs.
type RouterDeps struct {
	Logger    *slog.Logger
	Validator TokenValidator
	Limiter   *middleware.RateLimiter
	Server    config.ServerConfig
	CORS      config.CORSConfig
}

// TokenValidator checks bearer tokens for the auth middleware.
type TokenValidator = middleware.TokenValidator

// NewRouter builds the HTTP handler: all routes plus the middleware chain.
// Probe endpoints stay outside the rate limiter so orchestrators are
// never throttled.
func NewRouter(h Handlers, deps RouterDeps) http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /livez", h.Health.Live)
	mux.HandleFunc("GET /readyz", h.Health.Ready)
	mux.HandleFunc("GET /healthz", h.Health.Health)

	api := http.NewServeMux()

	api.HandleFunc("POST /api/v1/auth/register", h.Auth.Register)
	api.HandleFunc("POST /api/v1/auth/login", h.Auth.Login)

	api.HandleFunc("GET /api/v1/capabilities", h.Capabilities.Get)

	api.HandleFunc("POST /api/v1/words", h.Word.Create)
	api.HandleFunc("GET /api/v1/words", h.Word.List)
	api.HandleFunc("GET /api/v1/words/{id}", h.Word.Get)
	api.HandleFunc("PATCH /api/v1/words/{id}", h.Word.Update)
	api.HandleFunc("DELETE /api/v1/words/{id}", h.Word.Delete)

	api.HandleFunc("GET /api/v1/languages", h.Word.Languages)
	api.HandleFunc("DELETE /api/v1/languages/{code}", h.Word.DeleteLanguage)

	api.HandleFunc("POST /api/v1/translate", h.Word.Translate)

	api.HandleFunc("POST /api/v1/sessions", h.Session.Start)
	api.HandleFunc("GET /api/v1/sessions", h.Session.List)
	api.HandleFunc("GET /api/v1/sessions/{id}", h.Session.Get)
	api.HandleFunc("POST /api/v1/sessions/{id}/answers", h.Session.SubmitAnswer)
	api.HandleFunc("GET /api/v1/sessions/{id}/summary", h.Session.Summary)

	mws := []middleware.Middleware{
		middleware.RequestID,
		middleware.Recovery(deps.Logger),
		middleware.Logger(deps.Logger),
		middleware.CORS(deps.CORS),
	}
	if deps.Limiter != nil && deps.Server.RateLimitPerMinute > 0 {
		mws = append(mws, deps.Limiter.Limit(deps.Server.RateLimitPerMinute))
	}
	mws = append(mws, middleware.Auth(deps.Validator))

	mux.Handle("/api/v1/", middleware.Chain(mws...)(api))

	return mux
}
