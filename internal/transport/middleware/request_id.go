package middleware

import (
	"net/http"

	"github.com/google/uuid"

	"github.com/wordwell/backend/pkg/ctxutil"
)

// RequestID tags every request with a correlation ID. A client-supplied
// X-Request-Id is trusted and propagated; otherwise a fresh UUID is
// generated. The ID lands on the context and the response header.
func RequestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		reqID := r.Header.Get("X-Request-Id")
		if reqID == "" {
			reqID = uuid.NewString()
		}
		w.Header().Set("X-Request-Id", reqID)
		next.ServeHTTP(w, r.WithContext(ctxutil.WithRequestID(r.Context(), reqID)))
	})
}
