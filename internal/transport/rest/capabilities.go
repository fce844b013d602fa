package rest

import (
	"net/http"

	"github.com/wordwell/backend/internal/domain"
)

// CapabilitiesHandler tells clients which optional features are live so
// they can hide unavailable UI instead of hitting 501s.
type CapabilitiesHandler struct {
	translateAvailable bool
}

// NewCapabilitiesHandler creates a CapabilitiesHandler.
func NewCapabilitiesHandler(translateAvailable bool) *CapabilitiesHandler {
	return &CapabilitiesHandler{translateAvailable: translateAvailable}
}

type capabilitiesResponse struct {
	Translate          bool     `json:"translate"`
	SupportedLanguages []string `json:"supported_languages"`
	DeckCap            int      `json:"deck_cap"`
}

// Get handles GET /capabilities.
func (h *CapabilitiesHandler) Get(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, capabilitiesResponse{
		Translate:          h.translateAvailable,
		SupportedLanguages: domain.SupportedLanguages,
		DeckCap:            domain.DeckCap,
	})
}
