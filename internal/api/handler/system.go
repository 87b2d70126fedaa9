package handler

import (
	"net/http"

	"github.com/mcoot/puzzlesuite-go/internal/api/response"
	"github.com/mcoot/puzzlesuite-go/internal/services/lexicon"
)

// SystemHandler handles health and lexicon status endpoints
type SystemHandler struct {
	lexiconService *lexicon.Service
}

// NewSystemHandler creates a new system handler
func NewSystemHandler(lexiconService *lexicon.Service) *SystemHandler {
	return &SystemHandler{
		lexiconService: lexiconService,
	}
}

// Health handles GET /api/v1/health
func (h *SystemHandler) Health(w http.ResponseWriter, r *http.Request) {
	response.JSON(w, http.StatusOK, response.HealthResponse{Status: "ok"})
}

// Lexicon handles GET /api/v1/lexicon
func (h *SystemHandler) Lexicon(w http.ResponseWriter, r *http.Request) {
	response.JSON(w, http.StatusOK, response.LexiconResponse{
		Loaded:    h.lexiconService.IsLoaded(),
		WordCount: h.lexiconService.WordCount(),
	})
}
