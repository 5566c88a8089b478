package intake

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/hasunakalanka/Forma.Ai/internal/preview"
	"github.com/hasunakalanka/Forma.Ai/pkg/logging"
)

const maxBodyBytes = 64 << 10

// Handler handles HTTP requests for intake submissions
type Handler struct {
	service *Service
	logger  *logging.Logger
}

// NewHandler creates a new intake handler
func NewHandler(service *Service, logger *logging.Logger) *Handler {
	if logger == nil {
		logger = logging.Default()
	}
	return &Handler{
		service: service,
		logger:  logger,
	}
}

type errorResponse struct {
	Error string `json:"error"`
	Field string `json:"field,omitempty"`
}

// Submit handles POST /api/intake requests
func (h *Handler) Submit(w http.ResponseWriter, r *http.Request) {
	var p Payload

	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
	if err := json.NewDecoder(r.Body).Decode(&p); err != nil {
		h.logger.Warn("failed to decode intake", "error", err)
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid request body"})
		return
	}

	result, err := h.service.Submit(r.Context(), p)
	if err != nil {
		if field := FieldFor(err); field != "" {
			writeJSON(w, http.StatusBadRequest, errorResponse{Error: err.Error(), Field: field})
			return
		}
		if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
			h.logger.Info("intake abandoned before preview was ready", "error", err)
			writeJSON(w, http.StatusRequestTimeout, errorResponse{Error: "request canceled"})
			return
		}
		h.logger.Error("intake failed", "error", err)
		writeJSON(w, http.StatusInternalServerError, errorResponse{Error: "failed to build preview"})
		return
	}

	writeJSON(w, http.StatusOK, result)
}

// Preview handles GET /api/preview requests. It resolves a sample split
// from query parameters without contacting the webhook.
func (h *Handler) Preview(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	plan := preview.Resolve(preview.Input{
		Goal:       q.Get("goal"),
		Days:       preview.ParseDays(q.Get("days")),
		Experience: q.Get("experience"),
		Equipment:  q.Get("equipment"),
	})
	writeJSON(w, http.StatusOK, plan)
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(body)
}
