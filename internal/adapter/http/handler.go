package httpadapter

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"mesa-pacing/internal/core/port"
)

// Handler contains dependencies and routes. It is an inbound adapter for HTTP
// in front of the allocation engine. Routes are registered on a chi.Router
// for convenient method handling.
type Handler struct {
	svc    port.Allocator
	logger *slog.Logger
	router chi.Router
}

// NewHandler creates a handler with all routes configured. timeout bounds
// the whole request, including body decoding; the engine applies its own
// tighter decision deadline on top of it.
func NewHandler(svc port.Allocator, logger *slog.Logger, timeout time.Duration) *Handler {
	h := &Handler{svc: svc, logger: logger}
	r := chi.NewRouter()
	r.Use(middleware.RequestID, middleware.Recoverer)
	if timeout > 0 {
		r.Use(middleware.Timeout(timeout))
	}

	r.Route("/api/v1", func(r chi.Router) {
		r.Post("/allocate", h.handleAllocate)
		r.Put("/campaigns/{id}", h.handleCampaignUpdate)
		r.Get("/campaigns/{id}/delivery", h.handleDelivery)
	})
	h.router = r
	return h
}

// Router returns the underlying http.Handler.
func (h *Handler) Router() http.Handler {
	return h.router
}

func (h *Handler) writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		// encoding should rarely fail; the status is already sent
		h.logger.Error("encode response error", slog.Any("error", err))
	}
}
