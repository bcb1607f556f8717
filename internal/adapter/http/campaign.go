package httpadapter

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"mesa-pacing/internal/core/domain"
)

func campaignID(r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil || id <= 0 {
		return 0, false
	}
	return id, true
}

// handleCampaignUpdate applies a campaign pushed by the campaign editor.
// The path id wins over any id in the body. Invalid configurations answer
// HTTP 400 and lifecycle violations, such as reactivating a completed
// campaign, answer HTTP 409.
func (h *Handler) handleCampaignUpdate(w http.ResponseWriter, r *http.Request) {
	id, ok := campaignID(r)
	if !ok {
		http.Error(w, "invalid campaign id", http.StatusBadRequest)
		return
	}
	var c domain.Campaign
	if err := json.NewDecoder(r.Body).Decode(&c); err != nil {
		http.Error(w, "invalid JSON", http.StatusBadRequest)
		return
	}
	c.ID = id

	err := h.svc.OnCampaignUpdate(r.Context(), c)
	switch {
	case err == nil:
		w.WriteHeader(http.StatusNoContent)
	case errors.Is(err, domain.ErrInvalidCampaign):
		http.Error(w, err.Error(), http.StatusBadRequest)
	case errors.Is(err, domain.ErrIllegalTransition):
		http.Error(w, err.Error(), http.StatusConflict)
	default:
		h.logger.Error("campaign update error", slog.Int64("campaign_id", id), slog.Any("error", err))
		http.Error(w, "internal error", http.StatusInternalServerError)
	}
}
