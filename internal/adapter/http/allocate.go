package httpadapter

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"mesa-pacing/internal/core/domain"
)

type allocateRequest struct {
	ViewerID            string     `json:"viewer_id"`
	Surface             string     `json:"surface"`
	Timestamp           *time.Time `json:"timestamp,omitempty"`
	EligibleCampaignIDs []int64    `json:"eligible_campaign_ids"`
}

// handleAllocate runs one allocation. A served decision is returned as JSON
// with HTTP 200. A fallback answers HTTP 204 and carries the decision id
// and reason in X-Decision-ID and X-Fallback-Reason so the caller can
// correlate the house ad it renders. Malformed requests produce HTTP 400.
func (h *Handler) handleAllocate(w http.ResponseWriter, r *http.Request) {
	var body allocateRequest
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		http.Error(w, "invalid JSON", http.StatusBadRequest)
		return
	}
	req := domain.AllocationRequest{
		ViewerID:            body.ViewerID,
		Surface:             domain.Surface(body.Surface),
		Timestamp:           time.Now(),
		EligibleCampaignIDs: body.EligibleCampaignIDs,
	}
	if body.Timestamp != nil {
		req.Timestamp = *body.Timestamp
	}

	res, err := h.svc.Allocate(r.Context(), req)
	switch {
	case errors.Is(err, domain.ErrInvalidRequest):
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	case err != nil:
		h.logger.Error("allocate error", slog.Any("error", err))
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	if !res.Served() {
		w.Header().Set("X-Decision-ID", res.DecisionID)
		w.Header().Set("X-Fallback-Reason", res.Reason)
		w.WriteHeader(http.StatusNoContent)
		return
	}
	h.writeJSON(w, http.StatusOK, res)
}
