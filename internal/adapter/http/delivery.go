package httpadapter

import (
	"errors"
	"log/slog"
	"net/http"

	"mesa-pacing/internal/core/port"
)

// handleDelivery returns the delivery counter and current pacing of a
// campaign. Unknown campaigns produce HTTP 404.
func (h *Handler) handleDelivery(w http.ResponseWriter, r *http.Request) {
	id, ok := campaignID(r)
	if !ok {
		http.Error(w, "invalid campaign id", http.StatusBadRequest)
		return
	}
	report, err := h.svc.Delivery(r.Context(), id)
	if errors.Is(err, port.ErrCampaignNotFound) {
		http.NotFound(w, r)
		return
	}
	if err != nil {
		h.logger.Error("delivery error", slog.Int64("campaign_id", id), slog.Any("error", err))
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}
	h.writeJSON(w, http.StatusOK, report)
}
