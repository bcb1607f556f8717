package httpadapter

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"mesa-pacing/internal/core/domain"
	"mesa-pacing/internal/core/port"
	"mesa-pacing/internal/core/port/mocks"
)

func newTestHandler(t *testing.T) (*mocks.MockAllocator, http.Handler) {
	t.Helper()
	svc := mocks.NewMockAllocator(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return svc, NewHandler(svc, logger, time.Second).Router()
}

func serve(h http.Handler, method, target, body string) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(method, target, strings.NewReader(body)))
	return rec
}

func TestAllocateServed(t *testing.T) {
	svc, h := newTestHandler(t)
	ts := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	svc.EXPECT().Allocate(mock.Anything, domain.AllocationRequest{
		ViewerID:            "v-1",
		Surface:             domain.SurfaceMapObject,
		Timestamp:           ts,
		EligibleCampaignIDs: []int64{1, 2},
	}).Return(domain.AllocationResult{
		DecisionID: "d-1",
		Outcome:    domain.OutcomeServed,
		CampaignID: 2,
		CreativeID: 21,
		Attempts:   1,
	}, nil)

	rec := serve(h, http.MethodPost, "/api/v1/allocate",
		`{"viewer_id":"v-1","surface":"map_object","timestamp":"2026-03-01T12:00:00Z","eligible_campaign_ids":[1,2]}`)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
	assert.JSONEq(t, `{"decision_id":"d-1","outcome":"served","campaign_id":2,"creative_id":21,"attempts":1}`, rec.Body.String())
}

func TestAllocateFallback(t *testing.T) {
	svc, h := newTestHandler(t)
	svc.EXPECT().Allocate(mock.Anything, mock.AnythingOfType("domain.AllocationRequest")).
		Run(func(_ context.Context, req domain.AllocationRequest) {
			assert.False(t, req.Timestamp.IsZero())
			assert.Empty(t, req.EligibleCampaignIDs)
		}).
		Return(domain.AllocationResult{DecisionID: "d-2", Outcome: domain.OutcomeFallback, Reason: "no eligible campaign"}, nil)

	rec := serve(h, http.MethodPost, "/api/v1/allocate", `{"viewer_id":"v-1","surface":"promo_block"}`)

	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Equal(t, "d-2", rec.Header().Get("X-Decision-ID"))
	assert.Equal(t, "no eligible campaign", rec.Header().Get("X-Fallback-Reason"))
	assert.Empty(t, rec.Body.String())
}

func TestAllocateBadRequest(t *testing.T) {
	svc, h := newTestHandler(t)

	rec := serve(h, http.MethodPost, "/api/v1/allocate", `{`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	svc.EXPECT().Allocate(mock.Anything, mock.Anything).
		Return(domain.AllocationResult{}, fmt.Errorf("%w: unknown surface", domain.ErrInvalidRequest))
	rec = serve(h, http.MethodPost, "/api/v1/allocate", `{"viewer_id":"v","surface":"banner"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestCampaignUpdate(t *testing.T) {
	tests := []struct {
		name   string
		target string
		err    error
		want   int
	}{
		{name: "applied", target: "/api/v1/campaigns/7", want: http.StatusNoContent},
		{name: "invalid", target: "/api/v1/campaigns/7", err: fmt.Errorf("%w: no surfaces", domain.ErrInvalidCampaign), want: http.StatusBadRequest},
		{name: "illegal transition", target: "/api/v1/campaigns/7", err: fmt.Errorf("campaign 7: %w", domain.ErrIllegalTransition), want: http.StatusConflict},
		{name: "internal", target: "/api/v1/campaigns/7", err: assert.AnError, want: http.StatusInternalServerError},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, h := newTestHandler(t)
			svc.EXPECT().OnCampaignUpdate(mock.Anything, mock.MatchedBy(func(c domain.Campaign) bool {
				return c.ID == 7 && c.Status == domain.StatusPaused
			})).Return(tt.err)

			rec := serve(h, http.MethodPut, tt.target, `{"id":99,"status":"paused"}`)
			assert.Equal(t, tt.want, rec.Code)
		})
	}
}

func TestCampaignUpdateBadID(t *testing.T) {
	_, h := newTestHandler(t)
	rec := serve(h, http.MethodPut, "/api/v1/campaigns/abc", `{}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	rec = serve(h, http.MethodPut, "/api/v1/campaigns/0", `{}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestDelivery(t *testing.T) {
	svc, h := newTestHandler(t)
	svc.EXPECT().Delivery(mock.Anything, int64(3)).Return(&port.DeliveryReport{
		CampaignID:       3,
		Status:           domain.StatusActive,
		Delivered:        50,
		LimitImpressions: 100,
		Remaining:        50,
		RemainingDays:    5,
		TargetRate:       10,
	}, nil)
	svc.EXPECT().Delivery(mock.Anything, int64(4)).Return(nil, port.ErrCampaignNotFound)

	rec := serve(h, http.MethodGet, "/api/v1/campaigns/3/delivery", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"campaign_id":3,"status":"active","delivered":50,"limit_impressions":100,
		"remaining":50,"remaining_days":5,"target_rate":10}`, rec.Body.String())

	rec = serve(h, http.MethodGet, "/api/v1/campaigns/4/delivery", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}
