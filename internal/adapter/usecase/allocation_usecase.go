package usecase

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"mesa-pacing/internal/adapter/registry"
	"mesa-pacing/internal/core/domain"
	"mesa-pacing/internal/core/pacing"
	"mesa-pacing/internal/core/port"
	"mesa-pacing/internal/core/selection"
	"mesa-pacing/internal/random"
)

const (
	reasonNoCandidate     = "no eligible campaign"
	reasonRetriesExceeded = "commit retries exhausted"
	reasonDeadline        = "deadline exceeded"
	reasonLedger          = "ledger unavailable"
)

// Options tune the allocation engine.
type Options struct {
	// Deadline bounds a whole decision. Zero disables the bound.
	Deadline time.Duration
	// CommitTimeout bounds a ledger commit once issued. The commit runs
	// detached from the caller's cancellation.
	CommitTimeout time.Duration
	// MaxCommitRetries is the number of lost-race retries after the first
	// commit attempt.
	MaxCommitRetries int
	// TieEpsilon is the score distance under which campaigns tie.
	TieEpsilon    float64
	Normalization pacing.Normalization
}

// DefaultOptions returns the options used when none are configured.
func DefaultOptions() Options {
	return Options{
		Deadline:         50 * time.Millisecond,
		CommitTimeout:    2 * time.Second,
		MaxCommitRetries: 3,
		TieEpsilon:       1e-9,
		Normalization:    pacing.NormalizeMaxEligible,
	}
}

type creativePicker interface {
	Select(c *domain.Campaign) (domain.Creative, error)
}

// AllocationUseCase is the allocation engine. It implements port.Allocator
// and orchestrates eligibility, pacing, scoring, creative rotation and the
// conditional commit for every request.
type AllocationUseCase struct {
	registry  *registry.Registry
	ledger    port.DeliveryLedger
	store     port.CampaignStore // optional
	filter    *selection.EligibilityFilter
	creatives creativePicker
	scorer    pacing.Scorer
	rnd       random.Source
	opts      Options
	now       func() time.Time
	tracer    trace.Tracer
	logger    *slog.Logger
}

// NewAllocationUseCase wires the engine. store may be nil; when set, the
// completed transition of a campaign that spent its budget is persisted.
func NewAllocationUseCase(reg *registry.Registry, ledger port.DeliveryLedger, store port.CampaignStore, rnd random.Source, opts Options, logger *slog.Logger) *AllocationUseCase {
	if logger == nil {
		logger = slog.Default()
	}
	if opts.MaxCommitRetries < 0 {
		opts.MaxCommitRetries = 0
	}
	if opts.CommitTimeout <= 0 {
		opts.CommitTimeout = DefaultOptions().CommitTimeout
	}
	return &AllocationUseCase{
		registry:  reg,
		ledger:    ledger,
		store:     store,
		filter:    selection.NewEligibilityFilter(ledger, logger),
		creatives: selection.NewCreativeSelector(rnd),
		scorer:    pacing.Scorer{Normalization: opts.Normalization},
		rnd:       rnd,
		opts:      opts,
		now:       time.Now,
		tracer:    otel.Tracer("mesa-pacing/usecase"),
		logger:    logger,
	}
}

var _ port.Allocator = (*AllocationUseCase)(nil)

// Allocate runs one decision: Received -> Filtered -> Scored -> Selected ->
// Committed, or Received -> Filtered -> NoCandidate -> FallbackServed. A
// commit rejected because a concurrent request took the last impression
// sends the decision back to scoring without that campaign, at most
// MaxCommitRetries times.
func (u *AllocationUseCase) Allocate(ctx context.Context, req domain.AllocationRequest) (domain.AllocationResult, error) {
	if err := validateRequest(req); err != nil {
		return domain.AllocationResult{}, err
	}
	res := domain.AllocationResult{DecisionID: uuid.NewString()}

	ctx, span := u.tracer.Start(ctx, "Allocate", trace.WithAttributes(
		attribute.String("decision.id", res.DecisionID),
		attribute.String("request.surface", string(req.Surface)),
		attribute.Int("request.eligible", len(req.EligibleCampaignIDs)),
	))
	defer span.End()

	if u.opts.Deadline > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, u.opts.Deadline)
		defer cancel()
	}

	now := req.Timestamp
	if now.IsZero() {
		now = u.now()
	}
	u.stage(ctx, res.DecisionID, domain.StageReceived)

	eligible, err := u.filter.Filter(ctx, u.registry.Snapshot(), req, now)
	if err != nil {
		return u.fallback(ctx, span, res, u.faultReason(ctx, err), err), nil
	}
	u.stage(ctx, res.DecisionID, domain.StageFiltered, slog.Int("candidates", len(eligible)))

	for len(eligible) > 0 && res.Attempts <= u.opts.MaxCommitRetries {
		if ctx.Err() != nil {
			return u.fallback(ctx, span, res, reasonDeadline, ctx.Err()), nil
		}
		winner := u.pick(eligible, now)
		u.stage(ctx, res.DecisionID, domain.StageScored, slog.Int64("winner", winner.Campaign.ID))

		creative, err := u.creatives.Select(winner.Campaign)
		if err != nil {
			u.logger.Warn("campaign excluded: configuration error",
				slog.Int64("campaign_id", winner.Campaign.ID),
				slog.Any("error", err),
			)
			eligible = without(eligible, winner.Campaign.ID)
			continue
		}
		u.stage(ctx, res.DecisionID, domain.StageSelected, slog.Int64("creative", creative.ID))

		res.Attempts++
		ok, err := u.commit(ctx, winner.Campaign)
		if err != nil {
			return u.fallback(ctx, span, res, u.faultReason(ctx, err), err), nil
		}
		if !ok {
			u.logger.Debug("commit lost race",
				slog.String("decision_id", res.DecisionID),
				slog.Int64("campaign_id", winner.Campaign.ID),
				slog.Int("attempt", res.Attempts),
			)
			eligible = without(eligible, winner.Campaign.ID)
			continue
		}

		u.afterCommit(ctx, req, winner)
		res.Outcome = domain.OutcomeServed
		res.CampaignID = winner.Campaign.ID
		res.CreativeID = creative.ID
		u.stage(ctx, res.DecisionID, domain.StageCommitted,
			slog.Int64("campaign_id", res.CampaignID),
			slog.Int64("creative_id", res.CreativeID),
		)
		span.SetAttributes(
			attribute.String("decision.outcome", string(res.Outcome)),
			attribute.Int64("decision.campaign_id", res.CampaignID),
			attribute.Int64("decision.creative_id", res.CreativeID),
		)
		return res, nil
	}

	reason := reasonNoCandidate
	if len(eligible) > 0 {
		reason = reasonRetriesExceeded
	}
	u.stage(ctx, res.DecisionID, domain.StageNoCandidate)
	return u.fallback(ctx, span, res, reason, nil), nil
}

// pick scores the eligible set and draws the winner.
func (u *AllocationUseCase) pick(eligible []selection.Eligible, now time.Time) selection.Eligible {
	candidates := make([]pacing.Candidate, len(eligible))
	for i, e := range eligible {
		c := e.Campaign
		candidates[i] = pacing.Candidate{
			CampaignID:       c.ID,
			LimitImpressions: c.LimitImpressions,
			Weight:           c.Weight,
			Pace: pacing.Calculate(pacing.Input{
				LimitImpressions: c.LimitImpressions,
				Delivered:        e.Delivered,
				StartDate:        c.StartDate,
				EndDate:          c.EndDate,
			}, now),
		}
	}
	best, _ := selection.PickWinner(u.scorer.Score(candidates), u.opts.TieEpsilon, u.rnd)
	for _, e := range eligible {
		if e.Campaign.ID == best.CampaignID {
			return e
		}
	}
	return eligible[0]
}

type commitOutcome struct {
	ok  bool
	err error
}

// commit issues the conditional increment. Once issued the increment runs
// to completion even if the caller gives up, so a reserved impression is
// always accounted for in the ledger; the caller just stops waiting.
func (u *AllocationUseCase) commit(ctx context.Context, c *domain.Campaign) (bool, error) {
	cctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), u.opts.CommitTimeout)
	done := make(chan commitOutcome, 1)
	go func() {
		defer cancel()
		ok, err := u.ledger.IncrementIfUnderBudget(cctx, c.ID, c.LimitImpressions)
		done <- commitOutcome{ok: ok, err: err}
	}()

	select {
	case out := <-done:
		return out.ok, out.err
	case <-ctx.Done():
		go func() {
			out := <-done
			if out.ok {
				u.logger.Warn("impression committed after caller gave up",
					slog.Int64("campaign_id", c.ID),
				)
			}
		}()
		return false, ctx.Err()
	}
}

// afterCommit updates the viewer's streak and completes the campaign when
// this delivery may have taken its last impression. The streak is stamped
// with the engine clock rather than the request timestamp, so viewer TTL
// pruning measures real idle time. Failures here are logged only: streaks
// are eventually consistent and the refresher sweep completes campaigns as
// well.
func (u *AllocationUseCase) afterCommit(ctx context.Context, req domain.AllocationRequest, winner selection.Eligible) {
	dctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), u.opts.CommitTimeout)
	defer cancel()

	if err := u.ledger.RecordDelivery(dctx, req.ViewerID, winner.Campaign.ID, u.now()); err != nil {
		u.logger.Error("record viewer delivery failed",
			slog.Int64("campaign_id", winner.Campaign.ID),
			slog.Any("error", err),
		)
	}

	if winner.Remaining() > 1 {
		return
	}
	delivered, err := u.ledger.Delivered(dctx, winner.Campaign.ID)
	if err != nil || delivered < winner.Campaign.LimitImpressions {
		return
	}
	if !u.registry.MarkCompleted(winner.Campaign.ID) {
		return
	}
	u.logger.Info("campaign completed",
		slog.Int64("campaign_id", winner.Campaign.ID),
		slog.String("reason", "budget exhausted"),
	)
	if u.store != nil {
		if err = u.store.MarkCompleted(dctx, winner.Campaign.ID); err != nil {
			u.logger.Error("persist completed status failed",
				slog.Int64("campaign_id", winner.Campaign.ID),
				slog.Any("error", err),
			)
		}
	}
}

func (u *AllocationUseCase) fallback(ctx context.Context, span trace.Span, res domain.AllocationResult, reason string, err error) domain.AllocationResult {
	res.Outcome = domain.OutcomeFallback
	res.CampaignID = 0
	res.CreativeID = 0
	res.Reason = reason
	if err != nil {
		u.logger.Error("allocation degraded to fallback",
			slog.String("decision_id", res.DecisionID),
			slog.String("reason", reason),
			slog.Any("error", err),
		)
		span.RecordError(err)
		span.SetStatus(codes.Error, reason)
	}
	span.SetAttributes(
		attribute.String("decision.outcome", string(res.Outcome)),
		attribute.String("decision.reason", reason),
	)
	u.stage(ctx, res.DecisionID, domain.StageFallback, slog.String("reason", reason))
	return res
}

func (u *AllocationUseCase) faultReason(ctx context.Context, err error) string {
	if ctx.Err() != nil || errors.Is(err, context.DeadlineExceeded) {
		return reasonDeadline
	}
	return reasonLedger
}

func (u *AllocationUseCase) stage(ctx context.Context, decisionID string, stage domain.Stage, attrs ...any) {
	trace.SpanFromContext(ctx).AddEvent(string(stage))
	u.logger.Debug("allocation stage", append([]any{
		slog.String("decision_id", decisionID),
		slog.String("stage", string(stage)),
	}, attrs...)...)
}

// OnCampaignUpdate applies a change pushed by the campaign editor.
func (u *AllocationUseCase) OnCampaignUpdate(_ context.Context, c domain.Campaign) error {
	if err := u.registry.Upsert(c); err != nil {
		return err
	}
	u.logger.Info("campaign updated",
		slog.Int64("campaign_id", c.ID),
		slog.String("status", string(c.Status)),
	)
	return nil
}

// Delivery reports the delivery counter and pacing of a campaign.
func (u *AllocationUseCase) Delivery(ctx context.Context, campaignID int64) (*port.DeliveryReport, error) {
	c, ok := u.registry.Snapshot().Campaign(campaignID)
	if !ok {
		return nil, port.ErrCampaignNotFound
	}
	delivered, err := u.ledger.Delivered(ctx, campaignID)
	if err != nil {
		return nil, fmt.Errorf("read delivered: %w", err)
	}
	p := pacing.Calculate(pacing.Input{
		LimitImpressions: c.LimitImpressions,
		Delivered:        delivered,
		StartDate:        c.StartDate,
		EndDate:          c.EndDate,
	}, u.now())
	return &port.DeliveryReport{
		CampaignID:       c.ID,
		Status:           c.Status,
		Delivered:        delivered,
		LimitImpressions: c.LimitImpressions,
		Remaining:        p.RemainingImpressions,
		RemainingDays:    p.RemainingDays,
		TargetRate:       p.TargetRate,
	}, nil
}

func validateRequest(req domain.AllocationRequest) error {
	if req.ViewerID == "" {
		return fmt.Errorf("%w: viewer_id is required", domain.ErrInvalidRequest)
	}
	if !req.Surface.Valid() {
		return fmt.Errorf("%w: unknown surface %q", domain.ErrInvalidRequest, req.Surface)
	}
	return nil
}

func without(eligible []selection.Eligible, id int64) []selection.Eligible {
	out := eligible[:0:0]
	for _, e := range eligible {
		if e.Campaign.ID != id {
			out = append(out, e)
		}
	}
	return out
}
