package usecase

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mesa-pacing/internal/adapter/memory"
	"mesa-pacing/internal/core/port/mocks"
)

func TestViewerPrunerPrune(t *testing.T) {
	ledger := memory.NewLedger()
	ctx := context.Background()
	require.NoError(t, ledger.RecordDelivery(ctx, "old", 1, now.Add(-48*time.Hour)))
	require.NoError(t, ledger.RecordDelivery(ctx, "fresh", 1, now.Add(-time.Hour)))

	p := NewViewerPruner(ledger, 24*time.Hour, time.Minute, nil)
	p.now = func() time.Time { return now }

	removed, err := p.Prune(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(1), removed)

	s, err := ledger.ViewerStreak(ctx, "old")
	require.NoError(t, err)
	assert.Zero(t, s.Count)
	s, err = ledger.ViewerStreak(ctx, "fresh")
	require.NoError(t, err)
	assert.Equal(t, 1, s.CountFor(1))
}

func TestViewerPrunerUsesTTL(t *testing.T) {
	ledger := mocks.NewMockDeliveryLedger(t)
	ledger.EXPECT().PruneViewers(context.Background(), now.Add(-2*time.Hour)).Return(0, assert.AnError)

	p := NewViewerPruner(ledger, 2*time.Hour, time.Minute, nil)
	p.now = func() time.Time { return now }

	_, err := p.Prune(context.Background())
	assert.ErrorIs(t, err, assert.AnError)
}

func TestViewerPrunerRunStops(t *testing.T) {
	p := NewViewerPruner(memory.NewLedger(), time.Hour, time.Millisecond, nil)
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- p.Run(ctx) }()
	time.Sleep(5 * time.Millisecond)
	cancel()

	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(time.Second):
		t.Fatal("pruner did not stop")
	}
}
