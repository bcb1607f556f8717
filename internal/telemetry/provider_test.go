package telemetry

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/trace"

	"mesa-pacing/internal/config/configs"
)

func TestSetupNoop(t *testing.T) {
	tests := []struct {
		name string
		cfg  configs.Telemetry
	}{
		{name: "disabled", cfg: configs.Telemetry{Endpoint: "http://localhost:4318", SampleRatio: 0.5}},
		{name: "no endpoint", cfg: configs.Telemetry{Enabled: true, SampleRatio: 0.5}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			shutdown, err := Setup(context.Background(), tt.cfg, "test")
			require.NoError(t, err)
			require.NoError(t, shutdown(context.Background()))
		})
	}
}

func TestSetupRejectsSampleRatio(t *testing.T) {
	_, err := Setup(context.Background(), configs.Telemetry{
		Enabled:     true,
		Endpoint:    "http://192.0.2.1:4318",
		SampleRatio: 1.5,
	}, "test")
	assert.Error(t, err)
}

func TestSetupCreatesProvider(t *testing.T) {
	// non-routable address, nothing is exported before shutdown
	shutdown, err := Setup(context.Background(), configs.Telemetry{
		Enabled:     true,
		Endpoint:    "http://192.0.2.1:4318",
		ServiceName: "mesa-pacing-test",
		SampleRatio: 0.01,
	}, "test")
	require.NoError(t, err)
	require.NoError(t, shutdown(context.Background()))
}

func TestSamplerFollowsParent(t *testing.T) {
	s := Sampler(0)
	sampledParent := trace.ContextWithSpanContext(context.Background(), trace.NewSpanContext(trace.SpanContextConfig{
		TraceID:    trace.TraceID{1},
		SpanID:     trace.SpanID{1},
		TraceFlags: trace.FlagsSampled,
	}))

	res := s.ShouldSample(sdktrace.SamplingParameters{ParentContext: sampledParent, TraceID: trace.TraceID{1}, Name: "Allocate"})
	assert.Equal(t, sdktrace.RecordAndSample, res.Decision)

	res = s.ShouldSample(sdktrace.SamplingParameters{ParentContext: context.Background(), TraceID: trace.TraceID{2}, Name: "Allocate"})
	assert.Equal(t, sdktrace.Drop, res.Decision)
}
