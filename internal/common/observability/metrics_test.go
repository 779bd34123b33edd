package observability

import (
	"context"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestObservability_NilSafe(t *testing.T) {
	var obs *Observability
	assert.NotPanics(t, func() {
		obs.RecordCompletion(context.Background(), "gpt-4o-mini", "valid", time.Second)
		obs.Shutdown()
	})
}

func TestObservability_RecordCompletion(t *testing.T) {
	obs := New("creator-api-test")
	t.Cleanup(obs.Shutdown)

	obs.RecordCompletion(context.Background(), "gpt-4o-mini", "valid", 120*time.Millisecond)

	families, err := prometheus.DefaultGatherer.Gather()
	require.NoError(t, err)

	names := make(map[string]bool, len(families))
	for _, mf := range families {
		names[mf.GetName()] = true
	}
	assert.True(t, names["completion_calls_total"], "completion call counter should be exported")
	assert.True(t, names["completion_duration_milliseconds"], "completion latency histogram should be exported")
}
