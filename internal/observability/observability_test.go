package observability

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/metric/noop"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/metric/metricdata"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in   string
		want slog.Level
	}{
		{"debug", slog.LevelDebug},
		{"DEBUG", slog.LevelDebug},
		{"warn", slog.LevelWarn},
		{"warning", slog.LevelWarn},
		{"error", slog.LevelError},
		{"info", slog.LevelInfo},
		{"", slog.LevelInfo},
		{"chatty", slog.LevelInfo},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, ParseLevel(tt.in), "level %q", tt.in)
	}
}

func TestInitLogger_JSONAtLevel(t *testing.T) {
	prev := slog.Default()
	t.Cleanup(func() { slog.SetDefault(prev) })

	var buf bytes.Buffer
	logger := initLogger(&buf, "warn")

	logger.Info("dropped")
	logger.Warn("kept", "entity", "flow")

	lines := bytes.Split(bytes.TrimSpace(buf.Bytes()), []byte("\n"))
	require.Len(t, lines, 1)

	var rec map[string]any
	require.NoError(t, json.Unmarshal(lines[0], &rec))
	assert.Equal(t, "kept", rec["msg"])
	assert.Equal(t, "flow", rec["entity"])
	assert.Same(t, logger, slog.Default())
}

func TestRecordQuery(t *testing.T) {
	m, err := newMetrics(noop.NewMeterProvider().Meter("test"))
	require.NoError(t, err)

	ctx := context.Background()
	assert.NotPanics(t, func() {
		m.RecordQuery(ctx, "flow", 120*time.Millisecond, 3, nil)
		m.RecordQuery(ctx, "flow", time.Second, 0, errors.New("boom"))
	})

	var unset *Metrics
	assert.NotPanics(t, func() {
		unset.RecordQuery(ctx, "flow", time.Second, 1, nil)
	})
}

func TestNewMetrics_GlobalMeter(t *testing.T) {
	m, err := NewMetrics()
	require.NoError(t, err)
	assert.NotNil(t, m.QueryCount)
	assert.NotNil(t, m.QueryLatency)
	assert.NotNil(t, m.RecordCount)
}

func TestInstallMeterProvider_RecordsReachReader(t *testing.T) {
	ctx := context.Background()
	res, err := newResource("flowmeta-test", "v0")
	require.NoError(t, err)

	reader := sdkmetric.NewManualReader()
	mp := installMeterProvider(reader, res)
	t.Cleanup(func() { _ = mp.Shutdown(ctx) })

	m, err := NewMetrics()
	require.NoError(t, err)
	m.RecordQuery(ctx, "flow", 50*time.Millisecond, 3, nil)
	m.RecordQuery(ctx, "task", time.Second, 0, errors.New("boom"))

	var rm metricdata.ResourceMetrics
	require.NoError(t, reader.Collect(ctx, &rm))

	got := map[string]metricdata.Aggregation{}
	for _, sm := range rm.ScopeMetrics {
		for _, md := range sm.Metrics {
			got[md.Name] = md.Data
		}
	}
	require.Contains(t, got, "flowmeta.query.count")
	require.Contains(t, got, "flowmeta.query.latency_seconds")
	require.Contains(t, got, "flowmeta.query.records")

	count, ok := got["flowmeta.query.count"].(metricdata.Sum[int64])
	require.True(t, ok)
	var total int64
	for _, dp := range count.DataPoints {
		total += dp.Value
	}
	assert.Equal(t, int64(2), total)

	records, ok := got["flowmeta.query.records"].(metricdata.Sum[int64])
	require.True(t, ok)
	require.Len(t, records.DataPoints, 1, "failed queries add no records")
	assert.Equal(t, int64(3), records.DataPoints[0].Value)
}
