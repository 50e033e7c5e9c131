package observability

import (
	"context"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

// Metrics holds OTel metric instruments for metadata queries.
type Metrics struct {
	QueryCount   metric.Int64Counter
	QueryLatency metric.Float64Histogram
	RecordCount  metric.Int64Counter
}

// NewMetrics creates the query metric instruments on the global meter.
func NewMetrics() (*Metrics, error) {
	return newMetrics(otel.Meter("flowmeta"))
}

func newMetrics(meter metric.Meter) (*Metrics, error) {
	queryCount, err := meter.Int64Counter("flowmeta.query.count",
		metric.WithDescription("Number of metadata queries sent"),
	)
	if err != nil {
		return nil, err
	}

	queryLatency, err := meter.Float64Histogram("flowmeta.query.latency_seconds",
		metric.WithDescription("Round-trip time of a metadata query"),
	)
	if err != nil {
		return nil, err
	}

	recordCount, err := meter.Int64Counter("flowmeta.query.records",
		metric.WithDescription("Number of records returned by metadata queries"),
	)
	if err != nil {
		return nil, err
	}

	return &Metrics{
		QueryCount:   queryCount,
		QueryLatency: queryLatency,
		RecordCount:  recordCount,
	}, nil
}

// RecordQuery records one query against entity. A nil receiver is a no-op.
func (m *Metrics) RecordQuery(ctx context.Context, entity string, d time.Duration, records int, err error) {
	if m == nil {
		return
	}
	outcome := "ok"
	if err != nil {
		outcome = "error"
	}
	attrs := metric.WithAttributes(
		attribute.String("entity", entity),
		attribute.String("outcome", outcome),
	)
	m.QueryCount.Add(ctx, 1, attrs)
	m.QueryLatency.Record(ctx, d.Seconds(), attrs)
	if err == nil {
		m.RecordCount.Add(ctx, int64(records), metric.WithAttributes(attribute.String("entity", entity)))
	}
}
