package querier

import (
	"context"
	"fmt"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"

	"github.com/finops-claw-gang/flowmeta/internal/domain"
	"github.com/finops-claw-gang/flowmeta/internal/graphql"
	"github.com/finops-claw-gang/flowmeta/internal/observability"
)

// GraphQLQuerier implements MetadataQuerier over a GraphQL executor.
type GraphQLQuerier struct {
	exec    Executor
	metrics *observability.Metrics
}

// New creates a GraphQLQuerier. metrics may be nil.
func New(exec Executor, metrics *observability.Metrics) *GraphQLQuerier {
	return &GraphQLQuerier{exec: exec, metrics: metrics}
}

// ListFlows lists flows matching req.
func (q *GraphQLQuerier) ListFlows(ctx context.Context, req graphql.Request) ([]domain.Flow, error) {
	return list[domain.Flow](ctx, q, req, domain.EntityFlow)
}

// ListProjects lists projects matching req.
func (q *GraphQLQuerier) ListProjects(ctx context.Context, req graphql.Request) ([]domain.Project, error) {
	return list[domain.Project](ctx, q, req, domain.EntityProject)
}

// ListFlowRuns lists flow runs matching req.
func (q *GraphQLQuerier) ListFlowRuns(ctx context.Context, req graphql.Request) ([]domain.FlowRun, error) {
	return list[domain.FlowRun](ctx, q, req, domain.EntityFlowRun)
}

// ListTasks lists tasks matching req.
func (q *GraphQLQuerier) ListTasks(ctx context.Context, req graphql.Request) ([]domain.Task, error) {
	return list[domain.Task](ctx, q, req, domain.EntityTask)
}

func list[T any](ctx context.Context, q *GraphQLQuerier, req graphql.Request, entity domain.Entity) ([]T, error) {
	if err := checkEntity(req, entity); err != nil {
		return nil, err
	}

	ctx, span := otel.Tracer("flowmeta/querier").Start(ctx, "list "+string(entity))
	defer span.End()

	start := time.Now()
	var out data[T]
	err := q.exec.Do(ctx, req, &out)
	records := out[string(entity)]
	q.metrics.RecordQuery(ctx, string(entity), time.Since(start), len(records), err)

	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return nil, fmt.Errorf("list %s: %w", entity, err)
	}
	span.SetAttributes(attribute.Int("records", len(records)))
	return records, nil
}
