package querier

import (
	"context"

	"github.com/finops-claw-gang/flowmeta/internal/domain"
	"github.com/finops-claw-gang/flowmeta/internal/graphql"
)

// MetadataQuerier provides read access to the metadata store. Each method
// sends one request and returns the decoded records. Used by the CLI.
type MetadataQuerier interface {
	ListFlows(ctx context.Context, req graphql.Request) ([]domain.Flow, error)
	ListProjects(ctx context.Context, req graphql.Request) ([]domain.Project, error)
	ListFlowRuns(ctx context.Context, req graphql.Request) ([]domain.FlowRun, error)
	ListTasks(ctx context.Context, req graphql.Request) ([]domain.Task, error)
}

// Executor sends a GraphQL request and decodes the `data` object into out.
// *cloud.Client satisfies it.
type Executor interface {
	Do(ctx context.Context, req graphql.Request, out any) error
}
