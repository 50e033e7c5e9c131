package querier

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/finops-claw-gang/flowmeta/internal/domain"
	"github.com/finops-claw-gang/flowmeta/internal/graphql"
)

// StubQuerier satisfies MetadataQuerier from JSON fixture files, one array
// of records per entity: flows.json, projects.json, flow_runs.json, tasks.json.
// Filters are not evaluated; the request's limit is.
type StubQuerier struct {
	FixturesDir string
}

func loadFixture[T any](s *StubQuerier, req graphql.Request, entity domain.Entity) ([]T, error) {
	if err := checkEntity(req, entity); err != nil {
		return nil, err
	}
	path := filepath.Join(s.FixturesDir, string(entity)+"s.json")
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("querier: load fixture: %w", err)
	}
	var records []T
	if err := json.Unmarshal(raw, &records); err != nil {
		return nil, fmt.Errorf("querier: decode fixture %s: %w", path, err)
	}
	if n := limitOf(req); n > 0 && len(records) > n {
		records = records[:n]
	}
	return records, nil
}

func (s *StubQuerier) ListFlows(_ context.Context, req graphql.Request) ([]domain.Flow, error) {
	return loadFixture[domain.Flow](s, req, domain.EntityFlow)
}

func (s *StubQuerier) ListProjects(_ context.Context, req graphql.Request) ([]domain.Project, error) {
	return loadFixture[domain.Project](s, req, domain.EntityProject)
}

func (s *StubQuerier) ListFlowRuns(_ context.Context, req graphql.Request) ([]domain.FlowRun, error) {
	return loadFixture[domain.FlowRun](s, req, domain.EntityFlowRun)
}

func (s *StubQuerier) ListTasks(_ context.Context, req graphql.Request) ([]domain.Task, error) {
	return loadFixture[domain.Task](s, req, domain.EntityTask)
}

// Compile-time checks.
var (
	_ MetadataQuerier = (*GraphQLQuerier)(nil)
	_ MetadataQuerier = (*StubQuerier)(nil)
)
