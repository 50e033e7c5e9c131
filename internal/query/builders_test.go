package query

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/finops-claw-gang/flowmeta/internal/domain"
	"github.com/finops-claw-gang/flowmeta/internal/graphql"
)

func ptr[T any](v T) *T { return &v }

// keys collects every key in a predicate tree, at any depth.
func keys(args graphql.Args) map[string]bool {
	out := map[string]bool{}
	var walk func(graphql.Args)
	walk = func(a graphql.Args) {
		for _, arg := range a {
			out[arg.Key] = true
			if nested, ok := arg.Value.(graphql.Args); ok {
				walk(nested)
			}
		}
	}
	walk(args)
	return out
}

func TestFlows_NameOnly(t *testing.T) {
	req := Flows(FlowsOptions{Name: ptr("My-Flow")}, DefaultDefaults())

	want := graphql.Args{
		{Key: "where", Value: graphql.Args{{Key: "_and", Value: graphql.Args{
			{Key: "name", Value: graphql.Args{{Key: "_eq", Value: "My-Flow"}}},
		}}}},
		{Key: "order_by", Value: graphql.Args{
			{Key: "name", Value: graphql.EnumValue("asc")},
			{Key: "version", Value: graphql.EnumValue("desc")},
		}},
		{Key: "distinct_on", Value: graphql.EnumValue("name")},
		{Key: "limit", Value: 10},
	}
	if diff := cmp.Diff(want, req.Root.Args); diff != "" {
		t.Errorf("flows args mismatch (-want +got):\n%s", diff)
	}
	assert.Equal(t, "flow", req.Entity())
}

func TestFlows_UnsetFiltersElided(t *testing.T) {
	req := Flows(FlowsOptions{}, DefaultDefaults())
	assert.Nil(t, req.Where())
	assert.False(t, req.Root.Args.Has("where"))

	req = Flows(FlowsOptions{Project: ptr("New-Proj")}, DefaultDefaults())
	k := keys(req.Where())
	assert.True(t, k["project"])
	assert.False(t, k["version"])
	// "name" appears only beneath project.
	and := req.Where().Object("_and")
	assert.False(t, and.Has("name"))
	assert.True(t, and.Object("project").Has("name"))
}

func TestFlows_VersionZeroIsAFilter(t *testing.T) {
	req := Flows(FlowsOptions{Version: ptr(0)}, DefaultDefaults())
	v, ok := req.Where().Object("_and").Object("version").Get("_eq")
	require.True(t, ok)
	assert.Equal(t, 0, v)
}

func TestFlows_DistinctOn(t *testing.T) {
	deduped := Flows(FlowsOptions{}, DefaultDefaults())
	v, ok := deduped.Root.Args.Get("distinct_on")
	require.True(t, ok)
	assert.Equal(t, graphql.EnumValue("name"), v)

	all := Flows(FlowsOptions{AllVersions: true}, DefaultDefaults())
	assert.False(t, all.Root.Args.Has("distinct_on"))
}

func TestFlows_Limit(t *testing.T) {
	req := Flows(FlowsOptions{}, Defaults{Limit: 25})
	v, _ := req.Root.Args.Get("limit")
	assert.Equal(t, 25, v)

	req = Flows(FlowsOptions{Limit: ptr(-1)}, Defaults{Limit: 25})
	v, _ = req.Root.Args.Get("limit")
	assert.Equal(t, -1, v, "limit is not validated locally")
}

func TestFlows_QueryText(t *testing.T) {
	req := Flows(FlowsOptions{Name: ptr("My-Flow")}, DefaultDefaults())
	want := `query { flow(where: {_and: {name: {_eq: "My-Flow"}}}, ` +
		`order_by: {name: asc, version: desc}, distinct_on: name, limit: 10) ` +
		`{ name version project { name } created } }`
	assert.Equal(t, want, req.String())
}

func TestProjects(t *testing.T) {
	req := Projects(ProjectsOptions{})
	assert.Nil(t, req.Where())
	assert.Equal(t,
		`query { project(order_by: {name: asc}) `+
			`{ name created description flows_aggregate(distinct_on: name) { aggregate { count } } } }`,
		req.String())
	assert.False(t, req.Root.Args.Has("limit"))

	req = Projects(ProjectsOptions{Name: ptr("etl")})
	want := graphql.Args{{Key: "_and", Value: graphql.Args{
		{Key: "name", Value: graphql.Args{{Key: "_eq", Value: "etl"}}},
	}}}
	if diff := cmp.Diff(want, req.Where()); diff != "" {
		t.Errorf("projects where mismatch (-want +got):\n%s", diff)
	}
}

func TestFlowRuns_ByCreated(t *testing.T) {
	req := FlowRuns(FlowRunsOptions{Flow: ptr("etl")}, DefaultDefaults())

	wantWhere := graphql.Args{{Key: "flow", Value: graphql.Args{{Key: "_and", Value: graphql.Args{
		{Key: "name", Value: graphql.Args{{Key: "_eq", Value: "etl"}}},
	}}}}}
	if diff := cmp.Diff(wantWhere, req.Where()); diff != "" {
		t.Errorf("where mismatch (-want +got):\n%s", diff)
	}
	assert.False(t, keys(req.Where())["start_time"])
	assert.Equal(t, graphql.Args{{Key: "created", Value: graphql.EnumValue("desc")}}, req.OrderBy())
}

func TestFlowRuns_ByCreatedNoFilters(t *testing.T) {
	req := FlowRuns(FlowRunsOptions{Mode: domain.FlowRunsByCreated}, DefaultDefaults())
	assert.Nil(t, req.Where())
	assert.Equal(t,
		`query { flow_run(limit: 10, order_by: {created: desc}) `+
			`{ flow { name } created state name duration start_time } }`,
		req.String())
}

func TestFlowRuns_Started(t *testing.T) {
	req := FlowRuns(FlowRunsOptions{Project: ptr("ops"), Mode: domain.FlowRunsStarted}, DefaultDefaults())

	wantWhere := graphql.Args{{Key: "_and", Value: graphql.Args{
		{Key: "flow", Value: graphql.Args{{Key: "_and", Value: graphql.Args{
			{Key: "project", Value: graphql.Args{{Key: "name", Value: graphql.Args{{Key: "_eq", Value: "ops"}}}}},
		}}}},
		{Key: "start_time", Value: graphql.Args{{Key: "_is_null", Value: false}}},
	}}}
	if diff := cmp.Diff(wantWhere, req.Where()); diff != "" {
		t.Errorf("where mismatch (-want +got):\n%s", diff)
	}
	assert.Equal(t, graphql.Args{{Key: "start_time", Value: graphql.EnumValue("desc")}}, req.OrderBy())
}

func TestFlowRuns_StartedNoFilters(t *testing.T) {
	req := FlowRuns(FlowRunsOptions{Mode: domain.FlowRunsStarted}, DefaultDefaults())
	k := keys(req.Where())
	assert.True(t, k["start_time"])
	assert.False(t, k["flow"])
	assert.Contains(t, req.String(), "start_time: {_is_null: false}")
}

func TestTasks(t *testing.T) {
	req := Tasks(TasksOptions{FlowName: ptr("Test-Flow"), FlowVersion: ptr(1)}, DefaultDefaults())

	wantWhere := graphql.Args{{Key: "_and", Value: graphql.Args{
		{Key: "flow", Value: graphql.Args{
			{Key: "name", Value: graphql.Args{{Key: "_eq", Value: "Test-Flow"}}},
			{Key: "version", Value: graphql.Args{{Key: "_eq", Value: 1}}},
		}},
	}}}
	if diff := cmp.Diff(wantWhere, req.Where()); diff != "" {
		t.Errorf("where mismatch (-want +got):\n%s", diff)
	}
	k := keys(req.Where())
	assert.False(t, k["project"])
	assert.Equal(t, graphql.Args{{Key: "created", Value: graphql.EnumValue("desc")}}, req.OrderBy())
	assert.Contains(t, req.String(), "{ name created flow { name version } mapped type }")
}

func TestUnsetFiltersNeverRendered(t *testing.T) {
	tests := []struct {
		name     string
		req      graphql.Request
		wantKeys []string
	}{
		{name: "flows", req: Flows(FlowsOptions{}, DefaultDefaults())},
		{name: "projects", req: Projects(ProjectsOptions{})},
		{name: "flow runs", req: FlowRuns(FlowRunsOptions{}, DefaultDefaults())},
		{
			name:     "started flow runs",
			req:      FlowRuns(FlowRunsOptions{Mode: domain.FlowRunsStarted}, DefaultDefaults()),
			wantKeys: []string{"_and", "start_time", "_is_null"},
		},
		{name: "tasks", req: Tasks(TasksOptions{}, DefaultDefaults())},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			k := keys(tt.req.Where())
			assert.Len(t, k, len(tt.wantKeys))
			for _, key := range tt.wantKeys {
				assert.True(t, k[key], "missing %s", key)
			}
			assert.NotContains(t, tt.req.String(), "_eq")
			assert.NotContains(t, tt.req.String(), ": null")
		})
	}
}

