// Package query translates command options into GraphQL requests against
// the metadata store. Builders are pure: they only construct requests.
package query

import (
	"github.com/finops-claw-gang/flowmeta/internal/domain"
	"github.com/finops-claw-gang/flowmeta/internal/graphql"
)

// Defaults holds option defaults applied when the caller leaves one unset.
type Defaults struct {
	// Limit bounds result count. It is sent as-is; the server caps it.
	Limit int
}

// DefaultDefaults returns the built-in defaults.
func DefaultDefaults() Defaults {
	return Defaults{Limit: 10}
}

func (d Defaults) limit(opt *int) int {
	if opt != nil {
		return *opt
	}
	return d.Limit
}

var (
	asc  = graphql.EnumValue("asc")
	desc = graphql.EnumValue("desc")
)

// FlowsOptions filters the flows query. Nil fields are unset.
type FlowsOptions struct {
	Name    *string
	Version *int
	Project *string
	Limit   *int
	// AllVersions disables the distinct-on-name dedup.
	AllVersions bool
}

// Flows builds the flow listing: name ascending then version descending,
// one row per flow name unless AllVersions is set.
func Flows(opts FlowsOptions, d Defaults) graphql.Request {
	args := where(and(graphql.Args{
		{Key: "name", Value: eq(graphql.Opt(opts.Name))},
		{Key: "version", Value: eq(graphql.Opt(opts.Version))},
		{Key: "project", Value: graphql.Args{{Key: "name", Value: eq(graphql.Opt(opts.Project))}}},
	}))
	args = append(args, graphql.Arg{Key: "order_by", Value: graphql.Args{
		{Key: "name", Value: asc},
		{Key: "version", Value: desc},
	}})
	if !opts.AllVersions {
		args = append(args, graphql.Arg{Key: "distinct_on", Value: graphql.EnumValue("name")})
	}
	args = append(args, graphql.Arg{Key: "limit", Value: d.limit(opts.Limit)})

	return graphql.Request{Root: graphql.Selection{
		Name: string(domain.EntityFlow),
		Args: args,
		Fields: []graphql.Selection{
			{Name: "name"},
			{Name: "version"},
			graphql.Field("project", graphql.Fields("name")...),
			{Name: "created"},
		},
	}}
}

// ProjectsOptions filters the projects query.
type ProjectsOptions struct {
	Name *string
}

// Projects builds the project listing ordered by name, each with its count
// of distinct flow names.
func Projects(opts ProjectsOptions) graphql.Request {
	args := where(and(graphql.Args{
		{Key: "name", Value: eq(graphql.Opt(opts.Name))},
	}))
	args = append(args, graphql.Arg{Key: "order_by", Value: graphql.Args{{Key: "name", Value: asc}}})

	flowCount := graphql.Field("flows_aggregate", graphql.Field("aggregate", graphql.Fields("count")...)).
		WithArgs(graphql.Args{{Key: "distinct_on", Value: graphql.EnumValue("name")}})

	return graphql.Request{Root: graphql.Selection{
		Name: string(domain.EntityProject),
		Args: args,
		Fields: []graphql.Selection{
			{Name: "name"},
			{Name: "created"},
			{Name: "description"},
			flowCount,
		},
	}}
}

// FlowRunsOptions filters the flow runs query.
type FlowRunsOptions struct {
	Flow    *string
	Project *string
	Limit   *int
	Mode    domain.FlowRunMode
}

// FlowRuns builds the flow run listing in the shape selected by opts.Mode.
// The zero Mode behaves as FlowRunsByCreated.
func FlowRuns(opts FlowRunsOptions, d Defaults) graphql.Request {
	flow := and(graphql.Args{
		{Key: "name", Value: eq(graphql.Opt(opts.Flow))},
		{Key: "project", Value: graphql.Args{{Key: "name", Value: eq(graphql.Opt(opts.Project))}}},
	})

	var pred, order graphql.Args
	switch opts.Mode {
	case domain.FlowRunsStarted:
		pred, order = startedRuns(flow)
	default:
		pred, order = createdRuns(flow)
	}

	args := where(pred)
	args = append(args,
		graphql.Arg{Key: "limit", Value: d.limit(opts.Limit)},
		graphql.Arg{Key: "order_by", Value: order},
	)

	return graphql.Request{Root: graphql.Selection{
		Name: string(domain.EntityFlowRun),
		Args: args,
		Fields: []graphql.Selection{
			graphql.Field("flow", graphql.Fields("name")...),
			{Name: "created"},
			{Name: "state"},
			{Name: "name"},
			{Name: "duration"},
			{Name: "start_time"},
		},
	}}
}

// createdRuns matches runs of the filtered flow, newest created first.
func createdRuns(flow graphql.Args) (pred, order graphql.Args) {
	pred = graphql.Args{{Key: "flow", Value: flow}}
	order = graphql.Args{{Key: "created", Value: desc}}
	return pred, order
}

// startedRuns additionally requires a start time and orders by it.
func startedRuns(flow graphql.Args) (pred, order graphql.Args) {
	pred = and(graphql.Args{
		{Key: "flow", Value: flow},
		{Key: "start_time", Value: graphql.Args{{Key: "_is_null", Value: false}}},
	})
	order = graphql.Args{{Key: "start_time", Value: desc}}
	return pred, order
}

// TasksOptions filters the tasks query.
type TasksOptions struct {
	Name        *string
	FlowName    *string
	FlowVersion *int
	Project     *string
	Limit       *int
}

// Tasks builds the task listing, newest created first.
func Tasks(opts TasksOptions, d Defaults) graphql.Request {
	args := where(and(graphql.Args{
		{Key: "name", Value: eq(graphql.Opt(opts.Name))},
		{Key: "flow", Value: graphql.Args{
			{Key: "name", Value: eq(graphql.Opt(opts.FlowName))},
			{Key: "project", Value: graphql.Args{{Key: "name", Value: eq(graphql.Opt(opts.Project))}}},
			{Key: "version", Value: eq(graphql.Opt(opts.FlowVersion))},
		}},
	}))
	args = append(args,
		graphql.Arg{Key: "limit", Value: d.limit(opts.Limit)},
		graphql.Arg{Key: "order_by", Value: graphql.Args{{Key: "created", Value: desc}}},
	)

	return graphql.Request{Root: graphql.Selection{
		Name: string(domain.EntityTask),
		Args: args,
		Fields: []graphql.Selection{
			{Name: "name"},
			{Name: "created"},
			graphql.Field("flow", graphql.Fields("name", "version")...),
			{Name: "mapped"},
			{Name: "type"},
		},
	}}
}

func eq(v any) graphql.Args {
	return graphql.Args{{Key: "_eq", Value: v}}
}

func and(clauses graphql.Args) graphql.Args {
	return graphql.Args{{Key: "_and", Value: clauses}}
}

// where returns a root argument list holding the compacted predicate, or an
// empty list when every clause was unset.
func where(pred graphql.Args) graphql.Args {
	pred = pred.Compact()
	if len(pred) == 0 {
		return nil
	}
	return graphql.Args{{Key: "where", Value: pred}}
}
