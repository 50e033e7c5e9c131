// Package domain holds the typed, read-only metadata records returned by the
// cloud metadata store. Each record mirrors the selection tree of the query
// that fetches it; JSON tags are the GraphQL field names.
package domain

import "time"

// ProjectRef is the nested project selection on a flow.
type ProjectRef struct {
	Name string `json:"name"`
}

// FlowRef is the nested flow selection on flow runs and tasks.
type FlowRef struct {
	Name    string `json:"name"`
	Version int    `json:"version,omitempty"`
}

// Flow is a registered flow version.
type Flow struct {
	Name    string     `json:"name"`
	Version int        `json:"version"`
	Project ProjectRef `json:"project"`
	Created time.Time  `json:"created"`
}

// Count is the aggregate payload of an `_aggregate` field.
type Count struct {
	Count int `json:"count"`
}

// Aggregate wraps the `aggregate { count }` selection.
type Aggregate struct {
	Aggregate Count `json:"aggregate"`
}

// Project groups flows.
type Project struct {
	Name           string    `json:"name"`
	Created        time.Time `json:"created"`
	Description    *string   `json:"description"`
	FlowsAggregate Aggregate `json:"flows_aggregate"`
}

// FlowCount is the number of distinct flow names in the project.
func (p Project) FlowCount() int {
	return p.FlowsAggregate.Aggregate.Count
}

// FlowRun is a single execution of a flow. StartTime is nil until the run
// has started; Duration is the server's interval text, nil while unknown.
type FlowRun struct {
	Name      string     `json:"name"`
	Flow      FlowRef    `json:"flow"`
	State     string     `json:"state"`
	Created   time.Time  `json:"created"`
	StartTime *time.Time `json:"start_time"`
	Duration  *string    `json:"duration"`
}

// Task is a task definition belonging to a flow version.
type Task struct {
	Name    string    `json:"name"`
	Flow    FlowRef   `json:"flow"`
	Created time.Time `json:"created"`
	Mapped  bool      `json:"mapped"`
	Type    string    `json:"type"`
}
