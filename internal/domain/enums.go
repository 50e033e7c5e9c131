package domain

// FlowRunMode selects how flow runs are filtered and ordered.
type FlowRunMode string

const (
	// FlowRunsByCreated lists every run, newest created first.
	FlowRunsByCreated FlowRunMode = "created"
	// FlowRunsStarted lists only runs with a start time, latest start first.
	FlowRunsStarted FlowRunMode = "started"
)

// FlowRunModeFor maps the --started flag to a mode.
func FlowRunModeFor(started bool) FlowRunMode {
	if started {
		return FlowRunsStarted
	}
	return FlowRunsByCreated
}

// Entity names the root query field of a metadata collection.
type Entity string

const (
	EntityFlow    Entity = "flow"
	EntityProject Entity = "project"
	EntityFlowRun Entity = "flow_run"
	EntityTask    Entity = "task"
)
