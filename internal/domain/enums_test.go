package domain

import "testing"

func TestFlowRunModeFor(t *testing.T) {
	t.Parallel()
	if got := FlowRunModeFor(true); got != FlowRunsStarted {
		t.Errorf("FlowRunModeFor(true) = %q, want %q", got, FlowRunsStarted)
	}
	if got := FlowRunModeFor(false); got != FlowRunsByCreated {
		t.Errorf("FlowRunModeFor(false) = %q, want %q", got, FlowRunsByCreated)
	}
}
