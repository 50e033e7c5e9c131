package cli

import (
	"time"

	"github.com/finops-claw-gang/flowmeta/internal/domain"
	"github.com/finops-claw-gang/flowmeta/internal/render"
	"github.com/finops-claw-gang/flowmeta/internal/timefmt"
)

var (
	flowHeaders    = []string{"NAME", "VERSION", "PROJECT NAME", "AGE"}
	projectHeaders = []string{"NAME", "FLOW COUNT", "AGE", "DESCRIPTION"}
	flowRunHeaders = []string{"NAME", "FLOW NAME", "STATE", "AGE", "START TIME", "DURATION"}
	taskHeaders    = []string{"NAME", "FLOW NAME", "FLOW VERSION", "AGE", "MAPPED", "TYPE"}
)

func flowTable(flows []domain.Flow, now time.Time) *render.Table {
	tbl := render.NewTable(flowHeaders...)
	for _, f := range flows {
		tbl.Append(f.Name, f.Version, f.Project.Name, timefmt.Age(f.Created, now))
	}
	return tbl
}

func projectTable(projects []domain.Project, now time.Time) *render.Table {
	tbl := render.NewTable(projectHeaders...)
	for _, p := range projects {
		tbl.Append(p.Name, p.FlowCount(), timefmt.Age(p.Created, now), p.Description)
	}
	return tbl
}

func flowRunTable(runs []domain.FlowRun, now time.Time, loc *time.Location) *render.Table {
	tbl := render.NewTable(flowRunHeaders...)
	for _, r := range runs {
		tbl.Append(
			r.Name,
			r.Flow.Name,
			r.State,
			timefmt.Age(r.Created, now),
			timefmt.OptionalDateTime(r.StartTime, loc),
			r.Duration,
		)
	}
	return tbl
}

func taskTable(tasks []domain.Task, now time.Time) *render.Table {
	tbl := render.NewTable(taskHeaders...)
	for _, t := range tasks {
		tbl.Append(t.Name, t.Flow.Name, t.Flow.Version, timefmt.Age(t.Created, now), t.Mapped, t.Type)
	}
	return tbl
}
