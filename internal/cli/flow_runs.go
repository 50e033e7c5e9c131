package cli

import (
	"github.com/spf13/cobra"

	"github.com/finops-claw-gang/flowmeta/internal/config"
	"github.com/finops-claw-gang/flowmeta/internal/domain"
	"github.com/finops-claw-gang/flowmeta/internal/query"
)

func newFlowRunsCmd(app func() *App) *cobra.Command {
	var (
		flow, project           string
		limit                   int
		started, openPlayground bool
	)

	cmd := &cobra.Command{
		Use:   "flow-runs",
		Short: "Query information regarding flow runs",
		Long: `Query information regarding flow runs.

By default runs are listed newest first. With --started only runs that have
a start time are listed, ordered by start time.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			a := app()
			req := query.FlowRuns(query.FlowRunsOptions{
				Flow:    changed(cmd, "flow", &flow),
				Project: changed(cmd, "project", &project),
				Limit:   changed(cmd, "limit", &limit),
				Mode:    domain.FlowRunModeFor(started),
			}, a.Defaults)

			if openPlayground {
				return a.Playground.Open(cmd.Context(), req)
			}

			runs, err := a.Querier.ListFlowRuns(cmd.Context(), req)
			if err != nil {
				return err
			}
			return flowRunTable(runs, a.now(), a.location()).Write(cmd.OutOrStdout())
		},
	}

	f := cmd.Flags()
	f.IntVarP(&limit, "limit", "l", config.DefaultLimit, "a limit amount of flow runs to query")
	f.StringVarP(&flow, "flow", "f", "", "specify a flow's runs to query")
	f.StringVarP(&project, "project", "p", "", "specify a project's runs to query")
	f.BoolVarP(&started, "started", "s", false, "only retrieve started flow runs")
	addPlaygroundFlag(f, &openPlayground)
	return cmd
}
