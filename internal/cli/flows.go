package cli

import (
	"github.com/spf13/cobra"

	"github.com/finops-claw-gang/flowmeta/internal/config"
	"github.com/finops-claw-gang/flowmeta/internal/query"
)

func newFlowsCmd(app func() *App) *cobra.Command {
	var (
		name, project               string
		version, limit              int
		allVersions, openPlayground bool
	)

	cmd := &cobra.Command{
		Use:   "flows",
		Short: "Query information regarding your flows",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			a := app()
			req := query.Flows(query.FlowsOptions{
				Name:        changed(cmd, "name", &name),
				Version:     changed(cmd, "version", &version),
				Project:     changed(cmd, "project", &project),
				Limit:       changed(cmd, "limit", &limit),
				AllVersions: allVersions,
			}, a.Defaults)

			if openPlayground {
				return a.Playground.Open(cmd.Context(), req)
			}

			flows, err := a.Querier.ListFlows(cmd.Context(), req)
			if err != nil {
				return err
			}
			return flowTable(flows, a.now()).Write(cmd.OutOrStdout())
		},
	}

	f := cmd.Flags()
	f.StringVarP(&name, "name", "n", "", "a flow name to query")
	f.IntVarP(&version, "version", "v", 0, "a flow version to query")
	f.StringVarP(&project, "project", "p", "", "the name of a project to query")
	f.IntVarP(&limit, "limit", "l", config.DefaultLimit, "a limit amount of flows to query")
	f.BoolVar(&allVersions, "all-versions", false, "query all flow versions")
	addPlaygroundFlag(f, &openPlayground)
	return cmd
}
