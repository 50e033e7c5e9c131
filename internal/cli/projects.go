package cli

import (
	"github.com/spf13/cobra"

	"github.com/finops-claw-gang/flowmeta/internal/query"
)

func newProjectsCmd(app func() *App) *cobra.Command {
	var (
		name           string
		openPlayground bool
	)

	cmd := &cobra.Command{
		Use:   "projects",
		Short: "Query information regarding your projects",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			a := app()
			req := query.Projects(query.ProjectsOptions{Name: changed(cmd, "name", &name)})

			if openPlayground {
				return a.Playground.Open(cmd.Context(), req)
			}

			projects, err := a.Querier.ListProjects(cmd.Context(), req)
			if err != nil {
				return err
			}
			return projectTable(projects, a.now()).Write(cmd.OutOrStdout())
		},
	}

	f := cmd.Flags()
	f.StringVarP(&name, "name", "n", "", "a project name to query")
	addPlaygroundFlag(f, &openPlayground)
	return cmd
}
