package cli

import (
	"github.com/spf13/cobra"

	"github.com/finops-claw-gang/flowmeta/internal/config"
	"github.com/finops-claw-gang/flowmeta/internal/query"
)

func newTasksCmd(app func() *App) *cobra.Command {
	var (
		name, flowName, project string
		flowVersion, limit      int
		openPlayground          bool
	)

	cmd := &cobra.Command{
		Use:   "tasks",
		Short: "Query information regarding your tasks",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			a := app()
			req := query.Tasks(query.TasksOptions{
				Name:        changed(cmd, "name", &name),
				FlowName:    changed(cmd, "flow-name", &flowName),
				FlowVersion: changed(cmd, "flow-version", &flowVersion),
				Project:     changed(cmd, "project", &project),
				Limit:       changed(cmd, "limit", &limit),
			}, a.Defaults)

			if openPlayground {
				return a.Playground.Open(cmd.Context(), req)
			}

			tasks, err := a.Querier.ListTasks(cmd.Context(), req)
			if err != nil {
				return err
			}
			return taskTable(tasks, a.now()).Write(cmd.OutOrStdout())
		},
	}

	f := cmd.Flags()
	f.StringVarP(&name, "name", "n", "", "a task name to query")
	f.StringVar(&flowName, "flow-name", "", "a flow name to query")
	f.IntVar(&flowVersion, "flow-version", 0, "a flow version to query")
	f.StringVarP(&project, "project", "p", "", "the name of a project to query")
	f.IntVarP(&limit, "limit", "l", config.DefaultLimit, "a limit amount of tasks to query")
	addPlaygroundFlag(f, &openPlayground)
	return cmd
}
