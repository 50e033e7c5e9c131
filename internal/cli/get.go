package cli

import (
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

func newGetCmd(app func() *App) *cobra.Command {
	get := &cobra.Command{
		Use:   "get <object>",
		Short: "Query cloud metadata",
		Long: `Query flows, projects, flow runs, and tasks from the cloud metadata store.

Every command accepts --playground to open the query in the GraphQL
playground instead of running it.`,
		Example: `  $ flowmeta get flows
  NAME     VERSION    PROJECT NAME    AGE
  My-Flow  3          My-Project      3 days ago

  $ flowmeta get flows --project New-Proj --all-versions
  NAME       VERSION    PROJECT NAME    AGE
  Test-Flow  2          New-Proj        22 hours ago
  Test-Flow  1          New-Proj        1 month ago

  $ flowmeta get tasks --flow-name Test-Flow
  NAME         FLOW NAME    FLOW VERSION    AGE         MAPPED    TYPE
  first_task   Test-Flow    1               5 days ago  false     prefect.tasks.core.function.FunctionTask
  second_task  Test-Flow    1               5 days ago  true      prefect.tasks.core.function.FunctionTask`,
	}

	get.AddCommand(
		newFlowsCmd(app),
		newProjectsCmd(app),
		newFlowRunsCmd(app),
		newTasksCmd(app),
	)
	return get
}

func addPlaygroundFlag(f *pflag.FlagSet, playground *bool) {
	f.BoolVar(playground, "playground", false, "open this query in the playground instead of running it")
}
