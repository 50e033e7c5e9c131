// Package cli implements the flowmeta command tree: a `get` group whose
// commands query the metadata store and print aligned tables.
package cli

import (
	"time"

	"github.com/spf13/cobra"

	"github.com/finops-claw-gang/flowmeta/internal/playground"
	"github.com/finops-claw-gang/flowmeta/internal/querier"
	"github.com/finops-claw-gang/flowmeta/internal/query"
)

// App carries the collaborators shared by every command.
type App struct {
	Querier    querier.MetadataQuerier
	Playground playground.Opener
	Defaults   query.Defaults
	// Location is where absolute times are shown; nil means local.
	Location *time.Location
	// Now is the reference for relative ages; nil means time.Now.
	Now func() time.Time
}

func (a *App) now() time.Time {
	if a.Now == nil {
		return time.Now()
	}
	return a.Now()
}

func (a *App) location() *time.Location {
	if a.Location == nil {
		return time.Local
	}
	return a.Location
}

// Loader builds the App once flags are parsed. configPath is the value of
// --config, empty when unset.
type Loader func(configPath string) (*App, error)

// NewRootCmd creates the root command. load runs before any subcommand.
func NewRootCmd(version string, load Loader) *cobra.Command {
	var (
		configPath string
		app        *App
	)

	root := &cobra.Command{
		Use:           "flowmeta",
		Short:         "Query workflow metadata from the cloud API",
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(_ *cobra.Command, _ []string) error {
			a, err := load(configPath)
			if err != nil {
				return err
			}
			app = a
			return nil
		},
	}
	root.PersistentFlags().StringVar(&configPath, "config", "", "path to a YAML config file (default $FLOWMETA_CONFIG)")

	root.AddCommand(newGetCmd(func() *App { return app }))
	return root
}

// changed returns v when the flag was given on the command line, else nil,
// so unset options stay out of the query.
func changed[T any](cmd *cobra.Command, flag string, v *T) *T {
	if cmd.Flags().Changed(flag) {
		return v
	}
	return nil
}
