// Command flowmeta queries flows, projects, flow runs, and tasks from the
// cloud metadata API and prints them as tables.
//
// Usage:
//
//	flowmeta get flows     [--name N] [--version V] [--project P] [--limit L] [--all-versions]
//	flowmeta get projects  [--name N]
//	flowmeta get flow-runs [--flow F] [--project P] [--limit L] [--started]
//	flowmeta get tasks     [--name N] [--flow-name F] [--flow-version V] [--project P] [--limit L]
//
// Supports stub mode (fixtures) and production mode (cloud API).
package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/finops-claw-gang/flowmeta/internal/cli"
	"github.com/finops-claw-gang/flowmeta/internal/config"
	"github.com/finops-claw-gang/flowmeta/internal/connectors/cloud"
	"github.com/finops-claw-gang/flowmeta/internal/observability"
	"github.com/finops-claw-gang/flowmeta/internal/playground"
	"github.com/finops-claw-gang/flowmeta/internal/querier"
	"github.com/finops-claw-gang/flowmeta/internal/query"
)

const serviceName = "flowmeta"

var version = "dev"

func main() {
	ctx := context.Background()

	var shutdown func(context.Context) error
	root := cli.NewRootCmd(version, func(configPath string) (*cli.App, error) {
		app, stop, err := setup(ctx, configPath)
		shutdown = stop
		return app, err
	})

	err := root.ExecuteContext(ctx)
	if shutdown != nil {
		if serr := shutdown(ctx); serr != nil {
			slog.Warn("telemetry shutdown failed", "error", serr)
		}
	}
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

// setup builds the App from configuration. The returned shutdown func is nil
// unless telemetry was started.
func setup(ctx context.Context, configPath string) (*cli.App, func(context.Context) error, error) {
	var (
		cfg config.Config
		err error
	)
	if configPath != "" {
		cfg, err = config.Load(configPath)
	} else {
		cfg, err = config.LoadFromEnv()
	}
	if err != nil {
		return nil, nil, err
	}

	observability.InitLogger(cfg.LogLevel)

	loc, err := cfg.Location()
	if err != nil {
		return nil, nil, err
	}

	var shutdown func(context.Context) error
	if cfg.OTelEnabled {
		shutdown, err = initTelemetry(ctx)
		if err != nil {
			return nil, nil, err
		}
	}

	metrics, err := observability.NewMetrics()
	if err != nil {
		return nil, shutdown, err
	}

	var q querier.MetadataQuerier
	switch cfg.Mode {
	case config.ModeStub:
		slog.Debug("using stub fixtures", "dir", cfg.FixturesDir)
		q = &querier.StubQuerier{FixturesDir: cfg.FixturesDir}
	default:
		opts := []cloud.Option{cloud.WithToken(cfg.APIToken)}
		if cfg.OTelEnabled {
			opts = append(opts, cloud.WithTracing())
		}
		q = querier.New(cloud.New(cfg.APIURL, cfg.Timeout, opts...), metrics)
	}

	return &cli.App{
		Querier:    q,
		Playground: playground.NewBrowserOpener(cfg.PlaygroundURL, nil),
		Defaults:   query.Defaults{Limit: cfg.DefaultLimit},
		Location:   loc,
	}, shutdown, nil
}

// initTelemetry starts tracing and metrics export. Metrics are only exported
// by the returned func, so it must run before the process exits.
func initTelemetry(ctx context.Context) (func(context.Context) error, error) {
	stopTracer, err := observability.InitTracer(ctx, serviceName, version)
	if err != nil {
		return nil, err
	}
	stopMeter, err := observability.InitMeter(ctx, serviceName, version)
	if err != nil {
		return nil, errors.Join(err, stopTracer(ctx))
	}
	return func(ctx context.Context) error {
		return errors.Join(stopMeter(ctx), stopTracer(ctx))
	}, nil
}
