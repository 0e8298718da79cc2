package main

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/ethereum/go-ethereum/log"
	"github.com/honeycombio/otel-config-go/otelconfig"
	"github.com/urfave/cli/v2"

	opselector "github.com/ethereum-optimism/infra/op-selector"
	"github.com/ethereum-optimism/infra/op-selector/exitcodes"
	"github.com/ethereum-optimism/infra/op-selector/flags"
	"github.com/ethereum-optimism/optimism/devnet-sdk/telemetry"
	"github.com/ethereum-optimism/optimism/op-service/cliapp"
	"github.com/ethereum-optimism/optimism/op-service/ctxinterrupt"
	oplog "github.com/ethereum-optimism/optimism/op-service/log"
)

var (
	Version   = "v0.1.0"
	GitCommit = ""
	GitDate   = ""
)

func main() {
	app := cli.NewApp()
	app.Version = fmt.Sprintf("%s-%s-%s", Version, GitCommit, GitDate)
	app.Name = "op-selector"
	app.Usage = "Select which test suites a run should execute"
	app.ArgsUsage = "[pattern]"
	app.Description = "op-selector resolves a suite, module or library pattern against a suite catalog. " +
		"A pattern is matched against suite names first, then modules, then libraries, and the first " +
		"hit fixes the granularity for the rest of the catalog."
	app.Flags = cliapp.ProtectFlags(flags.Flags)
	app.Action = cliapp.LifecycleCmd(run)
	app.ExitErrHandler = func(c *cli.Context, err error) {
		var exitErr cli.ExitCoder
		if errors.As(err, &exitErr) {
			cli.HandleExitCoder(exitErr)
		} else if err != nil {
			if opselector.IsRuntimeError(err) {
				cli.HandleExitCoder(cli.Exit(err.Error(), exitcodes.RuntimeErr))
			} else if opselector.IsEmptySelectionError(err) {
				cli.HandleExitCoder(cli.Exit(err.Error(), exitcodes.EmptySelection))
			} else {
				// Anything else is a usage or startup problem
				cli.HandleExitCoder(cli.Exit(err.Error(), exitcodes.RuntimeErr))
			}
		}
	}

	// Start telemetry
	ctx, shutdown, err := telemetry.SetupOpenTelemetry(
		context.Background(),
		otelconfig.WithServiceName(app.Name),
		otelconfig.WithServiceVersion(app.Version),
	)
	if err != nil {
		log.Crit("Failed to setup open telemetry", "message", err)
	}
	defer shutdown()

	ctx = ctxinterrupt.WithSignalWaiterMain(ctx)
	err = app.RunContext(ctx, os.Args)
	if err != nil {
		log.Crit("Application failed", "message", err)
	}
}

func run(ctx *cli.Context, closeApp context.CancelCauseFunc) (cliapp.Lifecycle, error) {
	// Logs go to stderr so stdout carries only the selected suites.
	logCfg := oplog.ReadCLIConfig(ctx)
	log := oplog.NewLogger(os.Stderr, logCfg)
	oplog.SetGlobalLogHandler(log.Handler())
	oplog.SetupDefaults()

	cfg, err := opselector.NewConfig(ctx, log)
	if err != nil {
		return nil, opselector.NewRuntimeError(fmt.Errorf("failed to create config: %w", err))
	}

	cfg.Log.Debug("Config", "config", cfg)

	picker, err := opselector.New(ctx.Context, cfg, Version, closeApp)
	if err != nil {
		return nil, opselector.NewRuntimeError(fmt.Errorf("failed to create picker: %w", err))
	}

	return picker, nil
}
