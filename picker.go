package opselector

import (
	"context"
	"errors"
	"fmt"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/ethereum-optimism/infra/op-selector/metrics"
	"github.com/ethereum-optimism/infra/op-selector/registry"
	"github.com/ethereum-optimism/infra/op-selector/selector"
	"github.com/ethereum-optimism/optimism/op-service/cliapp"
)

// picker implements the cliapp.Lifecycle interface.
var _ cliapp.Lifecycle = &picker{}

// picker selects suites from a catalog and prints the result.
type picker struct {
	config    *Config
	version   string
	registry  *registry.Registry
	formatter ResultFormatter
	tracer    trace.Tracer

	running atomic.Bool

	shutdownCallback func(error) // Callback to signal application shutdown
}

func New(ctx context.Context, config *Config, version string, shutdownCallback func(error)) (*picker, error) {
	if config == nil {
		return nil, errors.New("config is required")
	}

	config.Log.Debug("Creating picker with config",
		"catalog", config.CatalogFile,
		"selection", config.Selection.Kind,
		"pattern", config.Selection.Pattern,
		"format", config.Format)

	reg, err := registry.NewRegistry(registry.Config{
		Log:         config.Log,
		CatalogFile: config.CatalogFile,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create registry: %w", err)
	}

	return &picker{
		config:           config,
		version:          version,
		registry:         reg,
		formatter:        NewFormatter(config.Format, config.Output),
		tracer:           otel.Tracer("op-selector"),
		shutdownCallback: shutdownCallback,
	}, nil
}

// Start runs a single selection and triggers shutdown once it is printed.
// Start implements the cliapp.Lifecycle interface.
func (p *picker) Start(ctx context.Context) error {
	p.running.Store(true)
	p.config.Log.Info("Starting op-selector", "version", p.version)

	result, err := p.Run(ctx)
	if err != nil {
		p.config.Log.Error("Runtime error selecting suites", "error", err)
		return NewRuntimeError(err)
	}

	if err := p.formatter.FormatResults(result); err != nil {
		return NewRuntimeError(fmt.Errorf("failed to print results: %w", err))
	}

	if err := metrics.Push(p.config.MetricsPushURL, p.config.MetricsJob); err != nil {
		// Metrics are best effort; the selection itself succeeded.
		p.config.Log.Warn("Failed to push metrics", "error", err)
		metrics.RecordErrorDetails("push", err)
	}

	if result.Empty() && p.config.FailOnEmpty {
		return NewEmptySelectionError(result.Initial.String())
	}

	go func() {
		p.shutdownCallback(nil)
	}()
	return nil
}

// Run makes one forward pass over the catalog with a fresh selector.
func (p *picker) Run(ctx context.Context) (*Result, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	runID := uuid.New().String()
	sel := p.config.Selection.Build()
	suites := p.registry.GetSuites()

	_, span := p.tracer.Start(ctx, fmt.Sprintf("select %s", sel))
	defer span.End()
	span.SetAttributes(
		attribute.String("run_id", runID),
		attribute.String("mode", sel.Mode().String()),
		attribute.String("pattern", sel.Pattern()),
		attribute.Int("catalog_size", len(suites)),
	)

	log := p.config.Log.New("run_id", runID)
	log.Info("Selecting suites", "selector", sel, "catalog_size", len(suites))

	start := time.Now()
	result := &Result{
		RunID:      runID,
		Initial:    sel,
		Considered: len(suites),
	}

	// Step suite by suite only while an AutoMatch commitment is still
	// pending; once the mode is terminal the rest is a plain forward pass.
	i := 0
	for ; i < len(suites) && !sel.Mode().Terminal(); i++ {
		suite := suites[i]
		modeInEffect := sel.Mode()
		ok, next := sel.Match(suite)
		metrics.RecordSelection(modeInEffect.String(), ok)

		if next.Mode() != modeInEffect {
			result.Transition = &Transition{
				From:          modeInEffect,
				To:            next.Mode(),
				Trigger:       suite,
				LockedLibrary: next.LockedLibrary(),
			}
			metrics.RecordTransition(modeInEffect.String(), next.Mode().String())
			log.Info("Selector committed",
				"from", modeInEffect,
				"to", next.Mode(),
				"trigger", suite.FullName(),
				"lockedLibrary", next.LockedLibrary())
		}
		sel = next

		if ok {
			log.Debug("Suite selected", "suite", suite.FullName(), "manual", suite.Manual())
			result.Selected = append(result.Selected, suite)
		}
	}

	rest := suites[i:]
	selected, sel := selector.Select(sel, rest)
	metrics.RecordSelections(sel.Mode().String(), len(selected), len(rest)-len(selected))
	result.Selected = append(result.Selected, selected...)

	result.Final = sel
	result.Duration = time.Since(start)

	metrics.RecordSelected(result.Initial.Mode().String(), len(result.Selected))
	span.SetAttributes(
		attribute.Int("selected", len(result.Selected)),
		attribute.String("final_mode", sel.Mode().String()),
	)

	if result.Empty() {
		log.Warn("No suites selected", "selector", result.Initial, "catalog_size", len(suites))
	} else {
		log.Info("Selection completed", "selected", len(result.Selected), "final_mode", sel.Mode())
	}

	return result, nil
}

// Stop implements the cliapp.Lifecycle interface.
func (p *picker) Stop(ctx context.Context) error {
	p.config.Log.Info("Stopping op-selector")
	p.running.Store(false)
	return nil
}

// Stopped implements the cliapp.Lifecycle interface.
func (p *picker) Stopped() bool {
	return !p.running.Load()
}
