package opselector

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/urfave/cli/v2"

	"github.com/ethereum-optimism/infra/op-selector/flags"
	"github.com/ethereum-optimism/infra/op-selector/selector"
	"github.com/ethereum/go-ethereum/log"
)

// SelectionKind names the constructor used to build the starting selector
type SelectionKind string

const (
	SelectAll     SelectionKind = "all"
	SelectAuto    SelectionKind = "auto"
	SelectSuite   SelectionKind = "suite"
	SelectLibrary SelectionKind = "library"
)

// SelectorSpec describes how to build the selector for a run
type SelectorSpec struct {
	Kind    SelectionKind
	Pattern string
}

// Build returns a fresh selector. Each call returns an independent value, so a
// spec can be reused across runs even though an AutoMatch selector narrows.
func (s SelectorSpec) Build() selector.Selector {
	switch s.Kind {
	case SelectAuto:
		return selector.MatchAuto(s.Pattern)
	case SelectSuite:
		return selector.MatchSuite(s.Pattern)
	case SelectLibrary:
		return selector.MatchLibrary(s.Pattern)
	case SelectAll:
		return selector.MatchAll()
	}
	return selector.MatchAll()
}

// Config holds the application configuration
type Config struct {
	CatalogFile    string
	Selection      SelectorSpec
	Format         flags.OutputFormat
	FailOnEmpty    bool   // Treat an empty selection as a failure
	MetricsPushURL string // Pushgateway URL, empty disables pushing
	MetricsJob     string
	Output         io.Writer // Where selected suites are printed
	Log            log.Logger
}

// NewConfig creates a new Config from cli context
func NewConfig(ctx *cli.Context, log log.Logger) (*Config, error) {
	if err := flags.CheckRequired(ctx); err != nil {
		return nil, fmt.Errorf("missing required flags: %w", err)
	}
	if err := flags.CheckExclusive(ctx); err != nil {
		return nil, fmt.Errorf("invalid selection: %w", err)
	}

	catalog := ctx.String(flags.Catalog.Name)
	if catalog == "" {
		return nil, errors.New("catalog file is required")
	}
	absCatalog, err := filepath.Abs(catalog)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve absolute path for catalog '%s': %w", catalog, err)
	}

	format := flags.OutputFormat(ctx.String(flags.Format.Name))
	if !format.IsValid() {
		return nil, fmt.Errorf("invalid output format: %s. Must be one of: %s, %s",
			format, flags.FormatTable, flags.FormatNames)
	}

	return &Config{
		CatalogFile:    absCatalog,
		Selection:      selectionFromContext(ctx),
		Format:         format,
		FailOnEmpty:    ctx.Bool(flags.FailOnEmpty.Name),
		MetricsPushURL: ctx.String(flags.MetricsPushURL.Name),
		MetricsJob:     ctx.String(flags.MetricsJob.Name),
		Output:         os.Stdout,
		Log:            log,
	}, nil
}

// selectionFromContext maps the CLI surface onto a selector constructor:
// --suite and --library are explicit, a positional pattern is resolved
// automatically and no argument selects everything not marked manual.
func selectionFromContext(ctx *cli.Context) SelectorSpec {
	if name := ctx.String(flags.Suite.Name); name != "" {
		return SelectorSpec{Kind: SelectSuite, Pattern: name}
	}
	if name := ctx.String(flags.Library.Name); name != "" {
		return SelectorSpec{Kind: SelectLibrary, Pattern: name}
	}
	if ctx.Args().Present() {
		return SelectorSpec{Kind: SelectAuto, Pattern: ctx.Args().First()}
	}
	return SelectorSpec{Kind: SelectAll}
}
