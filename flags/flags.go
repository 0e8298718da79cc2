package flags

import (
	"fmt"
	"strings"

	"github.com/urfave/cli/v2"

	opservice "github.com/ethereum-optimism/optimism/op-service"
	oplog "github.com/ethereum-optimism/optimism/op-service/log"
)

const EnvVarPrefix = "OP_SELECTOR"

// OutputFormat controls how the selected suites are printed
type OutputFormat string

const (
	FormatTable OutputFormat = "table"
	FormatNames OutputFormat = "names"
)

func (f OutputFormat) String() string {
	return string(f)
}

func (f OutputFormat) IsValid() bool {
	switch f {
	case FormatTable, FormatNames:
		return true
	}
	return false
}

// ValidOutputFormats returns every supported output format
func ValidOutputFormats() []OutputFormat {
	return []OutputFormat{FormatTable, FormatNames}
}

func validateFormat(value string) error {
	if OutputFormat(value).IsValid() {
		return nil
	}
	valid := make([]string, 0, len(ValidOutputFormats()))
	for _, f := range ValidOutputFormats() {
		valid = append(valid, f.String())
	}
	return fmt.Errorf("format must be one of: %s (got %q)", strings.Join(valid, ", "), value)
}

var (
	Catalog = &cli.StringFlag{
		Name:     "catalog",
		Value:    "",
		Required: true,
		EnvVars:  opservice.PrefixEnvVar(EnvVarPrefix, "CATALOG"),
		Usage:    "Path to the suite catalog manifest (eg. 'catalog.yaml')",
	}
	Suite = &cli.StringFlag{
		Name:    "suite",
		Value:   "",
		EnvVars: opservice.PrefixEnvVar(EnvVarPrefix, "SUITE"),
		Usage:   "Select exactly the suites with this name, including manual ones",
	}
	Library = &cli.StringFlag{
		Name:    "library",
		Value:   "",
		EnvVars: opservice.PrefixEnvVar(EnvVarPrefix, "LIBRARY"),
		Usage:   "Select every non-manual suite in this library",
	}
	Format = &cli.StringFlag{
		Name:    "format",
		Value:   FormatTable.String(),
		EnvVars: opservice.PrefixEnvVar(EnvVarPrefix, "FORMAT"),
		Usage:   "Output format for the selected suites ('table' or 'names')",
		Action: func(ctx *cli.Context, v string) error {
			return validateFormat(v)
		},
	}
	FailOnEmpty = &cli.BoolFlag{
		Name:    "fail-on-empty",
		Value:   false,
		EnvVars: opservice.PrefixEnvVar(EnvVarPrefix, "FAIL_ON_EMPTY"),
		Usage:   "Exit with code 1 when no suites are selected",
	}
	MetricsPushURL = &cli.StringFlag{
		Name:    "metrics.push-url",
		Value:   "",
		EnvVars: opservice.PrefixEnvVar(EnvVarPrefix, "METRICS_PUSH_URL"),
		Usage:   "Prometheus Pushgateway URL to push selection metrics to. Disabled when empty.",
	}
	MetricsJob = &cli.StringFlag{
		Name:    "metrics.job",
		Value:   "op-selector",
		EnvVars: opservice.PrefixEnvVar(EnvVarPrefix, "METRICS_JOB"),
		Usage:   "Job name used when pushing metrics",
	}
)

var requiredFlags = []cli.Flag{
	Catalog,
}

var optionalFlags = []cli.Flag{
	Suite,
	Library,
	Format,
	FailOnEmpty,
	MetricsPushURL,
	MetricsJob,
}
var Flags []cli.Flag

func init() {
	optionalFlags = append(optionalFlags, oplog.CLIFlags(EnvVarPrefix)...)

	Flags = append(requiredFlags, optionalFlags...)
}

func CheckRequired(ctx *cli.Context) error {
	for _, f := range requiredFlags {
		if !ctx.IsSet(f.Names()[0]) {
			return fmt.Errorf("flag %s is required", f.Names()[0])
		}
	}
	return nil
}

// CheckExclusive rejects combining more than one way of choosing suites.
func CheckExclusive(ctx *cli.Context) error {
	var set []string
	if ctx.String(Suite.Name) != "" {
		set = append(set, "--"+Suite.Name)
	}
	if ctx.String(Library.Name) != "" {
		set = append(set, "--"+Library.Name)
	}
	if ctx.Args().Len() > 1 {
		return fmt.Errorf("expected at most one pattern argument, got %d", ctx.Args().Len())
	}
	if ctx.Args().Present() {
		set = append(set, "pattern argument")
	}
	if len(set) > 1 {
		return fmt.Errorf("only one of --%s, --%s or a pattern argument may be given, got %s",
			Suite.Name, Library.Name, strings.Join(set, " and "))
	}
	return nil
}
