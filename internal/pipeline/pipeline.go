// Package pipeline drives a source file through the front end phases:
// parse, bind, check and sanity.
package pipeline

import (
	"context"
	"io"
	"log/slog"

	"github.com/you-not-fish/qasmc/internal/diag"
	"github.com/you-not-fish/qasmc/internal/logs"
	"github.com/you-not-fish/qasmc/internal/sanity"
	"github.com/you-not-fish/qasmc/internal/syntax"
	"github.com/you-not-fish/qasmc/internal/types2"
)

// Config controls a pipeline run. The zero value runs every phase
// without rules, dumps or verification.
type Config struct {
	Types2 *types2.Config
	Sanity *sanity.Config
	Phases PhaseConfig
	Logger logs.Logger
}

// Result is the outcome of a pipeline run.
type Result struct {
	// Program is nil when parsing failed.
	Program *syntax.Program

	// Info is nil when parsing failed.
	Info *types2.Info

	// Diagnostics holds the diagnostics of every phase, in phase order.
	Diagnostics *diag.List
}

// ExitCode returns the process exit status for the result.
func (r *Result) ExitCode() int {
	return r.Diagnostics.ExitCode()
}

// OK reports whether no phase reported a diagnostic.
func (r *Result) OK() bool {
	return r.Diagnostics.Empty()
}

// Run parses src and, when parsing succeeds, runs the remaining phases.
// Every phase after parsing runs even if an earlier one reported
// diagnostics. The returned error is a tool failure, such as a broken
// rule script, and is independent of the program diagnostics.
func Run(ctx context.Context, filename string, src io.Reader, conf *Config) (*Result, error) {
	if conf == nil {
		conf = &Config{}
	}
	logger := conf.Logger
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	prog, diags := syntax.ParseFile(filename, src)
	logger.DebugContext(logs.WithPhase(ctx, "parse"), "phase done",
		"file", filename,
		"diagnostics", diags.Len(),
	)

	res := &Result{
		Program:     prog,
		Diagnostics: diags,
	}
	if prog == nil {
		return res, nil
	}
	res.Info = &types2.Info{}

	if err := RunPhases(ctx, res, Phases(conf), conf.Phases, logger); err != nil {
		return res, err
	}
	return res, nil
}

// Phases returns the phases that follow parsing.
func Phases(conf *Config) []Phase {
	return []Phase{
		{
			Name: "bind",
			Fn: func(ctx context.Context, res *Result) error {
				res.Diagnostics.Merge(types2.Bind(res.Program, conf.Types2, res.Info))
				return nil
			},
		},
		{
			Name: "check",
			Fn: func(ctx context.Context, res *Result) error {
				res.Diagnostics.Merge(types2.Check(res.Program, conf.Types2, res.Info))
				return nil
			},
		},
		{
			Name: "sanity",
			Fn: func(ctx context.Context, res *Result) error {
				diags, err := sanity.Check(res.Program, res.Info, conf.Sanity)
				res.Diagnostics.Merge(diags)
				return err
			},
		},
	}
}
