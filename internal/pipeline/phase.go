package pipeline

import (
	"context"
	"fmt"
	"io"

	"github.com/pkg/errors"
	"github.com/you-not-fish/qasmc/internal/logs"
	"github.com/you-not-fish/qasmc/internal/syntax"
	"github.com/you-not-fish/qasmc/internal/types2"
)

// Phase describes a single front end phase run on a parsed program.
type Phase struct {
	Name string
	Fn   func(ctx context.Context, res *Result) error
}

// PhaseConfig controls phase execution behavior.
type PhaseConfig struct {
	DumpBefore string    // dump the AST before this phase ("*" for all)
	DumpAfter  string    // dump the AST after this phase ("*" for all)
	Dump       io.Writer // destination of dumps
	Verify     bool      // verify links and types after each phase
}

// RunPhases executes the given phases on res in order.
func RunPhases(ctx context.Context, res *Result, phases []Phase, cfg PhaseConfig, logger logs.Logger) error {
	for _, p := range phases {
		ctx := logs.WithPhase(ctx, logs.Phase(p.Name))

		if shouldDump(cfg.DumpBefore, p.Name) && cfg.Dump != nil {
			fmt.Fprintf(cfg.Dump, "--- before %s ---\n", p.Name)
			syntax.Fprint(cfg.Dump, res.Program)
			fmt.Fprintln(cfg.Dump)
		}

		before := res.Diagnostics.Len()
		if err := p.Fn(ctx, res); err != nil {
			return errors.Wrapf(err, "phase %s", p.Name)
		}
		logger.DebugContext(ctx, "phase done",
			"diagnostics", res.Diagnostics.Len()-before,
		)

		if cfg.Verify {
			if err := types2.Verify(res.Program, res.Info); err != nil {
				return errors.Wrapf(err, "verify after %s", p.Name)
			}
		}

		if shouldDump(cfg.DumpAfter, p.Name) && cfg.Dump != nil {
			fmt.Fprintf(cfg.Dump, "--- after %s ---\n", p.Name)
			syntax.Fprint(cfg.Dump, res.Program)
			fmt.Fprintln(cfg.Dump)
		}
	}
	return nil
}

func shouldDump(pattern, name string) bool {
	return pattern == "*" || pattern == name
}
