// Package sanity runs the checks that follow type checking: the builtin
// register checks and user supplied Starlark rules.
package sanity

import (
	"log/slog"

	"github.com/you-not-fish/qasmc/internal/diag"
	"github.com/you-not-fish/qasmc/internal/logs"
	"github.com/you-not-fish/qasmc/internal/syntax"
	"github.com/you-not-fish/qasmc/internal/types"
	"github.com/you-not-fish/qasmc/internal/types2"
)

// Config specifies the sanity checks to run.
type Config struct {
	// Rules are run in order after the builtin checks.
	Rules []Rule

	// Logger receives rule output. If nil, output is discarded.
	Logger logs.Logger
}

// Check runs the builtin checks and every rule on a type-checked program.
// Findings are returned as Sanity diagnostics; a rule that fails to run
// is returned as an error.
func Check(prog *syntax.Program, info *types2.Info, conf *Config) (*diag.List, error) {
	if conf == nil {
		conf = &Config{}
	}
	logger := conf.Logger
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	var diags diag.List
	checkSizes(prog, &diags)

	if len(conf.Rules) == 0 {
		return &diags, nil
	}
	env := newEnv(prog, registersOf(prog, info), &diags, logger)
	for _, rule := range conf.Rules {
		if err := env.run(rule); err != nil {
			return &diags, err
		}
	}
	return &diags, nil
}

// checkSizes reports every register declared with size 0.
func checkSizes(prog *syntax.Program, diags *diag.List) {
	for _, s := range prog.Stmts {
		ds, ok := s.(*syntax.DeclStmt)
		if !ok {
			continue
		}
		if d, ok := ds.Decl.(*syntax.RegDecl); ok && d.Size == 0 {
			diags.Addf(diag.Sanity, d.Loc(), "register '%s' has size 0", d.Name)
		}
	}
}

// register describes one entry of the register table.
type register struct {
	Kind string
	Size uint32
}

// registersOf returns the register table, taken from info when it was bound
// and otherwise rebuilt from the declarations with the first one winning.
func registersOf(prog *syntax.Program, info *types2.Info) map[string]register {
	regs := make(map[string]register)

	if info != nil && info.Regs != nil {
		for _, name := range info.Regs.Names() {
			switch t := info.Regs.Lookup(name).Type().(type) {
			case types.QReg:
				regs[name] = register{Kind: "qreg", Size: t.Size}
			case types.CReg:
				regs[name] = register{Kind: "creg", Size: t.Size}
			}
		}
		return regs
	}

	for _, s := range prog.Stmts {
		ds, ok := s.(*syntax.DeclStmt)
		if !ok {
			continue
		}
		d, ok := ds.Decl.(*syntax.RegDecl)
		if !ok {
			continue
		}
		if _, exists := regs[d.Name]; !exists {
			regs[d.Name] = register{Kind: d.Kind.String(), Size: d.Size}
		}
	}
	return regs
}
