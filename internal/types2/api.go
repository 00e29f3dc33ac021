// Package types2 implements name binding and type checking for the
// quantum assembly front end.
package types2

import (
	"github.com/you-not-fish/qasmc/internal/diag"
	"github.com/you-not-fish/qasmc/internal/syntax"
	"github.com/you-not-fish/qasmc/internal/types"
)

// Config specifies the configuration for binding and type checking.
type Config struct {
	// Error is called for each diagnostic as it is reported.
	// If nil, diagnostics are only collected.
	Error ErrorHandler

	// Gates is the gate table used by the binder.
	// If nil, types.Universe is used.
	Gates *types.Scope
}

// Info holds the results of binding and type checking.
type Info struct {
	// Regs is the register table built by Bind.
	Regs *types.Scope

	// Types maps register references to their computed type.
	// It is filled by Check.
	Types map[syntax.Reg]types.Type
}

// TypeOf returns the type recorded for r, or nil.
func (info *Info) TypeOf(r syntax.Reg) types.Type {
	if info == nil || info.Types == nil {
		return nil
	}
	return info.Types[r]
}

// Bind resolves every name in prog and links the AST to the records it
// refers to. It visits the whole program and returns every binding
// diagnostic. Bind must be called at most once per program.
func Bind(prog *syntax.Program, conf *Config, info *Info) *diag.List {
	if conf == nil {
		conf = &Config{}
	}
	gates := conf.Gates
	if gates == nil {
		gates = types.Universe
	}

	b := &binder{
		reporter: reporter{conf: conf},
		gates:    gates,
		regs:     types.NewScope(),
	}
	b.bindProgram(prog)

	if info != nil {
		info.Regs = b.regs
	}
	return &b.diags
}

// Check type-checks a bound program. It never modifies the program,
// visits every statement and returns every type diagnostic.
// Unresolved register references are treated as single qubits.
func Check(prog *syntax.Program, conf *Config, info *Info) *diag.List {
	if conf == nil {
		conf = &Config{}
	}
	if info != nil && info.Types == nil {
		info.Types = make(map[syntax.Reg]types.Type)
	}

	c := &checker{
		reporter: reporter{conf: conf},
		info:     info,
	}
	c.checkProgram(prog)
	return &c.diags
}
