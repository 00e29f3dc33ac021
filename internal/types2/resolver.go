package types2

import (
	"github.com/you-not-fish/qasmc/internal/diag"
	"github.com/you-not-fish/qasmc/internal/syntax"
	"github.com/you-not-fish/qasmc/internal/types"
)

// binder builds the register table and links references to records.
type binder struct {
	reporter
	gates *types.Scope // gate table, read-only
	regs  *types.Scope // register table
}

// bindProgram binds every statement in order.
func (b *binder) bindProgram(prog *syntax.Program) {
	for _, s := range prog.Stmts {
		b.bindStmt(s)
	}
}

func (b *binder) bindStmt(s syntax.Stmt) {
	switch s := s.(type) {
	case *syntax.DeclStmt:
		if d, ok := s.Decl.(*syntax.RegDecl); ok {
			b.declare(d)
		}

	case *syntax.GateStmt:
		b.resolveGate(s)
		for _, r := range s.Args {
			b.resolve(r)
		}

	case *syntax.MeasureStmt:
		b.resolve(s.Src)
		b.resolve(s.Dst)

	case *syntax.ResetStmt:
		b.resolve(s.Reg)
	}
}

// declare inserts a register record for d.
// A redefinition is reported and leaves d unlinked.
func (b *binder) declare(d *syntax.RegDecl) {
	obj := types.NewRegDec(d.Loc(), d.Name, declType(d))
	if existing := b.regs.Insert(obj); existing != nil {
		b.errorf(diag.Bind, d.Loc(), "redefined register '%s'", d.Name)
		return
	}
	d.SetObj(obj)
}

// resolve links a register reference to its declaration.
func (b *binder) resolve(r syntax.Reg) {
	obj, ok := b.regs.Lookup(r.RegName()).(*types.RegDec)
	if !ok {
		b.errorf(diag.Bind, r.Loc(), "undeclared register '%s'", r.RegName())
		return
	}
	r.SetDec(obj)
}

// resolveGate links a gate statement to its gate.
func (b *binder) resolveGate(s *syntax.GateStmt) {
	g, ok := b.gates.Lookup(s.Gate).(*types.GateDec)
	if !ok {
		b.errorf(diag.Bind, s.GateLoc, "undeclared gate '%s'", s.Gate)
		return
	}
	s.SetDec(g)
}
