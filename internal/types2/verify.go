package types2

import (
	"fmt"
	"strings"

	"github.com/pkg/errors"
	"github.com/you-not-fish/qasmc/internal/syntax"
	"github.com/you-not-fish/qasmc/internal/types"
)

// Verify checks the consistency of the links set by Bind and the types
// recorded by Check. It returns an error describing all violations found,
// or nil if valid. info may be nil, in which case only the AST links are
// checked.
func Verify(prog *syntax.Program, info *Info) error {
	var errs []string

	add := func(format string, args ...any) {
		errs = append(errs, fmt.Sprintf(format, args...))
	}

	if prog == nil {
		add("program is nil")
		return combineErrors(errs)
	}

	var regs *types.Scope
	if info != nil {
		regs = info.Regs
	}

	for i, s := range prog.Stmts {
		switch s := s.(type) {
		case *syntax.DeclStmt:
			d, ok := s.Decl.(*syntax.RegDecl)
			if !ok || d.Obj() == nil {
				continue
			}
			obj := d.Obj()
			// 1. A linked declaration names its own record
			if obj.Name() != d.Name {
				add("stmt %d: declaration %s linked to record %s", i, d.Name, obj.Name())
			}
			// 2. The record type matches the declaration
			if want := declType(d); obj.Type() != want {
				add("stmt %d: declaration %s has record type %s, want %s", i, d.Name, obj.Type(), want)
			}
			// 3. The record is the one in the register table
			if regs != nil && regs.Lookup(d.Name) != types.Object(obj) {
				add("stmt %d: declaration %s is not in the register table", i, d.Name)
			}

		case *syntax.GateStmt:
			// 4. A linked gate statement names its gate
			if g := s.Dec(); g != nil {
				if g.Name() != s.Gate {
					add("stmt %d: gate %s linked to %s", i, s.Gate, g.Name())
				}
				if _, ok := g.Type().(types.Gate); !ok {
					add("stmt %d: gate %s has type %s", i, s.Gate, g.Type())
				}
			}
		}

		for _, r := range syntax.Regs(s) {
			// 5. A linked reference names its record
			if d := r.Dec(); d != nil {
				if d.Name() != r.RegName() {
					add("stmt %d: reference %s linked to %s", i, syntax.FormatReg(r), d.Name())
				}
				if regs != nil && regs.Lookup(r.RegName()) != types.Object(d) {
					add("stmt %d: reference %s is not linked to the register table", i, syntax.FormatReg(r))
				}
			}
			// 6. Every reference has a recorded type once checked
			if info != nil && info.Types != nil {
				if _, ok := info.Types[r]; !ok {
					add("stmt %d: reference %s has no type", i, syntax.FormatReg(r))
				}
			}
		}
	}

	return combineErrors(errs)
}

// declType returns the register type declared by d.
func declType(d *syntax.RegDecl) types.Type {
	if d.Kind == syntax.CReg {
		return types.CReg{Size: d.Size}
	}
	return types.QReg{Size: d.Size}
}

func combineErrors(errs []string) error {
	if len(errs) == 0 {
		return nil
	}
	return errors.New("verify failed:\n  " + strings.Join(errs, "\n  "))
}
