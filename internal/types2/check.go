package types2

import (
	"github.com/you-not-fish/qasmc/internal/diag"
	"github.com/you-not-fish/qasmc/internal/syntax"
	"github.com/you-not-fish/qasmc/internal/types"
)

// checker is the type checker.
type checker struct {
	reporter
	info *Info
}

// checkProgram checks every statement in order.
func (c *checker) checkProgram(prog *syntax.Program) {
	for _, s := range prog.Stmts {
		c.checkStmt(s)
	}
}

func (c *checker) checkStmt(s syntax.Stmt) {
	switch s := s.(type) {
	case *syntax.DeclStmt:
		// nothing to check

	case *syntax.GateStmt:
		if g := s.Dec(); g != nil {
			c.checkArity(s, g)
		}
		c.checkArgs(s.Args)

	case *syntax.MeasureStmt:
		c.checkMeasure(s.Src, s.Dst)

	case *syntax.ResetStmt:
		c.checkReset(s.Reg)
	}
}

// regType computes the type of a register reference.
func (c *checker) regType(r syntax.Reg) types.Type {
	var t types.Type = types.Qubit{}
	if d := r.Dec(); d != nil {
		t = d.Type()
		if sr, ok := r.(*syntax.SubscriptReg); ok {
			t = c.subscript(sr, t)
		}
	}
	if c.info != nil {
		c.info.Types[r] = t
	}
	return t
}

// subscript returns the type of one element of a register of type t.
func (c *checker) subscript(r *syntax.SubscriptReg, t types.Type) types.Type {
	switch t := t.(type) {
	case types.QReg:
		if r.Index >= t.Size {
			c.errorf(diag.Type, r.Loc(), "register index out of bounds")
		}
		return types.Qubit{}

	case types.CReg:
		if r.Index >= t.Size {
			c.errorf(diag.Type, r.Loc(), "register index out of bounds")
		}
		return types.Bit{}

	case types.Qubit:
		c.errorf(diag.Type, r.Loc(), "qubit type is not subscriptable")
		return t

	case types.Bit:
		c.errorf(diag.Type, r.Loc(), "bit type is not subscriptable")
		return t
	}

	c.incoherent()
	return types.Qubit{}
}

// checkArity compares the call site with the gate's declared shape.
// Parameter and argument counts are reported independently.
func (c *checker) checkArity(s *syntax.GateStmt, g *types.GateDec) {
	gt, ok := g.Type().(types.Gate)
	if !ok {
		c.incoherent()
		return
	}
	if gt.NumParams != len(s.Params) {
		c.errorf(diag.Type, s.Loc(), "invalid number of parameters, expected %d got %d",
			gt.NumParams, len(s.Params))
	}
	if gt.NumArgs != len(s.Args) {
		c.errorf(diag.Type, s.Loc(), "invalid number of arguments, expected %d got %d",
			gt.NumArgs, len(s.Args))
	}
}

// checkArgs applies the broadcast rule to a gate argument list: single
// qubits are always accepted and every quantum register must have the
// size of the first one.
func (c *checker) checkArgs(args []syntax.Reg) {
	var (
		size  uint32
		fixed bool
	)
	for _, r := range args {
		switch t := c.regType(r).(type) {
		case types.Qubit:
		case types.QReg:
			switch {
			case !fixed:
				size, fixed = t.Size, true
			case t.Size != size:
				c.errorf(diag.Type, r.Loc(), "expected a register of size %d got %d", size, t.Size)
			}
		case types.Bit, types.CReg:
			c.errorf(diag.Type, r.Loc(), "expected a qubit or a qreg")
		default:
			c.incoherent()
		}
	}
}

// checkMeasure checks measure src -> dst.
//
// A sized source requires a classical register of the same size. A single
// qubit source measured into a classical register is reported at the
// destination, while a register measured into a single bit is a size mismatch.
func (c *checker) checkMeasure(src, dst syntax.Reg) {
	var (
		size  uint32
		sized bool
	)
	switch t := c.regType(src).(type) {
	case types.Qubit:
	case types.QReg:
		size, sized = t.Size, true
	case types.Bit, types.CReg:
		c.errorf(diag.Type, src.Loc(), "expected a qubit or a qreg")
	default:
		c.incoherent()
	}

	switch t := c.regType(dst).(type) {
	case types.Qubit, types.QReg:
		c.errorf(diag.Type, dst.Loc(), "expected a bit or a creg")
	case types.Bit:
		if sized {
			c.errorf(diag.Type, dst.Loc(), "expected a register of size %d", size)
		}
	case types.CReg:
		switch {
		case !sized:
			c.errorf(diag.Type, dst.Loc(), "expected a qubit")
		case t.Size != size:
			c.errorf(diag.Type, dst.Loc(), "expected a register of size %d", size)
		}
	default:
		c.incoherent()
	}
}

// checkReset checks reset r.
func (c *checker) checkReset(r syntax.Reg) {
	switch c.regType(r).(type) {
	case types.Qubit, types.QReg:
	case types.Bit, types.CReg:
		c.errorf(diag.Type, r.Loc(), "expected a qubit or a qreg")
	default:
		c.incoherent()
	}
}
