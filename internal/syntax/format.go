package syntax

import (
	"fmt"
	"io"
	"strconv"
	"strings"
)

// Format writes prog as canonical OpenQASM 2.0 text: the header line, then
// one line per statement. Binary expressions are fully parenthesized.
func Format(w io.Writer, prog *Program) error {
	var b strings.Builder
	b.WriteString("OPENQASM 2.0;\n")
	for _, s := range prog.Stmts {
		b.WriteString(FormatStmt(s))
		b.WriteByte('\n')
	}
	_, err := io.WriteString(w, b.String())
	return err
}

// FormatStmt returns the canonical text of one statement.
func FormatStmt(s Stmt) string {
	switch s := s.(type) {
	case *DeclStmt:
		if d, ok := s.Decl.(*RegDecl); ok {
			return fmt.Sprintf("%s %s[%d];", d.Kind, d.Name, d.Size)
		}

	case *GateStmt:
		var b strings.Builder
		b.WriteString(s.Gate)
		if len(s.Params) > 0 {
			b.WriteString(" (")
			for i, e := range s.Params {
				if i > 0 {
					b.WriteString(", ")
				}
				b.WriteString(FormatExpr(e))
			}
			b.WriteByte(')')
		}
		for i, r := range s.Args {
			if i == 0 {
				b.WriteByte(' ')
			} else {
				b.WriteString(", ")
			}
			b.WriteString(FormatReg(r))
		}
		b.WriteByte(';')
		return b.String()

	case *MeasureStmt:
		return fmt.Sprintf("measure %s -> %s;", FormatReg(s.Src), FormatReg(s.Dst))

	case *ResetStmt:
		return fmt.Sprintf("reset %s;", FormatReg(s.Reg))
	}
	return fmt.Sprintf("<%T>", s)
}

// FormatReg returns the source text of a register reference.
func FormatReg(r Reg) string {
	switch r := r.(type) {
	case *SimpleReg:
		return r.Name
	case *SubscriptReg:
		return fmt.Sprintf("%s[%d]", r.Name, r.Index)
	}
	return fmt.Sprintf("<%T>", r)
}

// FormatExpr returns the canonical text of an expression.
func FormatExpr(e Expr) string {
	switch e := e.(type) {
	case *IntLit:
		return strconv.FormatUint(uint64(e.Value), 10)
	case *RealLit:
		return formatReal(e.Value)
	case *PiLit:
		return "pi"
	case *BinaryExpr:
		return fmt.Sprintf("(%s %s %s)", FormatExpr(e.X), e.Op, FormatExpr(e.Y))
	case *UnaryExpr:
		return fmt.Sprintf("%s(%s)", e.Op, FormatExpr(e.X))
	}
	return fmt.Sprintf("<%T>", e)
}

// formatReal renders v so that it scans back as a real literal.
func formatReal(v float32) string {
	s := strconv.FormatFloat(float64(v), 'f', -1, 32)
	if !strings.Contains(s, ".") {
		s += ".0"
	}
	return s
}
