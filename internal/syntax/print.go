package syntax

import (
	"fmt"
	"io"
	"strings"
)

// Fprint writes a textual representation of the AST to w.
// Resolved declarations are shown next to the nodes that link to them.
func Fprint(w io.Writer, node Node) {
	p := &printer{w: w}
	p.print(node)
}

type printer struct {
	w      io.Writer
	indent int
}

func (p *printer) printf(format string, args ...any) {
	fmt.Fprintf(p.w, "%s%s", strings.Repeat("  ", p.indent), fmt.Sprintf(format, args...))
}

func (p *printer) print(node Node) {
	if node == nil {
		return
	}

	switch n := node.(type) {
	case *Program:
		p.printf("Program %s\n", n.loc)
		p.indent++
		for _, s := range n.Stmts {
			p.print(s)
		}
		p.indent--

	case *DeclStmt:
		p.print(n.Decl)

	case *RegDecl:
		p.printf("RegDecl %s\n", n.loc)
		p.indent++
		p.printf("Name: %s\n", n.Name)
		p.printf("Kind: %s\n", n.Kind)
		p.printf("Size: %d\n", n.Size)
		if n.obj != nil {
			p.printf("Type: %s\n", n.obj.Type())
		}
		p.indent--

	case *GateStmt:
		p.printf("GateStmt %s\n", n.loc)
		p.indent++
		p.printf("Gate: %s\n", n.Gate)
		if n.dec != nil {
			p.printf("Type: %s\n", n.dec.Type())
		}
		if len(n.Params) > 0 {
			p.printf("Params:\n")
			p.indent++
			for _, e := range n.Params {
				p.print(e)
			}
			p.indent--
		}
		p.printf("Args:\n")
		p.indent++
		for _, r := range n.Args {
			p.print(r)
		}
		p.indent--
		p.indent--

	case *MeasureStmt:
		p.printf("MeasureStmt %s\n", n.loc)
		p.indent++
		p.printf("Src:\n")
		p.indent++
		p.print(n.Src)
		p.indent--
		p.printf("Dst:\n")
		p.indent++
		p.print(n.Dst)
		p.indent--
		p.indent--

	case *ResetStmt:
		p.printf("ResetStmt %s\n", n.loc)
		p.indent++
		p.print(n.Reg)
		p.indent--

	case *SimpleReg:
		p.printf("SimpleReg %s %s%s\n", n.Name, n.loc, resolved(n))

	case *SubscriptReg:
		p.printf("SubscriptReg %s[%d] %s%s\n", n.Name, n.Index, n.loc, resolved(n))

	case *IntLit:
		p.printf("IntLit %d %s\n", n.Value, n.loc)

	case *RealLit:
		p.printf("RealLit %s %s\n", formatReal(n.Value), n.loc)

	case *PiLit:
		p.printf("PiLit %s\n", n.loc)

	case *BinaryExpr:
		p.printf("BinaryExpr %s %s\n", n.Op, n.loc)
		p.indent++
		p.print(n.X)
		p.print(n.Y)
		p.indent--

	case *UnaryExpr:
		p.printf("UnaryExpr %s %s\n", n.Op, n.loc)
		p.indent++
		p.print(n.X)
		p.indent--

	default:
		p.printf("%T\n", n)
	}
}

// resolved describes the declaration a register reference links to.
func resolved(r Reg) string {
	if d := r.Dec(); d != nil {
		return " -> " + d.Type().String()
	}
	return ""
}
