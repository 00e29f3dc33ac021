package syntax

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// ----------------------------------------------------------------------------
// Test helpers

const header = "OPENQASM 2.0;\n"

func parseProgram(t *testing.T, src string) *Program {
	t.Helper()
	prog, diags := ParseFile("test.qasm", strings.NewReader(src))
	if prog == nil {
		t.Fatalf("Parse returned nil: %s", diags)
	}
	if !diags.Empty() {
		t.Fatalf("unexpected diagnostics: %s", diags)
	}
	return prog
}

// parseExpr parses the first parameter of a U gate.
func parseExpr(t *testing.T, src string) Expr {
	t.Helper()
	prog := parseProgram(t, header+"U("+src+", 0, 0) q;")
	return prog.Stmts[0].(*GateStmt).Params[0]
}

// ----------------------------------------------------------------------------
// Statements

func TestParseStatements(t *testing.T) {
	src := header + `qreg q[2];
creg c[2];
U(pi/2, 0, pi) q[0];
CX q[0], q[1];
measure q -> c;
reset q;
`
	prog := parseProgram(t, src)

	if len(prog.Stmts) != 6 {
		t.Fatalf("got %d statements, want 6", len(prog.Stmts))
	}

	d := prog.Stmts[0].(*DeclStmt).Decl.(*RegDecl)
	if d.Name != "q" || d.Kind != QReg || d.Size != 2 {
		t.Errorf("decl = %+v", d)
	}
	if d := prog.Stmts[1].(*DeclStmt).Decl.(*RegDecl); d.Kind != CReg {
		t.Errorf("second decl kind = %v", d.Kind)
	}

	u := prog.Stmts[2].(*GateStmt)
	if u.Gate != "U" || len(u.Params) != 3 || len(u.Args) != 1 {
		t.Errorf("U gate = %+v", u)
	}
	if r, ok := u.Args[0].(*SubscriptReg); !ok || r.Name != "q" || r.Index != 0 {
		t.Errorf("U arg = %#v", u.Args[0])
	}

	cx := prog.Stmts[3].(*GateStmt)
	if cx.Gate != "CX" || len(cx.Params) != 0 || len(cx.Args) != 2 {
		t.Errorf("CX gate = %+v", cx)
	}

	m := prog.Stmts[4].(*MeasureStmt)
	if m.Src.RegName() != "q" || m.Dst.RegName() != "c" {
		t.Errorf("measure = %s -> %s", m.Src.RegName(), m.Dst.RegName())
	}
	if _, ok := m.Src.(*SimpleReg); !ok {
		t.Errorf("measure src = %T, want *SimpleReg", m.Src)
	}

	if r := prog.Stmts[5].(*ResetStmt); r.Reg.RegName() != "q" {
		t.Errorf("reset reg = %s", r.Reg.RegName())
	}
}

func TestParseNodeLocations(t *testing.T) {
	src := header + "qreg q[2];\nU (1 + 2, (3), -pi) q[1];\nmeasure q[0] -> c;\n"
	prog := parseProgram(t, src)

	u := prog.Stmts[1].(*GateStmt)
	tests := []struct {
		name string
		node Node
		want string
	}{
		{"program", prog, "test.qasm:1:1-4:19"},
		{"decl stmt", prog.Stmts[0], "test.qasm:2:1-11"},
		{"decl", prog.Stmts[0].(*DeclStmt).Decl, "test.qasm:2:1-11"},
		{"gate stmt", u, "test.qasm:3:1-26"},
		{"binary", u.Params[0], "test.qasm:3:4-9"},
		{"parenthesized", u.Params[1], "test.qasm:3:11-14"},
		{"negation", u.Params[2], "test.qasm:3:16-19"},
		{"subscript arg", u.Args[0], "test.qasm:3:21-25"},
		{"measure", prog.Stmts[2], "test.qasm:4:1-19"},
		{"measure src", prog.Stmts[2].(*MeasureStmt).Src, "test.qasm:4:9-13"},
		{"measure dst", prog.Stmts[2].(*MeasureStmt).Dst, "test.qasm:4:17-18"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.node.Loc().String(); got != tt.want {
				t.Errorf("Loc() = %s, want %s", got, tt.want)
			}
		})
	}

	if got := prog.Stmts[0].(*DeclStmt).Decl.(*RegDecl).NameLoc.String(); got != "test.qasm:2:6-7" {
		t.Errorf("NameLoc = %s", got)
	}
}

// ----------------------------------------------------------------------------
// Expressions

// exprSummary renders an expression with explicit grouping.
func exprSummary(e Expr) string {
	switch e := e.(type) {
	case *IntLit, *RealLit, *PiLit:
		return FormatExpr(e)
	case *BinaryExpr:
		return "(" + exprSummary(e.X) + " " + e.Op.String() + " " + exprSummary(e.Y) + ")"
	case *UnaryExpr:
		return e.Op.String() + "{" + exprSummary(e.X) + "}"
	}
	return "?"
}

func TestParsePrecedence(t *testing.T) {
	tests := []struct {
		src  string
		want string
	}{
		{"2 - 3 - 1", "((2 - 3) - 1)"},
		{"2 ^ 3 ^ 2", "(2 ^ (3 ^ 2))"},
		{"-sin(pi)", "-{sin{pi}}"},
		{"1 + 2 * 3", "(1 + (2 * 3))"},
		{"1 * 2 + 3", "((1 * 2) + 3)"},
		{"8 / 4 / 2", "((8 / 4) / 2)"},
		{"2 * 3 ^ 2", "(2 * (3 ^ 2))"},
		{"2 ^ 3 * 4", "((2 ^ 3) * 4)"},
		{"(1 + 2) * 3", "((1 + 2) * 3)"},
		{"-2 ^ 2", "(-{2} ^ 2)"},
		{"--1", "-{-{1}}"},
		{"sqrt(2) / 2.5", "(sqrt{2} / 2.5)"},
		{"ln(exp(1)) - cos(tan(0))", "(ln{exp{1}} - cos{tan{0}})"},
		{"pi/2", "(pi / 2)"},
	}

	for _, tt := range tests {
		t.Run(tt.src, func(t *testing.T) {
			if got := exprSummary(parseExpr(t, tt.src)); got != tt.want {
				t.Errorf("got %s, want %s", got, tt.want)
			}
		})
	}
}

// ----------------------------------------------------------------------------
// Errors

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name string
		src  string
		want string
		code int
	}{
		{
			name: "missing header",
			src:  "qreg q[1];",
			want: "unexpected token 'qreg', expected 'OPENQASM' at test.qasm:1:1-5",
			code: 3,
		},
		{
			name: "wrong version",
			src:  "OPENQASM 3.0;\nqreg q[1];",
			want: "unexpected token REAL 3.0, expected '2.0' at test.qasm:1:10-13",
			code: 3,
		},
		{
			name: "integer version",
			src:  "OPENQASM 2;",
			want: "unexpected token INT 2, expected '2.0' at test.qasm:1:10-11",
			code: 3,
		},
		{
			name: "empty program",
			src:  header,
			want: "unexpected token EOF, expected statement at test.qasm:2:1",
			code: 3,
		},
		{
			name: "missing semicolon",
			src:  header + "qreg q[1]\nreset q;",
			want: "unexpected token 'reset', expected ';' at test.qasm:3:1-6",
			code: 3,
		},
		{
			name: "real size",
			src:  header + "qreg q[1.5];",
			want: "unexpected token REAL 1.5, expected INT at test.qasm:2:8-11",
			code: 3,
		},
		{
			name: "missing expression",
			src:  header + "U(1, , 2) q;",
			want: "unexpected token ',', expected expression at test.qasm:2:6-7",
			code: 3,
		},
		{
			name: "missing close paren",
			src:  header + "U((1, 2, 3) q;",
			want: "unexpected token ',', expected ')' at test.qasm:2:5-6",
			code: 3,
		},
		{
			name: "statement keyword",
			src:  header + "pi;",
			want: "unexpected token 'pi', expected statement at test.qasm:2:1-3",
			code: 3,
		},
		{
			name: "first error stops",
			src:  header + "reset;\nmeasure;",
			want: "unexpected token ';', expected NAME at test.qasm:2:6-7",
			code: 3,
		},
		{
			name: "lexical error",
			src:  header + "measure q > c;",
			want: "invalid character '>' at test.qasm:2:11-12",
			code: 2,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			prog, diags := ParseFile("test.qasm", strings.NewReader(tt.src))
			if prog != nil {
				t.Fatalf("expected no program, got %d statements", len(prog.Stmts))
			}
			if diags.Len() != 1 {
				t.Fatalf("got %d diagnostics, want 1:\n%s", diags.Len(), diags)
			}
			if got := diags.String(); got != tt.want {
				t.Errorf("diagnostic = %q, want %q", got, tt.want)
			}
			if got := diags.ExitCode(); got != tt.code {
				t.Errorf("exit code = %d, want %d", got, tt.code)
			}
		})
	}
}

// ----------------------------------------------------------------------------
// Walk tests

func TestWalk(t *testing.T) {
	prog := parseProgram(t, header+"qreg q[2];\nCX q[0], q[1];\nU(1+2, 0, 0) q;")

	var regs, exprs int
	Walk(prog, func(n Node) bool {
		switch n.(type) {
		case Reg:
			regs++
		case Expr:
			exprs++
		}
		return true
	})

	if regs != 3 {
		t.Errorf("visited %d register references, want 3", regs)
	}
	if exprs != 5 {
		t.Errorf("visited %d expressions, want 5", exprs)
	}
}

func TestInspectSkipsChildren(t *testing.T) {
	prog := parseProgram(t, header+"U(1+2, 0, 0) q;")

	var lits int
	Inspect(prog, func(n Node) bool {
		if _, ok := n.(*BinaryExpr); ok {
			return false
		}
		if _, ok := n.(*IntLit); ok {
			lits++
		}
		return true
	})

	if lits != 2 {
		t.Errorf("visited %d literals, want 2", lits)
	}
}

func TestRegs(t *testing.T) {
	prog := parseProgram(t, header+"measure a[1] -> b;")
	regs := Regs(prog.Stmts[0])
	if len(regs) != 2 || regs[0].RegName() != "a" || regs[1].RegName() != "b" {
		t.Errorf("Regs() = %v", regs)
	}
}

// ----------------------------------------------------------------------------
// Golden inputs

func TestParseTestdata(t *testing.T) {
	files, err := filepath.Glob("testdata/*.qasm")
	if err != nil {
		t.Fatal(err)
	}
	if len(files) == 0 {
		t.Fatal("no testdata")
	}

	for _, f := range files {
		t.Run(filepath.Base(f), func(t *testing.T) {
			src, err := os.ReadFile(f)
			if err != nil {
				t.Fatal(err)
			}
			parseProgram(t, string(src))
		})
	}
}

// ----------------------------------------------------------------------------
// Fuzz test

func FuzzParse(f *testing.F) {
	seeds := []string{
		"OPENQASM 2.0;\nqreg q[1];",
		"OPENQASM 2.0;\nU(pi/2, 0, pi) q;",
		"OPENQASM 2.0;\nCX q[0], q[1];",
		"OPENQASM 2.0;\nmeasure q -> c;",
		"OPENQASM 2.0;\nU(-(1+2)^3^-sin(pi), ln(2.5), 0) q;",
		"OPENQASM 2.0;\nreset q",
		"OPENQASM",
		"> <",
	}

	for _, seed := range seeds {
		f.Add(seed)
	}

	f.Fuzz(func(t *testing.T, src string) {
		prog, diags := ParseFile("fuzz", strings.NewReader(src))
		if prog == nil && diags.Empty() {
			t.Errorf("no program and no diagnostics for %q", src)
		}
		if prog != nil && !diags.Empty() {
			t.Errorf("program with diagnostics for %q: %s", src, diags)
		}
	})
}
