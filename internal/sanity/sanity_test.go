package sanity

import (
	"bytes"
	"log/slog"
	"path/filepath"
	"strings"
	"testing"

	"github.com/you-not-fish/qasmc/internal/diag"
	"github.com/you-not-fish/qasmc/internal/syntax"
	"github.com/you-not-fish/qasmc/internal/types2"
)

const header = "OPENQASM 2.0;\n"

// checked parses, binds and type-checks src, which must be valid.
func checked(t *testing.T, src string) (*syntax.Program, *types2.Info) {
	t.Helper()
	prog, diags := syntax.ParseFile("test.qasm", strings.NewReader(header+src))
	if prog == nil {
		t.Fatalf("parse failed: %s", diags)
	}
	info := &types2.Info{}
	diags.Merge(types2.Bind(prog, nil, info))
	diags.Merge(types2.Check(prog, nil, info))
	if !diags.Empty() {
		t.Fatalf("unexpected diagnostics:\n%s", diags)
	}
	return prog, info
}

func rule(name, src string) Rule {
	return Rule{Name: name, Src: []byte(src)}
}

func TestZeroSize(t *testing.T) {
	prog, info := checked(t, "qreg q[0];\ncreg c[1];\ncreg d[0];")
	diags, err := Check(prog, info, nil)
	if err != nil {
		t.Fatal(err)
	}

	want := "register 'q' has size 0 at test.qasm:2:1-11\n" +
		"register 'd' has size 0 at test.qasm:4:1-11"
	if got := diags.String(); got != want {
		t.Errorf("diagnostics:\n%s\nwant:\n%s", got, want)
	}
	if diags.ExitCode() != 6 {
		t.Errorf("exit code = %d, want 6", diags.ExitCode())
	}
}

func TestNoFindings(t *testing.T) {
	prog, info := checked(t, "qreg q[2];\ncreg c[2];\nCX q[0], q[1];\nmeasure q -> c;")
	rules, err := LoadRules([]string{
		filepath.Join("testdata", "no_reset.star"),
		filepath.Join("testdata", "max_qubits.star"),
	})
	if err != nil {
		t.Fatal(err)
	}

	diags, err := Check(prog, info, &Config{Rules: rules})
	if err != nil {
		t.Fatal(err)
	}
	if !diags.Empty() {
		t.Errorf("unexpected diagnostics:\n%s", diags)
	}
}

func TestRules(t *testing.T) {
	const src = "qreg q[3];\nqreg r[2];\ncreg c[3];\nreset q;\nCX q, q;\nreset r[1];"

	noReset, err := LoadRule(filepath.Join("testdata", "no_reset.star"))
	if err != nil {
		t.Fatal(err)
	}
	maxQubits, err := LoadRule(filepath.Join("testdata", "max_qubits.star"))
	if err != nil {
		t.Fatal(err)
	}
	if noReset.Name != "no_reset.star" {
		t.Errorf("rule name = %q", noReset.Name)
	}

	prog, info := checked(t, src)
	diags, err := Check(prog, info, &Config{Rules: []Rule{noReset, maxQubits}})
	if err != nil {
		t.Fatal(err)
	}

	want := []string{
		"reset of q is not allowed at test.qasm:5:1-9",
		"reset of r[1] is not allowed at test.qasm:7:1-12",
		"program uses 5 qubits, limit is 4",
	}
	if got := diags.String(); got != strings.Join(want, "\n") {
		t.Errorf("diagnostics:\n%s\nwant:\n%s", got, strings.Join(want, "\n"))
	}
	for _, d := range diags.All() {
		if d.Kind != diag.Sanity {
			t.Errorf("%s has kind %v", d, d.Kind)
		}
	}
}

func TestStatementView(t *testing.T) {
	prog, info := checked(t, "qreg q[2];\ncreg c[2];\nU(pi, 0, 0) q[1];\nmeasure q -> c;")

	script := `
def expect(got, want):
    if got != want:
        fail("got %r, want %r" % (got, want))

expect(len(statements), 4)
expect(statements[0]["kind"], "qreg")
expect(statements[0]["text"], "qreg q[2];")
expect(statements[0]["args"], [])
expect(statements[1]["kind"], "creg")
expect(statements[2]["kind"], "gate")
expect(statements[2]["gate"], "U")
expect(statements[2]["args"], ["q[1]"])
expect(statements[2]["line"], 4)
expect(statements[3]["kind"], "measure")
expect(statements[3]["args"], ["q", "c"])
expect(statements[3]["text"], "measure q -> c;")
expect(registers["c"]["kind"], "creg")
expect(registers["c"]["size"], 2)
expect(size_of("q"), 2)
expect(size_of("nope"), 0)
print("ok")
`
	buf := new(bytes.Buffer)
	logger := slog.New(slog.NewTextHandler(buf, nil))
	diags, err := Check(prog, info, &Config{
		Rules:  []Rule{rule("view.star", script)},
		Logger: logger,
	})
	if err != nil {
		t.Fatal(err)
	}
	if !diags.Empty() {
		t.Errorf("unexpected diagnostics:\n%s", diags)
	}
	if out := buf.String(); !strings.Contains(out, "rule=view.star") || !strings.Contains(out, "output=ok") {
		t.Errorf("log output = %q", out)
	}
}

func TestReportIndex(t *testing.T) {
	prog, info := checked(t, "qreg q[1];")
	diags, err := Check(prog, info, &Config{Rules: []Rule{rule("index.star", `
report("first", index = 0)
report("negative")
report("past end", 1)
`)}})
	if err != nil {
		t.Fatal(err)
	}

	all := diags.All()
	if len(all) != 3 {
		t.Fatalf("got %d diagnostics:\n%s", len(all), diags)
	}
	if !all[0].IsLocated() || all[0].Loc.String() != "test.qasm:2:1-11" {
		t.Errorf("first = %s", all[0])
	}
	if all[1].IsLocated() || all[2].IsLocated() {
		t.Errorf("out of range reports should be simple: %s, %s", all[1], all[2])
	}
}

func TestRuleErrors(t *testing.T) {
	tests := []struct {
		name string
		src  string
		want string
	}{
		{"fail", `fail("boom")`, "boom"},
		{"syntax", "def (:", "rule syntax.star"},
		{"undefined", "x = undefined_name", "undefined: undefined_name"},
		{"frozen", "statements.append(1)", "frozen"},
		{"bad report", "report(1)", "report"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			prog, info := checked(t, "qreg q[0];")
			diags, err := Check(prog, info, &Config{Rules: []Rule{
				rule(tt.name+".star", tt.src),
				rule("never.star", `report("unreachable")`),
			}})
			if err == nil {
				t.Fatal("should error")
			}
			if !strings.Contains(err.Error(), tt.want) {
				t.Errorf("error = %v, want substring %q", err, tt.want)
			}
			if diags.Len() != 1 {
				t.Errorf("builtin diagnostics lost or later rule ran:\n%s", diags)
			}
		})
	}
}

func TestLoadRuleMissing(t *testing.T) {
	_, err := LoadRules([]string{filepath.Join("testdata", "missing.star")})
	if err == nil {
		t.Fatal("should error")
	}
	if !strings.HasPrefix(err.Error(), "load rule: ") {
		t.Errorf("error = %v", err)
	}
}

func TestRegistersWithoutInfo(t *testing.T) {
	prog, diags := syntax.ParseFile("test.qasm", strings.NewReader(header+"qreg q[1];\ncreg q[5];\ncreg c[2];"))
	if prog == nil {
		t.Fatal(diags)
	}

	regs := registersOf(prog, nil)
	if len(regs) != 2 {
		t.Fatalf("got %v", regs)
	}
	if regs["q"] != (register{Kind: "qreg", Size: 1}) {
		t.Errorf("q = %+v, want first declaration", regs["q"])
	}
	if regs["c"] != (register{Kind: "creg", Size: 2}) {
		t.Errorf("c = %+v", regs["c"])
	}
}
