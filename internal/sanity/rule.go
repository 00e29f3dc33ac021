package sanity

import (
	"os"
	"path/filepath"

	"github.com/pkg/errors"
	"github.com/reusee/starlarkutil"
	"github.com/you-not-fish/qasmc/internal/diag"
	"github.com/you-not-fish/qasmc/internal/logs"
	"github.com/you-not-fish/qasmc/internal/syntax"
	"go.starlark.net/starlark"
	starlarksyntax "go.starlark.net/syntax"
)

// Rule is a Starlark script inspecting a checked program.
//
// A script sees the predeclared names:
//
//	statements  list of dicts with index, kind, text, line, gate and args
//	registers   dict from register name to a dict with kind and size
//	report      report(msg, index=-1) adds a diagnostic, located at
//	            statements[index] when index is valid
//	size_of     size_of(name) returns the declared size, or 0
type Rule struct {
	Name string
	Src  []byte
}

// LoadRule reads the rule script at path.
func LoadRule(path string) (Rule, error) {
	src, err := os.ReadFile(path)
	if err != nil {
		return Rule{}, errors.Wrap(err, "load rule")
	}
	return Rule{
		Name: filepath.Base(path),
		Src:  src,
	}, nil
}

// LoadRules reads every rule script in paths, in order.
func LoadRules(paths []string) ([]Rule, error) {
	rules := make([]Rule, 0, len(paths))
	for _, path := range paths {
		rule, err := LoadRule(path)
		if err != nil {
			return nil, err
		}
		rules = append(rules, rule)
	}
	return rules, nil
}

var fileOptions = &starlarksyntax.FileOptions{
	Set:             true,
	While:           true,
	TopLevelControl: true,
}

// env is the state shared by the rules run on one program.
type env struct {
	stmts       []syntax.Stmt
	diags       *diag.List
	logger      logs.Logger
	predeclared starlark.StringDict
}

func newEnv(prog *syntax.Program, regs map[string]register, diags *diag.List, logger logs.Logger) *env {
	e := &env{
		stmts:  prog.Stmts,
		diags:  diags,
		logger: logger,
	}

	statements := make([]any, len(prog.Stmts))
	for i, s := range prog.Stmts {
		statements[i] = describeStmt(i, s)
	}
	registers := make(map[string]any, len(regs))
	for name, r := range regs {
		registers[name] = map[string]any{
			"kind": r.Kind,
			"size": r.Size,
		}
	}

	e.predeclared = starlark.StringDict{
		"statements": toStarlarkValue(statements),
		"registers":  toStarlarkValue(registers),
		"report":     starlark.NewBuiltin("report", e.report),
		"size_of": starlarkutil.MakeFunc("size_of", func(name string) int {
			return int(regs[name].Size)
		}),
	}
	e.predeclared.Freeze()
	return e
}

// describeStmt returns the script view of statement i.
func describeStmt(i int, s syntax.Stmt) map[string]any {
	var (
		kind string
		gate string
	)
	switch s := s.(type) {
	case *syntax.DeclStmt:
		if d, ok := s.Decl.(*syntax.RegDecl); ok {
			kind = d.Kind.String()
		}
	case *syntax.GateStmt:
		kind = "gate"
		gate = s.Gate
	case *syntax.MeasureStmt:
		kind = "measure"
	case *syntax.ResetStmt:
		kind = "reset"
	}

	args := []any{}
	for _, r := range syntax.Regs(s) {
		args = append(args, syntax.FormatReg(r))
	}

	return map[string]any{
		"index": i,
		"kind":  kind,
		"text":  syntax.FormatStmt(s),
		"line":  s.Loc().Start().Line(),
		"gate":  gate,
		"args":  args,
	}
}

// run executes rule against the program.
func (e *env) run(rule Rule) error {
	thread := &starlark.Thread{
		Name: rule.Name,
		Print: func(_ *starlark.Thread, msg string) {
			e.logger.Info("rule output",
				"rule", rule.Name,
				"output", msg,
			)
		},
	}
	before := e.diags.Len()
	if _, err := starlark.ExecFileOptions(fileOptions, thread, rule.Name, rule.Src, e.predeclared); err != nil {
		var evalErr *starlark.EvalError
		if errors.As(err, &evalErr) {
			return errors.Errorf("rule %s: %s", rule.Name, evalErr.Backtrace())
		}
		return errors.Wrapf(err, "rule %s", rule.Name)
	}
	e.logger.Debug("rule done",
		"rule", rule.Name,
		"reports", e.diags.Len()-before,
	)
	return nil
}

// report implements the report builtin.
func (e *env) report(_ *starlark.Thread, fn *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple) (starlark.Value, error) {
	var msg string
	index := -1
	if err := starlark.UnpackArgs(fn.Name(), args, kwargs, "msg", &msg, "index?", &index); err != nil {
		return nil, err
	}
	if index >= 0 && index < len(e.stmts) {
		e.diags.Add(diag.Located(diag.Sanity, msg, e.stmts[index].Loc()))
	} else {
		e.diags.Add(diag.Simple(diag.Sanity, msg))
	}
	return starlark.None, nil
}
