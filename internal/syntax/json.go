package syntax

import (
	"encoding/json"
	"io"
)

// FprintJSON writes a JSON representation of the AST to w.
func FprintJSON(w io.Writer, node Node) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(toJSON(node))
}

func toJSON(node Node) any {
	if node == nil {
		return nil
	}

	switch n := node.(type) {
	case *Program:
		return map[string]any{
			"type":  "Program",
			"loc":   n.loc.String(),
			"stmts": mapSlice(n.Stmts, func(s Stmt) any { return toJSON(s) }),
		}

	case *DeclStmt:
		return toJSON(n.Decl)

	case *RegDecl:
		m := map[string]any{
			"type": "RegDecl",
			"loc":  n.loc.String(),
			"name": n.Name,
			"kind": n.Kind.String(),
			"size": n.Size,
		}
		if n.obj != nil {
			m["ty"] = n.obj.Type().String()
		}
		return m

	case *GateStmt:
		m := map[string]any{
			"type":   "GateStmt",
			"loc":    n.loc.String(),
			"gate":   n.Gate,
			"params": mapSlice(n.Params, func(e Expr) any { return toJSON(e) }),
			"args":   mapSlice(n.Args, func(r Reg) any { return toJSON(r) }),
		}
		if n.dec != nil {
			m["ty"] = n.dec.Type().String()
		}
		return m

	case *MeasureStmt:
		return map[string]any{
			"type": "MeasureStmt",
			"loc":  n.loc.String(),
			"src":  toJSON(n.Src),
			"dst":  toJSON(n.Dst),
		}

	case *ResetStmt:
		return map[string]any{
			"type": "ResetStmt",
			"loc":  n.loc.String(),
			"reg":  toJSON(n.Reg),
		}

	case *SimpleReg:
		return regJSON("SimpleReg", n, nil)

	case *SubscriptReg:
		return regJSON("SubscriptReg", n, &n.Index)

	case *IntLit:
		return map[string]any{
			"type":  "IntLit",
			"loc":   n.loc.String(),
			"value": n.Value,
		}

	case *RealLit:
		return map[string]any{
			"type":  "RealLit",
			"loc":   n.loc.String(),
			"value": n.Value,
		}

	case *PiLit:
		return map[string]any{
			"type": "PiLit",
			"loc":  n.loc.String(),
		}

	case *BinaryExpr:
		return map[string]any{
			"type": "BinaryExpr",
			"loc":  n.loc.String(),
			"op":   n.Op.String(),
			"x":    toJSON(n.X),
			"y":    toJSON(n.Y),
		}

	case *UnaryExpr:
		return map[string]any{
			"type": "UnaryExpr",
			"loc":  n.loc.String(),
			"op":   n.Op.String(),
			"x":    toJSON(n.X),
		}
	}

	return map[string]any{"type": "Unknown"}
}

func regJSON(typ string, r Reg, index *uint32) map[string]any {
	m := map[string]any{
		"type": typ,
		"loc":  r.Loc().String(),
		"name": r.RegName(),
	}
	if index != nil {
		m["index"] = *index
	}
	if d := r.Dec(); d != nil {
		m["ty"] = d.Type().String()
	}
	return m
}

func mapSlice[T any](s []T, f func(T) any) []any {
	out := make([]any, len(s))
	for i, v := range s {
		out[i] = f(v)
	}
	return out
}
