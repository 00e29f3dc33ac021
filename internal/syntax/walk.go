package syntax

// Visitor is called for each node during Walk.
// If it returns false, the children of the node are not visited.
type Visitor func(node Node) bool

// Walk traverses an AST in depth-first order.
// If visitor returns false, children are not visited.
func Walk(node Node, v Visitor) {
	if node == nil || !v(node) {
		return
	}

	switch n := node.(type) {
	case *Program:
		for _, s := range n.Stmts {
			Walk(s, v)
		}

	case *DeclStmt:
		Walk(n.Decl, v)

	case *GateStmt:
		for _, e := range n.Params {
			Walk(e, v)
		}
		for _, r := range n.Args {
			Walk(r, v)
		}

	case *MeasureStmt:
		Walk(n.Src, v)
		Walk(n.Dst, v)

	case *ResetStmt:
		Walk(n.Reg, v)

	case *BinaryExpr:
		Walk(n.X, v)
		Walk(n.Y, v)

	case *UnaryExpr:
		Walk(n.X, v)

	case *RegDecl, *SimpleReg, *SubscriptReg, *IntLit, *RealLit, *PiLit:
		// leaves
	}
}

// Inspect traverses an AST in depth-first order, calling f for each node.
// If f returns false, Inspect skips the node's children.
func Inspect(node Node, f func(Node) bool) {
	Walk(node, f)
}

// Regs returns the register references of s in source order.
func Regs(s Stmt) []Reg {
	var regs []Reg
	Inspect(s, func(n Node) bool {
		if r, ok := n.(Reg); ok {
			regs = append(regs, r)
		}
		return true
	})
	return regs
}
