package syntax

import (
	"github.com/you-not-fish/qasmc/internal/source"
	"github.com/you-not-fish/qasmc/internal/types"
)

// ----------------------------------------------------------------------------
// Interfaces
//
// There are 3 main classes of nodes: Expressions, Statements, and Declarations.
// Register references form a fourth, small class. All nodes implement the Node
// interface.

// Node is the interface implemented by all AST nodes.
type Node interface {
	Loc() source.Location // source span of the node
	setLoc(source.Location)
	aNode() // marker method to restrict implementations to this package
}

// Expr is the interface for all expression nodes.
type Expr interface {
	Node
	aExpr()
}

// Stmt is the interface for all statement nodes.
type Stmt interface {
	Node
	aStmt()
}

// Decl is the interface for all declaration nodes.
type Decl interface {
	Node
	aDecl()
}

// Reg is the interface for register references.
// Dec returns the declaration the reference was resolved to, or nil.
type Reg interface {
	Node
	RegName() string
	Dec() *types.RegDec
	SetDec(*types.RegDec)
	aReg()
}

// ----------------------------------------------------------------------------
// Base node types

// node is the base struct embedded in all AST nodes.
type node struct {
	loc source.Location
}

func (n *node) Loc() source.Location      { return n.loc }
func (n *node) setLoc(loc source.Location) { n.loc = loc }
func (n *node) aNode()                     {}

// expr is embedded in all expression nodes.
type expr struct{ node }

func (*expr) aExpr() {}

// stmt is embedded in all statement nodes.
type stmt struct{ node }

func (*stmt) aStmt() {}

// decl is embedded in all declaration nodes.
type decl struct{ node }

func (*decl) aDecl() {}

// reg is embedded in all register references.
// The declaration link is written at most once, by the binder.
type reg struct {
	node
	Name string
	dec  *types.RegDec
}

func (r *reg) RegName() string        { return r.Name }
func (r *reg) Dec() *types.RegDec     { return r.dec }
func (*reg) aReg()                    {}
func (r *reg) SetDec(d *types.RegDec) { setOnce(&r.dec, d, "register reference "+r.Name) }

// setOnce stores v in *link, panicking if the link was already set.
func setOnce[T any](link **T, v *T, what string) {
	if *link != nil {
		panic("syntax: " + what + " linked twice")
	}
	*link = v
}

// ----------------------------------------------------------------------------
// Program

// Program is a parsed source file: a header followed by statements.
type Program struct {
	node
	Stmts []Stmt
}

// ----------------------------------------------------------------------------
// Declarations

// RegKind distinguishes quantum and classical registers.
type RegKind uint8

const (
	QReg RegKind = iota
	CReg
)

// String returns the keyword that declares a register of kind k.
func (k RegKind) String() string {
	if k == CReg {
		return "creg"
	}
	return "qreg"
}

// RegDecl declares a register: qreg Name[Size] or creg Name[Size].
type RegDecl struct {
	decl
	Name    string
	Kind    RegKind
	Size    uint32
	NameLoc source.Location // location of the register name
	obj     *types.RegDec
}

// Obj returns the record created for the declaration, or nil if the
// declaration was rejected by the binder.
func (d *RegDecl) Obj() *types.RegDec { return d.obj }

// SetObj links the declaration to its record. It panics if called twice.
func (d *RegDecl) SetObj(obj *types.RegDec) { setOnce(&d.obj, obj, "declaration "+d.Name) }

// ----------------------------------------------------------------------------
// Register references

// SimpleReg references a whole register: q
type SimpleReg struct {
	reg
}

// SubscriptReg references one element of a register: q[Index]
type SubscriptReg struct {
	reg
	Index uint32
}

// ----------------------------------------------------------------------------
// Statements

// DeclStmt wraps a declaration in statement position.
type DeclStmt struct {
	stmt
	Decl Decl
}

// GateStmt applies a gate: Gate(Params) Args;
type GateStmt struct {
	stmt
	Gate    string
	GateLoc source.Location // location of the gate name
	Params  []Expr
	Args    []Reg
	dec     *types.GateDec
}

// Dec returns the gate the statement was resolved to, or nil.
func (s *GateStmt) Dec() *types.GateDec { return s.dec }

// SetDec links the statement to its gate. It panics if called twice.
func (s *GateStmt) SetDec(g *types.GateDec) { setOnce(&s.dec, g, "gate statement "+s.Gate) }

// MeasureStmt measures a quantum register into a classical one: measure Src -> Dst;
type MeasureStmt struct {
	stmt
	Src Reg
	Dst Reg
}

// ResetStmt resets a quantum register: reset Reg;
type ResetStmt struct {
	stmt
	Reg Reg
}

// ----------------------------------------------------------------------------
// Expressions

// IntLit is an integer literal.
type IntLit struct {
	expr
	Value uint32
}

// RealLit is a real literal.
type RealLit struct {
	expr
	Value float32
}

// PiLit is the constant pi.
type PiLit struct {
	expr
}

// BinaryOp is a binary arithmetic operator.
type BinaryOp uint8

const (
	Add BinaryOp = iota // +
	Sub                 // -
	Mul                 // *
	Div                 // /
	Pow                 // ^
)

var binaryOpNames = [...]string{
	Add: "+",
	Sub: "-",
	Mul: "*",
	Div: "/",
	Pow: "^",
}

func (op BinaryOp) String() string { return binaryOpNames[op] }

// BinaryExpr is X Op Y.
type BinaryExpr struct {
	expr
	X  Expr
	Op BinaryOp
	Y  Expr
}

// UnaryOp is negation or one of the builtin functions.
type UnaryOp uint8

const (
	Minus UnaryOp = iota // -x
	Sin                  // sin(x)
	Cos                  // cos(x)
	Tan                  // tan(x)
	Exp                  // exp(x)
	Ln                   // ln(x)
	Sqrt                 // sqrt(x)
)

var unaryOpNames = [...]string{
	Minus: "-",
	Sin:   "sin",
	Cos:   "cos",
	Tan:   "tan",
	Exp:   "exp",
	Ln:    "ln",
	Sqrt:  "sqrt",
}

func (op UnaryOp) String() string { return unaryOpNames[op] }

// UnaryExpr is -X or Op(X).
type UnaryExpr struct {
	expr
	Op UnaryOp
	X  Expr
}
