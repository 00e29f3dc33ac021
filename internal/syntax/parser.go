package syntax

import (
	"io"

	"github.com/you-not-fish/qasmc/internal/diag"
)

// bailout is raised to unwind the parser after the first error.
type bailout struct{}

// Parser performs syntax analysis on quantum assembly source.
// The first lexical or syntax error stops the parse.
type Parser struct {
	scanner *Scanner
	diags   diag.List // syntax errors
}

// NewParser creates a new Parser for the given source.
func NewParser(filename string, src io.Reader) *Parser {
	return &Parser{
		scanner: NewScanner(filename, src),
	}
}

// ParseFile parses src and returns the program together with the lexical
// and syntax diagnostics. The program is nil if any diagnostic was reported.
func ParseFile(filename string, src io.Reader) (*Program, *diag.List) {
	p := NewParser(filename, src)
	prog := p.Parse()
	return prog, p.Diagnostics()
}

// Diagnostics returns the lexical diagnostics followed by the syntax diagnostics.
func (p *Parser) Diagnostics() *diag.List {
	var l diag.List
	l.Merge(p.scanner.Diagnostics())
	l.Merge(&p.diags)
	return &l
}

// ----------------------------------------------------------------------------
// Token navigation

// peek returns the next lexeme, unwinding the parse on a lexical error.
func (p *Parser) peek() Lexeme {
	lex, ok := p.scanner.Peek()
	if !ok {
		panic(bailout{})
	}
	return lex
}

// got reports whether the next token is tok.
// If so, it consumes the token and returns it.
func (p *Parser) got(tok Token) (Lexeme, bool) {
	lex := p.peek()
	if lex.Tok != tok {
		return lex, false
	}
	p.scanner.Drop()
	return lex, true
}

// want consumes and returns the next token if it is tok.
// Otherwise, it reports an error.
func (p *Parser) want(tok Token) Lexeme {
	lex, ok := p.got(tok)
	if !ok {
		p.unexpected(lex, tok.Quote())
	}
	return lex
}

// ----------------------------------------------------------------------------
// Error handling

// unexpected reports lex as a syntax error and stops the parse.
func (p *Parser) unexpected(lex Lexeme, expected string) {
	p.diags.Addf(diag.Parse, lex.Loc, "unexpected token %s, expected %s", lex, expected)
	panic(bailout{})
}

// ----------------------------------------------------------------------------
// Parsing entry point

// Parse parses a complete program and returns the AST.
// It returns nil if a lexical or syntax error occurred.
func (p *Parser) Parse() (prog *Program) {
	defer func() {
		if r := recover(); r != nil {
			if _, ok := r.(bailout); !ok {
				panic(r)
			}
			prog = nil
		}
	}()
	return p.program()
}

// program parses: OPENQASM 2.0 ; stmt { stmt } EOF
func (p *Parser) program() *Program {
	prog := &Program{}

	start := p.want(_OPENQASM)
	if lex := p.peek(); lex.Tok != _Real || lex.Real != 2.0 {
		p.unexpected(lex, "'2.0'")
	}
	p.scanner.Drop()
	end := p.want(_Semi).Loc

	for {
		s := p.stmt()
		prog.Stmts = append(prog.Stmts, s)
		end = s.Loc()
		if p.peek().Tok == _EOF {
			break
		}
	}

	prog.loc = start.Loc.To(end)
	return prog
}

// ----------------------------------------------------------------------------
// Statements

// stmt parses a declaration or a quantum operation.
func (p *Parser) stmt() Stmt {
	switch lex := p.peek(); lex.Tok {
	case _Qreg, _Creg:
		return p.declStmt()
	case _U:
		return p.uGate()
	case _CX:
		return p.cxGate()
	case _Measure:
		return p.measureStmt()
	case _Reset:
		return p.resetStmt()
	default:
		p.unexpected(lex, "statement")
	}
	panic("unreachable")
}

// declStmt parses: (qreg|creg) NAME [ INT ] ;
func (p *Parser) declStmt() Stmt {
	d := &RegDecl{}

	start := p.peek()
	if start.Tok == _Creg {
		d.Kind = CReg
	}
	p.scanner.Drop()

	name := p.want(_Name)
	d.Name = name.Lit
	d.NameLoc = name.Loc

	p.want(_Lbrack)
	d.Size = p.want(_Int).Int
	p.want(_Rbrack)
	end := p.want(_Semi)

	d.loc = start.Loc.To(end.Loc)
	s := &DeclStmt{Decl: d}
	s.loc = d.loc
	return s
}

// uGate parses: U ( explist ) arg ;
func (p *Parser) uGate() Stmt {
	start := p.want(_U)
	s := &GateStmt{Gate: start.Lit, GateLoc: start.Loc}

	p.want(_Lparen)
	s.Params = p.exprList()
	p.want(_Rparen)
	s.Args = []Reg{p.reg()}
	end := p.want(_Semi)

	s.loc = start.Loc.To(end.Loc)
	return s
}

// cxGate parses: CX arg , arg ;
func (p *Parser) cxGate() Stmt {
	start := p.want(_CX)
	s := &GateStmt{Gate: start.Lit, GateLoc: start.Loc}

	control := p.reg()
	p.want(_Comma)
	target := p.reg()
	s.Args = []Reg{control, target}
	end := p.want(_Semi)

	s.loc = start.Loc.To(end.Loc)
	return s
}

// measureStmt parses: measure arg -> arg ;
func (p *Parser) measureStmt() Stmt {
	start := p.want(_Measure)
	s := &MeasureStmt{}

	s.Src = p.reg()
	p.want(_Arrow)
	s.Dst = p.reg()
	end := p.want(_Semi)

	s.loc = start.Loc.To(end.Loc)
	return s
}

// resetStmt parses: reset arg ;
func (p *Parser) resetStmt() Stmt {
	start := p.want(_Reset)
	s := &ResetStmt{}

	s.Reg = p.reg()
	end := p.want(_Semi)

	s.loc = start.Loc.To(end.Loc)
	return s
}

// reg parses a register reference: NAME [ '[' INT ']' ]
func (p *Parser) reg() Reg {
	name := p.want(_Name)

	if _, ok := p.got(_Lbrack); !ok {
		r := &SimpleReg{}
		r.Name = name.Lit
		r.loc = name.Loc
		return r
	}

	r := &SubscriptReg{}
	r.Name = name.Lit
	r.Index = p.want(_Int).Int
	end := p.want(_Rbrack)
	r.loc = name.Loc.To(end.Loc)
	return r
}

// ----------------------------------------------------------------------------
// Expressions

// binaryOps maps operator tokens to AST operators.
var binaryOps = map[Token]BinaryOp{
	_Add: Add,
	_Sub: Sub,
	_Mul: Mul,
	_Div: Div,
	_Pow: Pow,
}

// unaryFuncs maps function keywords to AST operators.
var unaryFuncs = map[Token]UnaryOp{
	_Sin:  Sin,
	_Cos:  Cos,
	_Tan:  Tan,
	_Exp:  Exp,
	_Ln:   Ln,
	_Sqrt: Sqrt,
}

// expr parses an expression.
func (p *Parser) expr() Expr {
	return p.binaryExpr(0)
}

// binaryExpr parses a binary expression with minimum precedence prec.
// Implements precedence climbing; right-associative operators parse their
// right operand at their own level.
func (p *Parser) binaryExpr(prec int) Expr {
	x := p.unaryExpr()

	for {
		lex := p.peek()
		oprec := lex.Tok.Precedence()
		if oprec <= prec {
			return x
		}
		p.scanner.Drop()

		next := oprec
		if lex.Tok.RightAssoc() {
			next--
		}

		op := &BinaryExpr{X: x, Op: binaryOps[lex.Tok]}
		op.Y = p.binaryExpr(next)
		op.loc = x.Loc().To(op.Y.Loc())
		x = op
	}
}

// unaryExpr parses a unary expression or an atom.
// Negation applies to a single term, so -2^2 is (-2)^2.
func (p *Parser) unaryExpr() Expr {
	lex := p.peek()

	switch {
	case lex.Tok == _Sub:
		p.scanner.Drop()
		op := &UnaryExpr{Op: Minus}
		op.X = p.unaryExpr()
		op.loc = lex.Loc.To(op.X.Loc())
		return op

	case lex.Tok.IsFunc():
		p.scanner.Drop()
		op := &UnaryExpr{Op: unaryFuncs[lex.Tok]}
		p.want(_Lparen)
		op.X = p.expr()
		end := p.want(_Rparen)
		op.loc = lex.Loc.To(end.Loc)
		return op

	case lex.Tok == _Lparen:
		p.scanner.Drop()
		x := p.expr()
		end := p.want(_Rparen)
		x.setLoc(lex.Loc.To(end.Loc))
		return x
	}

	return p.operand()
}

// operand parses a literal or pi.
func (p *Parser) operand() Expr {
	lex := p.peek()

	var x Expr
	switch lex.Tok {
	case _Int:
		x = &IntLit{Value: lex.Int}
	case _Real:
		x = &RealLit{Value: lex.Real}
	case _Pi:
		x = &PiLit{}
	default:
		p.unexpected(lex, "expression")
	}
	p.scanner.Drop()

	x.setLoc(lex.Loc)
	return x
}

// exprList parses a comma-separated list of expressions.
func (p *Parser) exprList() []Expr {
	list := []Expr{p.expr()}
	for {
		if _, ok := p.got(_Comma); !ok {
			return list
		}
		list = append(list, p.expr())
	}
}
