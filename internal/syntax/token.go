// Package syntax implements lexical analysis, parsing and printing for the
// quantum assembly language accepted by qasmc.
package syntax

import "fmt"

// Token represents the type of a lexical token.
type Token uint

const (
	// Special tokens
	_EOF Token = iota // end of file

	// Literals
	_Name // identifier: q, anc, c0
	_Int  // integer literal: 0, 42
	_Real // real literal: 2.0, 3.14

	// Operators (ordered by precedence, low to high)
	_Add // +
	_Sub // -
	_Mul // *
	_Div // /
	_Pow // ^

	// Delimiters
	_Lparen // (
	_Rparen // )
	_Lbrack // [
	_Rbrack // ]
	_Comma  // ,
	_Semi   // ;
	_Arrow  // ->

	// Keywords
	_OPENQASM
	_Qreg
	_Creg
	_U
	_CX
	_Measure
	_Reset
	_Pi

	// Function keywords
	_Sin
	_Cos
	_Tan
	_Exp
	_Ln
	_Sqrt

	tokenCount
)

// tokenNames maps tokens to their string representation.
var tokenNames = [...]string{
	_EOF: "EOF",

	_Name: "NAME",
	_Int:  "INT",
	_Real: "REAL",

	_Add: "+",
	_Sub: "-",
	_Mul: "*",
	_Div: "/",
	_Pow: "^",

	_Lparen: "(",
	_Rparen: ")",
	_Lbrack: "[",
	_Rbrack: "]",
	_Comma:  ",",
	_Semi:   ";",
	_Arrow:  "->",

	_OPENQASM: "OPENQASM",
	_Qreg:     "qreg",
	_Creg:     "creg",
	_U:        "U",
	_CX:       "CX",
	_Measure:  "measure",
	_Reset:    "reset",
	_Pi:       "pi",

	_Sin:  "sin",
	_Cos:  "cos",
	_Tan:  "tan",
	_Exp:  "exp",
	_Ln:   "ln",
	_Sqrt: "sqrt",
}

// String returns the string representation of the token.
func (t Token) String() string {
	if t < tokenCount {
		return tokenNames[t]
	}
	return fmt.Sprintf("token(%d)", t)
}

// Quote returns t as it appears in diagnostics: fixed-text tokens are
// quoted, token classes are not.
func (t Token) Quote() string {
	switch t {
	case _EOF, _Name, _Int, _Real:
		return t.String()
	}
	return "'" + t.String() + "'"
}

// Precedence returns the operator precedence for binary operators.
// Returns 0 for non-operators.
// Precedence levels (higher = binds tighter):
//
//	1: + -
//	2: * /
//	3: ^
func (t Token) Precedence() int {
	switch t {
	case _Add, _Sub:
		return 1
	case _Mul, _Div:
		return 2
	case _Pow:
		return 3
	}
	return 0
}

// RightAssoc reports whether the binary operator t groups to the right.
func (t Token) RightAssoc() bool {
	return t == _Pow
}

// IsKeyword reports whether t is a keyword token.
func (t Token) IsKeyword() bool {
	return t >= _OPENQASM && t <= _Sqrt
}

// IsFunc reports whether t names a unary function.
func (t Token) IsFunc() bool {
	return t >= _Sin && t <= _Sqrt
}

// IsLiteral reports whether t is a numeric literal token.
func (t Token) IsLiteral() bool {
	return t == _Int || t == _Real
}

// IsEOF reports whether t is the EOF token.
func (t Token) IsEOF() bool {
	return t == _EOF
}

// keywords maps lowercase keyword strings to their token type.
var keywords = map[string]Token{
	"qreg":    _Qreg,
	"creg":    _Creg,
	"measure": _Measure,
	"reset":   _Reset,
	"pi":      _Pi,
	"sin":     _Sin,
	"cos":     _Cos,
	"tan":     _Tan,
	"exp":     _Exp,
	"ln":      _Ln,
	"sqrt":    _Sqrt,
}

// reserved maps the uppercase words of the language to their token type.
// Any other uppercase-led word is rejected by the scanner.
var reserved = map[string]Token{
	"OPENQASM": _OPENQASM,
	"U":        _U,
	"CX":       _CX,
}

// LookupKeyword returns the token for the given identifier string.
// Lowercase-led words are keywords or names. For uppercase-led words
// ok is false unless the word is reserved.
func LookupKeyword(ident string) (tok Token, ok bool) {
	if ident == "" {
		return _EOF, false
	}
	if isUpper(rune(ident[0])) {
		tok, ok = reserved[ident]
		return tok, ok
	}
	if tok, ok := keywords[ident]; ok {
		return tok, true
	}
	return _Name, true
}
