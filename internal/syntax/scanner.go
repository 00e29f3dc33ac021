package syntax

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/you-not-fish/qasmc/internal/diag"
	"github.com/you-not-fish/qasmc/internal/source"
)

// Lexeme is a scanned token with its payload and location.
type Lexeme struct {
	Tok  Token
	Lit  string          // source text of the token
	Int  uint32          // value of an _Int token
	Real float32         // value of a _Real token
	Loc  source.Location // source span of the token
}

// String renders the lexeme for token dumps.
func (l Lexeme) String() string {
	switch l.Tok {
	case _Name, _Int, _Real:
		return fmt.Sprintf("%s %s", l.Tok, l.Lit)
	}
	return l.Tok.Quote()
}

// Scanner performs lexical analysis on quantum assembly source.
//
// Tokens are obtained with Peek, which returns the same lexeme until Drop is
// called. The first lexical error is terminal: every later Peek fails.
type Scanner struct {
	cursor // embedded character reader

	// Lookahead slot
	lex    Lexeme
	peeked bool

	failed bool
	diags  diag.List

	// Literal accumulation
	litBuf strings.Builder
}

// NewScanner creates a new Scanner for the given source.
func NewScanner(filename string, src io.Reader) *Scanner {
	s := new(Scanner)
	s.cursor.init(filename, src, s.errorAt)
	return s
}

// Peek returns the next lexeme without consuming it.
// ok is false once a lexical error has been reported.
// After the end of input Peek keeps returning the EOF lexeme.
func (s *Scanner) Peek() (lex Lexeme, ok bool) {
	if !s.failed && !s.peeked {
		s.lex = s.next()
		s.peeked = true
	}
	if s.failed {
		return Lexeme{}, false
	}
	return s.lex, true
}

// Drop discards the peeked lexeme so the next Peek scans a fresh one.
// Dropping the EOF lexeme has no effect.
func (s *Scanner) Drop() {
	if s.peeked && s.lex.Tok != _EOF {
		s.peeked = false
	}
}

// Failed reports whether a lexical error occurred.
func (s *Scanner) Failed() bool {
	return s.failed
}

// Diagnostics returns the lexical diagnostics.
func (s *Scanner) Diagnostics() *diag.List {
	return &s.diags
}

// errorAt records a lexical error and stops the scanner.
func (s *Scanner) errorAt(loc source.Location, msg string) {
	s.diags.Add(diag.Located(diag.Lex, msg, loc))
	s.failed = true
}

// next scans one lexeme starting at the current character.
func (s *Scanner) next() Lexeme {
	for isWhitespace(s.ch) {
		s.nextch()
	}

	start := s.pos()
	var lex Lexeme

	switch {
	case s.ch < 0:
		lex.Tok = _EOF

	case isLower(s.ch) || isUpper(s.ch):
		s.scanIdent(start, &lex)

	case isDigit(s.ch):
		s.scanNumber(start, &lex)

	default:
		s.scanOperator(start, &lex)
	}

	lex.Loc = s.span(start)
	return lex
}

// startLit begins accumulating a literal.
func (s *Scanner) startLit() {
	s.litBuf.Reset()
	s.litBuf.WriteRune(s.ch)
}

// continueLit adds the current character to the literal being accumulated.
func (s *Scanner) continueLit() {
	s.litBuf.WriteRune(s.ch)
}

// stopLit ends literal accumulation and returns the accumulated string.
func (s *Scanner) stopLit() string {
	return s.litBuf.String()
}

// scanIdent scans an identifier, keyword or reserved word.
func (s *Scanner) scanIdent(start source.Pos, lex *Lexeme) {
	s.startLit()
	s.nextch()

	for isLetter(s.ch) || isDigit(s.ch) {
		s.continueLit()
		s.nextch()
	}

	lex.Lit = s.stopLit()

	tok, ok := LookupKeyword(lex.Lit)
	if !ok {
		s.errorAt(s.span(start), fmt.Sprintf("invalid identifier '%s'", lex.Lit))
		return
	}
	lex.Tok = tok
}

// scanNumber scans an integer or a real literal.
// A real literal is digits '.' digits; there is no exponent form.
func (s *Scanner) scanNumber(start source.Pos, lex *Lexeme) {
	s.startLit()
	s.nextch()
	s.scanDigits()

	if s.ch != '.' {
		lex.Lit = s.stopLit()
		v, err := strconv.ParseUint(lex.Lit, 10, 32)
		if err != nil {
			s.errorAt(s.span(start), fmt.Sprintf("integer literal '%s' out of range", lex.Lit))
			return
		}
		lex.Tok = _Int
		lex.Int = uint32(v)
		return
	}

	s.continueLit()
	s.nextch()
	if !isDigit(s.ch) {
		s.errorAt(s.span(start), fmt.Sprintf("malformed real literal '%s'", s.stopLit()))
		return
	}
	s.scanDigits()

	lex.Lit = s.stopLit()
	v, err := strconv.ParseFloat(lex.Lit, 32)
	if err != nil {
		s.errorAt(s.span(start), fmt.Sprintf("real literal '%s' out of range", lex.Lit))
		return
	}
	lex.Tok = _Real
	lex.Real = float32(v)
}

// scanDigits consumes decimal digits into the literal buffer.
func (s *Scanner) scanDigits() {
	for isDigit(s.ch) {
		s.continueLit()
		s.nextch()
	}
}

// scanOperator scans an operator or delimiter.
func (s *Scanner) scanOperator(start source.Pos, lex *Lexeme) {
	ch := s.ch
	s.nextch()

	switch ch {
	case '+':
		lex.Tok = _Add
	case '-':
		if s.ch == '>' {
			s.nextch()
			lex.Tok = _Arrow
		} else {
			lex.Tok = _Sub
		}
	case '*':
		lex.Tok = _Mul
	case '/':
		lex.Tok = _Div
	case '^':
		lex.Tok = _Pow
	case '(':
		lex.Tok = _Lparen
	case ')':
		lex.Tok = _Rparen
	case '[':
		lex.Tok = _Lbrack
	case ']':
		lex.Tok = _Rbrack
	case ',':
		lex.Tok = _Comma
	case ';':
		lex.Tok = _Semi
	default:
		s.errorAt(s.span(start), fmt.Sprintf("invalid character %q", ch))
		return
	}
	lex.Lit = lex.Tok.String()
}
