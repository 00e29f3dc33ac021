package syntax

import "testing"

func TestTokenString(t *testing.T) {
	tests := []struct {
		tok  Token
		want string
	}{
		{_EOF, "EOF"},
		{_Name, "NAME"},
		{_Int, "INT"},
		{_Real, "REAL"},
		{_Add, "+"},
		{_Sub, "-"},
		{_Mul, "*"},
		{_Div, "/"},
		{_Pow, "^"},
		{_Lparen, "("},
		{_Rparen, ")"},
		{_Lbrack, "["},
		{_Rbrack, "]"},
		{_Comma, ","},
		{_Semi, ";"},
		{_Arrow, "->"},
		{_OPENQASM, "OPENQASM"},
		{_Qreg, "qreg"},
		{_Creg, "creg"},
		{_U, "U"},
		{_CX, "CX"},
		{_Measure, "measure"},
		{_Reset, "reset"},
		{_Pi, "pi"},
		{_Sin, "sin"},
		{_Sqrt, "sqrt"},
		{tokenCount + 3, "token(33)"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			if got := tt.tok.String(); got != tt.want {
				t.Errorf("String() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestTokenQuote(t *testing.T) {
	tests := []struct {
		tok  Token
		want string
	}{
		{_EOF, "EOF"},
		{_Name, "NAME"},
		{_Int, "INT"},
		{_Real, "REAL"},
		{_Comma, "','"},
		{_Semi, "';'"},
		{_Arrow, "'->'"},
		{_Qreg, "'qreg'"},
		{_OPENQASM, "'OPENQASM'"},
	}

	for _, tt := range tests {
		t.Run(tt.tok.String(), func(t *testing.T) {
			if got := tt.tok.Quote(); got != tt.want {
				t.Errorf("Quote() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestTokenNamesComplete(t *testing.T) {
	for tok := Token(0); tok < tokenCount; tok++ {
		if tokenNames[tok] == "" {
			t.Errorf("token %d has no name", tok)
		}
	}
}

func TestTokenPrecedence(t *testing.T) {
	tests := []struct {
		tok   Token
		prec  int
		right bool
	}{
		{_Add, 1, false},
		{_Sub, 1, false},
		{_Mul, 2, false},
		{_Div, 2, false},
		{_Pow, 3, true},
		{_Semi, 0, false},
		{_Name, 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.tok.String(), func(t *testing.T) {
			if got := tt.tok.Precedence(); got != tt.prec {
				t.Errorf("Precedence() = %d, want %d", got, tt.prec)
			}
			if got := tt.tok.RightAssoc(); got != tt.right {
				t.Errorf("RightAssoc() = %v, want %v", got, tt.right)
			}
		})
	}
}

func TestLookupKeyword(t *testing.T) {
	tests := []struct {
		ident string
		tok   Token
		ok    bool
	}{
		{"qreg", _Qreg, true},
		{"creg", _Creg, true},
		{"measure", _Measure, true},
		{"reset", _Reset, true},
		{"pi", _Pi, true},
		{"ln", _Ln, true},
		{"q", _Name, true},
		{"my_reg0", _Name, true},
		{"OPENQASM", _OPENQASM, true},
		{"U", _U, true},
		{"CX", _CX, true},
		{"H", 0, false},
		{"Qreg", 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.ident, func(t *testing.T) {
			tok, ok := LookupKeyword(tt.ident)
			if ok != tt.ok {
				t.Fatalf("ok = %v, want %v", ok, tt.ok)
			}
			if ok && tok != tt.tok {
				t.Errorf("tok = %v, want %v", tok, tt.tok)
			}
		})
	}
}

func TestTokenClasses(t *testing.T) {
	if !_Sin.IsFunc() || !_Sqrt.IsFunc() || _Pi.IsFunc() {
		t.Error("IsFunc is wrong")
	}
	if !_OPENQASM.IsKeyword() || !_Sqrt.IsKeyword() || _Name.IsKeyword() {
		t.Error("IsKeyword is wrong")
	}
	if !_Int.IsLiteral() || !_Real.IsLiteral() || _Pi.IsLiteral() {
		t.Error("IsLiteral is wrong")
	}
}
