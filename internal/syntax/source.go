package syntax

import (
	"io"
	"unicode/utf8"

	"github.com/you-not-fish/qasmc/internal/source"
)

// cursor is a character reader with position tracking.
type cursor struct {
	// Input
	buf []byte // source buffer (entire input read into memory)

	// Position tracking
	filename string // source file name
	line     uint32 // current line number (1-based)
	col      uint32 // current column number (1-based, in runes)

	// Current state
	ch   rune // current character, -1 for EOF
	offs int  // current byte offset in buf

	// Error handling
	errh func(loc source.Location, msg string)
}

// init prepares s to read from src.
// The errh function is called for each error; if nil, errors are silently ignored.
func (s *cursor) init(filename string, src io.Reader, errh func(loc source.Location, msg string)) {
	*s = cursor{
		filename: filename,
		line:     1,
		col:      0,  // Will be incremented to 1 by first nextch()
		ch:       -1, // Sentinel: -1 means "before first char"
		errh:     errh,
	}

	var err error
	s.buf, err = io.ReadAll(src)
	if err != nil {
		s.error(source.Location{}, "error reading source: "+err.Error())
		s.buf = nil
	}

	s.nextch()
}

// nextch reads the next character from the source and updates position.
// Sets s.ch to -1 at EOF.
//
// Position tracking: (line, col) always refers to the position of s.ch after nextch() returns.
func (s *cursor) nextch() {
	if s.ch == '\n' {
		s.line++
		s.col = 1
	} else {
		s.col++
	}

	if s.offs >= len(s.buf) {
		s.ch = -1
		return
	}

	// Non-ASCII input decodes to a rune that no token starts with,
	// so it is reported as an invalid character by the scanner.
	r, width := utf8.DecodeRune(s.buf[s.offs:])
	s.ch = r
	s.offs += width
}

// pos returns the current position (position of current character).
func (s *cursor) pos() source.Pos {
	return source.MakePos(s.line, s.col)
}

// span returns the location from start to the current position.
func (s *cursor) span(start source.Pos) source.Location {
	return source.NewLocation(s.filename, start, s.pos())
}

// error reports a lexical error.
func (s *cursor) error(loc source.Location, msg string) {
	if s.errh != nil {
		s.errh(loc, msg)
	}
}

// Character classification helpers

// isLower reports whether r is a lowercase ASCII letter.
func isLower(r rune) bool {
	return 'a' <= r && r <= 'z'
}

// isUpper reports whether r is an uppercase ASCII letter.
func isUpper(r rune) bool {
	return 'A' <= r && r <= 'Z'
}

// isLetter reports whether r can continue an identifier (a-z, A-Z, or _).
func isLetter(r rune) bool {
	return isLower(r) || isUpper(r) || r == '_'
}

// isDigit reports whether r is a decimal digit (0-9).
func isDigit(r rune) bool {
	return '0' <= r && r <= '9'
}

// isWhitespace reports whether r is skipped between tokens.
func isWhitespace(r rune) bool {
	return r == ' ' || r == '\t' || r == '\r' || r == '\n'
}
