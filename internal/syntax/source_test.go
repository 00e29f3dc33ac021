package syntax

import (
	"errors"
	"strings"
	"testing"

	"github.com/you-not-fish/qasmc/internal/source"
)

func newTestCursor(src string) *cursor {
	c := new(cursor)
	c.init("test", strings.NewReader(src), nil)
	return c
}

func TestCursorBasic(t *testing.T) {
	c := newTestCursor("ab")

	if c.ch != 'a' || c.line != 1 || c.col != 1 {
		t.Errorf("got ch=%q pos=%d:%d, want 'a' 1:1", c.ch, c.line, c.col)
	}

	c.nextch()
	if c.ch != 'b' || c.col != 2 {
		t.Errorf("got ch=%q col=%d, want 'b' 2", c.ch, c.col)
	}

	c.nextch()
	if c.ch != -1 {
		t.Errorf("ch = %d, want -1 (EOF)", c.ch)
	}
	if c.col != 3 {
		t.Errorf("EOF col = %d, want 3", c.col)
	}
}

func TestCursorRuneColumns(t *testing.T) {
	c := newTestCursor("éb")

	c.nextch()
	if c.ch != 'b' || c.col != 2 {
		t.Errorf("got ch=%q col=%d, want 'b' 2", c.ch, c.col)
	}
	if c.offs != 3 {
		t.Errorf("offs = %d, want 3", c.offs)
	}
}

func TestCursorNewline(t *testing.T) {
	c := newTestCursor("a\nb")

	c.nextch() // '\n' at 1:2
	if c.ch != '\n' || c.line != 1 || c.col != 2 {
		t.Errorf("got ch=%q pos=%d:%d, want '\\n' 1:2", c.ch, c.line, c.col)
	}

	c.nextch() // 'b' at 2:1
	if c.ch != 'b' || c.line != 2 || c.col != 1 {
		t.Errorf("got ch=%q pos=%d:%d, want 'b' 2:1", c.ch, c.line, c.col)
	}
}

func TestCursorEmpty(t *testing.T) {
	c := newTestCursor("")
	if c.ch != -1 {
		t.Errorf("ch = %d, want -1", c.ch)
	}
	if got := c.pos(); got != source.MakePos(1, 1) {
		t.Errorf("pos = %v, want 1:1", got)
	}
}

type failingReader struct{}

func (failingReader) Read([]byte) (int, error) {
	return 0, errors.New("boom")
}

func TestCursorReadError(t *testing.T) {
	var msgs []string
	c := new(cursor)
	c.init("test", failingReader{}, func(loc source.Location, msg string) {
		msgs = append(msgs, msg)
	})

	if c.ch != -1 {
		t.Errorf("ch = %d, want -1", c.ch)
	}
	if len(msgs) != 1 || !strings.Contains(msgs[0], "boom") {
		t.Errorf("errors = %q", msgs)
	}
}

func TestCharClasses(t *testing.T) {
	for _, r := range "azAZ_" {
		if !isLetter(r) {
			t.Errorf("isLetter(%q) = false", r)
		}
	}
	for _, r := range "09-> .\x00" {
		if isLetter(r) {
			t.Errorf("isLetter(%q) = true", r)
		}
	}
	for _, r := range " \t\r\n" {
		if !isWhitespace(r) {
			t.Errorf("isWhitespace(%q) = false", r)
		}
	}
	if isUpper('a') || !isUpper('Q') || isLower('Q') || !isLower('q') {
		t.Error("case classification is wrong")
	}
}
