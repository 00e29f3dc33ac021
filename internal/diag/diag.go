package diag

import (
	"fmt"
	"strings"

	"github.com/you-not-fish/qasmc/internal/source"
)

// Diagnostic is a single reported problem.
// A diagnostic with an invalid Loc is a simple diagnostic.
type Diagnostic struct {
	Kind Kind
	Msg  string
	Loc  source.Location
}

// Simple creates a diagnostic without a location.
func Simple(kind Kind, msg string) Diagnostic {
	return Diagnostic{Kind: kind, Msg: msg}
}

// Located creates a diagnostic attached to loc.
func Located(kind Kind, msg string, loc source.Location) Diagnostic {
	return Diagnostic{Kind: kind, Msg: msg, Loc: loc}
}

// IsLocated reports whether d carries a location.
func (d Diagnostic) IsLocated() bool {
	return d.Loc.IsValid()
}

// String renders d as "<msg>" or "<msg> at <location>".
func (d Diagnostic) String() string {
	if d.IsLocated() {
		return d.Msg + " at " + d.Loc.String()
	}
	return d.Msg
}

// Error implements the error interface.
func (d Diagnostic) Error() string {
	return d.String()
}

// List is an append-only, ordered collection of diagnostics.
// The zero value is an empty list ready to use.
type List struct {
	items []Diagnostic
}

// Add appends d.
func (l *List) Add(d Diagnostic) {
	l.items = append(l.items, d)
}

// Addf appends a located diagnostic with a formatted message.
func (l *List) Addf(kind Kind, loc source.Location, format string, args ...any) {
	l.Add(Located(kind, fmt.Sprintf(format, args...), loc))
}

// Merge appends every diagnostic of other, preserving order.
func (l *List) Merge(other *List) {
	if other == nil {
		return
	}
	l.items = append(l.items, other.items...)
}

// Len returns the number of diagnostics.
func (l *List) Len() int {
	if l == nil {
		return 0
	}
	return len(l.items)
}

// Empty reports whether the list holds no diagnostics.
func (l *List) Empty() bool {
	return l.Len() == 0
}

// All returns a copy of the diagnostics in insertion order.
func (l *List) All() []Diagnostic {
	if l == nil {
		return nil
	}
	return append([]Diagnostic(nil), l.items...)
}

// Kind returns the most severe kind present, that is the kind with the
// smallest non-zero exit code. An empty list yields Ok.
func (l *List) Kind() Kind {
	worst := Ok
	for _, d := range l.All() {
		if d.Kind == Ok {
			continue
		}
		if worst == Ok || d.Kind < worst {
			worst = d.Kind
		}
	}
	return worst
}

// ExitCode returns the exit status for the list.
func (l *List) ExitCode() int {
	return l.Kind().ExitCode()
}

// String joins the rendered diagnostics with newlines.
func (l *List) String() string {
	var b strings.Builder
	for i, d := range l.All() {
		if i > 0 {
			b.WriteByte('\n')
		}
		b.WriteString(d.String())
	}
	return b.String()
}
