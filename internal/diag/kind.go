// Package diag collects diagnostics produced by the compiler phases.
package diag

// Kind classifies a diagnostic by the phase that produced it.
// The numeric value of a Kind is its exit code.
type Kind uint8

const (
	Ok Kind = iota
	Internal
	Lex
	Parse
	Bind
	Type
	Sanity
)

var kindNames = [...]string{
	Ok:       "ok",
	Internal: "internal error",
	Lex:      "lexical error",
	Parse:    "syntax error",
	Bind:     "binding error",
	Type:     "type error",
	Sanity:   "sanity error",
}

// String returns a human readable name for the kind.
func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return "unknown"
}

// ExitCode returns the process exit status associated with k.
func (k Kind) ExitCode() int {
	return int(k)
}
