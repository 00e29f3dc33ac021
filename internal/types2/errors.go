package types2

import (
	"fmt"

	"github.com/you-not-fish/qasmc/internal/diag"
	"github.com/you-not-fish/qasmc/internal/source"
)

// ErrorHandler is a function called for each reported diagnostic.
type ErrorHandler func(d diag.Diagnostic)

// reporter collects the diagnostics of one pass.
type reporter struct {
	conf  *Config
	diags diag.List
}

// report records d and forwards it to the configured handler.
func (r *reporter) report(d diag.Diagnostic) {
	r.diags.Add(d)
	if r.conf.Error != nil {
		r.conf.Error(d)
	}
}

// errorf reports a located diagnostic of the given kind.
func (r *reporter) errorf(kind diag.Kind, loc source.Location, format string, args ...any) {
	r.report(diag.Located(kind, fmt.Sprintf(format, args...), loc))
}

// incoherent reports a violated internal invariant.
func (r *reporter) incoherent() {
	r.report(diag.Simple(diag.Internal, "incoherent type"))
}
