package types

import "github.com/you-not-fish/qasmc/internal/source"

// NoLoc is the zero location, used for predeclared objects.
var NoLoc source.Location

// Universe is the root gate table holding the builtin gates.
var Universe *Scope

func init() {
	Universe = NewScope()
	defPredeclaredGates()
}

// defPredeclaredGates defines U(theta, phi, lambda) q and CX c, t.
func defPredeclaredGates() {
	Universe.Insert(NewGateDec(NoLoc, "U",
		[]*ParDec{
			NewParDec(NoLoc, "theta"),
			NewParDec(NoLoc, "phi"),
			NewParDec(NoLoc, "lambda"),
		},
		[]*RegDec{
			NewRegDec(NoLoc, "qubit", Qubit{}),
		},
	))

	Universe.Insert(NewGateDec(NoLoc, "CX",
		nil,
		[]*RegDec{
			NewRegDec(NoLoc, "control", Qubit{}),
			NewRegDec(NoLoc, "target", Qubit{}),
		},
	))
}
