package types

import "github.com/you-not-fish/qasmc/internal/source"

// Object represents a declared entity: register, gate parameter, or gate.
type Object interface {
	Name() string         // object name
	Type() Type           // object type, nil for gate parameters
	Loc() source.Location // declaration location, invalid for builtins

	aObject() // marker method to restrict implementations
}

// object is the base struct for all objects.
type object struct {
	name string
	typ  Type
	loc  source.Location
}

func (o *object) Name() string         { return o.name }
func (o *object) Type() Type           { return o.typ }
func (o *object) Loc() source.Location { return o.loc }
func (*object) aObject()               {}

// RegDec records a register declaration, or a formal argument of a gate.
type RegDec struct {
	object
}

// NewRegDec creates a register record.
func NewRegDec(loc source.Location, name string, typ Type) *RegDec {
	return &RegDec{object: object{name: name, typ: typ, loc: loc}}
}

// ParDec records a formal real-valued parameter of a gate.
type ParDec struct {
	object
}

// NewParDec creates a parameter record.
func NewParDec(loc source.Location, name string) *ParDec {
	return &ParDec{object: object{name: name, loc: loc}}
}

// GateDec records a gate declaration.
// Its type is always Gate{len(params), len(args)}.
type GateDec struct {
	object
	params []*ParDec
	args   []*RegDec
}

// NewGateDec creates a gate record.
func NewGateDec(loc source.Location, name string, params []*ParDec, args []*RegDec) *GateDec {
	return &GateDec{
		object: object{
			name: name,
			typ:  Gate{NumParams: len(params), NumArgs: len(args)},
			loc:  loc,
		},
		params: params,
		args:   args,
	}
}

// Params returns the formal parameters.
func (g *GateDec) Params() []*ParDec {
	return g.params
}

// Args returns the formal arguments.
func (g *GateDec) Args() []*RegDec {
	return g.args
}
