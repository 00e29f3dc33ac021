// Package types implements the type system and symbol records of the
// quantum assembly front end.
// This package provides type representations without AST dependencies.
package types

import "fmt"

// Type is the interface implemented by all types.
// Types are comparable values; two types are identical iff they are ==.
type Type interface {
	// String returns a human-readable representation of the type.
	String() string

	// aType is a marker method to restrict implementations to this package.
	aType()
}

// typ is a base struct for all type implementations.
type typ struct{}

func (typ) aType() {}

// Qubit is the type of a single quantum bit.
type Qubit struct{ typ }

// QReg is the type of a quantum register of Size qubits.
type QReg struct {
	typ
	Size uint32
}

// Bit is the type of a single classical bit.
type Bit struct{ typ }

// CReg is the type of a classical register of Size bits.
type CReg struct {
	typ
	Size uint32
}

// Gate is the type of a gate taking NumParams real parameters
// and NumArgs qubit arguments.
type Gate struct {
	typ
	NumParams int
	NumArgs   int
}

func (Qubit) String() string  { return "qubit" }
func (Bit) String() string    { return "bit" }
func (t QReg) String() string { return fmt.Sprintf("qreg[%d]", t.Size) }
func (t CReg) String() string { return fmt.Sprintf("creg[%d]", t.Size) }
func (t Gate) String() string { return fmt.Sprintf("gate(%d)(%d)", t.NumParams, t.NumArgs) }

// Identical reports whether x and y are the same type.
func Identical(x, y Type) bool {
	return x == y
}

// IsQuantum reports whether t is a qubit or a quantum register.
func IsQuantum(t Type) bool {
	switch t.(type) {
	case Qubit, QReg:
		return true
	}
	return false
}

// IsClassical reports whether t is a bit or a classical register.
func IsClassical(t Type) bool {
	switch t.(type) {
	case Bit, CReg:
		return true
	}
	return false
}

// RegSize returns the size of a register type.
// ok is false for single qubits, single bits and gates.
func RegSize(t Type) (size uint32, ok bool) {
	switch t := t.(type) {
	case QReg:
		return t.Size, true
	case CReg:
		return t.Size, true
	}
	return 0, false
}

// Elem returns the type of one element of a register type.
func Elem(t Type) (Type, bool) {
	switch t.(type) {
	case QReg:
		return Qubit{}, true
	case CReg:
		return Bit{}, true
	}
	return nil, false
}
