package source

import "fmt"

// Location is a half-open span [start, end) inside one file.
// The zero value is an invalid location.
type Location struct {
	filename string
	start    Pos
	end      Pos // exclusive
}

// NewLocation creates a Location spanning start to end.
// If end is invalid or before start, the location is a point at start.
func NewLocation(filename string, start, end Pos) Location {
	if !end.IsValid() || end.Before(start) {
		end = start
	}
	return Location{filename: filename, start: start, end: end}
}

// At creates a point location.
func At(filename string, pos Pos) Location {
	return Location{filename: filename, start: pos, end: pos}
}

// Filename returns the source file name.
func (l Location) Filename() string {
	return l.filename
}

// Start returns the first position covered by the location.
func (l Location) Start() Pos {
	return l.start
}

// End returns the position just past the location.
func (l Location) End() Pos {
	return l.end
}

// IsValid reports whether the location has a valid start.
func (l Location) IsValid() bool {
	return l.start.IsValid()
}

// To returns a location from the start of l to the end of other.
// An invalid side is ignored.
func (l Location) To(other Location) Location {
	switch {
	case !other.IsValid():
		return l
	case !l.IsValid():
		return other
	}
	return NewLocation(l.filename, l.start, other.end)
}

// String renders the location as
//
//	file:line:col              (point)
//	file:line:col-endcol       (same line)
//	file:line:col-endline:endcol
//
// The "file:" prefix is omitted when the file name is empty.
func (l Location) String() string {
	var s string
	switch {
	case l.start == l.end:
		s = l.start.String()
	case l.start.line == l.end.line:
		s = fmt.Sprintf("%s-%d", l.start, l.end.col)
	default:
		s = fmt.Sprintf("%s-%s", l.start, l.end)
	}
	if l.filename != "" {
		return l.filename + ":" + s
	}
	return s
}
