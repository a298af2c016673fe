package convert

import "fmt"

// LineKind tags one input line according to the dump line grammar.
type LineKind int

const (
	LineOther LineKind = iota
	LineField
	LineClassOpen
	LineStructOpen
	LineEnumOpen
	LineClose
)

// String returns the human-readable name of the line kind.
func (k LineKind) String() string {
	switch k {
	case LineField:
		return "field"
	case LineClassOpen:
		return "class-open"
	case LineStructOpen:
		return "struct-open"
	case LineEnumOpen:
		return "enum-open"
	case LineClose:
		return "close"
	default:
		return "other"
	}
}

// RawField is an unparsed field line candidate.
// The offset is kept verbatim as text; it is only ever re-emitted, never
// reinterpreted as an integer.
type RawField struct {
	RawType string // may include pointer/generic syntax
	RawName string // may carry dump disambiguation suffixes
	Offset  string // hex byte offset, e.g. "0x0120"
}

// FieldDeclaration is a validated, converted field owned by one declaration.
type FieldDeclaration struct {
	Offset string
	Type   string // resolved output type expression
	Name   string // sanitized, never starts with a digit
}

// Render produces the fixed FIELD() output format for the declaration body.
func (f FieldDeclaration) Render() string {
	return fmt.Sprintf("    FIELD(%s, %s, %s);", f.Offset, f.Type, f.Name)
}

// Line is the result of classifying one raw input line.
type Line struct {
	Kind LineKind

	// Field lines
	Field RawField

	// Declaration openers
	Name   string // class/struct/enum name, uncleaned
	Parent string // parent class name for class openers, "" if none
}
