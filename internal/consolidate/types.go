package consolidate

// Kind is the declaration kind extracted from input.
type Kind string

const (
	KindClass  Kind = "class"
	KindStruct Kind = "struct"
	KindEnum   Kind = "enum"
)

// Fixed output groups that are not subject to category classification.
const (
	GroupEnums   = "Enums"
	GroupStructs = "Structs"
)

// Declaration is a class, struct, or enum extracted from input text.
type Declaration struct {
	Kind     Kind
	Name     string // sanitized
	Parent   string // parent class name, classes only, "" if none
	Body     string // verbatim brace-delimited block
	Category string // subject-matter bucket, computed once at extraction
}

// Pool accumulates declarations per kind, keyed by name. Duplicate names
// overwrite: last writer wins across files.
type Pool struct {
	Classes map[string]*Declaration
	Structs map[string]*Declaration
	Enums   map[string]*Declaration
}

// NewPool creates an empty declaration pool.
func NewPool() *Pool {
	return &Pool{
		Classes: make(map[string]*Declaration),
		Structs: make(map[string]*Declaration),
		Enums:   make(map[string]*Declaration),
	}
}

// Len returns the total number of pooled declarations.
func (p *Pool) Len() int {
	return len(p.Classes) + len(p.Structs) + len(p.Enums)
}

// DefinedNames returns the set of every declaration name in the pool.
func (p *Pool) DefinedNames() map[string]struct{} {
	names := make(map[string]struct{}, p.Len())
	for name := range p.Classes {
		names[name] = struct{}{}
	}
	for name := range p.Structs {
		names[name] = struct{}{}
	}
	for name := range p.Enums {
		names[name] = struct{}{}
	}
	return names
}

// Groups maps an output group name to its ordered declaration bodies.
type Groups map[string][]string
