package consolidate

import (
	"errors"
	"fmt"
	"regexp"
	"strings"

	"github.com/dominikbraun/graph"
)

var fieldDeclRe = regexp.MustCompile(`FIELD\((0x[0-9A-Fa-f]+),\s*([^,]+),\s*(\w+)\);`)

// primitiveTypes never gate emission ordering.
var primitiveTypes = map[string]struct{}{
	"bool":     {},
	"float":    {},
	"int32_t":  {},
	"uint32_t": {},
}

// DependencyGraph maps declaration names to the names they reference via
// inheritance or field types. Dangling references (names never defined) are
// kept; the emitter tolerates them.
type DependencyGraph struct {
	g graph.Graph[string, string]
}

// BuildDependencyGraph scans every class declaration in the pool and records
// its references as directed edges.
func BuildDependencyGraph(pool *Pool) (*DependencyGraph, error) {
	g := graph.New(graph.StringHash, graph.Directed())

	for name, decl := range pool.Classes {
		if err := g.AddVertex(name); err != nil && !errors.Is(err, graph.ErrVertexAlreadyExists) {
			return nil, fmt.Errorf("failed to add vertex %s: %w", name, err)
		}

		for dep := range ExtractDependencies(decl) {
			if err := g.AddVertex(dep); err != nil && !errors.Is(err, graph.ErrVertexAlreadyExists) {
				return nil, fmt.Errorf("failed to add vertex %s: %w", dep, err)
			}
			if err := g.AddEdge(name, dep); err != nil && !errors.Is(err, graph.ErrEdgeAlreadyExists) {
				return nil, fmt.Errorf("failed to add edge %s -> %s: %w", name, dep, err)
			}
		}
	}

	return &DependencyGraph{g: g}, nil
}

// Dependencies returns the dependency name set per declaration.
func (dg *DependencyGraph) Dependencies() (map[string]map[string]struct{}, error) {
	adjacency, err := dg.g.AdjacencyMap()
	if err != nil {
		return nil, fmt.Errorf("failed to read adjacency map: %w", err)
	}

	deps := make(map[string]map[string]struct{}, len(adjacency))
	for name, targets := range adjacency {
		set := make(map[string]struct{}, len(targets))
		for dep := range targets {
			set[dep] = struct{}{}
		}
		deps[name] = set
	}
	return deps, nil
}

// ExtractDependencies collects the names a declaration references: its
// parent type plus every field's base type, excluding primitives.
func ExtractDependencies(decl *Declaration) map[string]struct{} {
	deps := make(map[string]struct{})

	if decl.Parent != "" {
		deps[decl.Parent] = struct{}{}
	}

	for _, m := range fieldDeclRe.FindAllStringSubmatch(decl.Body, -1) {
		base := baseTypeName(m[2])
		if base == "" {
			continue
		}
		if _, primitive := primitiveTypes[base]; primitive {
			continue
		}
		deps[base] = struct{}{}
	}

	return deps
}

// baseTypeName reduces an output type expression to the declaration name it
// references: namespace qualifiers removed, generic wrappers unwrapped down
// to the inner argument, pointer markers stripped.
func baseTypeName(typeExpr string) string {
	name := strings.TrimSpace(typeExpr)
	name = strings.ReplaceAll(name, "RC::Unreal::", "")

	// Unwrap nested generics to the innermost argument.
	for {
		open := strings.Index(name, "<")
		if open < 0 || !strings.HasSuffix(name, ">") {
			break
		}
		name = name[open+1 : len(name)-1]
	}

	return strings.TrimRight(name, "*")
}
