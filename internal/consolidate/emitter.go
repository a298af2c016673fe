package consolidate

import "sort"

// schedulerState drives the emission fixed-point loop.
type schedulerState int

const (
	stateScheduling schedulerState = iota
	stateDeadlocked
	stateDone
)

// Emit orders all pooled declarations into output groups.
//
// Enums and structs are not subject to graph ordering; they land in their
// fixed groups in lexical name order. Classes are scheduled by a fixed-point
// loop: each pass emits every pending class whose dependencies (among the
// declarations being emitted) have already been processed. A pass that emits
// nothing means the remainder is cyclic or dangling; it is flushed at once in
// lexical order, each declaration into its own category. Every declaration is
// emitted exactly once and the loop terminates in at most N+1 passes.
func Emit(pool *Pool, dg *DependencyGraph) (Groups, error) {
	groups := make(Groups)

	processed := make(map[string]struct{})

	for _, name := range sortedKeys(pool.Enums) {
		groups[GroupEnums] = append(groups[GroupEnums], pool.Enums[name].Body)
		processed[name] = struct{}{}
		delete(pool.Enums, name)
	}

	for _, name := range sortedKeys(pool.Structs) {
		groups[GroupStructs] = append(groups[GroupStructs], pool.Structs[name].Body)
		processed[name] = struct{}{}
		delete(pool.Structs, name)
	}

	allDeps, err := dg.Dependencies()
	if err != nil {
		return nil, err
	}

	// Only declarations actually being emitted gate the ordering; dangling
	// references can never be satisfied and must not stall the loop.
	defined := pool.DefinedNames()
	for name := range processed {
		defined[name] = struct{}{}
	}

	state := stateScheduling
	for state != stateDone {
		switch state {
		case stateScheduling:
			emitted := 0
			for _, name := range sortedKeys(pool.Classes) {
				if !depsSatisfied(allDeps[name], defined, processed, name) {
					continue
				}
				decl := pool.Classes[name]
				groups[decl.Category] = append(groups[decl.Category], decl.Body)
				processed[name] = struct{}{}
				delete(pool.Classes, name)
				emitted++
			}

			if len(pool.Classes) == 0 {
				state = stateDone
			} else if emitted == 0 {
				state = stateDeadlocked
			}

		case stateDeadlocked:
			for _, name := range sortedKeys(pool.Classes) {
				decl := pool.Classes[name]
				groups[decl.Category] = append(groups[decl.Category], decl.Body)
				processed[name] = struct{}{}
				delete(pool.Classes, name)
			}
			state = stateDone
		}
	}

	return groups, nil
}

// depsSatisfied reports whether every dependency that gates ordering is
// already processed. Dependencies outside the defined set are dangling and
// ignored; a self-reference is a degenerate cycle and blocks until the
// deadlock flush.
func depsSatisfied(deps map[string]struct{}, defined, processed map[string]struct{}, self string) bool {
	for dep := range deps {
		if dep == self {
			return false
		}
		if _, ok := defined[dep]; !ok {
			continue
		}
		if _, ok := processed[dep]; !ok {
			return false
		}
	}
	return true
}

func sortedKeys(m map[string]*Declaration) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
