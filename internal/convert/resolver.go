package convert

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/maypok86/otter"
)

// structCacheCapacity bounds the resolved-struct cache. Dumps reference the
// same handful of structs from many files, so hits dominate.
const structCacheCapacity = 512

// StructResolver locates and parses sibling files holding struct
// definitions referenced by name from other dump files.
type StructResolver struct {
	inputDir  string
	extension string
	converter *Converter
	cache     otter.Cache[string, []string]
}

// NewStructResolver creates a resolver rooted at the dump input directory.
func NewStructResolver(inputDir, extension string, converter *Converter) (*StructResolver, error) {
	cache, err := otter.MustBuilder[string, []string](structCacheCapacity).Build()
	if err != nil {
		return nil, fmt.Errorf("failed to build struct cache: %w", err)
	}

	return &StructResolver{
		inputDir:  inputDir,
		extension: extension,
		converter: converter,
		cache:     cache,
	}, nil
}

// Resolve returns the synthesized struct block for the named struct, one
// line per element, or nil when no definition can be found. A missing
// sibling file or a file without a matching opening line is not an error;
// the reference is simply left unresolved.
func (r *StructResolver) Resolve(structName string) []string {
	if lines, ok := r.cache.Get(structName); ok {
		return lines
	}

	lines := r.parseSiblingFile(structName)
	r.cache.Set(structName, lines)
	return lines
}

// Invalidate drops every cached definition so the next Resolve re-reads the
// sibling file. Callers that rerun over a live input directory must call this
// between runs, or edits to struct files go unseen.
func (r *StructResolver) Invalidate() {
	r.cache.Clear()
}

// Close releases cache resources.
func (r *StructResolver) Close() {
	r.cache.Close()
}

// parseSiblingFile scans <inputDir>/<structname lowercased><ext> for the
// struct's definition and converts its field lines.
func (r *StructResolver) parseSiblingFile(structName string) []string {
	path := filepath.Join(r.inputDir, strings.ToLower(structName)+r.extension)

	data, err := os.ReadFile(path)
	if err != nil {
		if !os.IsNotExist(err) {
			log.Printf("Warning: failed to read struct file %s: %v", path, err)
		}
		return nil
	}

	var block []string
	inStruct := false

	for _, raw := range strings.Split(string(data), "\n") {
		if !inStruct {
			if strings.Contains(raw, "struct "+structName) {
				block = append(block, "struct "+structName+" {")
				inStruct = true
			}
			continue
		}

		if strings.Contains(raw, "};") {
			block = append(block, "};", "")
			return block
		}

		if strings.Contains(raw, "//") && strings.Contains(raw, "0x") {
			if field, ok := r.converter.ExtractField(raw); ok {
				block = append(block, field.Render())
			}
		}
	}

	// Opening line never found, or the block was unterminated.
	return nil
}
