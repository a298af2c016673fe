package consolidate

import (
	"regexp"
	"strings"

	"github.com/modforge/sdkgen/internal/convert"
)

// Declaration patterns over converted header content. Anchored to line
// starts so "enum class X" is never picked up as a class declaration.
var (
	classDeclRe  = regexp.MustCompile(`(?m)^class\s+(\w+)(?:\s*:\s*public\s+(\w+))?`)
	structDeclRe = regexp.MustCompile(`(?m)^struct\s+(\w+)`)
	enumDeclRe   = regexp.MustCompile(`(?m)^enum\s+(?:class\s+)?(\w+)`)
)

// Extractor collects declarations from converted header content into a pool.
type Extractor struct {
	sanitizer       *convert.Sanitizer
	classifier      *Classifier
	structRefPrefix string
}

// NewExtractor creates a declaration extractor.
func NewExtractor(sanitizer *convert.Sanitizer, classifier *Classifier, structRefPrefix string) *Extractor {
	return &Extractor{
		sanitizer:       sanitizer,
		classifier:      classifier,
		structRefPrefix: structRefPrefix,
	}
}

// Extract scans content for class, struct, and enum declarations and adds
// them to the pool. Duplicate names overwrite earlier entries.
func (e *Extractor) Extract(content string, pool *Pool) {
	for _, m := range classDeclRe.FindAllStringSubmatchIndex(content, -1) {
		rawName := content[m[2]:m[3]]
		name := e.sanitizer.Identifier(rawName)

		block, ok := ExtractBlock(content, m[0])
		if !ok {
			continue
		}
		if name != rawName {
			block = strings.ReplaceAll(block, rawName, name)
		}

		parent := ""
		if m[4] >= 0 {
			parent = content[m[4]:m[5]]
		}

		pool.Classes[name] = &Declaration{
			Kind:     KindClass,
			Name:     name,
			Parent:   parent,
			Body:     block,
			Category: e.classifier.Categorize(block),
		}
	}

	for _, m := range structDeclRe.FindAllStringSubmatchIndex(content, -1) {
		name := content[m[2]:m[3]]
		if !strings.HasPrefix(name, e.structRefPrefix) {
			continue
		}

		block, ok := ExtractBlock(content, m[0])
		if !ok {
			continue
		}

		pool.Structs[name] = &Declaration{
			Kind: KindStruct,
			Name: name,
			Body: block,
		}
	}

	for _, m := range enumDeclRe.FindAllStringSubmatchIndex(content, -1) {
		name := content[m[2]:m[3]]

		block, ok := ExtractBlock(content, m[0])
		if !ok {
			continue
		}

		pool.Enums[name] = &Declaration{
			Kind: KindEnum,
			Name: name,
			Body: block,
		}
	}
}

// ExtractBlock extracts the complete brace-delimited block starting at the
// declaration position, scanning line by line with a brace-depth counter.
// The block begins at the first line containing an opening brace and ends on
// the line where the depth returns to zero. Unterminated blocks report false;
// truncated input drops the declaration rather than failing.
func ExtractBlock(content string, start int) (string, bool) {
	depth := 0
	foundStart := false
	var blockLines []string

	for _, line := range strings.Split(content[start:], "\n") {
		if strings.Contains(line, "{") {
			foundStart = true
			depth += strings.Count(line, "{")
		}
		if strings.Contains(line, "}") {
			depth -= strings.Count(line, "}")
		}

		if foundStart {
			blockLines = append(blockLines, line)
		}

		if foundStart && depth == 0 {
			return strings.Join(blockLines, "\n"), true
		}
	}

	return "", false
}
