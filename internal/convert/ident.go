package convert

import (
	"regexp"
	"strings"
)

var (
	guidSuffixRe    = regexp.MustCompile(`_\d+_[A-F0-9]{32}$`)
	numericSuffixRe = regexp.MustCompile(`_\d+$`)
)

// Sanitizer cleans identifiers so they are valid in the generated output.
type Sanitizer struct {
	digitPrefix  string
	corePrefixes []string
}

// NewSanitizer creates a sanitizer with the given digit prefix letter and
// engine-core name prefixes that must pass through untouched.
func NewSanitizer(digitPrefix string, corePrefixes []string) *Sanitizer {
	return &Sanitizer{
		digitPrefix:  digitPrefix,
		corePrefixes: corePrefixes,
	}
}

// Identifier fixes identifiers that are invalid in the target language.
// Names starting with a digit get the configured letter prefix.
func (s *Sanitizer) Identifier(name string) string {
	if name == "" {
		return name
	}
	if name[0] >= '0' && name[0] <= '9' {
		return s.digitPrefix + name
	}
	return name
}

// ClassName cleans up class names while preserving engine-core types.
// Game-generated names following the A...._C / U...._C convention lose the
// leading letter and the trailing "_C".
func (s *Sanitizer) ClassName(name string) string {
	if name == "" {
		return name
	}

	for _, prefix := range s.corePrefixes {
		if strings.HasPrefix(name, prefix) {
			return name
		}
	}

	name = s.Identifier(name)

	if len(name) > 3 && strings.HasSuffix(name, "_C") {
		if name[0] == 'A' || name[0] == 'U' {
			name = name[1 : len(name)-2]
		}
	}

	return name
}

// CleanFieldName strips the dump's variable name suffixes: first a trailing
// _<n>_<32-hex-GUID>, then a trailing numeric disambiguation suffix _<n>.
func CleanFieldName(name string) string {
	name = guidSuffixRe.ReplaceAllString(name, "")
	name = numericSuffixRe.ReplaceAllString(name, "")
	return name
}
