package convert

import "strings"

// portableNS is the namespace prefix for portable wrapper and value types.
const portableNS = "RC::Unreal::"

// Generic wrappers recognized by the converter.
const (
	arrayWrapper    = "TArray"
	subclassWrapper = "TSubclassOf"
	byteEnumWrapper = "TEnumAsByte"
)

// Converter maps engine type tokens to portable output type expressions.
//
// Convert is total: it terminates on any input and never fails. Tokens it
// does not recognize pass through verbatim, so types the tool does not yet
// know about survive unchanged.
type Converter struct {
	mappings  map[string]string
	ignored   []string
	sanitizer *Sanitizer
}

// NewConverter creates a type converter.
func NewConverter(mappings map[string]string, ignored []string, sanitizer *Sanitizer) *Converter {
	return &Converter{
		mappings:  mappings,
		ignored:   ignored,
		sanitizer: sanitizer,
	}
}

// Convert maps a raw engine type token to an output type expression.
// The second return value is false when the field carrying this type should
// be dropped entirely (the token matched the ignore-set). That is a
// sentinel, not an error.
func (c *Converter) Convert(token string) (string, bool) {
	for _, ignored := range c.ignored {
		if strings.Contains(token, ignored) {
			return "", false
		}
	}

	token = strings.TrimPrefix(token, "class ")

	if inner, ok := unwrapGeneric(token, arrayWrapper); ok {
		converted, ok := c.Convert(inner)
		if !ok {
			return "", false
		}
		return portableNS + arrayWrapper + "<" + converted + ">", true
	}

	if inner, ok := unwrapGeneric(token, subclassWrapper); ok {
		converted, ok := c.Convert(inner)
		if !ok {
			return "", false
		}
		return portableNS + subclassWrapper + "<" + converted + ">", true
	}

	// Engine-core object-graph handles are already portable.
	for _, prefix := range c.sanitizer.corePrefixes {
		if strings.HasPrefix(token, prefix) {
			return token, true
		}
	}

	if mapped, ok := c.mappings[token]; ok {
		return mapped, true
	}

	// Pointer to a known value type.
	if base := strings.TrimRight(token, "*"); base != token {
		if mapped, ok := c.mappings[base]; ok {
			return mapped + "*", true
		}
	}

	// Byte-wrapped enums are already portable; unwrap and pass through.
	if inner, ok := unwrapGeneric(token, byteEnumWrapper); ok {
		return inner, true
	}

	if cleaned := c.sanitizer.ClassName(token); cleaned != token {
		return cleaned, true
	}

	return token, true
}

// unwrapGeneric returns the inner type argument of a one-argument generic
// wrapper, matching the outermost angle brackets.
func unwrapGeneric(token, wrapper string) (string, bool) {
	open := wrapper + "<"
	if !strings.HasPrefix(token, open) || !strings.HasSuffix(token, ">") {
		return "", false
	}
	inner := token[len(open) : len(token)-1]
	if inner == "" {
		return "", false
	}
	return inner, true
}
