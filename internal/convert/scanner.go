package convert

import (
	"regexp"
	"strings"
)

// Line grammar for the dump format. One declaration or field per line; the
// classifier never fails, unmatched lines are tagged LineOther.
var (
	fieldLineRe  = regexp.MustCompile(`^\s*([\w<>*:]+(?:\s*[*&])?)\s+(\w+);?\s*//\s*(0x[0-9A-Fa-f]+)`)
	classOpenRe  = regexp.MustCompile(`^class\s+(\w+)\s*:`)
	classParent  = regexp.MustCompile(`:\s*(?:public\s+)?(\w+)`)
	structOpenRe = regexp.MustCompile(`^\s*struct\s+(\w+)`)
	enumOpenRe   = regexp.MustCompile(`^\s*enum\s+(?:class\s+)?(\w+)`)
)

// Classify tags a single raw input line.
func Classify(raw string) Line {
	if m := classOpenRe.FindStringSubmatch(raw); m != nil {
		line := Line{Kind: LineClassOpen, Name: m[1]}
		if pm := classParent.FindStringSubmatch(raw); pm != nil {
			line.Parent = pm[1]
		}
		return line
	}

	if m := structOpenRe.FindStringSubmatch(raw); m != nil {
		return Line{Kind: LineStructOpen, Name: m[1]}
	}

	if m := enumOpenRe.FindStringSubmatch(raw); m != nil {
		return Line{Kind: LineEnumOpen, Name: m[1]}
	}

	// Field candidates carry an offset comment; anything else is noise.
	if strings.Contains(raw, "//") && strings.Contains(raw, "0x") {
		if m := fieldLineRe.FindStringSubmatch(raw); m != nil {
			return Line{
				Kind: LineField,
				Field: RawField{
					RawType: strings.TrimSpace(m[1]),
					RawName: m[2],
					Offset:  m[3],
				},
			}
		}
	}

	if strings.Contains(raw, "};") {
		return Line{Kind: LineClose}
	}

	return Line{Kind: LineOther}
}
