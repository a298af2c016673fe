package convert

import (
	"regexp"
	"sort"
	"strings"

	"github.com/modforge/sdkgen/internal/config"
)

// FileConverter rewrites one dump file into a portable header blob.
type FileConverter struct {
	cfg       *config.Config
	sanitizer *Sanitizer
	converter *Converter
	resolver  *StructResolver
	structRef *regexp.Regexp
}

// NewFileConverter creates a converter for dump files under inputDir.
func NewFileConverter(cfg *config.Config, inputDir string) (*FileConverter, error) {
	sanitizer := NewSanitizer(cfg.Naming.DigitPrefix, cfg.Types.CorePrefixes)
	converter := NewConverter(cfg.Types.Mappings, cfg.Types.Ignored, sanitizer)

	resolver, err := NewStructResolver(inputDir, cfg.Input.Extension, converter)
	if err != nil {
		return nil, err
	}

	return &FileConverter{
		cfg:       cfg,
		sanitizer: sanitizer,
		converter: converter,
		resolver:  resolver,
		structRef: regexp.MustCompile(`struct\s+(` + regexp.QuoteMeta(cfg.Input.StructRefPrefix) + `\w+)`),
	}, nil
}

// Converter exposes the underlying type converter.
func (fc *FileConverter) Converter() *Converter {
	return fc.converter
}

// Invalidate drops cached struct definitions.
func (fc *FileConverter) Invalidate() {
	fc.resolver.Invalidate()
}

// Close releases resolver resources.
func (fc *FileConverter) Close() {
	fc.resolver.Close()
}

// ConvertContent transforms the content of one dump file into the portable
// header format: include preamble, resolved struct definitions, then every
// class with its converted fields, all wrapped in the output namespace.
func (fc *FileConverter) ConvertContent(content string) string {
	var sb strings.Builder

	fc.writePreamble(&sb)

	// First pass: struct references resolved from sibling files, emitted
	// ahead of the classes that use them.
	for _, name := range fc.collectStructRefs(content) {
		block := fc.resolver.Resolve(name)
		for _, line := range block {
			sb.WriteString(line)
			sb.WriteString("\n")
		}
	}

	// Second pass: classes and their fields.
	openClass := false
	for _, raw := range strings.Split(content, "\n") {
		line := Classify(raw)

		switch line.Kind {
		case LineClassOpen:
			if openClass {
				sb.WriteString("};\n\n")
			}
			sb.WriteString("class ")
			sb.WriteString(fc.sanitizer.ClassName(line.Name))
			if line.Parent != "" {
				sb.WriteString(" : public ")
				sb.WriteString(fc.sanitizer.ClassName(line.Parent))
			}
			sb.WriteString(" {\npublic:\n")
			openClass = true

		case LineField:
			if field, ok := fc.converter.ConvertField(line.Field); ok {
				sb.WriteString(field.Render())
				sb.WriteString("\n")
			}
		}
	}

	if openClass {
		sb.WriteString("};\n\n")
	}

	sb.WriteString("} // namespace ")
	sb.WriteString(fc.cfg.Naming.Namespace)
	sb.WriteString("\n")

	return sb.String()
}

// collectStructRefs finds every struct reference following the configured
// naming convention, sorted for deterministic output.
func (fc *FileConverter) collectStructRefs(content string) []string {
	seen := make(map[string]bool)
	for _, m := range fc.structRef.FindAllStringSubmatch(content, -1) {
		seen[m[1]] = true
	}

	names := make([]string, 0, len(seen))
	for name := range seen {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func (fc *FileConverter) writePreamble(sb *strings.Builder) {
	sb.WriteString("#pragma once\n")
	for _, include := range coreIncludes {
		sb.WriteString(include)
		sb.WriteString("\n")
	}
	sb.WriteString("\n")
	sb.WriteString("namespace ")
	sb.WriteString(fc.cfg.Naming.Namespace)
	sb.WriteString(" {\n\n")
}

// coreIncludes is the fixed preamble of portable includes every generated
// header needs.
var coreIncludes = []string{
	"#include <Unreal/UObject.hpp>",
	"#include <Unreal/AActor.hpp>",
	"#include <Unreal/TArray.hpp>",
	"#include <Unreal/FString.hpp>",
	`#include "StructUtil.hpp"`,
}
