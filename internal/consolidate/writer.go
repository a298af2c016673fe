package consolidate

import (
	"sort"
	"strings"

	"github.com/modforge/sdkgen/internal/config"
)

// coreIncludes is the fixed preamble of portable includes in the umbrella.
var coreIncludes = []string{
	"#include <Unreal/UObject.hpp>",
	"#include <Unreal/AActor.hpp>",
	"#include <Unreal/TArray.hpp>",
	"#include <Unreal/FString.hpp>",
	`#include "StructUtil.hpp"`,
}

// Writer renders output groups into named header blobs.
type Writer struct {
	cfg *config.Config
}

// NewWriter creates a writer for the configured naming scheme.
func NewWriter(cfg *config.Config) *Writer {
	return &Writer{cfg: cfg}
}

// RenderAll renders the umbrella file plus one file per non-empty group,
// returning file name to content.
func (w *Writer) RenderAll(groups Groups) map[string]string {
	files := make(map[string]string, len(groups)+1)

	files[w.cfg.Naming.Umbrella+w.cfg.Input.Extension] = w.renderUmbrella(groups)

	for group, bodies := range groups {
		if len(bodies) == 0 {
			continue
		}
		files[w.groupFileName(group)] = w.renderGroup(bodies)
	}

	return files
}

// renderUmbrella lists the fixed core includes plus one include per
// non-empty category group, alphabetically, excluding Enums and Structs.
func (w *Writer) renderUmbrella(groups Groups) string {
	var sb strings.Builder

	sb.WriteString("#pragma once\n\n")
	sb.WriteString("// Core includes\n")
	for _, include := range coreIncludes {
		sb.WriteString(include)
		sb.WriteString("\n")
	}
	sb.WriteString("\n")

	sb.WriteString("// Category modules\n")
	categories := make([]string, 0, len(groups))
	for group, bodies := range groups {
		if group == GroupEnums || group == GroupStructs || len(bodies) == 0 {
			continue
		}
		categories = append(categories, group)
	}
	sort.Strings(categories)

	for _, category := range categories {
		sb.WriteString(`#include "`)
		sb.WriteString(w.groupFileName(category))
		sb.WriteString("\"\n")
	}

	return sb.String()
}

// renderGroup wraps the group's declarations in the namespace block and
// includes the umbrella file.
func (w *Writer) renderGroup(bodies []string) string {
	var sb strings.Builder

	sb.WriteString("#pragma once\n")
	sb.WriteString(`#include "`)
	sb.WriteString(w.cfg.Naming.Umbrella)
	sb.WriteString(w.cfg.Input.Extension)
	sb.WriteString("\"\n\n")
	sb.WriteString("namespace ")
	sb.WriteString(w.cfg.Naming.Namespace)
	sb.WriteString(" {\n\n")

	for _, body := range bodies {
		sb.WriteString(body)
		sb.WriteString("\n\n")
	}

	sb.WriteString("} // namespace ")
	sb.WriteString(w.cfg.Naming.Namespace)
	sb.WriteString("\n")

	return sb.String()
}

func (w *Writer) groupFileName(group string) string {
	return w.cfg.Naming.FilePrefix + group + w.cfg.Input.Extension
}
