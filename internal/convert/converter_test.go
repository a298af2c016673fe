package convert

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/modforge/sdkgen/internal/config"
)

// Test Plan for the per-file converter:
// - Output starts with the include preamble and namespace opener
// - Classes are opened with cleaned names and parents, and closed
// - A new class closes the previous one
// - Field lines are converted; ignored types vanish
// - Referenced structs are resolved from sibling files ahead of classes
// - Output ends with the namespace closer

func newTestFileConverter(t *testing.T, inputDir string) *FileConverter {
	t.Helper()
	fc, err := NewFileConverter(config.Default(), inputDir)
	require.NoError(t, err)
	t.Cleanup(fc.Close)
	return fc
}

func TestFileConverter_ConvertContent(t *testing.T) {
	t.Parallel()
	tmpDir := t.TempDir()

	require.NoError(t, os.WriteFile(filepath.Join(tmpDir, "fstruct_crop.hpp"),
		[]byte("struct Fstruct_Crop\n{\n\tfloat GrowthTime; // 0x0000\n};\n"), 0o644))

	content := strings.Join([]string{
		"class ACropPlot_C : public AActor",
		"{",
		"	struct Fstruct_Crop CurrentCrop; // 0x0260",
		"	TArray<UObject*> Seeds_3; // 0x0268",
		"	FGuid PlotId; // 0x0270",
		"	bool bWatered; // 0x0278",
		"};",
		"class AWell_C : public AActor",
		"{",
		"	float WaterLevel; // 0x0098",
		"};",
	}, "\n")

	fc := newTestFileConverter(t, tmpDir)
	out := fc.ConvertContent(content)

	// Preamble and namespace wrapping.
	assert.True(t, strings.HasPrefix(out, "#pragma once\n"))
	assert.Contains(t, out, "#include <Unreal/UObject.hpp>")
	assert.Contains(t, out, `#include "StructUtil.hpp"`)
	assert.Contains(t, out, "namespace game {")
	assert.True(t, strings.HasSuffix(out, "} // namespace game\n"))

	// Resolved struct precedes the classes that use it.
	structIdx := strings.Index(out, "struct Fstruct_Crop {")
	classIdx := strings.Index(out, "class CropPlot : public AActor {")
	require.GreaterOrEqual(t, structIdx, 0)
	require.GreaterOrEqual(t, classIdx, 0)
	assert.Less(t, structIdx, classIdx)

	// Converted fields.
	assert.Contains(t, out, "    FIELD(0x0000, float, GrowthTime);")
	assert.Contains(t, out, "    FIELD(0x0268, RC::Unreal::TArray<UObject*>, Seeds);")
	assert.Contains(t, out, "    FIELD(0x0278, bool, bWatered);")

	// Ignored type dropped entirely.
	assert.NotContains(t, out, "PlotId")

	// Second class opened after the first was closed. One closer per class
	// plus one for the synthesized struct.
	assert.Contains(t, out, "class Well : public AActor {\npublic:\n    FIELD(0x0098, float, WaterLevel);")
	assert.Equal(t, 3, strings.Count(out, "};\n\n"))
}

func TestFileConverter_NoClasses(t *testing.T) {
	t.Parallel()

	fc := newTestFileConverter(t, t.TempDir())
	out := fc.ConvertContent("// just a comment\n")

	assert.True(t, strings.HasPrefix(out, "#pragma once\n"))
	assert.True(t, strings.HasSuffix(out, "} // namespace game\n"))
	assert.NotContains(t, out, "class ")
}
