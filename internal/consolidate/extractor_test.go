package consolidate

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/modforge/sdkgen/internal/convert"
)

// Test Plan for the declaration extractor:
// - Classes, prefix-matching structs, and enums land in their pool buckets
// - Non-prefixed structs are not collected
// - "enum class" is never misread as a class declaration
// - Digit-leading class names are sanitized and substituted into the body
// - Unterminated blocks drop the declaration silently
// - Duplicate names across extractions overwrite (last writer wins)
// - Block extraction balances nested braces line by line

func newTestExtractor() *Extractor {
	sanitizer := convert.NewSanitizer("C", []string{"UObject", "AActor", "UActorComponent"})
	return NewExtractor(sanitizer, newTestClassifier(), "Fstruct_")
}

const sampleHeader = `#pragma once
namespace game {

enum class ECropState {
	Growing,
	Ready
};

struct Fstruct_Crop {
    FIELD(0x0000, float, GrowthTime);
};

struct FPlainStruct {
    FIELD(0x0000, bool, bFlag);
};

class Harvestable {
public:
    FIELD(0x0008, bool, bReady);
};

class Crop : public Harvestable {
public:
    FIELD(0x0010, Fstruct_Crop, Data);
};

} // namespace game
`

func TestExtractor_Extract(t *testing.T) {
	t.Parallel()

	pool := NewPool()
	newTestExtractor().Extract(sampleHeader, pool)

	require.Len(t, pool.Classes, 2)
	require.Len(t, pool.Structs, 1)
	require.Len(t, pool.Enums, 1)

	crop := pool.Classes["Crop"]
	require.NotNil(t, crop)
	assert.Equal(t, KindClass, crop.Kind)
	assert.Equal(t, "Harvestable", crop.Parent)
	assert.True(t, strings.HasPrefix(crop.Body, "class Crop : public Harvestable {"))
	assert.True(t, strings.HasSuffix(crop.Body, "};"))

	harvestable := pool.Classes["Harvestable"]
	require.NotNil(t, harvestable)
	assert.Empty(t, harvestable.Parent)
	assert.NotEmpty(t, harvestable.Category)

	assert.Contains(t, pool.Structs, "Fstruct_Crop")
	assert.NotContains(t, pool.Structs, "FPlainStruct")

	require.Contains(t, pool.Enums, "ECropState")
	assert.NotContains(t, pool.Classes, "ECropState")
}

func TestExtractor_DigitLeadingClassName(t *testing.T) {
	t.Parallel()

	content := "class 3DWidget : public Base {\npublic:\n    FIELD(0x0000, 3DWidget*, Sibling);\n};\n"
	pool := NewPool()
	newTestExtractor().Extract(content, pool)

	decl := pool.Classes["C3DWidget"]
	require.NotNil(t, decl)
	assert.Contains(t, decl.Body, "class C3DWidget")
	assert.Contains(t, decl.Body, "C3DWidget*")
	assert.NotContains(t, decl.Body, " 3DWidget")
}

func TestExtractor_UnterminatedBlockDropped(t *testing.T) {
	t.Parallel()

	content := "class Broken : public Base {\npublic:\n    FIELD(0x0000, bool, bFlag);\n"
	pool := NewPool()
	newTestExtractor().Extract(content, pool)

	assert.Empty(t, pool.Classes)
}

func TestExtractor_LastWriterWins(t *testing.T) {
	t.Parallel()

	e := newTestExtractor()
	pool := NewPool()
	e.Extract("class Dup {\npublic:\n    FIELD(0x0000, bool, bFirst);\n};\n", pool)
	e.Extract("class Dup {\npublic:\n    FIELD(0x0000, bool, bSecond);\n};\n", pool)

	require.Len(t, pool.Classes, 1)
	assert.Contains(t, pool.Classes["Dup"].Body, "bSecond")
}

func TestExtractBlock(t *testing.T) {
	t.Parallel()

	content := "class A {\npublic:\n    struct { int x; };\n};\ntrailing"
	block, ok := ExtractBlock(content, 0)
	require.True(t, ok)
	assert.Equal(t, "class A {\npublic:\n    struct { int x; };\n};", block)

	_, ok = ExtractBlock("class B {\nnever closed\n", 0)
	assert.False(t, ok)
}
