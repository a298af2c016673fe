package consolidate

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/modforge/sdkgen/internal/config"
)

// Test Plan for the consolidator:
// - A full run over converted headers writes the umbrella plus one file
//   per non-empty group
// - Declarations are merged across input files and ordered by dependency
// - Files named after engine modules are skipped at discovery
// - Files whose content mentions an engine module are skipped after reading
// - Context cancellation stops the run

const doorHeader = `#pragma once
namespace game {

enum class EDoorState {
	Open,
	Closed
};

class Door {
public:
    FIELD(0x0098, bool, bOpen);
};

} // namespace game
`

const hingeHeader = `#pragma once
namespace game {

class Hinge : public Door {
public:
    FIELD(0x00A0, float, Torque);
};

} // namespace game
`

func TestConsolidator_Run(t *testing.T) {
	t.Parallel()
	inputDir := t.TempDir()
	outputDir := filepath.Join(t.TempDir(), "out")

	require.NoError(t, os.WriteFile(filepath.Join(inputDir, "door.hpp"), []byte(doorHeader), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(inputDir, "hinge.hpp"), []byte(hingeHeader), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(inputDir, "SlateThing.hpp"),
		[]byte("class SThing {\n};\n"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(inputDir, "leftover.hpp"),
		[]byte("class NiagaraEmitterHolder {\n};\n"), 0o644))

	c := New(config.Default(), inputDir, outputDir)
	stats, err := c.Run(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 2, stats.FilesProcessed)
	assert.Equal(t, 2, stats.FilesSkipped)
	assert.Equal(t, 3, stats.Declarations)
	assert.Equal(t, 3, stats.GroupsWritten)

	assert.FileExists(t, filepath.Join(outputDir, "GameIncludes.hpp"))
	assert.FileExists(t, filepath.Join(outputDir, "GameEnums.hpp"))

	data, err := os.ReadFile(filepath.Join(outputDir, "GameGame.hpp"))
	require.NoError(t, err)
	content := string(data)

	doorIdx := strings.Index(content, "class Door")
	hingeIdx := strings.Index(content, "class Hinge : public Door")
	require.GreaterOrEqual(t, doorIdx, 0)
	require.GreaterOrEqual(t, hingeIdx, 0)
	assert.Less(t, doorIdx, hingeIdx, "dependency must precede dependent")

	enums, err := os.ReadFile(filepath.Join(outputDir, "GameEnums.hpp"))
	require.NoError(t, err)
	assert.Contains(t, string(enums), "enum class EDoorState")
}

func TestConsolidator_ContextCancelled(t *testing.T) {
	t.Parallel()
	inputDir := t.TempDir()

	require.NoError(t, os.WriteFile(filepath.Join(inputDir, "door.hpp"), []byte(doorHeader), 0o644))

	c := New(config.Default(), inputDir, t.TempDir())
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := c.Run(ctx)
	assert.ErrorIs(t, err, context.Canceled)
}
