package discovery

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Test Plan for file discovery:
// - Root-level and nested files with the extension are found
// - Other extensions are ignored
// - Files named after engine modules are reported as skipped
// - Generated enum headers (_enums suffix) are reported as skipped
// - Struct definition files are excluded silently when the option is set
// - Matches accepts paths inside the root with the extension

var testEngineModules = []string{"Engine", "Slate", "Niagara"}

func writeFiles(t *testing.T, root string, names ...string) {
	t.Helper()
	for _, name := range names {
		path := filepath.Join(root, filepath.FromSlash(name))
		require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
		require.NoError(t, os.WriteFile(path, []byte("x"), 0o644))
	}
}

func TestDiscovery_Discover(t *testing.T) {
	t.Parallel()
	root := t.TempDir()
	writeFiles(t, root,
		"door.hpp",
		"props/crate.hpp",
		"notes.txt",
		"EngineTypes.hpp",
		"game_enums.hpp",
	)

	d, err := New(root, ".hpp", testEngineModules)
	require.NoError(t, err)

	files, skipped, err := d.Discover()
	require.NoError(t, err)

	assert.ElementsMatch(t, []string{
		filepath.Join(root, "door.hpp"),
		filepath.Join(root, "props", "crate.hpp"),
	}, files)
	assert.ElementsMatch(t, []string{
		filepath.Join(root, "EngineTypes.hpp"),
		filepath.Join(root, "game_enums.hpp"),
	}, skipped)
}

func TestDiscovery_StructFilesSkippedSilently(t *testing.T) {
	t.Parallel()
	root := t.TempDir()
	writeFiles(t, root, "door.hpp", "struct_fvector.hpp")

	d, err := New(root, ".hpp", testEngineModules, WithStructFilesSkipped("struct_"))
	require.NoError(t, err)

	files, skipped, err := d.Discover()
	require.NoError(t, err)

	assert.Equal(t, []string{filepath.Join(root, "door.hpp")}, files)
	assert.Empty(t, skipped)
}

func TestDiscovery_ShouldSkip(t *testing.T) {
	t.Parallel()

	d, err := New(t.TempDir(), ".hpp", testEngineModules)
	require.NoError(t, err)

	assert.True(t, d.ShouldSkip("NiagaraSystem.hpp"))
	assert.True(t, d.ShouldSkip("weapon_enums.hpp"))
	assert.False(t, d.ShouldSkip("door.hpp"))
	assert.False(t, d.ShouldSkip("enums_first.hpp"))
}

func TestDiscovery_Matches(t *testing.T) {
	t.Parallel()
	root := t.TempDir()

	d, err := New(root, ".hpp", testEngineModules)
	require.NoError(t, err)

	assert.True(t, d.Matches(filepath.Join(root, "door.hpp")))
	assert.True(t, d.Matches(filepath.Join(root, "props", "crate.hpp")))
	assert.False(t, d.Matches(filepath.Join(root, "notes.txt")))
}

func TestDiscovery_MissingRoot(t *testing.T) {
	t.Parallel()

	d, err := New(filepath.Join(t.TempDir(), "nope"), ".hpp", nil)
	require.NoError(t, err)

	_, _, err = d.Discover()
	assert.Error(t, err)
}
