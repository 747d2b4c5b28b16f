package services

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	adapter "github.com/fredcamaral/termbeam/internal/adapters/secondary/theme"
	"github.com/fredcamaral/termbeam/internal/domain/entities"
)

func testDefaults() entities.Defaults {
	return entities.Defaults{
		FrameWidth: entities.DefaultFrameWidth,
		Accent:     "\x1b[38;5;111m",
		Dim:        "\x1b[38;5;222m",
		Glow:       "\x1b[38;5;333m",
	}
}

func writeThemeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestThemeResolver_FileWinsOverName(t *testing.T) {
	path := writeThemeFile(t, "nebula.toml", "accent = \"\\u001b[38;5;13m\"\n"+
		"dim = \"\\u001b[38;5;8m\"\n"+
		"glow = \"\\u001b[38;5;14m\"\n")

	r := NewThemeResolver(adapter.NewFileLoader())
	theme, err := r.Resolve(path, "amber", testDefaults())
	require.NoError(t, err)

	// The file wins even though a built-in name was also given, and
	// its name derives from the file stem.
	assert.Equal(t, "nebula", theme.Name)
	assert.Equal(t, "\x1b[38;5;13m", theme.Accent)
}

func TestThemeResolver_NamedBuiltin(t *testing.T) {
	r := NewThemeResolver(adapter.NewFileLoader())

	theme, err := r.Resolve("", "amber", testDefaults())
	require.NoError(t, err)
	assert.Equal(t, "amber", theme.Name)
	assert.Equal(t, "\x1b[38;5;178m", theme.Accent)
}

func TestThemeResolver_UnknownNameFatal(t *testing.T) {
	r := NewThemeResolver(adapter.NewFileLoader())

	_, err := r.Resolve("", "molten", testDefaults())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown theme")
	assert.Contains(t, err.Error(), "amber, arctic, neon")
}

func TestThemeResolver_EnvironmentDefaults(t *testing.T) {
	r := NewThemeResolver(adapter.NewFileLoader())

	theme, err := r.Resolve("", "", testDefaults())
	require.NoError(t, err)
	assert.Equal(t, "default", theme.Name)
	assert.Equal(t, "\x1b[38;5;111m", theme.Accent)
	assert.Equal(t, "\x1b[38;5;222m", theme.Dim)
	assert.Equal(t, "\x1b[38;5;333m", theme.Glow)
}

func TestThemeResolver_EnvironmentThemeName(t *testing.T) {
	r := NewThemeResolver(adapter.NewFileLoader())
	defaults := testDefaults()
	defaults.ThemeName = "arctic"

	theme, err := r.Resolve("", "", defaults)
	require.NoError(t, err)
	assert.Equal(t, "arctic", theme.Name)
}

func TestThemeResolver_UnrecognizedEnvironmentNameFallsBack(t *testing.T) {
	r := NewThemeResolver(adapter.NewFileLoader())
	defaults := testDefaults()
	defaults.ThemeName = "no-such-theme"

	theme, err := r.Resolve("", "", defaults)
	require.NoError(t, err)
	assert.Equal(t, "default", theme.Name)
}

func TestThemeResolver_BrokenFileFatal(t *testing.T) {
	path := writeThemeFile(t, "broken.toml", "accent = \"a\"\n")

	r := NewThemeResolver(adapter.NewFileLoader())
	_, err := r.Resolve(path, "", testDefaults())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "missing required key")
}
