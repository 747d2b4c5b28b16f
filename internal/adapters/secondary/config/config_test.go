package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fredcamaral/termbeam/internal/domain/entities"
)

func mapLookup(env map[string]string) LookupFunc {
	return func(key string) (string, bool) {
		value, ok := env[key]
		return value, ok
	}
}

func TestCompiledDefaults(t *testing.T) {
	defaults := CompiledDefaults()

	require.NoError(t, defaults.Validate())
	assert.Equal(t, entities.DefaultFrameWidth, defaults.FrameWidth)
	assert.Equal(t, "presentations/banner.txt", defaults.BannerPath)
	assert.Empty(t, defaults.ThemeName, "no theme name forced by default")

	neon, err := entities.BuiltinTheme("neon")
	require.NoError(t, err)
	assert.Equal(t, neon.Accent, defaults.Accent)
}

func TestFromEnvironment(t *testing.T) {
	base := CompiledDefaults()

	resolved := FromEnvironment(base, mapLookup(map[string]string{
		EnvFrameWidth: "80",
		EnvAccent:     "\x1b[38;5;99m",
		EnvTitle:      "deep dive",
		EnvTheme:      "arctic",
	}))

	assert.Equal(t, 80, resolved.FrameWidth)
	assert.Equal(t, "\x1b[38;5;99m", resolved.Accent)
	assert.Equal(t, "deep dive", resolved.Title)
	assert.Equal(t, "arctic", resolved.ThemeName)

	// Unset variables keep the base values.
	assert.Equal(t, base.Dim, resolved.Dim)
	assert.Equal(t, base.BannerPath, resolved.BannerPath)
}

func TestFromEnvironment_UnparsableWidthIgnored(t *testing.T) {
	base := CompiledDefaults()

	resolved := FromEnvironment(base, mapLookup(map[string]string{
		EnvFrameWidth: "wide",
	}))

	assert.Equal(t, base.FrameWidth, resolved.FrameWidth)
}

func TestMerger_LaterLayersWin(t *testing.T) {
	base := CompiledDefaults()
	global := &entities.Defaults{FrameWidth: 100, Title: "from file"}

	merged, err := NewMerger().Merge(base, global)
	require.NoError(t, err)

	assert.Equal(t, 100, merged.FrameWidth)
	assert.Equal(t, "from file", merged.Title)
	assert.Equal(t, base.Accent, merged.Accent, "zero fields do not overwrite")
}

func TestMerger_NilLayersSkipped(t *testing.T) {
	base := CompiledDefaults()

	merged, err := NewMerger().Merge(base, nil, nil)
	require.NoError(t, err)
	assert.Equal(t, base, merged)
}

func TestMerger_RejectsOutOfRangeWidth(t *testing.T) {
	_, err := NewMerger().Merge(CompiledDefaults(), &entities.Defaults{FrameWidth: 10})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "out of range")
}

func TestTOMLLoader_MissingGlobalIsNotAnError(t *testing.T) {
	loader := &TOMLLoader{globalPath: filepath.Join(t.TempDir(), "config.toml")}

	defaults, err := loader.LoadGlobal()
	require.NoError(t, err)
	assert.Nil(t, defaults)
}

func TestTOMLLoader_LoadGlobal(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	content := "frame_width = 96\ntitle = \"weekly sync\"\ntheme = \"amber\"\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	loader := &TOMLLoader{globalPath: path}
	defaults, err := loader.LoadGlobal()
	require.NoError(t, err)
	require.NotNil(t, defaults)

	assert.Equal(t, 96, defaults.FrameWidth)
	assert.Equal(t, "weekly sync", defaults.Title)
	assert.Equal(t, "amber", defaults.ThemeName)
}

func TestTOMLLoader_MalformedGlobalFatal(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte("frame_width = = 1"), 0o600))

	loader := &TOMLLoader{globalPath: path}
	_, err := loader.LoadGlobal()
	require.Error(t, err)
	assert.Contains(t, err.Error(), path)
}

func TestResolve_PrecedenceEnvOverGlobalOverCompiled(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	content := "frame_width = 100\ntitle = \"from file\"\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	loader := &TOMLLoader{globalPath: path}
	resolved, err := Resolve(loader, mapLookup(map[string]string{
		EnvTitle: "from env",
	}))
	require.NoError(t, err)

	assert.Equal(t, "from env", resolved.Title, "environment beats the global file")
	assert.Equal(t, 100, resolved.FrameWidth, "global file beats compiled defaults")
	assert.Equal(t, CompiledDefaults().Accent, resolved.Accent)
}
