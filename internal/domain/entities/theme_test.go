package entities

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTheme_Validate(t *testing.T) {
	tests := []struct {
		name    string
		theme   Theme
		wantErr bool
		errMsg  string
	}{
		{
			name: "valid theme",
			theme: Theme{
				Name:   "custom",
				Accent: "\x1b[38;5;214m",
				Dim:    "\x1b[38;5;238m",
				Glow:   "\x1b[38;5;51m",
			},
			wantErr: false,
		},
		{
			name:    "missing name",
			theme:   Theme{Accent: "a", Dim: "d", Glow: "g"},
			wantErr: true,
			errMsg:  "theme name is required",
		},
		{
			name:    "missing accent",
			theme:   Theme{Name: "x", Dim: "d", Glow: "g"},
			wantErr: true,
			errMsg:  "accent color is required",
		},
		{
			name:    "missing dim",
			theme:   Theme{Name: "x", Accent: "a", Glow: "g"},
			wantErr: true,
			errMsg:  "dim color is required",
		},
		{
			name:    "missing glow",
			theme:   Theme{Name: "x", Accent: "a", Dim: "d"},
			wantErr: true,
			errMsg:  "glow color is required",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.theme.Validate()

			if tt.wantErr {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.errMsg)
			} else {
				require.NoError(t, err)
			}
		})
	}
}

func TestBuiltinTheme(t *testing.T) {
	for _, name := range BuiltinThemeNames() {
		theme, err := BuiltinTheme(name)
		require.NoError(t, err)
		require.NoError(t, theme.Validate())
		assert.Equal(t, name, theme.Name)
		assert.True(t, theme.IsBuiltIn())
	}

	// Lookup is case-insensitive the way CLI flags arrive.
	theme, err := BuiltinTheme("NEON")
	require.NoError(t, err)
	assert.Equal(t, "neon", theme.Name)
}

func TestBuiltinTheme_Unknown(t *testing.T) {
	_, err := BuiltinTheme("nebula")
	require.Error(t, err)
	assert.Contains(t, err.Error(), `unknown theme "nebula"`)
	assert.Contains(t, err.Error(), "amber, arctic, neon")
}

func TestBuiltinThemeNames_Sorted(t *testing.T) {
	assert.Equal(t, []string{"amber", "arctic", "neon"}, BuiltinThemeNames())
}
