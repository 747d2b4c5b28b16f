package entities

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

// Theme represents a resolved color theme for terminal rendering.
// The three color fields hold raw ANSI escape sequences and are all
// mandatory once a theme is resolved.
type Theme struct {
	// Name is the theme identifier shown in the session header
	Name string `toml:"name" json:"name"`

	// Accent colors headings and emphasized content
	Accent string `toml:"accent" json:"accent"`

	// Dim colors borders, list items, and secondary chrome
	Dim string `toml:"dim" json:"dim"`

	// Glow colors quotes and highlighted content
	Glow string `toml:"glow" json:"glow"`
}

// Validate ensures the theme has all required fields
func (t *Theme) Validate() error {
	if t.Name == "" {
		return errors.New("theme name is required")
	}

	if t.Accent == "" {
		return errors.New("theme accent color is required")
	}

	if t.Dim == "" {
		return errors.New("theme dim color is required")
	}

	if t.Glow == "" {
		return errors.New("theme glow color is required")
	}

	return nil
}

// DefaultThemeName is the built-in theme used when nothing else is configured.
const DefaultThemeName = "neon"

// builtinThemes is the compiled-in theme catalog.
var builtinThemes = map[string]Theme{
	"neon": {
		Name:   "neon",
		Accent: "\x1b[38;5;214m",
		Dim:    "\x1b[38;5;238m",
		Glow:   "\x1b[38;5;51m",
	},
	"amber": {
		Name:   "amber",
		Accent: "\x1b[38;5;178m",
		Dim:    "\x1b[38;5;94m",
		Glow:   "\x1b[38;5;221m",
	},
	"arctic": {
		Name:   "arctic",
		Accent: "\x1b[38;5;195m",
		Dim:    "\x1b[38;5;250m",
		Glow:   "\x1b[38;5;117m",
	},
}

// BuiltinTheme returns a compiled-in theme by name. Unknown names are a
// configuration error listing the valid catalog.
func BuiltinTheme(name string) (Theme, error) {
	theme, ok := builtinThemes[strings.ToLower(name)]
	if !ok {
		return Theme{}, fmt.Errorf("unknown theme %q (valid themes: %s)",
			name, strings.Join(BuiltinThemeNames(), ", "))
	}
	return theme, nil
}

// BuiltinThemeNames returns the sorted names of the compiled-in catalog.
func BuiltinThemeNames() []string {
	names := make([]string, 0, len(builtinThemes))
	for name := range builtinThemes {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// IsBuiltIn returns true if this is a built-in theme
func (t *Theme) IsBuiltIn() bool {
	builtin, ok := builtinThemes[t.Name]
	return ok && builtin == *t
}
