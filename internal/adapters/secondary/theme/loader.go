package theme

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/fredcamaral/termbeam/internal/domain/entities"
	"github.com/fredcamaral/termbeam/internal/domain/ports"
)

// FileLoader loads theme overrides from TOML files
type FileLoader struct{}

// NewFileLoader creates a new file-based theme loader
func NewFileLoader() *FileLoader {
	return &FileLoader{}
}

// rawTheme mirrors the theme file schema: name optional, colors required.
type rawTheme struct {
	Name   string `toml:"name"`
	Accent string `toml:"accent"`
	Dim    string `toml:"dim"`
	Glow   string `toml:"glow"`
}

// Load implements the ports.ThemeLoader interface
func (l *FileLoader) Load(path string) (entities.Theme, error) {
	data, err := os.ReadFile(path) // #nosec G304 - theme path is user-provided configuration
	if err != nil {
		return entities.Theme{}, fmt.Errorf("reading theme file %s: %w", path, err)
	}

	var raw rawTheme
	if err := toml.Unmarshal(data, &raw); err != nil {
		return entities.Theme{}, fmt.Errorf("parsing theme file %s: %w", path, err)
	}

	if missing := missingKeys(raw); len(missing) > 0 {
		return entities.Theme{}, fmt.Errorf("theme file %s: missing required key(s): %s",
			path, strings.Join(missing, ", "))
	}

	name := raw.Name
	if name == "" {
		base := filepath.Base(path)
		name = strings.TrimSuffix(base, filepath.Ext(base))
	}

	resolved := entities.Theme{
		Name:   name,
		Accent: raw.Accent,
		Dim:    raw.Dim,
		Glow:   raw.Glow,
	}

	if err := resolved.Validate(); err != nil {
		return entities.Theme{}, fmt.Errorf("theme file %s: %w", path, err)
	}

	return resolved, nil
}

func missingKeys(raw rawTheme) []string {
	var missing []string
	if raw.Accent == "" {
		missing = append(missing, "accent")
	}
	if raw.Dim == "" {
		missing = append(missing, "dim")
	}
	if raw.Glow == "" {
		missing = append(missing, "glow")
	}
	return missing
}

// Ensure FileLoader implements ports.ThemeLoader
var _ ports.ThemeLoader = (*FileLoader)(nil)
