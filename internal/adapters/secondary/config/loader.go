package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"

	"github.com/fredcamaral/termbeam/internal/domain/entities"
)

// TOMLLoader reads the optional global defaults file
type TOMLLoader struct {
	globalPath string
}

// NewTOMLLoader creates a loader bound to the user's config directory
func NewTOMLLoader() *TOMLLoader {
	homeDir, _ := os.UserHomeDir()

	return &TOMLLoader{
		globalPath: filepath.Join(homeDir, ".config", "termbeam", "config.toml"),
	}
}

// GetGlobalPath returns the path of the global defaults file
func (l *TOMLLoader) GetGlobalPath() string {
	return l.globalPath
}

// LoadGlobal loads the global defaults file. A missing file is not an
// error: it returns nil and the caller skips this layer.
func (l *TOMLLoader) LoadGlobal() (*entities.Defaults, error) {
	return l.loadFile(l.globalPath)
}

func (l *TOMLLoader) loadFile(path string) (*entities.Defaults, error) {
	data, err := os.ReadFile(path) // #nosec G304 - fixed path under the user config dir
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("reading config %s: %w", path, err)
	}

	var defaults entities.Defaults
	if err := toml.Unmarshal(data, &defaults); err != nil {
		return nil, fmt.Errorf("parsing TOML from %s: %w", path, err)
	}

	return &defaults, nil
}
