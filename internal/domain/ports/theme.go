package ports

import "github.com/fredcamaral/termbeam/internal/domain/entities"

// ThemeLoader loads a theme override from a file
type ThemeLoader interface {
	// Load parses a theme file. The name key is optional and defaults
	// to the file's base name with the extension stripped; the three
	// color keys are required.
	Load(path string) (entities.Theme, error)
}
