package services

import (
	"fmt"

	"github.com/fredcamaral/termbeam/internal/domain/entities"
	"github.com/fredcamaral/termbeam/internal/domain/ports"
)

// ThemeResolver determines the active theme from the configured
// sources. Exactly one source is active per run, highest priority
// first: explicit theme file, named built-in theme, environment
// defaults.
type ThemeResolver struct {
	loader ports.ThemeLoader
}

// NewThemeResolver creates a new theme resolver
func NewThemeResolver(loader ports.ThemeLoader) *ThemeResolver {
	return &ThemeResolver{loader: loader}
}

// Resolve returns the active theme. A file path always wins, even when
// a name was also given; an unknown built-in name is a fatal
// configuration error.
func (r *ThemeResolver) Resolve(filePath, name string, defaults entities.Defaults) (entities.Theme, error) {
	if filePath != "" {
		theme, err := r.loader.Load(filePath)
		if err != nil {
			return entities.Theme{}, err
		}
		return theme, nil
	}

	if name != "" {
		theme, err := entities.BuiltinTheme(name)
		if err != nil {
			return entities.Theme{}, err
		}
		return theme, nil
	}

	// Environment may name a built-in theme; an unrecognized value
	// falls through to the plain color defaults.
	if defaults.ThemeName != "" {
		if theme, err := entities.BuiltinTheme(defaults.ThemeName); err == nil {
			return theme, nil
		}
	}

	theme := entities.Theme{
		Name:   "default",
		Accent: defaults.Accent,
		Dim:    defaults.Dim,
		Glow:   defaults.Glow,
	}
	if err := theme.Validate(); err != nil {
		return entities.Theme{}, fmt.Errorf("environment default theme: %w", err)
	}

	return theme, nil
}
