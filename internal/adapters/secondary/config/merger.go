package config

import (
	"fmt"

	"github.com/fredcamaral/termbeam/internal/domain/entities"
)

// Merger layers defaults records, later layers taking precedence
type Merger struct{}

// NewMerger creates a new defaults merger
func NewMerger() *Merger {
	return &Merger{}
}

// Merge overlays each non-zero field of the later layers onto the
// first. Nil layers are skipped. The result is validated so a broken
// global file or environment surfaces at startup, not mid-session.
func (m *Merger) Merge(base entities.Defaults, layers ...*entities.Defaults) (entities.Defaults, error) {
	result := base

	for _, layer := range layers {
		if layer == nil {
			continue
		}
		overlay(&result, layer)
	}

	if err := result.Validate(); err != nil {
		return entities.Defaults{}, fmt.Errorf("resolved defaults: %w", err)
	}

	return result, nil
}

func overlay(dst *entities.Defaults, src *entities.Defaults) {
	if src.FrameWidth != 0 {
		dst.FrameWidth = src.FrameWidth
	}
	if src.Accent != "" {
		dst.Accent = src.Accent
	}
	if src.Dim != "" {
		dst.Dim = src.Dim
	}
	if src.Glow != "" {
		dst.Glow = src.Glow
	}
	if src.ThemeName != "" {
		dst.ThemeName = src.ThemeName
	}
	if src.BannerPath != "" {
		dst.BannerPath = src.BannerPath
	}
	if src.Title != "" {
		dst.Title = src.Title
	}
}

// Resolve builds the effective defaults: compiled values, then the
// optional global file, then the environment.
func Resolve(loader *TOMLLoader, lookup LookupFunc) (entities.Defaults, error) {
	global, err := loader.LoadGlobal()
	if err != nil {
		return entities.Defaults{}, err
	}

	merged, err := NewMerger().Merge(CompiledDefaults(), global)
	if err != nil {
		return entities.Defaults{}, err
	}

	resolved := FromEnvironment(merged, lookup)
	if err := resolved.Validate(); err != nil {
		return entities.Defaults{}, fmt.Errorf("environment defaults: %w", err)
	}

	return resolved, nil
}
