// Package config collects startup defaults from their three layers:
// compiled fallbacks, the optional global TOML file, and environment
// variables. Flags are applied last by the command layer.
package config

import (
	"os"
	"strconv"

	"github.com/fredcamaral/termbeam/internal/domain/entities"
)

// Environment variables read at startup
const (
	EnvFrameWidth = "FRAME_WIDTH"
	EnvAccent     = "COLOR_ACCENT"
	EnvDim        = "COLOR_DIM"
	EnvGlow       = "COLOR_GLOW"
	EnvBannerPath = "DEFAULT_BANNER_PATH"
	EnvTitle      = "PRESENTATION_TITLE"
	EnvTheme      = "PRESENTATION_THEME"
)

// LookupFunc resolves one environment variable, os.LookupEnv in
// production and a map lookup in tests.
type LookupFunc func(key string) (string, bool)

// CompiledDefaults returns the lowest-precedence defaults layer. The
// fallback colors are the default built-in theme's palette.
func CompiledDefaults() entities.Defaults {
	theme, _ := entities.BuiltinTheme(entities.DefaultThemeName)

	return entities.Defaults{
		FrameWidth: entities.DefaultFrameWidth,
		Accent:     theme.Accent,
		Dim:        theme.Dim,
		Glow:       theme.Glow,
		BannerPath: "presentations/banner.txt",
		Title:      "Terminal Presentation",
	}
}

// FromEnvironment overlays environment variables onto a base defaults
// record. Unset variables leave the base value; a frame width that does
// not parse as an integer is ignored rather than fatal.
func FromEnvironment(base entities.Defaults, lookup LookupFunc) entities.Defaults {
	if lookup == nil {
		lookup = os.LookupEnv
	}

	if raw, ok := lookup(EnvFrameWidth); ok {
		if width, err := strconv.Atoi(raw); err == nil {
			base.FrameWidth = width
		}
	}

	setIfPresent := func(key string, dst *string) {
		if value, ok := lookup(key); ok && value != "" {
			*dst = value
		}
	}

	setIfPresent(EnvAccent, &base.Accent)
	setIfPresent(EnvDim, &base.Dim)
	setIfPresent(EnvGlow, &base.Glow)
	setIfPresent(EnvBannerPath, &base.BannerPath)
	setIfPresent(EnvTitle, &base.Title)
	setIfPresent(EnvTheme, &base.ThemeName)

	return base
}
