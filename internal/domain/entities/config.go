package entities

import (
	"errors"
	"fmt"
)

// Frame geometry limits. The step is applied by the +/- session keys;
// both bounds are inclusive.
const (
	MinFrameWidth     = 24
	MaxFrameWidth     = 200
	DefaultFrameWidth = 120
	FrameWidthStep    = 2
)

// Defaults is the immutable environment-supplied defaults record,
// collected once at startup and consumed only by theme resolution and
// initial session configuration.
type Defaults struct {
	// FrameWidth is the initial frame width when no flag overrides it
	FrameWidth int `toml:"frame_width"`

	// Accent, Dim, and Glow are the fallback color codes used when no
	// theme file and no theme name are given
	Accent string `toml:"accent"`
	Dim    string `toml:"dim"`
	Glow   string `toml:"glow"`

	// ThemeName optionally selects a built-in theme
	ThemeName string `toml:"theme"`

	// BannerPath is the default banner file shown before the session
	BannerPath string `toml:"banner"`

	// Title is the default presentation title
	Title string `toml:"title"`
}

// Validate ensures the defaults record is usable
func (d *Defaults) Validate() error {
	if d.FrameWidth < MinFrameWidth || d.FrameWidth > MaxFrameWidth {
		return fmt.Errorf("default frame width %d out of range [%d, %d]",
			d.FrameWidth, MinFrameWidth, MaxFrameWidth)
	}

	if d.Accent == "" || d.Dim == "" || d.Glow == "" {
		return errors.New("default color codes must all be set")
	}

	return nil
}

// PresentationConfig is the immutable input to an interactive session.
// The session mutates a working copy of FrameWidth only.
type PresentationConfig struct {
	// FrameWidth is the initial frame width in characters
	FrameWidth int

	// Theme is the resolved color theme
	Theme Theme

	// Title is the presentation title shown in the session header
	Title string

	// BannerPath is the ASCII banner shown once before the session,
	// empty when the banner stage is skipped
	BannerPath string

	// Instant disables reveal animation: every frame sequence has
	// exactly one element, the complete frame
	Instant bool

	// Presenter starts the session with the notes overlay enabled
	Presenter bool
}

// Validate ensures the configuration can start a session
func (c *PresentationConfig) Validate() error {
	if c.FrameWidth < MinFrameWidth || c.FrameWidth > MaxFrameWidth {
		return fmt.Errorf("frame width %d out of range [%d, %d]",
			c.FrameWidth, MinFrameWidth, MaxFrameWidth)
	}

	if err := c.Theme.Validate(); err != nil {
		return fmt.Errorf("theme: %w", err)
	}

	return nil
}

// LogLevel represents logging verbosity levels
type LogLevel string

const (
	LogLevelDebug LogLevel = "debug"
	LogLevelInfo  LogLevel = "info"
	LogLevelWarn  LogLevel = "warn"
	LogLevelError LogLevel = "error"
)
