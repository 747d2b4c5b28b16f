package entities

import (
	"errors"
	"strings"
)

// Slide represents a single slide in a deck
type Slide struct {
	// Index is the slide position in the deck (0-based)
	Index int `json:"index"`

	// Lines contains the display lines in original order, note lines
	// filtered out. Leading marker characters are preserved verbatim;
	// interpretation happens at render time.
	Lines []string `json:"lines"`

	// Notes contains presenter-only lines in file order, note prefix
	// stripped. A slide may consist of notes alone.
	Notes []string `json:"notes,omitempty"`
}

// Validate ensures the slide has valid content
func (s *Slide) Validate() error {
	if s.Index < 0 {
		return errors.New("slide index must be non-negative")
	}

	if len(s.Lines) == 0 && len(s.Notes) == 0 {
		return errors.New("slide must have display lines or notes")
	}

	return nil
}

// HasNotes returns true if the slide has presenter notes
func (s *Slide) HasNotes() bool {
	return len(s.Notes) > 0
}

// IsNotesOnly returns true if the slide has no audience-visible lines.
// Such slides render as an empty frame while the presenter overlay
// still shows the notes.
func (s *Slide) IsNotesOnly() bool {
	return len(s.Lines) == 0 && len(s.Notes) > 0
}

// Title returns the first heading line with markers stripped, or a
// trimmed first line when the slide has no heading.
func (s *Slide) Title() string {
	for _, line := range s.Lines {
		trimmed := strings.TrimSpace(line)
		if strings.HasPrefix(trimmed, "#") {
			title := strings.TrimSpace(strings.TrimLeft(trimmed, "#"))
			if title != "" {
				return title
			}
		}
	}

	for _, line := range s.Lines {
		if trimmed := strings.TrimSpace(line); trimmed != "" {
			return trimmed
		}
	}

	return ""
}
