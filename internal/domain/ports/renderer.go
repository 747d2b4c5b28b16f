package ports

import (
	"time"

	"github.com/fredcamaral/termbeam/internal/domain/entities"
)

// FrameSequence is a finite, deterministic, restartable sequence of
// progressively longer partial frames. The last element is always the
// complete frame. Instant rendering yields a single-element sequence.
type FrameSequence interface {
	// Next returns the next partial frame, or false when exhausted
	Next() ([]string, bool)

	// Reset rewinds the sequence to its first element
	Reset()
}

// FrameRenderer turns a slide into terminal output lines
type FrameRenderer interface {
	// Frame renders the complete bordered frame for a slide. Repeated
	// calls with identical inputs produce byte-identical output.
	Frame(slide *entities.Slide, width int, theme entities.Theme) []string

	// Reveal returns the frame's reveal sequence. With instant set the
	// sequence holds exactly one element, the complete frame.
	Reveal(slide *entities.Slide, width int, theme entities.Theme, instant bool) FrameSequence

	// Status renders the control/status line below a frame
	Status(position, total, width int, theme entities.Theme) string

	// NotesPanel renders the presenter overlay: elapsed session time
	// and the slide's notes numbered from 1
	NotesPanel(slide *entities.Slide, elapsed time.Duration, width int, theme entities.Theme) []string

	// Banner colorizes banner lines for the pre-session stage
	Banner(lines []string, theme entities.Theme) []string

	// Header renders the centered title rule shown above the frame
	Header(title string, width int, theme entities.Theme) string

	// Meta renders the session metadata line (source, theme, mode)
	Meta(source string, width int, theme entities.Theme, instant bool) string
}
