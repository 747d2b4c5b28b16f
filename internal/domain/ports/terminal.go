package ports

// KeyKind identifies the class of a key event
type KeyKind int

const (
	// KeyRune is a printable key; the Rune field carries the character
	KeyRune KeyKind = iota

	// KeyLeft is the left arrow
	KeyLeft

	// KeyRight is the right arrow
	KeyRight

	// KeyEnter is carriage return or line feed
	KeyEnter

	// KeyEscape is a bare ESC press
	KeyEscape

	// KeyReload is an injected event requesting a fresh deck and session
	KeyReload
)

// KeyEvent is a single decoded keyboard event
type KeyEvent struct {
	Kind KeyKind
	Rune rune
}

// Terminal abstracts the interactive terminal surface. The engine never
// touches raw terminal mode directly; implementations own raw-mode
// setup and release it on every exit path.
type Terminal interface {
	// NextKeyEvent blocks until a key event is available
	NextKeyEvent() (KeyEvent, error)

	// PollKeyEvent returns a pending key event without blocking. The
	// second return is false when no event is waiting. Used to abort a
	// reveal animation mid-flight.
	PollKeyEvent() (KeyEvent, bool)

	// WriteFrame replaces the visible frame with the given lines
	WriteFrame(lines []string) error
}
