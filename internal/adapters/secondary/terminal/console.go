// Package terminal adapts the host terminal to the presentation's
// key-event and frame-output needs: raw mode, the alternate screen,
// and a background reader decoding escape sequences into key events.
package terminal

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"sync"

	"github.com/muesli/termenv"
	"golang.org/x/term"

	"github.com/fredcamaral/termbeam/internal/domain/ports"
)

// ErrClosed is returned by NextKeyEvent after Stop released the console.
var ErrClosed = errors.New("console closed")

// eventBuffer bounds how many decoded or injected key events can queue
// before the reader blocks. Navigation bursts stay well under this.
const eventBuffer = 16

// Console is the interactive terminal adapter. Start switches the
// terminal into raw mode on the alternate screen and launches the key
// reader; Stop restores the terminal on every exit path.
type Console struct {
	in     *os.File
	out    *termenv.Output
	state  *term.State
	events chan ports.KeyEvent
	stop   chan struct{}
	wg     sync.WaitGroup

	mu      sync.Mutex
	started bool
}

// NewConsole creates a console over stdin and stdout
func NewConsole() *Console {
	return &Console{
		in:     os.Stdin,
		out:    termenv.NewOutput(os.Stdout),
		events: make(chan ports.KeyEvent, eventBuffer),
		stop:   make(chan struct{}),
	}
}

// Start claims the terminal: raw mode, alternate screen, hidden cursor.
func (c *Console) Start() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.started {
		return nil
	}

	fd := int(c.in.Fd())
	if !term.IsTerminal(fd) {
		return fmt.Errorf("stdin is not a terminal")
	}

	state, err := term.MakeRaw(fd)
	if err != nil {
		return fmt.Errorf("entering raw mode: %w", err)
	}
	c.state = state

	c.out.AltScreen()
	c.out.HideCursor()
	c.started = true

	c.wg.Add(1)
	go c.readLoop()

	return nil
}

// Stop restores the terminal. Safe to call more than once and from a
// deferred path after a partial Start failure.
func (c *Console) Stop() {
	c.mu.Lock()
	defer c.mu.Unlock()

	if !c.started {
		return
	}
	c.started = false

	close(c.stop)

	c.out.ShowCursor()
	c.out.ExitAltScreen()
	if c.state != nil {
		_ = term.Restore(int(c.in.Fd()), c.state)
	}
}

// Inject queues a synthetic key event, used by the source watcher to
// request a reload from outside the terminal. Drops the event when the
// queue is full rather than blocking the watcher.
func (c *Console) Inject(ev ports.KeyEvent) {
	select {
	case c.events <- ev:
	default:
	}
}

// NextKeyEvent implements the ports.Terminal interface
func (c *Console) NextKeyEvent() (ports.KeyEvent, error) {
	select {
	case ev, ok := <-c.events:
		if !ok {
			return ports.KeyEvent{}, ErrClosed
		}
		return ev, nil
	case <-c.stop:
		return ports.KeyEvent{}, ErrClosed
	}
}

// PollKeyEvent implements the ports.Terminal interface
func (c *Console) PollKeyEvent() (ports.KeyEvent, bool) {
	select {
	case ev, ok := <-c.events:
		if !ok {
			return ports.KeyEvent{}, false
		}
		return ev, true
	default:
		return ports.KeyEvent{}, false
	}
}

// WriteFrame implements the ports.Terminal interface. Raw mode disables
// output post-processing, so rows are joined with explicit CRLF.
func (c *Console) WriteFrame(lines []string) error {
	c.out.ClearScreen()
	c.out.MoveCursor(1, 1)

	if _, err := fmt.Fprint(c.out, strings.Join(lines, "\r\n")+"\r\n"); err != nil {
		return fmt.Errorf("writing to terminal: %w", err)
	}

	return nil
}

// readLoop reads raw input and publishes decoded key events until the
// console stops or stdin closes.
func (c *Console) readLoop() {
	defer c.wg.Done()

	buf := make([]byte, 8)
	for {
		n, err := c.in.Read(buf)
		if err != nil {
			return
		}

		for _, ev := range decode(buf[:n]) {
			select {
			case c.events <- ev:
			case <-c.stop:
				return
			}
		}

		select {
		case <-c.stop:
			return
		default:
		}
	}
}

// decode translates one raw read into key events. Arrow keys arrive as
// three-byte CSI sequences; a bare ESC byte is the escape key itself.
func decode(raw []byte) []ports.KeyEvent {
	var events []ports.KeyEvent

	for i := 0; i < len(raw); {
		b := raw[i]

		if b == 0x1b {
			if i+2 < len(raw) && raw[i+1] == '[' {
				switch raw[i+2] {
				case 'C':
					events = append(events, ports.KeyEvent{Kind: ports.KeyRight})
					i += 3
					continue
				case 'D':
					events = append(events, ports.KeyEvent{Kind: ports.KeyLeft})
					i += 3
					continue
				case 'A', 'B':
					// Up and down are unbound.
					i += 3
					continue
				}
			}
			events = append(events, ports.KeyEvent{Kind: ports.KeyEscape})
			i++
			continue
		}

		if b == '\r' || b == '\n' {
			events = append(events, ports.KeyEvent{Kind: ports.KeyEnter})
			i++
			continue
		}

		r, size := decodeRune(raw[i:])
		if r != 0 {
			events = append(events, ports.KeyEvent{Kind: ports.KeyRune, Rune: r})
		}
		i += size
	}

	return events
}

// decodeRune reads one UTF-8 rune, skipping control bytes
func decodeRune(raw []byte) (rune, int) {
	if raw[0] < 0x20 || raw[0] == 0x7f {
		return 0, 1
	}
	r := []rune(string(raw))
	if len(r) == 0 {
		return 0, len(raw)
	}
	return r[0], len(string(r[0]))
}

// Ensure Console implements ports.Terminal
var _ ports.Terminal = (*Console)(nil)
