package services

import (
	"errors"
	"fmt"
	"time"

	"github.com/fredcamaral/termbeam/internal/domain/entities"
	"github.com/fredcamaral/termbeam/internal/domain/ports"
)

// ErrReload signals that the session ended because its sources changed
// and the caller should build a fresh deck and run a fresh session.
var ErrReload = errors.New("presentation reload requested")

// Animation pacing. These are cooperative sleeps between reveal steps,
// not deadlines; a pending key aborts the remaining steps.
const (
	revealDelay = 45 * time.Millisecond
	bannerHold  = 900 * time.Millisecond
)

// Presenter runs the interactive session: a single-threaded loop
// alternating between waiting for a key event and rendering the
// current frame. It owns the only mutable session state.
type Presenter struct {
	deck     *entities.Deck
	cfg      *entities.PresentationConfig
	renderer ports.FrameRenderer
	term     ports.Terminal
	clock    ports.TimeProvider
	banner   []string
	session  *Session
}

// NewPresenter creates a presenter for a deck and configuration. The
// banner lines are pre-read by the caller; nil skips the banner stage.
func NewPresenter(deck *entities.Deck, cfg *entities.PresentationConfig, renderer ports.FrameRenderer,
	term ports.Terminal, clock ports.TimeProvider, banner []string) *Presenter {
	return &Presenter{
		deck:     deck,
		cfg:      cfg,
		renderer: renderer,
		term:     term,
		clock:    clock,
		banner:   banner,
	}
}

// Run drives the session until quit, reload, or a terminal error. The
// caller owns raw-mode setup and release.
func (p *Presenter) Run() error {
	if p.deck.IsEmpty() {
		return p.showEmptyDeck()
	}

	session, err := NewSession(p.deck, p.cfg, p.clock)
	if err != nil {
		return err
	}
	p.session = session

	if len(p.banner) > 0 {
		if err := p.showBanner(); err != nil {
			return err
		}
	}

	pending, err := p.redraw(true)
	if err != nil {
		return err
	}

	for p.session.State() != StateTerminated {
		var ev ports.KeyEvent
		if pending != nil {
			ev, pending = *pending, nil
		} else {
			ev, err = p.term.NextKeyEvent()
			if err != nil {
				return fmt.Errorf("reading key event: %w", err)
			}
		}

		directive := p.session.Apply(ev)
		switch {
		case directive.Quit:
			return nil
		case directive.Reload:
			return ErrReload
		case directive.Render:
			if pending, err = p.redraw(directive.Animate); err != nil {
				return err
			}
		}
	}

	return nil
}

// redraw renders the current slide at the current width, pacing the
// reveal sequence unless instant. A key arriving mid-animation aborts
// the remaining steps: the full frame is written immediately and the
// event is returned for the caller to apply.
func (p *Presenter) redraw(animate bool) (*ports.KeyEvent, error) {
	slide := p.session.CurrentSlide()
	width := p.session.Width()
	instant := p.cfg.Instant || !animate

	seq := p.renderer.Reveal(slide, width, p.cfg.Theme, instant)
	for {
		frame, ok := seq.Next()
		if !ok {
			return nil, nil
		}

		if err := p.term.WriteFrame(p.compose(frame)); err != nil {
			return nil, fmt.Errorf("writing frame: %w", err)
		}

		if instant {
			continue
		}

		if ev, waiting := p.term.PollKeyEvent(); waiting {
			full := p.renderer.Frame(slide, width, p.cfg.Theme)
			if err := p.term.WriteFrame(p.compose(full)); err != nil {
				return nil, fmt.Errorf("writing frame: %w", err)
			}
			return &ev, nil
		}

		p.clock.Sleep(revealDelay)
	}
}

// compose surrounds a frame with the session chrome: title header,
// metadata line, status line, and the presenter overlay when active.
func (p *Presenter) compose(frame []string) []string {
	width := p.session.Width()
	theme := p.cfg.Theme

	source := ""
	if len(p.deck.Sources) > 0 {
		source = p.deck.Sources[0]
	}

	lines := []string{
		p.renderer.Header(p.cfg.Title, width, theme),
		p.renderer.Meta(source, width, theme, p.cfg.Instant),
		"",
	}
	lines = append(lines, frame...)
	lines = append(lines, "", p.renderer.Status(p.session.Index()+1, p.deck.SlideCount(), width, theme))

	if p.session.PresenterMode() {
		lines = append(lines, "")
		lines = append(lines, p.renderer.NotesPanel(p.session.CurrentSlide(), p.session.Elapsed(), width, theme)...)
	}

	return lines
}

// showBanner writes the pre-session banner once and holds it briefly
// before the first slide replaces it.
func (p *Presenter) showBanner() error {
	if err := p.term.WriteFrame(p.renderer.Banner(p.banner, p.cfg.Theme)); err != nil {
		return fmt.Errorf("writing banner: %w", err)
	}

	if !p.cfg.Instant {
		p.clock.Sleep(bannerHold)
	}

	p.session.Start()
	return nil
}

// showEmptyDeck reports a source set that produced no slides and ends
// the session without entering the navigation loop.
func (p *Presenter) showEmptyDeck() error {
	theme := p.cfg.Theme
	lines := []string{
		p.renderer.Header(p.cfg.Title, p.cfg.FrameWidth, theme),
		"",
		theme.Dim + "⚠ no content to display" + "\x1b[0m",
	}

	if err := p.term.WriteFrame(lines); err != nil {
		return fmt.Errorf("writing frame: %w", err)
	}

	return nil
}
