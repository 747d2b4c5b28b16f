package services

import (
	"fmt"
	"time"

	"github.com/fredcamaral/termbeam/internal/domain/entities"
	"github.com/fredcamaral/termbeam/internal/domain/ports"
)

// SessionState identifies the navigation state machine's current state
type SessionState int

const (
	// StateBanner is the pre-session stage, shown once unless skipped
	StateBanner SessionState = iota

	// StateViewing is normal slide viewing
	StateViewing

	// StatePresenter is viewing augmented with the notes overlay
	StatePresenter

	// StateTerminated means the session loop has exited
	StateTerminated
)

// Directive tells the control loop what an accepted transition requires
type Directive struct {
	// Render requests exactly one fresh render of the current slide at
	// the current width, restarting any reveal from its first unit
	Render bool

	// Animate allows the render to run its reveal sequence; width
	// changes and overlay toggles redraw instantly
	Animate bool

	// Quit ends the session loop
	Quit bool

	// Reload requests a fresh deck and a fresh session
	Reload bool
}

// Session owns the mutable state of one interactive presentation:
// current slide index, working frame width, presenter-mode flag, and
// the session start timestamp. Transitions are pure with respect to
// the injected clock.
type Session struct {
	deck      *entities.Deck
	state     SessionState
	index     int
	width     int
	presenter bool
	startedAt time.Time
	clock     ports.TimeProvider
}

// NewSession creates the session state for a deck and configuration.
// The configuration stays immutable; the session works on a copy of
// its frame width.
func NewSession(deck *entities.Deck, cfg *entities.PresentationConfig, clock ports.TimeProvider) (*Session, error) {
	if deck == nil || deck.IsEmpty() {
		return nil, fmt.Errorf("session requires a non-empty deck")
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("session config: %w", err)
	}

	state := StateViewing
	if cfg.BannerPath != "" {
		state = StateBanner
	}

	return &Session{
		deck:      deck,
		state:     state,
		width:     cfg.FrameWidth,
		presenter: cfg.Presenter,
		startedAt: clock.Now(),
		clock:     clock,
	}, nil
}

// Start leaves the banner stage. It is a no-op once viewing began.
func (s *Session) Start() {
	if s.state == StateBanner {
		s.state = StateViewing
	}
}

// State returns the current state machine state
func (s *Session) State() SessionState {
	if s.state == StateViewing && s.presenter {
		return StatePresenter
	}
	return s.state
}

// Index returns the current slide index
func (s *Session) Index() int {
	return s.index
}

// Width returns the working frame width
func (s *Session) Width() int {
	return s.width
}

// PresenterMode reports whether the notes overlay is active
func (s *Session) PresenterMode() bool {
	return s.presenter
}

// Elapsed returns the time since the session started
func (s *Session) Elapsed() time.Duration {
	return s.clock.Since(s.startedAt)
}

// CurrentSlide returns the slide at the current index. The index is
// always a valid deck position.
func (s *Session) CurrentSlide() *entities.Slide {
	return &s.deck.Slides[s.index]
}

// Apply consumes one key event and returns the resulting directive.
// Unrecognized keys are no-ops: no state change, no render, no error.
func (s *Session) Apply(ev ports.KeyEvent) Directive {
	if s.state == StateTerminated {
		return Directive{}
	}

	// Any key dismisses the banner stage.
	s.Start()

	switch ev.Kind {
	case ports.KeyRight, ports.KeyEnter:
		return s.moveTo(s.index + 1)

	case ports.KeyLeft:
		return s.moveTo(s.index - 1)

	case ports.KeyEscape:
		s.state = StateTerminated
		return Directive{Quit: true}

	case ports.KeyReload:
		s.state = StateTerminated
		return Directive{Reload: true}

	case ports.KeyRune:
		return s.applyRune(ev.Rune)
	}

	return Directive{}
}

func (s *Session) applyRune(r rune) Directive {
	switch r {
	case 'q', 'Q':
		s.state = StateTerminated
		return Directive{Quit: true}

	case '+', '=':
		return s.adjustWidth(entities.FrameWidthStep)

	case '-', '_':
		return s.adjustWidth(-entities.FrameWidthStep)

	case 'p', 'P':
		s.presenter = !s.presenter
		return Directive{Render: true}
	}

	return Directive{}
}

// moveTo clamps the target index to the deck bounds and renders only
// when the index actually changed. Navigation never wraps and never
// exits at either edge.
func (s *Session) moveTo(target int) Directive {
	if target < 0 {
		target = 0
	}
	if max := s.deck.SlideCount() - 1; target > max {
		target = max
	}

	if target == s.index {
		return Directive{}
	}

	s.index = target
	return Directive{Render: true, Animate: true}
}

// adjustWidth applies the step within [MinFrameWidth, MaxFrameWidth],
// rendering immediately at the new width when it changed.
func (s *Session) adjustWidth(step int) Directive {
	next := s.width + step
	if next < entities.MinFrameWidth || next > entities.MaxFrameWidth {
		return Directive{}
	}

	s.width = next
	return Directive{Render: true}
}
