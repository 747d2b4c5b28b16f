package render

import "github.com/fredcamaral/termbeam/internal/domain/ports"

// sequence is the reveal sequence for one built frame: a finite,
// deterministic series of partial frames ending in the complete frame.
// The reveal unit is one content row.
type sequence struct {
	frame   *builtFrame
	instant bool
	pos     int
	steps   int
}

// newSequence creates the reveal sequence for a built frame
func newSequence(frame *builtFrame, instant bool) *sequence {
	steps := len(frame.rows)
	if instant || steps < 1 {
		steps = 1
	}
	return &sequence{frame: frame, instant: instant, steps: steps}
}

// Next implements the ports.FrameSequence interface
func (s *sequence) Next() ([]string, bool) {
	if s.pos >= s.steps {
		return nil, false
	}
	s.pos++

	if s.instant || s.pos == s.steps {
		return s.frame.complete(), true
	}
	return s.frame.partial(s.pos), true
}

// Reset implements the ports.FrameSequence interface
func (s *sequence) Reset() {
	s.pos = 0
}

// Ensure sequence implements ports.FrameSequence
var _ ports.FrameSequence = (*sequence)(nil)
