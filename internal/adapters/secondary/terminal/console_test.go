package terminal

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/fredcamaral/termbeam/internal/domain/ports"
)

func TestDecode(t *testing.T) {
	tests := []struct {
		name     string
		raw      []byte
		expected []ports.KeyEvent
	}{
		{
			name:     "right arrow",
			raw:      []byte{0x1b, '[', 'C'},
			expected: []ports.KeyEvent{{Kind: ports.KeyRight}},
		},
		{
			name:     "left arrow",
			raw:      []byte{0x1b, '[', 'D'},
			expected: []ports.KeyEvent{{Kind: ports.KeyLeft}},
		},
		{
			name:     "bare escape",
			raw:      []byte{0x1b},
			expected: []ports.KeyEvent{{Kind: ports.KeyEscape}},
		},
		{
			name:     "carriage return in raw mode",
			raw:      []byte{'\r'},
			expected: []ports.KeyEvent{{Kind: ports.KeyEnter}},
		},
		{
			name:     "printable rune",
			raw:      []byte{'q'},
			expected: []ports.KeyEvent{{Kind: ports.KeyRune, Rune: 'q'}},
		},
		{
			name:     "width keys",
			raw:      []byte{'+', '-'},
			expected: []ports.KeyEvent{{Kind: ports.KeyRune, Rune: '+'}, {Kind: ports.KeyRune, Rune: '-'}},
		},
		{
			name:     "multibyte rune",
			raw:      []byte("é"),
			expected: []ports.KeyEvent{{Kind: ports.KeyRune, Rune: 'é'}},
		},
		{
			name:     "up and down arrows ignored",
			raw:      []byte{0x1b, '[', 'A', 0x1b, '[', 'B'},
			expected: nil,
		},
		{
			name:     "control bytes skipped",
			raw:      []byte{0x01, 0x7f},
			expected: nil,
		},
		{
			name:     "arrow followed by rune",
			raw:      []byte{0x1b, '[', 'C', 'p'},
			expected: []ports.KeyEvent{{Kind: ports.KeyRight}, {Kind: ports.KeyRune, Rune: 'p'}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, decode(tt.raw))
		})
	}
}

func TestConsole_InjectAndPoll(t *testing.T) {
	c := NewConsole()

	_, ok := c.PollKeyEvent()
	assert.False(t, ok, "no events queued")

	c.Inject(ports.KeyEvent{Kind: ports.KeyReload})
	ev, ok := c.PollKeyEvent()
	assert.True(t, ok)
	assert.Equal(t, ports.KeyReload, ev.Kind)
}

func TestConsole_InjectDropsWhenFull(t *testing.T) {
	c := NewConsole()

	for i := 0; i < eventBuffer+5; i++ {
		c.Inject(ports.KeyEvent{Kind: ports.KeyReload})
	}

	drained := 0
	for {
		if _, ok := c.PollKeyEvent(); !ok {
			break
		}
		drained++
	}
	assert.Equal(t, eventBuffer, drained)
}
