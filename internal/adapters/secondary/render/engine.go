package render

import (
	"fmt"
	"strings"
	"time"

	"github.com/mattn/go-runewidth"
	"github.com/muesli/reflow/wordwrap"
	"github.com/muesli/reflow/wrap"

	"github.com/fredcamaral/termbeam/internal/domain/entities"
	"github.com/fredcamaral/termbeam/internal/domain/ports"
)

// ANSI style fragments shared across the renderer.
const (
	reset     = "\x1b[0m"
	bold      = "\x1b[1m"
	italic    = "\x1b[3m"
	underline = "\x1b[4m"
)

// FrameOverhead is the number of columns consumed by the left and right
// border cells ("│ " and " │"). Content wraps to width minus this.
const FrameOverhead = 4

// Engine renders slides into bordered, colorized terminal frames. It is
// a pure function of (slide, width, theme): identical inputs produce
// byte-identical output.
type Engine struct{}

// NewEngine creates a new frame render engine
func NewEngine() *Engine {
	return &Engine{}
}

// lineKind classifies a display line by its leading marker character
type lineKind int

const (
	kindPlain lineKind = iota
	kindHeading
	kindBullet
	kindQuote
	kindSeparator
)

// classify maps a raw display line to its kind and content text
func classify(line string) (lineKind, string) {
	trimmed := strings.TrimSpace(line)
	if trimmed == "" {
		return kindPlain, ""
	}

	if isSeparator(trimmed) {
		return kindSeparator, ""
	}

	if strings.HasPrefix(trimmed, "#") {
		content := strings.TrimSpace(strings.TrimLeft(trimmed, "#"))
		if content != "" {
			return kindHeading, content
		}
	}

	if strings.HasPrefix(trimmed, "- ") || strings.HasPrefix(trimmed, "* ") {
		return kindBullet, strings.TrimLeft(trimmed[2:], " ")
	}

	if strings.HasPrefix(trimmed, ">") {
		return kindQuote, strings.TrimLeft(strings.TrimPrefix(trimmed, ">"), " ")
	}

	return kindPlain, trimmed
}

// isSeparator reports whether a trimmed line is a horizontal rule
// request: at least three characters, all dashes or equals signs.
func isSeparator(trimmed string) bool {
	runes := []rune(trimmed)
	if len(runes) < 3 {
		return false
	}
	for _, r := range runes {
		if r != '-' && r != '–' && r != '=' {
			return false
		}
	}
	return true
}

// contentRow is one fully decorated body row of a frame
type contentRow struct {
	text  string
	color string
	style string
	rule  bool
}

// bodyRows classifies, decorates, colors, and wraps a slide's display
// lines for the given content width. Headings use the accent color,
// bullets dim, quotes glow; plain rows stay neutral.
func (e *Engine) bodyRows(slide *entities.Slide, theme entities.Theme, contentWidth int) []contentRow {
	var rows []contentRow

	for _, line := range slide.Lines {
		kind, content := classify(line)

		var row contentRow
		switch kind {
		case kindSeparator:
			rows = append(rows, contentRow{rule: true})
			continue
		case kindHeading:
			row = contentRow{text: strings.ToUpper(content), color: theme.Accent, style: bold + underline}
		case kindBullet:
			row = contentRow{text: "• " + content, color: theme.Dim}
		case kindQuote:
			row = contentRow{text: "❝ " + content + " ❞", color: theme.Glow}
		default:
			row = contentRow{text: content}
		}

		for _, segment := range wrapText(row.text, contentWidth) {
			rows = append(rows, contentRow{text: segment, color: row.color, style: row.style})
		}
	}

	return rows
}

// wrapText word-wraps text to width, then hard-cuts any word longer
// than the width at the width boundary. Words that fit on their own
// line are never split.
func wrapText(text string, width int) []string {
	if width <= 0 {
		return []string{""}
	}
	wrapped := wrap.String(wordwrap.String(text, width), width)
	return strings.Split(wrapped, "\n")
}

// Frame implements the ports.FrameRenderer interface
func (e *Engine) Frame(slide *entities.Slide, width int, theme entities.Theme) []string {
	frame := e.newFrame(slide, width, theme)
	return frame.complete()
}

// Reveal implements the ports.FrameRenderer interface
func (e *Engine) Reveal(slide *entities.Slide, width int, theme entities.Theme, instant bool) ports.FrameSequence {
	frame := e.newFrame(slide, width, theme)
	return newSequence(frame, instant)
}

// builtFrame holds the assembled pieces of one rendered frame
type builtFrame struct {
	top    string
	bottom string
	rows   []string
	blank  string
}

// newFrame assembles the bordered frame for a slide at a width
func (e *Engine) newFrame(slide *entities.Slide, width int, theme entities.Theme) *builtFrame {
	contentWidth := width - FrameOverhead

	frame := &builtFrame{
		top:    theme.Dim + "╭" + strings.Repeat("─", width-2) + "╮" + reset,
		bottom: theme.Dim + "╰" + strings.Repeat("─", width-2) + "╯" + reset,
		blank:  e.borderRow(strings.Repeat(" ", contentWidth), theme),
	}

	rows := e.bodyRows(slide, theme, contentWidth)
	if len(rows) == 0 {
		// Notes-only slides show an empty frame to the audience.
		frame.rows = []string{frame.blank}
		return frame
	}

	for _, row := range rows {
		if row.rule {
			frame.rows = append(frame.rows, e.borderRow(strings.Repeat("─", contentWidth), theme))
			continue
		}

		padding := contentWidth - runewidth.StringWidth(row.text)
		if padding < 0 {
			padding = 0
		}

		body := row.text
		if row.color != "" || row.style != "" {
			body = row.style + row.color + row.text + reset
		}
		body += strings.Repeat(" ", padding)

		frame.rows = append(frame.rows, e.border(body, theme))
	}

	return frame
}

// borderRow renders a body row whose content shares the border color
func (e *Engine) borderRow(fill string, theme entities.Theme) string {
	return theme.Dim + "│ " + fill + " │" + reset
}

// border wraps pre-colored body content with dim border cells
func (e *Engine) border(body string, theme entities.Theme) string {
	return theme.Dim + "│ " + reset + body + theme.Dim + " │" + reset
}

// complete returns the full frame: border, all rows, border
func (f *builtFrame) complete() []string {
	lines := make([]string, 0, len(f.rows)+2)
	lines = append(lines, f.top)
	lines = append(lines, f.rows...)
	lines = append(lines, f.bottom)
	return lines
}

// partial returns a frame with the first visible rows revealed and the
// remainder blanked, keeping the frame height stable during animation.
func (f *builtFrame) partial(visible int) []string {
	lines := make([]string, 0, len(f.rows)+2)
	lines = append(lines, f.top)
	for i := range f.rows {
		if i < visible {
			lines = append(lines, f.rows[i])
		} else {
			lines = append(lines, f.blank)
		}
	}
	lines = append(lines, f.bottom)
	return lines
}

// Status implements the ports.FrameRenderer interface
func (e *Engine) Status(position, total, width int, theme entities.Theme) string {
	dim := func(s string) string { return theme.Dim + s + reset }
	glow := func(s string) string { return theme.Glow + s + reset }
	accent := func(s string) string { return theme.Accent + s + reset }

	return dim("CTRL ::") + " " +
		glow("←/→ Enter") + dim(" slides") + "  " +
		glow("+/-") + dim(" width") + "  " +
		glow("p") + dim(" notes") + "  " +
		glow("q/Esc") + dim(" quit") + "  " +
		dim("SEQ ::") + " " + accent(fmt.Sprintf("%03d/%03d", position, total)) + "  " +
		dim("FRAME ::") + " " + accent(fmt.Sprintf("%d", width))
}

// NotesPanel implements the ports.FrameRenderer interface
func (e *Engine) NotesPanel(slide *entities.Slide, elapsed time.Duration, width int, theme entities.Theme) []string {
	lines := []string{
		theme.Dim + strings.Repeat("┄", width) + reset,
		theme.Dim + "PRESENTER ::" + reset + " " + theme.Glow + bold + formatElapsed(elapsed) + reset,
	}

	if !slide.HasNotes() {
		lines = append(lines, theme.Dim+italic+"(no notes for this slide)"+reset)
		return lines
	}

	for i, note := range slide.Notes {
		lines = append(lines, theme.Accent+fmt.Sprintf("%d.", i+1)+reset+" "+note)
	}

	return lines
}

// formatElapsed renders a session duration as mm:ss, growing to
// h:mm:ss past the first hour.
func formatElapsed(d time.Duration) string {
	d = d.Truncate(time.Second)
	h := int(d.Hours())
	m := int(d.Minutes()) % 60
	s := int(d.Seconds()) % 60
	if h > 0 {
		return fmt.Sprintf("%d:%02d:%02d", h, m, s)
	}
	return fmt.Sprintf("%02d:%02d", m, s)
}

// Banner implements the ports.FrameRenderer interface
func (e *Engine) Banner(lines []string, theme entities.Theme) []string {
	out := make([]string, 0, len(lines))
	for _, line := range lines {
		out = append(out, theme.Glow+bold+line+reset)
	}
	return out
}

// Header implements the ports.FrameRenderer interface
func (e *Engine) Header(title string, width int, theme entities.Theme) string {
	label := "╢ " + strings.ToUpper(title) + " ╟"
	fill := width - runewidth.StringWidth(label)
	if fill < 0 {
		fill = 0
	}
	left := fill / 2
	right := fill - left

	return theme.Dim + strings.Repeat("═", left) + reset +
		theme.Glow + label + reset +
		theme.Dim + strings.Repeat("═", right) + reset
}

// Meta implements the ports.FrameRenderer interface
func (e *Engine) Meta(source string, width int, theme entities.Theme, instant bool) string {
	mode := "CINEMATIC"
	if instant {
		mode = "INSTANT"
	}

	return theme.Dim + "SOURCE ::" + reset + " " + bold + theme.Accent + source + reset + "  " +
		theme.Dim + "THEME ::" + reset + " " + bold + theme.Glow + strings.ToUpper(theme.Name) + reset + "  " +
		theme.Dim + "MODE ::" + reset + " " + bold + theme.Accent + mode + reset
}

// Ensure Engine implements ports.FrameRenderer
var _ ports.FrameRenderer = (*Engine)(nil)
