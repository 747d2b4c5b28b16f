package parser

import (
	"fmt"
	"os"
	"strings"

	"github.com/fredcamaral/termbeam/internal/domain/entities"
	"github.com/fredcamaral/termbeam/internal/domain/ports"
)

// NotePrefix marks presenter-only lines in script files. The prefix and
// exactly one following separating space are stripped from notes.
const NotePrefix = "@@"

// ScriptParser converts script text into an ordered slide sequence.
// Slides are paragraphs separated by one or more blank lines.
type ScriptParser struct{}

// NewScriptParser creates a new script parser
func NewScriptParser() *ScriptParser {
	return &ScriptParser{}
}

// ParseFile reads and parses a script file
func (p *ScriptParser) ParseFile(path string) ([]entities.Slide, error) {
	data, err := os.ReadFile(path) // #nosec G304 - path comes from assembled, user-provided sources
	if err != nil {
		return nil, fmt.Errorf("reading script %s: %w", path, err)
	}

	return p.Parse(string(data)), nil
}

// Parse splits script text into slides. Paragraphs consisting only of
// blank lines are discarded; a paragraph of only note lines yields a
// slide with an empty display-line list and a non-empty notes list.
func (p *ScriptParser) Parse(content string) []entities.Slide {
	content = strings.ReplaceAll(content, "\r\n", "\n")

	var slides []entities.Slide
	var paragraph []string

	flush := func() {
		if len(paragraph) == 0 {
			return
		}
		if slide, ok := p.buildSlide(paragraph, len(slides)); ok {
			slides = append(slides, slide)
		}
		paragraph = nil
	}

	for _, line := range strings.Split(content, "\n") {
		if strings.TrimSpace(line) == "" {
			flush()
			continue
		}
		paragraph = append(paragraph, line)
	}
	flush()

	return slides
}

// buildSlide separates note lines from display lines within one
// paragraph, both kept in original relative order.
func (p *ScriptParser) buildSlide(paragraph []string, index int) (entities.Slide, bool) {
	slide := entities.Slide{Index: index}

	for _, line := range paragraph {
		if strings.HasPrefix(line, NotePrefix) {
			note := strings.TrimPrefix(line, NotePrefix)
			note = strings.TrimPrefix(note, " ")
			slide.Notes = append(slide.Notes, note)
			continue
		}
		slide.Lines = append(slide.Lines, line)
	}

	if len(slide.Lines) == 0 && len(slide.Notes) == 0 {
		return entities.Slide{}, false
	}

	return slide, true
}

// Ensure ScriptParser implements ports.ScriptParser
var _ ports.ScriptParser = (*ScriptParser)(nil)
