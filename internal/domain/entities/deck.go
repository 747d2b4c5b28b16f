package entities

import "fmt"

// Deck represents the full ordered slide sequence for a session
type Deck struct {
	// Slides contains all slides in presentation order
	Slides []Slide `json:"slides"`

	// Sources lists the script paths that produced the slides, in the
	// order they were parsed. Kept for diagnostics only.
	Sources []string `json:"sources"`
}

// Validate ensures the deck is internally consistent
func (d *Deck) Validate() error {
	for i := range d.Slides {
		if err := d.Slides[i].Validate(); err != nil {
			return fmt.Errorf("slide %d validation failed: %w", i+1, err)
		}
		if d.Slides[i].Index != i {
			return fmt.Errorf("slide %d carries index %d", i, d.Slides[i].Index)
		}
	}

	return nil
}

// GetSlideByIndex returns a slide by its index (0-based)
func (d *Deck) GetSlideByIndex(index int) (*Slide, error) {
	if index < 0 || index >= len(d.Slides) {
		return nil, fmt.Errorf("slide index %d out of range (0-%d)", index, len(d.Slides)-1)
	}
	return &d.Slides[index], nil
}

// SlideCount returns the total number of slides
func (d *Deck) SlideCount() int {
	return len(d.Slides)
}

// IsEmpty returns true when no source produced any slide
func (d *Deck) IsEmpty() bool {
	return len(d.Slides) == 0
}
