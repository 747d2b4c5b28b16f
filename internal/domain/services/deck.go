package services

import (
	"errors"
	"fmt"

	"github.com/fredcamaral/termbeam/internal/domain/entities"
	"github.com/fredcamaral/termbeam/internal/domain/ports"
)

// ErrNoSources is returned when no script source was supplied
var ErrNoSources = errors.New("no presentation sources given")

// DeckService builds the full deck from the configured script sources
type DeckService struct {
	assembler ports.SourceAssembler
	parser    ports.ScriptParser
}

// NewDeckService creates a new deck service
func NewDeckService(assembler ports.SourceAssembler, parser ports.ScriptParser) *DeckService {
	return &DeckService{
		assembler: assembler,
		parser:    parser,
	}
}

// Build assembles the source list and parses every script into one
// deck. Any source error aborts the whole build; a partially loaded
// deck is never returned.
func (s *DeckService) Build(explicit []string, playlistPath, dirPath string) (*entities.Deck, error) {
	paths, err := s.assembler.Assemble(explicit, playlistPath, dirPath)
	if err != nil {
		return nil, fmt.Errorf("assembling sources: %w", err)
	}

	if len(paths) == 0 {
		return nil, ErrNoSources
	}

	deck := &entities.Deck{Sources: paths}
	for _, path := range paths {
		slides, err := s.parser.ParseFile(path)
		if err != nil {
			return nil, err
		}
		for _, slide := range slides {
			slide.Index = len(deck.Slides)
			deck.Slides = append(deck.Slides, slide)
		}
	}

	if err := deck.Validate(); err != nil {
		return nil, fmt.Errorf("invalid deck: %w", err)
	}

	return deck, nil
}
