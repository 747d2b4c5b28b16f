package ports

import "github.com/fredcamaral/termbeam/internal/domain/entities"

// ScriptParser converts one script file into an ordered slide sequence
type ScriptParser interface {
	// ParseFile reads and parses a script file. IO errors name the
	// offending path; no partial results are returned on failure.
	ParseFile(path string) ([]entities.Slide, error)
}

// SourceAssembler produces the ordered, deduplicated path list that
// feeds the script parser
type SourceAssembler interface {
	// Assemble merges explicit paths, an optional playlist file, and an
	// optional directory listing, keeping the first occurrence of each
	// distinct path. Empty playlistPath or dirPath skips that source.
	Assemble(explicit []string, playlistPath, dirPath string) ([]string, error)
}
