package sources

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/fredcamaral/termbeam/internal/domain/ports"
)

// Assembler merges script inputs into one deduplicated, ordered path
// list: explicit paths first, then playlist entries, then directory
// contents. The first occurrence of a path wins its position; later
// duplicates contribute nothing.
type Assembler struct{}

// NewAssembler creates a new source assembler
func NewAssembler() *Assembler {
	return &Assembler{}
}

// Assemble implements the ports.SourceAssembler interface
func (a *Assembler) Assemble(explicit []string, playlistPath, dirPath string) ([]string, error) {
	seen := make(map[string]bool)
	var paths []string

	accept := func(path string) {
		normalized := filepath.Clean(path)
		if seen[normalized] {
			return
		}
		seen[normalized] = true
		paths = append(paths, path)
	}

	for _, path := range explicit {
		accept(path)
	}

	if playlistPath != "" {
		entries, err := a.readPlaylist(playlistPath)
		if err != nil {
			return nil, err
		}
		for _, path := range entries {
			accept(path)
		}
	}

	if dirPath != "" {
		entries, err := a.listDirectory(dirPath)
		if err != nil {
			return nil, err
		}
		for _, path := range entries {
			accept(path)
		}
	}

	return paths, nil
}

// readPlaylist parses a playlist file: one path per line, blank lines
// and #-prefixed comment lines ignored.
func (a *Assembler) readPlaylist(path string) ([]string, error) {
	data, err := os.ReadFile(path) // #nosec G304 - playlist path is user-provided configuration
	if err != nil {
		return nil, fmt.Errorf("reading playlist %s: %w", path, err)
	}

	var entries []string
	for _, line := range strings.Split(strings.ReplaceAll(string(data), "\r\n", "\n"), "\n") {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" || strings.HasPrefix(trimmed, "#") {
			continue
		}
		entries = append(entries, trimmed)
	}

	return entries, nil
}

// listDirectory returns the regular files of a directory, sorted
// lexicographically by name.
func (a *Assembler) listDirectory(dir string) ([]string, error) {
	dirEntries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("reading script directory %s: %w", dir, err)
	}

	var names []string
	for _, entry := range dirEntries {
		if !entry.Type().IsRegular() {
			continue
		}
		names = append(names, entry.Name())
	}
	sort.Strings(names)

	paths := make([]string, 0, len(names))
	for _, name := range names {
		paths = append(paths, filepath.Join(dir, name))
	}

	return paths, nil
}

// Ensure Assembler implements ports.SourceAssembler
var _ ports.SourceAssembler = (*Assembler)(nil)
