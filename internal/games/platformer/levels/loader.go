// Package levels loads platformer level files and registers them as
// playable games.
package levels

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"sort"
	"strings"

	"github.com/vovakirdan/tui-platformer/internal/games/platformer"
)

// Loader handles loading levels from a directory.
type Loader struct {
	Root string
}

// NewLoader creates a new level loader.
func NewLoader(root string) *Loader {
	return &Loader{Root: root}
}

// LoadAll recursively scans and loads all level files.
// Returns levels sorted by ID for deterministic ordering. Files that fail to
// load are skipped and reported together in the returned error, alongside
// the levels that did load.
func (l *Loader) LoadAll() ([]platformer.Level, error) {
	var (
		levels []platformer.Level
		errs   []error
	)

	err := filepath.WalkDir(l.Root, func(path string, d os.DirEntry, err error) error {
		if err != nil {
			return err
		}

		if d.IsDir() {
			return nil
		}

		ext := strings.ToLower(filepath.Ext(path))
		if !slices.Contains(FormatExtensions(), ext) {
			return nil
		}

		level, err := l.LoadFile(path)
		if err != nil {
			errs = append(errs, err)
			return nil
		}

		levels = append(levels, level)
		return nil
	})

	if err != nil {
		return nil, fmt.Errorf("walking directory %s: %w", l.Root, err)
	}

	sort.Slice(levels, func(i, j int) bool {
		return levels[i].ID < levels[j].ID
	})

	return levels, errors.Join(errs...)
}

// LoadFile loads and validates a single level file.
func (l *Loader) LoadFile(path string) (platformer.Level, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return platformer.Level{}, fmt.Errorf("reading file %s: %w", path, err)
	}

	level, err := ParseYAML(data)
	if err != nil {
		return platformer.Level{}, fmt.Errorf("parsing file %s: %w", path, err)
	}

	if err := level.Validate(); err != nil {
		return platformer.Level{}, fmt.Errorf("validating file %s: %w", path, err)
	}

	return level, nil
}

// LoadByID loads a specific level by ID.
func (l *Loader) LoadByID(id string) (platformer.Level, error) {
	levels, _ := l.LoadAll()

	for _, lvl := range levels {
		if lvl.ID == id {
			return lvl, nil
		}
	}

	return platformer.Level{}, fmt.Errorf("level not found: %s", id)
}
