package levels

import (
	"embed"
	"fmt"
	"io/fs"
	"sort"

	"github.com/vovakirdan/tui-platformer/internal/games/platformer"
)

//go:embed builtin/*.yaml
var builtinFS embed.FS

// Builtin returns the levels shipped with the binary, sorted by ID.
func Builtin() ([]platformer.Level, error) {
	files, err := fs.Glob(builtinFS, "builtin/*.yaml")
	if err != nil {
		return nil, err
	}

	levels := make([]platformer.Level, 0, len(files))
	for _, name := range files {
		data, err := builtinFS.ReadFile(name)
		if err != nil {
			return nil, fmt.Errorf("reading builtin %s: %w", name, err)
		}
		level, err := ParseYAML(data)
		if err != nil {
			return nil, fmt.Errorf("parsing builtin %s: %w", name, err)
		}
		if err := level.Validate(); err != nil {
			return nil, fmt.Errorf("validating builtin %s: %w", name, err)
		}
		levels = append(levels, level)
	}

	sort.Slice(levels, func(i, j int) bool {
		return levels[i].ID < levels[j].ID
	})
	return levels, nil
}
