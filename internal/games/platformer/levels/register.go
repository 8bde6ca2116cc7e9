package levels

import (
	"errors"

	"github.com/vovakirdan/tui-platformer/internal/games/platformer"
	"github.com/vovakirdan/tui-platformer/internal/registry"
)

func init() {
	builtins, err := Builtin()
	if err != nil {
		panic(err)
	}
	for _, lvl := range builtins {
		registry.Register(info(lvl), factory(lvl))
	}
}

// RegisterDir loads every level file under dir and registers it.
// Levels that load are registered even when others fail; the returned error
// lists the files and IDs that were rejected.
func RegisterDir(dir string) (int, error) {
	levels, loadErr := NewLoader(dir).LoadAll()

	registered := 0
	var errs []error
	if loadErr != nil {
		errs = append(errs, loadErr)
	}
	for _, lvl := range levels {
		if err := registry.TryRegister(info(lvl), factory(lvl)); err != nil {
			errs = append(errs, err)
			continue
		}
		registered++
	}
	return registered, errors.Join(errs...)
}

func info(lvl platformer.Level) registry.GameInfo {
	return registry.GameInfo{
		ID:          lvl.ID,
		Title:       lvl.Name,
		Description: lvl.Description,
	}
}

func factory(lvl platformer.Level) registry.Factory {
	return func(opts registry.Options) (registry.Game, error) {
		g, err := platformer.New(lvl, platformer.Options{
			ConfigPath: opts.ConfigPath,
			Difficulty: opts.Difficulty,
			Audio:      opts.Audio,
		})
		if err != nil {
			return nil, err
		}
		return g, nil
	}
}
