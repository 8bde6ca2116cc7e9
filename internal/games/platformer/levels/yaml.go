package levels

import (
	"fmt"

	"github.com/vovakirdan/tui-platformer/internal/games/platformer"
	"gopkg.in/yaml.v3"
)

// YAMLLevel represents the YAML structure for a level file.
type YAMLLevel struct {
	ID          string         `yaml:"id"`
	Name        string         `yaml:"name"`
	Description string         `yaml:"description,omitempty"`
	World       YAMLWorld      `yaml:"world"`
	TimeLimit   float64        `yaml:"time_limit"`
	Spawn       YAMLPoint      `yaml:"spawn"`
	Obstacles   []YAMLObstacle `yaml:"obstacles"`
	Coins       []YAMLPoint    `yaml:"coins,omitempty"`
	PowerUps    []YAMLPoint    `yaml:"power_ups,omitempty"`
	Hazards     *YAMLHazardRow `yaml:"hazards,omitempty"`
}

// YAMLWorld is the world box; the origin is always the top-left corner.
type YAMLWorld struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// YAMLPoint is a centre position.
type YAMLPoint struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
}

// YAMLObstacle places a catalogue obstacle by its top-left corner.
type YAMLObstacle struct {
	ID     int     `yaml:"id,omitempty"`
	Type   string  `yaml:"type"`
	X      float64 `yaml:"x"`
	Y      float64 `yaml:"y"`
	ScaleX float64 `yaml:"scale_x,omitempty"`
	ScaleY float64 `yaml:"scale_y,omitempty"`
}

// YAMLHazardRow describes an evenly spaced row of hazards.
type YAMLHazardRow struct {
	Count    int     `yaml:"count"`
	Spacing  float64 `yaml:"spacing"`
	OffsetX  float64 `yaml:"offset_x"`
	Y        float64 `yaml:"y"`
	MinSpeed float64 `yaml:"min_speed"`
	MaxSpeed float64 `yaml:"max_speed"`
}

// ParseYAML parses a YAML level file. The result is not validated.
func ParseYAML(data []byte) (platformer.Level, error) {
	var yl YAMLLevel
	if err := yaml.Unmarshal(data, &yl); err != nil {
		return platformer.Level{}, fmt.Errorf("yaml unmarshal: %w", err)
	}

	name := yl.Name
	if name == "" {
		name = yl.ID
	}

	level := platformer.Level{
		ID:          yl.ID,
		Name:        name,
		Description: yl.Description,
		Width:       yl.World.Width,
		Height:      yl.World.Height,
		TimeLimit:   yl.TimeLimit,
		Spawn:       platformer.Point(yl.Spawn),
		Coins:       points(yl.Coins),
		PowerUps:    points(yl.PowerUps),
	}

	for _, o := range yl.Obstacles {
		level.Obstacles = append(level.Obstacles, platformer.ObstaclePlacement(o))
	}

	if yl.Hazards != nil {
		level.Hazards = platformer.HazardRow(*yl.Hazards)
	}

	return level, nil
}

func points(in []YAMLPoint) []platformer.Point {
	if len(in) == 0 {
		return nil
	}
	out := make([]platformer.Point, len(in))
	for i, p := range in {
		out[i] = platformer.Point(p)
	}
	return out
}

// FormatExtensions returns supported file extensions.
func FormatExtensions() []string {
	return []string{".yaml", ".yml"}
}
