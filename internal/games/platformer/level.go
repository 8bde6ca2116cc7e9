package platformer

import (
	"fmt"
	"math"
	"sort"
	"strings"

	"github.com/vovakirdan/tui-platformer/internal/core"
)

// Point is a position in world units.
type Point struct {
	X, Y float64
}

// ObstaclePlacement places one catalogue obstacle by its top-left corner.
// A zero ID is assigned automatically; explicit IDs must be unique.
type ObstaclePlacement struct {
	ID     int
	Type   string
	X, Y   float64
	ScaleX float64 // Zero means 1
	ScaleY float64 // Zero means 1
}

// HazardRow spawns Count hazards centred at x = OffsetX + i*Spacing, y = Y,
// each with a random speed in [MinSpeed, MaxSpeed] and a random direction.
type HazardRow struct {
	Count    int
	Spacing  float64
	OffsetX  float64
	Y        float64
	MinSpeed float64
	MaxSpeed float64
}

// Level is the static description of a playable layout.
// Coins, power-ups and the spawn point are centre positions.
type Level struct {
	ID          string
	Name        string
	Description string

	Width     float64
	Height    float64
	TimeLimit float64 // Seconds

	Spawn     Point
	Obstacles []ObstaclePlacement
	Coins     []Point
	PowerUps  []Point
	Hazards   HazardRow
}

// ObstacleType is a catalogue entry: unscaled size and class.
type ObstacleType struct {
	W, H  float64
	Class ObstacleClass
}

// Obstacles available to level files.
var obstacleCatalog = map[string]ObstacleType{
	"platform-50":  {W: 50, H: 25, Class: ClassPlatform},
	"platform-100": {W: 100, H: 25, Class: ClassPlatform},
	"platform-200": {W: 200, H: 25, Class: ClassPlatform},
	"platform-500": {W: 500, H: 25, Class: ClassPlatform},
	"wall-50":      {W: 25, H: 50, Class: ClassWall},
	"wall-150":     {W: 25, H: 150, Class: ClassWall},
	"wall-250":     {W: 25, H: 250, Class: ClassWall},
}

// LookupObstacle returns the catalogue entry for name.
func LookupObstacle(name string) (ObstacleType, bool) {
	t, ok := obstacleCatalog[name]
	return t, ok
}

// ObstacleTypes returns the catalogue names in sorted order.
func ObstacleTypes() []string {
	names := make([]string, 0, len(obstacleCatalog))
	for name := range obstacleCatalog {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Box returns the world box of a placement, or false for an unknown type.
func (p ObstaclePlacement) Box() (core.AABB, ObstacleType, bool) {
	t, ok := LookupObstacle(p.Type)
	if !ok {
		return core.AABB{}, t, false
	}
	sx, sy := p.ScaleX, p.ScaleY
	if sx == 0 {
		sx = 1
	}
	if sy == 0 {
		sy = 1
	}
	return core.NewAABB(p.X, p.Y, t.W*sx, t.H*sy), t, true
}

// ValidationError contains details about a level that cannot be played.
type ValidationError struct {
	Code    string
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Validate checks the level for data the simulation cannot run with:
// degenerate geometry, unknown obstacle types, duplicate ids, a missing
// time limit and hazards that could stand still.
func (l Level) Validate() error {
	if l.ID == "" {
		return ValidationError{Code: "MISSING_ID", Message: "level has no id"}
	}

	if !core.NewAABB(0, 0, l.Width, l.Height).Valid() {
		return ValidationError{
			Code:    "DEGENERATE_AABB",
			Message: fmt.Sprintf("world size %gx%g must be positive", l.Width, l.Height),
		}
	}

	if !(l.TimeLimit > 0) || math.IsInf(l.TimeLimit, 0) {
		return ValidationError{
			Code:    "BAD_TIME_LIMIT",
			Message: fmt.Sprintf("time limit %g must be a positive number of seconds", l.TimeLimit),
		}
	}

	ids := make(map[int]int)
	for i, p := range l.Obstacles {
		box, _, ok := p.Box()
		if !ok {
			return ValidationError{
				Code:    "UNKNOWN_OBSTACLE",
				Message: fmt.Sprintf("obstacle %d has unknown type %q (want one of %s)", i, p.Type, strings.Join(ObstacleTypes(), ", ")),
			}
		}
		if p.ScaleX < 0 || p.ScaleY < 0 || !box.Valid() {
			return ValidationError{
				Code:    "DEGENERATE_AABB",
				Message: fmt.Sprintf("obstacle %d (%s) has a degenerate box %+v", i, p.Type, box),
			}
		}
		if p.ID < 0 {
			return ValidationError{
				Code:    "BAD_ID",
				Message: fmt.Sprintf("obstacle %d has negative id %d", i, p.ID),
			}
		}
		if p.ID == 0 {
			continue
		}
		if prev, dup := ids[p.ID]; dup {
			return ValidationError{
				Code:    "DUPLICATE_ID",
				Message: fmt.Sprintf("obstacles %d and %d share id %d", prev, i, p.ID),
			}
		}
		ids[p.ID] = i
	}

	h := l.Hazards
	if h.Count < 0 {
		return ValidationError{Code: "BAD_HAZARD_ROW", Message: "hazard count must not be negative"}
	}
	if h.Count > 0 && (!(h.MinSpeed > 0) || h.MaxSpeed < h.MinSpeed || math.IsInf(h.MaxSpeed, 0)) {
		return ValidationError{
			Code:    "BAD_HAZARD_SPEED",
			Message: fmt.Sprintf("hazard speed range [%g, %g] must be positive and ordered", h.MinSpeed, h.MaxSpeed),
		}
	}

	for i, pts := range [][]Point{{l.Spawn}, l.Coins, l.PowerUps} {
		for j, p := range pts {
			if math.IsNaN(p.X) || math.IsNaN(p.Y) || math.IsInf(p.X, 0) || math.IsInf(p.Y, 0) {
				return ValidationError{
					Code:    "BAD_POSITION",
					Message: fmt.Sprintf("position %d of group %d is not finite", j, i),
				}
			}
		}
	}

	return nil
}
