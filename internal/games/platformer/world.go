package platformer

import (
	"sort"

	"github.com/vovakirdan/tui-platformer/internal/core"
)

// Bounds is the rectangle dynamic bodies are kept inside.
// Every edge, the top included, stops bodies that collide with the bounds.
type Bounds struct {
	Box core.AABB
}

// World holds the level geometry: bounds and static obstacles.
// Obstacle slices are sorted by ascending ID.
type World struct {
	Bounds    Bounds
	Platforms []*Entity
	Walls     []*Entity
}

// Width returns the world width.
func (w *World) Width() float64 { return w.Bounds.Box.W }

// Height returns the world height.
func (w *World) Height() float64 { return w.Bounds.Box.H }

// Obstacles returns every static obstacle ordered by ID.
func (w *World) Obstacles() []*Entity {
	all := make([]*Entity, 0, len(w.Platforms)+len(w.Walls))
	all = append(all, w.Platforms...)
	all = append(all, w.Walls...)
	sortByID(all)
	return all
}

func sortByID(es []*Entity) {
	sort.SliceStable(es, func(i, j int) bool { return es[i].ID < es[j].ID })
}
