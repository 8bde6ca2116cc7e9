package platformer

import "github.com/vovakirdan/tui-platformer/internal/core"

// Kind classifies entities.
type Kind int

const (
	KindPlayer Kind = iota
	KindCoin
	KindPowerUp
	KindHazard
	KindObstacle
)

// String returns the kind name used in snapshots and logs.
func (k Kind) String() string {
	switch k {
	case KindPlayer:
		return "player"
	case KindCoin:
		return "coin"
	case KindPowerUp:
		return "powerup"
	case KindHazard:
		return "hazard"
	case KindObstacle:
		return "obstacle"
	default:
		return "unknown"
	}
}

// ObstacleClass separates walkable platforms from walls.
// Only platforms drive hazard patrol.
type ObstacleClass int

const (
	ClassPlatform ObstacleClass = iota
	ClassWall
)

// Facing is the horizontal direction the player looks at.
type Facing int

const (
	FacingRight Facing = iota
	FacingLeft
)

// Anim is the player's animation state.
type Anim int

const (
	AnimIdle Anim = iota
	AnimRunLeft
	AnimRunRight
)

// String returns the animation name.
func (a Anim) String() string {
	switch a {
	case AnimRunLeft:
		return "left"
	case AnimRunRight:
		return "right"
	default:
		return "turn"
	}
}

// PlayerState is the payload of the player entity.
type PlayerState struct {
	Health    int
	MaxHealth int
	Facing    Facing
	Anim      Anim
	Spawn     core.Vec2 // Centre of the respawn point
}

// HazardState is the payload of a hazard entity.
type HazardState struct {
	BaseSpeed float64 // Patrol speed magnitude before difficulty scaling
}

// ObstacleInfo is the payload of a static obstacle.
type ObstacleInfo struct {
	Class ObstacleClass
	Type  string // Catalogue name, e.g. "platform-100"
}

// Entity is anything that lives in the world.
// Exactly one of the payload pointers is set for player, hazard and obstacle
// entities; coins and power-ups carry none.
type Entity struct {
	ID    int
	Kind  Kind
	Body  Body
	Alive bool

	Player   *PlayerState
	Hazard   *HazardState
	Obstacle *ObstacleInfo
}

// Direction returns the hazard's patrol direction: 1 right, -1 left.
func (e *Entity) Direction() int {
	if e.Body.Vel.X < 0 {
		return -1
	}
	return 1
}

// kill marks the entity as removed from play.
func (e *Entity) kill() {
	e.Alive = false
}
