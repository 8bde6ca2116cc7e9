package core

// EventKind identifies something that happened during a simulation tick.
type EventKind int

const (
	EventCoinCollected EventKind = iota
	EventPowerUpCollected
	EventPowerUpExpired
	EventHazardTouched
	EventPlayerDefeated
	EventTimeUp
)

// String returns a human-readable name for the event kind.
func (k EventKind) String() string {
	switch k {
	case EventCoinCollected:
		return "coin_collected"
	case EventPowerUpCollected:
		return "powerup_collected"
	case EventPowerUpExpired:
		return "powerup_expired"
	case EventHazardTouched:
		return "hazard_touched"
	case EventPlayerDefeated:
		return "player_defeated"
	case EventTimeUp:
		return "time_up"
	default:
		return "unknown"
	}
}

// Sound names an audio cue the platform may play.
type Sound string

// SoundCatHit is played when the player touches a hazard.
const SoundCatHit Sound = "cat-hit"

// Event is emitted by the simulation for audio and UI consumers.
type Event struct {
	Kind     EventKind
	Tick     uint64 // Tick in which the event happened
	EntityID int    // Entity the event is about (0 when not applicable)
	Sound    Sound  // Audio cue to play, empty for silent events
}

// AudioSink plays sound cues raised by the simulation.
type AudioSink interface {
	Play(Sound)
}
