package platformer

import "github.com/vovakirdan/tui-platformer/internal/core"

// Phase is the top-level state of a run.
type Phase int

const (
	PhasePlaying Phase = iota
	PhaseTimeUp
)

// String returns the phase name.
func (p Phase) String() string {
	switch p {
	case PhasePlaying:
		return "playing"
	case PhaseTimeUp:
		return "time_up"
	default:
		return "unknown"
	}
}

// Status messages shown by the UI.
const (
	MessagePowerBoost = "Power Boost"
	MessageTimeUp     = "Time Up"
)

// Message is the centred status line.
type Message struct {
	Text    string
	Visible bool
	Color   core.Color
}

// State is the mutable game state of one run.
type State struct {
	Score     int
	Clock     float64 // Simulated seconds since reset
	TimeLimit float64 // Seconds
	PowerUp   DeadlineTimer
	Phase     Phase
	GameOver  bool // Never reverts within a run

	Paused      bool
	PlayerAlive bool
	PlayerMoved bool

	Defeats        int
	CoinsCollected int

	Message Message
	Tint    core.Color
}

func newState(timeLimit float64) State {
	return State{
		TimeLimit:   timeLimit,
		Phase:       PhasePlaying,
		PlayerAlive: true,
		Tint:        core.ColorWhite,
	}
}

// PowerUpActive reports whether the power boost is in effect.
func (s *State) PowerUpActive() bool {
	return s.PowerUp.Armed()
}

// TimeLeft returns the seconds remaining on the countdown.
func (s *State) TimeLeft() float64 {
	return max(0, s.TimeLimit-s.Clock)
}

// TimeLeftFraction returns the remaining share of the countdown in [0, 1].
func (s *State) TimeLeftFraction() float64 {
	if s.TimeLimit <= 0 {
		return 0
	}
	return core.ClampF(s.TimeLeft()/s.TimeLimit, 0, 1)
}

func (s *State) showMessage(text string, color core.Color) {
	s.Message = Message{Text: text, Visible: true, Color: color}
}

func (s *State) hideMessage() {
	s.Message.Visible = false
}
