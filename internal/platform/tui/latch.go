package tui

import (
	"time"

	"github.com/vovakirdan/tui-platformer/internal/core"
)

// Terminals report key presses and auto-repeats but never releases. A key is
// treated as held until no report arrives within the hold window. A key seen
// only once gets the longer initial window so the auto-repeat delay does not
// read as a release. A report arriving later than the repeat window after the
// previous one counts as a new press.
const (
	DefaultInitialHold = 550 * time.Millisecond
	DefaultRepeatHold  = 120 * time.Millisecond
)

type keyState struct {
	last     time.Time
	repeated bool
}

// KeyLatch turns a stream of key reports into per-tick input frames.
type KeyLatch struct {
	initialHold time.Duration
	repeatHold  time.Duration
	keys        map[core.Action]*keyState
	pressed     map[core.Action]bool
}

// NewKeyLatch creates a latch with the given hold windows.
func NewKeyLatch(initialHold, repeatHold time.Duration) *KeyLatch {
	return &KeyLatch{
		initialHold: initialHold,
		repeatHold:  repeatHold,
		keys:        make(map[core.Action]*keyState),
		pressed:     make(map[core.Action]bool),
	}
}

// Report records a key report for action at time now.
func (l *KeyLatch) Report(a core.Action, now time.Time) {
	if a == core.ActionNone {
		return
	}

	// Opposite directions cancel each other.
	switch a {
	case core.ActionLeft:
		delete(l.keys, core.ActionRight)
	case core.ActionRight:
		delete(l.keys, core.ActionLeft)
	}

	if k, ok := l.keys[a]; ok && l.alive(k, now) {
		gap := now.Sub(k.last)
		k.last = now
		if gap <= l.repeatHold {
			k.repeated = true
			return
		}
		// Slower than the repeat cadence: a second tap.
		k.repeated = false
		l.pressed[a] = true
		return
	}

	l.keys[a] = &keyState{last: now}
	l.pressed[a] = true
}

// Frame returns the input for a tick sampled at now and consumes the
// pending fresh presses.
func (l *KeyLatch) Frame(now time.Time) core.InputFrame {
	f := core.NewInputFrame()

	for a, k := range l.keys {
		if !l.alive(k, now) {
			delete(l.keys, a)
			continue
		}
		f.Hold(a)
	}
	for a := range l.pressed {
		f.Press(a)
	}
	clear(l.pressed)

	return f
}

// Reset forgets every key.
func (l *KeyLatch) Reset() {
	clear(l.keys)
	clear(l.pressed)
}

func (l *KeyLatch) alive(k *keyState, now time.Time) bool {
	window := l.initialHold
	if k.repeated {
		window = l.repeatHold
	}
	return now.Sub(k.last) <= window
}
