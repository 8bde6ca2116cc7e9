package platformer

// DeadlineTimer fires once when the simulation clock reaches its deadline.
// Arming an armed timer replaces the deadline; effects never stack.
type DeadlineTimer struct {
	deadline float64
	armed    bool
}

// Arm sets the deadline to now + d.
func (t *DeadlineTimer) Arm(now, d float64) {
	t.deadline = now + d
	t.armed = true
}

// Armed reports whether the timer is waiting to fire.
func (t *DeadlineTimer) Armed() bool {
	return t.armed
}

// Deadline returns the pending deadline, if any.
func (t *DeadlineTimer) Deadline() (float64, bool) {
	return t.deadline, t.armed
}

// Fire disarms the timer and returns true if now has reached the deadline.
func (t *DeadlineTimer) Fire(now float64) bool {
	if !t.armed || now < t.deadline {
		return false
	}
	t.armed = false
	return true
}

// Remaining returns the seconds left before the deadline, or 0.
func (t *DeadlineTimer) Remaining(now float64) float64 {
	if !t.armed || now >= t.deadline {
		return 0
	}
	return t.deadline - now
}
