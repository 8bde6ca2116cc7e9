package platformer

import "github.com/vovakirdan/tui-platformer/internal/core"

// applyInput sets the player's horizontal speed from the held direction and
// starts a jump on a fresh jump press while standing on something.
// Right wins when both directions are held.
func (g *Game) applyInput(in core.InputFrame) {
	if !g.state.PlayerAlive {
		return
	}

	p := g.player
	ps := p.Player
	pc := g.cfg.Player

	right, left, jump := pc.RunRightSpeed, pc.RunLeftSpeed, pc.JumpImpulse
	if g.state.PowerUpActive() {
		right, left, jump = pc.PoweredRunRightSpeed, pc.PoweredRunLeftSpeed, pc.PoweredJumpImpulse
	}

	switch {
	case in.Has(core.ActionRight):
		p.Body.Vel.X = right
		ps.Facing = FacingRight
		ps.Anim = AnimRunRight
		g.state.PlayerMoved = true
	case in.Has(core.ActionLeft):
		p.Body.Vel.X = -left
		ps.Facing = FacingLeft
		ps.Anim = AnimRunLeft
		g.state.PlayerMoved = true
	default:
		p.Body.Vel.X = 0
		ps.Anim = AnimIdle
	}

	if in.JustPressed(core.ActionJump) && p.Body.Touching.Down {
		p.Body.Vel.Y = -jump
		g.state.PlayerMoved = true
	}
}
