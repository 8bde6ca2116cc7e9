package platformer

import "github.com/vovakirdan/tui-platformer/internal/core"

func (g *Game) collectCoin(_, coin *Entity) {
	coin.kill()
	g.state.Score += g.cfg.Coin.Value
	g.state.CoinsCollected++
	g.emit(core.EventCoinCollected, coin.ID, "")
}

func (g *Game) collectPowerUp(_, powerUp *Entity) {
	powerUp.kill()
	g.state.PowerUp.Arm(g.state.Clock, g.cfg.PowerUp.Duration)
	g.state.showMessage(MessagePowerBoost, core.ColorGreen)
	g.state.Tint = core.ColorGreen
	g.emit(core.EventPowerUpCollected, powerUp.ID, "")
}

func (g *Game) expirePowerUp() {
	// Time Up keeps its message once shown.
	if g.state.Phase == PhasePlaying {
		g.state.hideMessage()
	}
	g.state.Tint = core.ColorWhite
	g.emit(core.EventPowerUpExpired, 0, "")
}

// touchHazard damages the player and knocks the hazard back: it turns
// around, hops, and is moved away from the player.
func (g *Game) touchHazard(player, hazard *Entity) {
	ps := player.Player
	ps.Health = max(0, ps.Health-g.hazardDamage)

	hb := &hazard.Body
	hb.Vel.X = -hb.Vel.X
	hb.Vel.Y = -g.cfg.Hazard.HopImpulse
	if player.Body.Center().X < hb.Center().X {
		hb.Pos.X += g.cfg.Hazard.Knockback
	} else {
		hb.Pos.X -= g.cfg.Hazard.Knockback
	}
	keepInside(hb, g.world.Bounds)

	g.emit(core.EventHazardTouched, hazard.ID, core.SoundCatHit)

	if ps.Health == 0 {
		g.defeatPlayer()
	}
}

// defeatPlayer respawns the player at the spawn point with full health.
func (g *Game) defeatPlayer() {
	g.state.Defeats++
	g.emit(core.EventPlayerDefeated, g.player.ID, "")

	p := g.player
	p.Body.SetCenter(p.Player.Spawn)
	p.Body.Vel = core.Vec2{}
	p.Body.Touching = Touching{}
	p.Player.Health = p.Player.MaxHealth
}

func (g *Game) timeUp() {
	g.state.Phase = PhaseTimeUp
	g.state.GameOver = true
	g.state.PlayerAlive = false
	g.player.kill()
	g.player.Body.Vel = core.Vec2{}
	g.state.showMessage(MessageTimeUp, core.ColorRed)
	g.emit(core.EventTimeUp, 0, "")
}
