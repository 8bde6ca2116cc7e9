package platformer

import (
	"fmt"
	"math"
	"strings"

	"github.com/vovakirdan/tui-platformer/internal/core"
)

// Visual characters for rendering
const (
	PlatformChar = '▀'
	WallChar     = '▓'
	CoinChar     = 'o'
	PowerUpChar  = '*'
	HazardChar   = 'ж'
	PlayerChar   = '█'
	PlayerRight  = '▶'
	PlayerLeft   = '◀'
)

// hudRows is the number of screen rows above the playfield.
const hudRows = 1

// viewport maps world units to screen cells. A cell is twice as tall as it
// is wide, and the whole world height fits the playfield.
type viewport struct {
	left, top    float64 // World position of the top-left cell
	cellW, cellH float64 // World units per cell
}

func newViewport(camera core.Vec2, cols, rows int, worldW, worldH float64) viewport {
	rows = core.Max(rows, 1)
	cols = core.Max(cols, 1)

	cellH := worldH / float64(rows)
	cellW := cellH / 2
	viewW := cellW * float64(cols)

	left := core.ClampF(camera.X-viewW/2, 0, math.Max(0, worldW-viewW))
	return viewport{left: left, top: 0, cellW: cellW, cellH: cellH}
}

// rect converts a world box into screen cells. Edges snap to the nearest
// cell boundary so boxes that touch in the world touch on screen.
func (v viewport) rect(b core.AABB) core.Rect {
	x0 := int(math.Round((b.X - v.left) / v.cellW))
	x1 := int(math.Round((b.Right() - v.left) / v.cellW))
	y0 := int(math.Round((b.Y - v.top) / v.cellH))
	y1 := int(math.Round((b.Bottom() - v.top) / v.cellH))
	return core.NewRect(x0, y0+hudRows, core.Max(x1-x0, 1), core.Max(y1-y0, 1))
}

// Render draws the visible part of the world with a HUD line on top.
// The view follows the player horizontally and never leaves the world.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()
	snap := g.Snapshot()
	vp := newViewport(snap.Camera, dst.Width(), dst.Height()-hudRows, g.world.Width(), g.world.Height())

	for _, e := range snap.Entities {
		r := vp.rect(e.Box)
		switch e.Kind {
		case KindObstacle:
			if e.Class == ClassWall {
				dst.DrawRectColored(r, WallChar, core.ColorOrange)
			} else {
				dst.DrawRectColored(r, PlatformChar, core.ColorGray)
			}
		case KindCoin:
			dst.DrawRectColored(r, CoinChar, core.ColorYellow)
		case KindPowerUp:
			dst.DrawRectColored(r, PowerUpChar, core.ColorBrightGreen)
		case KindHazard:
			dst.DrawRectColored(r, HazardChar, core.ColorMagenta)
		}
	}

	if snap.Player.Alive {
		g.drawPlayer(dst, vp.rect(snap.Player.Box), snap.Player)
	}

	g.drawHUD(dst, snap)

	if snap.Message.Visible {
		dst.DrawTextCenteredColored(hudRows+3, " "+snap.Message.Text+" ", snap.Message.Color)
	}
	if snap.ShowStartPrompt {
		dst.DrawTextCentered(hudRows+1, " ←/→ run  ↑ jump  P pause ")
	}

	if snap.Paused {
		drawCenteredMessage(dst, "PAUSED", "Press P to resume")
	}
	if snap.GameOver {
		drawCenteredMessage(dst, "TIME UP", fmt.Sprintf("Score: %d  |  R restart  Q quit", snap.Score))
	}
}

func (g *Game) drawPlayer(dst *core.Screen, r core.Rect, p PlayerView) {
	dst.DrawRectColored(r, PlayerChar, p.Tint)

	eye := PlayerRight
	x := r.Right() - 1
	if p.Facing == FacingLeft {
		eye = PlayerLeft
		x = r.X
	}
	dst.SetColored(x, r.Y, eye, p.Tint)
}

func (g *Game) drawHUD(dst *core.Screen, snap Snapshot) {
	score := fmt.Sprintf(" Score: %d ", snap.Score)
	dst.DrawText(1, 0, score)

	x := 1 + len(score) + 1
	dst.DrawText(x, 0, "HP")
	x += 3
	healthColor := core.ColorGreen
	if snap.HealthFraction < 0.3 {
		healthColor = core.ColorRed
	}
	dst.DrawTextColored(x, 0, bar(snap.HealthFraction, 10), healthColor)
	x += 13

	dst.DrawText(x, 0, "Time")
	x += 5
	dst.DrawTextColored(x, 0, bar(snap.TimeLeftFraction, 10), core.ColorCyan)
	x += 13
	dst.DrawText(x, 0, fmt.Sprintf("%3ds", int(math.Ceil(snap.TimeLeft))))

	if snap.PowerUpActive {
		boost := fmt.Sprintf(" Boost %2.0fs ", math.Ceil(snap.PowerUpLeft))
		dst.DrawTextColored(dst.Width()-len(boost)-1, 0, boost, core.ColorBrightGreen)
	}
}

// bar renders a fraction as a fixed-width gauge.
func bar(fraction float64, width int) string {
	filled := int(math.Round(core.ClampF(fraction, 0, 1) * float64(width)))
	return "[" + strings.Repeat("=", filled) + strings.Repeat(" ", width-filled) + "]"
}

// drawCenteredMessage draws a message box in the center of the screen.
func drawCenteredMessage(dst *core.Screen, title, subtitle string) {
	w := dst.Width()
	h := dst.Height()

	boxW := core.Max(len(title), len(subtitle)) + 4
	boxH := 5
	boxX := (w - boxW) / 2
	boxY := (h - boxH) / 2

	dst.DrawRect(core.NewRect(boxX, boxY, boxW, boxH), ' ')
	dst.DrawBox(core.NewRect(boxX, boxY, boxW, boxH))

	dst.DrawText(boxX+(boxW-len(title))/2, boxY+1, title)
	dst.DrawText(boxX+(boxW-len(subtitle))/2, boxY+3, subtitle)
}
