package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/vovakirdan/tui-platformer/internal/core"
)

// hudHeight is the number of status rows the platformer draws above the
// playfield.
const hudHeight = 1

var hudBand = lipgloss.Color("236")

// Terrain is drawn faint so sprites read in front of it.
var terrainColors = map[core.Color]lipgloss.Color{
	core.ColorGray:   "245",
	core.ColorOrange: "208",
}

// Sprites, HUD gauges and message text.
var spriteColors = map[core.Color]lipgloss.Color{
	core.ColorRed:         "1",
	core.ColorGreen:       "2",
	core.ColorYellow:      "3",
	core.ColorMagenta:     "5",
	core.ColorCyan:        "6",
	core.ColorWhite:       "7",
	core.ColorBrightGreen: "10",
}

// frameStyles maps cell colours to terminal styles, with a separate set for
// the HUD band.
type frameStyles struct {
	field map[core.Color]lipgloss.Style
	hud   map[core.Color]lipgloss.Style
}

func newFrameStyles() frameStyles {
	fs := frameStyles{
		field: map[core.Color]lipgloss.Style{core.ColorDefault: lipgloss.NewStyle()},
		hud:   map[core.Color]lipgloss.Style{core.ColorDefault: lipgloss.NewStyle().Background(hudBand)},
	}
	for c, fg := range terrainColors {
		fs.field[c] = lipgloss.NewStyle().Foreground(fg).Faint(true)
		fs.hud[c] = lipgloss.NewStyle().Foreground(fg).Background(hudBand)
	}
	for c, fg := range spriteColors {
		fs.field[c] = lipgloss.NewStyle().Foreground(fg).Bold(true)
		fs.hud[c] = lipgloss.NewStyle().Foreground(fg).Background(hudBand).Bold(true)
	}
	return fs
}

func (fs frameStyles) style(c core.Color, row int) lipgloss.Style {
	set := fs.field
	if row < hudHeight {
		set = fs.hud
	}
	if st, ok := set[c]; ok {
		return st
	}
	return set[core.ColorDefault]
}

// render converts the screen buffer to styled text. Adjacent cells of the
// same colour are written as one run.
func (fs frameStyles) render(s *core.Screen) string {
	var sb strings.Builder
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	run := make([]rune, 0, s.Width())
	for y := range s.Height() {
		if y > 0 {
			sb.WriteByte('\n')
		}

		run = run[:0]
		current := s.GetCell(0, y).Color
		for x := range s.Width() {
			cell := s.GetCell(x, y)
			if cell.Color != current {
				sb.WriteString(fs.style(current, y).Render(string(run)))
				run = run[:0]
				current = cell.Color
			}
			run = append(run, cell.Rune)
		}
		if len(run) > 0 {
			sb.WriteString(fs.style(current, y).Render(string(run)))
		}
	}
	return sb.String()
}
