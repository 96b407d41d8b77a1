package game

import (
	"fmt"
	"strings"

	"github.com/bubbles-vole/snake-game-project/internal/core"
)

// Board glyphs, matching the terminal classic.
const (
	glyphHead     = '@'
	glyphBody     = '*'
	glyphObstacle = '█'
	glyphFood     = '#'
)

// Render draws the full round onto the screen buffer: border, obstacles,
// food, snake, then the HUD over the border rows. When the round is over,
// a centered overlay replaces the middle of the board.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	grid := g.state.Grid
	dst.DrawBox(core.NewRect(0, 0, grid.W, grid.H))

	for _, o := range g.state.Obstacles {
		dst.SetCell(o.X, o.Y, glyphObstacle, core.ColorGray)
	}

	food := g.state.Food
	dst.SetCell(food.X, food.Y, glyphFood, core.ColorBrightRed)

	for i, seg := range g.state.Snake {
		if i == 0 {
			dst.SetCell(seg.X, seg.Y, glyphHead, core.ColorBrightGreen)
		} else {
			dst.SetCell(seg.X, seg.Y, glyphBody, core.ColorGreen)
		}
	}

	g.renderHUD(dst)

	if g.state.Over {
		g.renderGameOver(dst)
	}
}

// renderHUD writes the status texts over the border: score top-left,
// difficulty top-right, controls on the bottom row.
func (g *Game) renderHUD(dst *core.Screen) {
	grid := g.state.Grid

	score := fmt.Sprintf(" Score: %d ", g.state.Score)
	dst.DrawTextColor(2, 0, score, core.ColorBrightYellow)

	label := fmt.Sprintf(" %s ", strings.ToUpper(g.difficulty))
	dst.DrawTextColor(grid.W-len(label)-2, 0, label, core.ColorCyan)

	controls := " Arrows/WASD: move  Q: quit "
	x := (grid.W - len(controls)) / 2
	dst.DrawTextColor(x, grid.H-1, controls, core.ColorGray)
}

// renderGameOver draws the end-of-round overlay box.
func (g *Game) renderGameOver(dst *core.Screen) {
	grid := g.state.Grid
	lines := []string{
		"GAME OVER",
		fmt.Sprintf("Final score: %d", g.state.Score),
		"Press Enter",
	}

	boxW := 0
	for _, line := range lines {
		boxW = core.Max(boxW, len(line))
	}
	boxW += 6
	boxH := len(lines) + 4

	box := core.NewRect((grid.W-boxW)/2, (grid.H-boxH)/2, boxW, boxH)
	dst.FillRect(box)
	dst.DrawBox(box)
	for i, line := range lines {
		dst.DrawTextCentered(box.Y+2+i, line)
	}
}
