package game

import (
	"fmt"

	"github.com/mattn/go-runewidth"

	"github.com/vovakirdan/rps-arcade/internal/core"
	"github.com/vovakirdan/rps-arcade/internal/draw"
)

// Rows the text layout reserves around the play area.
const (
	hudRows    = 1
	footerRows = 2
)

// Render draws the whole match in text mode: score header, play area
// and instruction footer.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()
	w, h := dst.Width(), dst.Height()
	if w <= 0 || h <= 0 {
		return
	}

	g.renderHUD(dst)

	area := core.NewRect(0, hudRows, w, max(h-hudRows-footerRows, 1))
	if g.cells == nil {
		g.cells = draw.NewCells(dst, area, g.viewW, g.viewH)
	} else {
		g.cells.SetScreen(dst)
		g.cells.SetRegion(area)
	}
	g.Draw(g.cells)

	g.renderFooter(dst)
}

// renderHUD draws "YOU 1 vs 0 COMPUTER" centered on the top row.
func (g *Game) renderHUD(dst *core.Screen) {
	parts := []struct {
		text  string
		color core.Color
	}{
		{g.cfg.Labels.Player + " ", core.ColorWhite},
		{fmt.Sprint(g.board.Player()), core.ColorPlayer},
		{"  vs  ", core.ColorGray},
		{fmt.Sprint(g.board.Computer()), core.ColorComputer},
		{" " + g.cfg.Labels.Computer, core.ColorWhite},
	}

	width := 0
	for _, p := range parts {
		width += runewidth.StringWidth(p.text)
	}
	x := (dst.Width() - width) / 2
	for _, p := range parts {
		dst.DrawColorText(x, 0, p.text, p.color)
		x += runewidth.StringWidth(p.text)
	}
}

func (g *Game) renderFooter(dst *core.Screen) {
	h := dst.Height()
	text, color := g.Instruction()
	dst.DrawColorTextCentered(h-2, text, color)

	counter := fmt.Sprintf("Wins: %d / %d", g.board.Leader(), g.board.Target())
	dst.DrawColorTextCentered(h-1, counter, core.ColorCounter)
}
