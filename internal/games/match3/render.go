package match3

import (
	"fmt"

	"github.com/vovakirdan/tui-match3/internal/core"
	"github.com/vovakirdan/tui-match3/internal/games/match3/board"
)

// Board cell layout
const (
	cellW   = 3  // characters per board cell
	hudW    = 28 // HUD panel width
	margin  = 2
	minRows = 4 // rows below the board reserved for status and controls
)

type tileLook struct {
	glyph rune
	name  string
	color core.Color
}

var tileLooks = [...]tileLook{
	board.Empty:   {'·', "Empty", core.ColorGray},
	board.Chaac:   {'C', "Chaac", core.ColorBrightGreen},
	board.Indra:   {'I', "Indra", core.ColorBrightBlue},
	board.LeiGong: {'L', "Lei Gong", core.ColorBrightRed},
	board.Odin:    {'O', "Odin", core.ColorCyan},
	board.Perun:   {'P', "Perun", core.ColorOrange},
	board.Thor:    {'T', "Thor", core.ColorBrightYellow},
	board.Zeus:    {'Z', "Zeus", core.ColorBrightWhite},
	board.Raijin:  {'R', "Raijin", core.ColorBrightMagenta},
}

func look(t board.TileType) tileLook {
	if int(t) < len(tileLooks) {
		return tileLooks[t]
	}
	return tileLook{'?', t.String(), core.ColorDefault}
}

// TileName returns the display name of a tile kind.
func TileName(t board.TileType) string {
	return look(t).name
}

// Render draws the board, the HUD and any overlay.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()
	if g.eng == nil || g.eng.Grid() == nil {
		dst.DrawTextCentered(dst.Height()/2, g.status, core.ColorBrightRed)
		return
	}

	grid := g.eng.Grid()
	boardW := grid.Cols()*cellW + 2
	boardH := grid.Rows() + 2
	if dst.Width() < boardW+hudW+2*margin || dst.Height() < boardH+minRows {
		dst.DrawTextCentered(dst.Height()/2-1, "Terminal too small", core.ColorBrightRed)
		dst.DrawTextCentered(dst.Height()/2+1,
			fmt.Sprintf("Need %dx%d", boardW+hudW+2*margin, boardH+minRows), core.ColorGray)
		return
	}

	area := core.NewRect(margin, 1, boardW, boardH)
	dst.DrawTextCentered(0, g.Title(), core.ColorBrightYellow)
	dst.DrawBox(area, core.ColorGray)
	g.drawBoard(dst, area.Inset(1), grid)
	g.drawHUD(dst, area.Right()+margin, area.Y)

	dst.DrawStyled(margin, area.Bottom(), g.status, core.ColorWhite, 0)
	dst.DrawStyled(margin, area.Bottom()+1,
		"arrows move  enter pick  h hint  x shuffle  1/2 boost  p pause", core.ColorGray, 0)

	switch g.state {
	case StatePaused:
		g.drawOverlay(dst, "PAUSED", "Press P to resume")
	case StateGameOver:
		g.drawGameOver(dst)
	case StateFailed:
		g.drawOverlay(dst, "BOARD FAILED", g.status)
	}
}

func (g *Game) drawBoard(dst *core.Screen, r core.Rect, grid *board.Grid) {
	locked := g.eng.Locked()
	for row := 0; row < grid.Rows(); row++ {
		for col := 0; col < grid.Cols(); col++ {
			at := board.C(row, col)
			c := grid.At(at)
			l := look(c.Type)

			var attr core.Attr
			left, right := ' ', ' '
			glyph := l.glyph
			switch {
			case c.Matching:
				glyph = '*'
				attr |= core.AttrBold
			case c.Moving || locked:
				attr |= core.AttrFaint
			}
			if c.Powerup {
				left, right = '<', '>'
				attr |= core.AttrBold
			}
			if c.State == board.Selected {
				left, right = '[', ']'
				attr |= core.AttrBold
			}
			if g.hintFlicker(at) {
				attr |= core.AttrReverse
			}
			if at == g.cursor && g.state == StatePlaying {
				attr |= core.AttrReverse
				attr &^= core.AttrFaint
			}

			x, y := r.X+col*cellW, r.Y+row
			dst.SetCell(x, y, core.Cell{Rune: left, Color: l.color, Attr: attr})
			dst.SetCell(x+1, y, core.Cell{Rune: glyph, Color: l.color, Attr: attr})
			dst.SetCell(x+2, y, core.Cell{Rune: right, Color: l.color, Attr: attr})
		}
	}
}

func (g *Game) drawHUD(dst *core.Screen, x, y int) {
	line := func(text string, c core.Color) {
		dst.DrawStyled(x, y, text, c, 0)
		y++
	}

	if g.mode == ModeDuel {
		line(fmt.Sprintf("Round %d/%d", g.round, g.cfg.Round.Rounds), core.ColorBrightWhite)
		secs := max(g.roundTicks, 0) / g.runtime.TickRate
		line(fmt.Sprintf("Time  %02d:%02d", secs/60, secs%60), core.ColorWhite)
	} else {
		line("Zen", core.ColorBrightWhite)
		line(fmt.Sprintf("Time  %ds", int(g.tickCount)/g.runtime.TickRate), core.ColorWhite)
	}
	y++

	round := g.ledger.Stats()
	pending := g.ledger.Pending()
	line(fmt.Sprintf("Attack   %5d", round.Attack), core.ColorBrightRed)
	line(fmt.Sprintf("Defence  %5d", round.Defence), core.ColorBrightBlue)
	if pending.Sum() > 0 {
		line(fmt.Sprintf("Pending  +%d/+%d", pending.Attack, pending.Defence), core.ColorYellow)
	}
	if combo := g.eng.Combo(); combo > 0 {
		line(fmt.Sprintf("Chain    %d", combo+1), core.ColorBrightYellow)
	}
	y++

	lucky := g.ledger.Lucky()
	dst.DrawStyled(x, y, "Lucky    ", core.ColorWhite, 0)
	dst.DrawStyled(x+9, y, TileName(lucky), look(lucky).color, core.AttrBold)
	y++
	line(fmt.Sprintf("Total    %d", g.Score().Sum()), core.ColorWhite)
	y++

	line(fmt.Sprintf("Hints %d  Shuffles %d", g.items.Hints, g.items.Shuffles), core.ColorGray)
	line(fmt.Sprintf("Boosts  A:%d  D:%d", g.items.AttackBoosts, g.items.DefenceBoosts), core.ColorGray)
}

func (g *Game) drawGameOver(dst *core.Screen) {
	lines := []string{"Round  You (A/D)   Foe (A/D)"}
	wins := 0
	for _, r := range g.rounds {
		mark := " "
		if r.Won() {
			mark = "*"
			wins++
		}
		lines = append(lines, fmt.Sprintf("%s%-5d %4d/%-4d   %4d/%-4d",
			mark, r.Round, r.Attack, r.Defence, r.OpponentAttack, r.OpponentDefence))
	}
	lines = append(lines, "", fmt.Sprintf("Rounds won: %d/%d  Score: %d", wins, len(g.rounds), g.Score().Sum()),
		"R: restart  B: back  Q: quit")
	g.drawPanel(dst, "GAME OVER", lines)
}

func (g *Game) drawOverlay(dst *core.Screen, title, subtitle string) {
	g.drawPanel(dst, title, []string{subtitle})
}

// drawPanel draws a boxed panel centered on screen.
func (g *Game) drawPanel(dst *core.Screen, title string, lines []string) {
	w := len(title) + 4
	for _, l := range lines {
		w = max(w, len(l)+4)
	}
	h := len(lines) + 4
	box := dst.Bounds().CenterIn(w, h)

	for y := box.Y; y < box.Bottom(); y++ {
		for x := box.X; x < box.Right(); x++ {
			dst.Set(x, y, ' ')
		}
	}
	dst.DrawBox(box, core.ColorBrightWhite)
	dst.DrawStyled(box.X+(w-len(title))/2, box.Y+1, title, core.ColorBrightYellow, core.AttrBold)
	for i, l := range lines {
		dst.DrawText(box.X+2, box.Y+3+i, l)
	}
}
