package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/arcadeworks/breaker/internal/game"
)

// Visual characters for rendering
const (
	paddleChar  = '='
	ballChar    = '●'
	borderVert  = '│'
	borderHoriz = '─'
	borderTL    = '┌'
	borderTR    = '┐'
	borderBL    = '└'
	borderBR    = '┘'
)

// Block glyphs by remaining density: tougher blocks render denser.
var blockGlyphs = []rune{'░', '▓', '█'}

// paint identifies the style bucket a cell belongs to.
type paint int

const (
	paintNone paint = iota
	paintBorder
	paintBlockSoft
	paintBlockMid
	paintBlockHard
	paintPaddle
	paintBall
	paintText
)

var paintStyles = map[paint]lipgloss.Style{
	paintNone:      lipgloss.NewStyle(),
	paintBorder:    lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
	paintBlockSoft: lipgloss.NewStyle().Foreground(lipgloss.Color("2")),
	paintBlockMid:  lipgloss.NewStyle().Foreground(lipgloss.Color("3")),
	paintBlockHard: lipgloss.NewStyle().Foreground(lipgloss.Color("1")),
	paintPaddle:    lipgloss.NewStyle().Foreground(lipgloss.Color("12")),
	paintBall:      lipgloss.NewStyle().Foreground(lipgloss.Color("15")),
	paintText:      lipgloss.NewStyle().Foreground(lipgloss.Color("7")),
}

type cell struct {
	r rune
	p paint
}

// canvas is a simple terminal cell buffer the game state is projected
// onto before styling.
type canvas struct {
	w, h  int
	cells [][]cell
}

func newCanvas(w, h int) *canvas {
	cells := make([][]cell, h)
	for y := range cells {
		cells[y] = make([]cell, w)
		for x := range cells[y] {
			cells[y][x] = cell{r: ' ', p: paintNone}
		}
	}
	return &canvas{w: w, h: h, cells: cells}
}

func (c *canvas) set(x, y int, r rune, p paint) {
	if x < 0 || x >= c.w || y < 0 || y >= c.h {
		return
	}
	c.cells[y][x] = cell{r: r, p: p}
}

func (c *canvas) drawText(x, y int, text string, p paint) {
	for i, r := range text {
		c.set(x+i, y, r, p)
	}
}

func (c *canvas) drawTextCentered(y int, text string, p paint) {
	c.drawText((c.w-len(text))/2, y, text, p)
}

// String renders the buffer, grouping adjacent cells with the same
// paint to minimize ANSI escape sequences.
func (c *canvas) String() string {
	var sb strings.Builder
	sb.Grow(c.w*c.h*2 + c.h)

	for y := 0; y < c.h; y++ {
		if y > 0 {
			sb.WriteRune('\n')
		}
		x := 0
		for x < c.w {
			start := c.cells[y][x].p
			var run strings.Builder
			for x < c.w && c.cells[y][x].p == start {
				run.WriteRune(c.cells[y][x].r)
				x++
			}
			sb.WriteString(paintStyles[start].Render(run.String()))
		}
	}
	return sb.String()
}

// RenderState projects a simulation state onto a terminal of the given
// size: a HUD row, a bordered playfield, and optional centered overlay
// lines. All coordinate scaling happens here; the core knows nothing
// about cells.
func RenderState(st game.State, width, height int, hud string, overlay []string) string {
	cv := newCanvas(width, height)

	cv.drawText(1, 0, hud, paintText)

	// Playfield border below the HUD row.
	top, bottom := 1, height-1
	left, right := 0, width-1
	for x := left + 1; x < right; x++ {
		cv.set(x, top, borderHoriz, paintBorder)
		cv.set(x, bottom, borderHoriz, paintBorder)
	}
	for y := top + 1; y < bottom; y++ {
		cv.set(left, y, borderVert, paintBorder)
		cv.set(right, y, borderVert, paintBorder)
	}
	cv.set(left, top, borderTL, paintBorder)
	cv.set(right, top, borderTR, paintBorder)
	cv.set(left, bottom, borderBL, paintBorder)
	cv.set(right, bottom, borderBR, paintBorder)

	innerW := float64(right - left - 1)
	innerH := float64(bottom - top - 1)
	if innerW < 1 || innerH < 1 {
		return cv.String()
	}

	// Board units -> interior cells.
	toCellX := func(bx float64) int {
		return left + 1 + int(bx/st.Size.Width*innerW)
	}
	toCellY := func(by float64) int {
		return top + 1 + int(by/st.Size.Height*innerH)
	}

	for _, b := range st.Blocks {
		glyph := blockGlyphs[min(b.Density, len(blockGlyphs))-1]
		p := blockPaint(b.Density)
		y := toCellY(b.Position.Y)
		for x := toCellX(b.Position.X); x < toCellX(b.Position.X+b.Width); x++ {
			cv.set(x, y, glyph, p)
		}
	}

	py := toCellY(st.Paddle.Position.Y)
	for x := toCellX(st.Paddle.Position.X); x < toCellX(st.Paddle.Position.X+st.Paddle.Width); x++ {
		cv.set(x, py, paddleChar, paintPaddle)
	}

	cv.set(toCellX(st.Ball.Center.X), toCellY(st.Ball.Center.Y), ballChar, paintBall)

	for i, line := range overlay {
		cv.drawTextCentered(height/2-len(overlay)/2+i, line, paintText)
	}

	return cv.String()
}

func blockPaint(density int) paint {
	switch {
	case density >= 3:
		return paintBlockHard
	case density == 2:
		return paintBlockMid
	default:
		return paintBlockSoft
	}
}
