// Package canvas is a small cell grid for composing the header: layers are
// drawn in order, text lands at fractional positions and fades toward
// whatever is underneath it.
package canvas

import (
	"image/color"
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"

	"github.com/llehouerou/portrait/internal/ui/styles"
)

// upperHalf draws the top pixel in the foreground and the bottom one in
// the background.
const upperHalf = '▀'

// Cell is one terminal cell. Rune 0 marks the trailing half of a wide rune.
type Cell struct {
	Rune rune
	FG   lipgloss.Color
	BG   lipgloss.Color
	Bold bool
}

// Canvas is a fixed-size grid of cells.
type Canvas struct {
	w, h  int
	cells []Cell
}

// New returns a w x h canvas filled with bg.
func New(w, h int, bg lipgloss.Color) *Canvas {
	w, h = max(w, 0), max(h, 0)
	c := &Canvas{w: w, h: h, cells: make([]Cell, w*h)}
	for i := range c.cells {
		c.cells[i] = Cell{Rune: ' ', BG: bg}
	}
	return c
}

// Width returns the canvas width in cells.
func (c *Canvas) Width() int { return c.w }

// Height returns the canvas height in rows.
func (c *Canvas) Height() int { return c.h }

// At returns the cell at (x, y). Out-of-range reads return the zero cell.
func (c *Canvas) At(x, y int) Cell {
	if !c.in(x, y) {
		return Cell{}
	}
	return c.cells[y*c.w+x]
}

func (c *Canvas) in(x, y int) bool {
	return x >= 0 && y >= 0 && x < c.w && y < c.h
}

func (c *Canvas) set(x, y int, cell Cell) {
	if c.in(x, y) {
		c.cells[y*c.w+x] = cell
	}
}

// FillRow paints row y with bg and clears its text.
func (c *Canvas) FillRow(y int, bg lipgloss.Color) {
	c.Fill(0, y, c.w, 1, bg)
}

// Fill paints a rectangle with bg and clears its text.
func (c *Canvas) Fill(x, y, w, h int, bg lipgloss.Color) {
	for row := y; row < y+h; row++ {
		for col := x; col < x+w; col++ {
			c.set(col, row, Cell{Rune: ' ', BG: bg})
		}
	}
}

// Tint blends every cell of a rectangle toward col by alpha, foreground and
// background alike. alpha 1 replaces the colors.
func (c *Canvas) Tint(x, y, w, h int, col lipgloss.Color, alpha float64) {
	if alpha <= 0 {
		return
	}
	for row := y; row < y+h; row++ {
		for cx := x; cx < x+w; cx++ {
			if !c.in(cx, row) {
				continue
			}
			cell := &c.cells[row*c.w+cx]
			cell.BG = styles.Blend(cell.BG, col, alpha)
			if cell.FG != "" {
				cell.FG = styles.Blend(cell.FG, col, alpha)
			}
		}
	}
}

// HalfBlock sets cell (x, y) to two vertically stacked pixels.
func (c *Canvas) HalfBlock(x, y int, top, bottom color.Color) {
	c.set(x, y, Cell{Rune: upperHalf, FG: styles.FromColor(top), BG: styles.FromColor(bottom)})
}

// Text draws s with its left edge at column x on row y, both rounded.
// The foreground is blended toward each cell's background by 1-opacity;
// opacity <= 0 draws nothing. Text running off either edge is clipped.
// Returns the number of columns covered.
func (c *Canvas) Text(x, y float64, s string, fg lipgloss.Color, bold bool, opacity float64) int {
	if opacity <= 0 || s == "" {
		return runewidth.StringWidth(s)
	}
	row := int(math.Round(y))
	col := int(math.Round(x))
	start := col
	for _, r := range s {
		rw := runewidth.RuneWidth(r)
		if rw == 0 {
			continue
		}
		if c.in(col, row) && (rw == 1 || c.in(col+1, row)) {
			bg := c.cells[row*c.w+col].BG
			c.set(col, row, Cell{Rune: r, FG: styles.Blend(bg, fg, opacity), BG: bg, Bold: bold})
			if rw == 2 {
				c.set(col+1, row, Cell{Rune: 0, BG: c.cells[row*c.w+col+1].BG})
			}
		}
		col += rw
	}
	return col - start
}

// Lines renders each row, merging runs of identically styled cells.
func (c *Canvas) Lines() []string {
	out := make([]string, c.h)
	var run strings.Builder
	for y := range c.h {
		var line strings.Builder
		var cur Cell
		flush := func() {
			if run.Len() == 0 {
				return
			}
			line.WriteString(style(cur).Render(run.String()))
			run.Reset()
		}
		for x := range c.w {
			cell := c.cells[y*c.w+x]
			if cell.Rune == 0 {
				continue
			}
			if run.Len() > 0 && !sameStyle(cell, cur) {
				flush()
			}
			cur = cell
			run.WriteRune(cell.Rune)
		}
		flush()
		out[y] = line.String()
	}
	return out
}

// String renders the canvas as newline-joined rows.
func (c *Canvas) String() string {
	return strings.Join(c.Lines(), "\n")
}

// Plain returns row y without styling, for hit-testing and tests.
func (c *Canvas) Plain(y int) string {
	if y < 0 || y >= c.h {
		return ""
	}
	var b strings.Builder
	for x := range c.w {
		if r := c.cells[y*c.w+x].Rune; r != 0 {
			b.WriteRune(r)
		}
	}
	return b.String()
}

func sameStyle(a, b Cell) bool {
	return a.FG == b.FG && a.BG == b.BG && a.Bold == b.Bold
}

func style(cell Cell) lipgloss.Style {
	s := lipgloss.NewStyle().Bold(cell.Bold)
	if cell.FG != "" {
		s = s.Foreground(cell.FG)
	}
	if cell.BG != "" {
		s = s.Background(cell.BG)
	}
	return s
}
