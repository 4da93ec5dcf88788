package terminal

import (
	"github.com/NimbleMarkets/ntcharts/canvas"
	"github.com/NimbleMarkets/ntcharts/canvas/graph"
	"github.com/charmbracelet/lipgloss"
)

// ink orders what wins when several things land in the same cell.
type ink uint8

const (
	inkNone ink = iota
	inkGrid
	inkFrame
	inkWall
	inkLabel
)

var dotInks = []ink{inkGrid, inkFrame, inkWall}

const brailleBlank = 0x2800

// brailleBits maps a dot at (x, y) inside a 2x4 cell to its braille bit.
var brailleBits = [4][2]rune{
	{0x01, 0x08},
	{0x02, 0x10},
	{0x04, 0x20},
	{0x40, 0x80},
}

// brailleCanvas keeps one braille grid per dot ink and a text layer on top.
// Dot coordinates start at the top-left corner, 2x4 dots per cell.
type brailleCanvas struct {
	cols, rows int
	layers     map[ink]*graph.BrailleGrid
	text       []rune
	textInk    []ink
}

func newBrailleCanvas(cols, rows int) *brailleCanvas {
	cols = max(cols, 1)
	rows = max(rows, 1)
	c := &brailleCanvas{
		cols:    cols,
		rows:    rows,
		layers:  make(map[ink]*graph.BrailleGrid, len(dotInks)),
		text:    make([]rune, cols*rows),
		textInk: make([]ink, cols*rows),
	}
	w, h := c.resolution()
	for _, k := range dotInks {
		c.layers[k] = graph.NewBrailleGrid(cols, rows, 0, float64(w-1), 0, float64(h-1))
	}
	return c
}

func (c *brailleCanvas) resolution() (w, h int) { return c.cols * 2, c.rows * 4 }

// set turns on one dot. Out of range dots are dropped.
func (c *brailleCanvas) set(x, y int, k ink) {
	w, h := c.resolution()
	if x < 0 || y < 0 || x >= w || y >= h {
		return
	}
	if grid, ok := c.layers[k]; ok {
		grid.Set(canvas.Point{X: x, Y: y})
	}
}

func (c *brailleCanvas) line(x0, y0, x1, y1 int, k ink) {
	for _, p := range graph.GetLinePoints(canvas.Point{X: x0, Y: y0}, canvas.Point{X: x1, Y: y1}) {
		c.set(p.X, p.Y, k)
	}
	c.set(x0, y0, k)
	c.set(x1, y1, k)
}

// label writes s starting at cell (col, row), clipped to the canvas.
func (c *brailleCanvas) label(col, row int, s string, k ink) {
	if row < 0 || row >= c.rows {
		return
	}
	for i, r := range []rune(s) {
		x := col + i
		if x < 0 {
			continue
		}
		if x >= c.cols {
			return
		}
		idx := row*c.cols + x
		if k >= c.textInk[idx] {
			c.text[idx] = r
			c.textInk[idx] = k
		}
	}
}

type snapshot map[ink][][]rune

func (c *brailleCanvas) snapshot() snapshot {
	s := make(snapshot, len(c.layers))
	for k, grid := range c.layers {
		s[k] = grid.BraillePatterns()
	}
	return s
}

func (s snapshot) bits(k ink, col, row int) rune {
	pats := s[k]
	if row >= len(pats) || col >= len(pats[row]) {
		return 0
	}
	r := pats[row][col]
	if r < brailleBlank {
		return 0
	}
	return r - brailleBlank
}

// cell returns what to print at (col, row) and which ink it carries.
func (c *brailleCanvas) cell(s snapshot, col, row int) (rune, ink) {
	idx := row*c.cols + col
	if c.text[idx] != 0 {
		return c.text[idx], c.textInk[idx]
	}
	var bits rune
	top := inkNone
	for _, k := range dotInks {
		if b := s.bits(k, col, row); b != 0 {
			bits |= b
			top = k
		}
	}
	if bits == 0 {
		return ' ', inkNone
	}
	return brailleBlank + bits, top
}

func (c *brailleCanvas) dot(s snapshot, x, y int) bool {
	w, h := c.resolution()
	if x < 0 || y < 0 || x >= w || y >= h {
		return false
	}
	r, k := c.cell(s, x/2, y/4)
	if k == inkNone || k == inkLabel {
		return false
	}
	return (r-brailleBlank)&brailleBits[y%4][x%2] != 0
}

// render paints every cell onto an ntcharts canvas in its ink's style.
func (c *brailleCanvas) render(styles map[ink]lipgloss.Style) string {
	s := c.snapshot()
	out := canvas.New(c.cols, c.rows)
	for row := 0; row < c.rows; row++ {
		for col := 0; col < c.cols; col++ {
			r, k := c.cell(s, col, row)
			out.SetCell(canvas.Point{X: col, Y: row}, canvas.Cell{Rune: r, Style: styles[k]})
		}
	}
	return out.View()
}
