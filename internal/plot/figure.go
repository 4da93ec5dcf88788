// internal/plot/figure.go
//
// The figure model sits between the loaded walls and whichever viewer puts
// them on screen. Everything here is pure so the drawing rules can be tested
// without opening a window or a terminal.

package plot

import (
	"image/color"

	"github.com/kingrea/planmorph/internal/walls"
)

const (
	Title  = "PlanMorph Wall Drawing"
	XLabel = "X (mm)"
	YLabel = "Y (mm)"

	// SegmentWidth is the stroke weight of every wall, in screen pixels.
	SegmentWidth = 3
	// LabelSize is the nominal font size of length labels, in points.
	LabelSize = 8
)

var (
	Black    = color.RGBA{R: 0x00, G: 0x00, B: 0x00, A: 0xff}
	Red      = color.RGBA{R: 0xff, G: 0x00, B: 0x00, A: 0xff}
	White    = color.RGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}
	GridGray = color.RGBA{R: 0xb0, G: 0xb0, B: 0xb0, A: 0xff}
)

// Point is a position in data space (millimetres).
type Point struct {
	X, Y float64
}

// Segment is one straight line to draw.
type Segment struct {
	From  Point
	To    Point
	Width float64
	Color color.RGBA
}

// Label is a piece of text anchored at a data-space position.
type Label struct {
	At    Point
	Text  string
	Color color.RGBA
	Size  float64
}

// Scale returns the factor that turns text drawn at base points into text of
// the label's size. An unset size draws at base.
func (l Label) Scale(base float64) float64 {
	if l.Size <= 0 || base <= 0 {
		return 1
	}
	return l.Size / base
}

// Figure is everything a viewer needs to draw the walls.
type Figure struct {
	Title       string
	XLabel      string
	YLabel      string
	Segments    []Segment
	Labels      []Label
	Grid        bool
	EqualAspect bool
}

// Build turns walls into a figure: one black segment and one red midpoint
// label per wall, in input order.
func Build(ws []walls.Wall) Figure {
	fig := Figure{
		Title:       Title,
		XLabel:      XLabel,
		YLabel:      YLabel,
		Segments:    make([]Segment, 0, len(ws)),
		Labels:      make([]Label, 0, len(ws)),
		Grid:        true,
		EqualAspect: true,
	}
	for _, w := range ws {
		fig.Segments = append(fig.Segments, Segment{
			From:  Point{X: w.X1, Y: w.Y1},
			To:    Point{X: w.X2, Y: w.Y2},
			Width: SegmentWidth,
			Color: Black,
		})
		mx, my := w.Midpoint()
		fig.Labels = append(fig.Labels, Label{
			At:    Point{X: mx, Y: my},
			Text:  w.Label(),
			Color: Red,
			Size:  LabelSize,
		})
	}
	return fig
}

// Bounds returns the data extent of the figure with a margin on every side.
// A figure with nothing in it spans the unit square.
func (f Figure) Bounds() Bounds {
	var b Bounds
	first := true
	include := func(p Point) {
		if first {
			b = Bounds{MinX: p.X, MinY: p.Y, MaxX: p.X, MaxY: p.Y}
			first = false
			return
		}
		b = b.Extend(p)
	}
	for _, s := range f.Segments {
		include(s.From)
		include(s.To)
	}
	for _, l := range f.Labels {
		include(l.At)
	}
	if first {
		return Bounds{MinX: 0, MinY: 0, MaxX: 1, MaxY: 1}
	}
	return b.Padded(boundsMargin)
}
