package plot

// Rect is a screen-space rectangle with its origin at the top left.
type Rect struct {
	X, Y, W, H float64
}

// Margins reserve room around the plot area for the title and axis labels.
type Margins struct {
	Top, Right, Bottom, Left float64
}

// WindowMargins is the pixel layout used by the window viewer.
var WindowMargins = Margins{Top: 50, Right: 30, Bottom: 60, Left: 70}

// Inset returns the plot area left inside a width x height canvas.
func (m Margins) Inset(width, height float64) Rect {
	r := Rect{
		X: m.Left,
		Y: m.Top,
		W: width - m.Left - m.Right,
		H: height - m.Top - m.Bottom,
	}
	if r.W < 1 {
		r.W = 1
	}
	if r.H < 1 {
		r.H = 1
	}
	return r
}

// Transform maps data coordinates onto a screen rectangle, flipping y.
type Transform struct {
	bounds Bounds
	sx, sy float64
	ox, oy float64
}

// NewTransform fits bounds into r. With equal set both axes share the smaller
// scale and the drawing is centred, so proportions survive.
func NewTransform(b Bounds, r Rect, equal bool) Transform {
	w, h := b.Width(), b.Height()
	if w <= 0 {
		w = 1
	}
	if h <= 0 {
		h = 1
	}
	sx, sy := r.W/w, r.H/h
	if equal {
		s := sx
		if sy < s {
			s = sy
		}
		sx, sy = s, s
	}
	return Transform{
		bounds: b,
		sx:     sx,
		sy:     sy,
		ox:     r.X + (r.W-w*sx)/2,
		oy:     r.Y + (r.H-h*sy)/2,
	}
}

// Apply converts a data point to screen coordinates.
func (t Transform) Apply(p Point) (x, y float64) {
	return t.ox + (p.X-t.bounds.MinX)*t.sx, t.oy + (t.bounds.MaxY-p.Y)*t.sy
}

// Frame is the screen rectangle actually covered by the bounds.
func (t Transform) Frame() Rect {
	return Rect{
		X: t.ox,
		Y: t.oy,
		W: t.bounds.Width() * t.sx,
		H: t.bounds.Height() * t.sy,
	}
}

// Bounds returns the data box being mapped.
func (t Transform) Bounds() Bounds { return t.bounds }
