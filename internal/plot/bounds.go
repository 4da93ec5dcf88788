package plot

import "math"

const (
	// boundsMargin is the fraction of the extent added on each side.
	boundsMargin = 0.05
	// flatAxisHalfSpan widens an axis with no extent, in millimetres.
	flatAxisHalfSpan = 1.0
)

// Bounds is an axis-aligned box in data space.
type Bounds struct {
	MinX, MinY float64
	MaxX, MaxY float64
}

func (b Bounds) Width() float64  { return b.MaxX - b.MinX }
func (b Bounds) Height() float64 { return b.MaxY - b.MinY }

// Extend grows the box to contain p.
func (b Bounds) Extend(p Point) Bounds {
	return Bounds{
		MinX: math.Min(b.MinX, p.X),
		MinY: math.Min(b.MinY, p.Y),
		MaxX: math.Max(b.MaxX, p.X),
		MaxY: math.Max(b.MaxY, p.Y),
	}
}

// Padded adds frac of the extent to each side. An axis with zero extent is
// widened by flatAxisHalfSpan around its value instead.
func (b Bounds) Padded(frac float64) Bounds {
	b.MinX, b.MaxX = padAxis(b.MinX, b.MaxX, frac)
	b.MinY, b.MaxY = padAxis(b.MinY, b.MaxY, frac)
	return b
}

func padAxis(lo, hi, frac float64) (float64, float64) {
	span := hi - lo
	if span <= 0 {
		return lo - flatAxisHalfSpan, hi + flatAxisHalfSpan
	}
	return lo - span*frac, hi + span*frac
}
