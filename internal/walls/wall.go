// internal/walls/wall.go
//
// A Wall is one straight segment of a floor plan, in millimetres, as written
// to walls.json by the wall detector.

package walls

import "fmt"

// DefaultFile is the input the drawing command always reads.
const DefaultFile = "walls.json"

// LengthUnit is appended to every length label.
const LengthUnit = "mm"

// Wall is a single segment with a precomputed display length. Length is taken
// as given and never derived from the coordinates.
type Wall struct {
	X1     float64 `json:"x1"`
	Y1     float64 `json:"y1"`
	X2     float64 `json:"x2"`
	Y2     float64 `json:"y2"`
	Length float64 `json:"length"`
}

// Midpoint returns the arithmetic mean of the two endpoints.
func (w Wall) Midpoint() (x, y float64) {
	return (w.X1 + w.X2) / 2, (w.Y1 + w.Y2) / 2
}

// Label formats the length with one decimal place and the unit suffix.
func (w Wall) Label() string {
	return fmt.Sprintf("%.1f %s", w.Length, LengthUnit)
}

// IsDegenerate reports whether both endpoints coincide.
func (w Wall) IsDegenerate() bool {
	return w.X1 == w.X2 && w.Y1 == w.Y2
}
