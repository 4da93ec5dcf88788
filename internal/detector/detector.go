// internal/detector/detector.go
//
// The detector collects wall segments typed in as integer coordinates,
// derives their length and angle, and keeps only the walls worth drawing:
// long enough, and close to horizontal or vertical. Those are what end up in
// walls.json.

package detector

import (
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"os"
	"strconv"
	"strings"
)

const (
	// MinLength is the shortest wall kept, in millimetres (exclusive).
	MinLength = 100.0
	// AngleTolerance is how far from 0/90/180 degrees a wall may lean.
	AngleTolerance = 10.0
)

var (
	// ErrSamePoints is returned when both endpoints coincide.
	ErrSamePoints = errors.New("same points")
	// ErrInvalidInput is returned for anything but four integers.
	ErrInvalidInput = errors.New("invalid input")
)

// Segment is one captured wall with derived length (mm) and angle (degrees,
// in (-180, 180]).
type Segment struct {
	X1     int     `json:"x1"`
	Y1     int     `json:"y1"`
	X2     int     `json:"x2"`
	Y2     int     `json:"y2"`
	Length float64 `json:"length"`
	Angle  float64 `json:"angle"`
}

// NewSegment derives length and angle from the endpoints.
func NewSegment(x1, y1, x2, y2 int) Segment {
	dx := float64(x2) - float64(x1)
	dy := float64(y2) - float64(y1)
	return Segment{
		X1:     x1,
		Y1:     y1,
		X2:     x2,
		Y2:     y2,
		Length: math.Hypot(dx, dy),
		Angle:  math.Atan2(dy, dx) * 180 / math.Pi,
	}
}

// IsHorizontal reports an angle within tolerance of 0 or ±180 degrees.
func (s Segment) IsHorizontal() bool {
	return math.Abs(s.Angle) < AngleTolerance ||
		math.Abs(s.Angle-180) < AngleTolerance ||
		math.Abs(s.Angle+180) < AngleTolerance
}

// IsVertical reports an angle within tolerance of ±90 degrees.
func (s Segment) IsVertical() bool {
	return math.Abs(s.Angle-90) < AngleTolerance ||
		math.Abs(s.Angle+90) < AngleTolerance
}

// IsValid reports whether the segment is kept on save.
func (s Segment) IsValid() bool {
	return s.Length > MinLength && (s.IsHorizontal() || s.IsVertical())
}

func (s Segment) String() string {
	return fmt.Sprintf("(%d,%d) to (%d,%d), length = %smm, angle = %s°",
		s.X1, s.Y1, s.X2, s.Y2, formatNumber(s.Length), formatNumber(s.Angle))
}

// Detector accumulates segments in the order they were added.
type Detector struct {
	segments []Segment
}

// New returns an empty detector.
func New() *Detector {
	return &Detector{}
}

// Add records a wall. Identical endpoints are rejected.
func (d *Detector) Add(x1, y1, x2, y2 int) (Segment, error) {
	if x1 == x2 && y1 == y2 {
		return Segment{}, fmt.Errorf("detector: (%d,%d): %w", x1, y1, ErrSamePoints)
	}
	s := NewSegment(x1, y1, x2, y2)
	d.segments = append(d.segments, s)
	return s, nil
}

// Valid returns the segments that pass IsValid, in insertion order.
func (d *Detector) Valid() []Segment {
	out := []Segment{}
	for _, s := range d.segments {
		if s.IsValid() {
			out = append(out, s)
		}
	}
	return out
}

// Save writes the valid segments to path as a JSON array and returns how many
// were written.
func (d *Detector) Save(path string) (int, error) {
	valid := d.Valid()
	data, err := json.MarshalIndent(valid, "", "  ")
	if err != nil {
		return 0, fmt.Errorf("detector: encode walls: %w", err)
	}
	data = append(data, '\n')
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return 0, fmt.Errorf("detector: write %s: %w", path, err)
	}
	return len(valid), nil
}

// ParseCoordinates reads exactly four whitespace separated integers, each of
// which must fit in 32 bits.
func ParseCoordinates(line string) (x1, y1, x2, y2 int, err error) {
	fields := strings.Fields(line)
	if len(fields) != 4 {
		return 0, 0, 0, 0, fmt.Errorf("detector: %q: %w", line, ErrInvalidInput)
	}
	var vals [4]int
	for i, f := range fields {
		v, convErr := strconv.ParseInt(f, 10, 32)
		if convErr != nil {
			return 0, 0, 0, 0, fmt.Errorf("detector: %q: %w", line, ErrInvalidInput)
		}
		vals[i] = int(v)
	}
	return vals[0], vals[1], vals[2], vals[3], nil
}

func formatNumber(v float64) string {
	return strconv.FormatFloat(v, 'g', 6, 64)
}
