package plot

import (
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestTicksNiceSteps(t *testing.T) {
	cases := []struct {
		lo, hi float64
		target int
		want   []float64
	}{
		{0, 10, 6, []float64{0, 2, 4, 6, 8, 10}},
		{-5, 105, 6, []float64{0, 50, 100}},
		{-0.5, 10.5, 6, []float64{0, 5, 10}},
		{6, 8, 5, []float64{6, 6.5, 7, 7.5, 8}},
	}
	for _, tc := range cases {
		got := Ticks(tc.lo, tc.hi, tc.target)
		if diff := cmp.Diff(tc.want, got); diff != "" {
			t.Fatalf("Ticks(%v, %v, %d) mismatch (-want +got):\n%s", tc.lo, tc.hi, tc.target, diff)
		}
	}
}

func TestTicksAscendingEvenWithinRange(t *testing.T) {
	ranges := [][2]float64{{-1234, 98765}, {0.001, 0.0042}, {-3, -1}, {-52.5, 315}}
	for _, r := range ranges {
		ticks := Ticks(r[0], r[1], 7)
		if len(ticks) < 2 {
			t.Fatalf("Ticks(%v) returned %v", r, ticks)
		}
		step := ticks[1] - ticks[0]
		for i, v := range ticks {
			if v < r[0]-1e-9 || v > r[1]+1e-9 {
				t.Fatalf("tick %v outside %v", v, r)
			}
			if i > 0 {
				if d := v - ticks[i-1]; math.Abs(d-step) > step*1e-6 {
					t.Fatalf("uneven spacing in %v", ticks)
				}
			}
		}
	}
}

func TestTicksDegenerateRange(t *testing.T) {
	if got := Ticks(3, 3, 5); len(got) != 1 || got[0] != 3 {
		t.Fatalf("Ticks on empty range = %v", got)
	}
}

func TestFormatTick(t *testing.T) {
	if got := FormatTick(100, 50); got != "100" {
		t.Fatalf("FormatTick = %q", got)
	}
	if got := FormatTick(6.5, 0.5); got != "6.5" {
		t.Fatalf("FormatTick = %q", got)
	}
	if got := FormatTick(0.002, 0.001); got != "0.002" {
		t.Fatalf("FormatTick = %q", got)
	}
}
