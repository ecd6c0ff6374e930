package mathx

import "golang.org/x/exp/constraints"

// Unit maps x in [lo,hi] onto [0,1], saturating outside the range.
// NaN input, a degenerate range (lo == hi) and any quotient that comes out
// NaN (infinite bounds or span) all map to 0.
func Unit[T constraints.Float](x, lo, hi T) T {
	span := hi - lo
	if span == 0 || IsNaN(x) {
		return 0
	}
	q := (x - lo) / span
	if IsNaN(q) {
		return 0
	}
	return Clamp(q, 0, 1)
}
