package rot

import "math"

// CoerceShift converts a raw numeric shift into an integer offset. NaN and
// infinities coerce to 0, finite values truncate toward zero. Values beyond
// the int range carry no meaningful offset and coerce to 0 as well.
//
// Boundaries that accept shifts as arbitrary user input parse them with
// strconv.ParseFloat and funnel the result (or NaN on parse failure)
// through here.
func CoerceShift(v float64) int {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0
	}
	v = math.Trunc(v)
	// MaxInt rounds up when converted to float64, so the top end is
	// excluded. MinInt converts exactly and stays in range; Decode reduces
	// shifts modulo the alphabet length before negating, so it is safe to
	// admit.
	if v >= math.MaxInt || v < math.MinInt {
		return 0
	}
	return int(v)
}

// NormalizeShift reduces shift modulo length into [0, length). Negative
// shifts wrap around; a length below 1 yields 0.
func NormalizeShift(shift, length int) int {
	if length < 1 {
		return 0
	}
	return ((shift % length) + length) % length
}
