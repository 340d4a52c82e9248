package gcode

import "strconv"

// formatCoord renders v to decimals fractional digits without stripping
// trailing zeros - controllers disagree about whether "1" and "1.000" mean
// the same thing, and a stable field width makes emitted programs easy to
// diff across runs.
func formatCoord(v float64, decimals int) string {
	if v == 0 {
		v = 0 // the negated Y axis turns 0 into -0; controllers don't care, diffs do
	}
	return strconv.FormatFloat(v, 'f', decimals, 64)
}

// formatFeed renders a feed rate. Feeds don't need the coordinate decimal
// precision; two fractional digits is enough to express any realistic
// units-per-minute value while staying stable across runs.
func formatFeed(v float64) string {
	return strconv.FormatFloat(v, 'f', 2, 64)
}
