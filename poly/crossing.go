package poly

import "github.com/opencam/camcore/geom"

// segmentsProperlyCross reports whether open segment ab transversally
// crosses open segment cd - a shared or tangent endpoint does not count,
// matching the tab splitter's rule that touches on a boundary are treated
// as outside rather than as a crossing. Orientation is computed with
// geom.CrossSign's 128-bit arithmetic so the test stays exact regardless of
// how large the input coordinates are.
func segmentsProperlyCross(a, b, c, d geom.Point) bool {
	d1 := geom.CrossSign(a, b, c)
	d2 := geom.CrossSign(a, b, d)
	d3 := geom.CrossSign(c, d, a)
	d4 := geom.CrossSign(c, d, b)
	return ((d1 > 0 && d2 < 0) || (d1 < 0 && d2 > 0)) &&
		((d3 > 0 && d4 < 0) || (d3 < 0 && d4 > 0))
}

// SegmentCrossingT reports where segment ab properly crosses segment cd, as
// a parametric value t (0 < t < 1) measured from a to b. The second result
// is false when the segments don't transversally cross - shared or tangent
// endpoints, parallel segments, and simple misses all report false, not a
// degenerate t.
func SegmentCrossingT(a, b, c, d geom.Point) (float64, bool) {
	if !segmentsProperlyCross(a, b, c, d) {
		return 0, false
	}
	ax, ay := float64(a.X), float64(a.Y)
	bx, by := float64(b.X), float64(b.Y)
	cx, cy := float64(c.X), float64(c.Y)
	dx, dy := float64(d.X), float64(d.Y)
	denom := (bx-ax)*(dy-cy) - (by-ay)*(dx-cx)
	if denom == 0 {
		return 0, false
	}
	t := ((cx-ax)*(dy-cy) - (cy-ay)*(dx-cx)) / denom
	return t, true
}

// Crosses reports whether the open segment ab transversally crosses any
// boundary edge of clip.
func Crosses(clip geom.Paths, a, b geom.Point) bool {
	for _, path := range clip {
		n := len(path)
		if n < 2 {
			continue
		}
		for i := 0; i < n; i++ {
			c, d := path[i], path[(i+1)%n]
			if segmentsProperlyCross(a, b, c, d) {
				return true
			}
		}
	}
	return false
}
