package geom

// Inside reports whether pt lies strictly within the closed contour path,
// using an even-odd ray cast along +X. A point exactly on the boundary -
// on an edge or coincident with a vertex - is reported as outside, matching
// the tab splitter's rule that boundary touches are never crossings.
func Inside(pt Point, path Path) bool {
	n := len(path)
	if n < 3 {
		return false
	}
	inside := false
	for i, j := 0, n-1; i < n; j, i = i, i+1 {
		a, b := path[j], path[i]
		if onSegment(pt, a, b) {
			return false
		}
		if (a.Y > pt.Y) != (b.Y > pt.Y) {
			xCross := float64(b.X-a.X)*float64(pt.Y-a.Y)/float64(b.Y-a.Y) + float64(a.X)
			if float64(pt.X) < xCross {
				inside = !inside
			}
		}
	}
	return inside
}

// InsideAny reports whether pt lies strictly within any contour of paths.
func InsideAny(pt Point, paths Paths) bool {
	for _, p := range paths {
		if Inside(pt, p) {
			return true
		}
	}
	return false
}

func onSegment(pt, a, b Point) bool {
	if CrossSign(a, b, pt) != 0 {
		return false
	}
	return pt.X >= min64(a.X, b.X) && pt.X <= max64(a.X, b.X) &&
		pt.Y >= min64(a.Y, b.Y) && pt.Y <= max64(a.Y, b.Y)
}

func min64(a, b int64) int64 {
	if a < b {
		return a
	}
	return b
}

func max64(a, b int64) int64 {
	if a > b {
		return a
	}
	return b
}
