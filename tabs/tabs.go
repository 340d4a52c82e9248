// Package tabs implements the tab splitter: cutting a single tool path
// at the points where it crosses holding-tab geometry, so the G-code
// emitter can lift the cutter clear of each tab instead of machining
// through it.
package tabs

import (
	"sort"

	"github.com/opencam/camcore/geom"
	"github.com/opencam/camcore/poly"
)

// Split walks path one segment at a time and cuts it wherever it crosses a
// boundary edge of tabs, returning the alternating sequence of sub-paths.
// Even indices (0, 2, 4, ...) are outside every tab; odd indices are inside
// one. Concatenating all returned sub-paths reconstructs path vertex for
// vertex, with each crossing point inserted in the order it's encountered.
// path is walked as an open polyline - callers that want the implicit
// closing segment considered must append the first vertex to path
// themselves before calling Split.
//
// A segment lying exactly on a tab boundary counts as outside, and a
// segment endpoint merely touching a boundary (no transversal crossing)
// never opens a new sub-path; both follow directly from the definition of a
// crossing in poly.SegmentCrossingT (the same one poly.Crosses uses), which
// this function reuses.
func Split(path geom.Path, tabGeometry geom.Paths) []geom.Path {
	if len(path) == 0 {
		return nil
	}
	if len(path) == 1 || len(tabGeometry) == 0 {
		return []geom.Path{append(geom.Path(nil), path...)}
	}

	var subs []geom.Path
	if geom.InsideAny(path[0], tabGeometry) {
		subs = append(subs, geom.Path{})
	}

	cur := geom.Path{path[0]}
	for i := 0; i < len(path)-1; i++ {
		a, b := path[i], path[i+1]
		for _, pt := range crossingsOnSegment(a, b, tabGeometry) {
			cur = append(cur, pt)
			subs = append(subs, cur)
			cur = geom.Path{pt}
		}
		cur = append(cur, b)
	}
	subs = append(subs, cur)
	return subs
}

type hit struct {
	t float64
	p geom.Point
}

// crossingsOnSegment returns every point at which segment ab properly
// crosses a boundary edge of tabGeometry, ordered by distance from a.
func crossingsOnSegment(a, b geom.Point, tabGeometry geom.Paths) []geom.Point {
	var hits []hit
	for _, tab := range tabGeometry {
		n := len(tab)
		for k := 0; k < n; k++ {
			c, d := tab[k], tab[(k+1)%n]
			if t, ok := poly.SegmentCrossingT(a, b, c, d); ok {
				hits = append(hits, hit{t: t, p: lerp(a, b, t)})
			}
		}
	}
	sort.Slice(hits, func(i, j int) bool { return hits[i].t < hits[j].t })
	out := make([]geom.Point, len(hits))
	for i, h := range hits {
		out[i] = h.p
	}
	return out
}

func lerp(a, b geom.Point, t float64) geom.Point {
	return geom.Point{
		X: a.X + int64(t*float64(b.X-a.X)),
		Y: a.Y + int64(t*float64(b.Y-a.Y)),
	}
}

// BloatedUnion unions every path in tabGeometry and grows the result by
// half of cutterDiameter, so the cutter's edge - not just its centre -
// clears each tab. An empty tabGeometry yields an empty result.
func BloatedUnion(tabGeometry geom.Paths, cutterDiameter int64) geom.Paths {
	if len(tabGeometry) == 0 {
		return nil
	}
	union := poly.Clip(tabGeometry, geom.Paths{}, poly.Union, poly.NonZero)
	if len(union) == 0 {
		return nil
	}
	return poly.Offset(union, float64(cutterDiameter)/2)
}
