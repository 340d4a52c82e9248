package poly

import "github.com/opencam/camcore/geom"

// pathKind distinguishes which operand an edge came from; the sweep keeps
// separate winding counts per kind so the fill rule can be applied to each
// operand independently before the clip op combines them.
type pathKind uint8

const (
	kindSubject pathKind = iota
	kindClip
)

// buildRing strips duplicate vertices and returns the closed path as a
// plain slice ready for edge extraction. Returns nil for degenerate input
// (fewer than 3 distinct vertices).
func buildRing(path geom.Path) geom.Path {
	ring := geom.StripDuplicates(path, true)
	if len(ring) < 3 {
		return nil
	}
	return ring
}
