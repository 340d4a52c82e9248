// Package poly implements the integer polygon algebra the CAM core runs on:
// boolean clipping (union/difference/intersection/xor) via a Vatti-style
// scanline sweep, Minkowski offset with rounded joins, crossing tests and
// greedy path merging. Every operation here is total: degenerate or
// numerically collapsed inputs produce the empty result, never an error.
package poly

import "github.com/opencam/camcore/geom"

// ClipOp selects the boolean set operation performed by Clip.
type ClipOp uint8

const (
	Union ClipOp = iota
	Difference
	Intersection
	Xor
)

// FillRule selects how self-intersecting or nested contours are resolved
// into interior/exterior regions before the boolean operation runs.
// Positive and Negative keep only regions of that winding sign; the
// offsetter relies on Negative (the sign this core's positive-area outers
// produce under the sweep) to erase the inverted loops its corner joins
// leave behind, the same way Clipper2's offset engine cleans up with a
// signed fill rule.
type FillRule uint8

const (
	EvenOdd FillRule = iota
	NonZero
	Positive
	Negative
)

// CamPath is a single cutter-centre path together with the emitter hint of
// whether its implicit closing segment is safe to traverse directly, i.e.
// it never crosses the clipping polygon that bounds the operation.
type CamPath struct {
	Path        geom.Path
	SafeToClose bool
}
