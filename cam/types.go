// Package cam compiles an operation descriptor and a piece of planar
// geometry into the ordered tool paths a CNC router executes: Pocket spirals
// inward from the cutter-compensated boundary, Outline cuts an annulus of a
// given width either inside or outside the geometry, Engrave follows input
// contours literally, and Perforate/Drill reduce each contour to a single
// plunge point. V-carve is recognised but always refused. Every compiler
// builds on the polygon algebra in package poly; none of them touch G-code.
package cam

import (
	"github.com/opencam/camcore/geom"
	"github.com/opencam/camcore/poly"
)

// Kind is the closed set of operations this core can be asked to compile.
type Kind uint8

const (
	Pocket Kind = iota
	OutlineInside
	OutlineOutside
	Engrave
	Perforate
	Drill
	VCarve
)

func (k Kind) String() string {
	switch k {
	case Pocket:
		return "pocket"
	case OutlineInside:
		return "outline-inside"
	case OutlineOutside:
		return "outline-outside"
	case Engrave:
		return "engrave"
	case Perforate:
		return "perforate"
	case Drill:
		return "drill"
	case VCarve:
		return "v-carve"
	default:
		return "unknown"
	}
}

// Operation is the input to a single compile call: a geometry soup plus the
// tool and cut parameters that shape how it's traversed.
type Operation struct {
	Kind           Kind
	Geometry       geom.Paths
	CutterDiameter int64   // internal units
	Overlap        float64 // fraction of cutter diameter re-covered between passes, in [0, 1)
	Climb          bool
	Width          int64   // Outline only; total cut width, must be >= CutterDiameter
	CutDepth       float64 // emitter input, G-code units; ignored by this package
	Name           string  // host-supplied label, carried through to the emitter's operation header
}

// CamPath is the tagged record an operation compiler produces: a 2-D tool
// path plus whether its implicit closing segment is safe to traverse
// without retracting first.
type CamPath = poly.CamPath
