package gcode

import (
	"github.com/opencam/camcore/cam"
)

// Operation is one compiled operation's contribution to a job: the tool
// paths cam.Compile produced, plus the handful of fields the emitter needs
// that package cam doesn't otherwise carry through (CutDepth lives on
// cam.Operation but package cam ignores it; the emitter is where it
// matters).
type Operation struct {
	Index          int
	Kind           cam.Kind
	Name           string
	CutterDiameter int64
	CutDepth       float64
	Paths          []cam.CamPath
}

// FromResult adapts a cam.Compile result into the emitter's input shape.
func FromResult(r cam.Result) Operation {
	return Operation{
		Index:          r.Index,
		Kind:           r.Kind,
		Name:           r.Name,
		CutterDiameter: r.CutterDiameter,
		CutDepth:       r.CutDepth,
		Paths:          r.Paths,
	}
}

// isPointOp reports whether op's paths are plunge points (Perforate,
// Drill) rather than profiles to be layered pass by pass.
func (op Operation) isPointOp() bool {
	return op.Kind == cam.Perforate || op.Kind == cam.Drill
}
