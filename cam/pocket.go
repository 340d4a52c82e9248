package cam

import (
	"fmt"

	"github.com/opencam/camcore/geom"
	"github.com/opencam/camcore/poly"
)

// compilePocket clears the interior of op.Geometry with a spiral that moves
// inward one step-over at a time. g0, the locus of the cutter centre that
// just fits inside the geometry, is the outermost ring; each subsequent
// ring shrinks it further by the step-over distance. Rings are accumulated
// outermost-last so the cutter finishes at the boundary, where a retract is
// cheapest.
func compilePocket(op Operation, index int) ([]CamPath, *Error) {
	g0 := poly.Offset(op.Geometry, -float64(op.CutterDiameter)/2)
	if len(g0) == 0 {
		return nil, &Error{Kind: DegenerateGeometry, Index: index,
			Msg: fmt.Sprintf("operation %d: pocket geometry collapsed under cutter-radius compensation", index)}
	}

	step := float64(op.CutterDiameter) * (1 - op.Overlap)
	var batches []geom.Paths
	for current := g0; len(current) > 0; {
		batches = append(batches, current)
		current = poly.Offset(current, -step)
	}

	var rings geom.Paths
	for i := len(batches) - 1; i >= 0; i-- {
		rings = append(rings, batches[i]...)
	}
	if op.Climb {
		for i, p := range rings {
			rings[i] = p.Reverse()
		}
	}

	return poly.MergePaths(g0, rings, op.CutterDiameter/1000), nil
}
