package cam

import (
	"fmt"

	"github.com/opencam/camcore/geom"
	"github.com/opencam/camcore/poly"
)

// compileOutline cuts an annulus of op.Width either just inside or just
// outside op.Geometry. The first pass sits at the cutter radius from the
// boundary; each later pass steps further by eachWidth until the next step
// would pass the target offset (Width - cutterRadius), at which point one
// final pass lands exactly on that target rather than overshooting it.
func compileOutline(op Operation, index int, outside bool) ([]CamPath, *Error) {
	if op.Width < op.CutterDiameter {
		return nil, &Error{Kind: Unsupported, Index: index,
			Msg: fmt.Sprintf("operation %d: outline width %d is smaller than the cutter diameter %d", index, op.Width, op.CutterDiameter)}
	}

	sign := -1.0
	if outside {
		sign = 1.0
	}
	radius := float64(op.CutterDiameter) / 2
	targetOffset := float64(op.Width) - radius

	start := poly.Offset(op.Geometry, sign*radius)
	if len(start) == 0 {
		return nil, &Error{Kind: DegenerateGeometry, Index: index,
			Msg: fmt.Sprintf("operation %d: outline start offset collapsed", index)}
	}

	outer := poly.Offset(op.Geometry, sign*targetOffset)
	var bounds geom.Paths
	if outside {
		bounds = poly.Clip(outer, start, poly.Difference, poly.NonZero)
	} else {
		bounds = poly.Clip(start, outer, poly.Difference, poly.NonZero)
	}

	eachWidth := float64(op.CutterDiameter) * (1 - op.Overlap)
	paths := append(geom.Paths{}, start...)
	offset := radius
	current := start
	for offset+eachWidth <= targetOffset {
		current = poly.Offset(current, sign*eachWidth)
		if len(current) == 0 {
			break
		}
		offset += eachWidth
		paths = append(paths, current...)
	}
	if offset < targetOffset && len(outer) > 0 {
		paths = append(paths, outer...)
	}

	needReverse := op.Climb
	if outside {
		needReverse = !op.Climb
	}
	if needReverse {
		for i, p := range paths {
			paths[i] = p.Reverse()
		}
	}

	return poly.MergePaths(bounds, paths, op.CutterDiameter/1000), nil
}
