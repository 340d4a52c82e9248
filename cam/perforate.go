package cam

import (
	"fmt"

	"github.com/opencam/camcore/geom"
)

// compilePointOp implements both Perforate and Drill: each contour's
// centroid becomes a zero-length path [p, p]. The emitter recognises a
// zero-length path as a plunge-then-retract point and bypasses pass-depth
// layering in favour of one full-depth plunge, so the two operations differ
// only in the name attached to their G-code header, not in the geometry
// this compiler produces.
func compilePointOp(op Operation, index int) ([]CamPath, *Error) {
	var out []CamPath
	for _, p := range op.Geometry {
		if len(p) == 0 {
			continue
		}
		c := geom.Centroid(p)
		out = append(out, CamPath{Path: geom.Path{c, c}, SafeToClose: true})
	}
	if len(out) == 0 {
		return nil, &Error{Kind: DegenerateGeometry, Index: index,
			Msg: fmt.Sprintf("operation %d: no contours to place a drill point in", index)}
	}
	return out, nil
}
