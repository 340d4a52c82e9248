package cam

import "fmt"

// compileEngrave follows each input contour literally, ignoring cutter
// diameter entirely - there is no offset, no step-over, no direction
// correction. Every path is explicitly closed (the emitter needs the
// duplicated vertex to trace the final segment of an engraved loop) and
// always marked safe to close, since an engrave never retracts mid-path.
func compileEngrave(op Operation, index int) ([]CamPath, *Error) {
	var out []CamPath
	for _, p := range op.Geometry {
		if len(p) == 0 {
			continue
		}
		out = append(out, CamPath{Path: p.Closed(), SafeToClose: true})
	}
	if len(out) == 0 {
		return nil, &Error{Kind: DegenerateGeometry, Index: index,
			Msg: fmt.Sprintf("operation %d: engrave geometry is empty", index)}
	}
	return out, nil
}
