package cam

import "fmt"

// compileVCarve always refuses. The V-carve toolpath (a variable-depth cut
// that follows the medial axis of the geometry, plunging deeper where the
// material is wider) is known-unimplemented; the core reports that
// explicitly rather than emitting a flat approximation that would look
// plausible and cut wrong.
func compileVCarve(op Operation, index int) ([]CamPath, *Error) {
	return nil, &Error{Kind: Unsupported, Index: index,
		Msg: fmt.Sprintf("operation %d: v-carve is not implemented", index)}
}
