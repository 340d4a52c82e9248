package cam

import "fmt"

// Result is one operation's compiled output: the ordered tool paths, and
// enough of the originating operation to let the G-code emitter build a
// header and choose layering behaviour without reaching back into the
// Operation slice.
type Result struct {
	Index          int
	Kind           Kind
	Name           string
	CutterDiameter int64
	CutDepth       float64
	Paths          []CamPath
}

// Compile compiles every operation in ops independently: a failure in one
// operation (Unsupported or DegenerateGeometry) does not prevent the others
// from compiling. Results are returned only for operations that produced at
// least one path; errs carries one entry per operation that produced none.
func Compile(ops []Operation) ([]Result, []Error) {
	var results []Result
	var errs []Error

	for i, op := range ops {
		var paths []CamPath
		var err *Error

		switch op.Kind {
		case Pocket:
			paths, err = compilePocket(op, i)
		case OutlineInside:
			paths, err = compileOutline(op, i, false)
		case OutlineOutside:
			paths, err = compileOutline(op, i, true)
		case Engrave:
			paths, err = compileEngrave(op, i)
		case Perforate, Drill:
			paths, err = compilePointOp(op, i)
		case VCarve:
			paths, err = compileVCarve(op, i)
		default:
			err = &Error{Kind: Unsupported, Index: i,
				Msg: fmt.Sprintf("operation %d: unknown operation kind %v", i, op.Kind)}
		}

		if err != nil {
			errs = append(errs, *err)
			continue
		}
		results = append(results, Result{
			Index:          i,
			Kind:           op.Kind,
			Name:           op.Name,
			CutterDiameter: op.CutterDiameter,
			CutDepth:       op.CutDepth,
			Paths:          paths,
		})
	}
	return results, errs
}
