// Package camcore is the CAM core's whole-pipeline entry point: Compile
// takes a job descriptor and a list of operations and returns the G-code
// program that cuts them, tying together polygon algebra (package poly),
// operation compilation (package cam), tab lift-over (package tabs) and
// G-code emission (package gcode) behind a single pure function. A host
// may run any number of compilations concurrently on disjoint inputs; the
// core holds no shared state.
package camcore

import (
	"github.com/opencam/camcore/cam"
	"github.com/opencam/camcore/gcode"
)

// Job is the emitter's parameter set, re-exported so callers only need to
// import this package for the common case.
type Job = gcode.Job

// Operation is one user-requested cut, re-exported from package cam.
type Operation = cam.Operation

// Warning is a host-facing, non-fatal diagnostic; see package gcode.
type Warning = gcode.Warning

// Error is a per-operation compile failure; see package cam.
type Error = cam.Error

// Compile runs the full pipeline: each operation is compiled independently
// (a failure in one never prevents the others from compiling), then every
// surviving operation's tool paths are laid out as G-code against job.
//
// lines is always returned, even when every operation fails: the preamble
// and postamble are unconditional. errs carries one entry per operation
// that contributed no output (Unsupported or DegenerateGeometry). warnings
// carries every host-facing diagnostic - numeric clamps the emitter
// applied, plus one UnsupportedOperation warning per operation errs also
// reports as Unsupported, so a host that only wants the narrower warning
// channel doesn't have to cross-reference errs.
func Compile(job Job, ops []Operation) (lines []string, errs []Error, warnings []Warning) {
	results, camErrs := cam.Compile(ops)

	gcodeOps := make([]gcode.Operation, len(results))
	for i, r := range results {
		gcodeOps[i] = gcode.FromResult(r)
	}

	lines, warnings = gcode.Generate(job, gcodeOps)

	for _, ce := range camErrs {
		if ce.Kind == cam.Unsupported {
			warnings = append(warnings, gcode.Warning{Kind: gcode.UnsupportedOperation, Index: ce.Index})
		}
	}
	return lines, camErrs, warnings
}
