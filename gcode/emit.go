package gcode

import (
	"fmt"
	"math"

	"github.com/opencam/camcore/cam"
	"github.com/opencam/camcore/geom"
	"github.com/opencam/camcore/tabs"
)

// Generate turns job and ops into the ordered G-code program that executes
// them. The preamble and postamble are always emitted, even when ops is
// empty. Generate performs no I/O and is deterministic: identical inputs
// always produce an identical line sequence.
func Generate(job Job, ops []Operation) ([]string, []Warning) {
	e := &emitter{job: job, decimals: job.decimalPlaces()}

	if e.job.PassDepth < 0 {
		e.warn(PassDepthTooSmall, -1, e.job.PassDepth)
		e.job.PassDepth = 0
	}

	e.preamble(ops)
	for _, op := range ops {
		e.operation(op)
	}
	e.postamble()
	return e.lines, e.warnings
}

type emitter struct {
	job      Job
	decimals int
	lines    []string
	warnings []Warning

	curPos *geom.Point // internal units; nil before the first move
	curZ   float64     // G-code units
	atSafe bool
}

func (e *emitter) warn(kind WarningKind, index int, value float64) {
	e.warnings = append(e.warnings, Warning{Kind: kind, Index: index, Value: value})
}

func (e *emitter) line(s string) { e.lines = append(e.lines, s) }

func (e *emitter) toXY(p geom.Point) (float64, float64) {
	return float64(p.X)*e.job.XScale + e.job.OffsetX, float64(p.Y)*e.job.YScale + e.job.OffsetY
}

func (e *emitter) fc(v float64) string { return formatCoord(v, e.decimals) }

// preamble emits the unit directive, absolute positioning, the initial
// rapid to safe Z, and commentary describing the job's bounding box and
// origin so a human reading the program can sanity-check the setup.
func (e *emitter) preamble(ops []Operation) {
	if e.job.Units == Inches {
		e.line("G20")
	} else {
		e.line("G21")
	}
	e.line("G90")
	e.line(fmt.Sprintf("G0 Z%s F%s", e.fc(e.job.SafeZ*e.job.ZScale), formatFeed(e.job.RapidFeed)))
	e.curZ = e.job.SafeZ * e.job.ZScale
	e.atSafe = true

	if b, ok := e.workBounds(ops); ok {
		e.line(fmt.Sprintf("; work bounds: X[%s, %s] Y[%s, %s]", e.fc(b.MinX), e.fc(b.MaxX), e.fc(b.MinY), e.fc(b.MaxY)))
	}
	e.line(fmt.Sprintf("; origin offset: X%s Y%s", e.fc(e.job.OffsetX), e.fc(e.job.OffsetY)))
	if id, ok := e.job.validJobID(); ok {
		e.line("; job " + id)
	}
}

type gcodeBounds struct{ MinX, MinY, MaxX, MaxY float64 }

func (e *emitter) workBounds(ops []Operation) (gcodeBounds, bool) {
	found := false
	b := gcodeBounds{MinX: math.MaxFloat64, MinY: math.MaxFloat64, MaxX: -math.MaxFloat64, MaxY: -math.MaxFloat64}
	for _, op := range ops {
		for _, cp := range op.Paths {
			for _, pt := range cp.Path {
				x, y := e.toXY(pt)
				found = true
				if x < b.MinX {
					b.MinX = x
				}
				if x > b.MaxX {
					b.MaxX = x
				}
				if y < b.MinY {
					b.MinY = y
				}
				if y > b.MaxY {
					b.MaxY = y
				}
			}
		}
	}
	return b, found
}

func (e *emitter) postamble() {
	if e.curPos != nil {
		e.retract()
	}
	if e.job.ReturnTo00 {
		e.line(fmt.Sprintf("G0 X%s Y%s F%s", e.fc(0), e.fc(0), formatFeed(e.job.RapidFeed)))
	}
	e.line("M2")
}

// operation emits one operation's header and tool paths.
func (e *emitter) operation(op Operation) {
	cutDepth := op.CutDepth
	if cutDepth < 0 {
		e.warn(CutDepthTooSmall, op.Index, cutDepth)
		cutDepth = 0
	}
	name := op.Name
	if name == "" {
		name = op.Kind.String()
	}
	e.line(fmt.Sprintf("; operation %d: %s (%s) depth=%s passDepth=%s",
		op.Index, name, op.Kind.String(), formatFeed(cutDepth), formatFeed(e.job.PassDepth)))

	if op.isPointOp() {
		e.pointOperation(op, cutDepth)
		return
	}

	bloated := tabs.BloatedUnion(e.job.TabGeometry, op.CutterDiameter)
	targets := passTargets(e.job.TopZ, cutDepth, e.job.PassDepth)
	for i := range targets {
		targets[i] *= e.job.ZScale
	}

	var prev *pathState
	for _, cp := range op.Paths {
		if len(cp.Path) == 0 {
			continue
		}
		stayDown := prev != nil && prev.safeToClose &&
			withinTolerance(prev.end, cp.Path[0], op.CutterDiameter/1000)
		prev = e.emitPath(op, cp, bloated, targets, stayDown)
	}
}

type pathState struct {
	end         geom.Point
	safeToClose bool
}

// passTargets returns the Z depth (in job Z units, before ZScale) of each
// layered pass, descending from topZ by equal increments of cutDepth until
// the final pass lands exactly on topZ-cutDepth. A non-positive passDepth
// collapses the cut to a single pass at full depth.
func passTargets(topZ, cutDepth, passDepth float64) []float64 {
	n := 1
	if passDepth > 0 && cutDepth > 0 {
		n = int(math.Ceil(cutDepth / passDepth))
		if n < 1 {
			n = 1
		}
	}
	out := make([]float64, n)
	for i := 0; i < n; i++ {
		out[i] = topZ - cutDepth*float64(i+1)/float64(n)
	}
	return out
}

func withinTolerance(a, b geom.Point, tolerance int64) bool {
	dx, dy := float64(a.X-b.X), float64(a.Y-b.Y)
	tol := float64(tolerance)
	return dx*dx+dy*dy <= tol*tol
}

// emitPath cuts one compiled path to full depth, either descending through
// the operation's full layered pass sequence (plunge then ramps) or, when
// stayDown holds, continuing directly at the depth the previous path
// already reached - the case mergePaths' concatenation exists to create.
func (e *emitter) emitPath(op Operation, cp cam.CamPath, bloated geom.Paths, targets []float64, stayDown bool) *pathState {
	walk := append(geom.Path{}, cp.Path...)
	if cp.SafeToClose && !walk[len(walk)-1].Equal(walk[0]) {
		walk = append(walk, cp.Path[0])
	}
	subpaths := tabs.Split(walk, bloated)
	rampLen := float64(op.CutterDiameter)

	if stayDown {
		e.g1(walk[0], e.curZ, e.job.CutFeed)
		z := targets[len(targets)-1]
		e.traversePass(subpaths, z, z, 0, e.job.CutFeed, e.job.PlungeFeed)
		return &pathState{end: walk[len(walk)-1], safeToClose: cp.SafeToClose}
	}

	if e.curPos != nil {
		e.retract()
	}
	e.rapidTo(walk[0])

	prevZ := e.job.TopZ * e.job.ZScale
	for i, z := range targets {
		switch {
		case i == 0:
			e.g1(walk[0], z, e.job.PlungeFeed)
			e.traversePass(subpaths, z, z, 0, e.job.CutFeed, e.job.PlungeFeed)
		case cp.SafeToClose:
			// The previous pass closed its loop back to walk[0] at prevZ,
			// so the cutter is already positioned to ramp straight into
			// this deeper pass.
			e.traversePass(subpaths, prevZ, z, rampLen, e.job.CutFeed, e.job.PlungeFeed)
		default:
			// The path never returns to walk[0], so the cutter is sitting
			// at its far end with no in-material route back to the start;
			// retract and re-enter rather than ramp through open air.
			e.retract()
			e.rapidTo(walk[0])
			e.g1(walk[0], z, e.job.PlungeFeed)
			e.traversePass(subpaths, z, z, 0, e.job.CutFeed, e.job.PlungeFeed)
		}
		prevZ = z
	}
	return &pathState{end: walk[len(walk)-1], safeToClose: cp.SafeToClose}
}

// traversePass walks every subpath's vertices, interpolating Z linearly
// from prevZ to targetZ over the first rampLen internal units of travel
// (rampLen == 0 disables ramping, holding targetZ throughout), and clamping
// Z to at least the bloated-tab height on odd (inside-tab) subpaths. The
// first vertex of the first subpath is assumed to already be the emitter's
// current position and is not re-emitted as a move; every other subpath's
// first vertex IS re-emitted, which is exactly the zero-XY-distance Z
// transition a tab boundary requires.
func (e *emitter) traversePass(subpaths []geom.Path, prevZ, targetZ, rampLen, cutFeed, plungeFeed float64) {
	travelled := 0.0
	var last geom.Point
	haveLast := false

	for si, sp := range subpaths {
		if len(sp) == 0 {
			continue
		}
		start := 0
		if si == 0 {
			last = sp[0]
			haveLast = true
			start = 1
		}
		for vi := start; vi < len(sp); vi++ {
			pt := sp[vi]
			segLen := 0.0
			if haveLast {
				segLen = distance(last, pt)
			}
			z := targetZ
			feed := cutFeed
			if rampLen > 0 {
				travelled += segLen
				frac := travelled / rampLen
				if frac > 1 {
					frac = 1
				} else {
					feed = plungeFeed
				}
				z = prevZ + (targetZ-prevZ)*frac
			}
			if si%2 == 1 {
				z = math.Max(z, e.job.TabZ*e.job.ZScale)
			}
			e.g1(pt, z, feed)
			last, haveLast = pt, true
		}
	}
}

func distance(a, b geom.Point) float64 {
	dx, dy := float64(a.X-b.X), float64(a.Y-b.Y)
	return math.Sqrt(dx*dx + dy*dy)
}

// pointOperation emits one rapid-plunge-retract cycle per plunge point,
// bypassing pass-depth layering entirely: Perforate and Drill paths are
// zero-length ([p, p]) and always cut in a single pass to full depth.
func (e *emitter) pointOperation(op Operation, cutDepth float64) {
	target := (e.job.TopZ - cutDepth) * e.job.ZScale
	for _, cp := range op.Paths {
		if len(cp.Path) == 0 {
			continue
		}
		p := cp.Path[0]
		if e.curPos != nil {
			e.retract()
		}
		e.rapidTo(p)
		e.g1(p, target, e.job.PlungeFeed)
		e.retract()
	}
}

func (e *emitter) retract() {
	if !e.atSafe {
		x, y := e.toXY(*e.curPos)
		e.line(fmt.Sprintf("G1 X%s Y%s Z%s F%s", e.fc(x), e.fc(y), e.fc(e.job.SafeZ*e.job.ZScale), formatFeed(e.job.RetractFeed)))
		e.curZ = e.job.SafeZ * e.job.ZScale
		e.atSafe = true
	}
}

func (e *emitter) rapidTo(p geom.Point) {
	x, y := e.toXY(p)
	e.line(fmt.Sprintf("G0 X%s Y%s F%s", e.fc(x), e.fc(y), formatFeed(e.job.RapidFeed)))
	e.curPos = &p
}

func (e *emitter) g1(p geom.Point, z, feed float64) {
	x, y := e.toXY(p)
	e.line(fmt.Sprintf("G1 X%s Y%s Z%s F%s", e.fc(x), e.fc(y), e.fc(z), formatFeed(feed)))
	e.curPos = &p
	e.curZ = z
	e.atSafe = z == e.job.SafeZ*e.job.ZScale
}
