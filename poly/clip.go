package poly

import (
	"math"
	"sort"

	"github.com/opencam/camcore/geom"
)

// clipEdge is one non-horizontal segment of an operand ring. An edge is
// active in every scanbeam between its lower and its upper Y. Reference
// shape: Clipper2's Vatti engine, with the active-edge-list bookkeeping
// replaced by a per-scanbeam trapezoid decomposition: each beam is resolved
// into the filled trapezoids it contains and the output contours are
// stitched from the trapezoid boundaries afterwards. Slower than a true
// Vatti sweep, but the winding logic stays local to one beam, which keeps
// the engine correct on the self-overlapping rings the offsetter feeds it.
type clipEdge struct {
	bot, top  geom.Point
	dx        float64 // dx/dy, interpolates X between bot and top
	kind      pathKind
	windDelta int // +1 if the edge travels bot->top in the source winding, else -1
}

func (e *clipEdge) xAt(y int64) float64 {
	if y <= e.bot.Y {
		return float64(e.bot.X)
	}
	if y >= e.top.Y {
		return float64(e.top.X)
	}
	return float64(e.bot.X) + e.dx*float64(y-e.bot.Y)
}

func (e *clipEdge) xAtF(y float64) float64 {
	return float64(e.bot.X) + e.dx*(y-float64(e.bot.Y))
}

// buildEdges extracts one clipEdge per non-horizontal segment of every ring
// in paths. Horizontal segments carry no winding information in a Y sweep;
// the stitcher recovers horizontal boundary pieces from the trapezoid caps.
func buildEdges(paths geom.Paths, kind pathKind) []*clipEdge {
	var edges []*clipEdge
	for _, p := range paths {
		ring := buildRing(p)
		if ring == nil {
			continue
		}
		n := len(ring)
		for i := 0; i < n; i++ {
			a, b := ring[i], ring[(i+1)%n]
			if a.Y == b.Y {
				continue
			}
			e := &clipEdge{kind: kind}
			if a.Y < b.Y {
				e.bot, e.top, e.windDelta = a, b, 1
			} else {
				e.bot, e.top, e.windDelta = b, a, -1
			}
			e.dx = float64(e.top.X-e.bot.X) / float64(e.top.Y-e.bot.Y)
			edges = append(edges, e)
		}
	}
	return edges
}

func fillTest(rule FillRule, w int) bool {
	switch rule {
	case EvenOdd:
		return w&1 != 0
	case NonZero:
		return w != 0
	case Positive:
		return w > 0
	default:
		return w < 0
	}
}

func insideResult(op ClipOp, fillRule FillRule, windSubj, windClip int) bool {
	subjIn := fillTest(fillRule, windSubj)
	clipIn := fillTest(fillRule, windClip)
	switch op {
	case Union:
		return subjIn || clipIn
	case Intersection:
		return subjIn && clipIn
	case Difference:
		return subjIn && !clipIn
	case Xor:
		return subjIn != clipIn
	default:
		return false
	}
}

// Clip computes a op b under fillRule. The result is always returned in
// even-odd normalised form: outers are positive-area paths, holes are
// separate negative-area paths. Degenerate input (empty soups, zero-area
// contours) yields the empty result, never an error.
func Clip(a, b geom.Paths, op ClipOp, fillRule FillRule) geom.Paths {
	edges := buildEdges(a, kindSubject)
	edges = append(edges, buildEdges(b, kindClip)...)
	if len(edges) == 0 {
		return geom.Paths{}
	}
	ys := scanbeamYs(edges)
	traps := sweepTrapezoids(edges, ys, op, fillRule)
	return stitchTrapezoids(traps)
}

// scanbeamYs collects every Y at which the span structure can change: each
// edge's endpoints, plus the Y of every proper pairwise edge crossing,
// rounded to the grid. A residual crossing inside a one-unit beam only
// perturbs that beam's trapezoid by a unit, which the stitcher's netted
// caps absorb.
func scanbeamYs(edges []*clipEdge) []int64 {
	set := make(map[int64]bool)
	for _, e := range edges {
		set[e.bot.Y] = true
		set[e.top.Y] = true
	}
	for i := 0; i < len(edges); i++ {
		for j := i + 1; j < len(edges); j++ {
			a, b := edges[i], edges[j]
			t, ok := SegmentCrossingT(a.bot, a.top, b.bot, b.top)
			if !ok {
				continue
			}
			y := a.bot.Y + int64(math.Round(t*float64(a.top.Y-a.bot.Y)))
			set[y] = true
		}
	}
	ys := make([]int64, 0, len(set))
	for y := range set {
		ys = append(ys, y)
	}
	sort.Slice(ys, func(i, j int) bool { return ys[i] < ys[j] })
	return ys
}

// trapezoid is one scanbeam's slice of the output region: left and right
// side X at the beam's bottom (y0) and top (y1), already rounded to grid.
type trapezoid struct {
	y0, y1             int64
	lx0, lx1, rx0, rx1 int64
}

// sweepTrapezoids walks every scanbeam, sorts the beam's active edges by
// their X at the beam midline, and accumulates per-operand winding counts
// left to right; every maximal run where insideResult holds becomes one
// trapezoid. Winding is evaluated at the midline rather than at a beam
// boundary so that edges starting or terminating exactly on a boundary
// cannot flicker the fill state there.
func sweepTrapezoids(edges []*clipEdge, ys []int64, op ClipOp, fillRule FillRule) []trapezoid {
	var traps []trapezoid
	var act []*clipEdge
	for k := 0; k+1 < len(ys); k++ {
		y0, y1 := ys[k], ys[k+1]
		act = act[:0]
		for _, e := range edges {
			if e.bot.Y <= y0 && e.top.Y >= y1 {
				act = append(act, e)
			}
		}
		if len(act) == 0 {
			continue
		}
		mid := float64(y0) + float64(y1-y0)/2
		sort.SliceStable(act, func(i, j int) bool {
			xi, xj := act[i].xAtF(mid), act[j].xAtF(mid)
			if xi != xj {
				return xi < xj
			}
			return act[i].dx < act[j].dx
		})

		windSubj, windClip := 0, 0
		inside := false
		var left *clipEdge
		for _, e := range act {
			if e.kind == kindSubject {
				windSubj += e.windDelta
			} else {
				windClip += e.windDelta
			}
			now := insideResult(op, fillRule, windSubj, windClip)
			if now && !inside {
				left = e
			} else if !now && inside {
				t := trapezoid{
					y0: y0, y1: y1,
					lx0: roundX(left.xAt(y0)), lx1: roundX(left.xAt(y1)),
					rx0: roundX(e.xAt(y0)), rx1: roundX(e.xAt(y1)),
				}
				if !(t.lx0 == t.rx0 && t.lx1 == t.rx1) {
					traps = append(traps, t)
				}
			}
			inside = now
		}
	}
	return traps
}

func roundX(x float64) int64 { return int64(math.Round(x)) }

type stitchSeg struct {
	from, to geom.Point
	used     bool
}

// stitchTrapezoids reassembles trapezoid slices into closed contours. Each
// trapezoid contributes its two slanted sides directly (right side upward,
// left side downward - the orientation that makes outers come out positive
// per geom.Area and holes negative). Horizontal caps are netted per Y
// first: where one beam's bottom coverage coincides with the beam below's
// top coverage the interior cancels exactly and only true boundary pieces
// survive. Walking the remaining segment soup end-to-start yields the
// output rings.
func stitchTrapezoids(traps []trapezoid) geom.Paths {
	if len(traps) == 0 {
		return geom.Paths{}
	}

	var segs []*stitchSeg
	addSeg := func(a, b geom.Point) {
		if !a.Equal(b) {
			segs = append(segs, &stitchSeg{from: a, to: b})
		}
	}

	type capDelta struct {
		x int64
		d int
	}
	caps := make(map[int64][]capDelta)
	for _, t := range traps {
		addSeg(geom.Point{X: t.rx0, Y: t.y0}, geom.Point{X: t.rx1, Y: t.y1})
		addSeg(geom.Point{X: t.lx1, Y: t.y1}, geom.Point{X: t.lx0, Y: t.y0})
		bl, br := minInt64(t.lx0, t.rx0), maxInt64(t.lx0, t.rx0)
		tl, tr := minInt64(t.lx1, t.rx1), maxInt64(t.lx1, t.rx1)
		caps[t.y0] = append(caps[t.y0], capDelta{bl, 1}, capDelta{br, -1})
		caps[t.y1] = append(caps[t.y1], capDelta{tl, -1}, capDelta{tr, 1})
	}

	capYs := make([]int64, 0, len(caps))
	for y := range caps {
		capYs = append(capYs, y)
	}
	sort.Slice(capYs, func(i, j int) bool { return capYs[i] < capYs[j] })

	// Bottoms count +1, tops -1. Beams partition Y, so the intervals within
	// each family are disjoint and the net cover is always -1, 0 or +1:
	// +1 marks a bottom boundary (traversed rightward), -1 a top boundary
	// (traversed leftward), 0 is interior.
	for _, y := range capYs {
		ds := caps[y]
		sort.Slice(ds, func(i, j int) bool {
			if ds[i].x != ds[j].x {
				return ds[i].x < ds[j].x
			}
			return ds[i].d < ds[j].d
		})
		cover := 0
		var runStart int64
		for _, d := range ds {
			prev := cover
			cover += d.d
			if prev == 0 && cover != 0 {
				runStart = d.x
			} else if prev != 0 && cover == 0 {
				a := geom.Point{X: runStart, Y: y}
				b := geom.Point{X: d.x, Y: y}
				if prev > 0 {
					addSeg(a, b)
				} else {
					addSeg(b, a)
				}
			}
		}
	}

	outgo := make(map[geom.Point][]*stitchSeg)
	for _, s := range segs {
		outgo[s.from] = append(outgo[s.from], s)
	}

	var out geom.Paths
	for _, s0 := range segs {
		if s0.used {
			continue
		}
		loop := geom.Path{s0.from}
		cur := s0
		cur.used = true
		closed := false
		for {
			if cur.to.Equal(s0.from) {
				closed = true
				break
			}
			next := pickNext(cur, outgo[cur.to])
			if next == nil {
				break
			}
			next.used = true
			loop = append(loop, cur.to)
			cur = next
		}
		if !closed {
			continue
		}
		ring := removeCollinear(geom.StripDuplicates(loop, true))
		if len(ring) >= 3 && geom.Area(ring) != 0 {
			out = append(out, ring)
		}
	}
	if out == nil {
		out = geom.Paths{}
	}
	return out
}

// pickNext chooses the continuation segment at a junction. A single
// candidate (the common case) is taken outright; where several contours
// touch at one point, the most counter-clockwise turn relative to the
// incoming direction keeps each emitted loop simple.
func pickNext(cur *stitchSeg, candidates []*stitchSeg) *stitchSeg {
	var best *stitchSeg
	bestAngle := math.Inf(-1)
	inAngle := math.Atan2(float64(cur.to.Y-cur.from.Y), float64(cur.to.X-cur.from.X))
	for _, c := range candidates {
		if c.used {
			continue
		}
		a := math.Atan2(float64(c.to.Y-c.from.Y), float64(c.to.X-c.from.X))
		rel := a - inAngle - math.Pi
		for rel <= 0 {
			rel += 2 * math.Pi
		}
		for rel > 2*math.Pi {
			rel -= 2 * math.Pi
		}
		if rel > bestAngle {
			bestAngle = rel
			best = c
		}
	}
	return best
}

// removeCollinear drops vertices that lie exactly on the segment between
// their neighbours (scanbeam boundaries subdivide long edges; this undoes
// that), spike reversals included, iterating until the ring is stable.
func removeCollinear(p geom.Path) geom.Path {
	for {
		if len(p) < 3 {
			return p
		}
		removed := false
		out := make(geom.Path, 0, len(p))
		n := len(p)
		for i := 0; i < n; i++ {
			prev := p[(i-1+n)%n]
			next := p[(i+1)%n]
			if geom.CrossSign(prev, p[i], next) == 0 {
				removed = true
				continue
			}
			out = append(out, p[i])
		}
		if !removed {
			return p
		}
		p = geom.StripDuplicates(out, true)
	}
}

func minInt64(a, b int64) int64 {
	if a < b {
		return a
	}
	return b
}

func maxInt64(a, b int64) int64 {
	if a > b {
		return a
	}
	return b
}
