package poly

import (
	"math"

	"github.com/opencam/camcore/geom"
)

// pointD is a float64 point used for unit normals and other intermediate
// arithmetic during offsetting; only the final vertices are rounded back to
// the integer grid.
type pointD struct{ x, y float64 }

func unitNormal(a, b geom.Point) pointD {
	if a.Equal(b) {
		return pointD{}
	}
	dx, dy := float64(b.X-a.X), float64(b.Y-a.Y)
	h := math.Hypot(dx, dy)
	dx, dy = dx/h, dy/h
	return pointD{dy, -dx} // rotated 90° clockwise, matching a Y-down frame
}

func perpendicular(pt geom.Point, n pointD, delta float64) geom.Point {
	return geom.Point{
		X: pt.X + int64(n.x*delta),
		Y: pt.Y + int64(n.y*delta),
	}
}

// roundJoiner rounds the corner at path[j] (incoming edge normal n[k],
// outgoing edge normal n[j]) by stepping an arc between the two offset
// points. Reference shape: Clipper2's ClipperOffset.DoRound, restricted to
// the single join type (rounded) this CAM core's offset supports.
type roundJoiner struct {
	stepSin, stepCos, stepsPerRad float64
}

func newRoundJoiner(delta float64) roundJoiner {
	absDelta := math.Abs(delta)
	arcTol := math.Max(1, absDelta/256)
	stepsPerRad360 := math.Min(math.Pi/math.Acos(1-arcTol/absDelta), absDelta*math.Pi)
	stepSin := math.Sin(2 * math.Pi / stepsPerRad360)
	stepCos := math.Cos(2 * math.Pi / stepsPerRad360)
	if delta < 0 {
		stepSin = -stepSin
	}
	return roundJoiner{stepSin: stepSin, stepCos: stepCos, stepsPerRad: stepsPerRad360 / (2 * math.Pi)}
}

func (rj roundJoiner) join(out *geom.Path, pt geom.Point, nk, nj pointD, delta, angle float64) {
	vec := pointD{nk.x * delta, nk.y * delta}
	*out = append(*out, geom.Point{X: pt.X + int64(vec.x), Y: pt.Y + int64(vec.y)})

	steps := int(math.Ceil(rj.stepsPerRad * math.Abs(angle)))
	for i := 1; i < steps; i++ {
		oldX := vec.x
		vec.x = vec.x*rj.stepCos - rj.stepSin*vec.y
		vec.y = oldX*rj.stepSin + vec.y*rj.stepCos
		*out = append(*out, geom.Point{X: pt.X + int64(vec.x), Y: pt.Y + int64(vec.y)})
	}
	*out = append(*out, perpendicular(pt, nj, delta))
}

// offsetPolygon builds the raw (possibly self-overlapping) offset of one
// closed ring by delta, using rounded joins throughout; concave corners
// emit a small negative loop that the caller's subsequent Union cleans up,
// exactly as Clipper2's offset engine relies on its own self-union.
func offsetPolygon(ring geom.Path, delta float64, rj roundJoiner) geom.Path {
	n := len(ring)
	norms := make([]pointD, n)
	for i := 0; i < n; i++ {
		norms[i] = unitNormal(ring[i], ring[(i+1)%n])
	}

	out := make(geom.Path, 0, n*2)
	for j := 0; j < n; j++ {
		k := (j - 1 + n) % n
		if ring[j].Equal(ring[k]) {
			continue
		}
		nj, nk := norms[j], norms[k]
		sinA := nk.x*nj.y - nk.y*nj.x
		cosA := nk.x*nj.x + nk.y*nj.y
		if sinA > 1 {
			sinA = 1
		} else if sinA < -1 {
			sinA = -1
		}
		if cosA > 0.999 {
			// Near-collinear: a single offset point suffices.
			out = append(out, perpendicular(ring[j], nj, delta))
			continue
		}
		if cosA > -0.999 && sinA*delta < 0 {
			// Concave corner: insert the triangular notch Union will erase.
			out = append(out,
				perpendicular(ring[j], nk, delta),
				ring[j],
				perpendicular(ring[j], nj, delta))
			continue
		}
		angle := math.Atan2(sinA, cosA)
		rj.join(&out, ring[j], nk, nj, delta, angle)
	}
	return out
}

// Offset computes the Minkowski sum of paths with a disk of radius |delta|,
// signed: positive delta grows each contour outward, negative shrinks it
// inward. Joins are always rounded, with a chord tolerance of
// max(1, |delta|/256) internal units. A contour that collapses under a
// negative delta is silently dropped; there is no failure mode.
func Offset(paths geom.Paths, delta float64) geom.Paths {
	if delta == 0 {
		out := make(geom.Paths, 0, len(paths))
		for _, p := range paths {
			if r := buildRing(p); r != nil {
				out = append(out, r)
			}
		}
		return out
	}

	rj := newRoundJoiner(delta)
	var raw geom.Paths
	for _, p := range paths {
		ring := buildRing(p)
		if ring == nil {
			continue
		}
		op := offsetPolygon(ring, delta, rj)
		if len(op) >= 3 {
			raw = append(raw, op)
		}
	}
	if len(raw) == 0 {
		return geom.Paths{}
	}

	// The raw rings self-overlap at every shrinking corner; the Negative
	// fill keeps exactly the regions wound like the input outers and
	// erases the inverted notch loops, collapsed contours included.
	return Clip(raw, geom.Paths{}, Union, Negative)
}
