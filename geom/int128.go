package geom

import "math/bits"

// int128 is a signed 128-bit integer used internally wherever two fixed-point
// coordinates (each up to ~1e15) are multiplied together; the product can
// overflow int64 by several orders of magnitude, and silently truncating it
// would turn a robust orientation test into a coin flip near degenerate
// geometry. Two's-complement, sign-extended high word.
type int128 struct {
	hi int64
	lo uint64
}

func newInt128(v int64) int128 {
	var hi int64
	if v < 0 {
		hi = -1
	}
	return int128{hi: hi, lo: uint64(v)}
}

func (a int128) add(b int128) int128 {
	lo, carry := bits.Add64(a.lo, b.lo, 0)
	hi, _ := bits.Add64(uint64(a.hi), uint64(b.hi), carry)
	return int128{hi: int64(hi), lo: lo}
}

func (a int128) sub(b int128) int128 {
	return a.add(b.negate())
}

func (a int128) negate() int128 {
	lo := ^a.lo + 1
	hi := ^a.hi
	if lo == 0 {
		hi++
	}
	return int128{hi: hi, lo: lo}
}

// mul64 returns a*b for two int64 operands, exact to 128 bits.
func mul64(a, b int64) int128 {
	neg := false
	ua, ub := uint64(a), uint64(b)
	if a < 0 {
		ua = uint64(-a)
		neg = !neg
	}
	if b < 0 {
		ub = uint64(-b)
		neg = !neg
	}
	hi, lo := bits.Mul64(ua, ub)
	r := int128{hi: int64(hi), lo: lo}
	if neg {
		r = r.negate()
	}
	return r
}

func (a int128) isNegative() bool { return a.hi < 0 }
func (a int128) isZero() bool     { return a.hi == 0 && a.lo == 0 }

// sign returns -1, 0 or 1.
func (a int128) sign() int {
	if a.isZero() {
		return 0
	}
	if a.isNegative() {
		return -1
	}
	return 1
}

// CrossSign returns the sign of the 2-D cross product (b-a) x (c-a), computed
// in 128-bit arithmetic so that it never overflows regardless of coordinate
// magnitude. Positive means c is to the left of the directed line a->b.
func CrossSign(a, b, c Point) int {
	d1x, d1y := b.X-a.X, b.Y-a.Y
	d2x, d2y := c.X-a.X, c.Y-a.Y
	cross := mul64(d1x, d2y).sub(mul64(d1y, d2x))
	return cross.sign()
}

// doubleAreaExact returns twice the signed area of path as an exact int128
// sum; Area converts it to float64 only at the very end. Positive indicates a
// counter-clockwise contour in a Y-up frame, i.e. clockwise in the Y-down
// frame this package otherwise assumes (outers are positive, see Area).
func doubleAreaExact(path Path) int128 {
	n := len(path)
	if n < 3 {
		return int128{}
	}
	sum := int128{}
	for i := 0; i < n; i++ {
		j := (i + 1) % n
		term := mul64(path[i].X, path[j].Y).sub(mul64(path[j].X, path[i].Y))
		sum = sum.add(term)
	}
	return sum
}

// toFloat64 converts an int128 to the nearest float64; precision loss beyond
// 2^53 is acceptable here because the result only ever feeds Area(), which
// callers use for sign and rough magnitude, never exact comparison.
func (a int128) toFloat64() float64 {
	if a.isNegative() {
		n := a.negate()
		return -(float64(uint64(n.hi))*18446744073709551616.0 + float64(n.lo))
	}
	return float64(a.hi)*18446744073709551616.0 + float64(a.lo) // 2^64
}
