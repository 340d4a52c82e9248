// Package geom provides the fixed-point 2-D primitives the rest of the CAM
// core is built on: points, paths, polygon soups and their bounding boxes.
//
// All coordinates are int64 internal units. The scale factor between a
// caller's working unit (mm or inch) and one internal unit is fixed at 1e6,
// chosen so that sub-step rounding never collapses an edge while staying
// well inside the int64 range for any realistic workpiece.
package geom

// Scale is the number of internal units per millimetre.
const Scale = 1_000_000

// Point is a single vertex in the fixed-point coordinate space.
type Point struct {
	X, Y int64
}

// Add returns p+q.
func (p Point) Add(q Point) Point {
	return Point{p.X + q.X, p.Y + q.Y}
}

// Sub returns p-q.
func (p Point) Sub(q Point) Point {
	return Point{p.X - q.X, p.Y - q.Y}
}

// Equal reports whether p and q are the same point.
func (p Point) Equal(q Point) bool {
	return p.X == q.X && p.Y == q.Y
}
