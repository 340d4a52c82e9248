package geom

// Centroid returns the area-weighted centroid of a closed polygon.
// Degenerate input (fewer than 3 points, or zero enclosed area, as with a
// perfectly thin sliver) falls back to the average of the vertices; the
// fallback never matters for the centroid's only caller, placing a drill
// point somewhere inside its contour, but it keeps the function total.
func Centroid(path Path) Point {
	n := len(path)
	if n == 0 {
		return Point{}
	}
	if n < 3 {
		return averageVertex(path)
	}

	var area, cx, cy float64
	for i := 0; i < n; i++ {
		j := (i + 1) % n
		cross := float64(path[i].X)*float64(path[j].Y) - float64(path[j].X)*float64(path[i].Y)
		area += cross
		cx += (float64(path[i].X) + float64(path[j].X)) * cross
		cy += (float64(path[i].Y) + float64(path[j].Y)) * cross
	}
	if area == 0 {
		return averageVertex(path)
	}
	area *= 0.5
	return Point{X: int64(cx / (6 * area)), Y: int64(cy / (6 * area))}
}

func averageVertex(path Path) Point {
	var sx, sy int64
	for _, p := range path {
		sx += p.X
		sy += p.Y
	}
	n := int64(len(path))
	if n == 0 {
		return Point{}
	}
	return Point{X: sx / n, Y: sy / n}
}
