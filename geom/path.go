package geom

// Path is a non-empty ordered sequence of vertices. A path is closed if the
// implicit segment from its last point back to its first is part of its
// boundary; no duplicate closing vertex is ever stored. Open paths are
// tolerated by the emitter but rejected by the polygon algebra in package
// poly.
type Path []Point

// Paths is a polygon soup: an ordered collection of Path values interpreted
// under a caller-chosen fill rule.
type Paths []Path

// Reverse returns a new path with the vertex order reversed.
func (p Path) Reverse() Path {
	out := make(Path, len(p))
	for i, j := 0, len(p)-1; i < len(p); i, j = i+1, j-1 {
		out[i] = p[j]
	}
	return out
}

// Reverse returns a new polygon soup with every path reversed.
func (ps Paths) Reverse() Paths {
	out := make(Paths, len(ps))
	for i, p := range ps {
		out[i] = p.Reverse()
	}
	return out
}

// Closed duplicates the first vertex onto the end, which the G-code emitter
// needs for paths (such as Engrave contours) that must trace their implicit
// closing segment explicitly.
func (p Path) Closed() Path {
	if len(p) == 0 || p[0].Equal(p[len(p)-1]) {
		out := make(Path, len(p))
		copy(out, p)
		return out
	}
	out := make(Path, len(p)+1)
	copy(out, p)
	out[len(p)] = p[0]
	return out
}

// StripDuplicates removes consecutive duplicate vertices. When closed is
// true the wrap-around segment (last point to first) is also checked.
func StripDuplicates(path Path, closed bool) Path {
	if len(path) == 0 {
		return path
	}
	out := make(Path, 0, len(path))
	out = append(out, path[0])
	for _, pt := range path[1:] {
		if !pt.Equal(out[len(out)-1]) {
			out = append(out, pt)
		}
	}
	if closed && len(out) > 1 && out[0].Equal(out[len(out)-1]) {
		out = out[:len(out)-1]
	}
	return out
}
