package poly

import "github.com/opencam/camcore/geom"

func withinTolerance(a, b geom.Point, tolerance int64) bool {
	dx, dy := float64(a.X-b.X), float64(a.Y-b.Y)
	tol := float64(tolerance)
	return dx*dx+dy*dy <= tol*tol
}

// MergePaths greedily concatenates consecutive input paths that share an
// open end: each output path starts with an unmerged input, and subsequent
// inputs are appended whenever the next path's first vertex lies within
// tolerance of the current open end and the connecting segment does not
// cross clip. Order within the input list is preserved for paths that
// cannot be merged into anything. tolerance is normally cutterDiameter/1000.
func MergePaths(clip geom.Paths, paths geom.Paths, tolerance int64) []CamPath {
	used := make([]bool, len(paths))
	var out []CamPath

	for i, p := range paths {
		if used[i] || len(p) == 0 {
			continue
		}
		used[i] = true
		cur := make(geom.Path, len(p))
		copy(cur, p)

		for {
			merged := false
			end := cur[len(cur)-1]
			for j, q := range paths {
				if used[j] || len(q) == 0 {
					continue
				}
				if withinTolerance(end, q[0], tolerance) && !Crosses(clip, end, q[0]) {
					cur = append(cur, q...)
					used[j] = true
					merged = true
					break
				}
			}
			if !merged {
				break
			}
		}

		safe := !Crosses(clip, cur[len(cur)-1], cur[0])
		out = append(out, CamPath{Path: cur, SafeToClose: safe})
	}
	return out
}
