package clip

// Polygons are flat x,y pair slices with an implicit closing edge.

// SignedArea returns twice the signed area of the polygon. Positive
// means counter-clockwise in a y-up system.
func SignedArea(poly []float32) float32 {
	n := len(poly) / 2
	var area float32
	for i := 0; i < n; i++ {
		j := (i + 1) % n
		area += poly[i*2]*poly[j*2+1] - poly[j*2]*poly[i*2+1]
	}
	return area
}

// MakeCounterClockwise reverses the vertex order in place when the
// polygon winds clockwise.
func MakeCounterClockwise(poly []float32) {
	if SignedArea(poly) >= 0 {
		return
	}
	n := len(poly) / 2
	for i, j := 0, n-1; i < j; i, j = i+1, j-1 {
		poly[i*2], poly[j*2] = poly[j*2], poly[i*2]
		poly[i*2+1], poly[j*2+1] = poly[j*2+1], poly[i*2+1]
	}
}

// IsConvex reports whether a counter-clockwise polygon is convex.
// Collinear vertices are allowed.
func IsConvex(poly []float32) bool {
	n := len(poly) / 2
	if n < 3 {
		return false
	}
	for i := 0; i < n; i++ {
		a := vertex(poly, i)
		b := vertex(poly, (i+1)%n)
		c := vertex(poly, (i+2)%n)
		if b.Sub(a).Cross(c.Sub(b)) < 0 {
			return false
		}
	}
	return true
}

// Triangulate ear-clips a simple counter-clockwise polygon and returns
// triangle vertex indices, three per triangle. Degenerate input yields
// whatever triangles could be found.
func Triangulate(poly []float32) []int {
	n := len(poly) / 2
	if n < 3 {
		return nil
	}
	remaining := make([]int, n)
	for i := range remaining {
		remaining[i] = i
	}
	tris := make([]int, 0, (n-2)*3)

	for len(remaining) > 3 {
		m := len(remaining)
		found := false
		for i := 0; i < m; i++ {
			prev := remaining[(i+m-1)%m]
			cur := remaining[i]
			next := remaining[(i+1)%m]
			if !isEar(poly, remaining, prev, cur, next) {
				continue
			}
			tris = append(tris, prev, cur, next)
			remaining = append(remaining[:i], remaining[i+1:]...)
			found = true
			break
		}
		if !found {
			// Self-intersecting or numerically degenerate: fan the rest.
			for i := 1; i+1 < len(remaining); i++ {
				tris = append(tris, remaining[0], remaining[i], remaining[i+1])
			}
			return tris
		}
	}
	return append(tris, remaining[0], remaining[1], remaining[2])
}

func isEar(poly []float32, remaining []int, prev, cur, next int) bool {
	a, b, c := vertex(poly, prev), vertex(poly, cur), vertex(poly, next)
	if b.Sub(a).Cross(c.Sub(b)) <= 0 {
		return false
	}
	for _, idx := range remaining {
		if idx == prev || idx == cur || idx == next {
			continue
		}
		if pointInTriangle(vertex(poly, idx), a, b, c) {
			return false
		}
	}
	return true
}

func pointInTriangle(p, a, b, c Point) bool {
	return b.Sub(a).Cross(p.Sub(a)) >= 0 &&
		c.Sub(b).Cross(p.Sub(b)) >= 0 &&
		a.Sub(c).Cross(p.Sub(c)) >= 0
}

// Decompose splits a simple polygon into convex counter-clockwise
// pieces. A convex polygon is returned as its only piece. Concave
// polygons are ear-clipped and neighboring triangles are then merged
// while the union stays convex.
func Decompose(poly []float32) [][]float32 {
	p := append([]float32(nil), poly...)
	MakeCounterClockwise(p)
	if IsConvex(p) {
		return [][]float32{p}
	}
	tris := Triangulate(p)
	indexed := make([][]int, 0, len(tris)/3)
	for i := 0; i+2 < len(tris); i += 3 {
		tri := []int{tris[i], tris[i+1], tris[i+2]}
		if SignedArea(coords(p, tri)) == 0 {
			continue
		}
		indexed = append(indexed, tri)
	}
	indexed = mergeConvex(p, indexed)

	pieces := make([][]float32, len(indexed))
	for i, idx := range indexed {
		pieces[i] = coords(p, idx)
	}
	return pieces
}

// mergeConvex repeatedly joins two pieces sharing an edge when the
// joined polygon is convex.
func mergeConvex(poly []float32, pieces [][]int) [][]int {
	for merged := true; merged; {
		merged = false
		for i := 0; i < len(pieces) && !merged; i++ {
			for j := i + 1; j < len(pieces) && !merged; j++ {
				joined := joinShared(pieces[i], pieces[j])
				if joined == nil || !IsConvex(coords(poly, joined)) {
					continue
				}
				pieces[i] = joined
				pieces = append(pieces[:j], pieces[j+1:]...)
				merged = true
			}
		}
	}
	return pieces
}

// joinShared returns the union of two counter-clockwise index polygons
// that share an edge, or nil when they share none. a walks u->v along
// the edge and b walks v->u.
func joinShared(a, b []int) []int {
	na, nb := len(a), len(b)
	for k := 0; k < na; k++ {
		u, v := a[k], a[(k+1)%na]
		for l := 0; l < nb; l++ {
			if b[l] != v || b[(l+1)%nb] != u {
				continue
			}
			out := make([]int, 0, na+nb-2)
			for m := 1; m <= na; m++ {
				out = append(out, a[(k+m)%na])
			}
			for m := 2; m < nb; m++ {
				out = append(out, b[(l+m)%nb])
			}
			return out
		}
	}
	return nil
}

// Contains reports whether p lies inside the polygon by the even-odd
// rule. Points on the boundary may go either way.
func Contains(poly []float32, x, y float32) bool {
	n := len(poly) / 2
	inside := false
	for i, j := 0, n-1; i < n; j, i = i, i+1 {
		xi, yi := poly[i*2], poly[i*2+1]
		xj, yj := poly[j*2], poly[j*2+1]
		if (yi > y) != (yj > y) && x < (xj-xi)*(y-yi)/(yj-yi)+xi {
			inside = !inside
		}
	}
	return inside
}

// containsTriangle reports whether triangle abc lies inside the simple
// polygon poly without touching its boundary.
func containsTriangle(poly []float32, a, b, c Point) bool {
	if !Contains(poly, a.X, a.Y) || !Contains(poly, b.X, b.Y) || !Contains(poly, c.X, c.Y) {
		return false
	}
	edges := [3][2]Point{{a, b}, {b, c}, {c, a}}
	n := len(poly) / 2
	for i := 0; i < n; i++ {
		p, q := vertex(poly, i), vertex(poly, (i+1)%n)
		if pointInTriangle(p, a, b, c) {
			return false
		}
		for _, e := range edges {
			if segmentsTouch(p, q, e[0], e[1]) {
				return false
			}
		}
	}
	return true
}

// segmentsTouch reports whether segments pq and rs intersect, counting
// touching endpoints and collinear overlap.
func segmentsTouch(p, q, r, s Point) bool {
	d1 := q.Sub(p).Cross(r.Sub(p))
	d2 := q.Sub(p).Cross(s.Sub(p))
	d3 := s.Sub(r).Cross(p.Sub(r))
	d4 := s.Sub(r).Cross(q.Sub(r))
	if ((d1 > 0 && d2 < 0) || (d1 < 0 && d2 > 0)) && ((d3 > 0 && d4 < 0) || (d3 < 0 && d4 > 0)) {
		return true
	}
	return (d1 == 0 && onSegment(p, q, r)) || (d2 == 0 && onSegment(p, q, s)) ||
		(d3 == 0 && onSegment(r, s, p)) || (d4 == 0 && onSegment(r, s, q))
}

// onSegment reports whether collinear point x lies within the bounds of pq.
func onSegment(p, q, x Point) bool {
	return min(p.X, q.X) <= x.X && x.X <= max(p.X, q.X) &&
		min(p.Y, q.Y) <= x.Y && x.Y <= max(p.Y, q.Y)
}

func coords(poly []float32, idx []int) []float32 {
	out := make([]float32, 0, len(idx)*2)
	for _, i := range idx {
		out = append(out, poly[i*2], poly[i*2+1])
	}
	return out
}

func vertex(poly []float32, i int) Point {
	return Point{X: poly[i*2], Y: poly[i*2+1]}
}
