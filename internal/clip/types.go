// Package clip clips triangle batches against arbitrary simple polygons.
//
// A clip polygon is decomposed once into convex pieces; every triangle of
// a batch is then clipped against each piece with Sutherland-Hodgman.
// Triangles that lie entirely inside the polygon pass through without
// subdivision.
package clip

// Point represents a 2D point with float32 coordinates.
type Point struct {
	X, Y float32
}

// Sub returns the difference of two points.
func (p Point) Sub(q Point) Point {
	return Point{X: p.X - q.X, Y: p.Y - q.Y}
}

// Cross returns the z component of the cross product p x q.
func (p Point) Cross(q Point) float32 {
	return p.X*q.Y - p.Y*q.X
}

// Rect represents an axis-aligned rectangle by its corners.
type Rect struct {
	MinX, MinY float32
	MaxX, MaxY float32
}

// boundsOf returns the bounds of the points in xy (x,y pairs).
func boundsOf(xy []float32) Rect {
	if len(xy) < 2 {
		return Rect{}
	}
	r := Rect{MinX: xy[0], MinY: xy[1], MaxX: xy[0], MaxY: xy[1]}
	for i := 2; i+1 < len(xy); i += 2 {
		x, y := xy[i], xy[i+1]
		if x < r.MinX {
			r.MinX = x
		}
		if x > r.MaxX {
			r.MaxX = x
		}
		if y < r.MinY {
			r.MinY = y
		}
		if y > r.MaxY {
			r.MaxY = y
		}
	}
	return r
}

// Intersects returns true if two rectangles overlap or touch.
func (r Rect) Intersects(other Rect) bool {
	return !(other.MinX > r.MaxX || other.MaxX < r.MinX ||
		other.MinY > r.MaxY || other.MaxY < r.MinY)
}

// Contains reports whether other lies within r.
func (r Rect) Contains(other Rect) bool {
	return other.MinX >= r.MinX && other.MaxX <= r.MaxX &&
		other.MinY >= r.MinY && other.MaxY <= r.MaxY
}
