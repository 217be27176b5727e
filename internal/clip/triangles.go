package clip

// Clipped vertex record layouts. Every record starts with position and
// light color, followed by texture coordinates; two-color records append
// the dark color.
const (
	// RecordSize is the float count of a single-color record: x,y,r,g,b,a,u,v.
	RecordSize = 8

	// TwoColorRecordSize is the float count of a two-color record:
	// x,y,r,g,b,a,u,v,r2,g2,b2,a2.
	TwoColorRecordSize = 12

	// RecordUVOffset is the offset of u within a record.
	RecordUVOffset = 6

	// MaxVertices is the most records a single ClipTriangles call emits,
	// the limit of uint16 indices.
	MaxVertices = 1 << 16
)

// Clipper clips triangle batches against a polygon. The zero value has
// no polygon and clips everything away.
type Clipper struct {
	polygon    []float32
	polyBounds Rect
	pieces     [][]float32
	bounds     []Rect

	// Vertices holds the records produced by the last ClipTriangles call.
	Vertices []float32

	// Triangles holds record indices, three per triangle, for Vertices.
	Triangles []uint16

	// Truncated is set when the last ClipTriangles call stopped early
	// because its output would exceed MaxVertices records.
	Truncated bool

	stride             int
	remap              []int
	scratchA, scratchB []float32
}

// SetPolygon decomposes poly (x,y pairs, any winding) into convex pieces
// and makes it the clip region.
func (c *Clipper) SetPolygon(poly []float32) {
	c.polygon = append(c.polygon[:0], poly...)
	MakeCounterClockwise(c.polygon)
	c.polyBounds = boundsOf(c.polygon)
	c.pieces = Decompose(c.polygon)
	c.bounds = c.bounds[:0]
	for _, p := range c.pieces {
		c.bounds = append(c.bounds, boundsOf(p))
	}
}

// Reset drops the polygon and any clipped output.
func (c *Clipper) Reset() {
	c.polygon = c.polygon[:0]
	c.pieces = nil
	c.Truncated = false
	c.bounds = c.bounds[:0]
	c.Vertices = c.Vertices[:0]
	c.Triangles = c.Triangles[:0]
}

// Pieces returns the convex pieces of the current polygon.
func (c *Clipper) Pieces() [][]float32 {
	return c.pieces
}

// Stride returns the record size used by the last ClipTriangles call.
func (c *Clipper) Stride() int {
	if c.stride == 0 {
		return RecordSize
	}
	return c.stride
}

// ClipTriangles clips a batch against the polygon and replaces Vertices
// and Triangles with the result.
//
// vertices holds x,y pairs; only the first vertexCount floats are used.
// triangles indexes vertex pairs, three per triangle. uvs holds one
// u,v pair per vertex. light (and dark, when twoColor) are written into
// every output record. Vertices created on the polygon boundary get UVs
// interpolated barycentrically from their source triangle. Triangles
// inside the polygon are kept whole with their vertices shared, even
// when they span several convex pieces.
func (c *Clipper) ClipTriangles(vertices []float32, vertexCount int, triangles []uint16, uvs []float32, light, dark [4]float32, twoColor bool) {
	c.stride = RecordSize
	if twoColor {
		c.stride = TwoColorRecordSize
	}
	c.Vertices = c.Vertices[:0]
	c.Triangles = c.Triangles[:0]
	c.Truncated = false

	n := vertexCount / 2
	if cap(c.remap) < n {
		c.remap = make([]int, n)
	}
	c.remap = c.remap[:n]
	for i := range c.remap {
		c.remap[i] = -1
	}

	for t := 0; t+2 < len(triangles); t += 3 {
		i1, i2, i3 := int(triangles[t]), int(triangles[t+1]), int(triangles[t+2])
		x1, y1 := vertices[i1*2], vertices[i1*2+1]
		x2, y2 := vertices[i2*2], vertices[i2*2+1]
		x3, y3 := vertices[i3*2], vertices[i3*2+1]
		tb := boundsOf([]float32{x1, y1, x2, y2, x3, y3})

		if len(c.pieces) > 1 && c.polyBounds.Contains(tb) &&
			containsTriangle(c.polygon, Point{x1, y1}, Point{x2, y2}, Point{x3, y3}) {
			if !c.keep(vertices, uvs, light, dark, twoColor, [3]int{i1, i2, i3}) {
				return
			}
			continue
		}

		for p, piece := range c.pieces {
			if !c.bounds[p].Intersects(tb) {
				continue
			}
			poly, clipped := c.clipTriangle(x1, y1, x2, y2, x3, y3, piece)
			if !clipped {
				// Entirely inside one piece; pieces do not overlap.
				if !c.keep(vertices, uvs, light, dark, twoColor, [3]int{i1, i2, i3}) {
					return
				}
				break
			}
			if poly == nil {
				continue
			}

			d0, d1 := y2-y3, x3-x2
			d2, d4 := x1-x3, y3-y1
			det := d0*d2 + d1*(y1-y3)
			if det == 0 {
				break
			}
			inv := 1 / det
			u1, v1 := uvs[i1*2], uvs[i1*2+1]
			u2, v2 := uvs[i2*2], uvs[i2*2+1]
			u3, v3 := uvs[i3*2], uvs[i3*2+1]

			base := len(c.Vertices) / c.stride
			count := len(poly) / 2
			if base+count > MaxVertices {
				c.Truncated = true
				return
			}
			for k := 0; k+1 < len(poly); k += 2 {
				x, y := poly[k], poly[k+1]
				a := (d0*(x-x3) + d1*(y-y3)) * inv
				b := (d4*(x-x3) + d2*(y-y3)) * inv
				cw := 1 - a - b
				c.emit(x, y, u1*a+u2*b+u3*cw, v1*a+v2*b+v3*cw, light, dark, twoColor)
			}
			for k := 1; k+1 < count; k++ {
				c.Triangles = append(c.Triangles, uint16(base), uint16(base+k), uint16(base+k+1))
			}
		}
	}
}

// keep passes an unclipped triangle through, sharing records of
// vertices already emitted. It reports false when the records would
// exceed MaxVertices.
func (c *Clipper) keep(vertices, uvs []float32, light, dark [4]float32, twoColor bool, tri [3]int) bool {
	need := 0
	for _, idx := range tri {
		if c.remap[idx] < 0 {
			need++
		}
	}
	if len(c.Vertices)/c.stride+need > MaxVertices {
		c.Truncated = true
		return false
	}
	for _, idx := range tri {
		if c.remap[idx] < 0 {
			c.remap[idx] = c.emit(vertices[idx*2], vertices[idx*2+1], uvs[idx*2], uvs[idx*2+1], light, dark, twoColor)
		}
		c.Triangles = append(c.Triangles, uint16(c.remap[idx]))
	}
	return true
}

// emit appends a record and returns its vertex index.
func (c *Clipper) emit(x, y, u, v float32, light, dark [4]float32, twoColor bool) int {
	idx := len(c.Vertices) / c.stride
	c.Vertices = append(c.Vertices, x, y, light[0], light[1], light[2], light[3], u, v)
	if twoColor {
		c.Vertices = append(c.Vertices, dark[0], dark[1], dark[2], dark[3])
	}
	return idx
}
