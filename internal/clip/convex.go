package clip

// side returns the signed distance-like value of p relative to the
// directed edge e1->e2. Non-negative means p is on the inner side of a
// counter-clockwise polygon.
func side(e1x, e1y, e2x, e2y, px, py float32) float32 {
	return (e2x-e1x)*(py-e1y) - (e2y-e1y)*(px-e1x)
}

// clipTriangle clips a triangle against a counter-clockwise convex
// polygon using Sutherland-Hodgman. It returns the resulting polygon as
// x,y pairs (nil when nothing remains) and whether any edge cut the
// triangle. When clipped is false the triangle lies entirely inside.
//
// The returned slice aliases the clipper's scratch and is valid until
// the next call.
func (c *Clipper) clipTriangle(x1, y1, x2, y2, x3, y3 float32, poly []float32) (result []float32, clipped bool) {
	input := append(c.scratchA[:0], x1, y1, x2, y2, x3, y3)
	output := c.scratchB[:0]
	defer func() {
		c.scratchA, c.scratchB = input, output
	}()

	n := len(poly) / 2
	for i := 0; i < n; i++ {
		j := (i + 1) % n
		ex1, ey1 := poly[i*2], poly[i*2+1]
		ex2, ey2 := poly[j*2], poly[j*2+1]

		output = output[:0]
		m := len(input) / 2
		for k := 0; k < m; k++ {
			l := (k + 1) % m
			px, py := input[k*2], input[k*2+1]
			qx, qy := input[l*2], input[l*2+1]
			sp := side(ex1, ey1, ex2, ey2, px, py)
			sq := side(ex1, ey1, ex2, ey2, qx, qy)

			switch {
			case sp >= 0 && sq >= 0:
				output = append(output, qx, qy)
			case sp >= 0:
				t := sp / (sp - sq)
				output = append(output, px+(qx-px)*t, py+(qy-py)*t)
				clipped = true
			case sq >= 0:
				t := sp / (sp - sq)
				output = append(output, px+(qx-px)*t, py+(qy-py)*t, qx, qy)
				clipped = true
			default:
				clipped = true
			}
		}

		if len(output) < 6 {
			return nil, true
		}
		input, output = output, input
	}
	return input, clipped
}
