package spine

import (
	"github.com/gogpu/gg-spine/internal/clip"
	"github.com/gogpu/gg-spine/skeleton"
)

// Clipper coordinates clipping across the slots of one frame.
//
// A clipping attachment opens a session with ClipStart; every slot drawn
// while the session is open routes its triangles through ClipTriangles;
// the session closes when ClipEndWithSlot is called with the clip's end
// slot, or when ClipEnd force-closes it at the end of the frame.
//
// A Clipper holds per-frame state and is not safe for concurrent use.
type Clipper struct {
	attachment *skeleton.ClippingAttachment
	polygon    []float32
	inner      clip.Clipper
}

// NewClipper creates a Clipper with no open session.
func NewClipper() *Clipper {
	return &Clipper{}
}

// ClipStart opens a session with the attachment's polygon, transformed
// into world space through slot. It returns the number of convex pieces
// the polygon was split into. Starting while a session is open is a
// no-op that returns 0; sessions do not nest.
func (c *Clipper) ClipStart(slot *skeleton.Slot, a *skeleton.ClippingAttachment) int {
	if c.attachment != nil {
		return 0
	}
	n := a.WorldVerticesLength
	if n < 6 {
		return 0
	}
	c.attachment = a
	if cap(c.polygon) < n {
		c.polygon = make([]float32, n)
	}
	c.polygon = c.polygon[:n]
	a.ComputeWorldVertices(slot, 0, n, c.polygon, 0, 2)
	c.inner.SetPolygon(c.polygon)

	pieces := len(c.inner.Pieces())
	Logger().Debug("spine: clip start", "slot", slot.Data.Name, "clip", a.Name(), "pieces", pieces)
	return pieces
}

// IsClipping reports whether a session is open.
func (c *Clipper) IsClipping() bool {
	return c.attachment != nil
}

// ClipEndWithSlot closes the session if slot is the open clip's end
// slot. Otherwise it does nothing, which lets a clip span several slots.
func (c *Clipper) ClipEndWithSlot(slot *skeleton.Slot) {
	if c.attachment != nil && c.attachment.EndSlot == slot.Data {
		c.ClipEnd()
	}
}

// ClipEnd closes any open session. It is safe to call when none is open.
func (c *Clipper) ClipEnd() {
	if c.attachment == nil {
		return
	}
	Logger().Debug("spine: clip end", "clip", c.attachment.Name())
	c.attachment = nil
	c.polygon = c.polygon[:0]
	c.inner.Reset()
}

// ClipTriangles clips a batch of x,y vertex pairs against the open
// session's polygon. Only the first vertexCount floats of vertices and
// the first triangleCount indices are read. Results replace the previous
// ClippedVertices and ClippedTriangles. Output beyond
// clip.MaxVertices records is dropped and logged.
func (c *Clipper) ClipTriangles(vertices []float32, vertexCount int, triangles []uint16, triangleCount int, uvs []float32, light, dark skeleton.Color, twoColor bool) {
	c.inner.ClipTriangles(vertices, vertexCount, triangles[:triangleCount], uvs,
		[4]float32{light.R, light.G, light.B, light.A},
		[4]float32{dark.R, dark.G, dark.B, dark.A},
		twoColor)
	if c.inner.Truncated {
		name := ""
		if c.attachment != nil {
			name = c.attachment.Name()
		}
		Logger().Warn("spine: clipped mesh truncated", "clip", name,
			"records", len(c.inner.Vertices)/c.inner.Stride(), "max", clip.MaxVertices)
	}
}

// Truncated reports whether the last ClipTriangles call dropped output
// to stay within 16-bit indices.
func (c *Clipper) Truncated() bool {
	return c.inner.Truncated
}

// ClippedVertices returns the records of the last ClipTriangles call.
// Each record is Stride floats long with u,v at UVOffset.
func (c *Clipper) ClippedVertices() []float32 {
	return c.inner.Vertices
}

// ClippedTriangles returns record indices of the last ClipTriangles call.
func (c *Clipper) ClippedTriangles() []uint16 {
	return c.inner.Triangles
}

// Stride returns the record size of ClippedVertices.
func (c *Clipper) Stride() int {
	return c.inner.Stride()
}

// UVOffset returns the offset of u within a clipped record.
func (c *Clipper) UVOffset() int {
	return clip.RecordUVOffset
}
