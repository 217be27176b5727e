package spine

import "github.com/gogpu/gg-spine/skeleton"

// SlotRenderer rebuilds one slot's Mesh every frame.
type SlotRenderer struct {
	slot *skeleton.Slot

	// attachment is the last attachment seen; kind and drawable are
	// derived from it and only recomputed when it changes.
	attachment skeleton.Attachment
	kind       skeleton.Kind
	drawable   bool

	mesh Mesh
}

// NewSlotRenderer creates a renderer for slot with an empty, hidden mesh.
func NewSlotRenderer(slot *skeleton.Slot) *SlotRenderer {
	return &SlotRenderer{
		slot: slot,
		mesh: Mesh{Name: slot.Data.Name, Tint: skeleton.White},
	}
}

// Slot returns the rendered slot.
func (sr *SlotRenderer) Slot() *skeleton.Slot {
	return sr.slot
}

// Mesh returns the slot's persistent mesh.
func (sr *SlotRenderer) Mesh() *Mesh {
	return &sr.mesh
}

// resetAttachment reclassifies the attachment when its identity changed.
func (sr *SlotRenderer) resetAttachment(a skeleton.Attachment) {
	if a == sr.attachment {
		return
	}
	sr.attachment = a
	sr.kind = 0
	sr.drawable = false
	if a != nil {
		sr.kind = a.Kind()
		sr.drawable = sr.kind == skeleton.KindRegion || sr.kind == skeleton.KindMesh
	}
	name := ""
	if a != nil {
		name = a.Name()
	}
	Logger().Debug("spine: slot attachment changed", "slot", sr.slot.Data.Name, "attachment", name, "kind", sr.kind.String())
}

// RenderSlot rebuilds the mesh from the slot's current attachment.
//
// scratch receives the unclipped world vertices and is overwritten.
// clipper is the frame's clip coordinator: clipping attachments open a
// session on it, and while a session is open geometry is clipped. Every
// slot that is not itself a clipping attachment ends with
// ClipEndWithSlot so the open clip can close at its end slot.
func (sr *SlotRenderer) RenderSlot(scratch *Scratch, clipper *Clipper) {
	slot := sr.slot
	a := slot.Attachment()
	sr.resetAttachment(a)

	m := &sr.mesh
	m.Blend = blendModeOf(slot.Data.BlendMode)
	m.Visible = false

	stride := VertexSize
	if clipper.IsClipping() {
		stride = clipVertexSize
	}

	var (
		vertices  []float32
		floats    int
		triangles []uint16
		uvs       []float32
		color     skeleton.Color
		region    *skeleton.TextureRegion
	)

	switch sr.kind {
	case skeleton.KindRegion:
		r := a.(*skeleton.RegionAttachment)
		floats = stride * 4
		vertices = scratch.Reserve(floats)
		r.ComputeWorldVertices(slot.Bone, vertices, 0, stride)
		triangles = skeleton.QuadTriangles[:]
		uvs, color, region = r.UVs(), r.Color, r.Region
	case skeleton.KindMesh:
		mesh := a.(*skeleton.MeshAttachment)
		floats = mesh.VertexCount() * stride
		vertices = scratch.Reserve(floats)
		mesh.ComputeWorldVertices(slot, 0, mesh.WorldVerticesLength, vertices, 0, stride)
		triangles = mesh.Triangles
		uvs, color, region = mesh.UVs(), mesh.Color, mesh.Region
	case skeleton.KindClipping:
		m.clear()
		clipper.ClipStart(slot, a.(*skeleton.ClippingAttachment))
		return
	}

	switch {
	case !sr.drawable:
		m.clear()
	case !region.Available():
		m.clear()
		Logger().Debug("spine: skipping slot without texture", "slot", slot.Data.Name, "attachment", a.Name())
	default:
		sr.build(clipper, vertices, floats, stride, triangles, uvs, color, region.Page)
	}

	clipper.ClipEndWithSlot(slot)
}

// build packs the computed vertices into the mesh, clipping them when a
// session is open.
func (sr *SlotRenderer) build(clipper *Clipper, vertices []float32, floats, stride int, triangles []uint16, uvs []float32, color skeleton.Color, page *skeleton.TexturePage) {
	slot := sr.slot
	m := &sr.mesh

	if clipper.IsClipping() {
		clipper.ClipTriangles(vertices, floats, triangles, len(triangles), uvs, skeleton.White, skeleton.White, false)
		clipped := clipper.ClippedVertices()
		m.Positions, m.UVs = repackRecords(m.Positions, m.UVs, clipped, len(clipped), clipper.Stride(), clipper.UVOffset())
		m.Indices = append(m.Indices[:0], clipper.ClippedTriangles()...)
	} else {
		m.Positions = repackPositions(m.Positions, vertices, floats, stride)
		m.UVs = append(m.UVs[:0], uvs...)
		m.Indices = append(m.Indices[:0], triangles...)
	}

	// Zero alpha still draws; blending makes it invisible.
	m.Tint = CompositeTint(slot.Skeleton().Color, slot.Color, color)
	m.Texture = page
	m.Visible = true
}

// CompositeTint multiplies skeleton, slot, and attachment colors
// component-wise.
func CompositeTint(skeletonColor, slotColor, attachmentColor skeleton.Color) skeleton.Color {
	return skeletonColor.Mul(slotColor).Mul(attachmentColor)
}
