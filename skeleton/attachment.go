package skeleton

import "image"

// Kind tags the attachment variant so consumers can dispatch with a
// switch instead of ordered type tests.
type Kind uint8

// Attachment kinds.
const (
	KindRegion Kind = iota + 1
	KindMesh
	KindClipping
)

// String returns the lower-case name of the kind.
func (k Kind) String() string {
	switch k {
	case KindRegion:
		return "region"
	case KindMesh:
		return "mesh"
	case KindClipping:
		return "clipping"
	default:
		return "unknown"
	}
}

// Attachment is implemented by *RegionAttachment, *MeshAttachment, and
// *ClippingAttachment.
type Attachment interface {
	Name() string
	Kind() Kind
}

// TexturePage is one atlas image. Image may be nil when the page has
// not been loaded.
type TexturePage struct {
	Name          string
	Image         image.Image
	Width, Height int
}

// TextureRegion is a sub-rectangle of a page in normalized coordinates.
type TextureRegion struct {
	Name   string
	Page   *TexturePage
	U, V   float32
	U2, V2 float32
	Rotate bool
}

// NewPageRegion returns a region covering the whole page.
func NewPageRegion(page *TexturePage) *TextureRegion {
	return &TextureRegion{Name: page.Name, Page: page, U: 0, V: 0, U2: 1, V2: 1}
}

// Available reports whether the region resolves to a usable page.
func (r *TextureRegion) Available() bool {
	return r != nil && r.Page != nil
}

// VertexAttachment holds bone-relative vertices shared by meshes and
// clipping polygons.
//
// Unweighted vertices are x,y pairs relative to the slot's bone and
// Bones is nil. Weighted vertices use Bones as runs of
// [count, boneIndex...] and Vertices as x,y,weight triples, one per
// influence.
type VertexAttachment struct {
	Bones               []int
	Vertices            []float32
	WorldVerticesLength int
}

// ComputeWorldVertices transforms count floats (count/2 vertices) of the
// attachment, beginning at float start, into dst. The first vertex is
// written at dst[offset] and each following vertex stride floats later.
// The slot's deform replaces local vertices when present.
func (va *VertexAttachment) ComputeWorldVertices(slot *Slot, start, count int, dst []float32, offset, stride int) {
	end := offset + (count>>1)*stride
	deform := slot.Deform
	vertices := va.Vertices

	if va.Bones == nil {
		if len(deform) > 0 {
			vertices = deform
		}
		m := slot.Bone.world
		for v, w := start, offset; w < end; v, w = v+2, w+stride {
			dst[w], dst[w+1] = transformPoint(m, vertices[v], vertices[v+1])
		}
		return
	}

	v, skip := 0, 0
	for i := 0; i < start; i += 2 {
		n := va.Bones[v]
		v += n + 1
		skip += n
	}
	bones := slot.Bone.Skeleton.Bones
	b, f := skip*3, skip<<1
	for w := offset; w < end; w += stride {
		var wx, wy float32
		n := va.Bones[v]
		v++
		n += v
		for ; v < n; v, b = v+1, b+3 {
			m := bones[va.Bones[v]].world
			vx, vy, weight := vertices[b], vertices[b+1], vertices[b+2]
			if len(deform) > 0 {
				vx += deform[f]
				vy += deform[f+1]
				f += 2
			}
			x, y := transformPoint(m, vx, vy)
			wx += x * weight
			wy += y * weight
		}
		dst[w], dst[w+1] = wx, wy
	}
}
