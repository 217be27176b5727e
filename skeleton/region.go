package skeleton

import "math"

// QuadTriangles is the fixed triangulation of a region quad.
var QuadTriangles = [6]uint16{0, 1, 2, 2, 3, 0}

// RegionAttachment is a textured quad positioned relative to its bone.
// Corners are ordered bottom-left, upper-left, upper-right, bottom-right.
type RegionAttachment struct {
	name string

	X, Y           float32
	Rotation       float32 // degrees
	ScaleX, ScaleY float32
	Width, Height  float32
	Color          Color
	Region         *TextureRegion

	offset [8]float32
	uvs    [8]float32
}

// NewRegionAttachment creates a region with unit scale and a white color.
// Call UpdateOffset after changing placement fields and SetRegion to bind
// a texture region.
func NewRegionAttachment(name string, width, height float32) *RegionAttachment {
	r := &RegionAttachment{name: name, ScaleX: 1, ScaleY: 1, Width: width, Height: height, Color: White}
	r.UpdateOffset()
	return r
}

func (r *RegionAttachment) Name() string { return r.name }

func (r *RegionAttachment) Kind() Kind { return KindRegion }

// UpdateOffset recomputes the bone-space corners from the placement fields.
func (r *RegionAttachment) UpdateOffset() {
	localX := -r.Width / 2 * r.ScaleX
	localY := -r.Height / 2 * r.ScaleY
	localX2 := r.Width / 2 * r.ScaleX
	localY2 := r.Height / 2 * r.ScaleY

	rad := float64(r.Rotation) * math.Pi / 180
	cos := float32(math.Cos(rad))
	sin := float32(math.Sin(rad))

	localXCos := localX*cos + r.X
	localXSin := localX * sin
	localYCos := localY*cos + r.Y
	localYSin := localY * sin
	localX2Cos := localX2*cos + r.X
	localX2Sin := localX2 * sin
	localY2Cos := localY2*cos + r.Y
	localY2Sin := localY2 * sin

	o := &r.offset
	o[0], o[1] = localXCos-localYSin, localYCos+localXSin
	o[2], o[3] = localXCos-localY2Sin, localY2Cos+localXSin
	o[4], o[5] = localX2Cos-localY2Sin, localY2Cos+localX2Sin
	o[6], o[7] = localX2Cos-localYSin, localYCos+localX2Sin
}

// SetRegion binds a texture region and recomputes UVs.
func (r *RegionAttachment) SetRegion(region *TextureRegion) {
	r.Region = region
	if region == nil {
		r.uvs = [8]float32{}
		return
	}
	u, v, u2, v2 := region.U, region.V, region.U2, region.V2
	if region.Rotate {
		r.uvs = [8]float32{u2, v2, u, v2, u, v, u2, v}
		return
	}
	r.uvs = [8]float32{u, v2, u, v, u2, v, u2, v2}
}

// UVs returns the per-corner texture coordinates.
func (r *RegionAttachment) UVs() []float32 {
	return r.uvs[:]
}

// Offsets returns the bone-space corner positions.
func (r *RegionAttachment) Offsets() []float32 {
	return r.offset[:]
}

// ComputeWorldVertices writes the four corners transformed by bone into
// dst, starting at offset, stride floats apart.
func (r *RegionAttachment) ComputeWorldVertices(bone *Bone, dst []float32, offset, stride int) {
	m := bone.world
	o := &r.offset
	for i := 0; i < 4; i++ {
		dst[offset], dst[offset+1] = transformPoint(m, o[i*2], o[i*2+1])
		offset += stride
	}
}
