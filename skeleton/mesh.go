package skeleton

// MeshAttachment is a deformable textured mesh.
type MeshAttachment struct {
	VertexAttachment

	name string

	// RegionUVs are the mesh UVs normalized to the texture region.
	RegionUVs  []float32
	Triangles  []uint16
	HullLength int
	Color      Color
	Region     *TextureRegion

	uvs []float32
}

// NewMeshAttachment creates a mesh with a white color.
func NewMeshAttachment(name string) *MeshAttachment {
	return &MeshAttachment{name: name, Color: White}
}

func (m *MeshAttachment) Name() string { return m.name }

func (m *MeshAttachment) Kind() Kind { return KindMesh }

// SetRegion binds a texture region and maps RegionUVs into it.
func (m *MeshAttachment) SetRegion(region *TextureRegion) {
	m.Region = region
	m.UpdateUVs()
}

// UpdateUVs recomputes UVs from RegionUVs and the bound region.
// Without a region the region-normalized UVs are used as-is.
func (m *MeshAttachment) UpdateUVs() {
	if cap(m.uvs) < len(m.RegionUVs) {
		m.uvs = make([]float32, len(m.RegionUVs))
	}
	m.uvs = m.uvs[:len(m.RegionUVs)]

	r := m.Region
	if r == nil {
		copy(m.uvs, m.RegionUVs)
		return
	}
	u, v := r.U, r.V
	width, height := r.U2-r.U, r.V2-r.V
	for i := 0; i+1 < len(m.RegionUVs); i += 2 {
		if r.Rotate {
			m.uvs[i] = u + m.RegionUVs[i+1]*width
			m.uvs[i+1] = v + height - m.RegionUVs[i]*height
		} else {
			m.uvs[i] = u + m.RegionUVs[i]*width
			m.uvs[i+1] = v + m.RegionUVs[i+1]*height
		}
	}
}

// UVs returns the texture coordinates, one pair per vertex.
func (m *MeshAttachment) UVs() []float32 {
	return m.uvs
}

// VertexCount returns the number of vertices.
func (m *MeshAttachment) VertexCount() int {
	return m.WorldVerticesLength >> 1
}
