package spine

import (
	"math"
	"testing"

	"github.com/gogpu/gg-spine/skeleton"
)

// rig assembles skeleton data slot by slot for tests. Every slot hangs
// off a single root bone.
type rig struct {
	data *skeleton.Data
	root *skeleton.BoneData
	page *skeleton.TexturePage
}

func newRig() *rig {
	root := skeleton.NewBoneData(0, "root", nil)
	return &rig{
		data: &skeleton.Data{
			Name:        "test",
			Bones:       []*skeleton.BoneData{root},
			DefaultSkin: skeleton.NewSkin("default"),
		},
		root: root,
		page: &skeleton.TexturePage{Name: "atlas.png", Width: 64, Height: 64},
	}
}

// slot appends a slot showing a, which may be nil.
func (r *rig) slot(name string, a skeleton.Attachment) *skeleton.SlotData {
	sd := skeleton.NewSlotData(len(r.data.Slots), name, r.root)
	if a != nil {
		sd.AttachmentName = a.Name()
		r.data.DefaultSkin.SetAttachment(sd.Index, a.Name(), a)
	}
	r.data.Slots = append(r.data.Slots, sd)
	return sd
}

// region returns a textured w x h quad centered on the bone.
func (r *rig) region(name string, w, h float32) *skeleton.RegionAttachment {
	a := skeleton.NewRegionAttachment(name, w, h)
	a.SetRegion(skeleton.NewPageRegion(r.page))
	return a
}

// box returns the corners of an axis-aligned square as a CCW polygon.
func box(half float32) []float32 {
	return []float32{-half, -half, half, -half, half, half, -half, half}
}

// meshArea sums the absolute triangle areas of m.
func meshArea(m *Mesh) float64 {
	var sum float64
	p := m.Positions
	for i := 0; i+2 < len(m.Indices); i += 3 {
		a, b, c := int(m.Indices[i])*2, int(m.Indices[i+1])*2, int(m.Indices[i+2])*2
		cross := (p[b]-p[a])*(p[c+1]-p[a+1]) - (p[b+1]-p[a+1])*(p[c]-p[a])
		sum += math.Abs(float64(cross)) / 2
	}
	return sum
}

// meshBounds returns the position bounds of m.
func meshBounds(m *Mesh) (minX, minY, maxX, maxY float32) {
	minX, minY = float32(math.Inf(1)), float32(math.Inf(1))
	maxX, maxY = float32(math.Inf(-1)), float32(math.Inf(-1))
	for i := 0; i+1 < len(m.Positions); i += 2 {
		x, y := m.Positions[i], m.Positions[i+1]
		minX, maxX = min(minX, x), max(maxX, x)
		minY, maxY = min(minY, y), max(maxY, y)
	}
	return
}

func near(a, b float64) bool {
	return math.Abs(a-b) < 1e-4
}

// checkMeshInvariants verifies the shape rules every mesh must satisfy.
func checkMeshInvariants(t *testing.T, m *Mesh) {
	t.Helper()
	if len(m.Positions) != len(m.UVs) {
		t.Errorf("%s: len(Positions) = %d, len(UVs) = %d", m.Name, len(m.Positions), len(m.UVs))
	}
	if len(m.Indices)%3 != 0 {
		t.Errorf("%s: len(Indices) = %d, not a multiple of 3", m.Name, len(m.Indices))
	}
	for i, idx := range m.Indices {
		if int(idx) >= m.VertexCount() {
			t.Errorf("%s: Indices[%d] = %d, vertex count %d", m.Name, i, idx, m.VertexCount())
		}
	}
}

// countingState records how often the renderer drives it.
type countingState struct {
	updates, applies int
	elapsed          float64
}

func (s *countingState) Update(dt float64) {
	s.updates++
	s.elapsed += dt
}

func (s *countingState) Apply(*skeleton.Skeleton) bool {
	s.applies++
	return true
}
