package spine

import "github.com/gogpu/gg-spine/skeleton"

// BlendMode selects how a mesh composites onto the target.
type BlendMode uint8

// Blend modes understood by submitters.
const (
	BlendNormal BlendMode = iota
	BlendAdditive
)

// String returns the lower-case name of the blend mode.
func (m BlendMode) String() string {
	if m == BlendAdditive {
		return "additive"
	}
	return "normal"
}

// blendModeOf maps a slot blend mode onto the two submitted modes.
// Multiply and screen draw as normal.
func blendModeOf(m skeleton.BlendMode) BlendMode {
	if m == skeleton.BlendAdditive {
		return BlendAdditive
	}
	return BlendNormal
}

// Mesh is the persistent per-slot draw resource. The slot renderer
// rewrites it in place every frame; its slices keep their storage
// between frames.
//
// Positions and UVs are flat x,y and u,v pairs of equal length; every
// index is below len(Positions)/2.
type Mesh struct {
	Name      string
	Positions []float32
	UVs       []float32
	Indices   []uint16
	Tint      skeleton.Color
	Blend     BlendMode
	Texture   *skeleton.TexturePage

	// Visible is false when the slot has nothing to draw this frame.
	Visible bool

	// Rank is the mesh's position in the current draw order.
	Rank int
}

// VertexCount returns the number of vertices.
func (m *Mesh) VertexCount() int {
	return len(m.Positions) / 2
}

// Empty reports whether the mesh has no triangles.
func (m *Mesh) Empty() bool {
	return len(m.Indices) == 0
}

// PackedTint returns the tint's RGB channels as 0xRRGGBB.
func (m *Mesh) PackedTint() uint32 {
	return m.Tint.Packed()
}

// Command returns the mesh as a draw command. The slices alias the
// mesh and are only valid until the next frame.
func (m *Mesh) Command() DrawCommand {
	return DrawCommand{
		Positions: m.Positions,
		UVs:       m.UVs,
		Indices:   m.Indices,
		Tint:      m.Tint,
		Blend:     m.Blend,
		Texture:   m.Texture,
	}
}

func (m *Mesh) clear() {
	m.Positions = m.Positions[:0]
	m.UVs = m.UVs[:0]
	m.Indices = m.Indices[:0]
}

// DrawCommand is everything a renderer needs to draw one slot: flat
// positions, flat UVs, triangle indices, one composite tint, one blend
// mode, and one texture.
type DrawCommand struct {
	Positions []float32
	UVs       []float32
	Indices   []uint16
	Tint      skeleton.Color
	Blend     BlendMode
	Texture   *skeleton.TexturePage
}

// Submitter accepts draw commands in back-to-front order.
type Submitter interface {
	Submit(cmd DrawCommand) error
}

// SubmitterFunc adapts a function to the Submitter interface.
type SubmitterFunc func(cmd DrawCommand) error

// Submit calls f(cmd).
func (f SubmitterFunc) Submit(cmd DrawCommand) error {
	return f(cmd)
}
