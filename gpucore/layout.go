package gpucore

import (
	"github.com/gogpu/gputypes"

	spine "github.com/gogpu/gg-spine"
	"github.com/gogpu/gg-spine/skeleton"
)

// Vertex layout constants.
const (
	// FloatsPerVertex is the interleaved vertex size: x, y, u, v.
	FloatsPerVertex = 4

	// VertexStride is the vertex size in bytes.
	VertexStride = FloatsPerVertex * 4

	// MaxVerticesPerDraw is the largest vertex count addressable by
	// uint16 indices.
	MaxVerticesPerDraw = 1 << 16
)

// Shader entry points.
const (
	VertexEntryPoint   = "vs_main"
	FragmentEntryPoint = "fs_main"
)

// VertexLayout returns the vertex buffer layout of the mesh shader:
// position at location 0 and uv at location 1.
func VertexLayout() []gputypes.VertexBufferLayout {
	return []gputypes.VertexBufferLayout{
		{
			ArrayStride: VertexStride,
			StepMode:    gputypes.VertexStepModeVertex,
			Attributes: []gputypes.VertexAttribute{
				{Format: gputypes.VertexFormatFloat32x2, Offset: 0, ShaderLocation: 0}, // position
				{Format: gputypes.VertexFormatFloat32x2, Offset: 8, ShaderLocation: 1}, // uv
			},
		},
	}
}

// Primitive returns the primitive state for skeleton meshes. Flipped
// skeletons reverse winding, so nothing is culled.
func Primitive() gputypes.PrimitiveState {
	return gputypes.PrimitiveState{
		Topology: gputypes.PrimitiveTopologyTriangleList,
		CullMode: gputypes.CullModeNone,
	}
}

// BlendState returns the blend state for mode. The shader writes
// premultiplied color.
func BlendState(mode spine.BlendMode) gputypes.BlendState {
	b := gputypes.BlendStatePremultiplied()
	if mode == spine.BlendAdditive {
		b.Color.DstFactor = gputypes.BlendFactorOne
		b.Alpha.DstFactor = gputypes.BlendFactorOne
	}
	return b
}

// ColorTarget returns the color target state for a render target of
// the given format.
func ColorTarget(format gputypes.TextureFormat, mode spine.BlendMode) gputypes.ColorTargetState {
	blend := BlendState(mode)
	return gputypes.ColorTargetState{
		Format:    format,
		Blend:     &blend,
		WriteMask: gputypes.ColorWriteMaskAll,
	}
}

// TintColor converts a composite tint into a uniform color.
func TintColor(c skeleton.Color) gputypes.Color {
	return gputypes.Color{R: float64(c.R), G: float64(c.G), B: float64(c.B), A: float64(c.A)}
}

// Interleave appends x,y,u,v vertices built from flat positions and uvs
// to dst. positions and uvs must have equal length.
func Interleave(dst, positions, uvs []float32) []float32 {
	for i := 0; i+1 < len(positions); i += 2 {
		dst = append(dst, positions[i], positions[i+1], uvs[i], uvs[i+1])
	}
	return dst
}
