package gpucore

import (
	"testing"

	"github.com/gogpu/gputypes"

	spine "github.com/gogpu/gg-spine"
	"github.com/gogpu/gg-spine/skeleton"
)

func TestVertexLayout(t *testing.T) {
	layouts := VertexLayout()
	if len(layouts) != 1 {
		t.Fatalf("len(VertexLayout()) = %d, want 1", len(layouts))
	}
	l := layouts[0]
	if l.ArrayStride != VertexStride || VertexStride != 16 {
		t.Errorf("ArrayStride = %d, want 16", l.ArrayStride)
	}
	if len(l.Attributes) != 2 {
		t.Fatalf("len(Attributes) = %d, want 2", len(l.Attributes))
	}
	for i, a := range l.Attributes {
		if a.Format != gputypes.VertexFormatFloat32x2 {
			t.Errorf("Attributes[%d].Format = %v, want Float32x2", i, a.Format)
		}
		if int(a.ShaderLocation) != i || int(a.Offset) != i*8 {
			t.Errorf("Attributes[%d] location %d offset %d", i, a.ShaderLocation, a.Offset)
		}
	}
}

func TestPrimitive(t *testing.T) {
	p := Primitive()
	if p.Topology != gputypes.PrimitiveTopologyTriangleList {
		t.Errorf("Topology = %v, want TriangleList", p.Topology)
	}
	if p.CullMode != gputypes.CullModeNone {
		t.Errorf("CullMode = %v, want None", p.CullMode)
	}
}

func TestBlendState(t *testing.T) {
	normal := BlendState(spine.BlendNormal)
	if normal != gputypes.BlendStatePremultiplied() {
		t.Errorf("normal blend = %+v, want premultiplied", normal)
	}

	additive := BlendState(spine.BlendAdditive)
	if additive.Color.DstFactor != gputypes.BlendFactorOne || additive.Alpha.DstFactor != gputypes.BlendFactorOne {
		t.Errorf("additive dst factors = %v, %v, want One", additive.Color.DstFactor, additive.Alpha.DstFactor)
	}
	if additive.Color.SrcFactor != normal.Color.SrcFactor {
		t.Errorf("additive src factor = %v, want %v", additive.Color.SrcFactor, normal.Color.SrcFactor)
	}
}

func TestColorTarget(t *testing.T) {
	ct := ColorTarget(gputypes.TextureFormatBGRA8Unorm, spine.BlendAdditive)
	if ct.Format != gputypes.TextureFormatBGRA8Unorm {
		t.Errorf("Format = %v, want BGRA8Unorm", ct.Format)
	}
	if ct.Blend == nil || *ct.Blend != BlendState(spine.BlendAdditive) {
		t.Errorf("Blend = %+v, want additive", ct.Blend)
	}
	if ct.WriteMask != gputypes.ColorWriteMaskAll {
		t.Errorf("WriteMask = %v, want All", ct.WriteMask)
	}
}

func TestTintColor(t *testing.T) {
	got := TintColor(skeleton.RGBA(0.5, 1, 0.25, 0.5))
	want := gputypes.Color{R: 0.5, G: 1, B: 0.25, A: 0.5}
	if got != want {
		t.Errorf("TintColor() = %+v, want %+v", got, want)
	}
}

func TestInterleave(t *testing.T) {
	got := Interleave(nil, []float32{1, 2, 3, 4}, []float32{0, 0.5, 1, 0.25})
	want := []float32{1, 2, 0, 0.5, 3, 4, 1, 0.25}
	if len(got) != len(want) {
		t.Fatalf("Interleave() = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Interleave()[%d] = %v, want %v", i, got[i], want[i])
		}
	}
}
