package gpucore

import (
	"encoding/binary"
	"math"
	"testing"

	spine "github.com/gogpu/gg-spine"
	"github.com/gogpu/gg-spine/skeleton"
)

func quad(x float32, page *skeleton.TexturePage, blend spine.BlendMode, tint skeleton.Color) spine.DrawCommand {
	return spine.DrawCommand{
		Positions: []float32{x, 0, x, 1, x + 1, 1, x + 1, 0},
		UVs:       []float32{0, 1, 0, 0, 1, 0, 1, 1},
		Indices:   []uint16{0, 1, 2, 2, 3, 0},
		Tint:      tint,
		Blend:     blend,
		Texture:   page,
	}
}

func TestBatcher_Merge(t *testing.T) {
	a := &skeleton.TexturePage{Name: "a"}
	b := &skeleton.TexturePage{Name: "b"}
	red := skeleton.RGBA(1, 0, 0, 1)

	tests := []struct {
		name   string
		cmds   []spine.DrawCommand
		draws  int
		merged int
	}{
		{"same state merges", []spine.DrawCommand{
			quad(0, a, spine.BlendNormal, skeleton.White),
			quad(2, a, spine.BlendNormal, skeleton.White),
		}, 1, 1},
		{"texture splits", []spine.DrawCommand{
			quad(0, a, spine.BlendNormal, skeleton.White),
			quad(2, b, spine.BlendNormal, skeleton.White),
		}, 2, 0},
		{"blend splits", []spine.DrawCommand{
			quad(0, a, spine.BlendNormal, skeleton.White),
			quad(2, a, spine.BlendAdditive, skeleton.White),
		}, 2, 0},
		{"tint splits", []spine.DrawCommand{
			quad(0, a, spine.BlendNormal, skeleton.White),
			quad(2, a, spine.BlendNormal, red),
		}, 2, 0},
		{"only adjacent merge", []spine.DrawCommand{
			quad(0, a, spine.BlendNormal, skeleton.White),
			quad(2, b, spine.BlendNormal, skeleton.White),
			quad(4, a, spine.BlendNormal, skeleton.White),
		}, 3, 0},
		{"empty skipped", []spine.DrawCommand{
			{Texture: a},
			quad(0, a, spine.BlendNormal, skeleton.White),
		}, 1, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var batch Batcher
			for _, cmd := range tt.cmds {
				if err := batch.Submit(cmd); err != nil {
					t.Fatalf("Submit() error = %v", err)
				}
			}
			if got := len(batch.Draws()); got != tt.draws {
				t.Errorf("len(Draws()) = %d, want %d", got, tt.draws)
			}
			if got := batch.Merged(); got != tt.merged {
				t.Errorf("Merged() = %d, want %d", got, tt.merged)
			}
		})
	}
}

func TestBatcher_Buffers(t *testing.T) {
	page := &skeleton.TexturePage{Name: "a"}
	var batch Batcher
	_ = batch.Submit(quad(0, page, spine.BlendNormal, skeleton.White))
	_ = batch.Submit(quad(2, page, spine.BlendNormal, skeleton.White))

	if got := len(batch.Vertices()); got != 8*FloatsPerVertex {
		t.Fatalf("len(Vertices()) = %d, want %d", got, 8*FloatsPerVertex)
	}
	want := []uint16{0, 1, 2, 2, 3, 0, 4, 5, 6, 6, 7, 4}
	idx := batch.Indices()
	if len(idx) != len(want) {
		t.Fatalf("Indices() = %v, want %v", idx, want)
	}
	for i := range want {
		if idx[i] != want[i] {
			t.Errorf("Indices()[%d] = %d, want %d", i, idx[i], want[i])
		}
	}
	d := batch.Draws()[0]
	if d.FirstIndex != 0 || d.IndexCount != 12 || d.BaseVertex != 0 {
		t.Errorf("Draw = %+v", d)
	}

	vb := batch.VertexBytes()
	if len(vb) != len(batch.Vertices())*4 {
		t.Fatalf("len(VertexBytes()) = %d", len(vb))
	}
	// Second vertex of the second quad: x=2, y=1, u=0, v=0.
	off := 5 * VertexStride
	if got := math.Float32frombits(binary.LittleEndian.Uint32(vb[off:])); got != 2 {
		t.Errorf("vertex 5 x = %v, want 2", got)
	}

	ib := batch.IndexBytes()
	if len(ib)%4 != 0 || len(ib) < len(idx)*2 {
		t.Errorf("len(IndexBytes()) = %d", len(ib))
	}
	if got := binary.LittleEndian.Uint16(ib[12:]); got != 4 {
		t.Errorf("index 6 = %d, want 4", got)
	}

	batch.Reset()
	if len(batch.Draws()) != 0 || len(batch.Vertices()) != 0 || len(batch.Indices()) != 0 || batch.Merged() != 0 {
		t.Error("Reset() left data behind")
	}
}

func TestBatcher_SplitsAtIndexLimit(t *testing.T) {
	page := &skeleton.TexturePage{Name: "a"}
	n := MaxVerticesPerDraw - 2
	big := spine.DrawCommand{
		Positions: make([]float32, n*2),
		UVs:       make([]float32, n*2),
		Indices:   []uint16{0, 1, 2},
		Tint:      skeleton.White,
		Texture:   page,
	}
	var batch Batcher
	_ = batch.Submit(big)
	_ = batch.Submit(quad(0, page, spine.BlendNormal, skeleton.White))

	draws := batch.Draws()
	if len(draws) != 2 {
		t.Fatalf("len(Draws()) = %d, want 2", len(draws))
	}
	if draws[1].BaseVertex != int32(n) || draws[1].FirstIndex != 3 {
		t.Errorf("second draw = %+v, want BaseVertex %d FirstIndex 3", draws[1], n)
	}
	if got := batch.Indices()[3]; got != 0 {
		t.Errorf("first index of second draw = %d, want 0", got)
	}
}

func TestBatcher_Renderer(t *testing.T) {
	root := skeleton.NewBoneData(0, "root", nil)
	page := &skeleton.TexturePage{Name: "atlas"}
	skin := skeleton.NewSkin("default")
	data := &skeleton.Data{Bones: []*skeleton.BoneData{root}, DefaultSkin: skin}
	for i, name := range []string{"a", "b"} {
		sd := skeleton.NewSlotData(i, name, root)
		sd.AttachmentName = name
		region := skeleton.NewRegionAttachment(name, 2, 2)
		region.SetRegion(skeleton.NewPageRegion(page))
		skin.SetAttachment(i, name, region)
		data.Slots = append(data.Slots, sd)
	}

	r := spine.NewRenderer(data)
	var batch Batcher
	n, err := r.Draw(&batch)
	if err != nil || n != 2 {
		t.Fatalf("Draw() = %d, %v, want 2, nil", n, err)
	}
	if len(batch.Draws()) != 1 || batch.Draws()[0].IndexCount != 12 {
		t.Errorf("Draws() = %+v, want one merged draw of 12 indices", batch.Draws())
	}
}
