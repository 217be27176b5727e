package gpucore

import (
	"encoding/binary"
	"math"

	"github.com/gogpu/gputypes"

	spine "github.com/gogpu/gg-spine"
	"github.com/gogpu/gg-spine/skeleton"
)

// Draw is one indexed draw over the batcher's buffers.
type Draw struct {
	Texture    *skeleton.TexturePage
	Blend      spine.BlendMode
	Tint       gputypes.Color
	FirstIndex uint32
	IndexCount uint32
	BaseVertex int32
}

// Batcher collects draw commands for one frame. Consecutive commands
// with the same texture, blend mode, and tint are merged into one Draw
// while their vertices fit uint16 indices.
//
// The zero value is ready to use.
type Batcher struct {
	vertices []float32
	indices  []uint16
	draws    []Draw

	merged int
}

// Submit implements spine.Submitter.
func (b *Batcher) Submit(cmd spine.DrawCommand) error {
	n := len(cmd.Positions) / 2
	if n == 0 || len(cmd.Indices) == 0 {
		return nil
	}
	tint := TintColor(cmd.Tint)
	base := len(b.vertices) / FloatsPerVertex

	var d *Draw
	if len(b.draws) > 0 {
		last := &b.draws[len(b.draws)-1]
		if last.Texture == cmd.Texture && last.Blend == cmd.Blend && last.Tint == tint &&
			base-int(last.BaseVertex)+n <= MaxVerticesPerDraw {
			d = last
			b.merged++
		}
	}
	if d == nil {
		b.draws = append(b.draws, Draw{
			Texture:    cmd.Texture,
			Blend:      cmd.Blend,
			Tint:       tint,
			FirstIndex: uint32(len(b.indices)),
			BaseVertex: int32(base),
		})
		d = &b.draws[len(b.draws)-1]
	}

	offset := uint16(base - int(d.BaseVertex))
	for _, idx := range cmd.Indices {
		b.indices = append(b.indices, idx+offset)
	}
	d.IndexCount += uint32(len(cmd.Indices))
	b.vertices = Interleave(b.vertices, cmd.Positions, cmd.UVs)
	return nil
}

// Reset empties the batch, keeping its storage.
func (b *Batcher) Reset() {
	b.vertices = b.vertices[:0]
	b.indices = b.indices[:0]
	b.draws = b.draws[:0]
	b.merged = 0
}

// Draws returns the draws in submission order.
func (b *Batcher) Draws() []Draw {
	return b.draws
}

// Merged returns how many commands were folded into a previous draw.
func (b *Batcher) Merged() int {
	return b.merged
}

// Vertices returns the interleaved x,y,u,v vertex data.
func (b *Batcher) Vertices() []float32 {
	return b.vertices
}

// Indices returns the index data. Each draw's indices are relative to
// its BaseVertex.
func (b *Batcher) Indices() []uint16 {
	return b.indices
}

// VertexBytes returns the vertex data encoded for upload.
func (b *Batcher) VertexBytes() []byte {
	out := make([]byte, len(b.vertices)*4)
	for i, f := range b.vertices {
		binary.LittleEndian.PutUint32(out[i*4:], math.Float32bits(f))
	}
	return out
}

// IndexBytes returns the index data encoded for upload, padded to a
// multiple of four bytes.
func (b *Batcher) IndexBytes() []byte {
	n := len(b.indices) * 2
	out := make([]byte, (n+3)&^3)
	for i, idx := range b.indices {
		binary.LittleEndian.PutUint16(out[i*2:], idx)
	}
	return out
}
