// Package gpucore maps spine draw commands onto GPU pipeline state.
//
// The package does not own a device. It describes what a render
// pipeline for skeleton meshes needs, in gputypes terms, and packs
// draw commands into buffers ready for upload:
//
//   - [VertexLayout], [Primitive], [BlendState] and [ColorTarget] fill a
//     render pipeline descriptor.
//   - [CompileShader] compiles the embedded WGSL mesh shader with naga.
//   - [Batcher] is a spine.Submitter that interleaves positions and UVs
//     into one vertex buffer and merges consecutive commands that share
//     a texture, blend mode and tint into a single indexed draw.
//
// # Usage Example
//
//	var b gpucore.Batcher
//	for range frames {
//	    b.Reset()
//	    r.Update(dt)
//	    if _, err := r.Draw(&b); err != nil {
//	        return err
//	    }
//	    queue.WriteBuffer(vertexBuffer, 0, b.VertexBytes())
//	    queue.WriteBuffer(indexBuffer, 0, b.IndexBytes())
//	    for _, d := range b.Draws() {
//	        pass.SetPipeline(pipelines[d.Blend])
//	        pass.DrawIndexed(d.IndexCount, 1, d.FirstIndex, d.BaseVertex, 0)
//	    }
//	}
package gpucore
