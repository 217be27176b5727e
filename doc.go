// Package spine renders skeletal 2D animation rigs into per-slot draw
// meshes.
//
// # Overview
//
// A [Renderer] owns a posed [skeleton.Skeleton] and one persistent
// [SlotRenderer] per slot. Every tick, [Renderer.Update] advances the
// animation state, recomputes bone world transforms, reorders the
// display list to the skeleton's draw order, and rebuilds each slot's
// [Mesh] from its active attachment: region quads, weighted or
// unweighted meshes, and clipping polygons that mask the slots drawn
// after them.
//
// # Quick Start
//
//	r := spine.NewRenderer(data, spine.WithAnimationState(state))
//
//	for frame := range frames {
//	    r.Update(frame.Delta)
//	    n, err := r.Draw(submitter)
//	}
//
// Skeleton data that is loaded asynchronously is wrapped with
// [NewRendererAsync]. The renderer stays Unloaded, and Update and Draw
// do nothing, until the resolver finishes:
//
//	r := spine.NewRendererAsync(ctx, func(ctx context.Context) (*skeleton.Data, error) {
//	    return loadRig(ctx, path)
//	})
//	r.OnLoad(func(r *spine.Renderer) { r.SetFlip(true, false) })
//
// # Clipping
//
// A slot holding a clipping attachment opens a clip session on the
// frame's [Clipper]. Slots rendered while the session is open have
// their triangles clipped against the polygon, which may be concave.
// The session closes at the attachment's end slot, and the renderer
// always force-closes it at the end of the frame.
//
// # Draw commands
//
// [Renderer.Draw] hands one [DrawCommand] per visible mesh to a
// [Submitter] in back-to-front order. Package gpucore describes the
// matching GPU pipeline state and package preview rasterizes commands
// on the CPU.
//
// # Logging
//
// spine is silent by default. See [SetLogger].
package spine
