// Package preview rasterizes spine draw commands on the CPU.
//
// A [Canvas] is a spine.Submitter that draws each command's triangles
// into an RGBA image, sampling the command's texture page with nearest
// filtering and multiplying by its tint. Pages without a decoded image
// draw as flat tint, which is enough to inspect rig layout, draw order
// and clipping without an atlas.
//
// Skeleton space is y-up. [Canvas.SetView] places the skeleton origin
// in the canvas and [Canvas.Image] returns the conventional y-down image.
package preview
