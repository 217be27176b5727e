// Package skeleton models the posed 2D skeleton that the spine renderer
// consumes: bones with world transforms, slots with colors and blend
// modes, skins, and the three attachment kinds the renderer draws or
// clips with (region, mesh, clipping).
//
// The package is deliberately small. It evaluates bone hierarchies and
// attachment world vertices but leaves animation playback to an
// [AnimationState] implementation supplied by the caller.
//
// # Coordinate System
//
// Skeleton space is y-up. World vertices written by
// ComputeWorldVertices are in skeleton space; flipping for y-down
// targets is the consumer's job.
package skeleton
