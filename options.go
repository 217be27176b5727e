package spine

import "github.com/gogpu/gg-spine/skeleton"

// Option configures a Renderer during creation.
//
// Example:
//
//	r := spine.NewRenderer(data,
//	    spine.WithAnimationState(state),
//	    spine.WithScratchCapacity(16*1024))
type Option func(*options)

// options holds optional configuration for Renderer creation.
type options struct {
	state           skeleton.AnimationState
	scratch         *Scratch
	clipper         *Clipper
	scratchCapacity int
}

// defaultOptions returns the default renderer options.
func defaultOptions() options {
	return options{
		state:           skeleton.NopState{},
		scratchCapacity: DefaultScratchCapacity,
	}
}

// WithAnimationState sets the state that poses the skeleton each tick.
// Without it the skeleton keeps its setup pose.
func WithAnimationState(s skeleton.AnimationState) Option {
	return func(o *options) {
		if s != nil {
			o.state = s
		}
	}
}

// WithScratch shares a scratch buffer between renderers. Renderers that
// share one must be updated from the same goroutine, one at a time.
func WithScratch(s *Scratch) Option {
	return func(o *options) {
		o.scratch = s
	}
}

// WithClipper shares a clip coordinator between renderers, with the same
// serial-update constraint as WithScratch.
func WithClipper(c *Clipper) Option {
	return func(o *options) {
		o.clipper = c
	}
}

// WithScratchCapacity sets the initial capacity of a renderer's private
// scratch buffer. It has no effect together with WithScratch.
func WithScratchCapacity(floats int) Option {
	return func(o *options) {
		o.scratchCapacity = floats
	}
}
