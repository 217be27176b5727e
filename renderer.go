package spine

import (
	"context"
	"fmt"

	"github.com/gogpu/gg-spine/skeleton"
)

// Resolver produces skeleton data, typically by loading and parsing it.
// It runs on its own goroutine.
type Resolver func(ctx context.Context) (*skeleton.Data, error)

type loadResult struct {
	data *skeleton.Data
	err  error
}

// Renderer turns a skeleton's pose into one Mesh per slot, once per tick.
//
// A Renderer starts Unloaded when built with NewRendererAsync and moves
// to Loaded exactly once, when its Resolver completes. Until then Update
// and Draw do nothing. All methods must be called from the goroutine
// that drives the frame loop.
type Renderer struct {
	opts options

	data     *skeleton.Data
	skeleton *skeleton.Skeleton
	state    skeleton.AnimationState

	slots   []*SlotRenderer
	byName  map[string]*SlotRenderer
	display DisplayList
	scratch *Scratch
	clipper *Clipper

	flipX, flipY bool

	pending <-chan loadResult
	err     error
	onLoad  []func(*Renderer)
}

// NewRenderer creates a Loaded renderer for data and renders every slot
// once in the setup pose.
func NewRenderer(data *skeleton.Data, opts ...Option) *Renderer {
	r := newRenderer(opts)
	r.init(data)
	return r
}

// NewRendererAsync creates an Unloaded renderer and starts resolve on a
// new goroutine. The result is picked up on the frame goroutine by Poll,
// Update, or Wait. Canceling ctx is left to resolve to honor; a load
// cannot be abandoned once started.
func NewRendererAsync(ctx context.Context, resolve Resolver, opts ...Option) *Renderer {
	r := newRenderer(opts)
	ch := make(chan loadResult, 1)
	r.pending = ch
	go func() {
		data, err := resolve(ctx)
		ch <- loadResult{data: data, err: err}
	}()
	return r
}

func newRenderer(opts []Option) *Renderer {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	r := &Renderer{opts: o, state: o.state, scratch: o.scratch, clipper: o.clipper}
	if r.scratch == nil {
		r.scratch = NewScratch(o.scratchCapacity)
	}
	if r.clipper == nil {
		r.clipper = NewClipper()
	}
	return r
}

// init performs the Unloaded to Loaded transition.
func (r *Renderer) init(data *skeleton.Data) {
	r.data = data
	r.skeleton = skeleton.New(data)
	r.applyFlip()
	r.skeleton.UpdateWorldTransform()

	r.slots = make([]*SlotRenderer, len(r.skeleton.Slots))
	r.byName = make(map[string]*SlotRenderer, len(r.skeleton.Slots))
	for i, slot := range r.skeleton.Slots {
		sr := NewSlotRenderer(slot)
		r.slots[i] = sr
		r.byName[slot.Data.Name] = sr
	}
	r.display.Sync(r.skeleton.DrawOrder, r.slots)
	r.renderSlots()

	Logger().Info("spine: skeleton loaded", "name", data.Name, "bones", len(data.Bones), "slots", len(data.Slots))
}

// finish consumes a resolver result and runs queued continuations.
func (r *Renderer) finish(res loadResult) {
	r.pending = nil
	switch {
	case res.err != nil:
		r.err = fmt.Errorf("%w: %w", ErrLoadFailed, res.err)
	case res.data == nil:
		r.err = fmt.Errorf("%w: %w", ErrLoadFailed, ErrNilData)
	}
	if r.err != nil {
		r.onLoad = nil
		Logger().Warn("spine: skeleton load failed", "err", r.err)
		return
	}

	r.init(res.data)
	queued := r.onLoad
	r.onLoad = nil
	for _, fn := range queued {
		fn(r)
	}
}

// Poll completes a finished asynchronous load without blocking and
// reports whether the renderer is Loaded.
func (r *Renderer) Poll() bool {
	if r.skeleton != nil {
		return true
	}
	if r.pending == nil {
		return false
	}
	select {
	case res := <-r.pending:
		r.finish(res)
	default:
	}
	return r.skeleton != nil
}

// Wait blocks until the renderer is Loaded, its load failed, or ctx is
// done. It returns nil once Loaded.
func (r *Renderer) Wait(ctx context.Context) error {
	if r.skeleton != nil {
		return nil
	}
	if r.pending == nil {
		return r.err
	}
	select {
	case res := <-r.pending:
		r.finish(res)
		return r.err
	case <-ctx.Done():
		return ctx.Err()
	}
}

// OnLoad runs fn once the renderer is Loaded: immediately if it already
// is, otherwise on the frame goroutine right after the transition, in
// registration order. fn never runs if the load fails.
func (r *Renderer) OnLoad(fn func(*Renderer)) {
	switch {
	case r.skeleton != nil:
		fn(r)
	case r.err == nil:
		r.onLoad = append(r.onLoad, fn)
	}
}

// Loaded reports whether skeleton data is available.
func (r *Renderer) Loaded() bool {
	return r.skeleton != nil
}

// Err returns the load error, if resolution failed.
func (r *Renderer) Err() error {
	return r.err
}

// Update advances one tick: it advances and applies the animation
// state, recomputes world transforms, syncs the draw order, rebuilds
// every slot's mesh in slot index order, and closes the clip session.
// Before the renderer is Loaded, Update does nothing.
func (r *Renderer) Update(dt float64) {
	if !r.Poll() {
		return
	}
	r.state.Update(dt)
	r.state.Apply(r.skeleton)
	r.skeleton.UpdateWorldTransform()
	r.display.Sync(r.skeleton.DrawOrder, r.slots)
	r.renderSlots()
}

// renderSlots rebuilds every slot. The clip session is closed even if a
// slot panics so the next frame starts unclipped.
func (r *Renderer) renderSlots() {
	defer r.clipper.ClipEnd()
	for _, sr := range r.slots {
		sr.RenderSlot(r.scratch, r.clipper)
	}
}

// Draw submits every visible, non-empty mesh in draw order and returns
// the number of commands submitted. It stops at the first submit error.
func (r *Renderer) Draw(sub Submitter) (int, error) {
	if sub == nil {
		return 0, ErrNilSubmitter
	}
	n := 0
	for _, sr := range r.display.Children() {
		m := &sr.mesh
		if !m.Visible || m.Empty() {
			continue
		}
		if err := sub.Submit(m.Command()); err != nil {
			return n, fmt.Errorf("spine: submit slot %q: %w", m.Name, err)
		}
		n++
	}
	return n, nil
}

// Data returns the skeleton data, or nil while Unloaded.
func (r *Renderer) Data() *skeleton.Data {
	return r.data
}

// Skeleton returns the posed skeleton, or nil while Unloaded.
func (r *Renderer) Skeleton() *skeleton.Skeleton {
	return r.skeleton
}

// State returns the animation state.
func (r *Renderer) State() skeleton.AnimationState {
	return r.state
}

// SetAnimationState replaces the animation state. nil restores the
// no-op state.
func (r *Renderer) SetAnimationState(s skeleton.AnimationState) {
	if s == nil {
		s = skeleton.NopState{}
	}
	r.state = s
}

// Slots returns the slot renderers in slot index order.
func (r *Renderer) Slots() []*SlotRenderer {
	return r.slots
}

// DrawOrder returns the slot renderers back to front as of the last sync.
func (r *Renderer) DrawOrder() []*SlotRenderer {
	return r.display.Children()
}

// FindSlot returns the renderer of the named slot, or nil.
func (r *Renderer) FindSlot(name string) *SlotRenderer {
	return r.byName[name]
}

// Scratch returns the renderer's scratch buffer.
func (r *Renderer) Scratch() *Scratch {
	return r.scratch
}

// Clipper returns the renderer's clip coordinator.
func (r *Renderer) Clipper() *Clipper {
	return r.clipper
}

// SetFlip mirrors the skeleton horizontally and/or vertically. It may
// be called before the renderer is Loaded.
func (r *Renderer) SetFlip(x, y bool) {
	r.flipX, r.flipY = x, y
	r.applyFlip()
}

// Flip returns the current mirror flags.
func (r *Renderer) Flip() (x, y bool) {
	return r.flipX, r.flipY
}

func (r *Renderer) applyFlip() {
	if r.skeleton == nil {
		return
	}
	r.skeleton.ScaleX = signed(r.skeleton.ScaleX, r.flipX)
	r.skeleton.ScaleY = signed(r.skeleton.ScaleY, r.flipY)
}

func signed(v float32, negative bool) float32 {
	if v < 0 {
		v = -v
	}
	if negative {
		return -v
	}
	return v
}
