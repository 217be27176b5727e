package spine

import "github.com/gogpu/gg-spine/skeleton"

// DisplayList orders the persistent slot renderers back to front.
// It never creates or destroys renderers; Sync only reorders them.
type DisplayList struct {
	children []*SlotRenderer
}

// Sync ranks each renderer by its slot's position in drawOrder.
// bySlot is indexed by slot index. Sync runs in O(len(drawOrder)) and
// is idempotent for an unchanged draw order.
func (d *DisplayList) Sync(drawOrder []*skeleton.Slot, bySlot []*SlotRenderer) {
	if cap(d.children) < len(drawOrder) {
		d.children = make([]*SlotRenderer, len(drawOrder))
	}
	d.children = d.children[:len(drawOrder)]
	for rank, slot := range drawOrder {
		sr := bySlot[slot.Data.Index]
		sr.mesh.Rank = rank
		d.children[rank] = sr
	}
}

// Children returns the renderers in draw order. The slice is reused by
// the next Sync.
func (d *DisplayList) Children() []*SlotRenderer {
	return d.children
}

// Len returns the number of renderers.
func (d *DisplayList) Len() int {
	return len(d.children)
}
