package skeleton

// ClippingAttachment is a polygon that clips the slots drawn after it,
// up to and including EndSlot. It produces no geometry itself.
type ClippingAttachment struct {
	VertexAttachment

	name    string
	EndSlot *SlotData
	Color   Color
}

// NewClippingAttachment creates a clipping polygon from bone-space x,y pairs.
func NewClippingAttachment(name string, vertices []float32, endSlot *SlotData) *ClippingAttachment {
	return &ClippingAttachment{
		VertexAttachment: VertexAttachment{
			Vertices:            vertices,
			WorldVerticesLength: len(vertices),
		},
		name:    name,
		EndSlot: endSlot,
		Color:   RGBA(0.2275, 0.2275, 0.8078, 1),
	}
}

func (c *ClippingAttachment) Name() string { return c.name }

func (c *ClippingAttachment) Kind() Kind { return KindClipping }
