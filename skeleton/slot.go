package skeleton

// SlotData is the setup state of a slot.
type SlotData struct {
	Index          int
	Name           string
	Bone           *BoneData
	Color          Color
	AttachmentName string
	BlendMode      BlendMode
}

// NewSlotData creates slot data with a white color and normal blending.
func NewSlotData(index int, name string, bone *BoneData) *SlotData {
	return &SlotData{Index: index, Name: name, Bone: bone, Color: White}
}

// Slot is a posed slot: the bone it follows, its current color, and at
// most one active attachment.
type Slot struct {
	Data  *SlotData
	Bone  *Bone
	Color Color

	// Deform replaces a mesh attachment's vertices when non-empty.
	// It is cleared whenever the attachment changes.
	Deform []float32

	attachment Attachment
}

// Attachment returns the active attachment, or nil.
func (s *Slot) Attachment() Attachment {
	return s.attachment
}

// SetAttachment sets the active attachment. Changing the attachment
// discards any deform.
func (s *Slot) SetAttachment(a Attachment) {
	if s.attachment == a {
		return
	}
	s.attachment = a
	s.Deform = s.Deform[:0]
}

// Skeleton returns the skeleton that owns the slot.
func (s *Slot) Skeleton() *Skeleton {
	return s.Bone.Skeleton
}

// SetToSetupPose restores the setup color and setup attachment.
func (s *Slot) SetToSetupPose() {
	s.Color = s.Data.Color
	if s.Data.AttachmentName == "" {
		s.SetAttachment(nil)
		return
	}
	sk := s.Bone.Skeleton
	s.SetAttachment(sk.attachment(s.Data.Index, s.Data.AttachmentName))
}
