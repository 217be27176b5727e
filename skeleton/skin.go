package skeleton

type skinKey struct {
	slot int
	name string
}

// Skin maps (slot index, attachment name) to attachments.
type Skin struct {
	Name        string
	attachments map[skinKey]Attachment
}

// NewSkin creates an empty skin.
func NewSkin(name string) *Skin {
	return &Skin{Name: name, attachments: make(map[skinKey]Attachment)}
}

// SetAttachment registers a for the slot under name.
func (s *Skin) SetAttachment(slotIndex int, name string, a Attachment) {
	s.attachments[skinKey{slot: slotIndex, name: name}] = a
}

// Attachment returns the attachment registered for the slot under name, or nil.
func (s *Skin) Attachment(slotIndex int, name string) Attachment {
	if s == nil {
		return nil
	}
	return s.attachments[skinKey{slot: slotIndex, name: name}]
}

// Len returns the number of registered attachments.
func (s *Skin) Len() int {
	return len(s.attachments)
}
