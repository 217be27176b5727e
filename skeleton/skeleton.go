package skeleton

import "github.com/pkg/errors"

// Skeleton is a posed instance of Data.
type Skeleton struct {
	Data  *Data
	Bones []*Bone
	Slots []*Slot // indexed by SlotData.Index

	// DrawOrder is the back-to-front order of slots. Animation may
	// permute it; it always holds every slot exactly once.
	DrawOrder []*Slot

	Skin  *Skin
	Color Color

	X, Y           float32
	ScaleX, ScaleY float32
}

// New builds a skeleton in its setup pose. World transforms are not
// computed until UpdateWorldTransform is called.
func New(data *Data) *Skeleton {
	s := &Skeleton{
		Data:   data,
		Bones:  make([]*Bone, len(data.Bones)),
		Slots:  make([]*Slot, len(data.Slots)),
		Skin:   data.DefaultSkin,
		Color:  White,
		ScaleX: 1,
		ScaleY: 1,
	}
	for i, bd := range data.Bones {
		var parent *Bone
		if bd.Parent != nil {
			parent = s.Bones[bd.Parent.Index]
		}
		s.Bones[i] = newBone(bd, s, parent)
	}
	s.DrawOrder = make([]*Slot, len(data.Slots))
	for i, sd := range data.Slots {
		slot := &Slot{Data: sd, Bone: s.Bones[sd.Bone.Index]}
		s.Slots[i] = slot
		s.DrawOrder[i] = slot
	}
	s.SetSlotsToSetupPose()
	return s
}

// UpdateWorldTransform recomputes every bone's world transform.
func (s *Skeleton) UpdateWorldTransform() {
	for _, b := range s.Bones {
		b.updateWorldTransform()
	}
}

// SetToSetupPose resets bones, slots, and draw order.
func (s *Skeleton) SetToSetupPose() {
	s.SetBonesToSetupPose()
	s.SetSlotsToSetupPose()
}

// SetBonesToSetupPose resets every bone's local transform.
func (s *Skeleton) SetBonesToSetupPose() {
	for _, b := range s.Bones {
		b.SetToSetupPose()
	}
}

// SetSlotsToSetupPose restores setup draw order, colors, and attachments.
func (s *Skeleton) SetSlotsToSetupPose() {
	copy(s.DrawOrder, s.Slots)
	for _, slot := range s.Slots {
		slot.SetToSetupPose()
	}
}

// FindBone returns the bone with the given name.
func (s *Skeleton) FindBone(name string) (*Bone, error) {
	for _, b := range s.Bones {
		if b.Data.Name == name {
			return b, nil
		}
	}
	return nil, errors.Wrapf(ErrBoneNotFound, "%q", name)
}

// FindSlot returns the slot with the given name.
func (s *Skeleton) FindSlot(name string) (*Slot, error) {
	for _, slot := range s.Slots {
		if slot.Data.Name == name {
			return slot, nil
		}
	}
	return nil, errors.Wrapf(ErrSlotNotFound, "%q", name)
}

// SetAttachment activates the skin attachment attachmentName on the
// named slot. An empty attachmentName clears the slot.
func (s *Skeleton) SetAttachment(slotName, attachmentName string) error {
	slot, err := s.FindSlot(slotName)
	if err != nil {
		return err
	}
	if attachmentName == "" {
		slot.SetAttachment(nil)
		return nil
	}
	a := s.attachment(slot.Data.Index, attachmentName)
	if a == nil {
		return errors.Wrapf(ErrAttachmentNotFound, "slot %q attachment %q", slotName, attachmentName)
	}
	slot.SetAttachment(a)
	return nil
}

// SetDrawOrder replaces the draw order with the slots at the given
// indices, back to front. order must be a permutation of the slot indices.
func (s *Skeleton) SetDrawOrder(order []int) error {
	if len(order) != len(s.Slots) {
		return errors.Wrapf(ErrInvalidDrawOrder, "got %d entries for %d slots", len(order), len(s.Slots))
	}
	seen := make([]bool, len(s.Slots))
	for _, idx := range order {
		if idx < 0 || idx >= len(s.Slots) || seen[idx] {
			return errors.Wrapf(ErrInvalidDrawOrder, "index %d", idx)
		}
		seen[idx] = true
	}
	for i, idx := range order {
		s.DrawOrder[i] = s.Slots[idx]
	}
	return nil
}

// attachment looks in the active skin, then the default skin.
func (s *Skeleton) attachment(slotIndex int, name string) Attachment {
	if a := s.Skin.Attachment(slotIndex, name); a != nil {
		return a
	}
	if s.Data.DefaultSkin != s.Skin {
		return s.Data.DefaultSkin.Attachment(slotIndex, name)
	}
	return nil
}
