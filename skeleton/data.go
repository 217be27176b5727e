package skeleton

import "github.com/pkg/errors"

// Data is the immutable setup description shared by every Skeleton
// built from it.
type Data struct {
	Name        string
	Bones       []*BoneData // parents precede children
	Slots       []*SlotData // setup draw order
	DefaultSkin *Skin
}

// FindBone returns the bone data with the given name.
func (d *Data) FindBone(name string) (*BoneData, error) {
	for _, b := range d.Bones {
		if b.Name == name {
			return b, nil
		}
	}
	return nil, errors.Wrapf(ErrBoneNotFound, "%q", name)
}

// FindSlot returns the slot data with the given name.
func (d *Data) FindSlot(name string) (*SlotData, error) {
	for _, s := range d.Slots {
		if s.Name == name {
			return s, nil
		}
	}
	return nil, errors.Wrapf(ErrSlotNotFound, "%q", name)
}
