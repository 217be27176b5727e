package skeleton

import (
	"errors"
	"math"
	"testing"
)

func near(a, b float32) bool {
	return math.Abs(float64(a-b)) < 1e-4
}

// threeSlots builds root -> arm bones with slots a, b and c on root.
func threeSlots() *Data {
	root := NewBoneData(0, "root", nil)
	arm := NewBoneData(1, "arm", root)
	arm.X = 10
	arm.Rotation = 90
	skin := NewSkin("default")
	d := &Data{Name: "three", Bones: []*BoneData{root, arm}, DefaultSkin: skin}
	for i, name := range []string{"a", "b", "c"} {
		sd := NewSlotData(i, name, root)
		sd.AttachmentName = name
		skin.SetAttachment(i, name, NewRegionAttachment(name, 2, 2))
		d.Slots = append(d.Slots, sd)
	}
	return d
}

func TestNew_SetupPose(t *testing.T) {
	s := New(threeSlots())
	if len(s.Bones) != 2 || len(s.Slots) != 3 || len(s.DrawOrder) != 3 {
		t.Fatalf("New() = %d bones, %d slots, %d draw order", len(s.Bones), len(s.Slots), len(s.DrawOrder))
	}
	for i, slot := range s.Slots {
		if s.DrawOrder[i] != slot {
			t.Errorf("DrawOrder[%d] = %s, want %s", i, s.DrawOrder[i].Data.Name, slot.Data.Name)
		}
		if slot.Attachment() == nil || slot.Attachment().Name() != slot.Data.Name {
			t.Errorf("slot %s has attachment %v", slot.Data.Name, slot.Attachment())
		}
		if slot.Skeleton() != s {
			t.Errorf("slot %s Skeleton() mismatch", slot.Data.Name)
		}
	}
	if s.Bones[1].Parent != s.Bones[0] {
		t.Error("arm parent is not root")
	}
}

func TestUpdateWorldTransform(t *testing.T) {
	s := New(threeSlots())
	s.X, s.Y = 5, 0
	s.UpdateWorldTransform()

	arm := s.Bones[1]
	if !near(arm.WorldX(), 15) || !near(arm.WorldY(), 0) {
		t.Errorf("arm origin = (%v,%v), want (15,0)", arm.WorldX(), arm.WorldY())
	}
	// Rotated 90 degrees: local +x points up.
	x, y := arm.LocalToWorld(1, 0)
	if !near(x, 15) || !near(y, 1) {
		t.Errorf("LocalToWorld(1,0) = (%v,%v), want (15,1)", x, y)
	}

	s.ScaleX = -1
	s.UpdateWorldTransform()
	if !near(arm.WorldX(), -5) {
		t.Errorf("flipped arm x = %v, want -5", arm.WorldX())
	}
	if w := arm.World(); !near(w[6], arm.WorldX()) || !near(w[7], arm.WorldY()) {
		t.Errorf("World() translation = (%v,%v)", w[6], w[7])
	}
}

func TestSetToSetupPose(t *testing.T) {
	s := New(threeSlots())
	s.Bones[1].X = 99
	s.Slots[0].Color = Black
	s.Slots[1].SetAttachment(nil)
	if err := s.SetDrawOrder([]int{2, 1, 0}); err != nil {
		t.Fatal(err)
	}

	s.SetToSetupPose()
	if s.Bones[1].X != 10 {
		t.Errorf("arm x = %v, want 10", s.Bones[1].X)
	}
	if s.Slots[0].Color != White {
		t.Errorf("slot color = %+v, want white", s.Slots[0].Color)
	}
	if s.Slots[1].Attachment() == nil {
		t.Error("setup attachment not restored")
	}
	if s.DrawOrder[0] != s.Slots[0] {
		t.Error("draw order not restored")
	}
}

func TestSetDrawOrder(t *testing.T) {
	tests := []struct {
		name    string
		order   []int
		wantErr bool
		want    []string
	}{
		{"permutation", []int{2, 0, 1}, false, []string{"c", "a", "b"}},
		{"identity", []int{0, 1, 2}, false, []string{"a", "b", "c"}},
		{"short", []int{0, 1}, true, nil},
		{"duplicate", []int{0, 0, 1}, true, nil},
		{"out of range", []int{0, 1, 3}, true, nil},
		{"negative", []int{-1, 1, 2}, true, nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := New(threeSlots())
			err := s.SetDrawOrder(tt.order)
			if (err != nil) != tt.wantErr {
				t.Fatalf("SetDrawOrder() error = %v, wantErr %v", err, tt.wantErr)
			}
			if err != nil {
				if !errors.Is(err, ErrInvalidDrawOrder) {
					t.Errorf("error = %v, want ErrInvalidDrawOrder", err)
				}
				if s.DrawOrder[0] != s.Slots[0] {
					t.Error("rejected order modified the draw order")
				}
				return
			}
			for i, name := range tt.want {
				if got := s.DrawOrder[i].Data.Name; got != name {
					t.Errorf("DrawOrder[%d] = %s, want %s", i, got, name)
				}
			}
		})
	}
}

func TestSetAttachment(t *testing.T) {
	d := threeSlots()
	alt := NewRegionAttachment("alt", 4, 4)
	d.DefaultSkin.SetAttachment(0, "alt", alt)
	s := New(d)

	s.Slots[0].Deform = append(s.Slots[0].Deform, 1, 2)
	if err := s.SetAttachment("a", "alt"); err != nil {
		t.Fatalf("SetAttachment() error = %v", err)
	}
	if s.Slots[0].Attachment() != alt {
		t.Error("attachment not replaced")
	}
	if len(s.Slots[0].Deform) != 0 {
		t.Error("deform kept across attachment change")
	}

	if err := s.SetAttachment("a", "nope"); !errors.Is(err, ErrAttachmentNotFound) {
		t.Errorf("SetAttachment(nope) error = %v, want ErrAttachmentNotFound", err)
	}
	if err := s.SetAttachment("zz", "alt"); !errors.Is(err, ErrSlotNotFound) {
		t.Errorf("SetAttachment(zz) error = %v, want ErrSlotNotFound", err)
	}
}

func TestSkinFallback(t *testing.T) {
	d := threeSlots()
	s := New(d)
	skin := NewSkin("red")
	red := NewRegionAttachment("red", 1, 1)
	skin.SetAttachment(1, "red", red)
	s.Skin = skin

	if err := s.SetAttachment("b", "red"); err != nil {
		t.Fatalf("SetAttachment(red) error = %v", err)
	}
	// Falls back to the default skin.
	if err := s.SetAttachment("a", "a"); err != nil {
		t.Fatalf("SetAttachment(a) error = %v", err)
	}
	if skin.Len() != 1 || d.DefaultSkin.Len() != 3 {
		t.Errorf("skin sizes = %d, %d", skin.Len(), d.DefaultSkin.Len())
	}
	var none *Skin
	if none.Attachment(0, "a") != nil {
		t.Error("nil skin returned an attachment")
	}
}

func TestFind(t *testing.T) {
	d := threeSlots()
	s := New(d)

	if b, err := s.FindBone("arm"); err != nil || b.Data.Name != "arm" {
		t.Errorf("FindBone(arm) = %v, %v", b, err)
	}
	if _, err := s.FindBone("leg"); !errors.Is(err, ErrBoneNotFound) {
		t.Errorf("FindBone(leg) error = %v", err)
	}
	if sd, err := d.FindSlot("c"); err != nil || sd.Index != 2 {
		t.Errorf("Data.FindSlot(c) = %v, %v", sd, err)
	}
	if _, err := d.FindSlot("z"); !errors.Is(err, ErrSlotNotFound) {
		t.Errorf("Data.FindSlot(z) error = %v", err)
	}
	if bd, err := d.FindBone("root"); err != nil || bd.Index != 0 {
		t.Errorf("Data.FindBone(root) = %v, %v", bd, err)
	}
	if _, err := d.FindBone("z"); !errors.Is(err, ErrBoneNotFound) {
		t.Errorf("Data.FindBone(z) error = %v", err)
	}
}

func TestProcedural(t *testing.T) {
	s := New(threeSlots())
	p := NewProcedural(func(s *Skeleton, t float64) {
		s.Bones[0].X = float32(t)
	})
	p.TimeScale = 2
	p.Update(1.5)
	if !p.Apply(s) || s.Bones[0].X != 3 {
		t.Errorf("root x = %v, want 3", s.Bones[0].X)
	}

	if (&Procedural{}).Apply(s) {
		t.Error("Procedural without Pose reported a change")
	}
	var nop NopState
	nop.Update(1)
	if nop.Apply(s) {
		t.Error("NopState.Apply() = true")
	}
}
