package skeleton

import "github.com/go-gl/mathgl/mgl32"

// BoneData is the setup pose of a bone.
type BoneData struct {
	Index  int
	Name   string
	Parent *BoneData

	X, Y           float32
	Rotation       float32 // degrees
	ScaleX, ScaleY float32
	Length         float32
}

// NewBoneData creates setup data with unit scale.
func NewBoneData(index int, name string, parent *BoneData) *BoneData {
	return &BoneData{Index: index, Name: name, Parent: parent, ScaleX: 1, ScaleY: 1}
}

// Bone is a posed bone. The local fields are written by animation
// state; World is recomputed by Skeleton.UpdateWorldTransform.
type Bone struct {
	Data     *BoneData
	Skeleton *Skeleton
	Parent   *Bone

	X, Y           float32
	Rotation       float32
	ScaleX, ScaleY float32

	world mgl32.Mat3
}

func newBone(data *BoneData, s *Skeleton, parent *Bone) *Bone {
	b := &Bone{Data: data, Skeleton: s, Parent: parent, world: mgl32.Ident3()}
	b.SetToSetupPose()
	return b
}

// SetToSetupPose resets the local transform to the bone's setup values.
func (b *Bone) SetToSetupPose() {
	d := b.Data
	b.X, b.Y = d.X, d.Y
	b.Rotation = d.Rotation
	b.ScaleX, b.ScaleY = d.ScaleX, d.ScaleY
}

// updateWorldTransform computes World from the parent's world transform,
// or from the skeleton root transform for root bones. Parents must be
// updated first.
func (b *Bone) updateWorldTransform() {
	local := localTransform(b.X, b.Y, b.Rotation, b.ScaleX, b.ScaleY)
	if b.Parent != nil {
		b.world = b.Parent.world.Mul3(local)
		return
	}
	s := b.Skeleton
	root := mgl32.Translate2D(s.X, s.Y).Mul3(mgl32.Scale2D(s.ScaleX, s.ScaleY))
	b.world = root.Mul3(local)
}

// World returns the bone's world transform.
func (b *Bone) World() mgl32.Mat3 {
	return b.world
}

// WorldX returns the world x of the bone origin.
func (b *Bone) WorldX() float32 { return b.world[6] }

// WorldY returns the world y of the bone origin.
func (b *Bone) WorldY() float32 { return b.world[7] }

// LocalToWorld transforms a point from bone space into skeleton space.
func (b *Bone) LocalToWorld(x, y float32) (float32, float32) {
	return transformPoint(b.world, x, y)
}
