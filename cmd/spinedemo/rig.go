package main

import (
	"image"
	"image/color"
	"math"

	"github.com/gogpu/gg-spine/skeleton"
)

// checker returns a size x size two-tone checkerboard.
func checker(size, cell int, a, b color.NRGBA) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, size, size))
	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			if (x/cell+y/cell)%2 == 0 {
				img.SetNRGBA(x, y, a)
			} else {
				img.SetNRGBA(x, y, b)
			}
		}
	}
	return img
}

// demoRig builds a small character: a torso region, a weighted cape
// mesh, and a porthole clip that masks both the head and the hat.
//
//	slot order: cape, torso, porthole (clip), head, hat, badge
func demoRig() *skeleton.Data {
	root := skeleton.NewBoneData(0, "root", nil)
	torso := skeleton.NewBoneData(1, "torso", root)
	torso.Y = 4
	neck := skeleton.NewBoneData(2, "neck", torso)
	neck.Y = 8
	cape := skeleton.NewBoneData(3, "cape", torso)
	cape.Y = 6

	page := &skeleton.TexturePage{
		Name:   "demo.png",
		Image:  checker(32, 4, color.NRGBA{R: 230, G: 230, B: 230, A: 255}, color.NRGBA{R: 150, G: 150, B: 170, A: 255}),
		Width:  32,
		Height: 32,
	}
	full := skeleton.NewPageRegion(page)

	data := &skeleton.Data{
		Name:        "demo",
		Bones:       []*skeleton.BoneData{root, torso, neck, cape},
		DefaultSkin: skeleton.NewSkin("default"),
	}
	add := func(name string, bone *skeleton.BoneData, a skeleton.Attachment) *skeleton.SlotData {
		sd := skeleton.NewSlotData(len(data.Slots), name, bone)
		if a != nil {
			sd.AttachmentName = a.Name()
			data.DefaultSkin.SetAttachment(sd.Index, a.Name(), a)
		}
		data.Slots = append(data.Slots, sd)
		return sd
	}

	// Each cape vertex is weighted between the torso and cape bones.
	capeMesh := skeleton.NewMeshAttachment("cape")
	capeMesh.Bones = []int{
		2, 1, 3,
		2, 1, 3,
		2, 1, 3,
		2, 1, 3,
	}
	capeMesh.Vertices = []float32{
		-5, -8, 0.8, -5, -14, 0.2,
		5, -8, 0.8, 5, -14, 0.2,
		5, 4, 0.2, 5, -2, 0.8,
		-5, 4, 0.2, -5, -2, 0.8,
	}
	capeMesh.WorldVerticesLength = 8
	capeMesh.Triangles = []uint16{0, 1, 2, 2, 3, 0}
	capeMesh.RegionUVs = []float32{0, 1, 1, 1, 1, 0, 0, 0}
	capeMesh.HullLength = 8
	capeMesh.Color = skeleton.Hex("b03040")
	capeMesh.SetRegion(full)
	add("cape", cape, capeMesh)

	body := skeleton.NewRegionAttachment("torso", 8, 10)
	body.Color = skeleton.Hex("4080c0")
	body.SetRegion(full)
	add("torso", torso, body)

	var ring []float32
	for i := 0; i < 12; i++ {
		a := float64(i) / 12 * 2 * math.Pi
		ring = append(ring, float32(6*math.Cos(a)), float32(2+6*math.Sin(a)))
	}
	porthole := skeleton.NewClippingAttachment("porthole", ring, nil)
	add("porthole", neck, porthole)

	head := skeleton.NewRegionAttachment("head", 9, 9)
	head.Y = 3
	head.UpdateOffset()
	head.Color = skeleton.Hex("f0c090")
	head.SetRegion(full)
	add("head", neck, head)

	hat := skeleton.NewRegionAttachment("hat", 14, 4)
	hat.Y = 8
	hat.Rotation = 10
	hat.UpdateOffset()
	hat.Color = skeleton.Hex("303030")
	hat.SetRegion(full)
	porthole.EndSlot = add("hat", neck, hat)

	badge := skeleton.NewRegionAttachment("badge", 3, 3)
	badge.Color = skeleton.Hex("ffd700c0")
	badge.SetRegion(full)
	sd := add("badge", torso, badge)
	sd.BlendMode = skeleton.BlendAdditive

	return data
}

// sway poses the demo rig at time t seconds.
func sway(s *skeleton.Skeleton, t float64) {
	s.SetBonesToSetupPose()
	s.Bones[1].Rotation = float32(8 * math.Sin(t*2))
	s.Bones[2].Rotation = float32(-12 * math.Sin(t*2+0.6))
	s.Bones[3].Rotation = float32(15 * math.Sin(t*3))
	s.Bones[0].Y = float32(math.Abs(math.Sin(t*4))) * 2
}
