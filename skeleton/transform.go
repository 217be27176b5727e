package skeleton

import "github.com/go-gl/mathgl/mgl32"

// Bone and skeleton transforms are homogeneous 2D matrices:
//
//	| a  b  x |
//	| c  d  y |
//	| 0  0  1 |
//
// stored column-major as mgl32 does, so a=m[0], c=m[1], b=m[3], d=m[4],
// x=m[6], y=m[7].

// localTransform composes translate * rotate * scale.
// Rotation is in degrees, counter-clockwise.
func localTransform(x, y, rotation, scaleX, scaleY float32) mgl32.Mat3 {
	return mgl32.Translate2D(x, y).
		Mul3(mgl32.HomogRotate2D(mgl32.DegToRad(rotation))).
		Mul3(mgl32.Scale2D(scaleX, scaleY))
}

// transformPoint applies m to (x, y).
func transformPoint(m mgl32.Mat3, x, y float32) (float32, float32) {
	return m[0]*x + m[3]*y + m[6], m[1]*x + m[4]*y + m[7]
}
