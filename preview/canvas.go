package preview

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"io"

	"github.com/disintegration/imaging"
	"golang.org/x/image/vector"

	spine "github.com/gogpu/gg-spine"
)

// Submission errors.
var (
	// ErrMismatchedUVs is returned when a command has a different number
	// of positions and UVs.
	ErrMismatchedUVs = errors.New("preview: positions and uvs differ in length")

	// ErrIndexOutOfRange is returned when a triangle index exceeds the
	// command's vertex count.
	ErrIndexOutOfRange = errors.New("preview: triangle index out of range")
)

// Canvas is a CPU render target for draw commands.
type Canvas struct {
	img     *image.RGBA
	maskBuf []uint8
	z       *vector.Rasterizer

	originX, originY float32
	scale            float32

	triangles int
}

// NewCanvas creates a transparent w x h canvas with the skeleton origin
// at its center and one pixel per skeleton unit.
func NewCanvas(w, h int) *Canvas {
	return &Canvas{
		img:     image.NewRGBA(image.Rect(0, 0, w, h)),
		z:       vector.NewRasterizer(w, h),
		originX: float32(w) / 2,
		originY: float32(h) / 2,
		scale:   1,
	}
}

// Width returns the canvas width in pixels.
func (c *Canvas) Width() int { return c.img.Rect.Dx() }

// Height returns the canvas height in pixels.
func (c *Canvas) Height() int { return c.img.Rect.Dy() }

// SetView places the skeleton origin at (originX, originY), measured in
// pixels from the bottom-left corner, and sets pixels per skeleton unit.
func (c *Canvas) SetView(originX, originY, scale float32) {
	c.originX, c.originY, c.scale = originX, originY, scale
}

// Clear fills the canvas with col.
func (c *Canvas) Clear(col color.Color) {
	r, g, b, a := col.RGBA()
	px := [4]uint8{uint8(r >> 8), uint8(g >> 8), uint8(b >> 8), uint8(a >> 8)}
	for i := 0; i < len(c.img.Pix); i += 4 {
		copy(c.img.Pix[i:i+4], px[:])
	}
	c.triangles = 0
}

// Triangles returns the number of triangles drawn since the last Clear.
func (c *Canvas) Triangles() int {
	return c.triangles
}

// Submit implements spine.Submitter.
func (c *Canvas) Submit(cmd spine.DrawCommand) error {
	if len(cmd.Positions) != len(cmd.UVs) {
		return fmt.Errorf("%w: %d positions, %d uvs", ErrMismatchedUVs, len(cmd.Positions), len(cmd.UVs))
	}
	n := len(cmd.Positions) / 2
	for _, idx := range cmd.Indices {
		if int(idx) >= n {
			return fmt.Errorf("%w: %d of %d vertices", ErrIndexOutOfRange, idx, n)
		}
	}

	var tex image.Image
	if cmd.Texture != nil {
		tex = cmd.Texture.Image
	}
	if tex == nil {
		spine.Logger().Debug("preview: drawing untextured command as flat tint", "indices", len(cmd.Indices))
	}

	for i := 0; i+2 < len(cmd.Indices); i += 3 {
		var tri triangle
		for k := 0; k < 3; k++ {
			v := int(cmd.Indices[i+k]) * 2
			tri.x[k] = c.originX + cmd.Positions[v]*c.scale
			tri.y[k] = c.originY + cmd.Positions[v+1]*c.scale
			tri.u[k] = cmd.UVs[v]
			tri.v[k] = cmd.UVs[v+1]
		}
		c.fill(&tri, tex, cmd.Tint, cmd.Blend)
	}
	return nil
}

// Image returns a y-down copy of the canvas.
func (c *Canvas) Image() *image.NRGBA {
	return imaging.FlipV(c.img)
}

// SavePNG writes the canvas to path as a PNG.
func (c *Canvas) SavePNG(path string) error {
	return imaging.Save(c.Image(), path)
}

// EncodePNG writes the canvas to w as a PNG.
func (c *Canvas) EncodePNG(w io.Writer) error {
	return imaging.Encode(w, c.Image(), imaging.PNG)
}

var _ spine.Submitter = (*Canvas)(nil)
