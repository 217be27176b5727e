package preview

import (
	"image"
	"image/draw"
	"math"

	spine "github.com/gogpu/gg-spine"
	"github.com/gogpu/gg-spine/skeleton"
)

// triangle is one triangle in canvas pixels with its texture coordinates.
type triangle struct {
	x, y [3]float32
	u, v [3]float32
}

// bounds returns the pixel rectangle covering t, clipped to r.
func (t *triangle) bounds(r image.Rectangle) image.Rectangle {
	minX := min(t.x[0], t.x[1], t.x[2])
	maxX := max(t.x[0], t.x[1], t.x[2])
	minY := min(t.y[0], t.y[1], t.y[2])
	maxY := max(t.y[0], t.y[1], t.y[2])
	b := image.Rect(
		int(math.Floor(float64(minX))), int(math.Floor(float64(minY))),
		int(math.Ceil(float64(maxX))), int(math.Ceil(float64(maxY))),
	)
	return b.Intersect(r)
}

// uvAt interpolates texture coordinates at (px, py) barycentrically.
// ok is false for degenerate triangles.
func (t *triangle) uvAt(px, py float32) (u, v float32, ok bool) {
	d := (t.y[1]-t.y[2])*(t.x[0]-t.x[2]) + (t.x[2]-t.x[1])*(t.y[0]-t.y[2])
	if d == 0 {
		return 0, 0, false
	}
	a := ((t.y[1]-t.y[2])*(px-t.x[2]) + (t.x[2]-t.x[1])*(py-t.y[2])) / d
	b := ((t.y[2]-t.y[0])*(px-t.x[2]) + (t.x[0]-t.x[2])*(py-t.y[2])) / d
	c := 1 - a - b
	return a*t.u[0] + b*t.u[1] + c*t.u[2], a*t.v[0] + b*t.v[1] + c*t.v[2], true
}

// fill rasterizes t into the coverage mask and composites it.
func (c *Canvas) fill(t *triangle, tex image.Image, tint skeleton.Color, mode spine.BlendMode) {
	r := t.bounds(c.img.Rect)
	if r.Empty() {
		return
	}
	w, h := r.Dx(), r.Dy()
	mask := c.maskFor(w, h)
	ox, oy := float32(r.Min.X), float32(r.Min.Y)

	c.z.Reset(w, h)
	c.z.DrawOp = draw.Src
	c.z.MoveTo(t.x[0]-ox, t.y[0]-oy)
	c.z.LineTo(t.x[1]-ox, t.y[1]-oy)
	c.z.LineTo(t.x[2]-ox, t.y[2]-oy)
	c.z.ClosePath()
	c.z.Draw(mask, mask.Rect, image.Opaque, image.Point{})
	c.triangles++

	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			cov := mask.Pix[y*mask.Stride+x]
			if cov == 0 {
				continue
			}
			px, py := r.Min.X+x, r.Min.Y+y
			src := tint
			if tex != nil {
				if u, v, ok := t.uvAt(float32(px)+0.5, float32(py)+0.5); ok {
					src = src.Mul(sample(tex, u, v))
				}
			}
			c.blend(px, py, src, float32(cov)/255, mode)
		}
	}
}

// maskFor returns a w x h coverage mask backed by the canvas's reusable
// buffer.
func (c *Canvas) maskFor(w, h int) *image.Alpha {
	if cap(c.maskBuf) < w*h {
		c.maskBuf = make([]uint8, w*h)
	}
	return &image.Alpha{Pix: c.maskBuf[:w*h], Stride: w, Rect: image.Rect(0, 0, w, h)}
}

// blend composites a straight-alpha color with the given coverage onto
// the premultiplied canvas pixel.
func (c *Canvas) blend(px, py int, src skeleton.Color, coverage float32, mode spine.BlendMode) {
	i := c.img.PixOffset(px, py)
	p := c.img.Pix[i : i+4 : i+4]
	sa := clamp01(src.A) * coverage
	sr, sg, sb := clamp01(src.R)*sa, clamp01(src.G)*sa, clamp01(src.B)*sa

	dr, dg, db, da := float32(p[0])/255, float32(p[1])/255, float32(p[2])/255, float32(p[3])/255
	if mode == spine.BlendAdditive {
		dr, dg, db, da = dr+sr, dg+sg, db+sb, da+sa
	} else {
		k := 1 - sa
		dr, dg, db, da = sr+dr*k, sg+dg*k, sb+db*k, sa+da*k
	}
	p[0], p[1], p[2], p[3] = to8(dr), to8(dg), to8(db), to8(da)
}

// sample returns the texel at normalized (u, v) with nearest filtering.
func sample(img image.Image, u, v float32) skeleton.Color {
	b := img.Bounds()
	x := b.Min.X + int(clamp01(u)*float32(b.Dx()))
	y := b.Min.Y + int(clamp01(v)*float32(b.Dy()))
	x = min(x, b.Max.X-1)
	y = min(y, b.Max.Y-1)
	r, g, bl, a := img.At(x, y).RGBA()
	if a == 0 {
		return skeleton.Transparent
	}
	// Un-premultiply.
	fa := float32(a)
	return skeleton.Color{R: float32(r) / fa, G: float32(g) / fa, B: float32(bl) / fa, A: fa / 0xffff}
}

func to8(x float32) uint8 {
	return uint8(clamp01(x)*255 + 0.5)
}

func clamp01(x float32) float32 {
	return min(max(x, 0), 1)
}
