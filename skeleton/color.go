package skeleton

import "image/color"

// Color is an RGBA color with each component in the range [0, 1].
// Skeletons, slots, and attachments each carry one; the renderer
// multiplies them component-wise into the composite tint.
type Color struct {
	R, G, B, A float32
}

// Common colors
var (
	White       = Color{R: 1, G: 1, B: 1, A: 1}
	Black       = Color{R: 0, G: 0, B: 0, A: 1}
	Transparent = Color{}
)

// RGBA creates a color from its components.
func RGBA(r, g, b, a float32) Color {
	return Color{R: r, G: g, B: b, A: a}
}

// Mul returns the component-wise product of c and other.
func (c Color) Mul(other Color) Color {
	return Color{
		R: c.R * other.R,
		G: c.G * other.G,
		B: c.B * other.B,
		A: c.A * other.A,
	}
}

// Premultiply returns a premultiplied color.
func (c Color) Premultiply() Color {
	return Color{
		R: c.R * c.A,
		G: c.G * c.A,
		B: c.B * c.A,
		A: c.A,
	}
}

// Lerp performs linear interpolation between two colors.
func (c Color) Lerp(other Color, t float32) Color {
	return Color{
		R: c.R + (other.R-c.R)*t,
		G: c.G + (other.G-c.G)*t,
		B: c.B + (other.B-c.B)*t,
		A: c.A + (other.A-c.A)*t,
	}
}

// Clamp restricts every component to [0, 1].
func (c Color) Clamp() Color {
	return Color{R: clamp01(c.R), G: clamp01(c.G), B: clamp01(c.B), A: clamp01(c.A)}
}

// Packed returns the RGB channels packed as 0xRRGGBB.
// Alpha is not part of the packed value.
func (c Color) Packed() uint32 {
	r := uint32(clamp01(c.R) * 255)
	g := uint32(clamp01(c.G) * 255)
	b := uint32(clamp01(c.B) * 255)
	return r<<16 | g<<8 | b
}

// NRGBA converts c to a standard non-premultiplied color.
func (c Color) NRGBA() color.NRGBA {
	return color.NRGBA{
		R: uint8(clamp01(c.R)*255 + 0.5),
		G: uint8(clamp01(c.G)*255 + 0.5),
		B: uint8(clamp01(c.B)*255 + 0.5),
		A: uint8(clamp01(c.A)*255 + 0.5),
	}
}

// Hex creates a color from a hex string.
// Supports formats: "RRGGBB" and "RRGGBBAA", with or without a leading '#'.
// Malformed input yields opaque white.
func Hex(hex string) Color {
	if hex != "" && hex[0] == '#' {
		hex = hex[1:]
	}
	if len(hex) != 6 && len(hex) != 8 {
		return White
	}

	var v [4]uint32
	v[3] = 255
	for i := 0; i < len(hex)/2; i++ {
		n, ok := parseHexByte(hex[i*2 : i*2+2])
		if !ok {
			return White
		}
		v[i] = n
	}

	return Color{
		R: float32(v[0]) / 255,
		G: float32(v[1]) / 255,
		B: float32(v[2]) / 255,
		A: float32(v[3]) / 255,
	}
}

func parseHexByte(s string) (uint32, bool) {
	var val uint32
	for i := 0; i < len(s); i++ {
		c := s[i]
		val *= 16
		switch {
		case '0' <= c && c <= '9':
			val += uint32(c - '0')
		case 'a' <= c && c <= 'f':
			val += uint32(c - 'a' + 10)
		case 'A' <= c && c <= 'F':
			val += uint32(c - 'A' + 10)
		default:
			return 0, false
		}
	}
	return val, true
}

func clamp01(x float32) float32 {
	if x < 0 {
		return 0
	}
	if x > 1 {
		return 1
	}
	return x
}
