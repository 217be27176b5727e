package skeleton

import "strings"

// BlendMode is the static blend mode a slot is configured with.
type BlendMode uint8

// Blend modes.
const (
	BlendNormal BlendMode = iota
	BlendAdditive
	BlendMultiply
	BlendScreen
)

// String returns the lower-case name of the blend mode.
func (m BlendMode) String() string {
	switch m {
	case BlendNormal:
		return "normal"
	case BlendAdditive:
		return "additive"
	case BlendMultiply:
		return "multiply"
	case BlendScreen:
		return "screen"
	default:
		return "unknown"
	}
}

// ParseBlendMode parses a blend mode name. Unknown names map to BlendNormal.
func ParseBlendMode(s string) BlendMode {
	switch strings.ToLower(s) {
	case "additive":
		return BlendAdditive
	case "multiply":
		return BlendMultiply
	case "screen":
		return BlendScreen
	default:
		return BlendNormal
	}
}
