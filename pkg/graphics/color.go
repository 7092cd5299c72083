package graphics

import (
	"fmt"
	"strings"

	"golang.org/x/image/colornames"
	"gopkg.in/yaml.v3"
)

// Color is stored as RGBA (0xRRGGBBAA).
type Color uint32

// RGBA8 constructs a Color from red, green, blue, alpha bytes (all 0-255).
func RGBA8(r, g, b, a uint8) Color {
	return Color(uint32(r)<<24 | uint32(g)<<16 | uint32(b)<<8 | uint32(a))
}

// RGB constructs an opaque Color from red, green, blue bytes.
func RGB(r, g, b uint8) Color {
	return RGBA8(r, g, b, 0xFF)
}

// Named constructs an opaque Color from an SVG 1.1 color name such as
// "cornflowerblue". Unknown names yield false.
func Named(name string) (Color, bool) {
	c, ok := colornames.Map[strings.ToLower(name)]
	if !ok {
		return 0, false
	}
	return RGBA8(c.R, c.G, c.B, c.A), true
}

// R returns the red component byte.
func (c Color) R() uint8 { return uint8(c >> 24) }

// G returns the green component byte.
func (c Color) G() uint8 { return uint8(c >> 16) }

// B returns the blue component byte.
func (c Color) B() uint8 { return uint8(c >> 8) }

// A returns the alpha component byte.
func (c Color) A() uint8 { return uint8(c) }

// RGBAF returns normalized color components (0.0 to 1.0).
func (c Color) RGBAF() (r, g, b, a float64) {
	const maxByte = 255.0
	return float64(c.R()) / maxByte,
		float64(c.G()) / maxByte,
		float64(c.B()) / maxByte,
		float64(c.A()) / maxByte
}

// WithAlpha8 returns a copy of the color with the given alpha byte.
func (c Color) WithAlpha8(a uint8) Color {
	return Color(uint32(c)&0xFFFFFF00 | uint32(a))
}

// String renders the color in the "#RRGGBBAA" form used by the document
// codec.
func (c Color) String() string {
	return fmt.Sprintf("#%08X", uint32(c))
}

// ParseColor parses the "#RRGGBBAA" form, accepting "#RRGGBB" as opaque.
func ParseColor(s string) (Color, error) {
	hex := strings.TrimPrefix(strings.TrimSpace(s), "#")
	switch len(hex) {
	case 6:
		hex += "FF"
	case 8:
	default:
		return 0, fmt.Errorf("graphics: invalid color %q", s)
	}
	var v uint32
	if _, err := fmt.Sscanf(hex, "%08X", &v); err != nil {
		return 0, fmt.Errorf("graphics: invalid color %q", s)
	}
	return Color(v), nil
}

// MarshalYAML encodes the color as a "#RRGGBBAA" scalar.
func (c Color) MarshalYAML() (any, error) {
	return c.String(), nil
}

// UnmarshalYAML decodes either a "#RRGGBBAA" scalar or a named color.
func (c *Color) UnmarshalYAML(node *yaml.Node) error {
	var s string
	if err := node.Decode(&s); err != nil {
		return err
	}
	if v, ok := Named(s); ok {
		*c = v
		return nil
	}
	v, err := ParseColor(s)
	if err != nil {
		return err
	}
	*c = v
	return nil
}

// Common colors.
const (
	ColorTransparent = Color(0x00000000)
	ColorBlack       = Color(0x000000FF)
	ColorWhite       = Color(0xFFFFFFFF)
)
