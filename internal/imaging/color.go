package imaging

import (
	"fmt"
	"image"
	"image/color"
	"math"

	colorful "github.com/lucasb-eyer/go-colorful"
)

// RGBColor represents an opaque RGB color with 8-bit components.
//
// Each component ranges from 0 to 255. RGBColor implements color.Color, so it
// can be written directly into any draw.Image. Arithmetic on RGBColor is
// saturating: results never wrap around the 0-255 range.
type RGBColor struct {
	R uint8 `json:"r"` // Red component (0-255)
	G uint8 `json:"g"` // Green component (0-255)
	B uint8 `json:"b"` // Blue component (0-255)
}

// Named colors used by the maze palette and the gradient presets.
var (
	Black   = RGBColor{0, 0, 0}
	White   = RGBColor{255, 255, 255}
	Red     = RGBColor{255, 0, 0}
	Green   = RGBColor{0, 255, 0}
	Blue    = RGBColor{0, 0, 255}
	Yellow  = RGBColor{255, 255, 0}
	Magenta = RGBColor{255, 0, 255}
	Cyan    = RGBColor{0, 255, 255}
)

// RGBA implements color.Color. The alpha channel is always fully opaque.
func (c RGBColor) RGBA() (r, g, b, a uint32) {
	r = uint32(c.R)
	r |= r << 8
	g = uint32(c.G)
	g |= g << 8
	b = uint32(c.B)
	b |= b << 8
	return r, g, b, 0xffff
}

// Hex returns the color in "#RRGGBB" form.
func (c RGBColor) Hex() string {
	return fmt.Sprintf("#%02X%02X%02X", c.R, c.G, c.B)
}

// Scale multiplies every channel by factor, rounds to the nearest integer and
// clamps the result to 0-255.
//
// Scale(0) is always black. Factors above 1 brighten the color until each
// channel saturates at 255; negative factors saturate at 0.
func (c RGBColor) Scale(factor float64) RGBColor {
	return RGBColor{
		R: scaleChannel(c.R, factor),
		G: scaleChannel(c.G, factor),
		B: scaleChannel(c.B, factor),
	}
}

// Add sums two colors channel by channel, saturating at 255 on overflow.
//
// Gradient blending adds two scaled colors whose factors should sum to 1, but
// floating point rounding can overshoot by one unit; saturation keeps that from
// wrapping to a dark value.
func (c RGBColor) Add(o RGBColor) RGBColor {
	return RGBColor{
		R: addChannel(c.R, o.R),
		G: addChannel(c.G, o.G),
		B: addChannel(c.B, o.B),
	}
}

func scaleChannel(v uint8, factor float64) uint8 {
	raw := math.Round(float64(v) * factor)
	switch {
	case math.IsNaN(raw), raw <= 0:
		return 0
	case raw >= math.MaxUint8:
		return math.MaxUint8
	}
	return uint8(raw)
}

func addChannel(a, b uint8) uint8 {
	sum := uint16(a) + uint16(b)
	if sum > math.MaxUint8 {
		return math.MaxUint8
	}
	return uint8(sum)
}

// FromColor converts any color.Color to an RGBColor by dropping the low 8 bits
// of each 16-bit component. Alpha is ignored.
func FromColor(c color.Color) RGBColor {
	r, g, b, _ := c.RGBA()
	return RGBColor{R: uint8(r >> 8), G: uint8(g >> 8), B: uint8(b >> 8)}
}

// ParseHexColor parses "#RRGGBB" (the leading '#' is required) or one of the
// named colors ("red", "cyan", ...).
func ParseHexColor(s string) (RGBColor, error) {
	if c, ok := namedColors[s]; ok {
		return c, nil
	}
	if s == "" {
		return RGBColor{}, fmt.Errorf("empty color string")
	}
	parsed, err := colorful.Hex(s)
	if err != nil {
		return RGBColor{}, fmt.Errorf("invalid color %q: %w", s, err)
	}
	return fromColorful(parsed), nil
}

var namedColors = map[string]RGBColor{
	"black":   Black,
	"white":   White,
	"red":     Red,
	"green":   Green,
	"blue":    Blue,
	"yellow":  Yellow,
	"magenta": Magenta,
	"cyan":    Cyan,
}

func toColorful(c RGBColor) colorful.Color {
	return colorful.Color{
		R: float64(c.R) / 255.0,
		G: float64(c.G) / 255.0,
		B: float64(c.B) / 255.0,
	}
}

func fromColorful(c colorful.Color) RGBColor {
	r, g, b := c.Clamped().RGB255()
	return RGBColor{R: r, G: g, B: b}
}

// HSLColor represents a color in HSL (Hue, Saturation, Lightness) color space.
type HSLColor struct {
	H int `json:"h"` // Hue: 0-360 degrees (0=red, 120=green, 240=blue)
	S int `json:"s"` // Saturation: 0-100 percent (0=gray, 100=vivid)
	L int `json:"l"` // Lightness: 0-100 percent (0=black, 50=normal, 100=white)
}

// ColorResult contains a color value in multiple representations.
type ColorResult struct {
	Hex string   `json:"hex"` // Hex format "#RRGGBB" (no alpha)
	RGB RGBColor `json:"rgb"` // RGB components
	HSL HSLColor `json:"hsl"` // HSL representation
}

// SampleColor extracts the color value at a specific pixel coordinate.
//
// Parameters:
//   - img: The source image to sample from.
//   - x: X coordinate (0-based, 0 = leftmost pixel).
//   - y: Y coordinate (0-based, 0 = topmost pixel).
//
// Returns:
//   - *ColorResult: The color at (x, y) in multiple formats.
//   - error: Non-nil if coordinates are outside the image bounds.
func SampleColor(img image.Image, x, y int) (*ColorResult, error) {
	bounds := img.Bounds()
	if x < bounds.Min.X || x >= bounds.Max.X || y < bounds.Min.Y || y >= bounds.Max.Y {
		return nil, fmt.Errorf("coordinates (%d,%d) outside image bounds", x, y)
	}

	c := FromColor(img.At(x, y))
	return &ColorResult{
		Hex: c.Hex(),
		RGB: c,
		HSL: toHSL(c),
	}, nil
}

func toHSL(c RGBColor) HSLColor {
	h, s, l := toColorful(c).Hsl()
	return HSLColor{
		H: int(math.Round(h)),
		S: int(math.Round(s * 100)),
		L: int(math.Round(l * 100)),
	}
}
