// Package imaging provides the pixel-level operations behind maze rendering.
//
// It loads and saves image files, samples and parses colors, builds color
// gradients and paints a path of points onto an image. All operations use a
// coordinate system where (0,0) is the top-left corner, X increases rightward
// and Y increases downward.
//
// # Color Arithmetic
//
// RGBColor channels are 8-bit. Scale and Add saturate at 0 and 255 instead of
// wrapping, so a blend that overshoots by rounding stays bright. Lerp and the
// Linear and Alternating gradients are built from these two operations.
//
// # Gradients
//
// A Gradient maps (index, total) to a color. Linear blends from its first color
// at index 0 towards its second as index approaches total; Alternating switches
// between the two colors on even and odd indices; Lab blends in CIE L*a*b*
// space. Presets names gradients so callers can pick one by name.
//
// # Thread Safety
//
// The ImageCache type is safe for concurrent use. Cached images are shared and
// must be treated as read-only: render into a Mutable copy.
//
// # Color Representation
//
// Sampled colors are returned in multiple formats:
//   - Hex: 6-character format "#RRGGBB" (alpha excluded)
//   - RGB: 8-bit components (0-255)
//   - HSL: Hue (0-360), Saturation (0-100), Lightness (0-100)
package imaging
