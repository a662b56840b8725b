package maze

import (
	"fmt"
	"image/color"

	"github.com/ironsheep/maze-tools-mcp/internal/imaging"
)

// palette maps every CellKind to its pixel color. TraversedPath is
// write-only: Classify never produces it.
var palette = [...]imaging.RGBColor{
	Wall:          imaging.Black,
	Path:          imaging.White,
	TraversedPath: imaging.Blue,
	Start:         imaging.Red,
	End:           imaging.Green,
}

var decodable = map[imaging.RGBColor]CellKind{
	imaging.Black: Wall,
	imaging.White: Path,
	imaging.Red:   Start,
	imaging.Green: End,
}

// Classify maps a pixel to its cell kind, ignoring alpha.
func Classify(c color.Color) (CellKind, error) {
	rgb := imaging.FromColor(c)
	kind, ok := decodable[rgb]
	if !ok {
		return Wall, fmt.Errorf("%w: %s", ErrInvalidPixelColor, rgb.Hex())
	}
	return kind, nil
}

// Encode returns the palette color of kind. Unknown kinds encode as walls.
func Encode(kind CellKind) imaging.RGBColor {
	if int(kind) < len(palette) {
		return palette[kind]
	}
	return palette[Wall]
}
