package maze

import "fmt"

// CellKind classifies one maze cell.
type CellKind uint8

// Cell kinds. Wall is the zero value.
const (
	Wall CellKind = iota
	Path
	TraversedPath
	Start
	End
)

var cellNames = [...]string{
	Wall:          "wall",
	Path:          "path",
	TraversedPath: "traversed",
	Start:         "start",
	End:           "end",
}

var cellGlyphs = [...]byte{
	Wall:          'W',
	Path:          'P',
	TraversedPath: ' ',
	Start:         'S',
	End:           'E',
}

// String returns the lowercase name of the kind.
func (k CellKind) String() string {
	if int(k) < len(cellNames) {
		return cellNames[k]
	}
	return fmt.Sprintf("CellKind(%d)", uint8(k))
}

// Glyph returns the single character used by Grid.String.
func (k CellKind) Glyph() byte {
	if int(k) < len(cellGlyphs) {
		return cellGlyphs[k]
	}
	return '?'
}

// MarshalText lets CellKind appear by name in JSON output.
func (k CellKind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

func (k CellKind) IsWall() bool { return k == Wall }
func (k CellKind) IsPath() bool { return k == Path }
func (k CellKind) IsTraversed() bool { return k == TraversedPath }
func (k CellKind) IsStart() bool { return k == Start }
func (k CellKind) IsEnd() bool { return k == End }

// walkable reports whether the search may enter a cell of this kind.
func (k CellKind) walkable() bool {
	return k == Path || k == End
}
