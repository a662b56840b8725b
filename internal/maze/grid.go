package maze

import (
	"fmt"
	"image"
	"strings"
)

// Grid is a decoded maze: a width x height array of cells plus the positions
// of the start and end cells.
//
// A Grid is never resized. Only a PathFinder's working copy changes, and only
// between Path and TraversedPath.
type Grid struct {
	width  int
	height int
	cells  []CellKind // row-major
	start  image.Point
	end    image.Point
}

// Build decodes img into a Grid sized from the image bounds.
//
// Every pixel must belong to the maze palette, and the image must contain
// exactly one start and exactly one end cell.
func Build(img image.Image) (*Grid, error) {
	bounds := img.Bounds()
	width, height := bounds.Dx(), bounds.Dy()

	g := &Grid{
		width:  width,
		height: height,
		cells:  make([]CellKind, width*height),
	}

	var starts, ends int
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			kind, err := Classify(img.At(bounds.Min.X+x, bounds.Min.Y+y))
			if err != nil {
				return nil, fmt.Errorf("pixel (%d,%d): %w", x, y, err)
			}
			switch kind {
			case Start:
				starts++
				g.start = image.Pt(x, y)
			case End:
				ends++
				g.end = image.Pt(x, y)
			}
			g.cells[y*width+x] = kind
		}
	}

	if starts == 0 || ends == 0 {
		return nil, fmt.Errorf("%w: found %d start and %d end cells", ErrMissingEndpoints, starts, ends)
	}
	if starts > 1 || ends > 1 {
		return nil, fmt.Errorf("%w: found %d start and %d end cells", ErrTooManyEndpoints, starts, ends)
	}

	return g, nil
}

// BuildSized decodes img like Build but first checks that the image is exactly
// width x height pixels.
func BuildSized(img image.Image, width, height int) (*Grid, error) {
	bounds := img.Bounds()
	if bounds.Dx() != width || bounds.Dy() != height {
		return nil, fmt.Errorf("%w: got %dx%d, want %dx%d",
			ErrIncompatibleDimensions, bounds.Dx(), bounds.Dy(), width, height)
	}
	return Build(img)
}

func (g *Grid) Width() int { return g.width }
func (g *Grid) Height() int { return g.height }
func (g *Grid) Start() image.Point { return g.start }
func (g *Grid) End() image.Point { return g.end }

// InBounds reports whether p addresses a cell of g.
func (g *Grid) InBounds(p image.Point) bool {
	return p.X >= 0 && p.X < g.width && p.Y >= 0 && p.Y < g.height
}

// Cell returns the kind at p. Out-of-bounds points read as Wall.
func (g *Grid) Cell(p image.Point) CellKind {
	if !g.InBounds(p) {
		return Wall
	}
	return g.cells[p.Y*g.width+p.X]
}

func (g *Grid) set(p image.Point, kind CellKind) {
	g.cells[p.Y*g.width+p.X] = kind
}

// Clone returns an independent copy of g.
func (g *Grid) Clone() *Grid {
	c := *g
	c.cells = make([]CellKind, len(g.cells))
	copy(c.cells, g.cells)
	return &c
}

// Stats counts the cells of each kind.
type Stats struct {
	Walls     int `json:"walls"`
	Paths     int `json:"paths"`
	Traversed int `json:"traversed"`
}

// Stats returns cell counts for g. Start and end are always one each and are
// not counted.
func (g *Grid) Stats() Stats {
	var s Stats
	for _, k := range g.cells {
		switch k {
		case Wall:
			s.Walls++
		case Path:
			s.Paths++
		case TraversedPath:
			s.Traversed++
		}
	}
	return s
}

// Image paints every cell with its palette color, one pixel per cell.
//
// On a solved PathFinder grid the winning route shows up in blue.
func (g *Grid) Image() *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, g.width, g.height))
	for y := 0; y < g.height; y++ {
		for x := 0; x < g.width; x++ {
			img.Set(x, y, Encode(g.cells[y*g.width+x]))
		}
	}
	return img
}

// String renders g as text, one row per line: W wall, P path, S start,
// E end and a space for traversed cells.
func (g *Grid) String() string {
	var sb strings.Builder
	sb.Grow((g.width + 1) * g.height)
	for y := 0; y < g.height; y++ {
		for x := 0; x < g.width; x++ {
			sb.WriteByte(g.cells[y*g.width+x].Glyph())
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}
