package server

import (
	"fmt"
	"image"

	"github.com/ironsheep/maze-tools-mcp/internal/config"
	"github.com/ironsheep/maze-tools-mcp/internal/imaging"
	"github.com/ironsheep/maze-tools-mcp/internal/maze"
)

// Point is a cell coordinate in tool output.
type Point struct {
	X int `json:"x"`
	Y int `json:"y"`
}

func toPoint(p image.Point) Point {
	return Point{X: p.X, Y: p.Y}
}

func toPoints(ps []image.Point) []Point {
	out := make([]Point, len(ps))
	for i, p := range ps {
		out[i] = toPoint(p)
	}
	return out
}

// mazeSession is one decoded and solved maze. Sessions are built per call and
// never shared between goroutines.
type mazeSession struct {
	path   string
	img    image.Image
	grid   *maze.Grid
	finder *maze.PathFinder
	sol    *maze.Solution
}

// openMaze loads, decodes and solves the maze at path.
func (s *Server) openMaze(path string) (*mazeSession, error) {
	img, err := s.cache.Load(path)
	if err != nil {
		return nil, err
	}

	grid, err := maze.Build(img)
	if err != nil {
		return nil, fmt.Errorf("failed to decode maze %s: %w", path, err)
	}

	finder := maze.NewPathFinder(grid)
	sol := finder.Solve()
	s.debugf("solved %s (%dx%d): solved=%v path=%d steps=%d",
		path, grid.Width(), grid.Height(), sol.Solved, len(sol.Path), sol.Steps)

	return &mazeSession{
		path:   path,
		img:    img,
		grid:   grid,
		finder: finder,
		sol:    sol,
	}, nil
}

// render paints the solved route over a copy of the original image.
func (m *mazeSession) render(g imaging.Gradient) (*image.NRGBA, error) {
	if !m.sol.Solved {
		return nil, fmt.Errorf("%s: %w", m.path, maze.ErrUnsolvable)
	}
	out := imaging.Mutable(m.img)
	imaging.RenderPath(out, m.sol.Path, g)
	return out, nil
}

// gradientChoice describes the gradient a caller asked for. From and To take
// precedence over Name; an empty Name selects the configured default.
type gradientChoice struct {
	Name string
	Kind string
	From string
	To   string
}

// resolveGradient turns a gradientChoice into a Gradient and a label for it.
func (s *Server) resolveGradient(c gradientChoice) (imaging.Gradient, string, error) {
	if c.From != "" || c.To != "" {
		if c.From == "" || c.To == "" {
			return nil, "", fmt.Errorf("custom gradient needs both from and to")
		}
		from, err := imaging.ParseHexColor(c.From)
		if err != nil {
			return nil, "", err
		}
		to, err := imaging.ParseHexColor(c.To)
		if err != nil {
			return nil, "", err
		}
		kind := c.Kind
		if kind == "" {
			kind = imaging.KindLinear
		}
		g, err := imaging.NewGradient(imaging.GradientSpec{Kind: kind, From: from, To: to})
		if err != nil {
			return nil, "", err
		}
		return g, fmt.Sprintf("%s %s->%s", kind, from.Hex(), to.Hex()), nil
	}

	name := c.Name
	if name == "" {
		name = s.cfg.DefaultGradient
	}
	g, err := s.presets.Lookup(name)
	if err != nil {
		return nil, "", err
	}
	return g, name, nil
}

// previewScale validates a requested upscale factor, falling back to the
// configured default when zero.
func (s *Server) previewScale(scale int) (int, error) {
	if scale == 0 {
		return s.cfg.PreviewScale, nil
	}
	if scale < 1 || scale > config.MaxPreviewScale {
		return 0, fmt.Errorf("scale must be between 1 and %d, got %d", config.MaxPreviewScale, scale)
	}
	return scale, nil
}

// RenderFile solves the maze image at inPath and writes the route, painted
// with the named gradient preset, to outPath. An empty gradient selects the
// configured default. Unsolvable mazes return an error wrapping
// maze.ErrUnsolvable and write nothing.
func (s *Server) RenderFile(inPath, outPath, gradient string) (*maze.Solution, error) {
	m, err := s.openMaze(inPath)
	if err != nil {
		return nil, err
	}

	g, _, err := s.resolveGradient(gradientChoice{Name: gradient})
	if err != nil {
		return m.sol, err
	}

	out, err := m.render(g)
	if err != nil {
		return m.sol, err
	}
	if err := imaging.Save(outPath, out); err != nil {
		return m.sol, err
	}
	return m.sol, nil
}
