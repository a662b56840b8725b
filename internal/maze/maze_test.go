package maze

import (
	"image"
	"image/color"
	"testing"

	"github.com/ironsheep/maze-tools-mcp/internal/imaging"
)

// mazeImage draws one pixel per character: W wall, P path, S start, E end,
// anything else an off-palette gray.
func mazeImage(rows ...string) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, len(rows[0]), len(rows)))
	for y, row := range rows {
		for x, ch := range row {
			var c color.Color
			switch ch {
			case 'W':
				c = imaging.Black
			case 'P':
				c = imaging.White
			case 'S':
				c = imaging.Red
			case 'E':
				c = imaging.Green
			default:
				c = color.RGBA{128, 128, 128, 255}
			}
			img.Set(x, y, c)
		}
	}
	return img
}

// mustBuild decodes rows or fails the test.
func mustBuild(t *testing.T, rows ...string) *Grid {
	t.Helper()
	g, err := Build(mazeImage(rows...))
	if err != nil {
		t.Fatalf("Build failed: %v", err)
	}
	return g
}

func TestCellKind_String(t *testing.T) {
	tests := []struct {
		kind  CellKind
		name  string
		glyph byte
	}{
		{Wall, "wall", 'W'},
		{Path, "path", 'P'},
		{TraversedPath, "traversed", ' '},
		{Start, "start", 'S'},
		{End, "end", 'E'},
		{CellKind(9), "CellKind(9)", '?'},
	}

	for _, tt := range tests {
		if got := tt.kind.String(); got != tt.name {
			t.Errorf("String: got %s, want %s", got, tt.name)
		}
		if got := tt.kind.Glyph(); got != tt.glyph {
			t.Errorf("Glyph(%s): got %q, want %q", tt.name, got, tt.glyph)
		}
	}
}

func TestCellKind_Predicates(t *testing.T) {
	if !Wall.IsWall() || Path.IsWall() {
		t.Error("IsWall")
	}
	if !Path.IsPath() || TraversedPath.IsPath() {
		t.Error("IsPath")
	}
	if !TraversedPath.IsTraversed() || Path.IsTraversed() {
		t.Error("IsTraversed")
	}
	if !Start.IsStart() || End.IsStart() {
		t.Error("IsStart")
	}
	if !End.IsEnd() || Start.IsEnd() {
		t.Error("IsEnd")
	}
}
