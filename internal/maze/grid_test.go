package maze

import (
	"errors"
	"image"
	"testing"

	"github.com/ironsheep/maze-tools-mcp/internal/imaging"
)

func TestBuild(t *testing.T) {
	g := mustBuild(t,
		"WWW",
		"SPE",
		"WWW",
	)

	if g.Width() != 3 || g.Height() != 3 {
		t.Errorf("dimensions: got %dx%d, want 3x3", g.Width(), g.Height())
	}
	if g.Start() != image.Pt(0, 1) {
		t.Errorf("Start: got %v, want (0,1)", g.Start())
	}
	if g.End() != image.Pt(2, 1) {
		t.Errorf("End: got %v, want (2,1)", g.End())
	}
	if got := g.Cell(image.Pt(1, 1)); got != Path {
		t.Errorf("Cell(1,1): got %s, want path", got)
	}
	if got := g.Cell(image.Pt(1, 0)); got != Wall {
		t.Errorf("Cell(1,0): got %s, want wall", got)
	}
}

func TestBuild_NonSquare(t *testing.T) {
	g := mustBuild(t,
		"WWWWW",
		"WPPPW",
		"SPWPE",
	)
	if g.Width() != 5 || g.Height() != 3 {
		t.Errorf("dimensions: got %dx%d, want 5x3", g.Width(), g.Height())
	}
	if g.Start() != image.Pt(0, 2) || g.End() != image.Pt(4, 2) {
		t.Errorf("endpoints: got %v -> %v", g.Start(), g.End())
	}
}

func TestBuild_OffsetBounds(t *testing.T) {
	img := mazeImage(
		"WWWW",
		"WSEW",
		"WWWW",
	)
	sub := img.SubImage(image.Rect(1, 1, 3, 2))

	g, err := Build(sub)
	if err != nil {
		t.Fatalf("Build failed: %v", err)
	}
	if g.Width() != 2 || g.Height() != 1 {
		t.Errorf("dimensions: got %dx%d, want 2x1", g.Width(), g.Height())
	}
	if g.Start() != image.Pt(0, 0) || g.End() != image.Pt(1, 0) {
		t.Errorf("grid coordinates should start at 0: got %v -> %v", g.Start(), g.End())
	}
}

func TestBuild_Errors(t *testing.T) {
	tests := []struct {
		name string
		rows []string
		want error
	}{
		{"invalid color", []string{"SPXE"}, ErrInvalidPixelColor},
		{"no start", []string{"WPPE"}, ErrMissingEndpoints},
		{"no end", []string{"SPPW"}, ErrMissingEndpoints},
		{"no endpoints", []string{"WPPW"}, ErrMissingEndpoints},
		{"two starts", []string{"SPSE"}, ErrTooManyEndpoints},
		{"two ends", []string{"SEPE"}, ErrTooManyEndpoints},
		{"empty image", nil, ErrMissingEndpoints},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var img image.Image = image.NewRGBA(image.Rect(0, 0, 0, 0))
			if tt.rows != nil {
				img = mazeImage(tt.rows...)
			}
			_, err := Build(img)
			if !errors.Is(err, tt.want) {
				t.Errorf("got %v, want %v", err, tt.want)
			}
		})
	}
}

func TestBuild_InvalidColorReportsPosition(t *testing.T) {
	_, err := Build(mazeImage(
		"SPP",
		"WXE",
	))
	if err == nil {
		t.Fatal("Build should fail")
	}
	want := "pixel (1,1): invalid pixel color: #808080"
	if err.Error() != want {
		t.Errorf("error: got %q, want %q", err.Error(), want)
	}
}

func TestBuildSized(t *testing.T) {
	img := mazeImage(
		"WWW",
		"SPE",
		"WWW",
	)

	if _, err := BuildSized(img, 3, 3); err != nil {
		t.Errorf("BuildSized with matching size failed: %v", err)
	}
	for _, size := range [][2]int{{4, 3}, {3, 2}, {0, 0}} {
		if _, err := BuildSized(img, size[0], size[1]); !errors.Is(err, ErrIncompatibleDimensions) {
			t.Errorf("BuildSized(%dx%d): got %v, want ErrIncompatibleDimensions", size[0], size[1], err)
		}
	}
}

func TestGrid_InBounds(t *testing.T) {
	g := mustBuild(t, "SPE", "WWW")

	tests := []struct {
		p    image.Point
		want bool
	}{
		{image.Pt(0, 0), true},
		{image.Pt(2, 1), true},
		{image.Pt(-1, 0), false},
		{image.Pt(0, -1), false},
		{image.Pt(3, 0), false},
		{image.Pt(0, 2), false},
	}
	for _, tt := range tests {
		if got := g.InBounds(tt.p); got != tt.want {
			t.Errorf("InBounds(%v): got %v, want %v", tt.p, got, tt.want)
		}
	}
	if got := g.Cell(image.Pt(5, 5)); got != Wall {
		t.Errorf("out-of-bounds Cell: got %s, want wall", got)
	}
}

func TestGrid_CloneIsIndependent(t *testing.T) {
	g := mustBuild(t, "SPE")
	c := g.Clone()
	c.set(image.Pt(1, 0), TraversedPath)

	if g.Cell(image.Pt(1, 0)) != Path {
		t.Error("Clone shares cells with the original")
	}
}

func TestGrid_StatsAndString(t *testing.T) {
	g := mustBuild(t,
		"WWWW",
		"SPPE",
		"WPWW",
	)

	s := g.Stats()
	if s.Walls != 7 || s.Paths != 3 || s.Traversed != 0 {
		t.Errorf("Stats: got %+v", s)
	}

	want := "WWWW\nSPPE\nWPWW\n"
	if got := g.String(); got != want {
		t.Errorf("String:\n%s\nwant:\n%s", got, want)
	}
}

func TestGrid_Image(t *testing.T) {
	rows := []string{
		"WPW",
		"SPE",
	}
	g := mustBuild(t, rows...)
	img := g.Image()

	src := mazeImage(rows...)
	for y := 0; y < 2; y++ {
		for x := 0; x < 3; x++ {
			want := imaging.FromColor(src.At(x, y))
			if got := imaging.FromColor(img.At(x, y)); got != want {
				t.Errorf("pixel (%d,%d): got %v, want %v", x, y, got, want)
			}
		}
	}
}
