package bpdplot

import (
	"errors"
	"image"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/pseudoeffective/bpdraw/bpdgrid"
)

// stubPlotter records the request and returns a blank image.
type stubPlotter struct {
	width, height int
	showGrid      bool
}

func (p *stubPlotter) Plot(g *bpdgrid.Grid, width, height int, showGrid, visible bool) (image.Image, error) {
	p.width, p.height, p.showGrid = width, height, showGrid
	return image.NewRGBA(image.Rect(0, 0, width, height)), nil
}

func testGrid(t *testing.T) *bpdgrid.Grid {
	t.Helper()
	g, err := bpdgrid.New([][]bpdgrid.Cell{
		{bpdgrid.Blank, bpdgrid.ElbowSE},
		{bpdgrid.Vertical, bpdgrid.Plus},
	})
	if err != nil {
		t.Fatal(err)
	}
	return g
}

func TestDrawVector(t *testing.T) {
	art, err := New(nil).Draw(testGrid(t), Vector, DefaultOptions)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(art.Text, "\\begin{tikzpicture}") {
		t.Errorf("vector artifact is not a tikzpicture:\n%s", art.Text)
	}
	if art.Image != nil {
		t.Error("vector artifact carries an image")
	}
}

func TestDrawVectorWritesFile(t *testing.T) {
	opts := DefaultOptions
	opts.OutputPath = filepath.Join(t.TempDir(), "out.tex")
	art, err := New(nil).Draw(testGrid(t), Vector, opts)
	if err != nil {
		t.Fatal(err)
	}
	data, err := os.ReadFile(opts.OutputPath)
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != art.Text {
		t.Error("written file differs from the returned text")
	}
}

func TestDrawInteractive(t *testing.T) {
	p := &stubPlotter{}
	opts := DefaultOptions
	opts.ImageWidth, opts.ImageHeight = 300, 200
	art, err := New(p).Draw(testGrid(t), Interactive, opts)
	if err != nil {
		t.Fatal(err)
	}
	if art.Image == nil || art.Text != "" {
		t.Error("interactive artifact should carry only an image")
	}
	if p.width != 300 || p.height != 200 || !p.showGrid {
		t.Errorf("plotter got %dx%d showGrid=%v", p.width, p.height, p.showGrid)
	}
}

func TestDrawInteractiveWithoutPlotter(t *testing.T) {
	_, err := New(nil).Draw(testGrid(t), Interactive, DefaultOptions)
	var capErr *CapabilityError
	if !errors.As(err, &capErr) {
		t.Fatalf("got %v, want a CapabilityError", err)
	}
}

func TestDrawUnknownMode(t *testing.T) {
	opts := DefaultOptions
	opts.OutputPath = filepath.Join(t.TempDir(), "out.tex")
	_, err := New(nil).Draw(testGrid(t), Mode(9), opts)
	var modeErr *ModeError
	if !errors.As(err, &modeErr) {
		t.Fatalf("got %v, want a ModeError", err)
	}
	for _, name := range []string{"Interactive", "Vector"} {
		if !strings.Contains(err.Error(), name) {
			t.Errorf("error %q does not list mode %s", err, name)
		}
	}
	if _, statErr := os.Stat(opts.OutputPath); !os.IsNotExist(statErr) {
		t.Error("failed draw left an output file behind")
	}
}

func TestDrawPropagatesRenderError(t *testing.T) {
	g, err := bpdgrid.New([][]bpdgrid.Cell{{bpdgrid.Code(99)}})
	if err != nil {
		t.Fatal(err)
	}
	if _, err := New(nil).Draw(g, Vector, DefaultOptions); err == nil {
		t.Error("bad tile code rendered without error")
	}
}
