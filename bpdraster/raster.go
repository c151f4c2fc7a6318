// Implements a raster backend to render pipedream diagrams,
// by wrapping rasterx.
package bpdraster

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"

	"github.com/pseudoeffective/bpdraw/bpdgrid"
	"github.com/srwiley/rasterx"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

var _ bpdgrid.Driver = (*Renderer)(nil) // assert interface conformance

// palette maps the symbolic command styles to concrete colors.
var palette = [...]color.RGBA{
	bpdgrid.GridGuide:       {R: 0xcc, G: 0xcc, B: 0xcc, A: 0xff},
	bpdgrid.Frame:           {R: 0x40, G: 0x40, B: 0x40, A: 0xff},
	bpdgrid.FillHighlight:   {R: 0xdd, G: 0xee, B: 0xff, A: 0xff},
	bpdgrid.StrokeHighlight: {R: 0x88, G: 0xaa, B: 0xdd, A: 0xff},
	bpdgrid.Line:            {R: 0x00, G: 0x44, B: 0xaa, A: 0xff},
	bpdgrid.LabelEmphasis:   {R: 0xcc, G: 0x00, B: 0x00, A: 0xff},
	bpdgrid.LabelDefault:    {R: 0x22, G: 0x22, B: 0x22, A: 0xff},
}

// markerRadius is the disc size for Dot and Star tiles, in cell units.
const markerRadius = 0.13

// Renderer scan-converts command lists onto an RGBA image.
type Renderer struct {
	img     *image.RGBA
	scanner *rasterx.ScannerGV
	filler  *rasterx.Filler
	dasher  *rasterx.Dasher // separate instance, to avoid shared state
	scale   float64         // pixels per cell unit
	rows    float64         // canvas height in cell units, for y flipping
}

// NewRenderer returns a renderer drawing a rows x cols cell canvas
// onto img, scaled to fit its bounds.
func NewRenderer(img *image.RGBA, rows, cols int) *Renderer {
	w, h := img.Bounds().Dx(), img.Bounds().Dy()
	scale := float64(w) / float64(cols)
	if s := float64(h) / float64(rows); s < scale {
		scale = s
	}
	scanner := rasterx.NewScannerGV(w, h, img, img.Bounds())
	return &Renderer{
		img:     img,
		scanner: scanner,
		filler:  rasterx.NewFiller(w, h, scanner),
		dasher:  rasterx.NewDasher(w, h, scanner),
		scale:   scale,
		rows:    float64(rows),
	}
}

// pt maps cell-unit coordinates to device pixels, flipping y so
// that the picture's bottom edge lands at the image's bottom.
func (rd *Renderer) pt(x, y float64) fixed.Point26_6 {
	return fixed.Point26_6{
		X: fixed.Int26_6(x * rd.scale * 64),
		Y: fixed.Int26_6((rd.rows - y) * rd.scale * 64),
	}
}

func (rd *Renderer) setStroke(s bpdgrid.Style) {
	width := fixed.Int26_6(rd.scale * 0.06 * 64)
	if width < 64 {
		width = 64 // at least one pixel
	}
	rd.dasher.SetStroke(width, 4*64, rasterx.RoundCap, rasterx.RoundCap,
		rasterx.RoundGap, rasterx.Round, nil, 0)
	rd.scanner.SetColor(palette[s])
}

func (rd *Renderer) strokeRect(x0, y0, x1, y1 float64, s bpdgrid.Style) {
	rd.setStroke(s)
	d := rd.dasher
	d.Clear()
	d.Start(rd.pt(x0, y0))
	d.Line(rd.pt(x1, y0))
	d.Line(rd.pt(x1, y1))
	d.Line(rd.pt(x0, y1))
	d.Stop(true)
	d.Draw()
}

func (rd *Renderer) FillRect(op bpdgrid.FillRect) {
	rd.scanner.SetColor(palette[op.Style])
	f := rd.filler
	f.Clear()
	f.Start(rd.pt(op.X0, op.Y0))
	f.Line(rd.pt(op.X1, op.Y0))
	f.Line(rd.pt(op.X1, op.Y1))
	f.Line(rd.pt(op.X0, op.Y1))
	f.Stop(true)
	f.Draw()
}

func (rd *Renderer) StrokeRect(op bpdgrid.StrokeRect) {
	rd.strokeRect(op.X0, op.Y0, op.X1, op.Y1, op.Style)
}

func (rd *Renderer) Segment(op bpdgrid.Segment) {
	rd.setStroke(op.Style)
	d := rd.dasher
	d.Clear()
	d.Start(rd.pt(op.X0, op.Y0))
	d.Line(rd.pt(op.X1, op.Y1))
	d.Stop(false)
	d.Draw()
}

func (rd *Renderer) Curve(op bpdgrid.Curve) {
	rd.setStroke(op.Style)
	d := rd.dasher
	d.Clear()
	d.Start(rd.pt(op.P0.X, op.P0.Y))
	d.CubeBezier(rd.pt(op.P1.X, op.P1.Y), rd.pt(op.P2.X, op.P2.Y), rd.pt(op.P3.X, op.P3.Y))
	d.Stop(false)
	d.Draw()
}

func (rd *Renderer) Marker(op bpdgrid.Marker) {
	rd.scanner.SetColor(palette[op.Style])
	f := rd.filler
	f.Clear()
	p := rd.pt(op.X, op.Y)
	rasterx.AddCircle(float64(p.X)/64, float64(p.Y)/64, markerRadius*rd.scale, f)
	f.Draw()
}

func (rd *Renderer) Label(op bpdgrid.Label) {
	p := rd.pt(op.X, op.Y)
	dr := font.Drawer{
		Dst:  rd.img,
		Src:  image.NewUniform(palette[op.Style]),
		Face: basicfont.Face7x13,
	}
	adv := dr.MeasureString(op.Content)
	// nudge the baseline down to optically center the 7x13 face
	dr.Dot = fixed.Point26_6{X: p.X - adv/2, Y: p.Y + 4*64}
	dr.DrawString(op.Content)
}

// Plot renders the grid into a fresh RGBA image of the given pixel
// size, on a white background, with the outer frame and optional
// cell guide lines.
func Plot(g *bpdgrid.Grid, width, height int, showGrid bool) (*image.RGBA, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("bpdraster: image size %dx%d is not positive", width, height)
	}
	cmds, err := bpdgrid.Render(g)
	if err != nil {
		return nil, err
	}
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	draw.Draw(img, img.Bounds(), image.White, image.Point{}, draw.Src)

	rows, cols := g.Rows(), g.Cols()
	if rows == 0 || cols == 0 {
		return img, nil
	}
	rd := NewRenderer(img, rows, cols)
	if showGrid {
		for i := 1; i < rows; i++ {
			rd.Segment(bpdgrid.Segment{X0: 0, Y0: float64(i), X1: float64(cols), Y1: float64(i), Style: bpdgrid.GridGuide})
		}
		for j := 1; j < cols; j++ {
			rd.Segment(bpdgrid.Segment{X0: float64(j), Y0: 0, X1: float64(j), Y1: float64(rows), Style: bpdgrid.GridGuide})
		}
	}
	rd.strokeRect(0, 0, float64(cols), float64(rows), bpdgrid.Frame)
	bpdgrid.Replay(cmds, rd)
	return img, nil
}

// Surface is an in-memory plotting capability suitable for
// injection into a bpdplot.Dispatcher. The visible flag is ignored:
// an off-screen surface has nothing to show, window visibility is
// the embedding viewer's concern.
type Surface struct{}

func (Surface) Plot(g *bpdgrid.Grid, width, height int, showGrid, visible bool) (image.Image, error) {
	return Plot(g, width, height, showGrid)
}
