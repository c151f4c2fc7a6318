// Implements a PDF backend to render pipedream diagrams,
// by wrapping github.com/jung-kurt/gofpdf.
package bpdpdf

import (
	"fmt"

	"github.com/jung-kurt/gofpdf"
	"github.com/pseudoeffective/bpdraw/bpdgrid"
)

var _ bpdgrid.Driver = (*Renderer)(nil) // assert interface conformance

// palette maps the symbolic command styles to RGB components.
var palette = [...][3]int{
	bpdgrid.GridGuide:       {204, 204, 204},
	bpdgrid.Frame:           {64, 64, 64},
	bpdgrid.FillHighlight:   {221, 238, 255},
	bpdgrid.StrokeHighlight: {136, 170, 221},
	bpdgrid.Line:            {0, 68, 170},
	bpdgrid.LabelEmphasis:   {204, 0, 0},
	bpdgrid.LabelDefault:    {34, 34, 34},
}

// markerRadius is the disc size for Dot and Star tiles, in cell units.
const markerRadius = 0.13

// Renderer writes command lists onto a pdf page.
type Renderer struct {
	pdf    *gofpdf.Fpdf
	unit   float64 // page units (mm) per cell
	rows   float64 // canvas height in cell units, for y flipping
	ox, oy float64 // top-left page offset of the canvas
}

// NewRenderer returns a renderer drawing a rows x cols cell canvas
// on the current page of pdf, with cells of the given size and the
// canvas top-left corner at (ox, oy), all in page units.
func NewRenderer(pdf *gofpdf.Fpdf, rows, cols int, unit, ox, oy float64) *Renderer {
	return &Renderer{pdf: pdf, unit: unit, rows: float64(rows), ox: ox, oy: oy}
}

// pt maps cell-unit coordinates to page coordinates. Pdf pages put
// the origin at the top-left, so y is flipped here.
func (rd *Renderer) pt(x, y float64) (float64, float64) {
	return rd.ox + x*rd.unit, rd.oy + (rd.rows-y)*rd.unit
}

func (rd *Renderer) setDraw(s bpdgrid.Style) {
	c := palette[s]
	rd.pdf.SetDrawColor(c[0], c[1], c[2])
	rd.pdf.SetLineWidth(rd.unit * 0.06)
}

func (rd *Renderer) setFill(s bpdgrid.Style) {
	c := palette[s]
	rd.pdf.SetFillColor(c[0], c[1], c[2])
}

func (rd *Renderer) rect(x0, y0, x1, y1 float64, styleStr string) {
	x, y := rd.pt(x0, y1) // top-left corner on the page
	rd.pdf.Rect(x, y, (x1-x0)*rd.unit, (y1-y0)*rd.unit, styleStr)
}

func (rd *Renderer) FillRect(op bpdgrid.FillRect) {
	rd.setFill(op.Style)
	rd.rect(op.X0, op.Y0, op.X1, op.Y1, "F")
}

func (rd *Renderer) StrokeRect(op bpdgrid.StrokeRect) {
	rd.setDraw(op.Style)
	rd.rect(op.X0, op.Y0, op.X1, op.Y1, "D")
}

func (rd *Renderer) Segment(op bpdgrid.Segment) {
	rd.setDraw(op.Style)
	x0, y0 := rd.pt(op.X0, op.Y0)
	x1, y1 := rd.pt(op.X1, op.Y1)
	rd.pdf.Line(x0, y0, x1, y1)
}

func (rd *Renderer) Curve(op bpdgrid.Curve) {
	rd.setDraw(op.Style)
	x0, y0 := rd.pt(op.P0.X, op.P0.Y)
	cx0, cy0 := rd.pt(op.P1.X, op.P1.Y)
	cx1, cy1 := rd.pt(op.P2.X, op.P2.Y)
	x1, y1 := rd.pt(op.P3.X, op.P3.Y)
	rd.pdf.MoveTo(x0, y0)
	rd.pdf.CurveBezierCubicTo(cx0, cy0, cx1, cy1, x1, y1)
	rd.pdf.DrawPath("D")
}

func (rd *Renderer) Marker(op bpdgrid.Marker) {
	rd.setFill(op.Style)
	x, y := rd.pt(op.X, op.Y)
	rd.pdf.Circle(x, y, markerRadius*rd.unit, "F")
}

func (rd *Renderer) Label(op bpdgrid.Label) {
	c := palette[op.Style]
	rd.pdf.SetTextColor(c[0], c[1], c[2])
	rd.pdf.SetFont("Helvetica", "", rd.unit*1.6)
	x, y := rd.pt(op.X, op.Y)
	w := rd.pdf.GetStringWidth(op.Content)
	_, fontHeight := rd.pdf.GetFontSize()
	rd.pdf.Text(x-w/2, y+fontHeight*0.35, op.Content)
}

// RenderGridToPDF renders the grid on a single A4 page and writes
// the document to the named file.
func RenderGridToPDF(g *bpdgrid.Grid, path string) error {
	cmds, err := bpdgrid.Render(g)
	if err != nil {
		return err
	}
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.AddPage()

	const unit, margin = 7.0, 20.0
	rows, cols := g.Rows(), g.Cols()
	rd := NewRenderer(pdf, rows, cols, unit, margin, margin)

	for i := 1; i < rows; i++ {
		rd.Segment(bpdgrid.Segment{X0: 0, Y0: float64(i), X1: float64(cols), Y1: float64(i), Style: bpdgrid.GridGuide})
	}
	for j := 1; j < cols; j++ {
		rd.Segment(bpdgrid.Segment{X0: float64(j), Y0: 0, X1: float64(j), Y1: float64(rows), Style: bpdgrid.GridGuide})
	}
	if rows > 0 && cols > 0 {
		rd.setDraw(bpdgrid.Frame)
		rd.rect(0, 0, float64(cols), float64(rows), "D")
	}
	bpdgrid.Replay(cmds, rd)

	if err := pdf.OutputFileAndClose(path); err != nil {
		return fmt.Errorf("bpdpdf: writing %s: %w", path, err)
	}
	return nil
}
