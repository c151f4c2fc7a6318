// Implements a TikZ backend to render pipedream diagrams,
// producing a picture suitable for inclusion in a LaTeX document.
package bpdtikz

import (
	"fmt"
	"os"
	"strings"

	"github.com/pseudoeffective/bpdraw/bpdgrid"
)

// Options control the generated picture.
type Options struct {
	Unit     float64 // physical size of one cell, in cm
	ShowGrid bool    // draw light guide lines between cells
}

// DefaultOptions draws 0.7cm cells with guide lines.
var DefaultOptions = Options{Unit: 0.7, ShowGrid: true}

// OptionError reports an out-of-range option value.
type OptionError struct {
	Name  string
	Value float64
}

func (e *OptionError) Error() string {
	return fmt.Sprintf("bpdtikz: option %s must be positive, got %g", e.Name, e.Value)
}

// markerRadius is the disc size for Dot and Star tiles, in cell units.
const markerRadius = 0.13

// styleNames maps command styles to the TikZ color names declared
// in the picture preamble.
var styleNames = [...]string{
	bpdgrid.GridGuide:       "bpd-grid-guide",
	bpdgrid.Frame:           "bpd-frame",
	bpdgrid.FillHighlight:   "bpd-fill-highlight",
	bpdgrid.StrokeHighlight: "bpd-stroke-highlight",
	bpdgrid.Line:            "bpd-line",
	bpdgrid.LabelEmphasis:   "bpd-label-emphasis",
	bpdgrid.LabelDefault:    "bpd-label-default",
}

// styleColors gives each symbolic style a concrete RGB value.
var styleColors = [...][3]uint8{
	bpdgrid.GridGuide:       {204, 204, 204},
	bpdgrid.Frame:           {64, 64, 64},
	bpdgrid.FillHighlight:   {221, 238, 255},
	bpdgrid.StrokeHighlight: {136, 170, 221},
	bpdgrid.Line:            {0, 68, 170},
	bpdgrid.LabelEmphasis:   {204, 0, 0},
	bpdgrid.LabelDefault:    {34, 34, 34},
}

var _ bpdgrid.Driver = (*writer)(nil)

// writer accumulates the whole picture in memory before anything
// is returned or written out.
type writer struct {
	b strings.Builder
}

// pt formats a coordinate pair with fixed 2-decimal precision,
// so that equal inputs serialize byte-identically.
func pt(x, y float64) string {
	return fmt.Sprintf("(%.2f,%.2f)", x, y)
}

func (w *writer) FillRect(op bpdgrid.FillRect) {
	fmt.Fprintf(&w.b, "\\fill[%s] %s rectangle %s;\n",
		styleNames[op.Style], pt(op.X0, op.Y0), pt(op.X1, op.Y1))
}

func (w *writer) StrokeRect(op bpdgrid.StrokeRect) {
	fmt.Fprintf(&w.b, "\\draw[%s] %s rectangle %s;\n",
		styleNames[op.Style], pt(op.X0, op.Y0), pt(op.X1, op.Y1))
}

func (w *writer) Segment(op bpdgrid.Segment) {
	fmt.Fprintf(&w.b, "\\draw[%s] %s -- %s;\n",
		styleNames[op.Style], pt(op.X0, op.Y0), pt(op.X1, op.Y1))
}

func (w *writer) Curve(op bpdgrid.Curve) {
	fmt.Fprintf(&w.b, "\\draw[%s] %s .. controls %s and %s .. %s;\n",
		styleNames[op.Style],
		pt(op.P0.X, op.P0.Y), pt(op.P1.X, op.P1.Y),
		pt(op.P2.X, op.P2.Y), pt(op.P3.X, op.P3.Y))
}

func (w *writer) Marker(op bpdgrid.Marker) {
	fmt.Fprintf(&w.b, "\\fill[%s] %s circle[radius=%.2f];\n",
		styleNames[op.Style], pt(op.X, op.Y), markerRadius)
}

func (w *writer) Label(op bpdgrid.Label) {
	fmt.Fprintf(&w.b, "\\node[text=%s] at %s {%s};\n",
		styleNames[op.Style], pt(op.X, op.Y), op.Content)
}

// Serialize turns a command list into a self-contained tikzpicture
// covering a rows x cols canvas. The text is built entirely in
// memory; a failed call surfaces no partial output.
func Serialize(cmds []bpdgrid.Command, rows, cols int, opts Options) (string, error) {
	if opts.Unit <= 0 {
		return "", &OptionError{Name: "Unit", Value: opts.Unit}
	}
	w := new(writer)

	fmt.Fprintf(&w.b, "%% bumpless pipedream, %dx%d\n", rows, cols)
	fmt.Fprintf(&w.b, "\\begin{tikzpicture}[x=%.2fcm,y=%.2fcm,line cap=round,line width=0.9pt]\n", opts.Unit, opts.Unit)
	for s, name := range styleNames {
		rgb := styleColors[s]
		fmt.Fprintf(&w.b, "\\definecolor{%s}{RGB}{%d,%d,%d}\n", name, rgb[0], rgb[1], rgb[2])
	}
	fmt.Fprintf(&w.b, "\\useasboundingbox (0,0) rectangle %s;\n", pt(float64(cols), float64(rows)))

	if opts.ShowGrid {
		guide := styleNames[bpdgrid.GridGuide]
		for i := 1; i < rows; i++ {
			fmt.Fprintf(&w.b, "\\draw[%s,very thin] %s -- %s;\n",
				guide, pt(0, float64(i)), pt(float64(cols), float64(i)))
		}
		for j := 1; j < cols; j++ {
			fmt.Fprintf(&w.b, "\\draw[%s,very thin] %s -- %s;\n",
				guide, pt(float64(j), 0), pt(float64(j), float64(rows)))
		}
	}

	// one closed path for the outer frame
	fmt.Fprintf(&w.b, "\\draw[%s] %s -- %s -- %s -- %s -- cycle;\n",
		styleNames[bpdgrid.Frame],
		pt(0, 0), pt(float64(cols), 0), pt(float64(cols), float64(rows)), pt(0, float64(rows)))

	bpdgrid.Replay(cmds, w)

	w.b.WriteString("\\end{tikzpicture}\n")
	return w.b.String(), nil
}

// RenderGrid renders and serializes the grid in one call.
func RenderGrid(g *bpdgrid.Grid, opts Options) (string, error) {
	cmds, err := bpdgrid.Render(g)
	if err != nil {
		return "", err
	}
	return Serialize(cmds, g.Rows(), g.Cols(), opts)
}

// WriteFile serializes the commands and writes the whole text to
// path in a single write, so no partial file is ever observable.
func WriteFile(path string, cmds []bpdgrid.Command, rows, cols int, opts Options) error {
	text, err := Serialize(cmds, rows, cols, opts)
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, []byte(text), 0o644); err != nil {
		return fmt.Errorf("bpdtikz: writing %s: %w", path, err)
	}
	return nil
}
