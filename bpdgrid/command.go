package bpdgrid

// This file defines the drawing command list produced by Render.
// Coordinates are in cell units with the y axis pointing up;
// each tile occupies the unit square [x,x+1] x [y,y+1].

// Style names the colors a backend must provide. Backends map
// each style to a concrete color of their choosing.
type Style uint8

const (
	GridGuide       Style = iota // light guide lines between cells
	Frame                        // outer border of the diagram
	FillHighlight                // interior of blank and drift squares
	StrokeHighlight              // outline of blank and drift squares
	Line                         // pipes, elbows and markers
	LabelEmphasis                // highlighted drift labels
	LabelDefault                 // ordinary drift labels
)

func (s Style) String() string {
	switch s {
	case GridGuide:
		return "grid-guide"
	case Frame:
		return "frame"
	case FillHighlight:
		return "fill-highlight"
	case StrokeHighlight:
		return "stroke-highlight"
	case Line:
		return "line"
	case LabelEmphasis:
		return "label-emphasis"
	case LabelDefault:
		return "label-default"
	default:
		return "<unknown Style>"
	}
}

// Point is a coordinate in cell units.
type Point struct {
	X, Y float64
}

// Command is one primitive drawing operation.
type Command interface {
	// add itself on the driver d
	drawTo(d Driver)
}

// FillRect paints the interior of an axis-aligned rectangle.
type FillRect struct {
	X0, Y0, X1, Y1 float64
	Style          Style
}

// StrokeRect outlines an axis-aligned rectangle.
type StrokeRect struct {
	X0, Y0, X1, Y1 float64
	Style          Style
}

// Segment is a straight stroked line.
type Segment struct {
	X0, Y0, X1, Y1 float64
	Style          Style
}

// Curve is a stroked cubic Bézier arc from P0 to P3
// with control points P1 and P2.
type Curve struct {
	P0, P1, P2, P3 Point
	Style          Style
}

// Marker is a small filled disc centered at (X, Y).
type Marker struct {
	X, Y  float64
	Style Style
}

// Label is a text run centered at (X, Y).
type Label struct {
	X, Y    float64
	Content string
	Style   Style
}

func (op FillRect) drawTo(d Driver)   { d.FillRect(op) }
func (op StrokeRect) drawTo(d Driver) { d.StrokeRect(op) }
func (op Segment) drawTo(d Driver)    { d.Segment(op) }
func (op Curve) drawTo(d Driver)      { d.Curve(op) }
func (op Marker) drawTo(d Driver)     { d.Marker(op) }
func (op Label) drawTo(d Driver)      { d.Label(op) }

// Driver knows how to do the actual draw operations but doesn't
// need any pipedream knowledge. Coordinates reach the driver
// unscaled, in cell units; the driver owns the mapping to its
// output surface.
type Driver interface {
	FillRect(FillRect)
	StrokeRect(StrokeRect)
	Segment(Segment)
	Curve(Curve)
	Marker(Marker)
	Label(Label)
}

// Replay sends each command to the driver, in order.
func Replay(cmds []Command, d Driver) {
	for _, op := range cmds {
		op.drawTo(d)
	}
}
