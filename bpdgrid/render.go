package bpdgrid

import "fmt"

// CellError reports a tile Render does not recognize.
type CellError struct {
	Row, Col int // 1-indexed position of the offending tile
	Cell     Cell
}

func (e *CellError) Error() string {
	return fmt.Sprintf("bpdgrid: unrecognized tile %v at row %d, column %d", e.Cell, e.Row, e.Col)
}

// cellOrigin maps the 1-indexed grid position (i, j) to the
// lower-left corner of its unit square. The y axis is flipped
// so that row 1 sits at the top of the picture.
func cellOrigin(i, j, rows int) (x, y float64) {
	return float64(j - 1), float64(rows - i)
}

// Render walks the grid in row-major order and emits the drawing
// commands for each tile. The output depends only on the grid:
// the same input always yields the same command sequence, and all
// of one tile's commands are adjacent.
func Render(g *Grid) ([]Command, error) {
	cmds := make([]Command, 0, 2*g.rows*g.cols)
	for i := 1; i <= g.rows; i++ {
		for j := 1; j <= g.cols; j++ {
			x, y := cellOrigin(i, j, g.rows)
			switch c := g.At(i, j).(type) {
			case Drift:
				cmds = append(cmds, square(x, y)...)
				style := LabelDefault
				if c.Highlighted {
					style = LabelEmphasis
				}
				cmds = append(cmds, Label{X: x + 0.5, Y: y + 0.5, Content: c.Label, Style: style})
			case Code:
				ops, ok := tileCommands(c, x, y)
				if !ok {
					return nil, &CellError{Row: i, Col: j, Cell: c}
				}
				cmds = append(cmds, ops...)
			default:
				return nil, &CellError{Row: i, Col: j, Cell: c}
			}
		}
	}
	return cmds, nil
}

// square is the two-part box shared by Blank and Drift tiles,
// fill first, then outline.
func square(x, y float64) []Command {
	return []Command{
		FillRect{X0: x, Y0: y, X1: x + 1, Y1: y + 1, Style: FillHighlight},
		StrokeRect{X0: x, Y0: y, X1: x + 1, Y1: y + 1, Style: StrokeHighlight},
	}
}

func vpipe(x, y float64) Segment {
	return Segment{X0: x + 0.5, Y0: y, X1: x + 0.5, Y1: y + 1, Style: Line}
}

func hpipe(x, y float64) Segment {
	return Segment{X0: x, Y0: y + 0.5, X1: x + 1, Y1: y + 0.5, Style: Line}
}

func tileCommands(c Code, x, y float64) ([]Command, bool) {
	cx, cy := x+0.5, y+0.5
	switch c {
	case Blank:
		return square(x, y), true
	case Plus:
		return []Command{vpipe(x, y), hpipe(x, y)}, true
	case Vertical:
		return []Command{vpipe(x, y)}, true
	case Horizontal:
		return []Command{hpipe(x, y)}, true
	case ElbowSE:
		// right edge midpoint to bottom edge midpoint,
		// bowing through the cell center
		return []Command{Curve{
			P0:    Point{X: x + 1, Y: cy},
			P1:    Point{X: cx, Y: cy},
			P2:    Point{X: cx, Y: cy},
			P3:    Point{X: cx, Y: y},
			Style: Line,
		}}, true
	case ElbowNW:
		// left edge midpoint to top edge midpoint
		return []Command{Curve{
			P0:    Point{X: x, Y: cy},
			P1:    Point{X: cx, Y: cy},
			P2:    Point{X: cx, Y: cy},
			P3:    Point{X: cx, Y: y + 1},
			Style: Line,
		}}, true
	case Dot, Star:
		return []Command{Marker{X: cx, Y: cy, Style: Line}}, true
	case Empty, Special:
		return nil, true
	}
	return nil, false
}
