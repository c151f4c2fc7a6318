// Models bumpless pipedream diagrams and renders them into
// an abstract list of drawing commands, which can then be
// consumed by painting drivers.
// See for example bpdraw/bpdtikz, bpdraw/bpdraster or bpdraw/bpdpdf.
package bpdgrid

// Cell is the tile occupying one grid square.
// It is either a plain Code or a Drift.
type Cell interface {
	cell()
}

// Code enumerates the field-free tile types.
type Code uint8

const (
	Blank      Code = iota // empty square, drawn as a filled box
	Plus                   // crossing of a vertical and a horizontal pipe
	ElbowSE                // quarter turn joining the right and bottom edges
	ElbowNW                // quarter turn joining the left and top edges
	Vertical               // vertical pipe
	Horizontal             // horizontal pipe
	Dot                    // center marker
	Star                   // center marker, currently drawn like Dot
	Empty                  // reserved, draws nothing
	Special                // reserved, draws nothing
)

func (Code) cell() {}

func (c Code) String() string {
	switch c {
	case Blank:
		return "Blank"
	case Plus:
		return "Plus"
	case ElbowSE:
		return "ElbowSE"
	case ElbowNW:
		return "ElbowNW"
	case Vertical:
		return "Vertical"
	case Horizontal:
		return "Horizontal"
	case Dot:
		return "Dot"
	case Star:
		return "Star"
	case Empty:
		return "Empty"
	case Special:
		return "Special"
	default:
		return "<unknown Code>"
	}
}

// Drift is a distinguished tile drawn as a filled box with a
// centered label. Highlighted drifts use the emphasis text color.
type Drift struct {
	Label       string
	Highlighted bool
}

func (Drift) cell() {}
