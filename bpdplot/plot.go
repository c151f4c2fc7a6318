// Selects how a pipedream diagram is realized: handed to an
// injected interactive plotting capability, or serialized to a
// TikZ picture for a typeset document.
package bpdplot

import (
	"fmt"
	"image"
	"os"

	"github.com/pseudoeffective/bpdraw/bpdgrid"
	"github.com/pseudoeffective/bpdraw/bpdtikz"
)

// Mode selects the rendering target.
type Mode uint8

const (
	Interactive Mode = iota // hand the grid to the injected Plotter
	Vector                  // produce a TikZ picture
)

func (m Mode) String() string {
	switch m {
	case Interactive:
		return "Interactive"
	case Vector:
		return "Vector"
	default:
		return "<unknown Mode>"
	}
}

// Plotter is the capability used for interactive display.
// Implementations draw the whole diagram onto some surface and
// return the result; see bpdraster.Surface for an in-memory one.
type Plotter interface {
	Plot(g *bpdgrid.Grid, width, height int, showGrid, visible bool) (image.Image, error)
}

// Options carries the per-call settings shared by both targets.
type Options struct {
	OutputPath  string  // Vector: also write the picture to this file
	ImageWidth  int     // Interactive: canvas width in pixels
	ImageHeight int     // Interactive: canvas height in pixels
	Unit        float64 // Vector: cell size in cm
	ShowGrid    bool    // draw light guide lines between cells
	Visible     bool    // Interactive: show the surface on screen
}

// DefaultOptions renders a 560px canvas or 0.7cm cells, with guide lines.
var DefaultOptions = Options{
	ImageWidth:  560,
	ImageHeight: 560,
	Unit:        0.7,
	ShowGrid:    true,
}

// Artifact is the result of a Draw call. Exactly one field is set,
// matching the requested mode.
type Artifact struct {
	Text  string      // Vector: the tikzpicture source
	Image image.Image // Interactive: the plotted surface
}

// ModeError reports an unrecognized rendering mode.
type ModeError struct {
	Mode Mode
}

func (e *ModeError) Error() string {
	return fmt.Sprintf("bpdplot: unknown mode %d, valid modes are Interactive and Vector", uint8(e.Mode))
}

// CapabilityError reports that interactive mode was requested on a
// dispatcher constructed without a plotting capability.
type CapabilityError struct{}

func (e *CapabilityError) Error() string {
	return "bpdplot: interactive mode needs a Plotter, construct the Dispatcher with one (for example bpdraster.Surface)"
}

// Dispatcher routes Draw calls to the configured target.
// It is safe for concurrent use.
type Dispatcher struct {
	plotter Plotter // nil disables interactive mode
}

// New returns a Dispatcher. A nil plotter is allowed and leaves
// only Vector mode available.
func New(plotter Plotter) *Dispatcher {
	return &Dispatcher{plotter: plotter}
}

// Draw renders the grid on the target selected by mode.
func (d *Dispatcher) Draw(g *bpdgrid.Grid, mode Mode, opts Options) (*Artifact, error) {
	switch mode {
	case Interactive:
		if d.plotter == nil {
			return nil, &CapabilityError{}
		}
		img, err := d.plotter.Plot(g, opts.ImageWidth, opts.ImageHeight, opts.ShowGrid, opts.Visible)
		if err != nil {
			return nil, err
		}
		return &Artifact{Image: img}, nil

	case Vector:
		cmds, err := bpdgrid.Render(g)
		if err != nil {
			return nil, err
		}
		topts := bpdtikz.Options{Unit: opts.Unit, ShowGrid: opts.ShowGrid}
		text, err := bpdtikz.Serialize(cmds, g.Rows(), g.Cols(), topts)
		if err != nil {
			return nil, err
		}
		if opts.OutputPath != "" {
			if err := os.WriteFile(opts.OutputPath, []byte(text), 0o644); err != nil {
				return nil, fmt.Errorf("bpdplot: writing %s: %w", opts.OutputPath, err)
			}
		}
		return &Artifact{Text: text}, nil

	default:
		return nil, &ModeError{Mode: mode}
	}
}
