// Command bpdview displays a bumpless pipedream diagram in a
// desktop window, or converts it to a TikZ picture, a PNG or a PDF.
//
// The input file uses the compact text form of bpdgrid.Parse,
// one rune per tile and one line per row:
//
//	bpdview diagram.txt            # open a window
//	bpdview -tikz out.tex diagram.txt
//	bpdview -png out.png diagram.txt
//	bpdview -pdf out.pdf diagram.txt
package main

import (
	"flag"
	"image"
	"image/png"
	"log"
	"os"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/pseudoeffective/bpdraw/bpdgrid"
	"github.com/pseudoeffective/bpdraw/bpdpdf"
	"github.com/pseudoeffective/bpdraw/bpdplot"
	"github.com/pseudoeffective/bpdraw/bpdraster"
)

var (
	tikzOut = flag.String("tikz", "", "write a TikZ picture to this file and exit")
	pngOut  = flag.String("png", "", "write a PNG image to this file and exit")
	pdfOut  = flag.String("pdf", "", "write a PDF document to this file and exit")
	size    = flag.Int("size", 560, "canvas size in pixels")
	unit    = flag.Float64("unit", 0.7, "TikZ cell size in cm")
	noGrid  = flag.Bool("nogrid", false, "hide the cell guide lines")
)

func main() {
	log.SetFlags(0)
	log.SetPrefix("bpdview: ")
	flag.Parse()
	if flag.NArg() != 1 {
		log.Fatal("usage: bpdview [flags] diagram.txt")
	}

	data, err := os.ReadFile(flag.Arg(0))
	if err != nil {
		log.Fatal(err)
	}
	g, err := bpdgrid.Parse(string(data))
	if err != nil {
		log.Fatal(err)
	}

	disp := bpdplot.New(bpdraster.Surface{})
	opts := bpdplot.DefaultOptions
	opts.ImageWidth, opts.ImageHeight = *size, *size
	opts.Unit = *unit
	opts.ShowGrid = !*noGrid

	switch {
	case *tikzOut != "":
		opts.OutputPath = *tikzOut
		if _, err := disp.Draw(g, bpdplot.Vector, opts); err != nil {
			log.Fatal(err)
		}
	case *pngOut != "":
		art, err := disp.Draw(g, bpdplot.Interactive, opts)
		if err != nil {
			log.Fatal(err)
		}
		if err := writePNG(*pngOut, art.Image); err != nil {
			log.Fatal(err)
		}
	case *pdfOut != "":
		if err := bpdpdf.RenderGridToPDF(g, *pdfOut); err != nil {
			log.Fatal(err)
		}
	default:
		opts.Visible = true
		art, err := disp.Draw(g, bpdplot.Interactive, opts)
		if err != nil {
			log.Fatal(err)
		}
		if err := runWindow(art.Image, *size); err != nil {
			log.Fatal(err)
		}
	}
}

func writePNG(path string, img image.Image) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := png.Encode(f, img); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

// runWindow opens a desktop window displaying the plotted image.
// It blocks until the window closes or Escape is pressed.
func runWindow(img image.Image, size int) error {
	ebiten.SetWindowTitle("bpdview")
	ebiten.SetWindowSize(size, size)
	return ebiten.RunGame(&viewer{img: ebiten.NewImageFromImage(img), size: size})
}

type viewer struct {
	img  *ebiten.Image
	size int
}

func (v *viewer) Update() error {
	if ebiten.IsKeyPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	return nil
}

func (v *viewer) Draw(screen *ebiten.Image) {
	screen.DrawImage(v.img, nil)
}

func (v *viewer) Layout(outsideWidth, outsideHeight int) (int, int) {
	return v.size, v.size
}
