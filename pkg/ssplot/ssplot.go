// Package ssplot draws secondary structure as a strip of coloured cells,
// one row per chain or frame, with a caption to the left of each row.
package ssplot

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"io"
	"sync"

	"github.com/golang/freetype"
	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/math/fixed"

	"github.com/andrew-torda/ssdssp/pdb/cmmn"
)

type Error string

func (e Error) Error() string { return string(e) }

const ErrNoRows = Error("nothing to plot")

// Row is one line of the plot.
type Row struct {
	Caption string
	SS      []cmmn.SSType
}

// Options control the size of things, in pixels except for the font.
type Options struct {
	CellW, CellH int
	Gap          int     // between rows and around the edge
	FontSize     float64 // points
	DPI          float64
}

// DefaultOptions are fine for a few hundred residues.
func DefaultOptions() Options {
	return Options{CellW: 4, CellH: 16, Gap: 4, FontSize: 11, DPI: 72}
}

var (
	Background = color.RGBA{255, 255, 255, 255}
	Ink        = color.RGBA{0, 0, 0, 255}
)

var ssColours = [cmmn.NSSType]color.RGBA{
	cmmn.Coil:   {220, 220, 220, 255},
	cmmn.Turn:   {70, 130, 220, 255},
	cmmn.Bend:   {120, 190, 120, 255},
	cmmn.Bridge: {180, 140, 60, 255},
	cmmn.Strand: {240, 200, 0, 255},
	cmmn.Helix:  {220, 30, 30, 255},
	cmmn.Helix3: {230, 80, 200, 255},
	cmmn.Helix5: {250, 140, 40, 255},
}

// Colour is the fill for a label.
func Colour(s cmmn.SSType) color.RGBA {
	if s >= cmmn.NSSType {
		return Ink
	}
	return ssColours[s]
}

var (
	fontOnce sync.Once
	goFont   *truetype.Font
	fontErr  error
)

func loadFont() (*truetype.Font, error) {
	fontOnce.Do(func() {
		goFont, fontErr = freetype.ParseFont(goregular.TTF)
	})
	return goFont, fontErr
}

// captionWidth is the widest caption in pixels.
func captionWidth(f *truetype.Font, opts Options, rows []Row) int {
	face := truetype.NewFace(f, &truetype.Options{Size: opts.FontSize, DPI: opts.DPI})
	defer face.Close()
	var w fixed.Int26_6
	for _, r := range rows {
		if x := font.MeasureString(face, r.Caption); x > w {
			w = x
		}
	}
	return w.Ceil()
}

// Draw makes the picture.
func Draw(rows []Row, opts Options) (*image.RGBA, error) {
	if len(rows) == 0 {
		return nil, ErrNoRows
	}
	f, err := loadFont()
	if err != nil {
		return nil, fmt.Errorf("font: %w", err)
	}
	nmax := 0
	for _, r := range rows {
		nmax = max(nmax, len(r.SS))
	}
	capW := captionWidth(f, opts, rows)
	left := opts.Gap + capW + opts.Gap
	width := left + nmax*opts.CellW + opts.Gap
	height := opts.Gap + len(rows)*(opts.CellH+opts.Gap)
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	draw.Draw(img, img.Bounds(), image.NewUniform(Background), image.Point{}, draw.Src)

	c := freetype.NewContext()
	c.SetDPI(opts.DPI)
	c.SetFont(f)
	c.SetFontSize(opts.FontSize)
	c.SetClip(img.Bounds())
	c.SetDst(img)
	c.SetSrc(image.NewUniform(Ink))
	ascent := int(c.PointToFixed(opts.FontSize) >> 6)

	for irow, r := range rows {
		top := opts.Gap + irow*(opts.CellH+opts.Gap)
		base := top + (opts.CellH+ascent)/2
		if _, err := c.DrawString(r.Caption, freetype.Pt(opts.Gap, base)); err != nil {
			return nil, fmt.Errorf("row %d caption: %w", irow, err)
		}
		for i, s := range r.SS {
			x0 := left + i*opts.CellW
			cell := image.Rect(x0, top, x0+opts.CellW, top+opts.CellH)
			draw.Draw(img, cell, image.NewUniform(Colour(s)), image.Point{}, draw.Src)
		}
	}
	return img, nil
}

// CellAt says where the middle of a cell is, for anyone wanting to
// look at the picture.
func CellAt(img *image.RGBA, rows []Row, opts Options, irow, ires int) image.Point {
	nmax := 0
	for _, r := range rows {
		nmax = max(nmax, len(r.SS))
	}
	left := img.Bounds().Dx() - opts.Gap - nmax*opts.CellW
	top := opts.Gap + irow*(opts.CellH+opts.Gap)
	return image.Pt(left+ires*opts.CellW+opts.CellW/2, top+opts.CellH/2)
}

// WritePNG draws the rows and encodes them.
func WritePNG(w io.Writer, rows []Row, opts Options) error {
	img, err := Draw(rows, opts)
	if err != nil {
		return err
	}
	return png.Encode(w, img)
}
