// 14 Oct 2026
// Draw a picture of the distances between cysteine sulfurs. Each pair
// of cysteines gets a square, darker when they are closer. Pairs we
// called disulfides get a red border. It is for looking at structures
// where the bonding is not obvious.

package cysmap

import (
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"os"

	"github.com/andrew-torda/pdbprep/pdb/geom"
	"github.com/andrew-torda/pdbprep/pkg/disulfide"
	"github.com/golang/freetype/raster"
	"golang.org/x/image/math/fixed"
)

const (
	MaxDist     = 10.0 // distances beyond this are all white
	DefaultCell = 12   // pixels per square
)

var (
	bondColor = color.RGBA{R: 255, A: 255}
	diagColor = color.RGBA{R: 200, G: 200, B: 255, A: 255}
)

// Shade turns a distance into a grey level.
func Shade(d float32) color.RGBA {
	if d > MaxDist {
		d = MaxDist
	}
	if d < 0 {
		d = 0
	}
	g := uint8(255 * d / MaxDist)
	return color.RGBA{R: g, G: g, B: g, A: 255}
}

// addRect adds a closed rectangle path to the rasterizer.
func addRect(r *raster.Rasterizer, x0, y0, x1, y1 int) {
	r.Start(fixed.P(x0, y0))
	r.Add1(fixed.P(x1, y0))
	r.Add1(fixed.P(x1, y1))
	r.Add1(fixed.P(x0, y1))
	r.Add1(fixed.P(x0, y0))
}

// Draw makes the picture. Row i, column j is the square for cysteines
// tbl.Ndx[i] and tbl.Ndx[j].
func Draw(tbl *geom.CysTable, pairs []disulfide.Pair, cell int) *image.RGBA {
	if cell < 1 {
		cell = DefaultCell
	}
	n := tbl.Len()
	w := n * cell
	if w == 0 {
		w = 1
	}
	img := image.NewRGBA(image.Rect(0, 0, w, w))
	draw.Draw(img, img.Bounds(), image.White, image.Point{}, draw.Src)
	rstr := raster.NewRasterizer(w, w)
	pntr := raster.NewRGBAPainter(img)

	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			rstr.Clear()
			addRect(rstr, j*cell, i*cell, (j+1)*cell, (i+1)*cell)
			if i == j {
				pntr.SetColor(diagColor)
			} else {
				pntr.SetColor(Shade(tbl.Dist.Mat[i][j]))
			}
			rstr.Rasterize(pntr)
		}
	}

	pos := make(map[int]int, n) // residue index to row
	for i, ndx := range tbl.Ndx {
		pos[ndx] = i
	}
	edge := cell / 8
	if edge < 1 {
		edge = 1
	}
	pntr.SetColor(bondColor)
	for _, p := range pairs {
		i, ok1 := pos[p.I]
		j, ok2 := pos[p.J]
		if !ok1 || !ok2 {
			continue
		}
		for _, c := range [][2]int{{i, j}, {j, i}} {
			x0, y0 := c[1]*cell, c[0]*cell
			rstr.Clear()
			addRect(rstr, x0, y0, x0+cell, y0+cell)
			addRect(rstr, x0+edge, y0+edge, x0+cell-edge, y0+cell-edge)
			rstr.Rasterize(pntr)
		}
	}
	return img
}

// WritePNG draws the picture and writes it to fname.
func WritePNG(fname string, tbl *geom.CysTable, pairs []disulfide.Pair, cell int) error {
	fp, err := os.Create(fname)
	if err != nil {
		return err
	}
	if err := png.Encode(fp, Draw(tbl, pairs, cell)); err != nil {
		fp.Close()
		return err
	}
	return fp.Close()
}
