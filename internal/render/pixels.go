package render

import (
	"image"
	"image/color"
	"image/png"
	"io"

	"github.com/pkg/errors"

	"gridca/internal/core"
)

// Paletted is implemented by sims that map cell values to colors.
type Paletted interface {
	core.Sim
	Palette() []color.RGBA
}

// fillPaletteRGBA converts cell values into RGBA pixels using a palette. When
// the palette is empty the buffer is cleared to transparent black.
func fillPaletteRGBA(buf []byte, cells []uint8, palette []color.RGBA) {
	if len(palette) == 0 {
		clear(buf[:len(cells)*4])
		return
	}

	last := len(palette) - 1
	for i, c := range cells {
		idx := int(c)
		if idx > last {
			idx = last
		}
		base := i * 4
		col := palette[idx]
		buf[base+0] = col.R
		buf[base+1] = col.G
		buf[base+2] = col.B
		buf[base+3] = col.A
	}
}

// Image renders the current generation of sim, one pixel per cell scaled by
// scale in both directions.
func Image(sim Paletted, scale int) *image.RGBA {
	if scale <= 0 {
		scale = 1
	}
	size := sim.Size()
	cells := sim.Cells()
	src := image.NewRGBA(image.Rect(0, 0, size.W, size.H))
	fillPaletteRGBA(src.Pix, cells, sim.Palette())
	if scale == 1 {
		return src
	}
	dst := image.NewRGBA(image.Rect(0, 0, size.W*scale, size.H*scale))
	for y := 0; y < size.H*scale; y++ {
		for x := 0; x < size.W*scale; x++ {
			dst.SetRGBA(x, y, src.RGBAAt(x/scale, y/scale))
		}
	}
	return dst
}

// WritePNG encodes the current generation of sim as a PNG.
func WritePNG(w io.Writer, sim Paletted, scale int) error {
	if err := png.Encode(w, Image(sim, scale)); err != nil {
		return errors.Wrap(err, "[WritePNG] encode")
	}
	return nil
}
