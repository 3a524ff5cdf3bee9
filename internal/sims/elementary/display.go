package elementary

import "image/color"

var palette = []color.RGBA{
	{R: 0, G: 0, B: 0, A: 255},
	{R: 255, G: 255, B: 255, A: 255},
}

var glyphs = []string{" ", "*"}

// Palette exposes the two-color palette indexed by cell value.
func (e *Elementary) Palette() []color.RGBA { return palette }

// Glyphs returns the text glyph for each cell value. The automaton has a
// single style, so emoji is ignored.
func (e *Elementary) Glyphs(emoji bool) []string { return glyphs }
