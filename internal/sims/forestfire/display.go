package forestfire

import "image/color"

var palette = []color.RGBA{
	Empty:  {R: 110, G: 78, B: 48, A: 255},
	Forest: {R: 40, G: 110, B: 55, A: 255},
	Fire:   {R: 255, G: 120, B: 30, A: 255},
	Burned: {R: 60, G: 60, B: 60, A: 255},
}

var (
	emojiGlyphs = []string{Empty: "🟫", Forest: "🌲", Fire: "🔥", Burned: "🔲"}
	asciiGlyphs = []string{Empty: ".", Forest: "T", Fire: "*", Burned: "#"}
)

// Palette exposes the color palette indexed by State.
func (w *World) Palette() []color.RGBA { return palette }

// Glyphs returns the text glyph for each State.
func (w *World) Glyphs(emoji bool) []string {
	if emoji {
		return emojiGlyphs
	}
	return asciiGlyphs
}
