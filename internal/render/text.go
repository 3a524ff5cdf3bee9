package render

import (
	"bufio"
	"io"

	"github.com/pkg/errors"

	"gridca/internal/core"
)

// Glyphed is implemented by sims that can be drawn as text.
type Glyphed interface {
	core.Sim
	Glyphs(emoji bool) []string
}

// Text writes the current generation of sim row by row, one glyph per cell
// and a newline after every row. Values without a glyph render as "?".
func Text(w io.Writer, sim Glyphed, emoji bool) error {
	glyphs := sim.Glyphs(emoji)
	width := sim.Size().W
	bw := bufio.NewWriter(w)
	for i, c := range sim.Cells() {
		g := "?"
		if int(c) < len(glyphs) {
			g = glyphs[c]
		}
		bw.WriteString(g)
		if (i+1)%width == 0 {
			bw.WriteByte('\n')
		}
	}
	if err := bw.Flush(); err != nil {
		return errors.Wrap(err, "[render.Text] flush")
	}
	return nil
}
