package core

import "github.com/pkg/errors"

// Builder assembles a Grid one cell at a time. Cells are inserted in
// reverse row-major order: the bottom-right cell first, each row filled
// right to left, rows stacked upwards. Every row is opened with
// InsertLeftNewRow and continued with InsertLeft.
//
// Any other order is a BuilderInconsistency. A Builder is single use.
type Builder[V any] struct {
	w, h    int
	data    []V
	n       int
	rowFill int
	built   bool
}

// NewBuilder returns an empty builder for a w by h grid.
func NewBuilder[V any](w, h int) (*Builder[V], error) {
	if w <= 0 || h <= 0 {
		return nil, errors.Wrapf(ErrConfigOutOfRange, "[NewBuilder] grid size %dx%d", w, h)
	}
	return &Builder[V]{w: w, h: h, data: make([]V, w*h)}, nil
}

// Len returns the number of cells inserted so far.
func (b *Builder[V]) Len() int { return b.n }

// InsertLeftNewRow seals the row under construction and opens a new one
// above it holding v as its rightmost cell. On an empty builder it seeds the
// first cell.
func (b *Builder[V]) InsertLeftNewRow(v V) error {
	if b.built {
		return errors.Wrap(ErrBuilderInconsistency, "[InsertLeftNewRow] builder already consumed")
	}
	if b.n > 0 && b.rowFill != b.w {
		return errors.Wrapf(ErrBuilderInconsistency,
			"[InsertLeftNewRow] cannot seal row holding %d of %d cells", b.rowFill, b.w)
	}
	if b.n == len(b.data) {
		return errors.Wrapf(ErrBuilderInconsistency, "[InsertLeftNewRow] grid already holds %d rows", b.h)
	}
	b.put(v)
	b.rowFill = 1
	return nil
}

// InsertLeft places v to the left of the current row's leftmost cell.
func (b *Builder[V]) InsertLeft(v V) error {
	if b.built {
		return errors.Wrap(ErrBuilderInconsistency, "[InsertLeft] builder already consumed")
	}
	if b.n == 0 {
		return errors.Wrap(ErrBuilderInconsistency, "[InsertLeft] no row has been opened")
	}
	if b.rowFill == b.w {
		return errors.Wrapf(ErrBuilderInconsistency, "[InsertLeft] row already holds %d cells", b.w)
	}
	b.put(v)
	b.rowFill++
	return nil
}

func (b *Builder[V]) put(v V) {
	b.data[len(b.data)-1-b.n] = v
	b.n++
}

// Build returns the finished grid. It fails unless exactly width*height
// cells were inserted.
func (b *Builder[V]) Build() (*Grid[V], error) {
	if b.built {
		return nil, errors.Wrap(ErrBuilderInconsistency, "[Build] builder already consumed")
	}
	if b.n != len(b.data) {
		return nil, errors.Wrapf(ErrBuilderInconsistency,
			"[Build] %d of %d cells inserted", b.n, len(b.data))
	}
	b.built = true
	return newGrid(b.w, b.h, b.data), nil
}

// FromRowMajor builds a w by h grid from values listed in row-major order,
// replaying the builder's reverse insertion order. A value opens a new row
// whenever (index+1) % w == 0.
func FromRowMajor[V any](w, h int, values []V) (*Grid[V], error) {
	b, err := NewBuilder[V](w, h)
	if err != nil {
		return nil, err
	}
	for i := len(values) - 1; i >= 0; i-- {
		if (i+1)%w == 0 {
			err = b.InsertLeftNewRow(values[i])
		} else {
			err = b.InsertLeft(values[i])
		}
		if err != nil {
			return nil, errors.Wrapf(err, "[FromRowMajor] value %d", i)
		}
	}
	return b.Build()
}
