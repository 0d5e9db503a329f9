package layout

import (
	"github.com/matzehuels/layoutkit/pkg/attr"
	"github.com/matzehuels/layoutkit/pkg/constraint"
	lkerr "github.com/matzehuels/layoutkit/pkg/errors"
	"github.com/matzehuels/layoutkit/pkg/view"
)

// The collection operations work on any ordered slice of elements. Every
// relative constraint references the first element, and a collection
// operation emits one group: either all of it or none.

// elements converts views to interface values, rejecting nil entries
// including typed nil pointers.
func elements[E view.Element](views []E) ([]view.Element, error) {
	out := make([]view.Element, len(views))
	for i, v := range views {
		if view.IsNil(v) {
			return nil, lkerr.New(lkerr.ErrCodeInvalidInput, "element %d is nil", i)
		}
		out[i] = v
	}
	return out, nil
}

// relateToFirst validates the collection and relates attribute a of every
// element after the first to the same attribute of the first.
func relateToFirst(els []view.Element, a attr.Attribute) (constraint.Group, error) {
	if _, err := view.CommonAncestorOf(els); err != nil {
		return nil, err
	}
	first := els[0]
	g := make(constraint.Group, 0, len(els)-1)
	for _, v := range els[1:] {
		g = append(g, relate(v, a, constraint.Equal, first, a, 1, 0))
	}
	return g, nil
}

// AlignToEdge aligns edge of every element with the same edge of the first.
// It needs at least two elements in one hierarchy.
func AlignToEdge[E view.Element](b *Builder, views []E, edge attr.Edge) (constraint.Group, error) {
	const op = "align-edges"
	if err := checkEdge(edge); err != nil {
		return nil, b.fail(op, err)
	}
	els, err := elements(views)
	if err != nil {
		return nil, b.fail(op, err)
	}
	g, err := relateToFirst(els, edge.Attribute())
	if err != nil {
		return nil, b.fail(op, err)
	}
	return b.emit(op, g)
}

// AlignToAxis aligns axis of every element with the same axis of the first.
func AlignToAxis[E view.Element](b *Builder, views []E, axis attr.Axis) (constraint.Group, error) {
	const op = "align-axes"
	if err := checkAxis(axis); err != nil {
		return nil, b.fail(op, err)
	}
	els, err := elements(views)
	if err != nil {
		return nil, b.fail(op, err)
	}
	g, err := relateToFirst(els, axis.Attribute())
	if err != nil {
		return nil, b.fail(op, err)
	}
	return b.emit(op, g)
}

// MatchDimensions makes dim of every element equal to dim of the first.
func MatchDimensions[E view.Element](b *Builder, views []E, dim attr.Dimension) (constraint.Group, error) {
	const op = "match-dimensions"
	if err := checkDimension(dim); err != nil {
		return nil, b.fail(op, err)
	}
	els, err := elements(views)
	if err != nil {
		return nil, b.fail(op, err)
	}
	g, err := relateToFirst(els, dim.Attribute())
	if err != nil {
		return nil, b.fail(op, err)
	}
	return b.emit(op, g)
}

// SetDimension fixes dim of every element to size. One element is enough.
func SetDimension[E view.Element](b *Builder, views []E, dim attr.Dimension, size float64) (constraint.Group, error) {
	const op = "set-dimension"
	els, err := elements(views)
	if err != nil {
		return nil, b.fail(op, err)
	}
	g, err := fixedSizes(els, size, dim)
	if err != nil {
		return nil, b.fail(op, err)
	}
	return b.emit(op, g)
}

// SetDimensions fixes width and height of every element. The group holds
// the widths of all elements followed by their heights.
func SetDimensions[E view.Element](b *Builder, views []E, width, height float64) (constraint.Group, error) {
	const op = "set-dimensions"
	els, err := elements(views)
	if err != nil {
		return nil, b.fail(op, err)
	}
	w, err := fixedSizes(els, width, attr.DimensionWidth)
	if err != nil {
		return nil, b.fail(op, err)
	}
	h, err := fixedSizes(els, height, attr.DimensionHeight)
	if err != nil {
		return nil, b.fail(op, err)
	}
	return b.emit(op, append(w, h...))
}

func fixedSizes(els []view.Element, size float64, dim attr.Dimension) (constraint.Group, error) {
	if len(els) == 0 {
		return nil, lkerr.New(lkerr.ErrCodeInsufficientElements, "need at least 1 element")
	}
	g := make(constraint.Group, 0, len(els))
	for _, v := range els {
		c, err := fixedSize(v, dim, size, constraint.Equal)
		if err != nil {
			return nil, err
		}
		g = append(g, c)
	}
	return g, nil
}
