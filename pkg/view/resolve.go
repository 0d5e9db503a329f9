package view

import "github.com/matzehuels/layoutkit/pkg/attr"

// Resolve maps an attribute onto what the item's toolkit understands.
//
// Desktop elements have no margin attributes, so a margin attribute becomes
// the plain edge or axis plus an offset taken from the element's margin
// insets: value(a) = value(resolved) + offset. Touch elements and guides
// return a unchanged with a zero offset.
func Resolve(item Item, a attr.Attribute) (attr.Attribute, float64) {
	e, ok := item.(Element)
	if !ok || e.Toolkit() != Desktop || !a.IsMargin() {
		return a, 0
	}

	in := e.MarginInsets()
	base := a.WithoutMargin()
	switch base {
	case attr.Left, attr.Leading:
		return base, in.Left
	case attr.Right, attr.Trailing:
		return base, -in.Right
	case attr.Top:
		return base, in.Top
	case attr.Bottom:
		return base, -in.Bottom
	case attr.CenterX:
		return base, (in.Left - in.Right) / 2
	case attr.CenterY:
		return base, (in.Top - in.Bottom) / 2
	}
	return base, 0
}
