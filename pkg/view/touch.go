package view

import (
	"slices"

	lkerr "github.com/matzehuels/layoutkit/pkg/errors"
)

// TouchView is an element of the [Touch] toolkit.
//
// The zero value is not usable; create views with [NewTouchView].
// TouchView is not safe for concurrent use.
type TouchView struct {
	node
	parent   *TouchView
	children []*TouchView
}

// NewTouchView creates a detached touch element. An empty id is replaced
// by a random UUID.
func NewTouchView(id string) *TouchView {
	return &TouchView{node: newNode(id, Touch)}
}

// Parent returns the superview, or nil for a root.
func (v *TouchView) Parent() Element {
	if v.parent == nil {
		return nil
	}
	return v.parent
}

// Subviews returns the children in insertion order.
func (v *TouchView) Subviews() []Element {
	out := make([]Element, len(v.children))
	for i, c := range v.children {
		out[i] = c
	}
	return out
}

// AddSubview attaches children to v, detaching each from any previous
// superview first. Adding v itself or one of its ancestors fails.
func (v *TouchView) AddSubview(children ...*TouchView) error {
	for _, c := range children {
		if c == nil {
			return lkerr.New(lkerr.ErrCodeInvalidInput, "cannot add nil subview to %s", v.id)
		}
		if c == v || IsDescendant(v, c) {
			return lkerr.New(lkerr.ErrCodeInvalidInput, "adding %s to %s would create a cycle", c.id, v.id)
		}
	}
	for _, c := range children {
		c.RemoveFromSuperview()
		c.parent = v
		v.children = append(v.children, c)
	}
	return nil
}

// RemoveFromSuperview detaches v from its parent. It is a no-op for roots.
func (v *TouchView) RemoveFromSuperview() {
	if v.parent == nil {
		return
	}
	p := v.parent
	p.children = slices.DeleteFunc(p.children, func(c *TouchView) bool { return c == v })
	v.parent = nil
}
