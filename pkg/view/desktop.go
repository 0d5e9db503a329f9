package view

import (
	"slices"

	lkerr "github.com/matzehuels/layoutkit/pkg/errors"
)

// DesktopView is an element of the [Desktop] toolkit. It has no native
// margin attributes; see [Resolve].
type DesktopView struct {
	node
	parent   *DesktopView
	children []*DesktopView
}

// NewDesktopView creates a detached desktop element. An empty id is
// replaced by a random UUID.
func NewDesktopView(id string) *DesktopView {
	return &DesktopView{node: newNode(id, Desktop)}
}

func (v *DesktopView) Parent() Element {
	if v.parent == nil {
		return nil
	}
	return v.parent
}

func (v *DesktopView) Subviews() []Element {
	out := make([]Element, len(v.children))
	for i, c := range v.children {
		out[i] = c
	}
	return out
}

// AddSubview attaches children to v. See [TouchView.AddSubview].
func (v *DesktopView) AddSubview(children ...*DesktopView) error {
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

func (v *DesktopView) RemoveFromSuperview() {
	if v.parent == nil {
		return
	}
	p := v.parent
	p.children = slices.DeleteFunc(p.children, func(c *DesktopView) bool { return c == v })
	v.parent = nil
}

// New creates a detached element of the given toolkit. It is the
// config-time selector used by blueprints; hierarchies are then assembled
// with [Attach].
func New(t Toolkit, id string) (Element, error) {
	switch t {
	case Touch:
		return NewTouchView(id), nil
	case Desktop:
		return NewDesktopView(id), nil
	}
	return nil, lkerr.New(lkerr.ErrCodeUnsupported, "unknown toolkit %v", t)
}

// NewForAutoLayout is like [New] but returns an element that has already
// opted into constraint-based layout.
func NewForAutoLayout(t Toolkit, id string) (Element, error) {
	e, err := New(t, id)
	if err != nil {
		return nil, err
	}
	e.SetConstraintLayoutEnabled(true)
	return e, nil
}

// Attach adds child under parent when both were created by [New] with the
// same toolkit.
func Attach(parent, child Element) error {
	switch p := parent.(type) {
	case *TouchView:
		c, ok := child.(*TouchView)
		if !ok {
			return lkerr.New(lkerr.ErrCodeUnsupported, "cannot attach %s element %s to touch element %s", child.Toolkit(), child.ID(), p.ID())
		}
		return p.AddSubview(c)
	case *DesktopView:
		c, ok := child.(*DesktopView)
		if !ok {
			return lkerr.New(lkerr.ErrCodeUnsupported, "cannot attach %s element %s to desktop element %s", child.Toolkit(), child.ID(), p.ID())
		}
		return p.AddSubview(c)
	}
	return lkerr.New(lkerr.ErrCodeUnsupported, "element %s cannot hold subviews", parent.ID())
}
