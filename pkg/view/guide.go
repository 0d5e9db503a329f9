package view

import (
	"fmt"

	"github.com/matzehuels/layoutkit/pkg/attr"
	lkerr "github.com/matzehuels/layoutkit/pkg/errors"
)

// GuideKind selects which bar a [LayoutGuide] stands for.
type GuideKind int

const (
	TopGuide GuideKind = iota + 1
	BottomGuide
)

func (k GuideKind) String() string {
	switch k {
	case TopGuide:
		return "top"
	case BottomGuide:
		return "bottom"
	}
	return fmt.Sprintf("GuideKind(%d)", int(k))
}

// LayoutGuide is a pseudo-element marking the boundary of a bar (status
// bar, tool bar) in a container. It only exposes top and bottom edges.
// Guides exist on the [Touch] toolkit only.
type LayoutGuide struct {
	id    string
	kind  GuideKind
	owner Element
}

// NewLayoutGuide creates a guide owned by container.
func NewLayoutGuide(container Element, kind GuideKind) (*LayoutGuide, error) {
	if container == nil {
		return nil, lkerr.New(lkerr.ErrCodeInvalidInput, "layout guide needs a container")
	}
	if container.Toolkit() != Touch {
		return nil, lkerr.New(lkerr.ErrCodeUnsupported, "%s toolkit has no layout guides", container.Toolkit())
	}
	if kind != TopGuide && kind != BottomGuide {
		return nil, lkerr.New(lkerr.ErrCodeInvalidInput, "unknown guide kind %v", kind)
	}
	return &LayoutGuide{
		id:    container.ID() + "." + kind.String() + "LayoutGuide",
		kind:  kind,
		owner: container,
	}, nil
}

func (g *LayoutGuide) ID() string      { return g.id }
func (g *LayoutGuide) Kind() GuideKind { return g.kind }
func (g *LayoutGuide) Owner() Element  { return g.owner }

// Supports reports whether the guide exposes a; only top and bottom do.
func (g *LayoutGuide) Supports(a attr.Attribute) bool {
	return a == attr.Top || a == attr.Bottom
}

// Supports reports whether item can provide attribute a: elements defer to
// their toolkit, after margin rewriting on toolkits without margins.
func Supports(item Item, a attr.Attribute) bool {
	switch v := item.(type) {
	case *LayoutGuide:
		return v.Supports(a)
	case Element:
		resolved, _ := Resolve(v, a)
		return v.Toolkit().Supports(resolved)
	}
	return true
}
