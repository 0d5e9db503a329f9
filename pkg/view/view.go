package view

import (
	"fmt"
	"iter"
	"reflect"
	"strings"

	"github.com/matzehuels/layoutkit/pkg/attr"
)

// Item is anything a constraint can reference: an [Element] or a
// [LayoutGuide].
type Item interface {
	// ID returns a stable identity used for ancestor search and
	// deduplication. IDs are unique within one hierarchy.
	ID() string
}

// Element is the capability surface every host toolkit supplies for its
// visual nodes. The constraint factory depends only on this interface.
//
// Parent must return an untyped nil for a root element.
type Element interface {
	Item
	Parent() Element
	Toolkit() Toolkit
	ConstraintLayoutEnabled() bool
	SetConstraintLayoutEnabled(enabled bool)
	MarginInsets() attr.Insets
}

// Container is implemented by elements that can enumerate their children.
type Container interface {
	Element
	Subviews() []Element
}

// ContentPrioritizer is implemented by elements that carry content hugging
// and compression resistance priorities.
type ContentPrioritizer interface {
	Element
	SetContentHuggingPriority(o attr.Orientation, p float32)
	SetCompressionResistancePriority(o attr.Orientation, p float32)
	ContentHuggingPriority(o attr.Orientation) float32
	CompressionResistancePriority(o attr.Orientation) float32
}

// Toolkit identifies the host UI toolkit an element belongs to.
type Toolkit int

const (
	// Touch models a touch-first toolkit with native layout margins,
	// first-baseline support and layout guides. Elements default to 8pt
	// margins on every side.
	Touch Toolkit = iota + 1
	// Desktop models a desktop toolkit without margin attributes or first
	// baselines. Margin requests are rewritten to plain edges offset by the
	// element's margin insets, which default to zero.
	Desktop
)

func (t Toolkit) String() string {
	switch t {
	case Touch:
		return "touch"
	case Desktop:
		return "desktop"
	default:
		return fmt.Sprintf("Toolkit(%d)", int(t))
	}
}

// ParseToolkit accepts "touch" or "desktop". An empty string selects Touch.
func ParseToolkit(s string) (Toolkit, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "touch":
		return Touch, nil
	case "desktop":
		return Desktop, nil
	}
	return 0, fmt.Errorf("unknown toolkit %q (want touch or desktop)", s)
}

// Supports reports whether the toolkit's host engine natively understands a.
func (t Toolkit) Supports(a attr.Attribute) bool {
	if a == attr.None {
		return true
	}
	if t == Desktop {
		return !a.IsMargin() && a != attr.FirstBaseline
	}
	return a.Family() != attr.FamilyNone
}

// DefaultMargins returns the margin insets a new element starts with.
func (t Toolkit) DefaultMargins() attr.Insets {
	if t == Touch {
		return attr.Uniform(8)
	}
	return attr.Insets{}
}

// Default content priorities shared by both toolkits.
const (
	DefaultHuggingPriority     float32 = 250
	DefaultCompressionPriority float32 = 750
)

// IsNil reports whether it is nil or a nil pointer held in the interface,
// such as a (*TouchView)(nil) in a generic slice.
func IsNil(it Item) bool {
	if it == nil {
		return true
	}
	v := reflect.ValueOf(it)
	return v.Kind() == reflect.Pointer && v.IsNil()
}

// Ancestors yields the parent chain of e, nearest first, excluding e.
func Ancestors(e Element) iter.Seq[Element] {
	return func(yield func(Element) bool) {
		if IsNil(e) {
			return
		}
		for p := e.Parent(); p != nil; p = p.Parent() {
			if !yield(p) {
				return
			}
		}
	}
}

// Root returns the topmost ancestor of e, or e itself when it has no parent.
func Root(e Element) Element {
	root := e
	for p := range Ancestors(e) {
		root = p
	}
	return root
}

// IsDescendant reports whether anc appears in the parent chain of e.
// An element is not its own descendant.
func IsDescendant(e, anc Element) bool {
	for p := range Ancestors(e) {
		if p.ID() == anc.ID() {
			return true
		}
	}
	return false
}

// Walk visits root and every descendant reachable through [Container], in
// depth-first pre-order. Returning false from fn stops the walk.
func Walk(root Element, fn func(e Element, depth int) bool) {
	var visit func(e Element, depth int) bool
	visit = func(e Element, depth int) bool {
		if !fn(e, depth) {
			return false
		}
		c, ok := e.(Container)
		if !ok {
			return true
		}
		for _, child := range c.Subviews() {
			if !visit(child, depth+1) {
				return false
			}
		}
		return true
	}
	if root != nil {
		visit(root, 0)
	}
}
