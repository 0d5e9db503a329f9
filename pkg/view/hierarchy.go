package view

import (
	lkerr "github.com/matzehuels/layoutkit/pkg/errors"
)

// Superview returns the parent of e, or a NO_SUPERVIEW error for a root.
func Superview(e Element) (Element, error) {
	if IsNil(e) {
		return nil, lkerr.New(lkerr.ErrCodeInvalidInput, "element is nil")
	}
	p := e.Parent()
	if p == nil {
		return nil, lkerr.New(lkerr.ErrCodeNoSuperview, "element %s has no superview", e.ID())
	}
	return p, nil
}

// CommonAncestor returns the nearest element present in the parent chains
// of both a and b. Each chain starts at the element itself, so when one
// element is the other's parent the parent is returned.
//
// Relating an element to itself is always an error, as is relating elements
// of disjoint hierarchies; both fail with NO_COMMON_ANCESTOR.
func CommonAncestor(a, b Element) (Element, error) {
	if IsNil(a) || IsNil(b) {
		return nil, lkerr.New(lkerr.ErrCodeInvalidInput, "element is nil")
	}
	if a.ID() == b.ID() {
		return nil, lkerr.New(lkerr.ErrCodeNoCommonAncestor, "cannot relate element %s to itself", a.ID())
	}

	chain := map[string]struct{}{a.ID(): {}}
	for p := range Ancestors(a) {
		chain[p.ID()] = struct{}{}
	}

	if _, ok := chain[b.ID()]; ok {
		return b, nil
	}
	for p := range Ancestors(b) {
		if _, ok := chain[p.ID()]; ok {
			return p, nil
		}
	}
	return nil, lkerr.New(lkerr.ErrCodeNoCommonAncestor, "elements %s and %s are not in the same hierarchy", a.ID(), b.ID())
}

// CommonAncestorOf returns the common ancestor of the first two elements
// and checks that every remaining element descends from it. No element may
// be the ancestor itself, and ids must be distinct.
func CommonAncestorOf(elements []Element) (Element, error) {
	if len(elements) < 2 {
		return nil, lkerr.New(lkerr.ErrCodeInsufficientElements, "need at least 2 elements, got %d", len(elements))
	}

	seen := make(map[string]struct{}, len(elements))
	for _, e := range elements {
		if IsNil(e) {
			return nil, lkerr.New(lkerr.ErrCodeInvalidInput, "element is nil")
		}
		if _, dup := seen[e.ID()]; dup {
			return nil, lkerr.New(lkerr.ErrCodeInvalidInput, "element %s appears more than once", e.ID())
		}
		seen[e.ID()] = struct{}{}
	}

	anc, err := CommonAncestor(elements[0], elements[1])
	if err != nil {
		return nil, err
	}
	for _, e := range elements {
		if e.ID() == anc.ID() {
			return nil, lkerr.New(lkerr.ErrCodeNoCommonAncestor, "element %s contains the other elements", e.ID())
		}
	}
	for _, e := range elements[2:] {
		if !IsDescendant(e, anc) {
			return nil, lkerr.New(lkerr.ErrCodeNoCommonAncestor, "element %s does not descend from %s", e.ID(), anc.ID())
		}
	}
	return anc, nil
}

// Prepare opts e into constraint-based layout, disabling the host's legacy
// frame translation. It is idempotent: the flag is flipped at most once and
// Prepare reports whether it changed anything.
func Prepare(e Element) bool {
	if e.ConstraintLayoutEnabled() {
		return false
	}
	e.SetConstraintLayoutEnabled(true)
	return true
}

// Host returns the element that owns an item: the element itself, or the
// owner of a layout guide. It returns nil for unknown item types.
func Host(it Item) Element {
	switch v := it.(type) {
	case Element:
		return v
	case *LayoutGuide:
		return v.owner
	}
	return nil
}
