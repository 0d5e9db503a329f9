package layout

import (
	"slices"

	"github.com/matzehuels/layoutkit/pkg/attr"
	"github.com/matzehuels/layoutkit/pkg/constraint"
	lkerr "github.com/matzehuels/layoutkit/pkg/errors"
	"github.com/matzehuels/layoutkit/pkg/view"
)

// Expr holds the right-hand side options of [Builder.ConstrainAttribute].
// Zero values mean Equal, a multiplier of 1, no offset, and the priority of
// the current scope.
type Expr struct {
	Relation   constraint.Relation
	Multiplier float64
	Constant   float64
	Priority   constraint.Priority
}

// relate builds first.a REL second.b * m + c. Margin attributes the item's
// toolkit lacks are rewritten to plain attributes and the margin inset is
// folded into the constant. The priority is left at zero so that emit can
// fill in the scope default.
func relate(first view.Element, a attr.Attribute, rel constraint.Relation, second view.Item, b attr.Attribute, m, c float64) *constraint.Constraint {
	if m == 0 {
		m = 1
	}
	ra, firstOffset := view.Resolve(first, a)
	rb, secondOffset := b, 0.0
	if second != nil {
		rb, secondOffset = view.Resolve(second, b)
	}
	out := constraint.New(first, ra, rel, second, rb, m, c+m*secondOffset-firstOffset)
	out.Priority = 0
	return out
}

// related checks that e and peer live in one hierarchy and are distinct.
func related(e view.Element, peer view.Item) error {
	if view.IsNil(e) {
		return lkerr.New(lkerr.ErrCodeInvalidInput, "element is nil")
	}
	if view.IsNil(peer) {
		return lkerr.New(lkerr.ErrCodeInvalidInput, "second item is nil")
	}
	host := view.Host(peer)
	if host == nil {
		return lkerr.New(lkerr.ErrCodeUnsupported, "%s is neither an element nor a layout guide", peer.ID())
	}
	if g, ok := peer.(*view.LayoutGuide); ok {
		if e.ID() == host.ID() || view.IsDescendant(e, host) {
			return nil
		}
		return lkerr.New(lkerr.ErrCodeNoCommonAncestor, "%s is not inside the owner of %s", e.ID(), g.ID())
	}
	_, err := view.CommonAncestor(e, host)
	return err
}

func checkEdge(e attr.Edge) error {
	if !e.Valid() {
		return lkerr.New(lkerr.ErrCodeInvalidInput, "%v is not an edge", e)
	}
	return nil
}

func checkAxis(a attr.Axis) error {
	if !a.Valid() {
		return lkerr.New(lkerr.ErrCodeInvalidInput, "%v is not an axis", a)
	}
	return nil
}

func checkDimension(d attr.Dimension) error {
	if !d.Valid() {
		return lkerr.New(lkerr.ErrCodeInvalidInput, "%v is not a dimension", d)
	}
	return nil
}

// =============================================================================
// Superview edges and margins
// =============================================================================

// pinToSuperview relates edge of e to attribute to of its superview. Insets
// and inequalities on far edges are flipped so that a positive inset always
// moves the edge inward.
func pinToSuperview(e view.Element, edge attr.Edge, to attr.Attribute, inset float64, rel constraint.Relation) (*constraint.Constraint, error) {
	if err := checkEdge(edge); err != nil {
		return nil, err
	}
	sv, err := view.Superview(e)
	if err != nil {
		return nil, err
	}
	if edge.Attribute().IsFar() {
		if inset != 0 {
			inset = -inset
		}
		rel = rel.Inverse()
	}
	return relate(e, edge.Attribute(), rel, sv, to, 1, inset), nil
}

// PinEdgeToSuperviewEdge pins an edge of e to the same edge of its
// superview, inset by inset. It fails with NO_SUPERVIEW for a root.
func (b *Builder) PinEdgeToSuperviewEdge(e view.Element, edge attr.Edge, inset float64, rel constraint.Relation) (*constraint.Constraint, error) {
	const op = "pin-edge-to-superview"
	c, err := pinToSuperview(e, edge, edge.Attribute(), inset, rel)
	if err != nil {
		return nil, b.fail(op, err)
	}
	return one(b.emit(op, constraint.Group{c}))
}

// superviewEdges lists top, leading, bottom and trailing minus the
// excluded edges. Excluding left also drops leading, and right drops
// trailing.
func superviewEdges(excluding []attr.Edge) []attr.Edge {
	skip := func(e attr.Edge) bool { return slices.Contains(excluding, e) }
	var out []attr.Edge
	if !skip(attr.EdgeTop) {
		out = append(out, attr.EdgeTop)
	}
	if !skip(attr.EdgeLeading) && !skip(attr.EdgeLeft) {
		out = append(out, attr.EdgeLeading)
	}
	if !skip(attr.EdgeBottom) {
		out = append(out, attr.EdgeBottom)
	}
	if !skip(attr.EdgeTrailing) && !skip(attr.EdgeRight) {
		out = append(out, attr.EdgeTrailing)
	}
	return out
}

// PinEdgesToSuperviewEdges pins up to four edges of e to its superview
// with the given insets, skipping the excluded edges.
func (b *Builder) PinEdgesToSuperviewEdges(e view.Element, insets attr.Insets, excluding ...attr.Edge) (constraint.Group, error) {
	const op = "pin-edges-to-superview"
	var g constraint.Group
	for _, edge := range superviewEdges(excluding) {
		c, err := pinToSuperview(e, edge, edge.Attribute(), insets.For(edge.Attribute()), constraint.Equal)
		if err != nil {
			return nil, b.fail(op, err)
		}
		g = append(g, c)
	}
	return b.emit(op, g)
}

// PinEdgeToSuperviewMargin pins an edge of e to the matching margin of its
// superview.
func (b *Builder) PinEdgeToSuperviewMargin(e view.Element, edge attr.Edge, rel constraint.Relation) (*constraint.Constraint, error) {
	const op = "pin-edge-to-margin"
	c, err := pinToSuperview(e, edge, edge.Margin().Attribute(), 0, rel)
	if err != nil {
		return nil, b.fail(op, err)
	}
	return one(b.emit(op, constraint.Group{c}))
}

// PinEdgesToSuperviewMargins pins up to four edges of e to the margins of
// its superview.
func (b *Builder) PinEdgesToSuperviewMargins(e view.Element, excluding ...attr.Edge) (constraint.Group, error) {
	const op = "pin-edges-to-margins"
	var g constraint.Group
	for _, edge := range superviewEdges(excluding) {
		c, err := pinToSuperview(e, edge, edge.Margin().Attribute(), 0, constraint.Equal)
		if err != nil {
			return nil, b.fail(op, err)
		}
		g = append(g, c)
	}
	return b.emit(op, g)
}

// =============================================================================
// Edges and axes between elements
// =============================================================================

// PinEdge pins edge of e to toEdge of peer with an offset. Unlike the
// superview forms, the offset is applied as given on every edge.
func (b *Builder) PinEdge(e view.Element, edge attr.Edge, toEdge attr.Edge, peer view.Element, offset float64, rel constraint.Relation) (*constraint.Constraint, error) {
	const op = "pin-edge"
	if err := checkEdge(edge); err != nil {
		return nil, b.fail(op, err)
	}
	if err := checkEdge(toEdge); err != nil {
		return nil, b.fail(op, err)
	}
	if err := related(e, peer); err != nil {
		return nil, b.fail(op, err)
	}
	return one(b.emit(op, constraint.Group{relate(e, edge.Attribute(), rel, peer, toEdge.Attribute(), 1, offset)}))
}

func alignToSuperview(e view.Element, axis attr.Axis, to attr.Attribute) (*constraint.Constraint, error) {
	if err := checkAxis(axis); err != nil {
		return nil, err
	}
	sv, err := view.Superview(e)
	if err != nil {
		return nil, err
	}
	return relate(e, axis.Attribute(), constraint.Equal, sv, to, 1, 0), nil
}

// AlignAxisToSuperviewAxis aligns an axis of e with the same axis of its
// superview.
func (b *Builder) AlignAxisToSuperviewAxis(e view.Element, axis attr.Axis) (*constraint.Constraint, error) {
	const op = "align-axis-to-superview"
	c, err := alignToSuperview(e, axis, axis.Attribute())
	if err != nil {
		return nil, b.fail(op, err)
	}
	return one(b.emit(op, constraint.Group{c}))
}

// AlignAxisToSuperviewMarginAxis aligns a center axis of e with the same
// axis of its superview's margins. Baselines have no margin variant.
func (b *Builder) AlignAxisToSuperviewMarginAxis(e view.Element, axis attr.Axis) (*constraint.Constraint, error) {
	const op = "align-axis-to-margin-axis"
	m := axis.MarginAxis()
	if m.Attribute() == attr.None {
		return nil, b.fail(op, lkerr.New(lkerr.ErrCodeInvalidInput, "%v has no margin axis", axis))
	}
	c, err := alignToSuperview(e, axis, m.Attribute())
	if err != nil {
		return nil, b.fail(op, err)
	}
	return one(b.emit(op, constraint.Group{c}))
}

// AlignAxis aligns an axis of e with the same axis of peer, plus offset.
func (b *Builder) AlignAxis(e view.Element, axis attr.Axis, peer view.Element, offset float64) (*constraint.Constraint, error) {
	return b.alignAxis("align-axis", e, axis, peer, 1, offset)
}

// AlignAxisWithMultiplier aligns an axis of e with the same axis of peer
// scaled by multiplier.
func (b *Builder) AlignAxisWithMultiplier(e view.Element, axis attr.Axis, peer view.Element, multiplier float64) (*constraint.Constraint, error) {
	return b.alignAxis("align-axis", e, axis, peer, multiplier, 0)
}

func (b *Builder) alignAxis(op string, e view.Element, axis attr.Axis, peer view.Element, m, offset float64) (*constraint.Constraint, error) {
	if err := checkAxis(axis); err != nil {
		return nil, b.fail(op, err)
	}
	if err := related(e, peer); err != nil {
		return nil, b.fail(op, err)
	}
	if m == 0 {
		return nil, b.fail(op, lkerr.New(lkerr.ErrCodeInvalidInput, "multiplier must not be zero"))
	}
	return one(b.emit(op, constraint.Group{relate(e, axis.Attribute(), constraint.Equal, peer, axis.Attribute(), m, offset)}))
}

// CenterInSuperview centers e in its superview: horizontal axis first, then
// vertical axis.
func (b *Builder) CenterInSuperview(e view.Element) (constraint.Group, error) {
	return b.center("center-in-superview", e, false)
}

// CenterInSuperviewMargins centers e within its superview's margins.
func (b *Builder) CenterInSuperviewMargins(e view.Element) (constraint.Group, error) {
	return b.center("center-in-margins", e, true)
}

func (b *Builder) center(op string, e view.Element, margins bool) (constraint.Group, error) {
	var g constraint.Group
	for _, axis := range []attr.Axis{attr.AxisHorizontal, attr.AxisVertical} {
		to := axis.Attribute()
		if margins {
			to = axis.MarginAxis().Attribute()
		}
		c, err := alignToSuperview(e, axis, to)
		if err != nil {
			return nil, b.fail(op, err)
		}
		g = append(g, c)
	}
	return b.emit(op, g)
}

// =============================================================================
// Dimensions
// =============================================================================

// MatchDimension relates dim of e to toDim of peer:
//
//	e.dim REL peer.toDim * multiplier + constant
//
// Width against height expresses an aspect ratio between two elements.
func (b *Builder) MatchDimension(e view.Element, dim attr.Dimension, peer view.Element, toDim attr.Dimension, multiplier, constant float64, rel constraint.Relation) (*constraint.Constraint, error) {
	const op = "match-dimension"
	if err := checkDimension(dim); err != nil {
		return nil, b.fail(op, err)
	}
	if err := checkDimension(toDim); err != nil {
		return nil, b.fail(op, err)
	}
	if err := related(e, peer); err != nil {
		return nil, b.fail(op, err)
	}
	if multiplier == 0 {
		multiplier = 1
	}
	return one(b.emit(op, constraint.Group{relate(e, dim.Attribute(), rel, peer, toDim.Attribute(), multiplier, constant)}))
}

// MatchAspectRatio fixes e's width to ratio times its height.
func (b *Builder) MatchAspectRatio(e view.Element, ratio float64) (*constraint.Constraint, error) {
	const op = "match-aspect-ratio"
	if view.IsNil(e) {
		return nil, b.fail(op, lkerr.New(lkerr.ErrCodeInvalidInput, "element is nil"))
	}
	if ratio <= 0 {
		return nil, b.fail(op, lkerr.New(lkerr.ErrCodeInvalidInput, "aspect ratio must be positive, got %v", ratio))
	}
	c := constraint.New(e, attr.Width, constraint.Equal, e, attr.Height, ratio, 0)
	c.Priority = 0
	return one(b.emit(op, constraint.Group{c}))
}

func fixedSize(e view.Element, dim attr.Dimension, size float64, rel constraint.Relation) (*constraint.Constraint, error) {
	if view.IsNil(e) {
		return nil, lkerr.New(lkerr.ErrCodeInvalidInput, "element is nil")
	}
	if err := checkDimension(dim); err != nil {
		return nil, err
	}
	if size < 0 {
		return nil, lkerr.New(lkerr.ErrCodeInvalidInput, "%s must not be negative, got %v", dim, size)
	}
	return relate(e, dim.Attribute(), rel, nil, attr.None, 1, size), nil
}

// SetDimension fixes dim of e to size. A required zero-size equality is
// accepted but logged, since host engines drop it.
func (b *Builder) SetDimension(e view.Element, dim attr.Dimension, size float64, rel constraint.Relation) (*constraint.Constraint, error) {
	const op = "set-dimension"
	c, err := fixedSize(e, dim, size, rel)
	if err != nil {
		return nil, b.fail(op, err)
	}
	return one(b.emit(op, constraint.Group{c}))
}

// SetDimensions fixes width and height of e.
func (b *Builder) SetDimensions(e view.Element, width, height float64) (constraint.Group, error) {
	const op = "set-dimensions"
	w, err := fixedSize(e, attr.DimensionWidth, width, constraint.Equal)
	if err != nil {
		return nil, b.fail(op, err)
	}
	h, err := fixedSize(e, attr.DimensionHeight, height, constraint.Equal)
	if err != nil {
		return nil, b.fail(op, err)
	}
	return b.emit(op, constraint.Group{w, h})
}

// =============================================================================
// General form and layout guides
// =============================================================================

// ConstrainAttribute relates any attribute of e to any attribute of peer,
// including pairings the named operations do not cover such as an edge
// against an axis. peer may be nil with toA set to attr.None to fix a
// dimension. An explicit x.Priority takes precedence over the scope.
func (b *Builder) ConstrainAttribute(e view.Element, a attr.Attribute, peer view.Item, toA attr.Attribute, x Expr) (*constraint.Constraint, error) {
	const op = "constrain"
	if view.IsNil(e) {
		return nil, b.fail(op, lkerr.New(lkerr.ErrCodeInvalidInput, "element is nil"))
	}
	if peer != nil {
		if err := related(e, peer); err != nil {
			return nil, b.fail(op, err)
		}
	}
	if err := constraint.CheckPairing(e, a, peer, toA); err != nil {
		return nil, b.fail(op, err)
	}
	c := relate(e, a, x.Relation, peer, toA, x.Multiplier, x.Constant)
	if x.Priority != 0 {
		if err := x.Priority.Validate(); err != nil {
			return nil, b.fail(op, err)
		}
		c.Priority = x.Priority
	}
	return one(b.emit(op, constraint.Group{c}))
}

// PinToLayoutGuide pins e below a top guide or above a bottom guide. The
// inset of a bottom guide is flipped like a far superview edge.
func (b *Builder) PinToLayoutGuide(e view.Element, g *view.LayoutGuide, inset float64, rel constraint.Relation) (*constraint.Constraint, error) {
	const op = "pin-to-guide"
	if view.IsNil(e) || g == nil {
		return nil, b.fail(op, lkerr.New(lkerr.ErrCodeInvalidInput, "element and guide are required"))
	}
	if err := related(e, g); err != nil {
		return nil, b.fail(op, err)
	}
	var c *constraint.Constraint
	switch g.Kind() {
	case view.TopGuide:
		c = relate(e, attr.Top, rel, g, attr.Bottom, 1, inset)
	default:
		c = relate(e, attr.Bottom, rel.Inverse(), g, attr.Top, 1, -inset)
	}
	return one(b.emit(op, constraint.Group{c}))
}

// =============================================================================
// Content priorities
// =============================================================================

// SetContentHuggingPriority sets e's content hugging priority along o to
// the current scope priority. It must run inside a priority scope.
func (b *Builder) SetContentHuggingPriority(e view.Element, o attr.Orientation) error {
	return b.setContentPriority("hugging", e, o, view.ContentPrioritizer.SetContentHuggingPriority)
}

// SetCompressionResistancePriority sets e's compression resistance along o
// to the current scope priority. It must run inside a priority scope.
func (b *Builder) SetCompressionResistancePriority(e view.Element, o attr.Orientation) error {
	return b.setContentPriority("compression-resistance", e, o, view.ContentPrioritizer.SetCompressionResistancePriority)
}

func (b *Builder) setContentPriority(op string, e view.Element, o attr.Orientation, set func(view.ContentPrioritizer, attr.Orientation, float32)) error {
	if view.IsNil(e) {
		return b.fail(op, lkerr.New(lkerr.ErrCodeInvalidInput, "element is nil"))
	}
	if !b.scope.HasPriority() {
		return b.fail(op, lkerr.New(lkerr.ErrCodeInvalidInput, "%s priority can only be set inside a priority scope", op))
	}
	if o != attr.Horizontal && o != attr.Vertical {
		return b.fail(op, lkerr.New(lkerr.ErrCodeInvalidInput, "orientation %v is neither horizontal nor vertical", o))
	}
	cp, ok := e.(view.ContentPrioritizer)
	if !ok {
		return b.fail(op, lkerr.New(lkerr.ErrCodeUnsupported, "element %s has no content priorities", e.ID()))
	}
	p := b.scope.Priority()
	set(cp, o, float32(p))
	b.logger.Debug("content priority", "op", op, "element", e.ID(), "orientation", o, "priority", p)
	return nil
}
