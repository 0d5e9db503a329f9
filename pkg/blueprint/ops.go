package blueprint

import (
	"maps"
	"slices"

	"github.com/matzehuels/layoutkit/pkg/attr"
	"github.com/matzehuels/layoutkit/pkg/constraint"
	lkerr "github.com/matzehuels/layoutkit/pkg/errors"
	"github.com/matzehuels/layoutkit/pkg/layout"
	"github.com/matzehuels/layoutkit/pkg/view"
)

// handler runs one op kind against the plan's builder.
type handler func(p *Plan, op OpSpec) (constraint.Group, error)

// handlers maps the kind field of an [[op]] table to its factory call.
//
//	kind                      views  fields
//	pin-edge-to-superview     1      edge, inset, relation
//	pin-edges-to-superview    1      insets, exclude
//	pin-edge-to-margin        1      edge, relation
//	pin-edges-to-margins      1      exclude
//	pin-edge                  1      edge, to-edge, to, offset, relation
//	align-axis-to-superview   1      axis
//	align-axis-to-margin-axis 1      axis
//	align-axis                1      axis, to, offset, multiplier
//	center-in-superview       1
//	center-in-margins         1
//	match-dimension           1      dimension, to-dimension, to, multiplier, constant, relation
//	aspect-ratio              1      multiplier
//	set-dimension             1+     dimension, size, relation
//	set-dimensions            1+     width, height
//	constrain                 1      attribute, to-attribute, to, multiplier, constant, relation
//	pin-to-guide              1      to, inset, relation
//	align-edges               2+     edge
//	align-axes                2+     axis
//	match-dimensions          2+     dimension
//	distribute                2+     orientation, alignment, mode, spacing, size, ...
//	hugging                   1      orientation (needs priority)
//	compression-resistance    1      orientation (needs priority)
var handlers map[string]handler

func init() {
	handlers = map[string]handler{
		"pin-edge-to-superview":     pinEdgeToSuperview,
		"pin-edges-to-superview":    pinEdgesToSuperview,
		"pin-edge-to-margin":        pinEdgeToMargin,
		"pin-edges-to-margins":      pinEdgesToMargins,
		"pin-edge":                  pinEdge,
		"align-axis-to-superview":   alignAxisToSuperview,
		"align-axis-to-margin-axis": alignAxisToMarginAxis,
		"align-axis":                alignAxis,
		"center-in-superview":       centerInSuperview,
		"center-in-margins":         centerInMargins,
		"match-dimension":           matchDimension,
		"aspect-ratio":              aspectRatio,
		"set-dimension":             setDimension,
		"set-dimensions":            setDimensions,
		"constrain":                 constrain,
		"pin-to-guide":              pinToGuide,
		"align-edges":               alignEdges,
		"align-axes":                alignAxes,
		"match-dimensions":          matchDimensions,
		"distribute":                distribute,
		"hugging":                   hugging,
		"compression-resistance":    compressionResistance,
	}
}

// Kinds returns the op kinds a blueprint may use, sorted.
func Kinds() []string {
	return slices.Sorted(maps.Keys(handlers))
}

// =============================================================================
// Field parsing
// =============================================================================

func parseEdge(field, s string) (attr.Edge, error) {
	a, err := attr.ParseAttribute(s)
	if err != nil || !attr.Edge(a).Valid() {
		return 0, lkerr.New(lkerr.ErrCodeInvalidFormat, "%s: %q is not an edge", field, s)
	}
	return attr.Edge(a), nil
}

func parseEdges(field string, ss []string) ([]attr.Edge, error) {
	out := make([]attr.Edge, 0, len(ss))
	for _, s := range ss {
		e, err := parseEdge(field, s)
		if err != nil {
			return nil, err
		}
		out = append(out, e)
	}
	return out, nil
}

func parseAxis(field, s string) (attr.Axis, error) {
	a, err := attr.ParseAttribute(s)
	if err != nil || !attr.Axis(a).Valid() {
		return 0, lkerr.New(lkerr.ErrCodeInvalidFormat, "%s: %q is not an axis", field, s)
	}
	return attr.Axis(a), nil
}

func parseDimension(field, s string) (attr.Dimension, error) {
	a, err := attr.ParseAttribute(s)
	if err != nil || !attr.Dimension(a).Valid() {
		return 0, lkerr.New(lkerr.ErrCodeInvalidFormat, "%s: %q is not a dimension", field, s)
	}
	return attr.Dimension(a), nil
}

func parseOrientation(s string) (attr.Orientation, error) {
	o, err := attr.ParseOrientation(s)
	if err != nil {
		return attr.NoOrientation, lkerr.Wrap(lkerr.ErrCodeInvalidFormat, err, "orientation")
	}
	return o, nil
}

// parseOptionalAttribute maps an empty string to attr.None.
func parseOptionalAttribute(field, s string) (attr.Attribute, error) {
	if s == "" {
		return attr.None, nil
	}
	a, err := attr.ParseAttribute(s)
	if err != nil {
		return attr.None, lkerr.Wrap(lkerr.ErrCodeInvalidFormat, err, "%s", field)
	}
	return a, nil
}

// =============================================================================
// Single-element operations
// =============================================================================

func pinEdgeToSuperview(p *Plan, op OpSpec) (constraint.Group, error) {
	e, err := p.single(op)
	if err != nil {
		return nil, err
	}
	edge, err := parseEdge("edge", op.Edge)
	if err != nil {
		return nil, err
	}
	rel, err := constraint.ParseRelation(op.Relation)
	if err != nil {
		return nil, err
	}
	return group(p.Builder.PinEdgeToSuperviewEdge(e, edge, op.Inset, rel))
}

func pinEdgesToSuperview(p *Plan, op OpSpec) (constraint.Group, error) {
	e, err := p.single(op)
	if err != nil {
		return nil, err
	}
	excluding, err := parseEdges("exclude", op.Exclude)
	if err != nil {
		return nil, err
	}
	var insets attr.Insets
	if op.Insets != nil {
		insets = *op.Insets
	} else if op.Inset != 0 {
		insets = attr.Uniform(op.Inset)
	}
	return p.Builder.PinEdgesToSuperviewEdges(e, insets, excluding...)
}

func pinEdgeToMargin(p *Plan, op OpSpec) (constraint.Group, error) {
	e, err := p.single(op)
	if err != nil {
		return nil, err
	}
	edge, err := parseEdge("edge", op.Edge)
	if err != nil {
		return nil, err
	}
	rel, err := constraint.ParseRelation(op.Relation)
	if err != nil {
		return nil, err
	}
	return group(p.Builder.PinEdgeToSuperviewMargin(e, edge, rel))
}

func pinEdgesToMargins(p *Plan, op OpSpec) (constraint.Group, error) {
	e, err := p.single(op)
	if err != nil {
		return nil, err
	}
	excluding, err := parseEdges("exclude", op.Exclude)
	if err != nil {
		return nil, err
	}
	return p.Builder.PinEdgesToSuperviewMargins(e, excluding...)
}

func pinEdge(p *Plan, op OpSpec) (constraint.Group, error) {
	e, err := p.single(op)
	if err != nil {
		return nil, err
	}
	peer, err := p.peer(op)
	if err != nil {
		return nil, err
	}
	edge, err := parseEdge("edge", op.Edge)
	if err != nil {
		return nil, err
	}
	toEdge := edge
	if op.ToEdge != "" {
		if toEdge, err = parseEdge("to-edge", op.ToEdge); err != nil {
			return nil, err
		}
	}
	rel, err := constraint.ParseRelation(op.Relation)
	if err != nil {
		return nil, err
	}
	return group(p.Builder.PinEdge(e, edge, toEdge, peer, op.Offset, rel))
}

func alignAxisToSuperview(p *Plan, op OpSpec) (constraint.Group, error) {
	e, err := p.single(op)
	if err != nil {
		return nil, err
	}
	axis, err := parseAxis("axis", op.Axis)
	if err != nil {
		return nil, err
	}
	return group(p.Builder.AlignAxisToSuperviewAxis(e, axis))
}

func alignAxisToMarginAxis(p *Plan, op OpSpec) (constraint.Group, error) {
	e, err := p.single(op)
	if err != nil {
		return nil, err
	}
	axis, err := parseAxis("axis", op.Axis)
	if err != nil {
		return nil, err
	}
	return group(p.Builder.AlignAxisToSuperviewMarginAxis(e, axis))
}

func alignAxis(p *Plan, op OpSpec) (constraint.Group, error) {
	e, err := p.single(op)
	if err != nil {
		return nil, err
	}
	peer, err := p.peer(op)
	if err != nil {
		return nil, err
	}
	axis, err := parseAxis("axis", op.Axis)
	if err != nil {
		return nil, err
	}
	if op.Multiplier != 0 {
		if op.Offset != 0 {
			return nil, lkerr.New(lkerr.ErrCodeInvalidFormat, "align-axis takes an offset or a multiplier, not both")
		}
		return group(p.Builder.AlignAxisWithMultiplier(e, axis, peer, op.Multiplier))
	}
	return group(p.Builder.AlignAxis(e, axis, peer, op.Offset))
}

func centerInSuperview(p *Plan, op OpSpec) (constraint.Group, error) {
	e, err := p.single(op)
	if err != nil {
		return nil, err
	}
	return p.Builder.CenterInSuperview(e)
}

func centerInMargins(p *Plan, op OpSpec) (constraint.Group, error) {
	e, err := p.single(op)
	if err != nil {
		return nil, err
	}
	return p.Builder.CenterInSuperviewMargins(e)
}

func matchDimension(p *Plan, op OpSpec) (constraint.Group, error) {
	e, err := p.single(op)
	if err != nil {
		return nil, err
	}
	peer, err := p.peer(op)
	if err != nil {
		return nil, err
	}
	dim, err := parseDimension("dimension", op.Dimension)
	if err != nil {
		return nil, err
	}
	toDim := dim
	if op.ToDimension != "" {
		if toDim, err = parseDimension("to-dimension", op.ToDimension); err != nil {
			return nil, err
		}
	}
	rel, err := constraint.ParseRelation(op.Relation)
	if err != nil {
		return nil, err
	}
	return group(p.Builder.MatchDimension(e, dim, peer, toDim, op.Multiplier, op.Constant, rel))
}

func aspectRatio(p *Plan, op OpSpec) (constraint.Group, error) {
	e, err := p.single(op)
	if err != nil {
		return nil, err
	}
	return group(p.Builder.MatchAspectRatio(e, op.Multiplier))
}

func setDimension(p *Plan, op OpSpec) (constraint.Group, error) {
	dim, err := parseDimension("dimension", op.Dimension)
	if err != nil {
		return nil, err
	}
	rel, err := constraint.ParseRelation(op.Relation)
	if err != nil {
		return nil, err
	}
	if len(op.Views) == 1 {
		return group(p.Builder.SetDimension(p.Elements[op.Views[0]], dim, op.Size, rel))
	}
	if rel != constraint.Equal {
		return nil, lkerr.New(lkerr.ErrCodeInvalidFormat, "set-dimension on several views only supports ==")
	}
	return layout.SetDimension(p.Builder, p.views(op), dim, op.Size)
}

func setDimensions(p *Plan, op OpSpec) (constraint.Group, error) {
	if len(op.Views) == 1 {
		return p.Builder.SetDimensions(p.Elements[op.Views[0]], op.Width, op.Height)
	}
	return layout.SetDimensions(p.Builder, p.views(op), op.Width, op.Height)
}

func constrain(p *Plan, op OpSpec) (constraint.Group, error) {
	e, err := p.single(op)
	if err != nil {
		return nil, err
	}
	a, err := attr.ParseAttribute(op.Attribute)
	if err != nil {
		return nil, lkerr.Wrap(lkerr.ErrCodeInvalidFormat, err, "attribute")
	}
	toA, err := parseOptionalAttribute("to-attribute", op.ToAttribute)
	if err != nil {
		return nil, err
	}
	rel, err := constraint.ParseRelation(op.Relation)
	if err != nil {
		return nil, err
	}
	var peer view.Item
	if op.To != "" {
		peer = p.item(op.To)
		if toA == attr.None {
			toA = a
		}
	}
	x := layout.Expr{Relation: rel, Multiplier: op.Multiplier, Constant: op.Constant}
	return group(p.Builder.ConstrainAttribute(e, a, peer, toA, x))
}

func pinToGuide(p *Plan, op OpSpec) (constraint.Group, error) {
	e, err := p.single(op)
	if err != nil {
		return nil, err
	}
	g, ok := p.Guides[op.To]
	if !ok {
		return nil, lkerr.New(lkerr.ErrCodeInvalidFormat, "pin-to-guide: %q is not a guide", op.To)
	}
	rel, err := constraint.ParseRelation(op.Relation)
	if err != nil {
		return nil, err
	}
	return group(p.Builder.PinToLayoutGuide(e, g, op.Inset, rel))
}

func hugging(p *Plan, op OpSpec) (constraint.Group, error) {
	e, err := p.single(op)
	if err != nil {
		return nil, err
	}
	o, err := parseOrientation(op.Orientation)
	if err != nil {
		return nil, err
	}
	return nil, p.Builder.SetContentHuggingPriority(e, o)
}

func compressionResistance(p *Plan, op OpSpec) (constraint.Group, error) {
	e, err := p.single(op)
	if err != nil {
		return nil, err
	}
	o, err := parseOrientation(op.Orientation)
	if err != nil {
		return nil, err
	}
	return nil, p.Builder.SetCompressionResistancePriority(e, o)
}

// =============================================================================
// Collection operations
// =============================================================================

func alignEdges(p *Plan, op OpSpec) (constraint.Group, error) {
	edge, err := parseEdge("edge", op.Edge)
	if err != nil {
		return nil, err
	}
	return layout.AlignToEdge(p.Builder, p.views(op), edge)
}

func alignAxes(p *Plan, op OpSpec) (constraint.Group, error) {
	axis, err := parseAxis("axis", op.Axis)
	if err != nil {
		return nil, err
	}
	return layout.AlignToAxis(p.Builder, p.views(op), axis)
}

func matchDimensions(p *Plan, op OpSpec) (constraint.Group, error) {
	dim, err := parseDimension("dimension", op.Dimension)
	if err != nil {
		return nil, err
	}
	return layout.MatchDimensions(p.Builder, p.views(op), dim)
}

func distribute(p *Plan, op OpSpec) (constraint.Group, error) {
	o, err := parseOrientation(op.Orientation)
	if err != nil {
		return nil, err
	}
	alignment, err := parseOptionalAttribute("alignment", op.Alignment)
	if err != nil {
		return nil, err
	}
	mode, err := layout.ParseMode(op.Mode)
	if err != nil {
		return nil, err
	}
	d := layout.Distribution{
		Orientation: o,
		Alignment:   alignment,
		Mode:        mode,
		Value:       op.Spacing,
		InsetEnds:   op.InsetEnds,
		EndInset:    op.EndInset,
		MatchSizes:  op.MatchSizes,
		Spacings:    op.Spacings,
		LeftToRight: op.LeftToRight,
	}
	if mode == layout.FixedSize {
		d.Value = op.Size
	}
	return layout.Distribute(p.Builder, p.views(op), d)
}

// group lifts a single-constraint result into a group. A failed call
// yields a nil group.
func group(c *constraint.Constraint, err error) (constraint.Group, error) {
	if err != nil {
		return nil, err
	}
	return constraint.Group{c}, nil
}
