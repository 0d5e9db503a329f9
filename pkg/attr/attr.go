package attr

import (
	"fmt"
	"strings"
)

// Attribute is a geometric quantity of an element that a constraint can
// reference. The typed subsets [Edge], [Axis], [Dimension], [Margin] and
// [MarginAxis] all convert to Attribute.
type Attribute int

const (
	// None marks an absent second attribute (fixed-size constraints).
	None Attribute = iota

	Left
	Right
	Top
	Bottom
	Leading
	Trailing

	Width
	Height

	CenterX
	CenterY
	LastBaseline
	FirstBaseline

	MarginLeft
	MarginRight
	MarginTop
	MarginBottom
	MarginLeading
	MarginTrailing
	MarginCenterX
	MarginCenterY
)

// Family groups attributes that can be reasoned about together.
type Family int

const (
	FamilyNone Family = iota
	FamilyEdge
	FamilyAxis
	FamilyDimension
)

func (f Family) String() string {
	switch f {
	case FamilyEdge:
		return "edge"
	case FamilyAxis:
		return "axis"
	case FamilyDimension:
		return "dimension"
	default:
		return "none"
	}
}

var names = map[Attribute]string{
	None:           "none",
	Left:           "left",
	Right:          "right",
	Top:            "top",
	Bottom:         "bottom",
	Leading:        "leading",
	Trailing:       "trailing",
	Width:          "width",
	Height:         "height",
	CenterX:        "centerX",
	CenterY:        "centerY",
	LastBaseline:   "lastBaseline",
	FirstBaseline:  "firstBaseline",
	MarginLeft:     "leftMargin",
	MarginRight:    "rightMargin",
	MarginTop:      "topMargin",
	MarginBottom:   "bottomMargin",
	MarginLeading:  "leadingMargin",
	MarginTrailing: "trailingMargin",
	MarginCenterX:  "centerXWithinMargins",
	MarginCenterY:  "centerYWithinMargins",
}

// aliases are the extra spellings accepted by ParseAttribute.
var aliases = map[string]Attribute{
	"baseline":          LastBaseline,
	"vertical-axis":     CenterX,
	"horizontal-axis":   CenterY,
	"margin-left":       MarginLeft,
	"margin-right":      MarginRight,
	"margin-top":        MarginTop,
	"margin-bottom":     MarginBottom,
	"margin-leading":    MarginLeading,
	"margin-trailing":   MarginTrailing,
	"margin-center-x":   MarginCenterX,
	"margin-center-y":   MarginCenterY,
	"center-x":          CenterX,
	"center-y":          CenterY,
	"first-baseline":    FirstBaseline,
	"last-baseline":     LastBaseline,
	"margin-vertical":   MarginCenterX,
	"margin-horizontal": MarginCenterY,
}

func (a Attribute) String() string {
	if s, ok := names[a]; ok {
		return s
	}
	return fmt.Sprintf("Attribute(%d)", int(a))
}

// ParseAttribute converts a name produced by [Attribute.String], or one of
// the kebab-case aliases used in blueprints, back into an Attribute.
// Matching is case-insensitive.
func ParseAttribute(s string) (Attribute, error) {
	key := strings.ToLower(strings.TrimSpace(s))
	for a, name := range names {
		if a != None && strings.ToLower(name) == key {
			return a, nil
		}
	}
	if a, ok := aliases[key]; ok {
		return a, nil
	}
	return None, fmt.Errorf("unknown attribute %q", s)
}

// Family returns the attribute family. Margin edges are edges, margin axes
// and baselines are axes.
func (a Attribute) Family() Family {
	switch a {
	case Left, Right, Top, Bottom, Leading, Trailing,
		MarginLeft, MarginRight, MarginTop, MarginBottom, MarginLeading, MarginTrailing:
		return FamilyEdge
	case CenterX, CenterY, LastBaseline, FirstBaseline, MarginCenterX, MarginCenterY:
		return FamilyAxis
	case Width, Height:
		return FamilyDimension
	default:
		return FamilyNone
	}
}

// IsDimension reports whether a is Width or Height.
func (a Attribute) IsDimension() bool { return a.Family() == FamilyDimension }

// IsPosition reports whether a locates the element (an edge or an axis).
func (a Attribute) IsPosition() bool {
	f := a.Family()
	return f == FamilyEdge || f == FamilyAxis
}

// Orientation returns the direction the attribute measures along:
// x-positions and width are Horizontal, y-positions and height are Vertical.
func (a Attribute) Orientation() Orientation {
	switch a {
	case Left, Right, Leading, Trailing, Width, CenterX,
		MarginLeft, MarginRight, MarginLeading, MarginTrailing, MarginCenterX:
		return Horizontal
	case Top, Bottom, Height, CenterY, LastBaseline, FirstBaseline,
		MarginTop, MarginBottom, MarginCenterY:
		return Vertical
	default:
		return NoOrientation
	}
}

// IsFar reports whether a is a far edge (right, bottom, trailing or one of
// their margins). Insets against far edges are negated so that a positive
// inset always moves the edge inward.
func (a Attribute) IsFar() bool {
	switch a {
	case Right, Bottom, Trailing, MarginRight, MarginBottom, MarginTrailing:
		return true
	}
	return false
}

// IsMargin reports whether a is one of the margin attributes.
func (a Attribute) IsMargin() bool {
	return a >= MarginLeft && a <= MarginCenterY
}

// IsDirectional reports whether a follows the layout direction
// (leading/trailing and their margins).
func (a Attribute) IsDirectional() bool {
	switch a {
	case Leading, Trailing, MarginLeading, MarginTrailing:
		return true
	}
	return false
}

// IsAbsoluteHorizontal reports whether a is a left/right edge or margin.
func (a Attribute) IsAbsoluteHorizontal() bool {
	switch a {
	case Left, Right, MarginLeft, MarginRight:
		return true
	}
	return false
}

// IsBaseline reports whether a is a text baseline.
func (a Attribute) IsBaseline() bool {
	return a == LastBaseline || a == FirstBaseline
}

// WithoutMargin maps a margin attribute to the plain attribute it is
// measured from. Other attributes are returned unchanged.
func (a Attribute) WithoutMargin() Attribute {
	switch a {
	case MarginLeft:
		return Left
	case MarginRight:
		return Right
	case MarginTop:
		return Top
	case MarginBottom:
		return Bottom
	case MarginLeading:
		return Leading
	case MarginTrailing:
		return Trailing
	case MarginCenterX:
		return CenterX
	case MarginCenterY:
		return CenterY
	}
	return a
}
