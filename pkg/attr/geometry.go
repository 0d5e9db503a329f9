package attr

import "fmt"

// Orientation is the direction along which a group of elements is laid out.
// Horizontal lays elements left to right (or leading to trailing), Vertical
// lays them top to bottom.
type Orientation int

const (
	NoOrientation Orientation = iota
	Horizontal
	Vertical
)

func (o Orientation) String() string {
	switch o {
	case Horizontal:
		return "horizontal"
	case Vertical:
		return "vertical"
	default:
		return "none"
	}
}

// ParseOrientation accepts "horizontal" or "vertical".
func ParseOrientation(s string) (Orientation, error) {
	switch s {
	case "horizontal", "h", "x":
		return Horizontal, nil
	case "vertical", "v", "y":
		return Vertical, nil
	}
	return NoOrientation, fmt.Errorf("unknown orientation %q", s)
}

// Cross returns the perpendicular orientation.
func (o Orientation) Cross() Orientation {
	switch o {
	case Horizontal:
		return Vertical
	case Vertical:
		return Horizontal
	}
	return NoOrientation
}

// StartEdge returns the edge elements are laid out from. Horizontal layouts
// use the leading edge unless leftToRight forces absolute edges.
func (o Orientation) StartEdge(leftToRight bool) Edge {
	if o == Vertical {
		return EdgeTop
	}
	if leftToRight {
		return EdgeLeft
	}
	return EdgeLeading
}

// EndEdge is the counterpart of StartEdge.
func (o Orientation) EndEdge(leftToRight bool) Edge {
	return o.StartEdge(leftToRight).Opposite()
}

// Dimension returns the dimension measured along the orientation.
func (o Orientation) Dimension() Dimension {
	if o == Vertical {
		return DimensionHeight
	}
	return DimensionWidth
}

// CenterAxis returns the center line whose position varies along the
// orientation: AxisVertical (centerX) for Horizontal, AxisHorizontal
// (centerY) for Vertical.
func (o Orientation) CenterAxis() Axis {
	if o == Vertical {
		return AxisHorizontal
	}
	return AxisVertical
}

// Insets holds one inset per side.
type Insets struct {
	Top    float64 `toml:"top" json:"top"`
	Left   float64 `toml:"left" json:"left"`
	Bottom float64 `toml:"bottom" json:"bottom"`
	Right  float64 `toml:"right" json:"right"`
}

// Uniform returns insets with v on every side.
func Uniform(v float64) Insets {
	return Insets{Top: v, Left: v, Bottom: v, Right: v}
}

// For returns the inset for an edge or margin. Leading and trailing read the
// left and right values.
func (in Insets) For(a Attribute) float64 {
	switch a.WithoutMargin() {
	case Top:
		return in.Top
	case Bottom:
		return in.Bottom
	case Left, Leading:
		return in.Left
	case Right, Trailing:
		return in.Right
	}
	return 0
}

// IsZero reports whether every side is zero.
func (in Insets) IsZero() bool { return in == Insets{} }
