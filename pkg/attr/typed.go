package attr

// Edge is an edge of an element.
type Edge Attribute

const (
	EdgeLeft     = Edge(Left)
	EdgeRight    = Edge(Right)
	EdgeTop      = Edge(Top)
	EdgeBottom   = Edge(Bottom)
	EdgeLeading  = Edge(Leading)
	EdgeTrailing = Edge(Trailing)
)

// Attribute converts the edge to its attribute.
func (e Edge) Attribute() Attribute { return Attribute(e) }

func (e Edge) String() string { return Attribute(e).String() }

// Valid reports whether e is one of the six plain edges.
func (e Edge) Valid() bool {
	return Attribute(e) >= Left && Attribute(e) <= Trailing
}

// Opposite returns the edge on the other side of the element.
func (e Edge) Opposite() Edge {
	switch e {
	case EdgeLeft:
		return EdgeRight
	case EdgeRight:
		return EdgeLeft
	case EdgeTop:
		return EdgeBottom
	case EdgeBottom:
		return EdgeTop
	case EdgeLeading:
		return EdgeTrailing
	case EdgeTrailing:
		return EdgeLeading
	}
	return e
}

// Margin returns the margin attribute matching the edge.
func (e Edge) Margin() Margin {
	switch e {
	case EdgeLeft:
		return MarginEdgeLeft
	case EdgeRight:
		return MarginEdgeRight
	case EdgeTop:
		return MarginEdgeTop
	case EdgeBottom:
		return MarginEdgeBottom
	case EdgeLeading:
		return MarginEdgeLeading
	case EdgeTrailing:
		return MarginEdgeTrailing
	}
	return Margin(None)
}

// Axis is a center line or baseline of an element.
//
// AxisVertical is the vertical line through the element's center (it fixes
// an x position); AxisHorizontal is the horizontal center line.
type Axis Attribute

const (
	AxisVertical      = Axis(CenterX)
	AxisHorizontal    = Axis(CenterY)
	AxisBaseline      = Axis(LastBaseline)
	AxisLastBaseline  = Axis(LastBaseline)
	AxisFirstBaseline = Axis(FirstBaseline)
)

func (a Axis) Attribute() Attribute { return Attribute(a) }

func (a Axis) String() string { return Attribute(a).String() }

// Valid reports whether a is a center line or baseline.
func (a Axis) Valid() bool {
	switch Attribute(a) {
	case CenterX, CenterY, LastBaseline, FirstBaseline:
		return true
	}
	return false
}

// MarginAxis returns the within-margins variant of a center axis.
// Baselines have no margin variant and return an invalid MarginAxis.
func (a Axis) MarginAxis() MarginAxis {
	switch a {
	case AxisVertical:
		return MarginAxisVertical
	case AxisHorizontal:
		return MarginAxisHorizontal
	}
	return MarginAxis(None)
}

// Dimension is the width or height of an element.
type Dimension Attribute

const (
	DimensionWidth  = Dimension(Width)
	DimensionHeight = Dimension(Height)
)

func (d Dimension) Attribute() Attribute { return Attribute(d) }

func (d Dimension) String() string { return Attribute(d).String() }

func (d Dimension) Valid() bool { return d == DimensionWidth || d == DimensionHeight }

// Margin is an edge of an element's layout margins.
type Margin Attribute

const (
	MarginEdgeLeft     = Margin(MarginLeft)
	MarginEdgeRight    = Margin(MarginRight)
	MarginEdgeTop      = Margin(MarginTop)
	MarginEdgeBottom   = Margin(MarginBottom)
	MarginEdgeLeading  = Margin(MarginLeading)
	MarginEdgeTrailing = Margin(MarginTrailing)
)

func (m Margin) Attribute() Attribute { return Attribute(m) }

func (m Margin) String() string { return Attribute(m).String() }

// MarginAxis is a center line of an element's layout margins.
type MarginAxis Attribute

const (
	MarginAxisVertical   = MarginAxis(MarginCenterX)
	MarginAxisHorizontal = MarginAxis(MarginCenterY)
)

func (m MarginAxis) Attribute() Attribute { return Attribute(m) }

func (m MarginAxis) String() string { return Attribute(m).String() }
