// Package attr models the geometric attributes that layout constraints
// reference: edges, center axes and baselines, dimensions, and the margin
// variants of edges and axes.
//
// # Families
//
// Every [Attribute] belongs to exactly one [Family]:
//
//   - [FamilyEdge]: left, right, top, bottom, leading, trailing and their
//     margin variants
//   - [FamilyAxis]: centerX, centerY, the two baselines and the
//     within-margins center lines
//   - [FamilyDimension]: width and height
//
// Positions (edges and axes) also carry an [Orientation]. Two positions can
// only be related when they share an orientation; dimensions can always be
// related to one another, which is how aspect-ratio constraints are built.
//
// # Typed subsets
//
// The factory API accepts the narrower [Edge], [Axis], [Dimension], [Margin]
// and [MarginAxis] types so that, for example, an edge pin cannot be handed
// a width. Each converts to [Attribute] with its Attribute method.
//
// # Axis naming
//
// [AxisVertical] is the vertical line through an element's center, so it
// fixes an x position. [AxisHorizontal] is the horizontal center line.
// Distribution uses [Orientation] instead, where [Horizontal] means "lay
// elements out left to right".
package attr
