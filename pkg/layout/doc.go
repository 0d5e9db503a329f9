// Package layout builds layout constraints from spatial descriptions.
//
// A [Builder] turns requests such as "pin the top edge 20pt below the
// superview" or "distribute these buttons with 8pt gaps" into
// [constraint.Constraint] descriptors and installs them into a host
// [constraint.Engine].
//
//	b := layout.New(engine.NewMemory(), layout.WithLogger(logger))
//	_, err := b.PinEdgesToSuperviewEdges(card, attr.Uniform(16), attr.EdgeBottom)
//
// # Validation
//
// Every operation checks its preconditions before building anything:
// superview-relative operations need a superview (NO_SUPERVIEW),
// operations on two or more elements need a common ancestor
// (NO_COMMON_ANCESTOR), collections need enough elements
// (INSUFFICIENT_ELEMENTS), and attribute pairs must be relatable
// (INVALID_ATTRIBUTE_PAIRING). A compound operation yields its whole group
// or nothing.
//
// # Insets
//
// Superview-relative insets move edges inward: the inset of a right, bottom
// or trailing edge is negated, and an inequality against such an edge is
// inverted. Two-element forms apply offsets as given.
//
// # Scopes
//
// Each constraint takes its priority and identifier from the builder's
// [scope.Stack] unless the operation sets one explicitly:
//
//	err := b.WithPriority(constraint.DefaultHigh, func() error {
//	    _, err := b.SetDimension(label, attr.DimensionWidth, 120, constraint.LessOrEqual)
//	    return err
//	})
//
// # Installing
//
// Outside a capture every group is installed as soon as it is built.
// [Builder.CreateWithoutInstalling] collects constraints without installing
// them, for later [Builder.Install]; [Builder.CreateAndInstall] collects and
// installs. Install and Remove are idempotent.
//
// # Collections
//
// [AlignToEdge], [AlignToAxis], [MatchDimensions], [SetDimension],
// [SetDimensions] and [Distribute] are generic over any slice of
// [view.Element] implementations. Relative constraints always reference the
// first element.
package layout
