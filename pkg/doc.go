// Package pkg holds the layoutkit libraries.
//
// # Overview
//
// Layoutkit builds linear layout constraints of the form
//
//	first.attribute (==|<=|>=) second.attribute * multiplier + constant
//
// from short declarative operations (pin, align, match, set, distribute)
// and hands them to a pluggable layout engine. The packages are:
//
//   - [attr] - edges, axes, dimensions, margins and insets
//   - [view] - view hierarchy, toolkits, layout guides, common ancestor
//   - [constraint] - the constraint value, priorities, groups, engine interface
//   - [scope] - nested priority and identifier scopes
//   - [layout] - the Builder and every factory operation
//   - [engine] - an in-memory engine for tools and tests
//   - [blueprint] - TOML blueprints that drive a Builder
//   - [render/nodelink] - Graphviz diagrams of built constraints
//   - [observability] - optional hooks for builder and engine events
//   - [errors] - error codes shared by all packages
//
// # Quick Start
//
//	root := view.NewTouchView("root")
//	card := view.NewTouchView("card")
//	_ = root.AddSubview(card)
//
//	b := layout.New(engine.NewMemory())
//	g, err := b.PinEdgesToSuperviewEdges(card, attr.Uniform(16), attr.EdgeBottom)
//	if err != nil {
//	    return err
//	}
//	fmt.Println(g)
//	// card.top == root.top + 16
//	// card.leading == root.leading + 16
//	// card.trailing == root.trailing - 16
//
// [attr]: github.com/matzehuels/layoutkit/pkg/attr
// [view]: github.com/matzehuels/layoutkit/pkg/view
// [constraint]: github.com/matzehuels/layoutkit/pkg/constraint
// [scope]: github.com/matzehuels/layoutkit/pkg/scope
// [layout]: github.com/matzehuels/layoutkit/pkg/layout
// [engine]: github.com/matzehuels/layoutkit/pkg/engine
// [blueprint]: github.com/matzehuels/layoutkit/pkg/blueprint
// [render/nodelink]: github.com/matzehuels/layoutkit/pkg/render/nodelink
// [observability]: github.com/matzehuels/layoutkit/pkg/observability
// [errors]: github.com/matzehuels/layoutkit/pkg/errors
package pkg
