// Package view normalizes the two supported host toolkits into one
// capability surface.
//
// # Elements
//
// [Element] is the only thing the constraint factory knows about a visual
// node: its identity, its parent, its toolkit, its margin insets, and the
// flag that opts it into constraint-based layout. [TouchView] and
// [DesktopView] are the two concrete variants; which one a program uses is
// decided when the hierarchy is built ([New], [ParseToolkit]).
//
//	root := view.NewTouchView("root")
//	title := view.NewTouchView("title")
//	_ = root.AddSubview(title)
//
//	anc, err := view.CommonAncestor(title, root) // root
//
// # Toolkit differences
//
// The touch toolkit exposes margin attributes natively and gives new
// elements 8pt margins. The desktop toolkit has neither margin attributes
// nor first baselines; [Resolve] rewrites margin attributes to plain edges
// offset by the element's insets so callers can use the same operations on
// both. Layout guides ([LayoutGuide]) exist on the touch toolkit only.
//
// # Ancestors
//
// [CommonAncestor] walks both parent chains (each starting at the element
// itself) and returns the first shared element. Relating an element to
// itself, or to an element of another hierarchy, fails with
// NO_COMMON_ANCESTOR.
//
// # Concurrency
//
// Elements are owned by a single goroutine, like the host UI thread they
// model. Nothing in this package is safe for concurrent use.
package view
