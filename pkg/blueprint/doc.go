// Package blueprint declares layouts in TOML and builds them.
//
// A blueprint names a toolkit, a view hierarchy, optional layout guides and
// an ordered list of factory operations:
//
//	toolkit = "touch"
//
//	[[view]]
//	id = "screen"
//
//	[[view]]
//	id = "card"
//	parent = "screen"
//
//	[[op]]
//	kind = "pin-edges-to-superview"
//	views = ["card"]
//	insets = { top = 16, left = 16, bottom = 16, right = 16 }
//	exclude = ["bottom"]
//	identifier = "card-pins"
//
// [Load] and [Decode] parse and validate a file; [Blueprint.Build] creates
// the elements, runs each op through a [layout.Builder] inside its own
// priority and identifier scopes, and returns a [Plan]. Ops with
// install = false are created without installing, so a [Plan] can later
// toggle them with [Plan.Toggle].
//
// Unknown ids are reported as NOT_FOUND, malformed values and unknown op
// kinds as INVALID_FORMAT. Errors from the factory keep their code and are
// prefixed with the op's position.
package blueprint
