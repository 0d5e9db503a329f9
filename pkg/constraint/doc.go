// Package constraint defines the constraint descriptor handed to a host
// layout engine and the lifecycle of groups of descriptors.
//
// A [Constraint] reads as one linear equation:
//
//	first.attribute  relation  second.attribute * multiplier + constant
//
// with a [Priority] and an optional identifier used to trace solver
// diagnostics back to the call that produced the constraint.
//
// # Lifecycle
//
// Every constraint starts Constructed. [Group.Install] activates the members
// that are not installed yet and marks them Installed; [Group.Remove]
// deactivates installed members and marks them Removed. Both are idempotent,
// and a removed constraint can be installed again:
//
//	constructed --Install--> installed --Remove--> removed --Install--> installed
//
// The host boundary is the [Engine] interface. Conflicting constraints are
// not detected here; that is the engine's concern at solve time.
//
// # Pairing rules
//
// [CheckPairing] rejects relations the host would refuse, with
// INVALID_ATTRIBUTE_PAIRING: a constant on a position, a dimension against a
// position, positions on different axes, and leading/trailing against
// left/right. Dimensions may always be related to each other, which is how
// aspect ratios are expressed.
package constraint
