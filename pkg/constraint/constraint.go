package constraint

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/matzehuels/layoutkit/pkg/attr"
	lkerr "github.com/matzehuels/layoutkit/pkg/errors"
	"github.com/matzehuels/layoutkit/pkg/view"
)

// Relation orders the two sides of a constraint.
type Relation int

const (
	Equal Relation = iota
	GreaterOrEqual
	LessOrEqual
)

func (r Relation) String() string {
	switch r {
	case Equal:
		return "=="
	case GreaterOrEqual:
		return ">="
	case LessOrEqual:
		return "<="
	}
	return fmt.Sprintf("Relation(%d)", int(r))
}

// Inverse swaps the inequalities. Equal is its own inverse.
func (r Relation) Inverse() Relation {
	switch r {
	case GreaterOrEqual:
		return LessOrEqual
	case LessOrEqual:
		return GreaterOrEqual
	}
	return r
}

// Valid reports whether r is one of the three relations.
func (r Relation) Valid() bool { return r >= Equal && r <= LessOrEqual }

// ParseRelation accepts the symbolic and the word forms ("==", "eq",
// "equal", ">=", "ge", "<=", "le"). An empty string means Equal.
func ParseRelation(s string) (Relation, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "==", "=", "eq", "equal":
		return Equal, nil
	case ">=", "ge", "gte", "greater-or-equal":
		return GreaterOrEqual, nil
	case "<=", "le", "lte", "less-or-equal":
		return LessOrEqual, nil
	}
	return Equal, lkerr.New(lkerr.ErrCodeInvalidFormat, "unknown relation %q", s)
}

// Priority is the solver strength of a constraint. Higher is stronger.
type Priority float32

const (
	Required         Priority = lkerr.MaxPriority
	DefaultHigh      Priority = 750
	DefaultLow       Priority = 250
	FittingSizeLevel Priority = 50
)

// Validate checks that p lies in (0, Required].
func (p Priority) Validate() error { return lkerr.ValidatePriority(float64(p)) }

func (p Priority) String() string {
	if p == Required {
		return "required"
	}
	return strconv.FormatFloat(float64(p), 'g', -1, 32)
}

// State is the lifecycle position of a constraint.
type State int

const (
	Constructed State = iota
	Installed
	Removed
)

func (s State) String() string {
	switch s {
	case Constructed:
		return "constructed"
	case Installed:
		return "installed"
	case Removed:
		return "removed"
	}
	return fmt.Sprintf("State(%d)", int(s))
}

// Constraint describes one linear relationship:
//
//	first.attr  REL  second.attr * multiplier + constant
//
// SecondItem is nil for fixed-size constraints. A Constraint is created in
// the Constructed state; only [Group.Install] and [Group.Remove] move it.
type Constraint struct {
	FirstItem       view.Element
	FirstAttribute  attr.Attribute
	Relation        Relation
	SecondItem      view.Item
	SecondAttribute attr.Attribute
	Multiplier      float64
	Constant        float64
	Priority        Priority
	Identifier      string

	state State
}

// New returns a required constraint. A zero multiplier is treated as 1.
func New(first view.Element, a attr.Attribute, rel Relation, second view.Item, b attr.Attribute, multiplier, constant float64) *Constraint {
	if multiplier == 0 {
		multiplier = 1
	}
	return &Constraint{
		FirstItem:       first,
		FirstAttribute:  a,
		Relation:        rel,
		SecondItem:      second,
		SecondAttribute: b,
		Multiplier:      multiplier,
		Constant:        constant,
		Priority:        Required,
	}
}

// State returns the lifecycle state.
func (c *Constraint) State() State { return c.state }

// IsInstalled reports whether the constraint is active in an engine.
func (c *Constraint) IsInstalled() bool { return c.state == Installed }

// Identify sets the identifier and returns c.
func (c *Constraint) Identify(name string) *Constraint {
	c.Identifier = name
	return c
}

// Affects reports whether either side of c references the item with id.
func (c *Constraint) Affects(id string) bool {
	if c.FirstItem != nil && c.FirstItem.ID() == id {
		return true
	}
	return c.SecondItem != nil && c.SecondItem.ID() == id
}

// IsDegenerate reports a required equality fixing a dimension to zero.
// Hosts deactivate these on their own; they are legal but worth a warning.
func (c *Constraint) IsDegenerate() bool {
	return c.SecondItem == nil && c.FirstAttribute.IsDimension() &&
		c.Relation == Equal && c.Constant == 0
}

// Validate checks the numeric fields and the attribute pairing.
func (c *Constraint) Validate() error {
	if c.FirstItem == nil {
		return lkerr.New(lkerr.ErrCodeInvalidInput, "constraint has no first item")
	}
	if !c.Relation.Valid() {
		return lkerr.New(lkerr.ErrCodeInvalidInput, "invalid relation %v", c.Relation)
	}
	if err := lkerr.ValidateMultiplier(c.Multiplier); err != nil {
		return err
	}
	if err := lkerr.ValidateConstant(c.Constant); err != nil {
		return err
	}
	if err := c.Priority.Validate(); err != nil {
		return err
	}
	if err := lkerr.ValidateIdentifier(c.Identifier); err != nil {
		return err
	}
	return CheckPairing(c.FirstItem, c.FirstAttribute, c.SecondItem, c.SecondAttribute)
}

// CheckPairing reports whether attribute a of first can be related to
// attribute b of second. second may be nil, in which case b must be
// attr.None and a must be a dimension.
func CheckPairing(first view.Item, a attr.Attribute, second view.Item, b attr.Attribute) error {
	if a == attr.None || a.Family() == attr.FamilyNone {
		return pairingErr(a, b, "first attribute is missing")
	}
	if !view.Supports(first, a) {
		return pairingErr(a, b, fmt.Sprintf("%s does not provide %s", first.ID(), a))
	}
	if second == nil {
		if b != attr.None {
			return pairingErr(a, b, "second attribute without a second item")
		}
		if !a.IsDimension() {
			return pairingErr(a, b, "only dimensions can be constants")
		}
		return nil
	}
	if b == attr.None || b.Family() == attr.FamilyNone {
		return pairingErr(a, b, "second attribute is missing")
	}
	if !view.Supports(second, b) {
		return pairingErr(a, b, fmt.Sprintf("%s does not provide %s", second.ID(), b))
	}

	switch {
	case a.IsDimension() && b.IsDimension():
		return nil
	case a.IsDimension() != b.IsDimension():
		return pairingErr(a, b, "a dimension cannot be related to a position")
	case a.Orientation() != b.Orientation():
		return pairingErr(a, b, "positions lie on different axes")
	case (a.IsDirectional() && b.IsAbsoluteHorizontal()) || (a.IsAbsoluteHorizontal() && b.IsDirectional()):
		return pairingErr(a, b, "leading/trailing cannot be mixed with left/right")
	}
	return nil
}

func pairingErr(a, b attr.Attribute, why string) error {
	return lkerr.New(lkerr.ErrCodeInvalidAttributePairing, "%s vs %s: %s", a, b, why)
}

// String renders the constraint as an equation, e.g.
// "title.top == root.top * 1 + 20 @750 [header]".
func (c *Constraint) String() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "%s.%s %s ", itemID(c.FirstItem), c.FirstAttribute, c.Relation)
	if c.SecondItem != nil {
		fmt.Fprintf(&sb, "%s.%s", c.SecondItem.ID(), c.SecondAttribute)
		if c.Multiplier != 1 {
			fmt.Fprintf(&sb, " * %s", formatFloat(c.Multiplier))
		}
		switch {
		case c.Constant > 0:
			fmt.Fprintf(&sb, " + %s", formatFloat(c.Constant))
		case c.Constant < 0:
			fmt.Fprintf(&sb, " - %s", formatFloat(-c.Constant))
		}
	} else {
		sb.WriteString(formatFloat(c.Constant))
	}
	if c.Priority != Required {
		fmt.Fprintf(&sb, " @%s", c.Priority)
	}
	if c.Identifier != "" {
		fmt.Fprintf(&sb, " [%s]", c.Identifier)
	}
	return sb.String()
}

func itemID(it view.Item) string {
	if it == nil {
		return "<nil>"
	}
	return it.ID()
}

func formatFloat(f float64) string {
	return strconv.FormatFloat(f, 'g', -1, 64)
}
