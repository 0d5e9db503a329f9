package constraint

import (
	"strings"

	lkerr "github.com/matzehuels/layoutkit/pkg/errors"
)

// Engine is the host layout engine boundary. Implementations receive
// batches in creation order and must preserve every descriptor field.
type Engine interface {
	Activate(cs []*Constraint) error
	Deactivate(cs []*Constraint) error
}

// Inspector is implemented by engines that can list their active
// constraints.
type Inspector interface {
	Active() []*Constraint
}

// Group is the ordered result of one factory call. The caller owns the
// group; lifecycle methods only change the state of its members.
type Group []*Constraint

// Identify tags every member with name and returns g.
func (g Group) Identify(name string) Group {
	for _, c := range g {
		c.Identifier = name
	}
	return g
}

// WithPriority sets the priority of every member and returns g. Changing
// the priority of an installed constraint is left to the host engine.
func (g Group) WithPriority(p Priority) Group {
	for _, c := range g {
		c.Priority = p
	}
	return g
}

// Identifiers returns the identifier of each member in order.
func (g Group) Identifiers() []string {
	out := make([]string, len(g))
	for i, c := range g {
		out[i] = c.Identifier
	}
	return out
}

// Installed reports whether every member is installed. An empty group is
// trivially installed.
func (g Group) Installed() bool {
	for _, c := range g {
		if !c.IsInstalled() {
			return false
		}
	}
	return true
}

// Filter returns the members for which keep returns true.
func (g Group) Filter(keep func(*Constraint) bool) Group {
	var out Group
	for _, c := range g {
		if keep(c) {
			out = append(out, c)
		}
	}
	return out
}

// unique returns the members for which keep returns true, each constraint
// at most once.
func (g Group) unique(keep func(*Constraint) bool) Group {
	seen := make(map[*Constraint]bool, len(g))
	return g.Filter(func(c *Constraint) bool {
		if seen[c] || !keep(c) {
			return false
		}
		seen[c] = true
		return true
	})
}

// Install activates every member that is not already installed. Members
// that are installed are skipped, so calling Install twice activates
// nothing the second time. A constraint listed twice is activated once.
// It returns the number of constraints activated.
func (g Group) Install(e Engine) (int, error) {
	pending := g.unique(func(c *Constraint) bool { return !c.IsInstalled() })
	if len(pending) == 0 {
		return 0, nil
	}
	if e == nil {
		return 0, lkerr.New(lkerr.ErrCodeInvalidInput, "no engine to install %d constraints into", len(pending))
	}
	if err := e.Activate(pending); err != nil {
		return 0, lkerr.Wrap(lkerr.ErrCodeInternal, err, "activate %d constraints", len(pending))
	}
	for _, c := range pending {
		c.state = Installed
	}
	return len(pending), nil
}

// Remove deactivates every installed member. Constructed and removed
// members are skipped. Removed constraints keep their descriptors and can
// be installed again.
func (g Group) Remove(e Engine) (int, error) {
	active := g.unique((*Constraint).IsInstalled)
	if len(active) == 0 {
		return 0, nil
	}
	if e == nil {
		return 0, lkerr.New(lkerr.ErrCodeInvalidInput, "no engine to remove %d constraints from", len(active))
	}
	if err := e.Deactivate(active); err != nil {
		return 0, lkerr.Wrap(lkerr.ErrCodeInternal, err, "deactivate %d constraints", len(active))
	}
	for _, c := range active {
		c.state = Removed
	}
	return len(active), nil
}

// String renders one constraint per line.
func (g Group) String() string {
	lines := make([]string, len(g))
	for i, c := range g {
		lines[i] = c.String()
	}
	return strings.Join(lines, "\n")
}
