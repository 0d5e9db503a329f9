// Package engine provides an in-memory host layout engine.
//
// [Memory] stands in for a platform's constraint solver: it keeps the set of
// active constraints, counts activations and deactivations, and reports
// obvious conflicts between required equalities. It never solves anything.
// Tests, the blueprint loader and the CLI all install into it.
package engine

import (
	"io"
	"slices"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/layoutkit/pkg/constraint"
	lkerr "github.com/matzehuels/layoutkit/pkg/errors"
	"github.com/matzehuels/layoutkit/pkg/observability"
)

// Memory is an in-memory [constraint.Engine] and [constraint.Inspector].
// It is not safe for concurrent use.
type Memory struct {
	logger        *log.Logger
	active        []*constraint.Constraint
	activations   int
	deactivations int
	batches       int
}

// Option configures a Memory engine.
type Option func(*Memory)

// WithLogger sets the logger used for activation traces.
func WithLogger(l *log.Logger) Option {
	return func(m *Memory) {
		if l != nil {
			m.logger = l
		}
	}
}

// NewMemory returns an empty engine.
func NewMemory(opts ...Option) *Memory {
	m := &Memory{logger: log.New(io.Discard)}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

var (
	_ constraint.Engine    = (*Memory)(nil)
	_ constraint.Inspector = (*Memory)(nil)
)

// Activate adds cs to the active set. Activating a constraint that is
// already active, or listing one twice in cs, is an error: the lifecycle
// layer is expected to filter installed constraints out.
func (m *Memory) Activate(cs []*constraint.Constraint) error {
	batch := make(map[*constraint.Constraint]bool, len(cs))
	for _, c := range cs {
		if c == nil {
			return lkerr.New(lkerr.ErrCodeInvalidInput, "cannot activate nil constraint")
		}
		if m.IsActive(c) || batch[c] {
			return lkerr.New(lkerr.ErrCodeInternal, "constraint %s is already active", c)
		}
		batch[c] = true
	}
	m.active = append(m.active, cs...)
	m.activations += len(cs)
	m.batches++
	m.logger.Debug("activate", "count", len(cs), "active", len(m.active))
	observability.Engine().OnActivate(len(cs), len(m.active))

	for _, c := range cs {
		for _, other := range m.active {
			if other != c && conflicting(c, other) {
				m.logger.Warn("conflicting required constraints", "a", other.String(), "b", c.String())
				observability.Engine().OnConflict(other.String(), c.String())
			}
		}
	}
	return nil
}

// Deactivate drops cs from the active set. Unknown constraints are ignored.
func (m *Memory) Deactivate(cs []*constraint.Constraint) error {
	before := len(m.active)
	m.active = slices.DeleteFunc(m.active, func(c *constraint.Constraint) bool {
		return slices.Contains(cs, c)
	})
	removed := before - len(m.active)
	m.deactivations += removed
	m.batches++
	m.logger.Debug("deactivate", "count", removed, "active", len(m.active))
	observability.Engine().OnDeactivate(removed, len(m.active))
	return nil
}

// Active returns a copy of the active set in activation order.
func (m *Memory) Active() []*constraint.Constraint {
	return slices.Clone(m.active)
}

// IsActive reports whether c is in the active set.
func (m *Memory) IsActive(c *constraint.Constraint) bool {
	return slices.Contains(m.active, c)
}

// Stats describes engine traffic since creation.
type Stats struct {
	Active        int `json:"active"`
	Activations   int `json:"activations"`
	Deactivations int `json:"deactivations"`
	Batches       int `json:"batches"`
}

// Stats returns activation counters.
func (m *Memory) Stats() Stats {
	return Stats{
		Active:        len(m.active),
		Activations:   m.activations,
		Deactivations: m.deactivations,
		Batches:       m.batches,
	}
}

// Conflict is a pair of active required constraints that cannot both hold.
type Conflict struct {
	A, B *constraint.Constraint
}

// Conflicts lists pairs of active required equalities over the same
// expression with different constants. This is the diagnostic a host solver
// would print at layout time; it is not an exhaustive satisfiability check.
func (m *Memory) Conflicts() []Conflict {
	var out []Conflict
	for i, a := range m.active {
		for _, b := range m.active[i+1:] {
			if conflicting(a, b) {
				out = append(out, Conflict{A: a, B: b})
			}
		}
	}
	return out
}

func conflicting(a, b *constraint.Constraint) bool {
	if a.Priority != constraint.Required || b.Priority != constraint.Required {
		return false
	}
	if a.Relation != constraint.Equal || b.Relation != constraint.Equal {
		return false
	}
	if a.FirstItem.ID() != b.FirstItem.ID() || a.FirstAttribute != b.FirstAttribute {
		return false
	}
	if (a.SecondItem == nil) != (b.SecondItem == nil) {
		return false
	}
	if a.SecondItem != nil && (a.SecondItem.ID() != b.SecondItem.ID() || a.SecondAttribute != b.SecondAttribute) {
		return false
	}
	return a.Multiplier == b.Multiplier && a.Constant != b.Constant
}
