// Package scope provides nestable defaults for the priority and identifier
// of constraints created while a scope is active.
//
// Priority frames and identifier frames are separate stacks: the innermost
// frame of each kind wins, independently of the other. With no frame the
// priority is [constraint.Required] and there is no identifier.
//
// A [Stack] is owned by one builder (or carried in a context.Context) and is
// never shared process-wide. Prefer the scoped forms, which release their
// frame on every exit path:
//
//	err := s.WithPriority(constraint.DefaultHigh, func() error {
//	    _, err := b.PinEdgeToSuperviewEdge(v, attr.EdgeTop, 20, constraint.Equal)
//	    return err
//	})
package scope

import (
	"context"

	"github.com/matzehuels/layoutkit/pkg/constraint"
)

// Stack holds the active priority and identifier frames.
// The zero value is an empty stack ready to use. Stack is not safe for
// concurrent use.
type Stack struct {
	priorities  []constraint.Priority
	identifiers []string
}

// New returns an empty stack.
func New() *Stack { return &Stack{} }

// PushPriority adds a priority frame and returns a function that restores
// the stack to the depth it had before the push. The release function is
// safe to call more than once and after manual pops.
func (s *Stack) PushPriority(p constraint.Priority) (release func()) {
	depth := len(s.priorities)
	s.priorities = append(s.priorities, p)
	return func() {
		if len(s.priorities) > depth {
			s.priorities = s.priorities[:depth]
		}
	}
}

// PopPriority removes the innermost priority frame. It reports false when
// there was none.
func (s *Stack) PopPriority() bool {
	if len(s.priorities) == 0 {
		return false
	}
	s.priorities = s.priorities[:len(s.priorities)-1]
	return true
}

// PushIdentifier adds an identifier frame. See [Stack.PushPriority].
func (s *Stack) PushIdentifier(id string) (release func()) {
	depth := len(s.identifiers)
	s.identifiers = append(s.identifiers, id)
	return func() {
		if len(s.identifiers) > depth {
			s.identifiers = s.identifiers[:depth]
		}
	}
}

// PopIdentifier removes the innermost identifier frame.
func (s *Stack) PopIdentifier() bool {
	if len(s.identifiers) == 0 {
		return false
	}
	s.identifiers = s.identifiers[:len(s.identifiers)-1]
	return true
}

// WithPriority runs fn with p as the innermost priority. The frame is
// released when fn returns, fails or panics.
func (s *Stack) WithPriority(p constraint.Priority, fn func() error) error {
	if err := p.Validate(); err != nil {
		return err
	}
	release := s.PushPriority(p)
	defer release()
	return fn()
}

// WithIdentifier runs fn with id as the innermost identifier.
func (s *Stack) WithIdentifier(id string, fn func() error) error {
	release := s.PushIdentifier(id)
	defer release()
	return fn()
}

// Priority returns the innermost priority, or Required.
func (s *Stack) Priority() constraint.Priority {
	if len(s.priorities) == 0 {
		return constraint.Required
	}
	return s.priorities[len(s.priorities)-1]
}

// HasPriority reports whether any priority frame is active.
func (s *Stack) HasPriority() bool { return len(s.priorities) > 0 }

// Identifier returns the innermost identifier and whether one is set.
func (s *Stack) Identifier() (string, bool) {
	if len(s.identifiers) == 0 {
		return "", false
	}
	return s.identifiers[len(s.identifiers)-1], true
}

// Depth returns the number of priority and identifier frames.
func (s *Stack) Depth() (priorities, identifiers int) {
	return len(s.priorities), len(s.identifiers)
}

// Apply fills c's unset priority and identifier from the innermost
// frames. A priority or identifier already on c wins over the stack.
func (s *Stack) Apply(c *constraint.Constraint) {
	if c.Priority == 0 {
		c.Priority = s.Priority()
	}
	if c.Identifier == "" {
		if id, ok := s.Identifier(); ok {
			c.Identifier = id
		}
	}
}

type ctxKey struct{}

// NewContext returns a context carrying s.
func NewContext(ctx context.Context, s *Stack) context.Context {
	return context.WithValue(ctx, ctxKey{}, s)
}

// FromContext returns the stack stored in ctx, or nil.
func FromContext(ctx context.Context) *Stack {
	s, _ := ctx.Value(ctxKey{}).(*Stack)
	return s
}
