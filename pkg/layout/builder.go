package layout

import (
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/layoutkit/pkg/constraint"
	lkerr "github.com/matzehuels/layoutkit/pkg/errors"
	"github.com/matzehuels/layoutkit/pkg/observability"
	"github.com/matzehuels/layoutkit/pkg/scope"
	"github.com/matzehuels/layoutkit/pkg/view"
)

// Builder is the constraint factory. It owns the priority/identifier scope
// for one view hierarchy and hands finished groups to a host engine.
//
// Builder is not safe for concurrent use; use one per hierarchy, on the
// goroutine that owns it.
type Builder struct {
	engine   constraint.Engine
	logger   *log.Logger
	scope    *scope.Stack
	captures []*capture
}

// Option configures a Builder.
type Option func(*Builder)

// WithLogger sets the logger. The default discards everything.
func WithLogger(l *log.Logger) Option {
	return func(b *Builder) {
		if l != nil {
			b.logger = l
		}
	}
}

// WithScope makes the builder read defaults from s instead of a private
// stack.
func WithScope(s *scope.Stack) Option {
	return func(b *Builder) {
		if s != nil {
			b.scope = s
		}
	}
}

// New returns a builder that installs into e. A nil engine is allowed as
// long as every operation runs inside [Builder.CreateWithoutInstalling].
func New(e constraint.Engine, opts ...Option) *Builder {
	b := &Builder{
		engine: e,
		logger: log.New(io.Discard),
		scope:  scope.New(),
	}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// Engine returns the engine constraints are installed into.
func (b *Builder) Engine() constraint.Engine { return b.engine }

// Scope returns the builder's priority/identifier stack.
func (b *Builder) Scope() *scope.Stack { return b.scope }

// WithPriority runs fn with p as the default priority of every constraint
// it creates.
func (b *Builder) WithPriority(p constraint.Priority, fn func() error) error {
	return b.scope.WithPriority(p, fn)
}

// WithIdentifier runs fn with id as the default identifier.
func (b *Builder) WithIdentifier(id string, fn func() error) error {
	return b.scope.WithIdentifier(id, fn)
}

// Install activates every member of g that is not installed yet.
func (b *Builder) Install(g constraint.Group) error {
	start := time.Now()
	n, err := g.Install(b.engine)
	observability.Layout().OnInstall(n, time.Since(start), err)
	if err != nil {
		b.logger.Error("install failed", "count", len(g), "err", err)
		return err
	}
	b.logger.Debug("installed", "count", n)
	return nil
}

// Remove deactivates every installed member of g.
func (b *Builder) Remove(g constraint.Group) error {
	start := time.Now()
	n, err := g.Remove(b.engine)
	observability.Layout().OnRemove(n, time.Since(start), err)
	if err != nil {
		b.logger.Error("remove failed", "count", len(g), "err", err)
		return err
	}
	b.logger.Debug("removed", "count", n)
	return nil
}

// RemoveConstraintsAffecting deactivates every active constraint that
// references e on either side. The engine must implement
// [constraint.Inspector].
func (b *Builder) RemoveConstraintsAffecting(e view.Element) (constraint.Group, error) {
	if view.IsNil(e) {
		return nil, b.fail("remove-affecting", lkerr.New(lkerr.ErrCodeInvalidInput, "element is nil"))
	}
	return b.removeAffecting(func(c *constraint.Constraint) bool { return c.Affects(e.ID()) })
}

// RemoveConstraintsAffectingSubtree is like [Builder.RemoveConstraintsAffecting]
// for e and all of its descendants.
func (b *Builder) RemoveConstraintsAffectingSubtree(e view.Element) (constraint.Group, error) {
	if view.IsNil(e) {
		return nil, b.fail("remove-affecting", lkerr.New(lkerr.ErrCodeInvalidInput, "element is nil"))
	}
	ids := make(map[string]struct{})
	view.Walk(e, func(v view.Element, _ int) bool {
		ids[v.ID()] = struct{}{}
		return true
	})
	return b.removeAffecting(func(c *constraint.Constraint) bool {
		if _, ok := ids[c.FirstItem.ID()]; ok {
			return true
		}
		if c.SecondItem == nil {
			return false
		}
		_, ok := ids[c.SecondItem.ID()]
		return ok
	})
}

func (b *Builder) removeAffecting(match func(*constraint.Constraint) bool) (constraint.Group, error) {
	in, ok := b.engine.(constraint.Inspector)
	if !ok {
		return nil, lkerr.New(lkerr.ErrCodeUnsupported, "engine cannot list active constraints")
	}
	g := constraint.Group(in.Active()).Filter(match)
	if err := b.Remove(g); err != nil {
		return nil, err
	}
	return g, nil
}

// emit is the single commit path for every factory operation. All members
// are validated before anything is recorded or installed, so a failed
// precondition produces nothing. An engine error during install comes
// later: by then first items are prepared and active captures hold the
// group, which is returned along with the error.
func (b *Builder) emit(op string, g constraint.Group) (constraint.Group, error) {
	for _, c := range g {
		b.scope.Apply(c)
	}
	for _, c := range g {
		if err := c.Validate(); err != nil {
			observability.Layout().OnCreate(op, 0, err)
			b.logger.Debug("rejected", "op", op, "err", err)
			return nil, err
		}
	}
	for _, c := range g {
		if c.IsDegenerate() {
			b.logger.Warn("zero-size equality will be ignored by the host engine", "constraint", c.String())
		}
		view.Prepare(c.FirstItem)
	}

	for _, cp := range b.captures {
		cp.group = append(cp.group, g...)
	}
	observability.Layout().OnCreate(op, len(g), nil)
	b.logger.Debug("created", "op", op, "count", len(g))

	if !b.installing() {
		return g, nil
	}
	if err := b.Install(g); err != nil {
		return g, err
	}
	return g, nil
}

// fail reports a precondition failure for op.
func (b *Builder) fail(op string, err error) error {
	observability.Layout().OnCreate(op, 0, err)
	b.logger.Debug("rejected", "op", op, "err", err)
	return err
}

// one unwraps the single member of a group produced by a one-constraint
// operation.
func one(g constraint.Group, err error) (*constraint.Constraint, error) {
	if len(g) == 0 {
		return nil, err
	}
	return g[0], err
}
