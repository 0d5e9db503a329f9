package scope

import (
	"context"
	"errors"
	"testing"

	"github.com/matzehuels/layoutkit/pkg/constraint"
	lkerr "github.com/matzehuels/layoutkit/pkg/errors"
)

func TestNestedPriorities(t *testing.T) {
	s := New()

	releaseOuter := s.PushPriority(500)
	releaseInner := s.PushPriority(300)
	if got := s.Priority(); got != 300 {
		t.Errorf("Priority() = %v, want 300", got)
	}
	releaseInner()
	if got := s.Priority(); got != 500 {
		t.Errorf("Priority() = %v, want 500", got)
	}
	releaseOuter()
	if got := s.Priority(); got != constraint.Required {
		t.Errorf("Priority() = %v, want required", got)
	}
	if s.HasPriority() {
		t.Error("HasPriority() = true on empty stack")
	}
}

func TestPopPriority(t *testing.T) {
	s := New()
	if s.PopPriority() {
		t.Error("PopPriority() on empty stack = true")
	}
	s.PushPriority(100)
	s.PushPriority(200)
	if !s.PopPriority() {
		t.Error("PopPriority() = false")
	}
	if got := s.Priority(); got != 100 {
		t.Errorf("Priority() = %v, want 100", got)
	}
}

func TestReleaseAfterManualPop(t *testing.T) {
	s := New()
	s.PushPriority(100)
	release := s.PushPriority(200)
	s.PopPriority()
	s.PushPriority(300)

	release()
	if p, _ := s.Depth(); p != 1 {
		t.Errorf("priority depth = %d, want 1", p)
	}
	release()
	if got := s.Priority(); got != 100 {
		t.Errorf("Priority() = %v, want 100", got)
	}
}

func TestIndependentKinds(t *testing.T) {
	s := New()
	err := s.WithIdentifier("outer", func() error {
		return s.WithPriority(constraint.DefaultLow, func() error {
			if _, ok := s.Identifier(); !ok {
				t.Error("identifier lost inside priority scope")
			}
			return s.WithIdentifier("inner", func() error {
				id, _ := s.Identifier()
				if id != "inner" {
					t.Errorf("Identifier() = %q, want inner", id)
				}
				if s.Priority() != constraint.DefaultLow {
					t.Errorf("Priority() = %v, want 250", s.Priority())
				}
				return nil
			})
		})
	})
	if err != nil {
		t.Fatal(err)
	}
	if p, i := s.Depth(); p != 0 || i != 0 {
		t.Errorf("Depth() = %d, %d; want 0, 0", p, i)
	}
}

func TestWithPriorityReleasesOnError(t *testing.T) {
	s := New()
	boom := errors.New("boom")
	err := s.WithPriority(600, func() error { return boom })
	if !errors.Is(err, boom) {
		t.Errorf("WithPriority() error = %v, want boom", err)
	}
	if s.HasPriority() {
		t.Error("frame leaked after error")
	}
}

func TestWithPriorityReleasesOnPanic(t *testing.T) {
	s := New()
	func() {
		defer func() { _ = recover() }()
		_ = s.WithPriority(600, func() error { panic("boom") })
	}()
	if s.HasPriority() {
		t.Error("frame leaked after panic")
	}
}

func TestWithPriorityRejectsInvalid(t *testing.T) {
	s := New()
	called := false
	err := s.WithPriority(0, func() error { called = true; return nil })
	if !lkerr.Is(err, lkerr.ErrCodeInvalidPriority) {
		t.Errorf("WithPriority(0) error = %v, want INVALID_PRIORITY", err)
	}
	if called {
		t.Error("fn called for invalid priority")
	}
}

func TestApply(t *testing.T) {
	s := New()
	c := &constraint.Constraint{}
	s.Apply(c)
	if c.Priority != constraint.Required || c.Identifier != "" {
		t.Errorf("Apply() on empty stack = %v %q", c.Priority, c.Identifier)
	}

	defer s.PushPriority(42)()
	defer s.PushIdentifier("tag")()
	c = &constraint.Constraint{}
	s.Apply(c)
	if c.Priority != 42 || c.Identifier != "tag" {
		t.Errorf("Apply() = %v %q, want 42 tag", c.Priority, c.Identifier)
	}

	explicit := &constraint.Constraint{Priority: 900, Identifier: "own"}
	s.Apply(explicit)
	if explicit.Priority != 900 || explicit.Identifier != "own" {
		t.Errorf("Apply() over explicit = %v %q, want 900 own", explicit.Priority, explicit.Identifier)
	}
}

func TestContext(t *testing.T) {
	s := New()
	ctx := NewContext(context.Background(), s)
	if FromContext(ctx) != s {
		t.Error("FromContext() did not return stored stack")
	}
	if FromContext(context.Background()) != nil {
		t.Error("FromContext(empty) != nil")
	}
}
