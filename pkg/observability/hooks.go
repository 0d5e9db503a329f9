// Package observability provides hooks for metrics, tracing, and logging.
//
// This package enables optional instrumentation without adding hard dependencies
// on specific observability backends. Consumers can register hooks at startup
// to receive events about constraint construction, installation, and the
// host engine.
//
// # Architecture
//
// The package uses a simple hooks pattern:
//   - Define hook interfaces for different event categories
//   - Provide no-op default implementations
//   - Allow registration of custom implementations at startup
//
// # Usage
//
// Register hooks at application startup:
//
//	func main() {
//	    observability.SetLayoutHooks(&myLayoutHooks{})
//	    observability.SetEngineHooks(&myEngineHooks{})
//	    // ... run application
//	}
//
// Libraries call hooks to emit events:
//
//	start := time.Now()
//	n, err := group.Install(engine)
//	observability.Layout().OnInstall(n, time.Since(start), err)
package observability

import (
	"sync"
	"time"
)

// =============================================================================
// Layout Hooks
// =============================================================================

// LayoutHooks receives events from the constraint factory and lifecycle.
type LayoutHooks interface {
	// OnCreate records one factory operation and the number of
	// constraints it produced. err is set when validation failed.
	OnCreate(op string, count int, err error)

	// OnInstall records a batch activation.
	OnInstall(count int, duration time.Duration, err error)

	// OnRemove records a batch deactivation.
	OnRemove(count int, duration time.Duration, err error)
}

// =============================================================================
// Engine Hooks
// =============================================================================

// EngineHooks receives events from host engine implementations.
type EngineHooks interface {
	// OnActivate records the size of the active set after an activation.
	OnActivate(batch, active int)

	// OnDeactivate records the size of the active set after a deactivation.
	OnDeactivate(batch, active int)

	// OnConflict records a pair of required constraints that cannot both
	// hold.
	OnConflict(a, b string)
}

// =============================================================================
// No-op Implementations
// =============================================================================

// NoopLayoutHooks is a no-op implementation of LayoutHooks.
type NoopLayoutHooks struct{}

func (NoopLayoutHooks) OnCreate(string, int, error)         {}
func (NoopLayoutHooks) OnInstall(int, time.Duration, error) {}
func (NoopLayoutHooks) OnRemove(int, time.Duration, error)  {}

// NoopEngineHooks is a no-op implementation of EngineHooks.
type NoopEngineHooks struct{}

func (NoopEngineHooks) OnActivate(int, int)       {}
func (NoopEngineHooks) OnDeactivate(int, int)     {}
func (NoopEngineHooks) OnConflict(string, string) {}

// =============================================================================
// Global Hook Registry
// =============================================================================

var (
	layoutHooks LayoutHooks = NoopLayoutHooks{}
	engineHooks EngineHooks = NoopEngineHooks{}
	hooksMu     sync.RWMutex
)

// SetLayoutHooks registers custom layout hooks.
// This should be called once at application startup before building constraints.
func SetLayoutHooks(h LayoutHooks) {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	if h != nil {
		layoutHooks = h
	}
}

// SetEngineHooks registers custom engine hooks.
func SetEngineHooks(h EngineHooks) {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	if h != nil {
		engineHooks = h
	}
}

// Layout returns the registered layout hooks.
func Layout() LayoutHooks {
	hooksMu.RLock()
	defer hooksMu.RUnlock()
	return layoutHooks
}

// Engine returns the registered engine hooks.
func Engine() EngineHooks {
	hooksMu.RLock()
	defer hooksMu.RUnlock()
	return engineHooks
}

// Reset restores all hooks to their no-op defaults.
// This is primarily useful for testing.
func Reset() {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	layoutHooks = NoopLayoutHooks{}
	engineHooks = NoopEngineHooks{}
}
