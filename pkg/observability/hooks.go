// Package observability provides hooks for metrics, tracing, and logging.
//
// This package enables optional instrumentation without adding hard
// dependencies on specific observability backends. Consumers can register
// hooks at startup to receive events about layout computation and message
// dispatch.
//
// # Architecture
//
// The package uses a simple hooks pattern:
//   - Define hook interfaces for different event categories
//   - Provide no-op default implementations
//   - Allow registration of custom implementations at startup
//
// This keeps the layout core dependency-free from observability frameworks
// while allowing different backends (a structured logger, OpenTelemetry,
// Prometheus, ...) to be plugged in by main.
//
// # Usage
//
// Register hooks at application startup:
//
//	func main() {
//	    observability.SetLayoutHooks(&myLayoutHooks{})
//	    // ... run application
//	}
//
// The workspace layer calls hooks to emit events:
//
//	observability.Layouts().OnLayoutStart(ws, name, clients)
//	// ... compute placements ...
//	observability.Layouts().OnLayoutComplete(ws, name, placed, duration)
package observability

import (
	"sync"
	"time"
)

// =============================================================================
// Layout Hooks
// =============================================================================

// LayoutHooks receives events from placement computation.
type LayoutHooks interface {
	// OnLayoutStart records the beginning of a placement computation for
	// the given workspace, layout name, and client count.
	OnLayoutStart(workspace, layout string, clients int)

	// OnLayoutComplete records a finished computation: how many clients
	// received placements and how long the computation took.
	OnLayoutComplete(workspace, layout string, placed int, duration time.Duration)

	// OnLayoutReplaced records that a workspace adopted a replacement
	// layout returned by the previous active one.
	OnLayoutReplaced(workspace, previous, next string)
}

// =============================================================================
// Message Hooks
// =============================================================================

// MessageHooks receives events from runtime command dispatch.
type MessageHooks interface {
	// OnMessage records a command delivered to a workspace's active
	// layout. kind is the concrete type name of the message body.
	OnMessage(workspace, layout, kind string)
}

// =============================================================================
// No-op Implementations
// =============================================================================

// NoopLayoutHooks is a no-op implementation of LayoutHooks.
type NoopLayoutHooks struct{}

func (NoopLayoutHooks) OnLayoutStart(string, string, int)                   {}
func (NoopLayoutHooks) OnLayoutComplete(string, string, int, time.Duration) {}
func (NoopLayoutHooks) OnLayoutReplaced(string, string, string)             {}

// NoopMessageHooks is a no-op implementation of MessageHooks.
type NoopMessageHooks struct{}

func (NoopMessageHooks) OnMessage(string, string, string) {}

// =============================================================================
// Global Hook Registry
// =============================================================================

var (
	layoutHooks  LayoutHooks  = NoopLayoutHooks{}
	messageHooks MessageHooks = NoopMessageHooks{}
	hooksMu      sync.RWMutex
)

// SetLayoutHooks registers custom layout hooks.
// This should be called once at application startup before any layout
// operations.
func SetLayoutHooks(h LayoutHooks) {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	if h != nil {
		layoutHooks = h
	}
}

// SetMessageHooks registers custom message hooks.
// This should be called once at application startup before any message
// dispatch.
func SetMessageHooks(h MessageHooks) {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	if h != nil {
		messageHooks = h
	}
}

// Layouts returns the registered layout hooks.
func Layouts() LayoutHooks {
	hooksMu.RLock()
	defer hooksMu.RUnlock()
	return layoutHooks
}

// Messages returns the registered message hooks.
func Messages() MessageHooks {
	hooksMu.RLock()
	defer hooksMu.RUnlock()
	return messageHooks
}

// Reset restores all hooks to their no-op defaults.
// This is primarily useful for testing.
func Reset() {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	layoutHooks = NoopLayoutHooks{}
	messageHooks = NoopMessageHooks{}
}
