// Package observability provides hooks for metrics, tracing, and logging.
//
// This package enables optional instrumentation without adding hard
// dependencies on specific observability backends. Consumers can register
// hooks at startup to receive events about copy operations, entry
// extraction, and graph rendering.
//
// # Architecture
//
// The package uses a simple hooks pattern:
//   - Define hook interfaces for different event categories
//   - Provide no-op default implementations
//   - Allow registration of custom implementations at startup
//
// This approach:
//   - Avoids import cycles (hooks are registered by main, not by libraries)
//   - Keeps the core library dependency-free from observability frameworks
//   - Allows different backends (OpenTelemetry, Prometheus, DataDog, etc.)
//
// # Usage
//
// Register hooks at application startup:
//
//	func main() {
//	    observability.SetCopyHooks(&myCopyHooks{})
//	    observability.SetExtractHooks(&myExtractHooks{})
//	    // ... run application
//	}
package observability

import (
	"sync"
	"time"
)

// =============================================================================
// Copy Hooks
// =============================================================================

// CopyHooks receives events from the copy engine.
type CopyHooks interface {
	// OnCopyStart records the beginning of a top-level copy call.
	OnCopyStart(kind string, freeze bool)

	// OnCopyComplete records a finished top-level copy call.
	OnCopyComplete(kind string, duration time.Duration)

	// OnCycleDetected records a truncated branch, with the traversal
	// path at the point of detection.
	OnCycleDetected(path []string)

	// OnDepthLimit records a branch shared by reference because the
	// depth bound or the stack ceiling was reached.
	OnDepthLimit(path []string)

	// OnFreeze records a value locked into its frozen form.
	OnFreeze(kind string)
}

// =============================================================================
// Extract Hooks
// =============================================================================

// ExtractHooks receives events from entry extraction.
type ExtractHooks interface {
	// OnExtract records one extraction pass over a value.
	OnExtract(kind string, entryCount int)

	// OnEntryDropped records an entry filtered out during extraction
	// (denied name, nil value, duplicate, or failed access).
	OnEntryDropped(kind, name, reason string)
}

// =============================================================================
// Render Hooks
// =============================================================================

// RenderHooks receives events from object-graph rendering.
type RenderHooks interface {
	// OnRenderStart records the beginning of a render.
	OnRenderStart(format string)

	// OnRenderComplete records a finished render.
	OnRenderComplete(format string, nodeCount int, duration time.Duration, err error)
}

// =============================================================================
// No-op Implementations
// =============================================================================

// NoopCopyHooks is a no-op implementation of CopyHooks.
type NoopCopyHooks struct{}

func (NoopCopyHooks) OnCopyStart(string, bool)             {}
func (NoopCopyHooks) OnCopyComplete(string, time.Duration) {}
func (NoopCopyHooks) OnCycleDetected([]string)             {}
func (NoopCopyHooks) OnDepthLimit([]string)                {}
func (NoopCopyHooks) OnFreeze(string)                      {}

// NoopExtractHooks is a no-op implementation of ExtractHooks.
type NoopExtractHooks struct{}

func (NoopExtractHooks) OnExtract(string, int)                 {}
func (NoopExtractHooks) OnEntryDropped(string, string, string) {}

// NoopRenderHooks is a no-op implementation of RenderHooks.
type NoopRenderHooks struct{}

func (NoopRenderHooks) OnRenderStart(string)                               {}
func (NoopRenderHooks) OnRenderComplete(string, int, time.Duration, error) {}

// =============================================================================
// Global Hook Registry
// =============================================================================

var (
	copyHooks    CopyHooks    = NoopCopyHooks{}
	extractHooks ExtractHooks = NoopExtractHooks{}
	renderHooks  RenderHooks  = NoopRenderHooks{}
	hooksMu      sync.RWMutex
)

// SetCopyHooks registers custom copy hooks.
// This should be called once at application startup before any copy operations.
func SetCopyHooks(h CopyHooks) {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	if h != nil {
		copyHooks = h
	}
}

// SetExtractHooks registers custom extraction hooks.
// This should be called once at application startup before any extraction.
func SetExtractHooks(h ExtractHooks) {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	if h != nil {
		extractHooks = h
	}
}

// SetRenderHooks registers custom render hooks.
// This should be called once at application startup before any rendering.
func SetRenderHooks(h RenderHooks) {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	if h != nil {
		renderHooks = h
	}
}

// Copy returns the registered copy hooks.
func Copy() CopyHooks {
	hooksMu.RLock()
	defer hooksMu.RUnlock()
	return copyHooks
}

// Extract returns the registered extraction hooks.
func Extract() ExtractHooks {
	hooksMu.RLock()
	defer hooksMu.RUnlock()
	return extractHooks
}

// Render returns the registered render hooks.
func Render() RenderHooks {
	hooksMu.RLock()
	defer hooksMu.RUnlock()
	return renderHooks
}

// Reset restores all hooks to their no-op defaults.
// This is primarily useful for testing.
func Reset() {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	copyHooks = NoopCopyHooks{}
	extractHooks = NoopExtractHooks{}
	renderHooks = NoopRenderHooks{}
}
