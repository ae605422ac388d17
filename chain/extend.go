package chain

import (
	"fmt"
	"sync"
)

// ExtensionFunc is the function signature for a registered extension.
//
// The evaluated slice is passed as an any (interface{}) so that extensions
// can be registered once and used across any Wrapper[T] instantiation.
// Type-assert inside the extension to the concrete []YourType.
type ExtensionFunc func(items any, args ...any) any

// extensionRegistry is the package-level, goroutine-safe dispatch map.
// Extensions are registered explicitly by name; the compiled method set of
// [Wrapper] itself is closed.
var extensionRegistry struct {
	mu   sync.RWMutex
	fns  map[string]ExtensionFunc
	once sync.Once
}

func registryInit() {
	extensionRegistry.fns = make(map[string]ExtensionFunc)
}

// RegisterExtension adds a named extension to the global registry.
// If an extension with that name already exists it is replaced.
// Safe to call from multiple goroutines.
//
// Example — register an extension that keeps only even integers:
//
//	chain.RegisterExtension("evens", func(items any, _ ...any) any {
//	    ns := items.([]int)
//	    return arr.Filter(ns, func(n, _ int) bool { return n%2 == 0 })
//	})
//
//	res, _ := chain.New(1, 2, 3, 4, 5).Extend("evens") // []int{2, 4}
func RegisterExtension(name string, fn ExtensionFunc) {
	extensionRegistry.once.Do(registryInit)
	extensionRegistry.mu.Lock()
	defer extensionRegistry.mu.Unlock()
	extensionRegistry.fns[name] = fn
}

// HasExtension reports whether an extension with the given name is registered.
func HasExtension(name string) bool {
	extensionRegistry.once.Do(registryInit)
	extensionRegistry.mu.RLock()
	defer extensionRegistry.mu.RUnlock()
	_, ok := extensionRegistry.fns[name]
	return ok
}

// FlushExtensions removes all registered extensions.
// Intended for use in tests.
func FlushExtensions() {
	extensionRegistry.once.Do(registryInit)
	extensionRegistry.mu.Lock()
	defer extensionRegistry.mu.Unlock()
	extensionRegistry.fns = make(map[string]ExtensionFunc)
}

// Extend evaluates the wrapper and calls the named registered extension with
// the materialised []T and the given args.
//
// Returns (nil, [ErrExtensionNotFound]) if no extension is registered under
// name. When the wrapper is explicitly chained and the extension returns a
// []T, the result is re-wrapped (as a chained *Wrapper[T]); in every other
// case the extension's return value is passed through unwrapped.
func (w *Wrapper[T]) Extend(name string, args ...any) (any, error) {
	extensionRegistry.once.Do(registryInit)
	extensionRegistry.mu.RLock()
	fn, ok := extensionRegistry.fns[name]
	extensionRegistry.mu.RUnlock()
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrExtensionNotFound, name)
	}
	out := fn(any(w.Value()), args...)
	if w.chainAll {
		if items, ok := out.([]T); ok {
			return Chain(items), nil
		}
	}
	return out, nil
}
