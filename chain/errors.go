package chain

import "errors"

// Sentinel errors returned by chain operations.
var (
	// ErrExtensionNotFound is returned by [Wrapper.Extend] when no extension
	// is registered under the requested name.
	ErrExtensionNotFound = errors.New("chain: extension not found")
)
