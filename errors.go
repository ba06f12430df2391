package beetree

import "errors"

var (
	// ErrInvalidConfig signals an invalid map configuration.
	ErrInvalidConfig = errors.New("beetree: invalid configuration")
	// ErrInvariant signals a broken structural invariant, as reported by Check.
	ErrInvariant = errors.New("beetree: invariant violated")
	// ErrUnimplemented marks API stubs that are intentionally not implemented yet.
	ErrUnimplemented = errors.New("beetree: operation not implemented")
)
