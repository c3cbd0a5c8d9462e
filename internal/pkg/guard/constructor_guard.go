// Package guard provides a constructor guard for value objects and commands.
// Embedding a ConstructorGuard in a struct makes it possible to detect whether
// the struct was produced by its constructor or is an unvalidated zero value.
package guard

import "errors"

// ErrDefaultConstructorGuard is returned by Validate when the guard belongs to
// a zero-value struct and no specific error was supplied.
var ErrDefaultConstructorGuard = errors.New("object must be created via its constructor")

// ConstructorGuard marks a struct as having passed through its constructor.
// The zero value fails Validate, so structs created by direct literal
// initialization are rejected wherever Validate is checked.
type ConstructorGuard struct {
	isConstructed bool
}

// NewConstructorGuard creates a guard in the constructed state.
// Call it only from the owning type's constructor.
func NewConstructorGuard() ConstructorGuard {
	return ConstructorGuard{isConstructed: true}
}

// Validate returns nil when the owning struct was built via its constructor.
// For zero-value guards it returns notConstructedErr, falling back to
// ErrDefaultConstructorGuard when notConstructedErr is nil.
func (g ConstructorGuard) Validate(notConstructedErr error) error {
	if g.isConstructed {
		return nil
	}

	if notConstructedErr == nil {
		return ErrDefaultConstructorGuard
	}

	return notConstructedErr
}
