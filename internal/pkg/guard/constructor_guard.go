// Package guard provides the constructor guard pattern used by domain objects
// to detect instances that bypassed their factory function. A zero-value guard
// fails validation, so any struct embedding a ConstructorGuard can tell whether
// it was built through its constructor.
package guard

import "errors"

// ErrDefaultConstructorGuard is returned by Validate when the caller does not
// supply its own error for an unconstructed object.
var ErrDefaultConstructorGuard = errors.New("object must be created via its constructor")

// ConstructorGuard marks an object as properly constructed.
// The zero value is invalid; obtain instances via NewConstructorGuard.
type ConstructorGuard struct {
	constructed bool
}

// NewConstructorGuard creates a guard marking its holder as constructed.
func NewConstructorGuard() ConstructorGuard {
	return ConstructorGuard{constructed: true}
}

// Validate returns nil for a constructed guard. For a zero-value guard it
// returns err, or ErrDefaultConstructorGuard when err is nil.
func (g ConstructorGuard) Validate(err error) error {
	if g.constructed {
		return nil
	}
	if err == nil {
		return ErrDefaultConstructorGuard
	}
	return err
}
