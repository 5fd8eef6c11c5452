// Package guard provides a defensive construction check for value objects
// that must only be created through their constructor functions.
package guard

import "errors"

// ErrDefaultConstructorGuard is returned by Validate when no specific
// validation error is supplied. This ensures validation always fails with a
// meaningful message for zero-value objects.
var ErrDefaultConstructorGuard = errors.New("object must be created via its constructor")

// ConstructorGuard detects whether a struct was created through its
// designated constructor or left as a zero value. Commands and queries embed
// a guard so that handlers can reject objects that bypassed validation.
//
// Example usage:
//
//	var ErrQueryIsNotConstructed = errors.New("query must be created via its constructor")
//
//	type GetOrderQuery struct {
//	    id    kernel.UUID
//	    guard guard.ConstructorGuard
//	}
//
//	func NewGetOrderQuery(id kernel.UUID) (GetOrderQuery, error) {
//	    if err := id.Validate(); err != nil {
//	        return GetOrderQuery{}, err
//	    }
//	    return GetOrderQuery{id: id, guard: guard.NewConstructorGuard()}, nil
//	}
//
//	func (q GetOrderQuery) Validate() error {
//	    return q.guard.Validate(ErrQueryIsNotConstructed)
//	}
type ConstructorGuard struct {
	isConstructed bool
}

// NewConstructorGuard creates a guard marking an object as properly
// constructed. Call this in the constructor of the guarded object.
func NewConstructorGuard() ConstructorGuard {
	return ConstructorGuard{isConstructed: true}
}

// Validate reports whether the guarded object went through its constructor.
// Returns nil for constructed objects, the supplied validationError for zero
// values, or ErrDefaultConstructorGuard when validationError is nil.
func (g ConstructorGuard) Validate(validationError error) error {
	if validationError == nil {
		validationError = ErrDefaultConstructorGuard
	}
	if !g.isConstructed {
		return validationError
	}
	return nil
}
