// Package fluent defines the self-bounded interfaces behind chainable mutators.
//
// Go has no dynamic self type: a method declared on a base struct always
// returns the base's type, even when promoted into an embedding struct. The
// convention this package captures is that a chainable mutator returns the
// concrete type of its receiver, and every embedder re-declares the mutator
// with its own return type so that chains keep the concrete type. The
// interfaces here are instantiated with the implementing type itself
// (Chainable[*T] implemented by *T), which is how the convention becomes
// visible to the compiler at the use site.
package fluent

// Chainable is implemented by any type whose core mutators return the
// implementing type. The type argument is always the implementer's own
// pointer type.
type Chainable[T any] interface {
	// SetAge mutates the receiver's age in place and returns the receiver.
	SetAge(age int) T
	// SetName mutates the receiver's name in place and returns the receiver.
	SetName(name string) T
}

// Addressable is the capability of carrying an address. It is independent of
// Chainable: a type may adopt it without any embedding relationship to the
// declarer, as long as SetAddress returns the implementing type.
type Addressable[T any] interface {
	// SetAddress mutates the receiver's address in place and returns the receiver.
	SetAddress(addr string) T
}

// Apply runs each fn over v in order and returns the final value. Because T
// is self-bounded, the concrete type survives the whole pipeline without a
// cast at any step.
func Apply[T Chainable[T]](v T, fns ...func(T) T) T {
	for _, fn := range fns {
		v = fn(v)
	}
	return v
}

// Rename sets the name through the Chainable constraint, preserving T.
func Rename[T Chainable[T]](v T, name string) T {
	return v.SetName(name)
}

// Relocate sets the address through the Addressable capability, preserving T.
func Relocate[T Addressable[T]](v T, addr string) T {
	return v.SetAddress(addr)
}
