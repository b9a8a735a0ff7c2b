package ecs

import "fmt"

// ComponentType is the small integer id assigned to a component type at
// registration time. Ids are sequential and permanent for the process
// lifetime; they double as bit positions in a Signature.
type ComponentType uint8

// signatureWidth is the hard cap on distinct component types, fixed by
// the Signature bitset width.
const signatureWidth = 32

// Signature is a fixed-width bitset with one bit per registered
// component type. An entity's signature has bit i set iff the entity
// currently holds a component of type i.
type Signature uint32

// NewSignature builds a signature with the given bits set.
func NewSignature(bits ...ComponentType) Signature {
	var s Signature
	for _, b := range bits {
		s = s.Set(b)
	}
	return s
}

// Set returns s with bit t set.
func (s Signature) Set(t ComponentType) Signature {
	if int(t) >= signatureWidth {
		panic(fmt.Sprintf("component type %d exceeds signature width %d", t, signatureWidth))
	}
	return s | 1<<t
}

// Clear returns s with bit t cleared.
func (s Signature) Clear(t ComponentType) Signature {
	if int(t) >= signatureWidth {
		panic(fmt.Sprintf("component type %d exceeds signature width %d", t, signatureWidth))
	}
	return s &^ (1 << t)
}

// Test reports whether bit t is set.
func (s Signature) Test(t ComponentType) bool {
	return s&(1<<t) != 0
}

// ContainsAll reports whether s is a superset of required. A system
// with required signature R matches every entity whose signature
// contains all of R's bits.
func (s Signature) ContainsAll(required Signature) bool {
	return s&required == required
}
