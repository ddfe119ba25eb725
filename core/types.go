// SPDX-License-Identifier: MIT
// Package core: basis vector kinds, IDs, and the append-only Registry.
//
// The Registry is the single authority on identity. Every abstract vector
// the engine ever manipulates (an iterate, a gradient, a function value) is
// minted here exactly once and never destroyed within a problem's lifetime.
// Gram-side vectors (points and gradients) and value-side vectors are
// indexed separately because they land in different SDP variables: the
// former in the PSD Gram matrix, the latter in the value vector.

package core

// ID uniquely identifies a basis vector within one Registry.
// IDs are dense, allocated in creation order starting from zero.
type ID int

// Kind classifies a basis vector.
type Kind uint8

const (
	// KindPoint marks an abstract iterate (x-like vector).
	KindPoint Kind = iota

	// KindGradient marks an abstract gradient/subgradient vector.
	KindGradient

	// KindValue marks an abstract scalar function value.
	KindValue
)

// String returns the lowercase kind name, for logs and error messages.
func (k Kind) String() string {
	switch k {
	case KindPoint:
		return "point"
	case KindGradient:
		return "gradient"
	case KindValue:
		return "value"
	default:
		return "unknown"
	}
}

// BasisVector is one immutable registry entry.
// Owner records who requested the allocation (a function name, or the
// problem itself for iterates); it is diagnostic only and never affects
// algebra or lowering.
type BasisVector struct {
	ID    ID
	Kind  Kind
	Owner string
}

// Registry allocates basis vectors and answers identity queries.
//
// It is append-only: entries are never mutated or removed. It is not safe
// for concurrent use; the engine is build-then-solve single-threaded by
// design.
type Registry struct {
	vectors []BasisVector // indexed by ID
	gramIdx map[ID]int    // point/gradient IDs -> dense Gram row index
	valIdx  map[ID]int    // value IDs -> dense value-vector index
}

// NewRegistry returns an empty Registry.
func NewRegistry() *Registry {
	return &Registry{
		gramIdx: make(map[ID]int),
		valIdx:  make(map[ID]int),
	}
}

// alloc mints one basis vector of the given kind and maintains the dense
// side-indices used by lowering.
func (r *Registry) alloc(kind Kind, owner string) ID {
	id := ID(len(r.vectors))
	r.vectors = append(r.vectors, BasisVector{ID: id, Kind: kind, Owner: owner})
	switch kind {
	case KindValue:
		r.valIdx[id] = len(r.valIdx)
	default:
		r.gramIdx[id] = len(r.gramIdx)
	}

	return id
}

// NewPoint mints a fresh elementary point and returns it as a unit Point.
func (r *Registry) NewPoint(owner string) Point {
	return unitPoint(r.alloc(KindPoint, owner))
}

// NewGradient mints a fresh elementary gradient and returns it as a unit Point.
// Gradients share the Gram side with points: both may appear in inner products.
func (r *Registry) NewGradient(owner string) Point {
	return unitPoint(r.alloc(KindGradient, owner))
}

// NewValue mints a fresh elementary function value and returns it as a
// purely linear Expression.
func (r *Registry) NewValue(owner string) Expression {
	return unitValue(r.alloc(KindValue, owner))
}

// Lookup resolves an ID to its BasisVector. The second result is false when
// the ID was never minted by this Registry.
func (r *Registry) Lookup(id ID) (BasisVector, bool) {
	if id < 0 || int(id) >= len(r.vectors) {
		return BasisVector{}, false
	}

	return r.vectors[int(id)], true
}

// GramSize reports how many point/gradient basis vectors exist, i.e. the
// dimension n of the Gram matrix variable.
func (r *Registry) GramSize() int { return len(r.gramIdx) }

// ValueSize reports how many value basis vectors exist, i.e. the dimension m
// of the value vector variable.
func (r *Registry) ValueSize() int { return len(r.valIdx) }

// GramIndex maps a point/gradient ID to its dense row index in the Gram
// matrix. The second result is false for unknown or value-kind IDs.
func (r *Registry) GramIndex(id ID) (int, bool) {
	i, ok := r.gramIdx[id]

	return i, ok
}

// ValueIndex maps a value ID to its dense index in the value vector.
// The second result is false for unknown or Gram-side IDs.
func (r *Registry) ValueIndex(id ID) (int, bool) {
	i, ok := r.valIdx[id]

	return i, ok
}
