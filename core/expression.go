// SPDX-License-Identifier: MIT
// Package core: Expression, the affine-in-Gram value type.

package core

import "sort"

// PairKey identifies one symmetric bilinear term ⟨A, B⟩ over basis IDs.
// Invariant: A ≤ B. Construct via pairKey only.
type PairKey struct {
	A, B ID
}

// pairKey canonicalizes an unordered ID pair (smaller first).
func pairKey(i, j ID) PairKey {
	if j < i {
		i, j = j, i
	}

	return PairKey{A: i, B: j}
}

// Expression is a scalar-valued symbolic quantity, affine in the eventual
// SDP variables: a sparse linear part over value basis IDs, a sparse
// symmetric bilinear part over pairs of point/gradient basis IDs, and a
// scalar constant. Expressions are immutable value types; every operation
// returns a fresh Expression.
//
// An Expression with an empty bilinear part is purely linear (a function
// value or a linear combination of function values plus a constant).
type Expression struct {
	vals     map[ID]float64
	quads    map[PairKey]float64
	constant float64
}

// unitValue wraps a single value basis ID with coefficient 1.
func unitValue(id ID) Expression {
	return Expression{vals: map[ID]float64{id: 1}}
}

// Const returns an Expression holding only the scalar c.
func Const(c float64) Expression { return Expression{constant: c} }

// IsZero reports whether e has no terms and a zero constant.
func (e Expression) IsZero() bool {
	return len(e.vals) == 0 && len(e.quads) == 0 && e.constant == 0
}

// IsLinear reports whether e carries no bilinear (inner-product) terms.
func (e Expression) IsLinear() bool { return len(e.quads) == 0 }

// Constant returns the scalar constant term of e.
func (e Expression) Constant() float64 { return e.constant }

// ValueTerms returns a copy of the linear part (value ID → coefficient).
func (e Expression) ValueTerms() map[ID]float64 {
	out := make(map[ID]float64, len(e.vals))
	for id, c := range e.vals {
		out[id] = c
	}

	return out
}

// QuadTerms returns a copy of the bilinear part (canonical pair → coefficient).
func (e Expression) QuadTerms() map[PairKey]float64 {
	out := make(map[PairKey]float64, len(e.quads))
	for k, c := range e.quads {
		out[k] = c
	}

	return out
}

// ValueIDs returns the referenced value basis IDs in ascending order.
func (e Expression) ValueIDs() []ID {
	ids := make([]ID, 0, len(e.vals))
	for id := range e.vals {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })

	return ids
}

// PairKeys returns the referenced canonical pairs, ordered by (A, B).
func (e Expression) PairKeys() []PairKey {
	keys := make([]PairKey, 0, len(e.quads))
	for k := range e.quads {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool {
		if keys[i].A != keys[j].A {
			return keys[i].A < keys[j].A
		}
		return keys[i].B < keys[j].B
	})

	return keys
}

// addScaledExpr returns a + s·b, dropping exact-zero terms.
func addScaledExpr(a Expression, s float64, b Expression) Expression {
	out := Expression{
		vals:     a.ValueTerms(),
		quads:    a.QuadTerms(),
		constant: a.constant + s*b.constant,
	}
	if s != 0 {
		for id, c := range b.vals {
			v := out.vals[id] + s*c
			if v == 0 {
				delete(out.vals, id)
			} else {
				out.vals[id] = v
			}
		}
		for k, c := range b.quads {
			v := out.quads[k] + s*c
			if v == 0 {
				delete(out.quads, k)
			} else {
				out.quads[k] = v
			}
		}
	}

	return out.compact()
}

// compact normalizes empty maps to nil so IsZero and reflect-based
// comparisons behave uniformly.
func (e Expression) compact() Expression {
	if len(e.vals) == 0 {
		e.vals = nil
	}
	if len(e.quads) == 0 {
		e.quads = nil
	}

	return e
}

// AddExprs returns a + b.
func AddExprs(a, b Expression) Expression { return addScaledExpr(a, 1, b) }

// SubExprs returns a − b.
func SubExprs(a, b Expression) Expression { return addScaledExpr(a, -1, b) }

// ScaleExpr returns s·e.
func ScaleExpr(e Expression, s float64) Expression {
	if s == 0 {
		return Expression{}
	}
	out := Expression{
		vals:     make(map[ID]float64, len(e.vals)),
		quads:    make(map[PairKey]float64, len(e.quads)),
		constant: s * e.constant,
	}
	for id, c := range e.vals {
		out.vals[id] = s * c
	}
	for k, c := range e.quads {
		out.quads[k] = s * c
	}

	return out.compact()
}

// AddConst returns e + c.
func AddConst(e Expression, c float64) Expression {
	out := e
	out.vals = e.ValueTerms()
	out.quads = e.QuadTerms()
	out.constant += c

	return out.compact()
}
