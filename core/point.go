// SPDX-License-Identifier: MIT
// Package core: Point, the affine-combination-of-basis-vectors value type.

package core

import (
	"fmt"
	"math"
	"sort"
	"strings"
)

// Point is a sparse affine combination of point/gradient basis IDs.
// The zero value (and any Point whose coefficients all cancel) is the
// conventional origin. Points are immutable: every operation returns a
// fresh Point and never touches its operands.
type Point struct {
	coeffs map[ID]float64
}

// ZeroPoint returns the conventional origin.
func ZeroPoint() Point { return Point{} }

// unitPoint wraps a single basis ID with coefficient 1.
func unitPoint(id ID) Point {
	return Point{coeffs: map[ID]float64{id: 1}}
}

// IsZero reports whether p is the origin (no surviving coefficients).
func (p Point) IsZero() bool { return len(p.coeffs) == 0 }

// Coefficients returns a copy of the id→coefficient mapping.
// Mutating the copy does not affect p.
func (p Point) Coefficients() map[ID]float64 {
	out := make(map[ID]float64, len(p.coeffs))
	for id, c := range p.coeffs {
		out[id] = c
	}

	return out
}

// IDs returns the referenced basis IDs in ascending order.
func (p Point) IDs() []ID {
	ids := make([]ID, 0, len(p.coeffs))
	for id := range p.coeffs {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })

	return ids
}

// Key returns a canonical textual form of p, stable across runs.
// Two Points represent the same affine combination iff their Keys match;
// oracle memoization relies on this.
func (p Point) Key() string {
	ids := p.IDs()
	var b strings.Builder
	for _, id := range ids {
		fmt.Fprintf(&b, "%d:%.17g;", id, p.coeffs[id])
	}

	return b.String()
}

// addScaled returns p + a·q without mutating either operand.
// Exact zeros are dropped so cancellation restores the origin.
func addScaled(p Point, a float64, q Point) Point {
	if a == 0 || q.IsZero() {
		if p.IsZero() {
			return Point{}
		}
		return Point{coeffs: p.Coefficients()}
	}
	out := p.Coefficients()
	for id, c := range q.coeffs {
		v := out[id] + a*c
		if v == 0 {
			delete(out, id)
		} else {
			out[id] = v
		}
	}
	if len(out) == 0 {
		return Point{}
	}

	return Point{coeffs: out}
}

// AddPoints returns a + b.
func AddPoints(a, b Point) Point { return addScaled(a, 1, b) }

// SubPoints returns a − b.
func SubPoints(a, b Point) Point { return addScaled(a, -1, b) }

// ScalePoint returns s·p.
func ScalePoint(p Point, s float64) Point {
	if s == 0 || p.IsZero() {
		return Point{}
	}
	out := make(map[ID]float64, len(p.coeffs))
	for id, c := range p.coeffs {
		out[id] = s * c
	}

	return Point{coeffs: out}
}

// InnerProduct returns ⟨a, b⟩ as an Expression of bilinear terms.
// Pair keys are canonicalized, so InnerProduct(a, b) and InnerProduct(b, a)
// build identical Expressions.
func InnerProduct(a, b Point) Expression {
	if a.IsZero() || b.IsZero() {
		return Expression{}
	}
	quads := make(map[PairKey]float64)
	for ia, ca := range a.coeffs {
		for ib, cb := range b.coeffs {
			k := pairKey(ia, ib)
			v := quads[k] + ca*cb
			if v == 0 {
				delete(quads, k)
			} else {
				quads[k] = v
			}
		}
	}
	if len(quads) == 0 {
		return Expression{}
	}

	return Expression{quads: quads}
}

// SquaredNorm returns ‖p‖² = ⟨p, p⟩.
func SquaredNorm(p Point) Expression { return InnerProduct(p, p) }

// validCoefficient reports whether c is a usable finite coefficient.
// NaN/Inf coefficients indicate a caller bug (for example dividing by a
// zero step size) and are rejected at constraint-construction time.
func validCoefficient(c float64) bool {
	return !math.IsNaN(c) && !math.IsInf(c, 0)
}
