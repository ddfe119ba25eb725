// SPDX-License-Identifier: MIT
// Package core: Constraint construction.
//
// Comparisons in gopep never evaluate truth. Leq and Eq build immutable
// Constraint records that the orchestrator later lowers into scalar rows of
// the SDP. A Tag identifies provenance so the certifier can attribute one
// dual weight to each generated inequality.

package core

import "fmt"

// Relation is the comparison relating an Expression to its bound.
type Relation uint8

const (
	// RelLeq states expression ≤ bound.
	RelLeq Relation = iota

	// RelEq states expression = bound.
	RelEq
)

// String returns the conventional symbol for the relation.
func (r Relation) String() string {
	if r == RelEq {
		return "="
	}

	return "<="
}

// Constraint provenance origins. Interpolation-produced constraints carry
// per-pair indices so dual weights can be mapped back to the inequality
// that produced them.
const (
	// OriginInitial marks the initial condition(s) of the problem.
	OriginInitial = "initial"

	// OriginUser marks constraints registered directly by the caller.
	OriginUser = "user"

	// OriginInterpolation marks pairwise class-membership inequalities.
	OriginInterpolation = "interpolation"

	// OriginDiameter marks bounded-domain constraints of indicator functions.
	OriginDiameter = "diameter"

	// OriginValueFix marks equalities pinning indicator values to zero.
	OriginValueFix = "valuefix"

	// OriginMetric marks hypograph rows linking the objective variable to
	// individual performance metrics.
	OriginMetric = "metric"
)

// Tag records where a Constraint came from.
// For interpolation constraints, I and J are the ordered oracle-triple
// indices of the pair that generated the inequality; otherwise both are -1.
type Tag struct {
	Origin string
	Func   string
	I, J   int
}

// String renders the tag for reports and logs.
func (t Tag) String() string {
	if t.Origin == OriginInterpolation || t.Origin == OriginDiameter {
		return fmt.Sprintf("%s/%s(%d,%d)", t.Origin, t.Func, t.I, t.J)
	}
	if t.Func != "" {
		return fmt.Sprintf("%s/%s", t.Origin, t.Func)
	}

	return t.Origin
}

// Constraint is one scalar relation "Expr Rel Bound".
type Constraint struct {
	Expr  Expression
	Rel   Relation
	Bound float64
	Tag   Tag
}

// Leq builds the constraint e ≤ bound.
// Panics on a non-finite bound: that is a caller bug, not solvable data.
func Leq(e Expression, bound float64) Constraint {
	if !validCoefficient(bound) {
		panic("core: Leq bound must be finite")
	}

	return Constraint{Expr: e, Rel: RelLeq, Bound: bound, Tag: Tag{Origin: OriginUser, I: -1, J: -1}}
}

// Geq builds e ≥ bound, stored in the canonical ≤ form (−e ≤ −bound).
func Geq(e Expression, bound float64) Constraint {
	return Leq(ScaleExpr(e, -1), -bound)
}

// Eq builds the constraint e = bound.
// Panics on a non-finite bound, as Leq does.
func Eq(e Expression, bound float64) Constraint {
	if !validCoefficient(bound) {
		panic("core: Eq bound must be finite")
	}

	return Constraint{Expr: e, Rel: RelEq, Bound: bound, Tag: Tag{Origin: OriginUser, I: -1, J: -1}}
}

// WithTag returns a copy of c carrying the given provenance tag.
func (c Constraint) WithTag(t Tag) Constraint {
	c.Tag = t

	return c
}
