// SPDX-License-Identifier: MIT
// Package core: the generic product over the closed operand set.
//
// The typed constructors (ScalePoint, InnerProduct, ScaleExpr) are the
// primary API. Mul exists for callers assembling algebra generically, and
// it is where the degree contract is enforced at runtime: any product that
// cannot be represented as an affine functional of the Gram matrix and the
// value vector fails with ErrDegree.

package core

import "fmt"

// Operand is the closed set of symbolic quantities Mul accepts:
// Scalar, Point, or Expression. The set is fixed; callers cannot extend it.
type Operand interface {
	isOperand()
}

// Scalar is a plain numeric operand.
type Scalar float64

func (Scalar) isOperand()     {}
func (Point) isOperand()      {}
func (Expression) isOperand() {}

// Mul multiplies two operands, as far as the affine-in-Gram discipline
// allows:
//
//	Scalar·Scalar     → Scalar
//	Scalar·Point      → Point
//	Scalar·Expression → Expression
//	Point·Point       → Expression (inner product)
//
// An Expression participates in a product only when it is effectively a
// constant (no value terms, no bilinear terms); then it multiplies like a
// Scalar. Every other combination would exceed degree two in the basis
// points, or mix value variables into a bilinear term, and fails with
// ErrDegree.
func Mul(a, b Operand) (Operand, error) {
	// Collapse constant-only Expressions into Scalars first.
	if e, ok := a.(Expression); ok && len(e.vals) == 0 && len(e.quads) == 0 {
		a = Scalar(e.constant)
	}
	if e, ok := b.(Expression); ok && len(e.vals) == 0 && len(e.quads) == 0 {
		b = Scalar(e.constant)
	}

	switch x := a.(type) {
	case Scalar:
		switch y := b.(type) {
		case Scalar:
			return x * y, nil
		case Point:
			return ScalePoint(y, float64(x)), nil
		case Expression:
			return ScaleExpr(y, float64(x)), nil
		}
	case Point:
		switch y := b.(type) {
		case Scalar:
			return ScalePoint(x, float64(y)), nil
		case Point:
			return InnerProduct(x, y), nil
		case Expression:
			return nil, fmt.Errorf("point × expression: %w", ErrDegree)
		}
	case Expression:
		if y, ok := b.(Scalar); ok {
			return ScaleExpr(x, float64(y)), nil
		}

		return nil, fmt.Errorf("expression × %T: %w", b, ErrDegree)
	}

	return nil, fmt.Errorf("unsupported operand %T: %w", a, ErrDegree)
}
