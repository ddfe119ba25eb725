// SPDX-License-Identifier: MIT
// Package core: sentinel error set.
// All errors raised by the symbolic algebra are programmer-contract errors:
// they indicate misuse of the algebra by the caller, never bad numeric data.
// Tests match them via errors.Is.

package core

import "errors"

var (
	// ErrDegree is returned when a product would leave the affine-in-Gram
	// class, i.e. exceed degree two in the underlying basis points
	// (for example multiplying two Expressions, or an Expression that
	// already carries inner-product or value terms by a Point).
	ErrDegree = errors.New("core: product exceeds degree two in basis points")

	// ErrKindMismatch is returned by Registry lookups when an ID resolves to
	// a basis vector of an unexpected kind (a value ID inside a Point, or a
	// point ID inside the linear part of an Expression).
	ErrKindMismatch = errors.New("core: basis vector kind mismatch")

	// ErrUnknownID is returned when an ID does not resolve to any registered
	// basis vector. Seeing it means bookkeeping is inconsistent: Points and
	// Expressions must only ever reference IDs minted by a Registry.
	ErrUnknownID = errors.New("core: unknown basis vector id")
)
