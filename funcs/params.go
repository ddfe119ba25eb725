// SPDX-License-Identifier: MIT
// Package funcs: the closed tagged-variant set of class parameter records.
//
// The catalog is fixed and finite, so classes are value records behind a
// sealed interface rather than an open subclassing surface. Each record
// knows how to validate itself; the matching inequality generators live in
// interpolate.go.

package funcs

import "math"

// Class enumerates the function-class catalog.
type Class uint8

const (
	// ClassConvex is a closed convex (possibly nonsmooth) function.
	ClassConvex Class = iota

	// ClassSmoothConvex is an L-smooth convex function.
	ClassSmoothConvex

	// ClassStronglyConvex is a μ-strongly convex (possibly nonsmooth) function.
	ClassStronglyConvex

	// ClassSmoothStronglyConvex is an L-smooth μ-strongly convex function.
	ClassSmoothStronglyConvex

	// ClassConvexIndicator is the indicator of a closed convex set with
	// (possibly infinite) diameter D.
	ClassConvexIndicator

	// ClassRelativelySmooth is an L-relatively-smooth convex function with
	// respect to a declared kernel function h.
	ClassRelativelySmooth
)

// String returns the class name used in reports.
func (c Class) String() string {
	switch c {
	case ClassConvex:
		return "convex"
	case ClassSmoothConvex:
		return "smooth-convex"
	case ClassStronglyConvex:
		return "strongly-convex"
	case ClassSmoothStronglyConvex:
		return "smooth-strongly-convex"
	case ClassConvexIndicator:
		return "convex-indicator"
	case ClassRelativelySmooth:
		return "relatively-smooth"
	default:
		return "unknown"
	}
}

// Params is the sealed parameter-record interface. Exactly the six records
// below implement it.
type Params interface {
	Class() Class
	validate() error
}

// Convex declares a closed convex function. It has no parameters.
type Convex struct{}

// Class reports ClassConvex.
func (Convex) Class() Class    { return ClassConvex }
func (Convex) validate() error { return nil }

// SmoothConvex declares an L-smooth convex function, L > 0.
type SmoothConvex struct {
	L float64
}

// Class reports ClassSmoothConvex.
func (SmoothConvex) Class() Class { return ClassSmoothConvex }

func (p SmoothConvex) validate() error {
	if !(p.L > 0) || math.IsInf(p.L, 1) {
		return ErrBadParams
	}

	return nil
}

// StronglyConvex declares a μ-strongly convex function, μ > 0.
// Smoothness is not assumed; gradients act as subgradients.
type StronglyConvex struct {
	Mu float64
}

// Class reports ClassStronglyConvex.
func (StronglyConvex) Class() Class { return ClassStronglyConvex }

func (p StronglyConvex) validate() error {
	if !(p.Mu > 0) || math.IsInf(p.Mu, 1) {
		return ErrBadParams
	}

	return nil
}

// SmoothStronglyConvex declares an L-smooth μ-strongly convex function,
// 0 ≤ μ < L.
type SmoothStronglyConvex struct {
	Mu, L float64
}

// Class reports ClassSmoothStronglyConvex.
func (SmoothStronglyConvex) Class() Class { return ClassSmoothStronglyConvex }

func (p SmoothStronglyConvex) validate() error {
	if !(p.L > 0) || math.IsInf(p.L, 1) || p.Mu < 0 || p.Mu >= p.L {
		return ErrBadParams
	}

	return nil
}

// ConvexIndicator declares the indicator function of a closed convex set
// with domain diameter D > 0. D = +Inf declares an unbounded domain; the
// diameter constraint is then omitted entirely.
type ConvexIndicator struct {
	D float64
}

// Class reports ClassConvexIndicator.
func (ConvexIndicator) Class() Class { return ClassConvexIndicator }

func (p ConvexIndicator) validate() error {
	if !(p.D > 0) || math.IsNaN(p.D) {
		return ErrBadParams
	}

	return nil
}

// RelativelySmooth declares a convex function that is L-smooth relative to
// the Bregman geometry of Kernel, L > 0. Kernel must be a declared leaf
// function; its own class constraints apply independently.
type RelativelySmooth struct {
	L      float64
	Kernel *Function
}

// Class reports ClassRelativelySmooth.
func (RelativelySmooth) Class() Class { return ClassRelativelySmooth }

func (p RelativelySmooth) validate() error {
	if !(p.L > 0) || math.IsInf(p.L, 1) || p.Kernel == nil || !p.Kernel.IsLeaf() {
		return ErrBadParams
	}

	return nil
}
