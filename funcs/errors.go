// SPDX-License-Identifier: MIT
// Package funcs: sentinel error set. Matched via errors.Is.

package funcs

import "errors"

var (
	// ErrBadParams indicates invalid class parameters (non-positive L or μ,
	// μ ≥ L for a smooth strongly convex class, non-positive diameter, or a
	// missing relative-smoothness kernel).
	ErrBadParams = errors.New("funcs: invalid class parameters")

	// ErrDuplicatePoint indicates an attempt to record a second oracle
	// triple for a point the function has already been sampled at. At most
	// one gradient/value pair per (function, point) may ever exist.
	ErrDuplicatePoint = errors.New("funcs: point already sampled on this function")

	// ErrComposite indicates an operation that only declared (leaf)
	// functions support, such as interpolation, was invoked on a linear
	// combination of functions.
	ErrComposite = errors.New("funcs: operation requires a leaf function")

	// ErrKernelMissing indicates a relative-smoothness generator could not
	// find a kernel sample for one of its own sample points. The oracle
	// keeps kernel samples in lockstep, so this signals bookkeeping damage.
	ErrKernelMissing = errors.New("funcs: kernel sample missing")
)
