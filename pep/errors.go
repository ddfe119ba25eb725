// SPDX-License-Identifier: MIT
// Package pep: sentinel error set. Matched via errors.Is.
// Solver-side failures are not redeclared here: Solve wraps and returns
// solver.ErrInfeasible and solver.ErrFailure verbatim.

package pep

import "errors"

var (
	// ErrUnresolvedReference indicates an Expression or Point referenced a
	// basis ID this problem's registry never minted. It means symbols from
	// another problem leaked in, or bookkeeping is inconsistent; it is
	// always a bug in the calling code, never solvable data.
	ErrUnresolvedReference = errors.New("pep: reference to an unregistered basis vector")

	// ErrNoMetric indicates Solve was called before any performance metric
	// was set; the SDP would have no objective.
	ErrNoMetric = errors.New("pep: no performance metric set")

	// ErrConsumed indicates a second Solve on an already-solved Problem.
	// Lowering mutates the registry, so re-solving requires Reset or a
	// fresh instance.
	ErrConsumed = errors.New("pep: problem already solved; Reset before solving again")

	// ErrNilBackend indicates Solve was handed no solver backend.
	ErrNilBackend = errors.New("pep: nil solver backend")
)
