// SPDX-License-Identifier: MIT
// Package solver: sentinel error set. Matched via errors.Is.

package solver

import "errors"

var (
	// ErrInfeasible is returned when the backend proves the assembled SDP
	// infeasible or unbounded. It is surfaced to the caller verbatim and
	// never retried.
	ErrInfeasible = errors.New("solver: problem infeasible or unbounded")

	// ErrFailure is returned when the backend terminates without an optimal
	// status for any other reason (numerical trouble, internal error).
	ErrFailure = errors.New("solver: backend failed to reach an optimal solution")

	// ErrBadProgram indicates a malformed Program (dimension mismatches,
	// nil coefficient forms). This is an engine bug, not solver trouble.
	ErrBadProgram = errors.New("solver: malformed program")
)
