// SPDX-License-Identifier: MIT

// Package solver defines the narrow contract between the estimation engine
// and a numerical SDP backend.
//
// The engine only ever produces one shape of problem: optimize an affine
// functional of a single PSD Gram matrix variable G (n×n) and a value
// vector variable F (size m), subject to scalar affine constraints in the
// same variables and G ⪰ 0. Program captures that shape; a Backend solves
// it and reports primal and dual data in Solution.
//
// The engine never branches on backend identity. Backend-specific solver
// names and options travel opaquely inside Config. No retry and no timeout
// logic lives here: an SDP re-solved on identical inputs is deterministic,
// and cancellation belongs to the backend or the process driving it.
package solver
