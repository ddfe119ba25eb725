// SPDX-License-Identifier: MIT

// Package core provides the symbolic foundation of gopep: an append-only
// registry of abstract basis vectors, and an affine algebra of Points and
// Expressions built on top of it.
//
// What lives here:
//
//   - Registry — assigns a unique ID to every elementary point, gradient and
//     function-value vector as it is created. The concrete vector-space
//     dimension is never fixed; only identities and affine relations are
//     tracked. Registered vectors are immutable and live for the whole
//     problem instance.
//
//   - Point — a sparse affine combination of point/gradient basis IDs.
//     The empty Point is the conventional origin.
//
//   - Expression — a sparse affine combination of value basis IDs, plus
//     symmetric bilinear terms over unordered pairs of point basis IDs
//     (inner products), plus a scalar constant. Pair keys are canonicalized
//     (smaller ID first) so ⟨a,b⟩ and ⟨b,a⟩ collapse into a single entry;
//     that is what makes the lowered Gram matrix symmetric by construction.
//
//   - Constraint — an Expression compared against a scalar bound with Leq
//     or Eq. Comparisons never evaluate truth; they build records for the
//     orchestrator to lower into the SDP.
//
// Degree discipline:
//
// All operations keep results affine in the eventual Gram matrix variable.
// Adding and scaling never change degree; multiplying two Points yields an
// Expression (their inner product); any product that would exceed degree two
// in the underlying basis points fails with ErrDegree. This restriction is
// structural — it is exactly what guarantees every Expression can be lowered
// into a linear functional of one PSD matrix and one value vector.
//
// All Point/Expression operations are pure: inputs are never mutated and
// results share no internal state with their operands.
package core
