// SPDX-License-Identifier: MIT

// Package cert reconstructs and checks the dual proof of a solved
// estimation problem.
//
// For a maximization over G ⪰ 0 and F, weak duality says that any
// multipliers λ ≥ 0 (on inequalities) satisfying
//
//	Σ_c λ_c·A_c − A_obj = S ⪰ 0   and   Σ_c λ_c·b_c = b_obj
//
// certify the upper bound Σ_c λ_c·bound_c on the optimum: a nonnegative
// combination of the constraints reproduces the objective. Certify takes
// the multipliers a backend reports, rebuilds both residuals, checks
// positive semidefiniteness of S and of the primal Gram matrix, dual sign
// feasibility, complementary slackness, and the duality gap, and reports
// everything numerically.
//
// Certification is diagnostic, never fatal: a failed check produces a
// warning on the report, and thresholds are configurable because their
// sensible values depend on the backend's own tolerances.
package cert
