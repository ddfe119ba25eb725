// SPDX-License-Identifier: MIT

// Package steps models primitive algorithmic updates symbolically.
//
// A numeric optimizer would compute a proximal or mirror-descent update in
// closed form. The estimation engine cannot: the functions involved are
// abstract, so the output of an update is a new unknown. Each step
// constructor therefore (a) mints a fresh basis point for the update's
// output and (b) records the update's first-order optimality condition as
// an oracle triple on the function that defines the step. Interpolation of
// that function then constrains the output point exactly as membership in
// its class allows, and no further.
//
// Provided steps:
//
//   - BregmanGradientStep — the mirror-descent / NoLips update
//     x ∈ argmin_u { γ⟨g, u⟩ + D_h(u; x₀) } for a mirror map h,
//     recorded via ∇h(x) = ∇h(x₀) − γ·g.
//
//   - ProximalStep — x = prox_{γf}(x₀), recorded via g = (x₀ − x)/γ with
//     g ∈ ∂f(x). With an indicator function this is a projection.
package steps
