// SPDX-License-Identifier: MIT

// Package funcs implements the function-class catalog of gopep: declared
// abstract functions, their first-order oracles, and the pairwise
// interpolation inequalities that characterize membership in each class.
//
// A Function never evaluates anything. Calling its oracle at a Point mints
// a fresh abstract gradient and function value in the basis registry and
// records the triple (x, g, f). Interpolate then emits, for every ordered
// pair of distinct recorded triples, the inequality that any true member
// of the class must satisfy between those samples. The worst case over the
// class is exactly the worst case over all data consistent with these
// inequalities.
//
// Catalog (closed set, one parameter record per class):
//
//	Convex               f_i ≥ f_j + ⟨g_j, x_i−x_j⟩
//	SmoothConvex         … + 1/(2L)·‖g_i−g_j‖²
//	StronglyConvex       … + μ/2·‖x_i−x_j‖²
//	SmoothStronglyConvex … + 1/(2L)·‖g_i−g_j‖² + μ/(2(1−μ/L))·‖x_i−x_j−(g_i−g_j)/L‖²
//	ConvexIndicator      ⟨g_j, x_i−x_j⟩ ≤ 0, values pinned to 0,
//	                     ‖x_i−x_j‖ ≤ D per pair when D is finite
//	RelativelySmooth     f_i ≥ f_j + ⟨g_j, x_i−x_j⟩ − L·D_h(x_i; x_j),
//	                     through the kernel h's own oracle triples
//
// Oracle calls are memoized per (function, point): querying the same Point
// twice returns the previously minted gradient/value pair, so a function
// with m distinct samples generates exactly m(m−1) interpolation
// inequalities and never inflates the Gram dimension.
//
// Functions compose linearly: Sum and Scale build composite functions whose
// oracles fan out to their leaves (reusing any leaf sample that already
// exists) and whose externally supplied samples, such as the zero gradient
// of a stationary point, are distributed structurally across the leaves.
// Interpolation always happens at the leaves; composites never generate
// constraints of their own.
package funcs
