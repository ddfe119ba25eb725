// SPDX-License-Identifier: MIT
// Package funcs: pairwise interpolation generators, one per class.
//
// Interpolate walks every ordered pair (i, j), i ≠ j, of recorded samples
// and emits the inequality that class membership imposes between them, in
// the canonical "expression ≤ 0" form. A leaf with m samples therefore
// yields exactly m·(m−1) interpolation inequalities. Indicator functions
// additionally pin every sampled value to zero and, when the domain
// diameter is finite, bound every unordered pair of samples.

package funcs

import (
	"fmt"
	"math"

	"github.com/katalvlaran/gopep/core"
)

// Interpolate generates the full constraint set for a declared leaf.
// Composites do not interpolate; their leaves do.
func (f *Function) Interpolate() ([]core.Constraint, error) {
	if !f.IsLeaf() {
		return nil, fmt.Errorf("function %q: %w", f.name, ErrComposite)
	}

	switch p := f.params.(type) {
	case Convex:
		return f.pairwise(func(ti, tj Triple) (core.Expression, error) {
			return upperLinearization(ti, tj), nil
		})
	case SmoothConvex:
		return f.pairwise(func(ti, tj Triple) (core.Expression, error) {
			e := upperLinearization(ti, tj)
			e = core.AddExprs(e, core.ScaleExpr(core.SquaredNorm(core.SubPoints(ti.G, tj.G)), 1/(2*p.L)))

			return e, nil
		})
	case StronglyConvex:
		return f.pairwise(func(ti, tj Triple) (core.Expression, error) {
			e := upperLinearization(ti, tj)
			e = core.AddExprs(e, core.ScaleExpr(core.SquaredNorm(core.SubPoints(ti.X, tj.X)), p.Mu/2))

			return e, nil
		})
	case SmoothStronglyConvex:
		return f.pairwise(func(ti, tj Triple) (core.Expression, error) {
			dg := core.SubPoints(ti.G, tj.G)
			e := upperLinearization(ti, tj)
			e = core.AddExprs(e, core.ScaleExpr(core.SquaredNorm(dg), 1/(2*p.L)))
			// Strongly convex correction vanishes at μ = 0, where the class
			// coincides with SmoothConvex.
			if p.Mu > 0 {
				dev := core.SubPoints(core.SubPoints(ti.X, tj.X), core.ScalePoint(dg, 1/p.L))
				e = core.AddExprs(e, core.ScaleExpr(core.SquaredNorm(dev), p.Mu/(2*(1-p.Mu/p.L))))
			}

			return e, nil
		})
	case ConvexIndicator:
		return f.indicator(p)
	case RelativelySmooth:
		return f.pairwise(func(ti, tj Triple) (core.Expression, error) {
			ki, ok := p.Kernel.lookup(ti.X)
			if !ok {
				return core.Expression{}, fmt.Errorf("kernel %q at sample of %q: %w", p.Kernel.name, f.name, ErrKernelMissing)
			}
			kj, ok := p.Kernel.lookup(tj.X)
			if !ok {
				return core.Expression{}, fmt.Errorf("kernel %q at sample of %q: %w", p.Kernel.name, f.name, ErrKernelMissing)
			}
			// Bregman divergence D_h(x_i; x_j) = h_i − h_j − ⟨∇h_j, x_i−x_j⟩.
			breg := core.SubExprs(core.SubExprs(ki.F, kj.F), core.InnerProduct(kj.G, core.SubPoints(ti.X, tj.X)))
			e := upperLinearization(ti, tj)
			e = core.SubExprs(e, core.ScaleExpr(breg, p.L))

			return e, nil
		})
	default:
		return nil, fmt.Errorf("function %q: unknown class: %w", f.name, ErrBadParams)
	}
}

// upperLinearization builds f_j + ⟨g_j, x_i−x_j⟩ − f_i, the ≤ 0 form of the
// convex lower-bound inequality f_i ≥ f_j + ⟨g_j, x_i−x_j⟩ shared by every
// class in the catalog.
func upperLinearization(ti, tj Triple) core.Expression {
	e := core.SubExprs(tj.F, ti.F)

	return core.AddExprs(e, core.InnerProduct(tj.G, core.SubPoints(ti.X, tj.X)))
}

// pairwise applies gen to every ordered pair of distinct samples and tags
// each resulting constraint with (function, i, j). Self-pairs are skipped.
func (f *Function) pairwise(gen func(ti, tj Triple) (core.Expression, error)) ([]core.Constraint, error) {
	m := len(f.triples)
	out := make([]core.Constraint, 0, m*(m-1))
	for i := 0; i < m; i++ {
		for j := 0; j < m; j++ {
			if i == j {
				continue
			}
			e, err := gen(f.triples[i], f.triples[j])
			if err != nil {
				return nil, err
			}
			c := core.Leq(e, 0).WithTag(core.Tag{
				Origin: core.OriginInterpolation,
				Func:   f.name,
				I:      i,
				J:      j,
			})
			out = append(out, c)
		}
	}

	return out, nil
}

// indicator generates the indicator-class constraint set: the pairwise
// separation inequality, one value-pinning equality per sample, and, for a
// finite domain diameter, one squared-distance bound per unordered pair.
// An infinite diameter emits no diameter constraint at all.
func (f *Function) indicator(p ConvexIndicator) ([]core.Constraint, error) {
	out, err := f.pairwise(func(ti, tj Triple) (core.Expression, error) {
		return core.InnerProduct(tj.G, core.SubPoints(ti.X, tj.X)), nil
	})
	if err != nil {
		return nil, err
	}

	for i, t := range f.triples {
		c := core.Eq(t.F, 0).WithTag(core.Tag{
			Origin: core.OriginValueFix,
			Func:   f.name,
			I:      i,
			J:      -1,
		})
		out = append(out, c)
	}

	if !math.IsInf(p.D, 1) {
		for i := 0; i < len(f.triples); i++ {
			for j := i + 1; j < len(f.triples); j++ {
				d := core.SquaredNorm(core.SubPoints(f.triples[i].X, f.triples[j].X))
				c := core.Leq(d, p.D*p.D).WithTag(core.Tag{
					Origin: core.OriginDiameter,
					Func:   f.name,
					I:      i,
					J:      j,
				})
				out = append(out, c)
			}
		}
	}

	return out, nil
}
