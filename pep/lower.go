// SPDX-License-Identifier: MIT
// Package pep: lowering of symbolic expressions into concrete SDP data.

package pep

import (
	"fmt"

	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/gopep/core"
	"github.com/katalvlaran/gopep/solver"
)

// lower compiles the materialized constraint ledger and the objective into
// a solver.Program. Dimensions are snapshotted from the registry at this
// point; every basis vector has been minted by now.
func (p *Problem) lower(cons []core.Constraint, objective core.Expression) (*solver.Program, error) {
	prog := &solver.Program{
		GramDim:  p.reg.GramSize(),
		ValDim:   p.reg.ValueSize(),
		Maximize: true,
	}
	prog.Constraints = make([]solver.Constraint, 0, len(cons))
	for _, c := range cons {
		lf, err := p.lowerForm(c.Expr)
		if err != nil {
			return nil, fmt.Errorf("constraint %s: %w", c.Tag, err)
		}
		// Fold the expression's constant into the bound: ⟨A,G⟩+aᵀF+k ≤ b
		// becomes ⟨A,G⟩+aᵀF ≤ b−k.
		bound := c.Bound - lf.Const
		lf.Const = 0
		rel := solver.LE
		if c.Rel == core.RelEq {
			rel = solver.EQ
		}
		prog.Constraints = append(prog.Constraints, solver.Constraint{
			Form:  lf,
			Rel:   rel,
			Bound: bound,
			Name:  c.Tag.String(),
		})
	}

	obj, err := p.lowerForm(objective)
	if err != nil {
		return nil, fmt.Errorf("objective: %w", err)
	}
	prog.Objective = obj

	if err := prog.Validate(); err != nil {
		return nil, err
	}

	return prog, nil
}

// lowerForm translates one Expression into Frobenius form against this
// problem's registry. An off-diagonal bilinear coefficient c is split as
// c/2 on each mirrored entry so that ⟨A,G⟩ recovers the full term; the
// diagonal keeps c as is. Any reference to a basis vector the registry
// never minted fails with ErrUnresolvedReference.
func (p *Problem) lowerForm(e core.Expression) (solver.LinearForm, error) {
	var lf solver.LinearForm

	if vt := e.ValueTerms(); len(vt) > 0 {
		lf.Vals = make([]float64, p.reg.ValueSize())
		for id, c := range vt {
			idx, ok := p.reg.ValueIndex(id)
			if !ok {
				return solver.LinearForm{}, fmt.Errorf("value id %d: %w", id, ErrUnresolvedReference)
			}
			lf.Vals[idx] += c
		}
	}

	if qt := e.QuadTerms(); len(qt) > 0 {
		g := mat.NewSymDense(p.reg.GramSize(), nil)
		for k, c := range qt {
			i, ok := p.reg.GramIndex(k.A)
			if !ok {
				return solver.LinearForm{}, fmt.Errorf("gram id %d: %w", k.A, ErrUnresolvedReference)
			}
			j, ok := p.reg.GramIndex(k.B)
			if !ok {
				return solver.LinearForm{}, fmt.Errorf("gram id %d: %w", k.B, ErrUnresolvedReference)
			}
			if i == j {
				g.SetSym(i, i, g.At(i, i)+c)
			} else {
				g.SetSym(i, j, g.At(i, j)+c/2)
			}
		}
		lf.Gram = g
	}

	lf.Const = e.Constant()

	return lf, nil
}
