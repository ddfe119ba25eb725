// SPDX-License-Identifier: MIT
// Package solver: program, solution, and backend types.

package solver

import (
	"fmt"

	"gonum.org/v1/gonum/mat"
)

// Relation relates a constraint's affine form to its bound.
type Relation uint8

const (
	// LE states form ≤ bound.
	LE Relation = iota

	// EQ states form = bound.
	EQ
)

// String returns the conventional symbol for the relation.
func (r Relation) String() string {
	if r == EQ {
		return "="
	}

	return "<="
}

// LinearForm is one affine functional of the SDP variables:
// ⟨Gram, G⟩ + Vals·F + Const, with ⟨·,·⟩ the Frobenius inner product.
// Gram may be nil when the form touches no Gram entries; Vals may be nil
// likewise. A non-nil Gram is symmetric by construction of the lowering.
type LinearForm struct {
	Gram  *mat.SymDense
	Vals  []float64
	Const float64
}

// Eval evaluates the form at a concrete (G, F) assignment.
// Nil parts contribute zero.
func (lf LinearForm) Eval(g *mat.SymDense, f []float64) float64 {
	v := lf.Const
	if lf.Gram != nil && g != nil {
		n := lf.Gram.SymmetricDim()
		for i := 0; i < n; i++ {
			for j := 0; j < n; j++ {
				v += lf.Gram.At(i, j) * g.At(i, j)
			}
		}
	}
	for i, c := range lf.Vals {
		if i < len(f) {
			v += c * f[i]
		}
	}

	return v
}

// Constraint is one scalar row of the SDP: Form Rel Bound.
// Name carries provenance for diagnostics and certification reports.
type Constraint struct {
	Form  LinearForm
	Rel   Relation
	Bound float64
	Name  string
}

// Program is the assembled SDP.
//
//	optimize  Objective  over  G (GramDim×GramDim, G ⪰ 0), F (len ValDim)
//	subject to Constraints
//
// Maximize selects the optimization direction.
type Program struct {
	GramDim     int
	ValDim      int
	Constraints []Constraint
	Objective   LinearForm
	Maximize    bool
}

// Validate checks internal consistency of the program shape.
func (p *Program) Validate() error {
	if p.GramDim < 0 || p.ValDim < 0 {
		return fmt.Errorf("negative dimensions (n=%d, m=%d): %w", p.GramDim, p.ValDim, ErrBadProgram)
	}
	check := func(lf LinearForm, what string) error {
		if lf.Gram != nil && lf.Gram.SymmetricDim() != p.GramDim {
			return fmt.Errorf("%s: Gram form is %d×%d, program is %d×%d: %w",
				what, lf.Gram.SymmetricDim(), lf.Gram.SymmetricDim(), p.GramDim, p.GramDim, ErrBadProgram)
		}
		if lf.Vals != nil && len(lf.Vals) != p.ValDim {
			return fmt.Errorf("%s: value form has %d entries, program has %d: %w",
				what, len(lf.Vals), p.ValDim, ErrBadProgram)
		}

		return nil
	}
	if err := check(p.Objective, "objective"); err != nil {
		return err
	}
	for i, c := range p.Constraints {
		if err := check(c.Form, fmt.Sprintf("constraint %d (%s)", i, c.Name)); err != nil {
			return err
		}
	}

	return nil
}

// Status is the terminal state a backend reports.
type Status uint8

const (
	// StatusOptimal means primal and dual optima were found.
	StatusOptimal Status = iota

	// StatusInfeasible means the backend proved primal infeasibility.
	StatusInfeasible

	// StatusUnbounded means the backend proved the objective unbounded.
	StatusUnbounded

	// StatusError means the backend terminated abnormally.
	StatusError
)

// String returns the lowercase status name.
func (s Status) String() string {
	switch s {
	case StatusOptimal:
		return "optimal"
	case StatusInfeasible:
		return "infeasible"
	case StatusUnbounded:
		return "unbounded"
	default:
		return "error"
	}
}

// Solution is everything a backend reports back.
//
// Duals holds one multiplier per constraint, in program order; for
// inequality rows of a maximization these are nonnegative at optimality.
// DualGram is the multiplier matrix S ⪰ 0 of the PSD cone constraint.
// Backends that cannot produce dual data leave the fields nil; the
// certifier then reports the certificate as unavailable.
type Solution struct {
	Status   Status
	Value    float64
	Gram     *mat.SymDense
	Vals     []float64
	DualGram *mat.SymDense
	Duals    []float64
	Message  string
}

// Config is opaque backend configuration, passed through untouched.
type Config struct {
	// Name selects a solver within the backend, where that applies.
	Name string

	// Options are backend-specific key/value settings.
	Options map[string]string

	// Verbose asks the backend to emit its own progress output.
	Verbose bool
}

// Backend solves one assembled Program. Solve blocks; it is the engine's
// only blocking operation.
type Backend interface {
	Solve(p *Program, cfg Config) (*Solution, error)
}

// BackendFunc adapts a plain function to the Backend interface.
type BackendFunc func(p *Program, cfg Config) (*Solution, error)

// Solve implements Backend.
func (f BackendFunc) Solve(p *Program, cfg Config) (*Solution, error) { return f(p, cfg) }
