// SPDX-License-Identifier: MIT
// Package cert: certificate reconstruction and feasibility checks.

package cert

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/gopep/solver"
)

// Default thresholds. They match what interior-point SDP solvers reach on
// well-posed estimation problems with an order of magnitude to spare; see
// Options for why they are not carved in stone.
const (
	// DefaultReconTol bounds the acceptable reconstruction residual.
	DefaultReconTol = 1e-6

	// DefaultGapTol bounds the acceptable absolute duality gap.
	DefaultGapTol = 1e-6

	// DefaultPSDTol is how negative a "nonnegative" eigenvalue or dual
	// multiplier may be before it counts as a violation.
	DefaultPSDTol = 1e-6

	// DefaultSlackTol bounds the acceptable complementary-slackness
	// magnitude max_c |λ_c·slack_c|.
	DefaultSlackTol = 1e-6
)

// Options are the certification thresholds. Sensible values depend on the
// backend's own termination tolerances, so they are configuration, not
// constants of nature.
type Options struct {
	ReconTol float64
	GapTol   float64
	PSDTol   float64
	SlackTol float64
}

// DefaultOptions returns the default thresholds.
func DefaultOptions() Options {
	return Options{
		ReconTol: DefaultReconTol,
		GapTol:   DefaultGapTol,
		PSDTol:   DefaultPSDTol,
		SlackTol: DefaultSlackTol,
	}
}

// Report is the numeric outcome of certification.
type Report struct {
	// Available is false when the backend reported no dual data; all other
	// fields are then zero and a single warning explains the absence.
	Available bool

	// MatrixResidual is ‖Σλ_c·A_c − A_obj − S‖_F.
	MatrixResidual float64

	// VectorResidual is ‖Σλ_c·b_c − b_obj‖₂.
	VectorResidual float64

	// ReconstructionError combines both residuals; this is the headline
	// "the proof is reconstituted up to ..." number.
	ReconstructionError float64

	// DualValue is the certified bound Σλ_c·bound_c (constants folded).
	DualValue float64

	// DualityGap is |primal − DualValue|.
	DualityGap float64

	// MinEigDual and MinEigGram are the smallest eigenvalues of S and of
	// the primal Gram matrix.
	MinEigDual float64
	MinEigGram float64

	// WorstDualSign is the most negative multiplier found on an inequality
	// row (0 when all are nonnegative).
	WorstDualSign float64

	// WorstSlack is max_c |λ_c·slack_c| over inequality rows.
	WorstSlack float64

	// Warnings lists every threshold violation in human-readable form.
	// An empty list means the certificate checks out.
	Warnings []string
}

// Clean reports whether certification passed with no warnings.
func (r Report) Clean() bool { return r.Available && len(r.Warnings) == 0 }

// Certify rebuilds the dual certificate for a solved program.
// It never returns an error: missing or broken dual data degrades to
// warnings on the report, matching its diagnostic role.
func Certify(p *solver.Program, sol *solver.Solution, opts Options) Report {
	var rep Report
	if sol == nil || sol.Duals == nil || sol.DualGram == nil {
		rep.Warnings = append(rep.Warnings, "backend reported no dual data; certificate unavailable")

		return rep
	}
	rep.Available = true

	// Certification works in the maximize convention; flip once if needed.
	sign := 1.0
	if !p.Maximize {
		sign = -1
	}

	n, m := p.GramDim, p.ValDim

	// Matrix side: Σλ_c·A_c − A_obj − S.
	comb := mat.NewSymDense(max(n, 1), nil)
	if p.Objective.Gram != nil {
		addScaledSym(comb, -sign, p.Objective.Gram)
	}
	// Value side: Σλ_c·b_c − b_obj.
	vres := make([]float64, m)
	for i, c := range p.Objective.Vals {
		vres[i] -= sign * c
	}

	dual := 0.0
	for i, c := range p.Constraints {
		l := sol.Duals[i]
		if c.Form.Gram != nil {
			addScaledSym(comb, l, c.Form.Gram)
		}
		for j, b := range c.Form.Vals {
			vres[j] += l * b
		}
		dual += l * (c.Bound - c.Form.Const)
		if c.Rel == solver.LE {
			if l < rep.WorstDualSign {
				rep.WorstDualSign = l
			}
			slack := c.Bound - c.Form.Eval(sol.Gram, sol.Vals)
			if s := math.Abs(l * slack); s > rep.WorstSlack {
				rep.WorstSlack = s
			}
		}
	}
	dual += sign * p.Objective.Const
	rep.DualValue = sign * dual

	if n > 0 {
		addScaledSym(comb, -1, sol.DualGram)
		rep.MatrixResidual = mat.Norm(comb, 2)
	}
	rep.VectorResidual = floats.Norm(vres, 2)
	rep.ReconstructionError = math.Hypot(rep.MatrixResidual, rep.VectorResidual)
	rep.DualityGap = math.Abs(sol.Value - rep.DualValue)
	rep.MinEigDual = minEig(sol.DualGram)
	rep.MinEigGram = minEig(sol.Gram)

	warn := func(cond bool, format string, args ...any) {
		if cond {
			rep.Warnings = append(rep.Warnings, fmt.Sprintf(format, args...))
		}
	}
	warn(rep.ReconstructionError > opts.ReconTol,
		"proof reconstruction error %.3e exceeds %.1e", rep.ReconstructionError, opts.ReconTol)
	warn(rep.DualityGap > opts.GapTol,
		"duality gap %.3e exceeds %.1e", rep.DualityGap, opts.GapTol)
	warn(rep.MinEigDual < -opts.PSDTol,
		"dual matrix S is not PSD (min eigenvalue %.3e)", rep.MinEigDual)
	warn(rep.MinEigGram < -opts.PSDTol,
		"primal Gram matrix is not PSD (min eigenvalue %.3e)", rep.MinEigGram)
	warn(rep.WorstDualSign < -opts.PSDTol,
		"negative multiplier %.3e on an inequality constraint", rep.WorstDualSign)
	warn(rep.WorstSlack > opts.SlackTol,
		"complementary slackness magnitude %.3e exceeds %.1e", rep.WorstSlack, opts.SlackTol)

	return rep
}

// addScaledSym accumulates dst += s·a over the upper triangle.
func addScaledSym(dst *mat.SymDense, s float64, a *mat.SymDense) {
	n := a.SymmetricDim()
	for i := 0; i < n; i++ {
		for j := i; j < n; j++ {
			dst.SetSym(i, j, dst.At(i, j)+s*a.At(i, j))
		}
	}
}

// minEig returns the smallest eigenvalue of a symmetric matrix, or 0 for
// nil/empty input. A failed factorization reports -Inf so it can never
// masquerade as a passed PSD check.
func minEig(s *mat.SymDense) float64 {
	if s == nil || s.SymmetricDim() == 0 {
		return 0
	}
	var es mat.EigenSym
	if !es.Factorize(s, false) {
		return math.Inf(-1)
	}
	vals := es.Values(nil)

	return floats.Min(vals)
}
