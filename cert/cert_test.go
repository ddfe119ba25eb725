// SPDX-License-Identifier: MIT

package cert_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/gopep/cert"
	"github.com/katalvlaran/gopep/solver"
)

// trace1Program is: maximize G[0,0] subject to G[0,0] ≤ 1, G ⪰ 0.
// Optimum 1 at G = [1], with λ = 1 and S = λ·1 − 1 = 0.
func trace1Program() *solver.Program {
	return &solver.Program{
		GramDim:   1,
		Maximize:  true,
		Objective: solver.LinearForm{Gram: mat.NewSymDense(1, []float64{1})},
		Constraints: []solver.Constraint{
			{
				Form:  solver.LinearForm{Gram: mat.NewSymDense(1, []float64{1})},
				Rel:   solver.LE,
				Bound: 1,
				Name:  "initial",
			},
		},
	}
}

func trace1Solution() *solver.Solution {
	return &solver.Solution{
		Status:   solver.StatusOptimal,
		Value:    1,
		Gram:     mat.NewSymDense(1, []float64{1}),
		DualGram: mat.NewSymDense(1, []float64{0}),
		Duals:    []float64{1},
	}
}

// TestCertify_ExactCertificate verifies a hand-checked optimal pair passes
// with zero residuals and no warnings.
func TestCertify_ExactCertificate(t *testing.T) {
	rep := cert.Certify(trace1Program(), trace1Solution(), cert.DefaultOptions())

	require.True(t, rep.Available)
	assert.Zero(t, rep.MatrixResidual)
	assert.Zero(t, rep.VectorResidual)
	assert.Zero(t, rep.ReconstructionError)
	assert.Equal(t, 1.0, rep.DualValue)
	assert.Zero(t, rep.DualityGap)
	assert.Zero(t, rep.MinEigDual)
	assert.Equal(t, 1.0, rep.MinEigGram)
	assert.True(t, rep.Clean(), "warnings: %v", rep.Warnings)
}

// TestCertify_ValueSide checks the b-vector residual path with a value
// variable: maximize F[0] subject to F[0] ≤ 2.
func TestCertify_ValueSide(t *testing.T) {
	p := &solver.Program{
		ValDim:    1,
		Maximize:  true,
		Objective: solver.LinearForm{Vals: []float64{1}},
		Constraints: []solver.Constraint{
			{Form: solver.LinearForm{Vals: []float64{1}}, Rel: solver.LE, Bound: 2, Name: "user"},
		},
	}
	sol := &solver.Solution{
		Status:   solver.StatusOptimal,
		Value:    2,
		Vals:     []float64{2},
		Gram:     nil,
		DualGram: mat.NewSymDense(1, nil), // engine always carries a PSD block
		Duals:    []float64{1},
	}
	// GramDim 0 with a 1×1 zero dual block: certify via the vector side.
	p.GramDim = 0
	rep := cert.Certify(p, sol, cert.DefaultOptions())
	require.True(t, rep.Available)
	assert.Zero(t, rep.VectorResidual)
	assert.Equal(t, 2.0, rep.DualValue)
	assert.Zero(t, rep.DualityGap)
}

// TestCertify_DetectsBrokenCertificates perturbs the exact certificate one
// defect at a time and expects the matching warning.
func TestCertify_DetectsBrokenCertificates(t *testing.T) {
	t.Run("reconstruction residual", func(t *testing.T) {
		sol := trace1Solution()
		sol.Duals = []float64{0.9} // S stays 0 ⇒ residual −0.1
		rep := cert.Certify(trace1Program(), sol, cert.DefaultOptions())
		assert.InDelta(t, 0.1, rep.MatrixResidual, 1e-12)
		assert.False(t, rep.Clean())
	})

	t.Run("negative inequality multiplier", func(t *testing.T) {
		sol := trace1Solution()
		sol.Duals = []float64{-1}
		sol.DualGram = mat.NewSymDense(1, []float64{-2}) // keeps residual 0
		rep := cert.Certify(trace1Program(), sol, cert.DefaultOptions())
		assert.Equal(t, -1.0, rep.WorstDualSign)
		assert.Less(t, rep.MinEigDual, 0.0)
		assert.False(t, rep.Clean())
	})

	t.Run("complementary slackness", func(t *testing.T) {
		sol := trace1Solution()
		sol.Gram = mat.NewSymDense(1, []float64{0.5}) // slack 0.5 with λ=1
		sol.Value = 0.5
		rep := cert.Certify(trace1Program(), sol, cert.DefaultOptions())
		assert.InDelta(t, 0.5, rep.WorstSlack, 1e-12)
		assert.False(t, rep.Clean())
	})

	t.Run("duality gap", func(t *testing.T) {
		sol := trace1Solution()
		sol.Value = 0.9 // dual bound stays 1
		rep := cert.Certify(trace1Program(), sol, cert.DefaultOptions())
		assert.InDelta(t, 0.1, rep.DualityGap, 1e-12)
		assert.False(t, rep.Clean())
	})
}

// TestCertify_NoDualData degrades to an unavailable certificate.
func TestCertify_NoDualData(t *testing.T) {
	sol := trace1Solution()
	sol.Duals = nil
	sol.DualGram = nil

	rep := cert.Certify(trace1Program(), sol, cert.DefaultOptions())
	assert.False(t, rep.Available)
	assert.False(t, rep.Clean())
	require.Len(t, rep.Warnings, 1)
}

// TestCertify_Thresholds verifies that tolerances are honored rather than
// hard-coded: the same slightly-off certificate passes under loose options
// and fails under tight ones.
func TestCertify_Thresholds(t *testing.T) {
	sol := trace1Solution()
	sol.Duals = []float64{1 + 1e-8} // residual 1e-8, gap 1e-8

	loose := cert.DefaultOptions()
	rep := cert.Certify(trace1Program(), sol, loose)
	assert.True(t, rep.Clean(), "1e-8 defects must pass 1e-6 thresholds: %v", rep.Warnings)

	tight := cert.Options{ReconTol: 1e-10, GapTol: 1e-10, PSDTol: 1e-10, SlackTol: 1e-10}
	rep = cert.Certify(trace1Program(), sol, tight)
	assert.False(t, rep.Clean())
}
