// SPDX-License-Identifier: MIT

// End-to-end scenarios against a real SDP solver. They need a numeric
// backend, so they run only when GOPEP_SOLVER_CMD names a solver command
// speaking the subproc JSON protocol (e.g. "python3 sdp_solver.py").

package pep_test

import (
	"math"
	"os"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/gopep/core"
	"github.com/katalvlaran/gopep/funcs"
	"github.com/katalvlaran/gopep/pep"
	"github.com/katalvlaran/gopep/solver"
	"github.com/katalvlaran/gopep/solver/subproc"
	"github.com/katalvlaran/gopep/steps"
)

func numericBackend(t *testing.T) solver.Backend {
	t.Helper()
	cmd := os.Getenv("GOPEP_SOLVER_CMD")
	if cmd == "" {
		t.Skip("GOPEP_SOLVER_CMD not set")
	}
	parts := strings.Fields(cmd)

	return subproc.New(parts[0], parts[1:]...)
}

// Worst case of gradient descent with step 1/L on an L-smooth convex
// function, under ‖x0 − x*‖² ≤ 1. The tight bound is L/(4n+2).
func gradientDescentTau(t *testing.T, backend solver.Backend, n int) float64 {
	t.Helper()

	p := pep.New()
	f, err := p.DeclareFunction(funcs.SmoothConvex{L: 1})
	require.NoError(t, err)
	xs, fs, err := f.StationaryPoint()
	require.NoError(t, err)

	x0 := p.SetInitialPoint()
	p.SetInitialCondition(core.Leq(core.SquaredNorm(core.SubPoints(x0, xs)), 1))

	x := x0
	for i := 0; i < n; i++ {
		g, _ := f.Oracle(x)
		x = core.SubPoints(x, core.ScalePoint(g, 1))
	}
	p.SetPerformanceMetric(core.SubExprs(f.Value(x), fs))

	res, err := p.Solve(backend, solver.Config{})
	require.NoError(t, err)

	return res.Tau
}

func TestScenario_GradientDescent(t *testing.T) {
	backend := numericBackend(t)

	tau1 := gradientDescentTau(t, backend, 1)
	tau3 := gradientDescentTau(t, backend, 3)

	assert.InDelta(t, 1.0/6.0, tau1, 1e-3)
	assert.InDelta(t, 1.0/14.0, tau3, 1e-3)
	assert.Less(t, tau3, tau1, "more iterations cannot worsen the bound")
}

// NoLips on F = f1 + f2 with f1 convex and L-smooth relative to a convex
// reference h, f2 a convex indicator over an unbounded domain. Measures
// F(x_n) − F(x*) under D_h(x*, x0) ≤ 1; the tight bound is 1/(γn).
func TestScenario_NoLips(t *testing.T) {
	backend := numericBackend(t)

	const (
		L     = 1.0
		gamma = 1 / (2 * L)
		n     = 3
	)

	p := pep.New()
	d, err := p.DeclareFunction(funcs.Convex{})
	require.NoError(t, err)
	f1, err := p.DeclareFunction(funcs.Convex{})
	require.NoError(t, err)
	f2, err := p.DeclareFunction(funcs.ConvexIndicator{D: math.Inf(1)})
	require.NoError(t, err)

	// Relative smoothness enters through the reference h = (d + f1)/L.
	h := funcs.Scale(funcs.Sum(d, f1), 1/L)
	objective := funcs.Sum(f1, f2)
	mirror := funcs.Sum(f2, h)

	xs, _, err := objective.StationaryPoint()
	require.NoError(t, err)
	_, fs := f1.Oracle(xs)
	_, hs := h.Oracle(xs)

	x0 := p.SetInitialPoint()
	gh0, h0 := h.Oracle(x0)
	gf0, _ := f1.Oracle(x0)

	// D_h(x*, x0) = h(x*) − h(x0) − ⟨∇h(x0), x* − x0⟩ ≤ 1.
	breg := core.SubExprs(core.SubExprs(hs, h0), core.InnerProduct(gh0, core.SubPoints(xs, x0)))
	p.SetInitialCondition(core.Leq(breg, 1))

	gfx, ghx := gf0, gh0
	var ffx core.Expression
	for i := 0; i < n; i++ {
		x, ghNext, _, err := steps.BregmanGradientStep(gfx, ghx, mirror, gamma)
		require.NoError(t, err)
		ghx = ghNext
		gfx, ffx = objective.Oracle(x)
	}
	p.SetPerformanceMetric(core.SubExprs(ffx, fs))

	res, err := p.Solve(backend, solver.Config{})
	require.NoError(t, err)

	assert.Equal(t, 15, res.Report.GramDim)
	assert.InDelta(t, 1/(gamma*n), res.Tau, 2e-3)
	assert.True(t, res.Report.Cert.Available)
}
