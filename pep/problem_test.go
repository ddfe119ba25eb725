// SPDX-License-Identifier: MIT

package pep_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/gopep/core"
	"github.com/katalvlaran/gopep/funcs"
	"github.com/katalvlaran/gopep/pep"
	"github.com/katalvlaran/gopep/solver"
)

// capture returns a backend that records the lowered program and reports a
// canned optimal value. No dual data, so certification stays unavailable.
func capture(val float64, got **solver.Program) solver.Backend {
	return solver.BackendFunc(func(p *solver.Program, _ solver.Config) (*solver.Solution, error) {
		*got = p

		return &solver.Solution{Status: solver.StatusOptimal, Value: val}, nil
	})
}

// buildGradientDescent declares one 1-smooth convex function and drives one
// step of gradient descent with unit step, measuring f(x1) − f(x*) under
// ‖x0 − x*‖² ≤ 1.
func buildGradientDescent(t *testing.T, p *pep.Problem) *funcs.Function {
	t.Helper()

	f, err := p.DeclareFunction(funcs.SmoothConvex{L: 1})
	require.NoError(t, err)
	xs, fs, err := f.StationaryPoint()
	require.NoError(t, err)

	x0 := p.SetInitialPoint()
	p.SetInitialCondition(core.Leq(core.SquaredNorm(core.SubPoints(x0, xs)), 1))

	g, _ := f.Oracle(x0)
	x1 := core.SubPoints(x0, core.ScalePoint(g, 1))
	p.SetPerformanceMetric(core.SubExprs(f.Value(x1), fs))

	return f
}

func TestSolve_ProgramShape(t *testing.T) {
	p := pep.New()
	buildGradientDescent(t, p)

	var prog *solver.Program
	res, err := p.Solve(capture(0.25, &prog), solver.Config{})
	require.NoError(t, err)
	require.NotNil(t, prog)

	// Basis: x*, x0, g(x0), g(x1) in the Gram block; f*, f(x0), f(x1) in
	// the value block. Three samples give 3·2 interpolation inequalities,
	// plus the initial condition.
	assert.Equal(t, 4, prog.GramDim)
	assert.Equal(t, 3, prog.ValDim)
	assert.Len(t, prog.Constraints, 7)
	assert.True(t, prog.Maximize)

	names := make([]string, 0, len(prog.Constraints))
	for _, c := range prog.Constraints {
		names = append(names, c.Name)
	}
	assert.Contains(t, names, "interpolation/f1(0,1)")
	assert.Contains(t, names, "initial")

	assert.InDelta(t, 0.25, res.Tau, 1e-15)
	require.Len(t, res.Report.Functions, 1)
	assert.Equal(t, "f1", res.Report.Functions[0].Name)
	assert.Equal(t, 3, res.Report.Functions[0].Samples)
	assert.Equal(t, 6, res.Report.Functions[0].Interpolation)
	assert.Equal(t, 7, res.Report.Constraints)
	assert.Contains(t, res.Report.String(), "optimal")
}

// The same declarations must lower to the same program, twice in a row.
func TestSolve_Deterministic(t *testing.T) {
	var progA, progB *solver.Program

	pa := pep.New()
	buildGradientDescent(t, pa)
	_, err := pa.Solve(capture(0, &progA), solver.Config{})
	require.NoError(t, err)

	pb := pep.New()
	buildGradientDescent(t, pb)
	_, err = pb.Solve(capture(0, &progB), solver.Config{})
	require.NoError(t, err)

	require.Equal(t, progA.GramDim, progB.GramDim)
	require.Equal(t, progA.ValDim, progB.ValDim)
	require.Len(t, progB.Constraints, len(progA.Constraints))
	for i := range progA.Constraints {
		assert.Equal(t, progA.Constraints[i].Name, progB.Constraints[i].Name)
		assert.InDelta(t, progA.Constraints[i].Bound, progB.Constraints[i].Bound, 1e-15)
	}
}

// Several metrics go through a hypograph variable: one extra value column,
// one τ ≤ metric row per metric, and τ alone as the objective.
func TestSolve_MultipleMetrics(t *testing.T) {
	p := pep.New()
	f, err := p.DeclareFunction(funcs.SmoothConvex{L: 1})
	require.NoError(t, err)
	xs, fs, err := f.StationaryPoint()
	require.NoError(t, err)

	x0 := p.SetInitialPoint()
	p.SetInitialCondition(core.Leq(core.SquaredNorm(core.SubPoints(x0, xs)), 1))
	g, _ := f.Oracle(x0)
	x1 := core.SubPoints(x0, core.ScalePoint(g, 1))

	p.SetPerformanceMetric(core.SubExprs(f.Value(x1), fs))
	p.SetPerformanceMetric(core.SubExprs(f.Value(x0), fs))

	var prog *solver.Program
	_, err = p.Solve(capture(0, &prog), solver.Config{})
	require.NoError(t, err)

	// f*, f(x0), f(x1), τ.
	assert.Equal(t, 4, prog.ValDim)
	assert.Len(t, prog.Constraints, 9)

	var metricRows int
	for _, c := range prog.Constraints {
		if strings.HasPrefix(c.Name, "metric") {
			metricRows++
			assert.Equal(t, solver.LE, c.Rel)
		}
	}
	assert.Equal(t, 2, metricRows)

	require.Nil(t, prog.Objective.Gram)
	require.Len(t, prog.Objective.Vals, 4)
	assert.Equal(t, []float64{0, 0, 0, 1}, prog.Objective.Vals)
}

func TestSolve_Guards(t *testing.T) {
	p := pep.New()
	f, err := p.DeclareFunction(funcs.Convex{})
	require.NoError(t, err)

	noop := capture(0, new(*solver.Program))

	_, err = p.Solve(nil, solver.Config{})
	require.ErrorIs(t, err, pep.ErrNilBackend)

	_, err = p.Solve(noop, solver.Config{})
	require.ErrorIs(t, err, pep.ErrNoMetric)

	x0 := p.SetInitialPoint()
	_, fv := f.Oracle(x0)
	p.SetPerformanceMetric(fv)
	_, err = p.Solve(noop, solver.Config{})
	require.NoError(t, err)

	_, err = p.Solve(noop, solver.Config{})
	require.ErrorIs(t, err, pep.ErrConsumed)

	// Reset rebinds the declared function to a fresh registry; a rebuilt
	// session solves again.
	p.Reset()
	x := p.SetInitialPoint()
	_, fv = f.Oracle(x)
	p.SetPerformanceMetric(fv)
	_, err = p.Solve(noop, solver.Config{})
	require.NoError(t, err)
}

func TestSolve_StatusMapping(t *testing.T) {
	build := func() *pep.Problem {
		p := pep.New()
		buildGradientDescent(t, p)

		return p
	}
	status := func(s solver.Status) solver.Backend {
		return solver.BackendFunc(func(*solver.Program, solver.Config) (*solver.Solution, error) {
			return &solver.Solution{Status: s, Message: "canned"}, nil
		})
	}

	_, err := build().Solve(status(solver.StatusInfeasible), solver.Config{})
	require.ErrorIs(t, err, solver.ErrInfeasible)

	_, err = build().Solve(status(solver.StatusUnbounded), solver.Config{})
	require.ErrorIs(t, err, solver.ErrInfeasible)

	_, err = build().Solve(status(solver.StatusError), solver.Config{})
	require.ErrorIs(t, err, solver.ErrFailure)

	boom := errors.New("child exploded")
	failing := solver.BackendFunc(func(*solver.Program, solver.Config) (*solver.Solution, error) {
		return nil, boom
	})
	_, err = build().Solve(failing, solver.Config{})
	require.ErrorIs(t, err, boom)
}

// A metric built over another problem's symbols is a caller bug and must
// fail lowering.
func TestSolve_UnresolvedReference(t *testing.T) {
	p := pep.New()
	buildGradientDescent(t, p)

	foreign := core.NewRegistry()
	p.SetPerformanceMetric(foreign.NewValue("elsewhere"))

	_, err := p.Solve(capture(0, new(*solver.Program)), solver.Config{})
	require.ErrorIs(t, err, pep.ErrUnresolvedReference)
}
