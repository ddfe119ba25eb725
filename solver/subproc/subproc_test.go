// SPDX-License-Identifier: MIT

package subproc_test

import (
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/gopep/solver"
	"github.com/katalvlaran/gopep/solver/subproc"
)

func requireSh(t *testing.T) {
	t.Helper()
	if runtime.GOOS == "windows" {
		t.Skip("backend tests drive /bin/sh")
	}
}

func tinyProgram() *solver.Program {
	return &solver.Program{
		GramDim:   1,
		ValDim:    0,
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

// TestBackend_HappyPath runs a canned "solver" that swallows the request
// and answers a fixed optimal solution.
func TestBackend_HappyPath(t *testing.T) {
	requireSh(t)

	script := `cat >/dev/null; printf '%s' '{"status":"optimal","value":1,"gram":[[1]],"dual_gram":[[0]],"duals":[1]}'`
	b := subproc.New("/bin/sh", "-c", script)

	sol, err := b.Solve(tinyProgram(), solver.Config{})
	require.NoError(t, err)
	assert.Equal(t, solver.StatusOptimal, sol.Status)
	assert.Equal(t, 1.0, sol.Value)
	require.NotNil(t, sol.Gram)
	assert.Equal(t, 1.0, sol.Gram.At(0, 0))
	assert.Equal(t, []float64{1}, sol.Duals)
}

// TestBackend_InfeasibleStatus passes the status through without error;
// mapping to ErrInfeasible is the orchestrator's job.
func TestBackend_InfeasibleStatus(t *testing.T) {
	requireSh(t)

	script := `cat >/dev/null; printf '%s' '{"status":"infeasible","value":0}'`
	b := subproc.New("/bin/sh", "-c", script)

	sol, err := b.Solve(tinyProgram(), solver.Config{})
	require.NoError(t, err)
	assert.Equal(t, solver.StatusInfeasible, sol.Status)
}

// TestBackend_ProcessFailure surfaces a dying child as ErrFailure with its
// stderr attached.
func TestBackend_ProcessFailure(t *testing.T) {
	requireSh(t)

	b := subproc.New("/bin/sh", "-c", `cat >/dev/null; echo "blew up" >&2; exit 3`)
	_, err := b.Solve(tinyProgram(), solver.Config{})
	require.Error(t, err)
	assert.ErrorIs(t, err, solver.ErrFailure)
	assert.Contains(t, err.Error(), "blew up")
}

// TestBackend_GarbageOutput surfaces undecodable stdout as ErrFailure.
func TestBackend_GarbageOutput(t *testing.T) {
	requireSh(t)

	b := subproc.New("/bin/sh", "-c", `cat >/dev/null; echo "not json"`)
	_, err := b.Solve(tinyProgram(), solver.Config{})
	assert.ErrorIs(t, err, solver.ErrFailure)
}

// TestBackend_RejectsBadProgram validates before spawning anything.
func TestBackend_RejectsBadProgram(t *testing.T) {
	p := tinyProgram()
	p.Objective.Gram = mat.NewSymDense(2, nil) // wrong dimension

	b := subproc.New("/bin/false")
	_, err := b.Solve(p, solver.Config{})
	assert.ErrorIs(t, err, solver.ErrBadProgram)
}
