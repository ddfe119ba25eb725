// SPDX-License-Identifier: MIT

// Package pep orchestrates a performance estimation problem from
// declaration to certified worst-case bound.
//
// A Problem owns one basis registry and one constraint ledger. The caller
// declares abstract functions, obtains an initial point, drives the
// algorithm under study symbolically (oracle calls and primitive steps),
// states an initial condition and a performance metric, and calls Solve.
// Solve materializes every interpolation constraint, lowers the whole
// ledger into an SDP over a PSD Gram matrix G and a value vector F,
// dispatches it to a solver backend, certifies the returned dual proof,
// and reports the worst-case value τ with full diagnostics.
//
// Minimal session:
//
//	p := pep.New()
//	f, _ := p.DeclareFunction(funcs.SmoothConvex{L: 1})
//	xs, fs, _ := f.StationaryPoint()
//	x0 := p.SetInitialPoint()
//	p.SetInitialCondition(core.Leq(core.SquaredNorm(core.SubPoints(x0, xs)), 1))
//	x := x0
//	for t := 0; t < n; t++ {
//		g, _ := f.Oracle(x)
//		x = core.SubPoints(x, core.ScalePoint(g, gamma))
//	}
//	p.SetPerformanceMetric(core.SubExprs(f.Value(x), fs))
//	res, err := p.Solve(backend, solver.Config{})
//
// Everything is build-then-solve and single-threaded: all declarations
// must happen before Solve, Solve is the only blocking operation, and a
// solved Problem is consumed (Solve mutates the registry while lowering).
// Reset rebuilds an empty ledger over a fresh registry, preserving the
// declared functions' names and class parameters.
package pep
