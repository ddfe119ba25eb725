// Package gopep turns worst-case analysis of first-order optimization
// methods into something you can compute: describe an algorithm
// symbolically, and get back a certified tight bound on its convergence.
//
// 🚀 What is gopep?
//
//	A performance-estimation engine that brings together:
//		• Symbolic algebra: abstract points, gradients and function values
//		  over an implicit Gram matrix
//		• Function classes: convex, smooth, strongly convex, indicators,
//		  relative smoothness — each with tight interpolation conditions
//		• Composites: weighted sums of declared functions with consistent
//		  oracle bookkeeping
//		• Primitive steps: Bregman gradient and proximal steps
//		• SDP lowering: the whole session compiled into one semidefinite
//		  program over (G, F)
//		• Solver backends: a JSON subprocess protocol for external solvers
//		• Proof certification: dual-certificate reconstruction with
//		  feasibility, sign, slackness and duality-gap checks
//
// ✨ Why choose gopep?
//
//   - Tight by construction – interpolation conditions are necessary and
//     sufficient, so the computed bound is the exact worst case
//   - Build-then-solve – declare, run the method symbolically, solve once;
//     no hidden state, no global registries
//   - Certified – every solve reconstructs the dual proof and reports how
//     well it checks out
//
// Everything is organized under six subpackages:
//
//	core/   — basis registry, points, expressions, constraints
//	funcs/  — function classes, oracles, composites, interpolation
//	steps/  — primitive algorithmic steps (Bregman, proximal)
//	pep/    — the Problem orchestrator: declare → drive → solve → report
//	solver/ — SDP program model and backends (solver/subproc)
//	cert/   — dual-certificate reconstruction and checks
//
// Quick session:
//
//	p := pep.New()
//	f, _ := p.DeclareFunction(funcs.SmoothConvex{L: 1})
//	xs, fs, _ := f.StationaryPoint()
//	x0 := p.SetInitialPoint()
//	p.SetInitialCondition(core.Leq(core.SquaredNorm(core.SubPoints(x0, xs)), 1))
//	g, _ := f.Oracle(x0)
//	x1 := core.SubPoints(x0, core.ScalePoint(g, 1))
//	p.SetPerformanceMetric(core.SubExprs(f.Value(x1), fs))
//	res, _ := p.Solve(backend, solver.Config{})
//	fmt.Println(res.Tau)
//
// Dive into the examples/ directory for complete worst-case analyses of
// gradient descent and the NoLips Bregman method.
//
//	go get github.com/katalvlaran/gopep
package gopep
