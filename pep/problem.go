// SPDX-License-Identifier: MIT
// Package pep: the Problem orchestrator.

package pep

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/katalvlaran/gopep/cert"
	"github.com/katalvlaran/gopep/core"
	"github.com/katalvlaran/gopep/funcs"
	"github.com/katalvlaran/gopep/solver"
)

// Problem is one estimation session: a basis registry, the declared
// functions, and the constraint ledger. It is exclusively owned by one
// caller and is not safe for concurrent use.
type Problem struct {
	reg      *core.Registry
	opts     options
	declared []*funcs.Function
	initial  []core.Constraint
	user     []core.Constraint
	metrics  []core.Expression
	consumed bool
}

// New creates an empty Problem.
func New(opts ...Option) *Problem {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	return &Problem{reg: core.NewRegistry(), opts: o}
}

// Registry exposes the problem's basis registry, for building points and
// driving primitive steps.
func (p *Problem) Registry() *core.Registry { return p.reg }

// DeclareFunction declares a leaf function of the given class and adds it
// to the ledger. Functions are named f1, f2, … in declaration order.
func (p *Problem) DeclareFunction(params funcs.Params) (*funcs.Function, error) {
	name := fmt.Sprintf("f%d", len(p.declared)+1)
	f, err := funcs.New(p.reg, name, params)
	if err != nil {
		return nil, err
	}
	p.declared = append(p.declared, f)
	p.opts.log.Info("declared function",
		zap.String("function", name),
		zap.Stringer("class", params.Class()))

	return f, nil
}

// SetInitialPoint mints the algorithm's starting point x₀.
func (p *Problem) SetInitialPoint() core.Point {
	return p.reg.NewPoint("problem")
}

// SetInitialCondition registers an initial condition, e.g. a bound on the
// distance between x₀ and the optimum.
func (p *Problem) SetInitialCondition(c core.Constraint) {
	p.initial = append(p.initial, c.WithTag(core.Tag{Origin: core.OriginInitial, I: -1, J: -1}))
}

// AddConstraint registers a general user constraint.
func (p *Problem) AddConstraint(c core.Constraint) {
	if c.Tag.Origin == "" {
		c = c.WithTag(core.Tag{Origin: core.OriginUser, I: -1, J: -1})
	}
	p.user = append(p.user, c)
}

// SetPerformanceMetric registers one performance metric. Called repeatedly
// it accumulates: the worst case is then taken over the minimum of all
// registered metrics, as methods certified through a best-iterate argument
// require.
func (p *Problem) SetPerformanceMetric(e core.Expression) {
	p.metrics = append(p.metrics, e)
}

// Solve assembles the SDP, dispatches it to the backend, certifies the
// dual proof, and returns the worst-case value with diagnostics.
//
// Solve consumes the Problem: lowering mutates the registry (the hypograph
// objective variable, if several metrics are set), so a second Solve
// without Reset fails with ErrConsumed. Infeasible or unbounded outcomes
// surface as solver.ErrInfeasible, abnormal backend terminations as
// solver.ErrFailure; certification trouble is reported, never fatal.
func (p *Problem) Solve(backend solver.Backend, cfg solver.Config) (*Result, error) {
	if p.consumed {
		return nil, ErrConsumed
	}
	if backend == nil {
		return nil, ErrNilBackend
	}
	if len(p.metrics) == 0 {
		return nil, ErrNoMetric
	}
	p.consumed = true

	cons, stats, err := p.materialize()
	if err != nil {
		return nil, err
	}

	// The objective: a single metric lowers directly; several metrics go
	// through a hypograph variable τ with τ ≤ metric_k, maximize τ.
	objective := p.metrics[0]
	if len(p.metrics) > 1 {
		tau := p.reg.NewValue("objective")
		for k, m := range p.metrics {
			hypo := core.Leq(core.SubExprs(tau, m), 0).
				WithTag(core.Tag{Origin: core.OriginMetric, I: k, J: -1})
			cons = append(cons, hypo)
		}
		objective = tau
	}

	prog, err := p.lower(cons, objective)
	if err != nil {
		return nil, err
	}
	p.opts.log.Info("compiled SDP",
		zap.Int("gram_dim", prog.GramDim),
		zap.Int("value_dim", prog.ValDim),
		zap.Int("constraints", len(prog.Constraints)),
		zap.Int("metrics", len(p.metrics)))

	sol, err := backend.Solve(prog, cfg)
	if err != nil {
		return nil, fmt.Errorf("pep: solve: %w", err)
	}
	switch sol.Status {
	case solver.StatusOptimal:
		// Proceed to certification.
	case solver.StatusInfeasible, solver.StatusUnbounded:
		return nil, fmt.Errorf("pep: status %s: %w", sol.Status, solver.ErrInfeasible)
	default:
		return nil, fmt.Errorf("pep: status %s (%s): %w", sol.Status, sol.Message, solver.ErrFailure)
	}
	p.opts.log.Info("solver finished",
		zap.Stringer("status", sol.Status),
		zap.Float64("primal_value", sol.Value))

	certRep := cert.Certify(prog, sol, p.opts.certOpts)
	if certRep.Clean() {
		p.opts.log.Info("certificate reconstructed",
			zap.Float64("reconstruction_error", certRep.ReconstructionError),
			zap.Float64("duality_gap", certRep.DualityGap))
	} else {
		p.opts.log.Warn("certification incomplete", zap.Strings("warnings", certRep.Warnings))
	}

	return &Result{
		Tau:      sol.Value,
		Solution: sol,
		Program:  prog,
		Report: Report{
			GramDim:     prog.GramDim,
			ValDim:      prog.ValDim,
			Functions:   stats,
			Constraints: len(prog.Constraints),
			Metrics:     len(p.metrics),
			Status:      sol.Status,
			PrimalValue: sol.Value,
			Cert:        certRep,
		},
	}, nil
}

// materialize generates every declared function's constraint set and
// appends the ledger's initial and user constraints.
func (p *Problem) materialize() ([]core.Constraint, []FunctionStats, error) {
	var cons []core.Constraint
	stats := make([]FunctionStats, 0, len(p.declared))
	for _, f := range p.declared {
		cs, err := f.Interpolate()
		if err != nil {
			return nil, nil, err
		}
		st := FunctionStats{
			Name:    f.Name(),
			Class:   f.Params().Class().String(),
			Samples: f.Len(),
		}
		for _, c := range cs {
			switch c.Tag.Origin {
			case core.OriginInterpolation:
				st.Interpolation++
			case core.OriginDiameter:
				st.Diameter++
			case core.OriginValueFix:
				st.ValueFixes++
			}
		}
		p.opts.log.Info("interpolation constraints",
			zap.String("function", f.Name()),
			zap.String("class", st.Class),
			zap.Int("samples", st.Samples),
			zap.Int("constraints", len(cs)))
		cons = append(cons, cs...)
		stats = append(stats, st)
	}
	cons = append(cons, p.initial...)
	cons = append(cons, p.user...)

	return cons, stats, nil
}

// Reset clears the ledger and every recorded oracle sample, rebinding the
// declared functions to a fresh registry. Class parameters and names
// survive; points, gradients, values, constraints and metrics do not.
// Composites built with funcs.Sum or funcs.Scale must be rebuilt.
func (p *Problem) Reset() {
	p.reg = core.NewRegistry()
	for _, f := range p.declared {
		f.Reset(p.reg)
	}
	p.initial = nil
	p.user = nil
	p.metrics = nil
	p.consumed = false
}
