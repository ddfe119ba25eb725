// SPDX-License-Identifier: MIT
// Package funcs: Function, its oracle, and linear composition.

package funcs

import (
	"fmt"
	"math"
	"strings"

	"github.com/katalvlaran/gopep/core"
)

// Triple is one recorded oracle sample: a point, the abstract
// (sub)gradient minted at it, and the abstract function value.
type Triple struct {
	X core.Point
	G core.Point
	F core.Expression
}

// component is one weighted leaf of a composite function.
type component struct {
	fn   *Function
	coef float64
}

// Function is either a declared leaf (it carries class parameters and
// records oracle triples) or a linear combination of leaves built with Sum
// and Scale. Composites record nothing themselves: their oracle fans out
// to the leaves, and interpolation always happens at the leaves.
//
// Functions are not safe for concurrent use; the engine is build-then-solve
// single-threaded by design.
type Function struct {
	name    string
	reg     *core.Registry
	params  Params      // non-nil exactly for leaves
	leaves  []component // non-empty exactly for composites
	triples []Triple
	memo    map[string]int // Point.Key() -> triple index
}

// New declares a leaf function of the given class against the registry.
// The name is used for basis-vector ownership, tags and reports.
func New(reg *core.Registry, name string, params Params) (*Function, error) {
	if reg == nil {
		return nil, fmt.Errorf("nil registry: %w", ErrBadParams)
	}
	if params == nil {
		return nil, fmt.Errorf("nil params: %w", ErrBadParams)
	}
	if err := params.validate(); err != nil {
		return nil, fmt.Errorf("%s %q: %w", params.Class(), name, err)
	}

	return &Function{
		name:   name,
		reg:    reg,
		params: params,
		memo:   make(map[string]int),
	}, nil
}

// Name returns the declared or derived name.
func (f *Function) Name() string { return f.name }

// Registry returns the basis registry this function allocates against.
func (f *Function) Registry() *core.Registry { return f.reg }

// IsLeaf reports whether f is a declared function (as opposed to a linear
// combination).
func (f *Function) IsLeaf() bool { return f.params != nil }

// Params returns the class parameter record; nil for composites.
func (f *Function) Params() Params { return f.params }

// Len reports the number of distinct oracle samples recorded on a leaf.
// Composites record nothing and report 0.
func (f *Function) Len() int { return len(f.triples) }

// Triples returns a copy of the recorded samples, in recording order.
func (f *Function) Triples() []Triple {
	out := make([]Triple, len(f.triples))
	copy(out, f.triples)

	return out
}

// record appends a sample and maintains the memo. For a relatively-smooth
// leaf the kernel is sampled at the same point immediately, so the
// interpolation generator always finds the kernel triples it needs.
func (f *Function) record(x, g core.Point, v core.Expression) {
	f.memo[x.Key()] = len(f.triples)
	f.triples = append(f.triples, Triple{X: x, G: g, F: v})
	if p, ok := f.params.(RelativelySmooth); ok {
		p.Kernel.Oracle(x)
	}
}

// lookup returns the recorded sample at x, if any.
func (f *Function) lookup(x core.Point) (Triple, bool) {
	i, ok := f.memo[x.Key()]
	if !ok {
		return Triple{}, false
	}

	return f.triples[i], true
}

// Oracle queries f at x and returns the abstract (gradient, value) pair.
//
// On a leaf, the first query at a given point mints a fresh gradient and
// value; repeated queries at the same point (same affine combination)
// return the original pair and allocate nothing. On a composite the oracle
// fans out to the leaves, reusing any leaf sample that already exists, and
// returns the weighted sums.
func (f *Function) Oracle(x core.Point) (core.Point, core.Expression) {
	if f.IsLeaf() {
		if t, ok := f.lookup(x); ok {
			return t.G, t.F
		}
		g := f.reg.NewGradient(f.name)
		v := f.reg.NewValue(f.name)
		f.record(x, g, v)

		return g, v
	}

	g := core.ZeroPoint()
	v := core.Expression{}
	for _, c := range f.leaves {
		lg, lv := c.fn.Oracle(x)
		g = core.AddPoints(g, core.ScalePoint(lg, c.coef))
		v = core.AddExprs(v, core.ScaleExpr(lv, c.coef))
	}

	return g, v
}

// Value returns the abstract function value of f at x, sampling the oracle
// if x has not been queried before.
func (f *Function) Value(x core.Point) core.Expression {
	_, v := f.Oracle(x)

	return v
}

// AddTriple records an externally determined sample (x, g, v), as primitive
// steps do when they assert first-order optimality of an update.
//
// On a leaf it fails with ErrDuplicatePoint if x was already sampled. On a
// composite the sample is distributed structurally: every leaf but the last
// is sampled through its oracle (reusing existing samples), and the last
// leaf absorbs the remainder, so the supplied pair holds exactly as a
// linear identity among basis vectors rather than as an SDP constraint.
func (f *Function) AddTriple(x, g core.Point, v core.Expression) error {
	if f.IsLeaf() {
		if _, ok := f.lookup(x); ok {
			return fmt.Errorf("function %q: %w", f.name, ErrDuplicatePoint)
		}
		f.record(x, g, v)

		return nil
	}

	restG, restV := g, v
	last := len(f.leaves) - 1
	for _, c := range f.leaves[:last] {
		lg, lv := c.fn.Oracle(x)
		restG = core.SubPoints(restG, core.ScalePoint(lg, c.coef))
		restV = core.SubExprs(restV, core.ScaleExpr(lv, c.coef))
	}
	cl := f.leaves[last]

	return cl.fn.AddTriple(x, core.ScalePoint(restG, 1/cl.coef), core.ScaleExpr(restV, 1/cl.coef))
}

// StationaryPoint mints a fresh point at which f is stationary: its
// (sub)gradient there is the zero vector. The function value at the point
// is returned alongside. For composites the zero gradient is encoded
// structurally across the leaves, exactly as AddTriple does.
func (f *Function) StationaryPoint() (core.Point, core.Expression, error) {
	x := f.reg.NewPoint(f.name)
	v := f.reg.NewValue(f.name)
	if err := f.AddTriple(x, core.ZeroPoint(), v); err != nil {
		return core.Point{}, core.Expression{}, err
	}

	return x, v, nil
}

// Reset discards every recorded sample and rebinds the function to a fresh
// registry, preserving name and class parameters. The orchestrator uses it
// to rebuild a problem skeleton for a second solve. Composites derived with
// Sum or Scale are views over their leaves and must be rebuilt after a
// reset; Reset on a composite only rebinds it.
func (f *Function) Reset(reg *core.Registry) {
	f.reg = reg
	f.triples = nil
	if f.IsLeaf() {
		f.memo = make(map[string]int)
	}
}

// Sum returns the function Σ fs[i]. All operands must share one registry.
// Panics on an empty operand list, nil operands, a registry mismatch, or a
// combination whose leaves all cancel: those are programmer errors, not
// recoverable states.
func Sum(fs ...*Function) *Function {
	if len(fs) == 0 {
		panic("funcs: Sum requires at least one operand")
	}
	parts := make([]*Function, len(fs))
	copy(parts, fs)

	return combine(parts, nil)
}

// Scale returns s·f. Panics on s = 0, NaN/Inf s, or nil f.
func Scale(f *Function, s float64) *Function {
	if f == nil {
		panic("funcs: Scale of nil function")
	}
	if s == 0 || math.IsNaN(s) || math.IsInf(s, 0) {
		panic("funcs: Scale factor must be finite and non-zero")
	}

	return combine([]*Function{f}, []float64{s})
}

// combine flattens weighted operands into a composite over leaves,
// merging repeated leaves and dropping exact cancellations.
func combine(fs []*Function, ws []float64) *Function {
	var reg *core.Registry
	order := make([]*Function, 0, len(fs))
	coefs := make(map[*Function]float64, len(fs))
	names := make([]string, 0, len(fs))

	for i, f := range fs {
		if f == nil {
			panic("funcs: nil function in combination")
		}
		if reg == nil {
			reg = f.reg
		} else if reg != f.reg {
			panic("funcs: functions from different registries cannot be combined")
		}
		w := 1.0
		if ws != nil {
			w = ws[i]
		}
		if w == 1 {
			names = append(names, f.name)
		} else {
			names = append(names, fmt.Sprintf("%g*%s", w, f.name))
		}
		if f.IsLeaf() {
			if _, seen := coefs[f]; !seen {
				order = append(order, f)
			}
			coefs[f] += w

			continue
		}
		for _, c := range f.leaves {
			if _, seen := coefs[c.fn]; !seen {
				order = append(order, c.fn)
			}
			coefs[c.fn] += w * c.coef
		}
	}

	leaves := make([]component, 0, len(order))
	for _, leaf := range order {
		if c := coefs[leaf]; c != 0 {
			leaves = append(leaves, component{fn: leaf, coef: c})
		}
	}
	if len(leaves) == 0 {
		panic("funcs: combination cancels to the zero function")
	}

	return &Function{
		name:   "(" + strings.Join(names, " + ") + ")",
		reg:    reg,
		leaves: leaves,
	}
}
