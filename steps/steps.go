// SPDX-License-Identifier: MIT
// Package steps: symbolic primitive-step constructors.

package steps

import (
	"errors"
	"fmt"
	"math"

	"github.com/katalvlaran/gopep/core"
	"github.com/katalvlaran/gopep/funcs"
)

var (
	// ErrBadStep indicates a non-positive or non-finite step size.
	ErrBadStep = errors.New("steps: step size must be positive and finite")

	// ErrNilFunction indicates a nil function was passed to a step.
	ErrNilFunction = errors.New("steps: nil function")
)

// BregmanGradientStep performs one mirror-descent update against the
// mirror map h (possibly a composite, e.g. kernel + indicator):
//
//	x ∈ argmin_u { γ·⟨g, u⟩ + D_h(u; x₀) }
//
// g is the driving gradient (of the smooth part, at the current iterate)
// and gh is ∇h at the current iterate. The output point x is a fresh
// unknown; its defining property ∇h(x) = gh − γ·g is recorded as an oracle
// triple on h, to be enforced through h's interpolation constraints.
//
// Returns the output point, ∇h(x), and h(x).
func BregmanGradientStep(g, gh core.Point, h *funcs.Function, gamma float64) (core.Point, core.Point, core.Expression, error) {
	if h == nil {
		return core.Point{}, core.Point{}, core.Expression{}, ErrNilFunction
	}
	if err := checkStep(gamma); err != nil {
		return core.Point{}, core.Point{}, core.Expression{}, err
	}

	reg := h.Registry()
	x := reg.NewPoint(h.Name())
	gx := core.SubPoints(gh, core.ScalePoint(g, gamma))
	hx := reg.NewValue(h.Name())
	if err := h.AddTriple(x, gx, hx); err != nil {
		return core.Point{}, core.Point{}, core.Expression{}, fmt.Errorf("bregman step: %w", err)
	}

	return x, gx, hx, nil
}

// ProximalStep performs x = prox_{γf}(x₀) = argmin_u { f(u) + ‖u−x₀‖²/(2γ) }.
// The output point is a fresh unknown with subgradient g = (x₀ − x)/γ
// recorded on f. With an indicator f this is the projection onto its
// domain.
//
// Returns the output point, the recorded subgradient, and f(x).
func ProximalStep(x0 core.Point, f *funcs.Function, gamma float64) (core.Point, core.Point, core.Expression, error) {
	if f == nil {
		return core.Point{}, core.Point{}, core.Expression{}, ErrNilFunction
	}
	if err := checkStep(gamma); err != nil {
		return core.Point{}, core.Point{}, core.Expression{}, err
	}

	reg := f.Registry()
	x := reg.NewPoint(f.Name())
	gx := core.ScalePoint(core.SubPoints(x0, x), 1/gamma)
	fx := reg.NewValue(f.Name())
	if err := f.AddTriple(x, gx, fx); err != nil {
		return core.Point{}, core.Point{}, core.Expression{}, fmt.Errorf("proximal step: %w", err)
	}

	return x, gx, fx, nil
}

func checkStep(gamma float64) error {
	if !(gamma > 0) || math.IsInf(gamma, 1) || math.IsNaN(gamma) {
		return ErrBadStep
	}

	return nil
}
