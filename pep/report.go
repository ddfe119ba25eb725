// SPDX-License-Identifier: MIT
// Package pep: the diagnostics report attached to every solve.

package pep

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/gopep/cert"
	"github.com/katalvlaran/gopep/solver"
)

// FunctionStats summarizes one declared function's contribution to the SDP.
type FunctionStats struct {
	Name          string
	Class         string
	Samples       int
	Interpolation int
	Diameter      int
	ValueFixes    int
}

// Report carries everything a caller needs to judge a solve: problem size,
// constraint inventory, solver outcome, and the dual-certificate numbers.
type Report struct {
	// GramDim and ValDim are the SDP dimensions n and m.
	GramDim, ValDim int

	// Functions lists per-function constraint statistics, in declaration
	// order.
	Functions []FunctionStats

	// Constraints is the total scalar constraint count of the SDP.
	Constraints int

	// Metrics is the number of registered performance metrics; the
	// objective is their minimum.
	Metrics int

	// Status and PrimalValue echo the backend's outcome.
	Status      solver.Status
	PrimalValue float64

	// Cert is the dual-certificate reconstruction outcome. Its warnings
	// are the CertificationWarnings of this solve; they never fail Solve.
	Cert cert.Report
}

// String renders the report as a short multi-line summary.
func (r Report) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "problem: Gram %dx%d, %d value(s), %d constraint(s), %d metric(s)\n",
		r.GramDim, r.GramDim, r.ValDim, r.Constraints, r.Metrics)
	for _, f := range r.Functions {
		fmt.Fprintf(&b, "  %s (%s): %d sample(s), %d interpolation", f.Name, f.Class, f.Samples, f.Interpolation)
		if f.Diameter > 0 {
			fmt.Fprintf(&b, ", %d diameter", f.Diameter)
		}
		if f.ValueFixes > 0 {
			fmt.Fprintf(&b, ", %d value-fix", f.ValueFixes)
		}
		b.WriteString("\n")
	}
	fmt.Fprintf(&b, "solver: %s, primal value %.6g\n", r.Status, r.PrimalValue)
	if r.Cert.Available {
		fmt.Fprintf(&b, "certificate: reconstruction error %.3e, duality gap %.3e",
			r.Cert.ReconstructionError, r.Cert.DualityGap)
		if !r.Cert.Clean() {
			fmt.Fprintf(&b, "\nwarnings: %s", strings.Join(r.Cert.Warnings, "; "))
		}
	} else {
		b.WriteString("certificate: unavailable")
	}

	return b.String()
}

// Result is what Solve returns on success.
type Result struct {
	// Tau is the certified worst-case value: the primal optimum of the
	// estimation SDP.
	Tau float64

	// Solution is the backend's full primal/dual assignment.
	Solution *solver.Solution

	// Program is the lowered SDP exactly as the backend received it, kept
	// for inspection and for re-certification under different thresholds.
	Program *solver.Program

	// Report is the structured diagnostics for this solve.
	Report Report
}
