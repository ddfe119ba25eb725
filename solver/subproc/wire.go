// SPDX-License-Identifier: MIT
// Package subproc: JSON wire representation of programs and solutions.

package subproc

import (
	"fmt"

	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/gopep/solver"
)

// wireForm is a LinearForm with the Gram part as dense rows.
type wireForm struct {
	Gram  [][]float64 `json:"gram,omitempty"`
	Vals  []float64   `json:"vals,omitempty"`
	Const float64     `json:"const,omitempty"`
}

// wireConstraint is one scalar row of the program.
type wireConstraint struct {
	wireForm
	Rel   string  `json:"rel"`
	Bound float64 `json:"bound"`
	Name  string  `json:"name,omitempty"`
}

// wireConfig mirrors solver.Config.
type wireConfig struct {
	Name    string            `json:"name,omitempty"`
	Options map[string]string `json:"options,omitempty"`
	Verbose bool              `json:"verbose,omitempty"`
}

// wireRequest is the full request document.
type wireRequest struct {
	GramDim     int              `json:"gram_dim"`
	ValDim      int              `json:"val_dim"`
	Maximize    bool             `json:"maximize"`
	Objective   wireForm         `json:"objective"`
	Constraints []wireConstraint `json:"constraints"`
	Config      wireConfig       `json:"config"`
}

// wireResponse is the full response document.
type wireResponse struct {
	Status   string      `json:"status"`
	Value    float64     `json:"value"`
	Gram     [][]float64 `json:"gram,omitempty"`
	Vals     []float64   `json:"vals,omitempty"`
	DualGram [][]float64 `json:"dual_gram,omitempty"`
	Duals    []float64   `json:"duals,omitempty"`
	Message  string      `json:"message,omitempty"`
}

// symToRows flattens a SymDense into dense rows; nil stays nil.
func symToRows(s *mat.SymDense) [][]float64 {
	if s == nil {
		return nil
	}
	n := s.SymmetricDim()
	rows := make([][]float64, n)
	for i := 0; i < n; i++ {
		rows[i] = make([]float64, n)
		for j := 0; j < n; j++ {
			rows[i][j] = s.At(i, j)
		}
	}

	return rows
}

// rowsToSym rebuilds a SymDense of dimension n, symmetrizing any numeric
// asymmetry by averaging mirrored entries. nil input stays nil.
func rowsToSym(rows [][]float64, n int) (*mat.SymDense, error) {
	if rows == nil {
		return nil, nil
	}
	if len(rows) != n {
		return nil, fmt.Errorf("matrix has %d rows, want %d: %w", len(rows), n, solver.ErrFailure)
	}
	s := mat.NewSymDense(n, nil)
	for i := 0; i < n; i++ {
		if len(rows[i]) != n {
			return nil, fmt.Errorf("row %d has %d entries, want %d: %w", i, len(rows[i]), n, solver.ErrFailure)
		}
		for j := i; j < n; j++ {
			s.SetSym(i, j, (rows[i][j]+rows[j][i])/2)
		}
	}

	return s, nil
}

// encodeRequest converts a validated program plus config to wire form.
func encodeRequest(p *solver.Program, cfg solver.Config) wireRequest {
	req := wireRequest{
		GramDim:  p.GramDim,
		ValDim:   p.ValDim,
		Maximize: p.Maximize,
		Objective: wireForm{
			Gram:  symToRows(p.Objective.Gram),
			Vals:  p.Objective.Vals,
			Const: p.Objective.Const,
		},
		Config: wireConfig{Name: cfg.Name, Options: cfg.Options, Verbose: cfg.Verbose},
	}
	req.Constraints = make([]wireConstraint, len(p.Constraints))
	for i, c := range p.Constraints {
		req.Constraints[i] = wireConstraint{
			wireForm: wireForm{
				Gram:  symToRows(c.Form.Gram),
				Vals:  c.Form.Vals,
				Const: c.Form.Const,
			},
			Rel:   c.Rel.String(),
			Bound: c.Bound,
			Name:  c.Name,
		}
	}

	return req
}

// decodeResponse converts a wire response back to a Solution.
func decodeResponse(resp wireResponse, p *solver.Program) (*solver.Solution, error) {
	var status solver.Status
	switch resp.Status {
	case "optimal":
		status = solver.StatusOptimal
	case "infeasible":
		status = solver.StatusInfeasible
	case "unbounded":
		status = solver.StatusUnbounded
	case "error":
		status = solver.StatusError
	default:
		return nil, fmt.Errorf("unknown status %q: %w", resp.Status, solver.ErrFailure)
	}

	gram, err := rowsToSym(resp.Gram, p.GramDim)
	if err != nil {
		return nil, fmt.Errorf("primal gram: %w", err)
	}
	dualGram, err := rowsToSym(resp.DualGram, p.GramDim)
	if err != nil {
		return nil, fmt.Errorf("dual gram: %w", err)
	}
	if resp.Duals != nil && len(resp.Duals) != len(p.Constraints) {
		return nil, fmt.Errorf("%d dual scalars for %d constraints: %w",
			len(resp.Duals), len(p.Constraints), solver.ErrFailure)
	}
	if resp.Vals != nil && len(resp.Vals) != p.ValDim {
		return nil, fmt.Errorf("%d primal values for dimension %d: %w",
			len(resp.Vals), p.ValDim, solver.ErrFailure)
	}

	return &solver.Solution{
		Status:   status,
		Value:    resp.Value,
		Gram:     gram,
		Vals:     resp.Vals,
		DualGram: dualGram,
		Duals:    resp.Duals,
		Message:  resp.Message,
	}, nil
}
