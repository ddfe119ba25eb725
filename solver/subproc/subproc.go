// SPDX-License-Identifier: MIT
// Package subproc: the child-process backend itself.

package subproc

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os/exec"
	"strings"

	"github.com/katalvlaran/gopep/solver"
)

// Backend invokes an external solver command per Solve call.
// The zero value is not usable; construct with New.
type Backend struct {
	path string
	args []string
}

// New returns a Backend that runs the given command with the given fixed
// arguments for every solve.
func New(path string, args ...string) *Backend {
	return &Backend{path: path, args: args}
}

// Solve implements solver.Backend. It blocks until the child exits.
func (b *Backend) Solve(p *solver.Program, cfg solver.Config) (*solver.Solution, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}

	payload, err := json.Marshal(encodeRequest(p, cfg))
	if err != nil {
		return nil, fmt.Errorf("encode request: %w: %v", solver.ErrFailure, err)
	}

	cmd := exec.Command(b.path, b.args...)
	cmd.Stdin = bytes.NewReader(payload)
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		return nil, fmt.Errorf("%s: %w: %v%s", b.path, solver.ErrFailure, err, stderrTail(&stderr))
	}

	var resp wireResponse
	if err := json.Unmarshal(stdout.Bytes(), &resp); err != nil {
		return nil, fmt.Errorf("%s: decode response: %w: %v%s", b.path, solver.ErrFailure, err, stderrTail(&stderr))
	}

	sol, err := decodeResponse(resp, p)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", b.path, err)
	}

	return sol, nil
}

// stderrTail renders the last lines of the child's stderr for error
// messages, or nothing when stderr was silent.
func stderrTail(buf *bytes.Buffer) string {
	s := strings.TrimSpace(buf.String())
	if s == "" {
		return ""
	}
	lines := strings.Split(s, "\n")
	const keep = 5
	if len(lines) > keep {
		lines = lines[len(lines)-keep:]
	}

	return "; stderr: " + strings.Join(lines, " | ")
}
