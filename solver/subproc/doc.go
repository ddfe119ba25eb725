// SPDX-License-Identifier: MIT

// Package subproc runs an external SDP solver as a child process.
//
// The backend writes the assembled program to the child's stdin as one
// JSON document and reads one JSON solution document from its stdout.
// Matrices travel as dense row-major [][]float64. The engine-side Config
// (solver name, options, verbosity) is embedded in the request verbatim;
// the wrapper script decides what to do with it. Any pipe, process, or
// protocol failure surfaces as solver.ErrFailure with the child's stderr
// attached.
//
// Request document:
//
//	{
//	  "gram_dim": 3, "val_dim": 2, "maximize": true,
//	  "objective":   {"gram": [[...]], "vals": [...], "const": 0},
//	  "constraints": [{"gram": [[...]], "vals": [...], "const": 0,
//	                   "rel": "<=", "bound": 1, "name": "initial"}],
//	  "config": {"name": "", "options": {}, "verbose": false}
//	}
//
// Response document:
//
//	{
//	  "status": "optimal", "value": 0.666, "message": "",
//	  "gram": [[...]], "vals": [...],
//	  "dual_gram": [[...]], "duals": [...]
//	}
//
// status is one of optimal, infeasible, unbounded, error. Dual fields are
// optional; without them the certifier reports the proof as unavailable.
//
// The child is given no deadline here: the engine has no internal timeout
// by design, and the wrapper script is the place to impose one.
package subproc
