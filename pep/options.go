// SPDX-License-Identifier: MIT
// Package pep: functional configuration for the orchestrator.
//
// Defaults are quiet and conservative: no logging, certification thresholds
// from package cert. Options panic on nonsensical values; misconfiguration
// is a programmer error, not a runtime state.

package pep

import (
	"go.uber.org/zap"

	"github.com/katalvlaran/gopep/cert"
)

// Option configures a Problem at construction time.
type Option func(*options)

type options struct {
	log      *zap.Logger
	certOpts cert.Options
}

func defaultOptions() options {
	return options{
		log:      zap.NewNop(),
		certOpts: cert.DefaultOptions(),
	}
}

// WithLogger attaches a structured logger for setup and solve narration.
// A nil logger silently falls back to the no-op logger.
func WithLogger(l *zap.Logger) Option {
	return func(o *options) {
		if l != nil {
			o.log = l
		}
	}
}

// WithCertOptions replaces all certification thresholds at once.
func WithCertOptions(c cert.Options) Option {
	return func(o *options) { o.certOpts = c }
}

// WithCertTolerance sets the proof-reconstruction threshold (and the PSD
// and slackness thresholds, which track it). Panics when tol <= 0.
func WithCertTolerance(tol float64) Option {
	if tol <= 0 {
		panic("pep: certification tolerance must be positive")
	}

	return func(o *options) {
		o.certOpts.ReconTol = tol
		o.certOpts.PSDTol = tol
		o.certOpts.SlackTol = tol
	}
}

// WithDualityGapTolerance sets the duality-gap threshold alone.
// Panics when tol <= 0.
func WithDualityGapTolerance(tol float64) Option {
	if tol <= 0 {
		panic("pep: duality gap tolerance must be positive")
	}

	return func(o *options) { o.certOpts.GapTol = tol }
}
