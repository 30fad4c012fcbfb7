// SPDX-License-Identifier: MIT

// Package matrix: functional configuration of the numeric policy.
// This file defines:
//   - Option / Options (functional options with internal state),
//   - documented defaults (constants),
//   - WithX constructors with strong validation (panic on nonsensical values),
//   - gatherOptions helper (internal).
//
// Notes:
//   - Options fields are unexported; public kernels consume ...Option.
//   - Only floating-point kernels read the tolerance. Integer kernels take no options.
package matrix

import "math"

// DefaultTolerance is the magnitude below which a float is treated as zero
// during elimination (pivot search, pivot-is-one check, LU pivot guard).
const DefaultTolerance = 0.002

const panicToleranceInvalid = "matrix: WithTolerance: tol must be finite and > 0"

// Option mutates internal options. Safe to apply repeatedly (last-writer-wins).
type Option func(*Options)

// Options stores the effective configuration after applying Option setters.
type Options struct {
	tol float64 // > 0; DefaultTolerance
}

// Tolerance reports the effective zero threshold.
func (o Options) Tolerance() float64 { return o.tol }

// WithTolerance sets the zero threshold used by elimination kernels.
// Implementation:
//   - Stage 1: validate tol is finite and > 0.
//   - Stage 2: return a setter that writes tol into Options.
//
// Errors:
//   - Panics with a stable message when tol is invalid (programmer error).
//     Use ValidateTolerance first when the value comes from user input.
//
// Complexity:
//   - Time O(1), Space O(1).
func WithTolerance(tol float64) Option {
	if ValidateTolerance(tol) != nil {
		panic(panicToleranceInvalid)
	}

	return func(o *Options) { o.tol = tol }
}

// ValidateTolerance reports ErrInvalidTolerance for NaN, ±Inf and tol <= 0.
func ValidateTolerance(tol float64) error {
	if math.IsNaN(tol) || math.IsInf(tol, 0) || tol <= 0 {
		return ErrInvalidTolerance
	}

	return nil
}

// NewOptions resolves opts on top of the defaults.
func NewOptions(opts ...Option) Options {
	return gatherOptions(opts...)
}

// gatherOptions applies user-provided setters on top of defaults in order.
// Complexity: O(k) for k=len(user).
func gatherOptions(user ...Option) Options {
	o := Options{tol: DefaultTolerance}
	for _, set := range user {
		if set != nil {
			set(&o)
		}
	}

	return o
}
