// Copyright 2016 The Psychro Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package phys

import "github.com/cpmech/gosl/io"

// ConvergenceError is returned by iterative solvers when the maximum number of iterations is
// reached without satisfying the tolerance. Callers may retry with other settings.
type ConvergenceError struct {
	Msg      string  // message
	Estimate float64 // last computed estimate
	NmaxIt   int     // maximum number of iterations used
	Residual float64 // last residual or step size
}

// Error implements error
func (o *ConvergenceError) Error() string {
	return io.Sf("%s: did not converge after %d iterations (estimate = %v, residual = %g)", o.Msg, o.NmaxIt, o.Estimate, o.Residual)
}

// DomainError is returned when an expression cannot be evaluated for the given input;
// e.g. negative discriminant or logarithm of a non-positive number
type DomainError struct {
	Msg   string  // message
	Value float64 // offending value
}

// Error implements error
func (o *DomainError) Error() string {
	return io.Sf("%s (value = %g)", o.Msg, o.Value)
}

// IsConvergence tells whether err is a convergence failure
func IsConvergence(err error) bool {
	_, ok := err.(*ConvergenceError)
	return ok
}

// IsDomain tells whether err is a domain error
func IsDomain(err error) bool {
	_, ok := err.(*DomainError)
	return ok
}
