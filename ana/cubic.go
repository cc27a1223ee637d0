// Copyright 2016 The Psychro Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package ana implements analytical solutions and ideal gas references used to verify the
// numerical models
package ana

import (
	"math"

	"github.com/termolivre/psychro/phys"
)

// CubicZ computes the compressibility factor as the largest real root of
//   Z³ - Z² - b0・Z - c0 = 0
// which is the polynomial form of Z = 1 + b0/Z + c0/Z². The substitution Z = y + 1/3 gives
//   y³ + p・y + q = 0   with   p = -b0 - 1/3   and   q = -2/27 - b0/3 - c0
// solved with Cardano's formula (one real root) or the trigonometric method (three real roots)
func CubicZ(b0, c0 float64) (Z float64, err error) {
	p := -b0 - 1.0/3.0
	q := -2.0/27.0 - b0/3.0 - c0
	Δ := q*q/4.0 + p*p*p/27.0
	var y float64
	switch {
	case Δ > 0:
		s := math.Sqrt(Δ)
		y = math.Cbrt(-q/2.0+s) + math.Cbrt(-q/2.0-s)
	case p == 0:
		y = math.Cbrt(-q)
	default:
		arg := 3.0 * q / (2.0 * p) * math.Sqrt(-3.0/p)
		arg = math.Max(-1, math.Min(1, arg))
		y = 2.0 * math.Sqrt(-p/3.0) * math.Cos(math.Acos(arg)/3.0)
	}
	Z = y + 1.0/3.0
	if Z <= 1e-10 {
		return Z, &phys.DomainError{Msg: "ana: cubic equation has no positive root", Value: Z}
	}
	return
}
