// Copyright 2016 The Psychro Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package condensed

import (
	"math"

	"github.com/termolivre/psychro/phys"
)

// composition of dissolved air
const (
	xO2 = 0.22 // mole fraction of oxygen
	xN2 = 0.78 // mole fraction of nitrogen
)

// henryGas holds the solubility correlation of one gas. y = log10(H/10⁴ atm) is the positive
// root of
//   a2・y² + a1・y + a0(τ) = 0   with   a0(τ) = c[0] + c[1]・τ + c[2]・τ²   and   τ = 1000/T
// The coefficients reproduce Himmelblau's solubility data from 0 to 100°C within 2%
type henryGas struct {
	name string
	a2   float64
	a1   float64
	c    []float64
}

var (
	henryO2 = henryGas{"O2", 1.0, 22.62719989, []float64{59.48724647, -59.2118, 11.0287}}
	henryN2 = henryGas{"N2", 1.0, 29.98939989, []float64{81.13982639, -83.6302, 15.1229}}
)

// constant computes Henry's constant [atm]
func (o henryGas) constant(T float64) (H float64, err error) {
	a0 := phys.Polyval(1000.0/T, o.c)
	Δ := o.a1*o.a1 - 4.0*o.a2*a0
	if Δ < 0 {
		return 0, &phys.DomainError{Msg: "henry " + o.name + ": negative discriminant; temperature out of range", Value: T}
	}
	y := (-o.a1 + math.Sqrt(Δ)) / (2.0 * o.a2)
	return 1e4 * math.Pow(10, y), nil
}

// HenryO2 computes Henry's constant of oxygen in liquid water [atm]
func HenryO2(T float64) (float64, error) { return henryO2.constant(T) }

// HenryN2 computes Henry's constant of nitrogen in liquid water [atm]
func HenryN2(T float64) (float64, error) { return henryN2.constant(T) }

// HenryK computes the inverse Henry's constant of air in liquid water [1/Pa] as used by the
// enhancement factor; i.e. the mole fraction of dissolved air per unit of air partial pressure
func HenryK(T float64) (k float64, err error) {
	kO2, err := HenryO2(T)
	if err != nil {
		return
	}
	kN2, err := HenryN2(T)
	if err != nil {
		return
	}
	k = (xO2/kO2 + xN2/kN2) / phys.P0
	return
}
