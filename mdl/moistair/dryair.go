// Copyright 2016 The Psychro Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package moistair

import (
	"math"

	"github.com/termolivre/psychro/mdl/virial"
	"github.com/termolivre/psychro/phys"
)

// ideal gas enthalpy of dry air [J/mol]; T in K
var haCoef = []float64{-0.79078691e4, 0.28709015e2, 0.26431805e-2, -0.10405863e-4, 0.18660410e-7, -0.97843331e-11}

// polynomial part of the ideal gas entropy of dry air; i.e. ∫(dh/dT)/T dT without the logarithm
var saCoef = []float64{0, 2.0 * haCoef[2], 1.5 * haCoef[3], 4.0 / 3.0 * haCoef[4], 1.25 * haCoef[5]}

// entropy offset of dry air such that s(273.15 K, 101325 Pa) = 0 [J/(mol・K)]
const sa0 = -161.751619

// IdealEnthalpyAir computes the ideal gas molar enthalpy of dry air [J/mol]
func IdealEnthalpyAir(T float64) float64 {
	return phys.Polyval(T, haCoef)
}

// IdealEntropyAir computes the ideal gas molar entropy of dry air at P0 [J/(mol・K)]
func IdealEntropyAir(T float64) float64 {
	return haCoef[1]*math.Log(T) + phys.Polyval(T, saCoef) + sa0
}

// dryAir solves the equation of state of dry air
func (o Engine) dryAir(T, P float64) (g virialGas, err error) {
	err = checkState(T, P, 0)
	if err != nil {
		return
	}
	return o.solve(T, P, virial.Baa(T), virial.DBaa(T), virial.Caaa(T), virial.DCaaa(T))
}

// ZAir computes the compressibility factor of dry air
func (o Engine) ZAir(T, P float64) (Z float64, err error) {
	g, err := o.dryAir(T, P)
	return g.Z, err
}

// MolarVolumeAir computes the molar volume of dry air [m³/mol]
func (o Engine) MolarVolumeAir(T, P float64) (v float64, err error) {
	g, err := o.dryAir(T, P)
	return g.V, err
}

// VolumeAir computes the specific volume of dry air [m³/kg]
func (o Engine) VolumeAir(T, P float64) (v float64, err error) {
	v, err = o.MolarVolumeAir(T, P)
	return v / phys.Ma, err
}

// MolarEnthalpyAir computes the molar enthalpy of dry air [J/mol]
func (o Engine) MolarEnthalpyAir(T, P float64) (h float64, err error) {
	g, err := o.dryAir(T, P)
	if err != nil {
		return
	}
	return IdealEnthalpyAir(T) + g.H, nil
}

// EnthalpyAir computes the specific enthalpy of dry air [J/kg]
func (o Engine) EnthalpyAir(T, P float64) (h float64, err error) {
	h, err = o.MolarEnthalpyAir(T, P)
	return h / phys.Ma, err
}

// MolarEntropyAir computes the molar entropy of dry air [J/(mol・K)]
func (o Engine) MolarEntropyAir(T, P float64) (s float64, err error) {
	g, err := o.dryAir(T, P)
	if err != nil {
		return
	}
	return IdealEntropyAir(T) + g.S + phys.R*math.Log(g.Z), nil
}

// EntropyAir computes the specific entropy of dry air [J/(kg・K)]
func (o Engine) EntropyAir(T, P float64) (s float64, err error) {
	s, err = o.MolarEntropyAir(T, P)
	return s / phys.Ma, err
}
