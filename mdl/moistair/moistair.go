// Copyright 2016 The Psychro Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package moistair

import (
	"math"

	"github.com/termolivre/psychro/mdl/virial"
	"github.com/termolivre/psychro/phys"
)

// State holds the molar properties of moist air at one state point
type State struct {
	T  float64 // temperature [K]
	P  float64 // pressure [Pa]
	Xv float64 // mole fraction of water vapour
	Z  float64 // compressibility factor
	V  float64 // molar volume [m³/mol]
	H  float64 // molar enthalpy [J/mol]
	S  float64 // molar entropy [J/(mol・K)]
}

// Calc computes all molar properties at (T, P, xv) with a single solution of the equation of state
func (o Engine) Calc(T, P, xv float64) (st State, err error) {
	g, err := o.mixture(T, P, xv)
	if err != nil {
		return
	}
	st = State{T: T, P: P, Xv: xv, Z: g.Z, V: g.V}
	st.H = mixEnthalpy(T, xv, g)
	st.S = mixEntropy(T, xv, g)
	return
}

// Specific returns the volume [m³/kg], enthalpy [J/kg] and entropy [J/(kg・K)] per kg of dry air
func (o State) Specific() (v, h, s float64, err error) {
	den, err := dryAirMass(o.Xv)
	if err != nil {
		return
	}
	return o.V / den, o.H / den, o.S / den, nil
}

// HumidityRatio returns the mass of water vapour per mass of dry air
func (o State) HumidityRatio() float64 {
	return HumidityRatio(o.Xv)
}

// mixture solves the equation of state of moist air
func (o Engine) mixture(T, P, xv float64) (g virialGas, err error) {
	err = checkState(T, P, xv)
	if err != nil {
		return
	}
	c := virial.At(T)
	return o.solve(T, P, c.Bm(xv), c.DBm(xv), c.Cm(xv), c.DCm(xv))
}

// mixEnthalpy computes the molar enthalpy of the mixture
func mixEnthalpy(T, xv float64, g virialGas) float64 {
	xa := 1.0 - xv
	return xa*IdealEnthalpyAir(T) + xv*IdealEnthalpyVapour(T) + g.H
}

// mixEntropy computes the molar entropy of the mixture including the ideal mixing term.
// Components with mole fraction below XvMin do not contribute to mixing
func mixEntropy(T, xv float64, g virialGas) float64 {
	xa := 1.0 - xv
	s := xa*IdealEntropyAir(T) + xv*IdealEntropyVapour(T) + g.S
	if xa >= XvMin {
		s += xa * phys.R * math.Log(g.Z/xa)
	}
	if xv >= XvMin {
		s += xv * phys.R * math.Log(g.Z/xv)
	}
	return s
}

// dryAirMass returns the mass of dry air per mole of mixture [kg/mol]
func dryAirMass(xv float64) (float64, error) {
	xa := 1.0 - xv
	if xa <= 0 {
		return 0, &phys.DomainError{Msg: "moistair: specific values per kg of dry air require dry air in the mixture", Value: xv}
	}
	return xa * phys.Ma, nil
}

// Z computes the compressibility factor of moist air
func (o Engine) Z(T, P, xv float64) (Z float64, err error) {
	g, err := o.mixture(T, P, xv)
	return g.Z, err
}

// MolarVolume computes the molar volume of moist air [m³/mol]
func (o Engine) MolarVolume(T, P, xv float64) (v float64, err error) {
	g, err := o.mixture(T, P, xv)
	return g.V, err
}

// Volume computes the specific volume of moist air per kg of dry air [m³/kg]
func (o Engine) Volume(T, P, xv float64) (v float64, err error) {
	v, err = o.MolarVolume(T, P, xv)
	if err != nil {
		return
	}
	den, err := dryAirMass(xv)
	return v / den, err
}

// MolarEnthalpy computes the molar enthalpy of moist air [J/mol]
func (o Engine) MolarEnthalpy(T, P, xv float64) (h float64, err error) {
	g, err := o.mixture(T, P, xv)
	if err != nil {
		return
	}
	return mixEnthalpy(T, xv, g), nil
}

// Enthalpy computes the specific enthalpy of moist air per kg of dry air [J/kg]
func (o Engine) Enthalpy(T, P, xv float64) (h float64, err error) {
	h, err = o.MolarEnthalpy(T, P, xv)
	if err != nil {
		return
	}
	den, err := dryAirMass(xv)
	return h / den, err
}

// MolarEntropy computes the molar entropy of moist air [J/(mol・K)]
func (o Engine) MolarEntropy(T, P, xv float64) (s float64, err error) {
	g, err := o.mixture(T, P, xv)
	if err != nil {
		return
	}
	return mixEntropy(T, xv, g), nil
}

// Entropy computes the specific entropy of moist air per kg of dry air [J/(kg・K)]
func (o Engine) Entropy(T, P, xv float64) (s float64, err error) {
	s, err = o.MolarEntropy(T, P, xv)
	if err != nil {
		return
	}
	den, err := dryAirMass(xv)
	return s / den, err
}
