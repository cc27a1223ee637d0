// Copyright 2016 The Psychro Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package condensed implements properties of the condensed phases of water (liquid and ice)
// in equilibrium with moist air: saturation pressure, molar volume, isothermal compressibility
// and the solubility of air (Henry's constant)
//  References:
//   [1] Hyland RW and Wexler A (1983) Formulations for the thermodynamic properties of the
//       saturated phases of H2O from 173.15 K to 473.15 K. ASHRAE Transactions 89(2A) 500-519
//   [2] Kell GS (1975) Density, thermal expansivity, and compressibility of liquid water from
//       0° to 150°C. Journal of Chemical and Engineering Data 20(1) 97-105
//   [3] Himmelblau DM (1960) Solubilities of inert gases in water. 0° to near the critical
//       point of water. Journal of Chemical and Engineering Data 5(1) 10-15
package condensed

import (
	"github.com/cpmech/gosl/chk"
	"github.com/termolivre/psychro/phys"
)

// Phase selects the condensed phase of water
type Phase int

// phases
const (
	Liquid Phase = iota // T ≥ 273.16 K
	Ice                 // T < 273.16 K
)

// PhaseOf returns the phase of water in equilibrium with moist air at temperature T
func PhaseOf(T float64) Phase {
	if T < phys.Ttrip {
		return Ice
	}
	return Liquid
}

// String returns the name of the phase
func (o Phase) String() string {
	if o == Ice {
		return "ice"
	}
	return "liquid"
}

// Model defines the properties of a condensed phase consumed by the enhancement factor
type Model interface {
	Phase() Phase                     // phase implemented by this model
	Psat(T float64) float64           // saturation vapour pressure [Pa]
	Volume(T float64) float64         // molar volume [m³/mol]
	Kappa(T float64) float64          // isothermal compressibility [1/Pa]
	Henry(T float64) (float64, error) // inverse Henry's constant of air [1/Pa]; zero for ice
}

// New returns a condensed phase model
func New(name string) (model Model, err error) {
	allocator, ok := allocators[name]
	if !ok {
		return nil, chk.Err("model %q is not available in 'condensed' database", name)
	}
	return allocator(), nil
}

// ForPhase returns the model corresponding to phase
func ForPhase(phase Phase) Model {
	if phase == Ice {
		return IceModel{}
	}
	return LiquidModel{}
}

// allocators holds all available models
var allocators = map[string]func() Model{}

// Pws computes the saturation vapour pressure over liquid water (T ≥ 273.16 K) or ice
func Pws(T float64) float64 {
	if PhaseOf(T) == Ice {
		return PwsIce(T)
	}
	return PwsLiquid(T)
}

// KappaF computes the isothermal compressibility of the condensed phase at T
func KappaF(T float64) float64 {
	if PhaseOf(T) == Ice {
		return KappaIce(T)
	}
	return KappaLiquid(T)
}
