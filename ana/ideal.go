// Copyright 2016 The Psychro Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ana

import "github.com/termolivre/psychro/phys"

// IdealMix handles the properties of moist air as a mixture of ideal gases
type IdealMix struct {
	T   float64 // temperature [K]
	P   float64 // total pressure [Pa]
	Xv  float64 // mole fraction of water vapour
	M   float64 // molar mass of mixture [kg/mol]
	V   float64 // molar volume [m³/mol]
	Rho float64 // density [kg/m³]
	Pv  float64 // partial pressure of water vapour [Pa]
	W   float64 // humidity ratio [kg/kg]
}

// Init initialises data
func (o *IdealMix) Init(T, P, xv float64) {
	o.T = T
	o.P = P
	o.Xv = xv
	o.M = (1.0-xv)*phys.Ma + xv*phys.Mv // [kg/mol]
	o.V = phys.R * T / P                // [m³/mol]
	o.Rho = o.M / o.V                   // [kg/m³]
	o.Pv = xv * P                       // [Pa]    Dalton
	o.W = phys.Mv * o.Pv / (phys.Ma * (P - o.Pv))
}

// Density computes the density of the real mixture from its molar volume v [m³/mol]
func (o IdealMix) Density(v float64) float64 {
	return o.M / v
}
