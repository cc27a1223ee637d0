// Copyright 2016 The Psychro Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package moistair

import (
	"math"

	"github.com/termolivre/psychro/phys"
)

// NASA polynomial of H2O for 200 K to 1000 K: cp/R = Σ n_i T^i
var nasaH2O = []float64{4.19864056e+00, -2.03643410e-03, 6.52040211e-06, -5.48797062e-09, 1.77197817e-12}

// coefficients of h/(R・T) and of (s/R - n₀・ln T)/T
var (
	hwCoef = []float64{nasaH2O[0], nasaH2O[1] / 2.0, nasaH2O[2] / 3.0, nasaH2O[3] / 4.0, nasaH2O[4] / 5.0}
	swCoef = []float64{nasaH2O[1], nasaH2O[2] / 2.0, nasaH2O[3] / 3.0, nasaH2O[4] / 4.0}
)

// offsets referring the vapour to liquid water at the triple point
const (
	hw0 = 35840.5365 // [J/mol]
	sw0 = -70.582913 // [J/(mol・K)]
)

// IdealEnthalpyVapour computes the ideal gas molar enthalpy of water vapour [J/mol]
func IdealEnthalpyVapour(T float64) float64 {
	return hw0 + phys.R*T*phys.Polyval(T, hwCoef)
}

// IdealEntropyVapour computes the ideal gas molar entropy of water vapour at P0 [J/(mol・K)]
func IdealEntropyVapour(T float64) float64 {
	return sw0 + phys.R*(nasaH2O[0]*math.Log(T)+T*phys.Polyval(T, swCoef))
}
