// Copyright 2016 The Psychro Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package phys holds physical constants and small numerical helpers shared by all models
package phys

// constants
const (
	R     = 8.314459848  // [J/(mol・K)] molar gas constant (CODATA 2014)
	Ma    = 28.96546e-3  // [kg/mol] molar mass of dry air
	Mv    = 18.015268e-3 // [kg/mol] molar mass of water
	P0    = 101325.0     // [Pa] reference pressure (1 atm)
	T0    = 273.15       // [K] 0°C
	Ttrip = 273.16       // [K] triple point of water; liquid/ice boundary
)

// Polyval evaluates the polynomial c[0] + c[1]・x + ... + c[n]・xⁿ with n = len(c)-1
func Polyval(x float64, c []float64) (res float64) {
	for i := len(c) - 1; i >= 0; i-- {
		res = res*x + c[i]
	}
	return
}
