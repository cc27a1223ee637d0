// Copyright 2016 The Psychro Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package virial implements the second and third virial coefficients of dry air, water vapour
// and their cross interactions, together with exact temperature derivatives.
//  Units: B in [m³/mol], C in [m⁶/mol²], T in [K]
//  References:
//   [1] Hyland RW and Wexler A (1983) Formulations for the thermodynamic properties of dry air
//       from 173.15 K to 473.15 K, and of saturated moist air from 173.15 K to 372.15 K, at
//       pressures to 5 MPa. ASHRAE Transactions 89(2A) 520-535
//   [2] Hyland RW and Wexler A (1983) Formulations for the thermodynamic properties of the
//       saturated phases of H2O from 173.15 K to 473.15 K. ASHRAE Transactions 89(2A) 500-519
package virial

// Set holds all virial coefficients and their derivatives at one temperature
type Set struct {
	T float64 // temperature

	// second coefficients
	Baa, Baw, Bww    float64 // values
	DBaa, DBaw, DBww float64 // dB/dT

	// third coefficients
	Caaa, Caaw, Caww, Cwww     float64 // values
	DCaaa, DCaaw, DCaww, DCwww float64 // dC/dT
}

// At computes all coefficients at temperature T
func At(T float64) (o Set) {
	o.T = T
	o.Baa, o.DBaa = Baa(T), DBaa(T)
	o.Baw, o.DBaw = Baw(T), DBaw(T)
	o.Bww, o.DBww = Bww(T), DBww(T)
	o.Caaa, o.DCaaa = Caaa(T), DCaaa(T)
	o.Caaw, o.DCaaw = Caaw(T), DCaaw(T)
	o.Caww, o.DCaww = Caww(T), DCaww(T)
	o.Cwww, o.DCwww = Cwww(T), DCwww(T)
	return
}

// Bm computes the mixture second coefficient for vapour mole fraction xv
func (o Set) Bm(xv float64) float64 {
	xa := 1.0 - xv
	return xa*xa*o.Baa + 2.0*xa*xv*o.Baw + xv*xv*o.Bww
}

// DBm computes dBm/dT with constant composition
func (o Set) DBm(xv float64) float64 {
	xa := 1.0 - xv
	return xa*xa*o.DBaa + 2.0*xa*xv*o.DBaw + xv*xv*o.DBww
}

// Cm computes the mixture third coefficient for vapour mole fraction xv
func (o Set) Cm(xv float64) float64 {
	xa := 1.0 - xv
	return xa*xa*xa*o.Caaa + 3.0*xa*xa*xv*o.Caaw + 3.0*xa*xv*xv*o.Caww + xv*xv*xv*o.Cwww
}

// DCm computes dCm/dT with constant composition
func (o Set) DCm(xv float64) float64 {
	xa := 1.0 - xv
	return xa*xa*xa*o.DCaaa + 3.0*xa*xa*xv*o.DCaaw + 3.0*xa*xv*xv*o.DCaww + xv*xv*xv*o.DCwww
}

// Bm computes the mixture second coefficient at (T, xv)
func Bm(T, xv float64) float64 {
	xa := 1.0 - xv
	return xa*xa*Baa(T) + 2.0*xa*xv*Baw(T) + xv*xv*Bww(T)
}

// DBm computes dBm/dT at (T, xv)
func DBm(T, xv float64) float64 {
	xa := 1.0 - xv
	return xa*xa*DBaa(T) + 2.0*xa*xv*DBaw(T) + xv*xv*DBww(T)
}

// Cm computes the mixture third coefficient at (T, xv)
func Cm(T, xv float64) float64 {
	xa := 1.0 - xv
	return xa*xa*xa*Caaa(T) + 3.0*xa*xa*xv*Caaw(T) + 3.0*xa*xv*xv*Caww(T) + xv*xv*xv*Cwww(T)
}

// DCm computes dCm/dT at (T, xv)
func DCm(T, xv float64) float64 {
	xa := 1.0 - xv
	return xa*xa*xa*DCaaa(T) + 3.0*xa*xa*xv*DCaaw(T) + 3.0*xa*xv*xv*DCaww(T) + xv*xv*xv*DCwww(T)
}
