// Copyright 2016 The Psychro Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package moistair

// functions using an engine with default solvers

// ZAir computes the compressibility factor of dry air
func ZAir(T, P float64) (float64, error) { return NewEngine().ZAir(T, P) }

// MolarVolumeAir computes the molar volume of dry air [m³/mol]
func MolarVolumeAir(T, P float64) (float64, error) { return NewEngine().MolarVolumeAir(T, P) }

// VolumeAir computes the specific volume of dry air [m³/kg]
func VolumeAir(T, P float64) (float64, error) { return NewEngine().VolumeAir(T, P) }

// MolarEnthalpyAir computes the molar enthalpy of dry air [J/mol]
func MolarEnthalpyAir(T, P float64) (float64, error) { return NewEngine().MolarEnthalpyAir(T, P) }

// EnthalpyAir computes the specific enthalpy of dry air [J/kg]
func EnthalpyAir(T, P float64) (float64, error) { return NewEngine().EnthalpyAir(T, P) }

// MolarEntropyAir computes the molar entropy of dry air [J/(mol・K)]
func MolarEntropyAir(T, P float64) (float64, error) { return NewEngine().MolarEntropyAir(T, P) }

// EntropyAir computes the specific entropy of dry air [J/(kg・K)]
func EntropyAir(T, P float64) (float64, error) { return NewEngine().EntropyAir(T, P) }

// Z computes the compressibility factor of moist air
func Z(T, P, xv float64) (float64, error) { return NewEngine().Z(T, P, xv) }

// MolarVolume computes the molar volume of moist air [m³/mol]
func MolarVolume(T, P, xv float64) (float64, error) { return NewEngine().MolarVolume(T, P, xv) }

// Volume computes the specific volume of moist air per kg of dry air [m³/kg]
func Volume(T, P, xv float64) (float64, error) { return NewEngine().Volume(T, P, xv) }

// MolarEnthalpy computes the molar enthalpy of moist air [J/mol]
func MolarEnthalpy(T, P, xv float64) (float64, error) { return NewEngine().MolarEnthalpy(T, P, xv) }

// Enthalpy computes the specific enthalpy of moist air per kg of dry air [J/kg]
func Enthalpy(T, P, xv float64) (float64, error) { return NewEngine().Enthalpy(T, P, xv) }

// MolarEntropy computes the molar entropy of moist air [J/(mol・K)]
func MolarEntropy(T, P, xv float64) (float64, error) { return NewEngine().MolarEntropy(T, P, xv) }

// Entropy computes the specific entropy of moist air per kg of dry air [J/(kg・K)]
func Entropy(T, P, xv float64) (float64, error) { return NewEngine().Entropy(T, P, xv) }

// XvSat computes the mole fraction of water vapour in saturated moist air
func XvSat(T, P float64) (float64, error) { return NewEngine().XvSat(T, P) }

// RelativeHumidity computes xv/xvs
func RelativeHumidity(T, P, xv float64) (float64, error) {
	return NewEngine().RelativeHumidity(T, P, xv)
}

// MolarFractionRH computes xv corresponding to the relative humidity rh
func MolarFractionRH(T, P, rh float64) (float64, error) {
	return NewEngine().MolarFractionRH(T, P, rh)
}

// DewPoint computes the dew point temperature [K]
func DewPoint(P, xv float64) (float64, error) { return NewEngine().DewPoint(P, xv) }
