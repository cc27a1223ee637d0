// Copyright 2016 The Psychro Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package condensed

import (
	"math"

	"github.com/termolivre/psychro/phys"
)

// IceModel implements ice properties. Air does not dissolve in ice
type IceModel struct{}

// add model to factory
func init() {
	allocators["ice"] = func() Model { return IceModel{} }
}

// Phase returns Ice
func (o IceModel) Phase() Phase { return Ice }

// Psat computes the saturation pressure over ice
func (o IceModel) Psat(T float64) float64 { return PwsIce(T) }

// Volume computes the molar volume of ice
func (o IceModel) Volume(T float64) float64 { return VolumeIce(T) }

// Kappa computes the isothermal compressibility of ice
func (o IceModel) Kappa(T float64) float64 { return KappaIce(T) }

// Henry returns zero
func (o IceModel) Henry(T float64) (float64, error) { return 0, nil }

// PwsIce computes the saturation vapour pressure over ice [Pa]
func PwsIce(T float64) float64 {
	return math.Exp(-0.56745359e4/T + 0.63925247e1 - 0.96778430e-2*T + 0.62215701e-6*T*T + 0.20747825e-8*T*T*T - 0.94840240e-12*T*T*T*T + 0.41635019e1*math.Log(T))
}

// specific volume of ice [m³/kg]; T in K
var iceVolume = []float64{0.1070003e-2, -0.249936e-7, 0.371611e-9}

// VolumeIce computes the molar volume of ice [m³/mol]
func VolumeIce(T float64) float64 {
	return phys.Mv * phys.Polyval(T, iceVolume)
}

// KappaIce computes the isothermal compressibility of ice [1/Pa]
func KappaIce(T float64) float64 {
	return (8.875 + 0.0165*T) * 1e-11
}
