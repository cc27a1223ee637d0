// Copyright 2016 The Psychro Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package condensed

import (
	"math"

	"github.com/termolivre/psychro/phys"
)

// LiquidModel implements liquid water properties
type LiquidModel struct{}

// add model to factory
func init() {
	allocators["liquid"] = func() Model { return LiquidModel{} }
}

// Phase returns Liquid
func (o LiquidModel) Phase() Phase { return Liquid }

// Psat computes the saturation pressure over liquid water
func (o LiquidModel) Psat(T float64) float64 { return PwsLiquid(T) }

// Volume computes the molar volume of liquid water
func (o LiquidModel) Volume(T float64) float64 { return VolumeWater(T) }

// Kappa computes the isothermal compressibility of liquid water
func (o LiquidModel) Kappa(T float64) float64 { return KappaLiquid(T) }

// Henry computes the inverse Henry's constant of air in liquid water
func (o LiquidModel) Henry(T float64) (float64, error) { return HenryK(T) }

// PwsLiquid computes the saturation vapour pressure over liquid water [Pa]
func PwsLiquid(T float64) float64 {
	return math.Exp(-0.58002206e4/T + 0.13914993e1 - 0.48640239e-1*T + 0.41764768e-4*T*T - 0.14452093e-7*T*T*T + 0.65459673e1*math.Log(T))
}

// coefficients of Kell's density of liquid water; t in °C; ρ in kg/m³
var (
	kellRhoNum = []float64{999.83952, 16.945176, -7.9870401e-3, -46.170461e-6, 105.56302e-9, -280.54253e-12}
	kellRhoDen = 16.879850e-3
)

// VolumeWater computes the molar volume of liquid water [m³/mol]
func VolumeWater(T float64) float64 {
	t := T - phys.T0
	return phys.Mv * (1.0 + kellRhoDen*t) / phys.Polyval(t, kellRhoNum)
}

// coefficients of the isothermal compressibility of liquid water [1e-11/Pa]; t in °C
var (
	kappaColdNum = []float64{50.88496, 0.6163813, 1.459187e-3, 20.08438e-6, -58.47727e-9, 410.4110e-12}
	kappaColdDen = 19.67348e-3
	kappaHotNum  = []float64{44.6624, -0.112123, 5.52723e-4}
	kappaHotDen  = -2.04721e-3
)

// KappaLiquid computes the isothermal compressibility of liquid water [1/Pa]
//  Note: Kell's fit is used up to 100°C; above it, a fit of saturated liquid data is used
func KappaLiquid(T float64) float64 {
	t := T - phys.T0
	if t <= 100.0 {
		return phys.Polyval(t, kappaColdNum) / (1.0 + kappaColdDen*t) * 1e-11
	}
	return phys.Polyval(t, kappaHotNum) / (1.0 + kappaHotDen*t) * 1e-11
}
