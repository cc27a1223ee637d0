// Copyright 2016 The Psychro Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package virial

import (
	"math"

	"github.com/termolivre/psychro/phys"
)

// Blin computes the pressure-series second coefficient of water vapour B' [1/Pa]
//   Z = 1 + B'・p + C'・p² + ...
func Blin(T float64) float64 {
	return 0.70e-8 - 0.147184e-8*math.Exp(1734.29/T)
}

// DBlin computes dB'/dT
func DBlin(T float64) float64 {
	return 0.147184e-8 * 1734.29 / (T * T) * math.Exp(1734.29/T)
}

// Clin computes the pressure-series third coefficient of water vapour C' [1/Pa²]
func Clin(T float64) float64 {
	return 0.104e-14 - 0.335297e-17*math.Exp(3645.09/T)
}

// DClin computes dC'/dT
func DClin(T float64) float64 {
	return 0.335297e-17 * 3645.09 / (T * T) * math.Exp(3645.09/T)
}

// Bww computes the second virial coefficient of water vapour
//   Bww = R・T・B'
func Bww(T float64) float64 {
	return phys.R * T * Blin(T)
}

// DBww computes dBww/dT
func DBww(T float64) float64 {
	return phys.R*Blin(T) + phys.R*T*DBlin(T)
}

// Cwww computes the third virial coefficient of water vapour
//   Cwww = R²・T²・(C' + B'²)
func Cwww(T float64) float64 {
	b := Blin(T)
	return phys.R * phys.R * T * T * (Clin(T) + b*b)
}

// DCwww computes dCwww/dT
func DCwww(T float64) float64 {
	b := Blin(T)
	return 2.0*phys.R*phys.R*T*(Clin(T)+b*b) + phys.R*phys.R*T*T*(DClin(T)+2.0*b*DBlin(T))
}
