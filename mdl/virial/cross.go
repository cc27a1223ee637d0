// Copyright 2016 The Psychro Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package virial

import "math"

// Baw computes the air-water cross second virial coefficient
func Baw(T float64) float64 {
	return 0.32366097e-4 - 0.141138e-1/T - 0.1244535e1/(T*T) - 0.2348789e4/(T*T*T*T)
}

// DBaw computes dBaw/dT
func DBaw(T float64) float64 {
	return 0.141138e-1/(T*T) + 2.0*0.1244535e1/(T*T*T) + 4.0*0.2348789e4/(T*T*T*T*T)
}

// Caaw computes the air-air-water cross third virial coefficient
func Caaw(T float64) float64 {
	return 0.482737e-9 + 0.105678e-6/T - 0.656394e-4/(T*T) + 0.294442e-1/(T*T*T) - 0.319317e1/(T*T*T*T)
}

// DCaaw computes dCaaw/dT
func DCaaw(T float64) float64 {
	return -0.105678e-6/(T*T) + 2.0*0.656394e-4/(T*T*T) - 3.0*0.294442e-1/(T*T*T*T) + 4.0*0.319317e1/(T*T*T*T*T)
}

// Caww computes the air-water-water cross third virial coefficient
//   Caww = -1e-6・exp(d0 + d1/T + d2/T² + d3/T³)
func Caww(T float64) float64 {
	return -1e-6 * math.Exp(cawwExponent(T))
}

// DCaww computes dCaww/dT
func DCaww(T float64) float64 {
	dexp := -0.347802e4/(T*T) + 2.0*0.383383e6/(T*T*T) - 3.0*0.33406e8/(T*T*T*T)
	return -1e-6 * math.Exp(cawwExponent(T)) * dexp
}

func cawwExponent(T float64) float64 {
	return -0.10728876e2 + 0.347802e4/T - 0.383383e6/(T*T) + 0.33406e8/(T*T*T)
}
