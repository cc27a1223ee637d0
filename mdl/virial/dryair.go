// Copyright 2016 The Psychro Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package virial

// Baa computes the second virial coefficient of dry air
func Baa(T float64) float64 {
	return 0.349568e-4 - 0.668772e-2/T - 0.210141e1/(T*T) + 0.924746e2/(T*T*T)
}

// DBaa computes dBaa/dT
func DBaa(T float64) float64 {
	return 0.668772e-2/(T*T) + 2.0*0.210141e1/(T*T*T) - 3.0*0.924746e2/(T*T*T*T)
}

// Caaa computes the third virial coefficient of dry air
func Caaa(T float64) float64 {
	return 0.125975e-8 - 0.190905e-6/T + 0.632467e-4/(T*T)
}

// DCaaa computes dCaaa/dT
func DCaaa(T float64) float64 {
	return 0.190905e-6/(T*T) - 2.0*0.632467e-4/(T*T*T)
}
