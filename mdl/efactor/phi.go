// Copyright 2016 The Psychro Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package efactor implements the enhancement factor f of saturated moist air; i.e. the ratio
// between the mole fraction of water vapour in saturated moist air and the one of pure water
// vapour at the same temperature:
//   xvs = f・pws(T)/p
// f is the root of ln f = Φ(f; T, p) where Φ comes from the equality of chemical potentials of
// water in the condensed phase and in the vapour, with a virial expansion up to third order.
//  References:
//   [1] Hyland RW and Wexler A (1983) Formulations for the thermodynamic properties of dry air
//       from 173.15 K to 473.15 K, and of saturated moist air from 173.15 K to 372.15 K, at
//       pressures to 5 MPa. ASHRAE Transactions 89(2A) 520-535
package efactor

import (
	"math"

	"github.com/termolivre/psychro/mdl/condensed"
	"github.com/termolivre/psychro/mdl/virial"
	"github.com/termolivre/psychro/phys"
)

// Inputs holds all quantities of Φ that do not depend on f
type Inputs struct {
	T     float64         // temperature [K]
	P     float64         // total pressure [Pa]
	Phase condensed.Phase // condensed phase
	Psat  float64         // saturation pressure of pure water [Pa]
	Kappa float64         // isothermal compressibility of condensed phase [1/Pa]
	Vc    float64         // molar volume of condensed phase [m³/mol]
	Henry float64         // inverse Henry's constant [1/Pa]; zero for ice
	Vir   virial.Set      // virial coefficients at T
}

// NewInputs computes the inputs at (T, P) using the condensed phase corresponding to T
func NewInputs(T, P float64) (o Inputs, err error) {
	return NewInputsFor(T, P, condensed.ForPhase(condensed.PhaseOf(T)))
}

// NewInputsFor computes the inputs at (T, P) with the given condensed phase model
func NewInputsFor(T, P float64, mdl condensed.Model) (o Inputs, err error) {
	o.T = T
	o.P = P
	o.Phase = mdl.Phase()
	o.Psat = mdl.Psat(T)
	o.Kappa = mdl.Kappa(T)
	o.Vc = mdl.Volume(T)
	o.Henry, err = mdl.Henry(T)
	if err != nil {
		return
	}
	o.Vir = virial.At(T)
	return
}

// Xas computes the apparent mole fraction of dry air for a given f
func (o Inputs) Xas(f float64) float64 {
	return (o.P - f*o.Psat) / o.P
}

// Terms computes the eight groups of terms of Φ for a given f
//  t[0] -- condensed phase compressibility and pressure (Poynting)
//  t[1] -- dissolved air (Henry) plus Baa and Baw
//  t[2] -- Bww and Caaa
//  t[3] -- Caaw and Caww
//  t[4] -- Cwww and Baa・Bww
//  t[5] -- Baa・Baw and Bww・Baw
//  t[6] -- Baa² and Baw²
//  t[7] -- Bww²
func (o Inputs) Terms(f float64) (t [8]float64, err error) {

	// auxiliary
	P, p, κ := o.P, o.Psat, o.Kappa
	RT := phys.R * o.T
	RT2 := RT * RT
	P2 := P * P
	p2 := p * p
	x := o.Xas(f)
	x2 := x * x
	y := 1.0 - x
	c := o.Vir

	// dissolved air
	arg := 1.0 - o.Henry*x*P
	if arg <= 0 {
		err = &phys.DomainError{Msg: "efactor: logarithm of non-positive number in Henry's term", Value: arg}
		return
	}

	t[0] = ((1.0+κ*p)*(P-p) - κ*(P2-p2)/2.0) * o.Vc / RT
	t[1] = math.Log(arg) + x2*P*c.Baa/RT - 2.0*x2*P*c.Baw/RT
	t[2] = -(P-p-x2*P)*c.Bww/RT + x2*x*P2*c.Caaa/RT2
	t[3] = 3.0*x2*(1.0-2.0*x)*P2*c.Caaw/(2.0*RT2) - 3.0*x2*y*P2*c.Caww/RT2
	t[4] = -((1.0+2.0*x)*y*y*P2-p2)*c.Cwww/(2.0*RT2) - x2*(1.0-3.0*x)*y*P2*c.Baa*c.Bww/RT2
	t[5] = -2.0*x2*x*(2.0-3.0*x)*P2*c.Baa*c.Baw/RT2 + 6.0*x2*y*y*P2*c.Bww*c.Baw/RT2
	t[6] = -3.0*x2*x2*P2*c.Baa*c.Baa/(2.0*RT2) - 2.0*x2*y*(1.0-3.0*x)*P2*c.Baw*c.Baw/RT2
	t[7] = -(p2 - (1.0+3.0*x)*y*y*y*P2) * c.Bww * c.Bww / (2.0 * RT2)
	return
}

// Phi computes Φ(f) = Σ t[i]
func (o Inputs) Phi(f float64) (Φ float64, err error) {
	t, err := o.Terms(f)
	if err != nil {
		return
	}
	for _, v := range t {
		Φ += v
	}
	return
}

// Residual computes ln f - Φ(f)
func (o Inputs) Residual(f float64) (r float64, err error) {
	if f <= 0 {
		return 0, &phys.DomainError{Msg: "efactor: enhancement factor must be positive", Value: f}
	}
	Φ, err := o.Phi(f)
	if err != nil {
		return
	}
	return math.Log(f) - Φ, nil
}
