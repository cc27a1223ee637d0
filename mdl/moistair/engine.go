// Copyright 2016 The Psychro Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package moistair implements real-gas properties of dry air and moist air from a virial
// equation of state truncated after the third coefficient:
//   Z = p・v/(R・T) = 1 + B/v + C/v²
// Enthalpy and entropy are the ideal-gas values plus the departure functions of the virial gas.
// Reference state: dry air at 273.15 K and 101325 Pa has s = 0 (and h ≈ 0); water vapour is
// referenced to liquid water at the triple point.
//  References:
//   [1] Hyland RW and Wexler A (1983) Formulations for the thermodynamic properties of dry air
//       from 173.15 K to 473.15 K, and of saturated moist air from 173.15 K to 372.15 K, at
//       pressures to 5 MPa. ASHRAE Transactions 89(2A) 520-535
//   [2] Herrmann S, Kretzschmar HJ and Gatley DP (2009) Thermodynamic properties of real moist
//       air, dry air, steam, water, and ice. ASHRAE RP-1485
package moistair

import (
	"math"

	"github.com/cpmech/gosl/fun/dbf"
	"github.com/termolivre/psychro/mdl/efactor"
	"github.com/termolivre/psychro/mdl/zfactor"
	"github.com/termolivre/psychro/phys"
)

// XvMin is the smallest mole fraction entering the ideal mixing entropy
const XvMin = 1e-8

// dew point constants
const (
	DefaultDewItol   = 1e-8   // tolerance on temperature increment [K]
	DefaultDewNmaxIt = 100    // max number of iterations
	DewTmin          = 150.0  // lower bound of dew point search [K]
	DewTmax          = 473.15 // upper bound of dew point search [K]
	DewTstep         = 10.0   // step of the bracketing search [K]
)

// Engine computes moist air properties with a given set of solvers
type Engine struct {
	Zsol      zfactor.Solver // compressibility factor solver
	Fsol      efactor.Solver // enhancement factor solver
	DewItol   float64        // dew point tolerance
	DewNmaxIt int            // dew point max number of iterations
	DewShowR  bool           // show dew point iterates
}

// NewEngine returns an engine with default solvers
func NewEngine() Engine {
	return Engine{
		Zsol:      zfactor.NewSolver(),
		Fsol:      efactor.NewSolver(),
		DewItol:   DefaultDewItol,
		DewNmaxIt: DefaultDewNmaxIt,
	}
}

// Init initialises the solvers
//  zprms -- parameters of the compressibility factor solver
//  fprms -- parameters of the enhancement factor solver
func (o *Engine) Init(zprms, fprms dbf.Params) (err error) {
	*o = NewEngine()
	err = o.Zsol.Init(zprms)
	if err != nil {
		return
	}
	return o.Fsol.Init(fprms)
}

// checkState validates a state point
func checkState(T, P, xv float64) error {
	if T <= 0 || math.IsNaN(T) {
		return &phys.DomainError{Msg: "moistair: temperature must be positive", Value: T}
	}
	if P <= 0 || math.IsNaN(P) {
		return &phys.DomainError{Msg: "moistair: pressure must be positive", Value: P}
	}
	if xv < 0 || xv > 1 || math.IsNaN(xv) {
		return &phys.DomainError{Msg: "moistair: mole fraction of water vapour must be in [0,1]", Value: xv}
	}
	return nil
}

// virialGas holds the solution of the equation of state at one state point
type virialGas struct {
	Z float64 // compressibility factor
	V float64 // molar volume [m³/mol]
	H float64 // enthalpy departure [J/mol]
	S float64 // entropy departure, including -R・ln(P/P0) [J/(mol・K)]
}

// solve computes Z and the departure functions given B, dB/dT, C and dC/dT
func (o Engine) solve(T, P, B, dB, C, dC float64) (g virialGas, err error) {
	v0 := phys.R * T / P
	g.Z, err = o.Zsol.Calc(B/v0, C/(v0*v0))
	if err != nil {
		return
	}
	v := g.Z * v0
	g.V = v
	g.H = phys.R * T * ((B-T*dB)/v + (C-T*dC/2.0)/(v*v))
	g.S = -phys.R*math.Log(P/phys.P0) - phys.R*((B+T*dB)/v+(C+T*dC)/(2.0*v*v))
	return
}
