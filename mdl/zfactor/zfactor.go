// Copyright 2016 The Psychro Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package zfactor implements the solution of the truncated virial equation of state for the
// compressibility factor Z. With v₀ = R・T/p, b₀ = B/v₀ and c₀ = C/v₀², the equation in terms
// of the molar volume v = Z・v₀ reads
//   Z = 1 + b₀/Z + c₀/Z²
package zfactor

import (
	"math"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun/dbf"
	"github.com/cpmech/gosl/io"
	"github.com/termolivre/psychro/phys"
)

// default constants
const (
	DefaultNmaxIt = 100   // max number of iterations
	DefaultItol   = 1e-14 // tolerance on |Z_{n+1} - Z_n|
)

// Solver solves for Z by successive substitution starting from Z₀ = 1
type Solver struct {
	NmaxIt int     // max number of iterations
	Itol   float64 // iterations tolerance
	ShowR  bool    // show iterates
}

// NewSolver returns a solver with default constants
func NewSolver() Solver {
	return Solver{NmaxIt: DefaultNmaxIt, Itol: DefaultItol}
}

// Init initialises this structure. Missing parameters take default values
func (o *Solver) Init(prms dbf.Params) (err error) {
	o.NmaxIt = DefaultNmaxIt
	o.Itol = DefaultItol
	o.ShowR = false
	for _, p := range prms {
		switch p.N {
		case "NmaxIt":
			o.NmaxIt = int(p.V)
		case "Itol":
			o.Itol = p.V
		case "ShowR":
			o.ShowR = p.V > 0
		default:
			return chk.Err("zfactor: parameter named %q is incorrect\n", p.N)
		}
	}
	if o.NmaxIt < 1 {
		return chk.Err("zfactor: NmaxIt = %d is invalid; it must be at least 1\n", o.NmaxIt)
	}
	if o.Itol <= 0 {
		return chk.Err("zfactor: Itol = %g is invalid; it must be positive\n", o.Itol)
	}
	return
}

// GetPrms gets (an example) of parameters
func (o Solver) GetPrms(example bool) dbf.Params {
	if example {
		return dbf.Params{
			&dbf.P{N: "NmaxIt", V: DefaultNmaxIt},
			&dbf.P{N: "Itol", V: DefaultItol},
		}
	}
	var showR float64
	if o.ShowR {
		showR = 1
	}
	return dbf.Params{
		&dbf.P{N: "NmaxIt", V: float64(o.NmaxIt)},
		&dbf.P{N: "Itol", V: o.Itol},
		&dbf.P{N: "ShowR", V: showR},
	}
}

// Calc computes Z for reduced virial terms b0 = B/v₀ and c0 = C/v₀²
func (o Solver) Calc(b0, c0 float64) (Z float64, err error) {
	Z = 1.0
	var δ float64
	for it := 0; it < o.NmaxIt; it++ {
		Znew := 1.0 + b0/Z + c0/(Z*Z)
		δ = math.Abs(Znew - Z)
		if o.ShowR {
			io.Pf("%4d Z = %23.16e  δ = %g\n", it, Znew, δ)
		}
		Z = Znew
		if δ < o.Itol {
			return
		}
	}
	return Z, &phys.ConvergenceError{Msg: "zfactor", Estimate: Z, NmaxIt: o.NmaxIt, Residual: δ}
}

// CalcZ computes Z with the default solver
func CalcZ(b0, c0 float64) (Z float64, err error) {
	return NewSolver().Calc(b0, c0)
}
