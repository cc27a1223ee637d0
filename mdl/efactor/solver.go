// Copyright 2016 The Psychro Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package efactor

import (
	"math"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun/dbf"
	"github.com/cpmech/gosl/io"
	"github.com/termolivre/psychro/mdl/condensed"
	"github.com/termolivre/psychro/phys"
)

// Strategy selects the iterative method
type Strategy int

// strategies
const (
	Newton     Strategy = iota // Newton-Raphson on ln f - Φ(f) = 0
	FixedPoint                 // successive substitution f ← exp(Φ(f))
)

// String returns the name of the strategy
func (o Strategy) String() string {
	if o == FixedPoint {
		return "fixed-point"
	}
	return "newton"
}

// default constants
const (
	DefaultRelax  = 1.0  // relaxation of Newton's step
	DefaultItol   = 1e-8 // tolerance on step size
	DefaultNmaxIt = 200  // max number of iterations
	DefaultHderiv = 1e-8 // step of forward difference
)

// Solver computes the enhancement factor
type Solver struct {
	Strategy Strategy // method
	Relax    float64  // relaxation coefficient in (0,1]. Newton only
	Itol     float64  // iterations tolerance
	NmaxIt   int      // max number of iterations
	Hderiv   float64  // step for numerical derivative. Newton only
	ShowR    bool     // show iterates
}

// NewSolver returns a Newton solver with default constants
func NewSolver() Solver {
	return Solver{Strategy: Newton, Relax: DefaultRelax, Itol: DefaultItol, NmaxIt: DefaultNmaxIt, Hderiv: DefaultHderiv}
}

// Init initialises this structure. Missing parameters take default values
func (o *Solver) Init(prms dbf.Params) (err error) {
	*o = NewSolver()
	for _, p := range prms {
		switch p.N {
		case "strategy":
			o.Strategy = Strategy(int(p.V))
		case "relax":
			o.Relax = p.V
		case "Itol":
			o.Itol = p.V
		case "NmaxIt":
			o.NmaxIt = int(p.V)
		case "h":
			o.Hderiv = p.V
		case "ShowR":
			o.ShowR = p.V > 0
		default:
			return chk.Err("efactor: parameter named %q is incorrect\n", p.N)
		}
	}
	if o.Strategy != Newton && o.Strategy != FixedPoint {
		return chk.Err("efactor: strategy = %d is invalid; options are 0 (newton) or 1 (fixed-point)\n", o.Strategy)
	}
	if o.Relax <= 0 || o.Relax > 1 {
		return chk.Err("efactor: relax = %g is invalid; it must be in (0,1]\n", o.Relax)
	}
	if o.Itol <= 0 {
		return chk.Err("efactor: Itol = %g is invalid; it must be positive\n", o.Itol)
	}
	if o.NmaxIt < 1 {
		return chk.Err("efactor: NmaxIt = %d is invalid; it must be at least 1\n", o.NmaxIt)
	}
	if o.Hderiv <= 0 {
		return chk.Err("efactor: h = %g is invalid; it must be positive\n", o.Hderiv)
	}
	return
}

// GetPrms gets (an example) of parameters
func (o Solver) GetPrms(example bool) dbf.Params {
	if example {
		return dbf.Params{
			&dbf.P{N: "strategy", V: float64(Newton)},
			&dbf.P{N: "relax", V: DefaultRelax},
			&dbf.P{N: "Itol", V: DefaultItol},
			&dbf.P{N: "NmaxIt", V: DefaultNmaxIt},
		}
	}
	var showR float64
	if o.ShowR {
		showR = 1
	}
	return dbf.Params{
		&dbf.P{N: "strategy", V: float64(o.Strategy)},
		&dbf.P{N: "relax", V: o.Relax},
		&dbf.P{N: "Itol", V: o.Itol},
		&dbf.P{N: "NmaxIt", V: float64(o.NmaxIt)},
		&dbf.P{N: "h", V: o.Hderiv},
		&dbf.P{N: "ShowR", V: showR},
	}
}

// Calc computes the enhancement factor at (T, P). The condensed phase is selected from T
func (o Solver) Calc(T, P float64) (f float64, err error) {
	in, err := NewInputs(T, P)
	if err != nil {
		return
	}
	return o.Solve(in)
}

// CalcWith computes the enhancement factor at (T, P) with the given condensed phase model
func (o Solver) CalcWith(T, P float64, mdl condensed.Model) (f float64, err error) {
	in, err := NewInputsFor(T, P, mdl)
	if err != nil {
		return
	}
	return o.Solve(in)
}

// Solve finds f starting from f₀ = 1
func (o Solver) Solve(in Inputs) (f float64, err error) {
	if o.Strategy == FixedPoint {
		return o.fixedPoint(in)
	}
	return o.newton(in)
}

// newton solves ln f - Φ(f) = 0 with a forward difference derivative
func (o Solver) newton(in Inputs) (f float64, err error) {
	f = 1.0
	var r, rh, δ float64
	for it := 0; it < o.NmaxIt; it++ {
		r, err = in.Residual(f)
		if err != nil {
			return
		}
		rh, err = in.Residual(f + o.Hderiv)
		if err != nil {
			return
		}
		drdf := (rh - r) / o.Hderiv
		if drdf == 0 {
			return f, &phys.DomainError{Msg: "efactor: derivative of residual vanished", Value: f}
		}
		δ = -r / drdf
		if o.ShowR {
			io.Pf("%4d f = %23.16e  r = %13.6e  δ = %13.6e\n", it, f, r, δ)
		}
		if math.Abs(δ) < o.Itol {
			f += δ
			return math.Max(f, 1.0), nil
		}
		f += o.Relax * δ
		if f <= 0 {
			return f, &phys.DomainError{Msg: "efactor: Newton iterate became non-positive", Value: f}
		}
	}
	return f, &phys.ConvergenceError{Msg: "efactor (newton)", Estimate: f, NmaxIt: o.NmaxIt, Residual: δ}
}

// fixedPoint iterates f ← exp(Φ(f))
func (o Solver) fixedPoint(in Inputs) (f float64, err error) {
	f = 1.0
	var Φ, δ float64
	for it := 0; it < o.NmaxIt; it++ {
		Φ, err = in.Phi(f)
		if err != nil {
			return
		}
		fnew := math.Exp(Φ)
		δ = math.Abs(fnew - f)
		if o.ShowR {
			io.Pf("%4d f = %23.16e  δ = %13.6e\n", it, fnew, δ)
		}
		f = fnew
		if δ < o.Itol {
			return math.Max(f, 1.0), nil
		}
	}
	return f, &phys.ConvergenceError{Msg: "efactor (fixed-point)", Estimate: f, NmaxIt: o.NmaxIt, Residual: δ}
}

// Efactor computes the enhancement factor with Newton's method and default constants
func Efactor(T, P float64) (f float64, err error) {
	return NewSolver().Calc(T, P)
}

// Efactor2 computes the enhancement factor by successive substitution and default constants
func Efactor2(T, P float64) (f float64, err error) {
	sol := NewSolver()
	sol.Strategy = FixedPoint
	return sol.Calc(T, P)
}
