// Copyright 2016 The Psychro Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package virial

import (
	"math"
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	"github.com/cpmech/gosl/utl"
	"github.com/termolivre/psychro/phys"
)

func verbose() {
	io.Verbose = true
	chk.Verbose = true
}

// pair holds a coefficient and its derivative
type pair struct {
	name string
	f    func(T float64) float64
	df   func(T float64) float64
}

var pairs = []pair{
	{"Baa", Baa, DBaa},
	{"Baw", Baw, DBaw},
	{"Bww", Bww, DBww},
	{"Caaa", Caaa, DCaaa},
	{"Caaw", Caaw, DCaaw},
	{"Caww", Caww, DCaww},
	{"Cwww", Cwww, DCwww},
	{"Blin", Blin, DBlin},
	{"Clin", Clin, DClin},
}

// checkDeriv compares the analytical derivative with a numerical one. Values are scaled
// because the coefficients are very small numbers
func checkDeriv(tst *testing.T, name string, T, tol float64, f, df func(T float64) float64) {
	ana := df(T)
	scale := math.Max(math.Abs(ana), math.Abs(f(T))/T)
	chk.DerivScaSca(tst, io.Sf("d%s/dT @ %g", name, T), tol, ana/scale, T, 1e-3, chk.Verbose, func(x float64) float64 {
		return f(x) / scale
	})
}

func Test_virial01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("virial01. reference values")

	chk.Float64(tst, "Baa(300)", 1e-18, Baa(300), -7.259614814814822e-6)
	chk.Float64(tst, "Bm(300,0.01)", 1e-18, Bm(300, 0.01), -7.8025792841398e-6)
	chk.Float64(tst, "Cm(300,0.01)", 1e-21, Cm(300, 0.01), 1.2734495937889647e-09)
	chk.Float64(tst, "Caaa(300)", 1e-21, Caaa(300), 0.125975e-8-0.190905e-6/300+0.632467e-4/90000)

	// water: B = R・T・B'
	T := 350.0
	chk.Float64(tst, "Bww/(R T Blin)", 1e-14, Bww(T)/(phys.R*T*Blin(T)), 1)
}

func Test_virial02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("virial02. derivatives")

	for _, p := range pairs {
		for _, T := range utl.LinSpace(173.15, 473.15, 7) {
			checkDeriv(tst, p.name, T, 1e-7, p.f, p.df)
		}
	}
}

func Test_virial03(tst *testing.T) {

	//verbose()
	chk.PrintTitle("virial03. mixture")

	for _, T := range []float64{200, 273.16, 300, 350} {
		s := At(T)

		// pure limits
		chk.Float64(tst, "Bm(xv=0)", 1e-20, Bm(T, 0), Baa(T))
		chk.Float64(tst, "Bm(xv=1)", 1e-20, Bm(T, 1), Bww(T))
		chk.Float64(tst, "Cm(xv=0)", 1e-22, Cm(T, 0), Caaa(T))
		chk.Float64(tst, "Cm(xv=1)", 1e-20, Cm(T, 1), Cwww(T))

		// set versus functions
		for _, xv := range []float64{0, 0.01, 0.2, 0.7} {
			chk.Float64(tst, "Set.Bm", 1e-20, s.Bm(xv), Bm(T, xv))
			chk.Float64(tst, "Set.DBm", 1e-20, s.DBm(xv), DBm(T, xv))
			chk.Float64(tst, "Set.Cm", 1e-22, s.Cm(xv), Cm(T, xv))
			chk.Float64(tst, "Set.DCm", 1e-22, s.DCm(xv), DCm(T, xv))
		}

		// mixture derivatives
		for _, xv := range []float64{0.01, 0.2, 0.7} {
			x := xv
			checkDeriv(tst, io.Sf("Bm(xv=%g)", x), T, 1e-7, func(T float64) float64 { return Bm(T, x) }, func(T float64) float64 { return DBm(T, x) })
			checkDeriv(tst, io.Sf("Cm(xv=%g)", x), T, 1e-7, func(T float64) float64 { return Cm(T, x) }, func(T float64) float64 { return DCm(T, x) })
		}
	}
}
