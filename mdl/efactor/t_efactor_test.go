// Copyright 2016 The Psychro Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package efactor

import (
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun/dbf"
	"github.com/cpmech/gosl/io"
	"github.com/cpmech/gosl/utl"
	"github.com/termolivre/psychro/mdl/condensed"
	"github.com/termolivre/psychro/phys"
)

func verbose() {
	io.Verbose = true
	chk.Verbose = true
}

func Test_efactor01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("efactor01. reference values")

	f, err := Efactor(300, 1e5)
	if err != nil {
		tst.Errorf("Efactor failed: %v\n", err)
		return
	}
	chk.Float64(tst, "f(300,1e5)", 1e-12, f, 1.0042133426087643)

	for _, c := range []struct{ T, P, f float64 }{
		{250, 1e5, 1.004420764819329},
		{273.15, 1e5, 1.003984443300075},
		{273.17, 1e5, 1.0038896356713767},
		{300, 1e6, 1.0295963729733804},
		{350, 5e5, 1.0167449300655804},
		{200, 1e5, 1.0073516553707824},
		{360, 2e6, 1.0483738326657064},
	} {
		f, err = Efactor(c.T, c.P)
		if err != nil {
			tst.Errorf("Efactor failed: %v\n", err)
			return
		}
		io.Pforan("T = %6.2f  P = %8g  f = %v\n", c.T, c.P, f)
		chk.Float64(tst, io.Sf("f(%g,%g)", c.T, c.P), 1e-12, f, c.f)
	}
}

func Test_efactor02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("efactor02. newton versus fixed point")

	f2, err := Efactor2(300, 1e5)
	if err != nil {
		tst.Errorf("Efactor2 failed: %v\n", err)
		return
	}
	chk.Float64(tst, "f2(300,1e5)", 1e-12, f2, 1.004213342608366)

	for _, T := range utl.LinSpace(190, 370, 7) {
		for _, P := range []float64{1e5, 5e5, 1e6} {
			f, err := Efactor(T, P)
			if err != nil {
				tst.Errorf("Efactor failed: %v\n", err)
				return
			}
			f2, err = Efactor2(T, P)
			if err != nil {
				tst.Errorf("Efactor2 failed: %v\n", err)
				return
			}
			chk.Float64(tst, io.Sf("f(%g,%g)", T, P), 1e-6, f, f2)
		}
	}
}

func Test_efactor03(tst *testing.T) {

	//verbose()
	chk.PrintTitle("efactor03. monotonicity and lower bound")

	prev := 0.0
	for _, P := range utl.LinSpace(1e4, 3e6, 30) {
		f, err := Efactor(300, P)
		if err != nil {
			tst.Errorf("Efactor failed: %v\n", err)
			return
		}
		if f < 1 {
			tst.Errorf("f must not be smaller than 1. f = %v\n", f)
			return
		}
		if f < prev {
			tst.Errorf("f must increase with P. f(%g) = %v < %v\n", P, f, prev)
			return
		}
		prev = f
	}
}

func Test_efactor04(tst *testing.T) {

	//verbose()
	chk.PrintTitle("efactor04. phase boundary")

	fi, err := Efactor(phys.Ttrip-1e-9, 1e5)
	if err != nil {
		tst.Errorf("Efactor failed: %v\n", err)
		return
	}
	fl, err := Efactor(phys.Ttrip+1e-9, 1e5)
	if err != nil {
		tst.Errorf("Efactor failed: %v\n", err)
		return
	}
	io.Pforan("ice = %v  liquid = %v\n", fi, fl)
	chk.Float64(tst, "ice vs liquid", 1e-3, fi, fl)

	// explicit models
	var sol Solver
	sol.Init(nil)
	mdl, err := condensed.New("ice")
	if err != nil {
		tst.Errorf("New failed: %v\n", err)
		return
	}
	f, err := sol.CalcWith(phys.Ttrip-1e-9, 1e5, mdl)
	if err != nil {
		tst.Errorf("CalcWith failed: %v\n", err)
		return
	}
	chk.Float64(tst, "ice model", 1e-15, f, fi)

	in, err := NewInputs(phys.Ttrip, 1e5)
	if err != nil {
		tst.Errorf("NewInputs failed: %v\n", err)
		return
	}
	if in.Phase != condensed.Liquid {
		tst.Errorf("phase at triple point must be liquid\n")
	}
}

func Test_efactor05(tst *testing.T) {

	//verbose()
	chk.PrintTitle("efactor05. relaxation and failures")

	// relaxed newton
	var sol Solver
	err := sol.Init(dbf.Params{
		&dbf.P{N: "relax", V: 0.5},
	})
	if err != nil {
		tst.Errorf("Init failed: %v\n", err)
		return
	}
	f, err := sol.Calc(300, 1e5)
	if err != nil {
		tst.Errorf("Calc failed: %v\n", err)
		return
	}
	chk.Float64(tst, "relaxed", 1e-9, f, 1.0042133426087643)

	// too few iterations
	for _, strategy := range []Strategy{Newton, FixedPoint} {
		err = sol.Init(dbf.Params{
			&dbf.P{N: "strategy", V: float64(strategy)},
			&dbf.P{N: "NmaxIt", V: 1},
		})
		if err != nil {
			tst.Errorf("Init failed: %v\n", err)
			return
		}
		_, err = sol.Calc(300, 1e5)
		if !phys.IsConvergence(err) {
			tst.Errorf("%v: Calc should have failed with ConvergenceError. err = %v\n", strategy, err)
			return
		}
		io.Pforan("%v\n", err)
		cerr := err.(*phys.ConvergenceError)
		chk.IntAssert(cerr.NmaxIt, 1)
		if cerr.Estimate <= 1 {
			tst.Errorf("estimate should be greater than 1. estimate = %v\n", cerr.Estimate)
		}
	}

	// Henry's constant is undefined at very low temperatures; liquid is forced here
	_, err = sol.CalcWith(120, 1e5, condensed.LiquidModel{})
	if !phys.IsDomain(err) {
		tst.Errorf("CalcWith should have failed with DomainError. err = %v\n", err)
	}
}

func Test_efactor06(tst *testing.T) {

	//verbose()
	chk.PrintTitle("efactor06. parameters")

	var sol Solver
	err := sol.Init(sol.GetPrms(true))
	if err != nil {
		tst.Errorf("Init failed: %v\n", err)
		return
	}
	if sol != NewSolver() {
		tst.Errorf("example parameters should give default solver: %+v\n", sol)
	}

	err = sol.Init(dbf.Params{
		&dbf.P{N: "strategy", V: 1},
		&dbf.P{N: "relax", V: 0.8},
		&dbf.P{N: "Itol", V: 1e-10},
		&dbf.P{N: "NmaxIt", V: 50},
		&dbf.P{N: "h", V: 1e-7},
		&dbf.P{N: "ShowR", V: 1},
	})
	if err != nil {
		tst.Errorf("Init failed: %v\n", err)
		return
	}
	if sol.Strategy != FixedPoint {
		tst.Errorf("strategy should be fixed-point\n")
	}
	chk.Float64(tst, "relax", 1e-17, sol.Relax, 0.8)
	chk.Float64(tst, "Itol", 1e-30, sol.Itol, 1e-10)
	chk.Float64(tst, "h", 1e-30, sol.Hderiv, 1e-7)
	chk.IntAssert(sol.NmaxIt, 50)

	var other Solver
	err = other.Init(sol.GetPrms(false))
	if err != nil {
		tst.Errorf("Init failed: %v\n", err)
		return
	}
	if other != sol {
		tst.Errorf("GetPrms/Init round trip failed: %+v != %+v\n", other, sol)
	}

	// errors
	for _, prms := range []dbf.Params{
		{&dbf.P{N: "tol", V: 1}},
		{&dbf.P{N: "strategy", V: 2}},
		{&dbf.P{N: "relax", V: 0}},
		{&dbf.P{N: "relax", V: 1.5}},
		{&dbf.P{N: "Itol", V: 0}},
		{&dbf.P{N: "NmaxIt", V: 0}},
		{&dbf.P{N: "h", V: -1e-8}},
	} {
		if err = sol.Init(prms); err == nil {
			tst.Errorf("Init should have failed with %s = %g\n", prms[0].N, prms[0].V)
		}
	}
}

func Test_efactor07(tst *testing.T) {

	//verbose()
	chk.PrintTitle("efactor07. terms")

	in, err := NewInputs(300, 1e5)
	if err != nil {
		tst.Errorf("NewInputs failed: %v\n", err)
		return
	}
	f := 1.0042133426087643
	t, err := in.Terms(f)
	if err != nil {
		tst.Errorf("Terms failed: %v\n", err)
		return
	}
	Φ, err := in.Phi(f)
	if err != nil {
		tst.Errorf("Phi failed: %v\n", err)
		return
	}
	sum := 0.0
	for i, v := range t {
		io.Pforan("t%d = %v\n", i+1, v)
		sum += v
	}
	chk.Float64(tst, "Σt", 1e-17, Φ, sum)

	// at the root, ln f = Φ(f)
	r, err := in.Residual(f)
	if err != nil {
		tst.Errorf("Residual failed: %v\n", err)
		return
	}
	chk.Float64(tst, "residual", 1e-9, r, 0)

	// ice has no dissolved air
	in, err = NewInputs(250, 1e5)
	if err != nil {
		tst.Errorf("NewInputs failed: %v\n", err)
		return
	}
	if in.Henry != 0 || in.Phase != condensed.Ice {
		tst.Errorf("ice inputs are incorrect: %+v\n", in)
	}

	// non-positive f
	_, err = in.Residual(0)
	if !phys.IsDomain(err) {
		tst.Errorf("Residual(0) should fail with DomainError. err = %v\n", err)
	}
}
