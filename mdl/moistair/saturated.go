// Copyright 2016 The Psychro Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package moistair

import (
	"math"

	"github.com/cpmech/gosl/io"
	"github.com/termolivre/psychro/mdl/condensed"
	"github.com/termolivre/psychro/phys"
)

// XvSat computes the mole fraction of water vapour in saturated moist air
//   xvs = f(T,P)・pws(T)/P
func (o Engine) XvSat(T, P float64) (xvs float64, err error) {
	err = checkState(T, P, 0)
	if err != nil {
		return
	}
	f, err := o.Fsol.Calc(T, P)
	if err != nil {
		return
	}
	return f * condensed.Pws(T) / P, nil
}

// RelativeHumidity computes xv/xvs
func (o Engine) RelativeHumidity(T, P, xv float64) (rh float64, err error) {
	err = checkState(T, P, xv)
	if err != nil {
		return
	}
	xvs, err := o.XvSat(T, P)
	if err != nil {
		return
	}
	return xv / xvs, nil
}

// MolarFractionRH computes xv corresponding to the relative humidity rh
func (o Engine) MolarFractionRH(T, P, rh float64) (xv float64, err error) {
	if rh < 0 || rh > 1 {
		return 0, &phys.DomainError{Msg: "moistair: relative humidity must be in [0,1]", Value: rh}
	}
	xvs, err := o.XvSat(T, P)
	if err != nil {
		return
	}
	return rh * xvs, nil
}

// DewPoint computes the temperature at which moist air with mole fraction xv becomes saturated.
// The root of r(T) = ln(xvs(T)/xv) is first bracketed by stepping DewTstep away from the triple
// point, within [DewTmin, DewTmax], and then refined by the Illinois variant of regula falsi
func (o Engine) DewPoint(P, xv float64) (Td float64, err error) {
	err = checkState(phys.Ttrip, P, xv)
	if err != nil {
		return
	}
	if xv == 0 {
		return 0, &phys.DomainError{Msg: "moistair: dew point of dry air is undefined", Value: xv}
	}

	// residual; increasing with T
	res := func(T float64) (float64, error) {
		xvs, e := o.XvSat(T, P)
		if e != nil {
			return 0, e
		}
		return math.Log(xvs / xv), nil
	}

	// bracket
	a, b := phys.Ttrip, phys.Ttrip
	ra, err := res(a)
	if err != nil {
		return
	}
	if ra == 0 {
		return a, nil
	}
	rb := ra
	for ra*rb > 0 {
		a, ra = b, rb
		if ra > 0 {
			if b == DewTmin {
				return b, &phys.DomainError{Msg: "moistair: dew point is below the lowest temperature", Value: xv}
			}
			b = math.Max(b-DewTstep, DewTmin)
		} else {
			if b == DewTmax {
				return b, &phys.DomainError{Msg: "moistair: dew point is above the highest temperature", Value: xv}
			}
			b = math.Min(b+DewTstep, DewTmax)
		}
		rb, err = res(b)
		if err != nil {
			return
		}
		if o.DewShowR {
			io.Pf("     T = %23.16e  r = %13.6e\n", b, rb)
		}
		if rb == 0 {
			return b, nil
		}
	}

	// iterations
	var rc, δ float64
	c, side := b, 0
	for it := 0; it < o.DewNmaxIt; it++ {
		cnew := (ra*b - rb*a) / (ra - rb)
		δ = math.Abs(cnew - c)
		c = cnew
		rc, err = res(c)
		if err != nil {
			return
		}
		if o.DewShowR {
			io.Pf("%4d Td = %23.16e  r = %13.6e  δ = %13.6e\n", it, c, rc, δ)
		}
		if rc == 0 || δ < o.DewItol {
			return c, nil
		}
		if rc*rb > 0 {
			b, rb = c, rc
			if side == -1 {
				ra /= 2.0
			}
			side = -1
		} else {
			a, ra = c, rc
			if side == +1 {
				rb /= 2.0
			}
			side = +1
		}
	}
	return c, &phys.ConvergenceError{Msg: "moistair: dew point", Estimate: c, NmaxIt: o.DewNmaxIt, Residual: δ}
}

// HumidityRatio computes the mass of water vapour per mass of dry air
func HumidityRatio(xv float64) float64 {
	return phys.Mv / phys.Ma * xv / (1.0 - xv)
}

// MolarFraction computes the mole fraction of water vapour from the humidity ratio w
func MolarFraction(w float64) float64 {
	return w / (phys.Mv/phys.Ma + w)
}
