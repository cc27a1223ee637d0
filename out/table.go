// Copyright 2016 The Psychro Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package out implements the computation and output of tables of moist air properties
package out

import (
	"bytes"

	"github.com/cpmech/gosl/io"
	"github.com/cpmech/gosl/utl"
	"github.com/termolivre/psychro/inp"
	"github.com/termolivre/psychro/mdl/moistair"
)

// Row holds the properties at one temperature. Specific values are per kg of dry air
type Row struct {
	T  float64 // temperature [K]
	Xv float64 // mole fraction of water vapour
	W  float64 // humidity ratio [kg/kg]
	Td float64 // dew point [K]; zero for dry air
	Z  float64 // compressibility factor
	V  float64 // specific volume [m³/kg]
	H  float64 // specific enthalpy [J/kg]
	S  float64 // specific entropy [J/(kg・K)]
}

// Table holds a table of properties
type Table struct {
	Data *inp.TableData // input data
	Rows []Row          // results
}

// Compute computes a table of properties with the given engine
func Compute(eng moistair.Engine, dat *inp.TableData) (o *Table, err error) {

	// temperatures
	temps := []float64{dat.Tmin}
	if dat.Npts > 1 {
		temps = utl.LinSpace(dat.Tmin, dat.Tmax, dat.Npts)
	}

	// rows
	o = &Table{Data: dat, Rows: make([]Row, len(temps))}
	for i, T := range temps {
		r := &o.Rows[i]
		r.T = T

		// composition
		switch dat.Kind {
		case inp.KindSaturated:
			r.Xv, err = eng.XvSat(T, dat.P)
		case inp.KindRh:
			r.Xv, err = eng.MolarFractionRH(T, dat.P, dat.Rh)
		}
		if err != nil {
			return
		}

		// properties
		var st moistair.State
		st, err = eng.Calc(T, dat.P, r.Xv)
		if err != nil {
			return
		}
		r.Z = st.Z
		r.W = st.HumidityRatio()
		r.V, r.H, r.S, err = st.Specific()
		if err != nil {
			return
		}

		// dew point
		if r.Xv > 0 {
			r.Td, err = eng.DewPoint(dat.P, r.Xv)
			if err != nil {
				return
			}
		}
	}
	return
}

// String returns a formatted table
func (o *Table) String() string {
	var b bytes.Buffer
	desc := o.Data.Desc
	if desc == "" {
		desc = o.Data.Kind
	}
	b.WriteString(io.Sf("%s @ P = %g Pa", desc, o.Data.P))
	if o.Data.Kind == inp.KindRh {
		b.WriteString(io.Sf(", rh = %g", o.Data.Rh))
	}
	b.WriteString(io.Sf("\n%8s%14s%14s%10s%12s%12s%14s%12s\n", "T [K]", "xv", "W [kg/kg]", "Td [K]", "Z", "v [m³/kg]", "h [J/kg]", "s [J/kg/K]"))
	for _, r := range o.Rows {
		b.WriteString(io.Sf("%8.2f%14.6e%14.6e%10.3f%12.8f%12.6f%14.3f%12.5f\n", r.T, r.Xv, r.W, r.Td, r.Z, r.V, r.H, r.S))
	}
	return b.String()
}
