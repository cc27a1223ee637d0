// Copyright 2016 The Psychro Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package inp implements the input data read from a (.psy) JSON file
package inp

import (
	"encoding/json"
	"path/filepath"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun/dbf"
	"github.com/cpmech/gosl/io"
)

// table kinds
const (
	KindSaturated = "saturated" // saturated moist air
	KindRh        = "rh"        // moist air with given relative humidity
	KindDry       = "dry"       // dry air
)

// TableData holds data for one table of properties along temperature
type TableData struct {
	Desc string  `json:"desc"` // description of table
	Kind string  `json:"kind"` // "saturated", "rh" or "dry"
	P    float64 `json:"p"`    // total pressure [Pa]
	Tmin float64 `json:"tmin"` // min temperature [K]
	Tmax float64 `json:"tmax"` // max temperature [K]
	Npts int     `json:"npts"` // number of temperatures
	Rh   float64 `json:"rh"`   // relative humidity for "rh" tables
}

// SetDefault sets default values
func (o *TableData) SetDefault() {
	o.Kind = KindSaturated
	o.P = 101325
	o.Tmin = 273.15
	o.Tmax = 333.15
	o.Npts = 7
}

// Check checks data
func (o *TableData) Check() (err error) {
	switch o.Kind {
	case KindSaturated, KindDry:
	case KindRh:
		if o.Rh < 0 || o.Rh > 1 {
			return chk.Err("relative humidity = %g is invalid; it must be in [0,1]", o.Rh)
		}
	default:
		return chk.Err("table kind %q is incorrect; options are %q, %q and %q", o.Kind, KindSaturated, KindRh, KindDry)
	}
	if o.P <= 0 {
		return chk.Err("pressure = %g is invalid; it must be positive", o.P)
	}
	if o.Tmin <= 0 || o.Tmax < o.Tmin {
		return chk.Err("temperature range [%g, %g] is invalid", o.Tmin, o.Tmax)
	}
	if o.Npts < 1 {
		return chk.Err("number of points = %d is invalid", o.Npts)
	}
	if o.Npts == 1 && o.Tmax != o.Tmin {
		return chk.Err("a single point requires tmin = tmax")
	}
	return
}

// TablesData holds tables
type TablesData []*TableData

// UnmarshalJSON sets default values before decoding each table
func (o *TablesData) UnmarshalJSON(b []byte) (err error) {
	var raw []json.RawMessage
	err = json.Unmarshal(b, &raw)
	if err != nil {
		return
	}
	*o = make([]*TableData, len(raw))
	for i, r := range raw {
		t := new(TableData)
		t.SetDefault()
		err = json.Unmarshal(r, t)
		if err != nil {
			return
		}
		(*o)[i] = t
	}
	return
}

// Input holds all input data
type Input struct {

	// input
	Desc    string     `json:"desc"`    // description
	Zsolver dbf.Params `json:"zsolver"` // parameters of the compressibility factor solver
	Fsolver dbf.Params `json:"fsolver"` // parameters of the enhancement factor solver
	Tables  TablesData `json:"tables"`  // tables to be computed

	// derived
	Key string // filename key; e.g. "saturated" for "saturated.psy"
}

// ReadInput reads input data from a JSON file
func ReadInput(dir, fn string) (o *Input, err error) {

	// read file. io.ReadFile panics on failure
	defer func() {
		if r := recover(); r != nil {
			o, err = nil, chk.Err("cannot read input file %q:\n%v", fn, r)
		}
	}()
	b := io.ReadFile(filepath.Join(dir, fn))

	// decode
	o = new(Input)
	err = json.Unmarshal(b, o)
	if err != nil {
		return nil, chk.Err("cannot unmarshal input file %q:\n%v", fn, err)
	}
	o.Key = io.FnKey(fn)

	// check
	if len(o.Tables) == 0 {
		return nil, chk.Err("input file %q has no tables", fn)
	}
	for i, t := range o.Tables {
		err = t.Check()
		if err != nil {
			return nil, chk.Err("table # %d in %q:\n%v", i, fn, err)
		}
	}
	return
}
