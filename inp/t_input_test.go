// Copyright 2016 The Psychro Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package inp

import (
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
)

func verbose() {
	io.Verbose = true
	chk.Verbose = true
}

func Test_input01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("input01")

	in, err := ReadInput("data", "psychro.psy")
	if err != nil {
		tst.Errorf("ReadInput failed:\n%v", err)
		return
	}
	io.Pforan("desc = %v\n", in.Desc)
	chk.String(tst, in.Key, "psychro")
	chk.IntAssert(len(in.Zsolver), 2)
	chk.IntAssert(len(in.Fsolver), 3)
	chk.IntAssert(len(in.Tables), 3)
	chk.String(tst, in.Zsolver[0].N, "Itol")
	chk.Float64(tst, "Itol", 1e-30, in.Zsolver[0].V, 1e-14)

	sat := in.Tables[0]
	chk.String(tst, sat.Kind, KindSaturated)
	chk.Float64(tst, "sat: P", 1e-15, sat.P, 101325)
	chk.Float64(tst, "sat: Tmin", 1e-15, sat.Tmin, 263.15)
	chk.IntAssert(sat.Npts, 6)

	// defaults
	rh := in.Tables[1]
	chk.String(tst, rh.Kind, KindRh)
	chk.Float64(tst, "rh: P", 1e-15, rh.P, 101325)
	chk.Float64(tst, "rh: rh", 1e-15, rh.Rh, 0.5)

	dry := in.Tables[2]
	chk.String(tst, dry.Kind, KindDry)
	chk.Float64(tst, "dry: P", 1e-15, dry.P, 1e6)
	chk.IntAssert(dry.Npts, 1)
}

func Test_input02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("input02. errors")

	_, err := ReadInput("data", "badkind.psy")
	if err == nil {
		tst.Errorf("ReadInput should have failed with wrong kind of table\n")
		return
	}
	io.Pforan("%v\n", err)

	_, err = ReadInput("data", "inexistent.psy")
	if err == nil {
		tst.Errorf("ReadInput should have failed with inexistent file\n")
	}

	// table checks
	var t TableData
	t.SetDefault()
	if err = t.Check(); err != nil {
		tst.Errorf("default table should be valid: %v\n", err)
	}
	for _, modify := range []func(t *TableData){
		func(t *TableData) { t.Kind = KindRh; t.Rh = 1.2 },
		func(t *TableData) { t.P = 0 },
		func(t *TableData) { t.Tmin = -1 },
		func(t *TableData) { t.Tmax = t.Tmin - 1 },
		func(t *TableData) { t.Npts = 0 },
		func(t *TableData) { t.Npts = 1 },
	} {
		t.SetDefault()
		modify(&t)
		if err = t.Check(); err == nil {
			tst.Errorf("Check should have failed with %+v\n", t)
		}
	}
}
