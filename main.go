// Copyright 2016 The Psychro Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"path/filepath"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	"github.com/termolivre/psychro/inp"
	"github.com/termolivre/psychro/mdl/moistair"
	"github.com/termolivre/psychro/out"
)

func main() {

	// catch errors
	defer func() {
		if err := recover(); err != nil {
			io.PfRed("\nERROR: %v", err)
			io.Pf("See location of error below:\n")
			chk.Verbose = true
			for i := 5; i > 3; i-- {
				chk.CallerInfo(i)
			}
		}
	}()

	// read input parameters
	fnamepath, _ := io.ArgToFilename(0, "psychro", ".psy", true)
	verbose := io.ArgToBool(1, true)
	showR := io.ArgToBool(2, false)

	// message
	if verbose {
		io.PfWhite("\nPsychro -- real gas properties of moist air\n")
		io.Pf("Copyright 2016 The Psychro Authors. All rights reserved.\n")
		io.Pf("Use of this source code is governed by a BSD-style\n")
		io.Pf("license that can be found in the LICENSE file.\n")

		io.Pf("\n%v\n", io.ArgsTable("INPUT ARGUMENTS",
			"filename path", "fnamepath", fnamepath,
			"show messages", "verbose", verbose,
			"show residuals", "showR", showR,
		))
	}

	// input data
	in, err := inp.ReadInput(filepath.Dir(fnamepath), filepath.Base(fnamepath))
	if err != nil {
		chk.Panic("cannot read input file:\n%v", err)
	}

	// engine
	var eng moistair.Engine
	err = eng.Init(in.Zsolver, in.Fsolver)
	if err != nil {
		chk.Panic("cannot initialise solvers:\n%v", err)
	}
	eng.Zsol.ShowR = showR
	eng.Fsol.ShowR = showR
	eng.DewShowR = showR

	// tables
	if verbose && in.Desc != "" {
		io.Pfyel("%s\n\n", in.Desc)
	}
	for i, dat := range in.Tables {
		tab, err := out.Compute(eng, dat)
		if err != nil {
			chk.Panic("table # %d failed:\n%v", i, err)
		}
		io.Pf("%v\n", tab)
	}
}
