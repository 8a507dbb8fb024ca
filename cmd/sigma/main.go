//
// Copyright (c) 2020 Jason S. McMullan <jason.mcmullan@gmail.com>
//

package main

import (
	"fmt"
	"os"

	"github.com/spf13/pflag"
	"github.com/unixpickle/essentials"

	"github.com/sigmaslicer/fdm"
	_ "github.com/sigmaslicer/fdm/stl"
)

func main() {
	cmd := NewSliceCommand()
	cmd.Usage = func() {
		fmt.Fprintln(os.Stderr, "Usage: sigma [options]")
		fmt.Fprintln(os.Stderr)
		cmd.PrintDefaults()
		PrintMachines(os.Stderr)
	}

	err := cmd.Parse(os.Args[1:])
	if err == pflag.ErrHelp {
		os.Exit(0)
	}
	if err != nil {
		os.Exit(1)
	}

	if cmd.NArg() != 0 {
		cmd.Usage()
		essentials.Die("Invalid command line arguments:", cmd.Args())
	}

	SetVerbosity(Verbosity(cmd.Verbose))
	fdm.SetProgress(&traceProgress{last: -1})

	if cmd.ListMachines {
		PrintMachines(os.Stdout)
		return
	}

	TraceVerbosef(VerbosityNotice, "Input: %v", inputName(cmd.Input))

	err = cmd.Run()
	if err != nil {
		essentials.Die(err)
	}
}

func inputName(input string) string {
	if len(input) == 0 {
		return "default (test)"
	}
	return input
}
