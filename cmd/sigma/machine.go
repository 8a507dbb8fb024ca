//
// Copyright (c) 2020 Jason S. McMullan <jason.mcmullan@gmail.com>
//

package main

import (
	"fmt"
	"io"

	"github.com/sigmaslicer/fdm"
)

func PrintMachines(writer io.Writer) {
	fmt.Fprintln(writer)
	fmt.Fprintln(writer, "Known machines:")
	fmt.Fprintln(writer)

	for _, key := range fdm.MachineNames() {
		item := fdm.Machines[key]
		size := &item.Size
		fmt.Fprintf(writer, "    %-14s %-10s %-12s %gx%gx%g %v\n",
			key, item.Vendor, item.Model,
			size.X, size.Y, size.Z, item.Config.Units)
	}
}
