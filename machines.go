//
// Copyright (c) 2020 Jason S. McMullan <jason.mcmullan@gmail.com>
//

package fdm

import (
	"fmt"
	"sort"
)

// Build volume, in the preset's units
type MachineSize struct {
	X, Y, Z float64
}

type Machine struct {
	Vendor string
	Model  string
	Size   MachineSize
	Config Config
}

// Fits reports whether a box of the given extent fits the build volume
func (machine *Machine) Fits(extent Vec3) bool {
	size := &machine.Size
	return extent.X <= size.X && extent.Y <= size.Y && extent.Z <= size.Z
}

var (
	Machines = map[string](*Machine){}
)

func RegisterMachine(name string, machine Machine) (err error) {
	_, ok := Machines[name]
	if ok {
		err = fmt.Errorf("%s: name already exists in Machine list", name)
		return
	}

	Machines[name] = &machine

	return
}

func RegisterMachines(machineMap map[string]Machine) (err error) {
	for name, machine := range machineMap {
		err = RegisterMachine(name, machine)
		if err != nil {
			return
		}
	}

	return
}

// MachineNames lists the registered machines, sorted
func MachineNames() (names []string) {
	for name := range Machines {
		names = append(names, name)
	}
	sort.Strings(names)

	return
}
