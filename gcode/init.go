//
// Copyright (c) 2020 Jason S. McMullan <jason.mcmullan@gmail.com>
//

package gcode

import (
	"github.com/sigmaslicer/fdm"
)

func presetConfig(bedTemp, extruderTemp, fanSpeed int, feedRate float64) (config fdm.Config) {
	config = fdm.DefaultConfig()
	config.BedTemp = bedTemp
	config.ExtruderTemp = extruderTemp
	config.FanSpeed = fanSpeed
	config.FeedRate = feedRate

	return
}

func inchConfig() (config fdm.Config) {
	config = fdm.DefaultConfig()
	config.Units = fdm.UnitsInch
	config.DecimalPrecision = 4
	config.LayerThickness = 0.008
	config.ExtrusionWidth = 0.016
	config.FeedRate = 16.0

	return
}

var (
	machines_fdm = map[string]fdm.Machine{
		"generic":      {Vendor: "Generic", Model: "FDM", Size: fdm.MachineSize{X: 200, Y: 200, Z: 200}, Config: fdm.DefaultConfig()},
		"generic-inch": {Vendor: "Generic", Model: "FDM (inch)", Size: fdm.MachineSize{X: 8, Y: 8, Z: 8}, Config: inchConfig()},
		"ender3":       {Vendor: "Creality", Model: "Ender-3", Size: fdm.MachineSize{X: 220, Y: 220, Z: 250}, Config: presetConfig(60, 200, 255, 1500)},
		"mk3s":         {Vendor: "Prusa", Model: "i3 MK3S", Size: fdm.MachineSize{X: 250, Y: 210, Z: 210}, Config: presetConfig(60, 215, 255, 2400)},
		"mini":         {Vendor: "Prusa", Model: "MINI", Size: fdm.MachineSize{X: 180, Y: 180, Z: 180}, Config: presetConfig(60, 215, 255, 2400)},
	}
)

func init() {
	fdm.RegisterMachines(machines_fdm)
}
