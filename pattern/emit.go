//
// Copyright (c) 2020 Jason S. McMullan <jason.mcmullan@gmail.com>
//

// Package pattern turns toolpaths into emitter calls
package pattern

import (
	"github.com/sigmaslicer/fdm"
	"github.com/sigmaslicer/fdm/gcode"
)

// Emitter is the motion half of a print task
type Emitter interface {
	MoveTo(x, y, z float64) error
	ExtrudeTo(x, y float64) error
}

// Emit walks the toolpath bottom up, stopping at the first failure
func Emit(task Emitter, toolpath fdm.Toolpath) (err error) {
	layers := toolpath.Layers()

	prog := fdm.NewProgress(layers)
	defer prog.Close()

	for n := 0; n < layers; n++ {
		layer := toolpath.Layer(n)
		for _, ring := range layer.Rings {
			if len(ring) == 0 {
				continue
			}

			err = task.MoveTo(ring[0].X, ring[0].Y, layer.Z)
			if err != nil {
				return
			}

			for _, pt := range ring[1:] {
				err = task.ExtrudeTo(pt.X, pt.Y)
				if err != nil {
					return
				}
			}
		}
		prog.Indicate()
	}

	return
}

// EmitCylinder prints the test cylinder at the task's layer thickness
func EmitCylinder(task *gcode.Task, height, radius float64, sides int) (err error) {
	config := task.Config()

	err = Emit(task, NewCylinder(height, radius, sides, config.LayerThickness))

	return
}
