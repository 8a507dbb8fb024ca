//
// Copyright (c) 2020 Jason S. McMullan <jason.mcmullan@gmail.com>
//

package main

import (
	"github.com/sigmaslicer/fdm"
)

// traceMesh summarizes a loaded mesh, and warns when it will not fit
func traceMesh(mesh *fdm.Mesh, machine *fdm.Machine) {
	bounds := mesh.Bounds()
	size := bounds.Size()

	TraceVerbosef(VerbosityNotice, "Mesh: %v facets, %.2f x %.2f x %.2f", mesh.Count(), size.X, size.Y, size.Z)
	TraceVerbosef(VerbosityInfo, "  Min: %+v", bounds.Min)
	TraceVerbosef(VerbosityInfo, "  Max: %+v", bounds.Max)

	if mesh.Count() == 0 {
		return
	}

	m := mesh.Model3D()
	TraceVerbosef(VerbosityInfo, "  Volume: %.3f, Area: %.3f", m.Volume(), m.Area())
	if m.NeedsRepair() {
		TraceVerbosef(VerbosityWarning, "Warning: mesh is not closed, and needs repair")
	}

	if machine != nil && !machine.Fits(size) {
		TraceVerbosef(VerbosityWarning, "Warning: mesh does not fit the %v %v build volume", machine.Vendor, machine.Model)
	}
}

// traceToolpath reports the filament used by each layer
func traceToolpath(toolpath fdm.Toolpath, config fdm.Config) {
	if verbosity < VerbosityInfo {
		return
	}

	total := 0.0
	for n := 0; n < toolpath.Layers(); n++ {
		layer := toolpath.Layer(n)

		length := 0.0
		for _, ring := range layer.Rings {
			length += ring.Length()
		}

		filament := length * config.ExtrusionRate
		total += filament
		TraceVerbosef(VerbosityInfo, "  Layer %d: @%.3f %.3f %v path, %.3f %v filament", n, layer.Z, length, config.Units, filament, config.Units)
	}

	TraceVerbosef(VerbosityInfo, "Filament: %.3f %v", total, config.Units)
}
