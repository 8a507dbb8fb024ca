//
// Copyright (c) 2020 Jason S. McMullan <jason.mcmullan@gmail.com>
//

package main

import (
	"fmt"
	"image"
	"strings"

	"github.com/spf13/pflag"

	"github.com/sigmaslicer/fdm"
	"github.com/sigmaslicer/fdm/gcode"
	"github.com/sigmaslicer/fdm/pattern"
	"github.com/sigmaslicer/fdm/preview"
)

const (
	defaultCachedLayers = 64
	defaultOutput       = "output.gcode"
	defaultMachine      = "generic"
	maxSides            = 1 << 16
)

type SliceCommand struct {
	*pflag.FlagSet

	Input   string
	MeshOut string
	Output  string
	Machine string
	Preview string
	Scale   float64

	Units         string
	Precision     int
	FanSpeed      int
	BedTemp       int
	ExtruderTemp  int
	LayerHeight   float64
	FeedRate      float64
	ExtrusionRate float64

	Height float64
	Radius float64
	Sides  int

	ListMachines bool
	Verbose      int
}

func NewSliceCommand() (cmd *SliceCommand) {
	cmd = &SliceCommand{
		FlagSet: pflag.NewFlagSet("sigma", pflag.ContinueOnError),
	}

	cmd.StringVar(&cmd.Input, "stl", "", "Input mesh (binary STL)")
	cmd.StringVar(&cmd.MeshOut, "stl-out", "", "Re-encode the loaded mesh to this file (requires --stl)")
	cmd.StringVar(&cmd.Output, "gcode", defaultOutput, "Output G-code file")
	cmd.StringVarP(&cmd.Machine, "machine", "m", defaultMachine, "Machine preset (see --list-machines)")
	cmd.StringVar(&cmd.Preview, "preview", "", "Write a top-down PNG preview of the toolpath")
	cmd.Float64Var(&cmd.Scale, "preview-scale", 4.0, "Preview pixels per unit")

	cmd.StringVar(&cmd.Units, "units", "", "Units, mm or inch (overrides machine)")
	cmd.IntVar(&cmd.Precision, "precision", 0, "Decimal digits of emitted values (overrides machine)")
	cmd.IntVar(&cmd.FanSpeed, "fan", 0, "Fan speed 0..255, 0 is off (overrides machine)")
	cmd.IntVar(&cmd.BedTemp, "bed-temp", 0, "Bed temperature, C (overrides machine)")
	cmd.IntVar(&cmd.ExtruderTemp, "extruder-temp", 0, "Extruder temperature, C (overrides machine)")
	cmd.Float64Var(&cmd.LayerHeight, "layer-height", 0.0, "Layer thickness (overrides machine)")
	cmd.Float64Var(&cmd.FeedRate, "feed-rate", 0.0, "Feed rate, units/min (overrides machine)")
	cmd.Float64Var(&cmd.ExtrusionRate, "extrusion-rate", 0.0, "Filament per unit traveled (overrides machine)")

	cmd.Float64Var(&cmd.Height, "height", 2.0, "Test cylinder height")
	cmd.Float64Var(&cmd.Radius, "radius", 10.0, "Test cylinder radius")
	cmd.IntVar(&cmd.Sides, "sides", 10, "Test cylinder polygon sides")

	cmd.BoolVarP(&cmd.ListMachines, "list-machines", "l", false, "List known machines and exit")
	cmd.CountVarP(&cmd.Verbose, "verbose", "v", "Increase verbosity")

	cmd.SetInterspersed(false)

	return
}

// Config is the machine preset with any changed flags applied
func (cmd *SliceCommand) Config() (config fdm.Config, machine *fdm.Machine, err error) {
	machine, ok := fdm.Machines[cmd.Machine]
	if !ok {
		err = fmt.Errorf("%s: unknown machine (known: %s)", cmd.Machine, strings.Join(fdm.MachineNames(), ", "))
		return
	}

	config = machine.Config

	if cmd.Changed("units") {
		config.Units, err = fdm.ParseUnits(cmd.Units)
		if err != nil {
			return
		}
		TraceVerbosef(VerbosityNotice, "  Setting units to %v", config.Units)
	}

	if cmd.Changed("precision") {
		TraceVerbosef(VerbosityNotice, "  Setting decimal precision to %v", cmd.Precision)
		config.DecimalPrecision = cmd.Precision
	}

	if cmd.Changed("fan") {
		TraceVerbosef(VerbosityNotice, "  Setting fan speed to %v", cmd.FanSpeed)
		config.FanSpeed = cmd.FanSpeed
	}

	if cmd.Changed("bed-temp") {
		TraceVerbosef(VerbosityNotice, "  Setting bed temperature to %v C", cmd.BedTemp)
		config.BedTemp = cmd.BedTemp
	}

	if cmd.Changed("extruder-temp") {
		TraceVerbosef(VerbosityNotice, "  Setting extruder temperature to %v C", cmd.ExtruderTemp)
		config.ExtruderTemp = cmd.ExtruderTemp
	}

	if cmd.Changed("layer-height") {
		TraceVerbosef(VerbosityNotice, "  Setting layer height to %v %v", cmd.LayerHeight, config.Units)
		config.LayerThickness = cmd.LayerHeight
	}

	if cmd.Changed("feed-rate") {
		TraceVerbosef(VerbosityNotice, "  Setting feed rate to %v %v/min", cmd.FeedRate, config.Units)
		config.FeedRate = cmd.FeedRate
	}

	if cmd.Changed("extrusion-rate") {
		TraceVerbosef(VerbosityNotice, "  Setting extrusion rate to %v", cmd.ExtrusionRate)
		config.ExtrusionRate = cmd.ExtrusionRate
	}

	err = config.Validate()
	if err != nil {
		return
	}

	return
}

// Run loads the optional mesh, then emits the test cylinder. Nothing is
// written until the configuration and input have been accepted.
func (cmd *SliceCommand) Run() (err error) {
	config, machine, err := cmd.Config()
	if err != nil {
		return
	}

	if len(cmd.Output) == 0 {
		err = fmt.Errorf("--gcode: output file name is empty")
		return
	}

	if len(cmd.Preview) > 0 && !(cmd.Scale > 0) {
		err = fmt.Errorf("--preview-scale: %v must be positive", cmd.Scale)
		return
	}

	if cmd.Sides > maxSides {
		err = fmt.Errorf("--sides: %v is more than %v", cmd.Sides, maxSides)
		return
	}

	err = config.CheckHeight(cmd.Height)
	if err != nil {
		return
	}

	var meshOut *fdm.Format
	if len(cmd.MeshOut) > 0 {
		if len(cmd.Input) == 0 {
			err = fmt.Errorf("--stl-out: requires --stl")
			return
		}

		meshOut, err = fdm.NewFormat(cmd.MeshOut)
		if err != nil {
			return
		}
	}

	if len(cmd.Input) > 0 {
		var format *fdm.Format
		format, err = fdm.NewFormat(cmd.Input)
		if err != nil {
			return
		}

		var mesh *fdm.Mesh
		mesh, err = format.Mesh()
		if err != nil {
			return
		}
		defer mesh.Release()

		traceMesh(mesh, machine)

		if meshOut != nil {
			TraceVerbosef(VerbosityNotice, "Mesh output: %v", meshOut.Filename)
			err = meshOut.SetMesh(mesh)
			if err != nil {
				return
			}
		}
	}

	cyl := pattern.NewCylinder(cmd.Height, cmd.Radius, cmd.Sides, config.LayerThickness)
	if !machine.Fits(fdm.Vec3{X: cmd.Radius * 2, Y: cmd.Radius * 2, Z: cmd.Height}) {
		TraceVerbosef(VerbosityWarning, "Warning: test cylinder does not fit the %v %v build volume", machine.Vendor, machine.Model)
	}

	toolpath := fdm.NewCachedToolpath(cyl, defaultCachedLayers)

	// Render first, so a preview that cannot be drawn leaves no G-code behind
	var img *image.RGBA
	if len(cmd.Preview) > 0 {
		img, err = preview.Render(toolpath, cmd.Scale)
		if err != nil {
			return
		}
	}

	TraceVerbosef(VerbosityNotice, "Output: %v (%v layers)", cmd.Output, toolpath.Layers())

	task, err := gcode.Begin(cmd.Output, config)
	if err != nil {
		return
	}
	defer func() {
		cerr := task.End()
		if err == nil {
			err = cerr
		}
	}()

	err = pattern.Emit(task, toolpath)
	if err != nil {
		return
	}

	traceToolpath(toolpath, config)

	if img != nil {
		TraceVerbosef(VerbosityNotice, "Preview: %v", cmd.Preview)

		err = preview.WritePNG(cmd.Preview, img)
		if err != nil {
			return
		}
	}

	return
}
