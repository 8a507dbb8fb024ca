//
// Copyright (c) 2020 Jason S. McMullan <jason.mcmullan@gmail.com>
//

// Package gcode emits fused-deposition G-code for a single print session
package gcode

import (
	"fmt"
	"io"
	"math"
	"os"

	"github.com/sigmaslicer/fdm"
)

// Task is one open G-code output stream and the print head state behind it
type Task struct {
	config   fdm.Config
	position [3]float64 // Last commanded X, Y, Z

	path   string
	writer io.Writer
	closer io.Closer // Only set when the task opened the sink itself
	closed bool
}

// Begin creates the file at outputPath and writes the preamble
func Begin(outputPath string, config fdm.Config) (task *Task, err error) {
	err = config.Validate()
	if err != nil {
		return
	}

	file, err := os.Create(outputPath)
	if err != nil {
		err = &fdm.IOError{Op: "create", Path: outputPath, Err: err}
		return
	}

	task = &Task{
		config: config,
		path:   outputPath,
		writer: file,
		closer: file,
	}

	err = task.preamble()
	if err != nil {
		file.Close()
		task = nil
		return
	}

	return
}

// NewTask writes the preamble to writer. The writer is not closed by End.
func NewTask(writer io.Writer, config fdm.Config) (task *Task, err error) {
	err = config.Validate()
	if err != nil {
		return
	}

	task = &Task{
		config: config,
		writer: writer,
	}

	err = task.preamble()
	if err != nil {
		task = nil
		return
	}

	return
}

// End releases the output sink
func (task *Task) End() (err error) {
	if task.closed {
		err = fdm.ErrTaskClosed
		return
	}

	task.closed = true

	if task.closer != nil {
		err = task.closer.Close()
		if err != nil {
			err = &fdm.IOError{Op: "close", Path: task.path, Err: err}
		}
	}

	return
}

// Config is the session configuration
func (task *Task) Config() fdm.Config {
	return task.config
}

// Position is the last commanded head position
func (task *Task) Position() (x, y, z float64) {
	x, y, z = task.position[0], task.position[1], task.position[2]
	return
}

func (task *Task) printf(format string, args ...interface{}) (err error) {
	if task.closed {
		err = fdm.ErrTaskClosed
		return
	}

	_, err = fmt.Fprintf(task.writer, format, args...)
	if err != nil {
		err = &fdm.IOError{Op: "write", Path: task.path, Err: err}
	}

	return
}

func (task *Task) preamble() (err error) {
	config := &task.config

	switch config.Units {
	case fdm.UnitsInch:
		err = task.printf("G20\n")
	default:
		err = task.printf("G21\n")
	}
	if err != nil {
		return
	}

	// XY plane, absolute positioning
	err = task.printf("G17\n")
	if err != nil {
		return
	}
	err = task.printf("G90\n")
	if err != nil {
		return
	}

	if config.FanSpeed > 0 {
		err = task.printf("M106 S%d\n", config.FanSpeed)
	} else {
		err = task.printf("M107\n")
	}
	if err != nil {
		return
	}

	err = task.printf("M109 S%d\n", config.ExtruderTemp)
	if err != nil {
		return
	}
	err = task.printf("M190 S%d\n", config.BedTemp)
	if err != nil {
		return
	}

	return
}

// MoveTo travels to (x, y, z) without extruding
func (task *Task) MoveTo(x, y, z float64) (err error) {
	if task.closed {
		err = fdm.ErrTaskClosed
		return
	}

	prec := task.config.DecimalPrecision
	err = task.printf("G00 X%.*f Y%.*f Z%.*f\n", prec, x, prec, y, prec, z)
	if err != nil {
		return
	}

	task.position = [3]float64{x, y, z}

	return
}

// ExtrudeTo moves in the XY plane, extruding in proportion to the distance
// traveled. Z is left at its last commanded value and not re-emitted.
func (task *Task) ExtrudeTo(x, y float64) (err error) {
	if task.closed {
		err = fdm.ErrTaskClosed
		return
	}

	distance := math.Hypot(x-task.position[0], y-task.position[1])
	extrude := task.config.ExtrusionRate * distance

	prec := task.config.DecimalPrecision
	err = task.printf("G01 X%.*f Y%.*f E%.*f F%.*f\n",
		prec, x,
		prec, y,
		prec, extrude,
		prec, task.config.FeedRate)
	if err != nil {
		return
	}

	task.position[0] = x
	task.position[1] = y

	return
}
