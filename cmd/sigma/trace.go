//
// Copyright (c) 2020 Jason S. McMullan <jason.mcmullan@gmail.com>
//

package main

import (
	"fmt"
	"io"
	"os"
)

type Verbosity int

const (
	VerbosityWarning = Verbosity(iota)
	VerbosityNotice
	VerbosityInfo
	VerbosityDebug
)

var (
	verbosity   = VerbosityWarning
	traceWriter = io.Writer(os.Stderr)
)

func SetVerbosity(level Verbosity) {
	verbosity = level
}

// TraceVerbosef prints a line to stderr when level is enabled
func TraceVerbosef(level Verbosity, format string, args ...interface{}) {
	if level > verbosity {
		return
	}

	fmt.Fprintf(traceWriter, format+"\n", args...)
}

// traceProgress reports emission progress at debug verbosity
type traceProgress struct {
	last int
}

func (tp *traceProgress) Show(percent float32) {
	step := int(percent) / 10
	if step == tp.last && percent < 100.0 {
		return
	}
	tp.last = step
	TraceVerbosef(VerbosityDebug, "  %3.0f%%", percent)
}

func (tp *traceProgress) Stop() {
	tp.last = -1
}
