//
// Copyright (c) 2020 Jason S. McMullan <jason.mcmullan@gmail.com>
//

// Package stl handles input and output of binary STL meshes
package stl

import (
	"github.com/sigmaslicer/fdm"
)

func init() {
	newFormatter := func(suffix string) fdm.MeshFormatter { return NewFormatter(suffix) }

	fdm.RegisterFormatter(".stl", newFormatter)
}
