//
// Copyright (c) 2020 Jason S. McMullan <jason.mcmullan@gmail.com>
//

package fdm

import (
	"math"
)

type Point2 struct {
	X, Y float64
}

// Ring is a polyline: a travel move to the first point, then an
// extrusion move to each of the others.
type Ring []Point2

// Length of the extruded portion of the ring
func (ring Ring) Length() (length float64) {
	for n := 1; n < len(ring); n++ {
		length += math.Hypot(ring[n].X-ring[n-1].X, ring[n].Y-ring[n-1].Y)
	}

	return
}

// Everything needed to print a single layer
type Layer struct {
	Z     float64 // Z height in units
	Rings []Ring
}

// Toolpath is a source of layers, bottom up
type Toolpath interface {
	Layers() int
	Layer(index int) (layer Layer)
}

// ToolpathBounds is the XY box around every ring point, and the Z range of
// the layers. ok is false when the toolpath has no points.
func ToolpathBounds(toolpath Toolpath) (bounds Bounds, ok bool) {
	for n := 0; n < toolpath.Layers(); n++ {
		layer := toolpath.Layer(n)
		for _, ring := range layer.Rings {
			for _, pt := range ring {
				v := Vec3{pt.X, pt.Y, layer.Z}
				if !ok {
					bounds.Min = v
					bounds.Max = v
					ok = true
					continue
				}
				bounds.Min = bounds.Min.min(v)
				bounds.Max = bounds.Max.max(v)
			}
		}
	}

	return
}
