//
// Copyright (c) 2020 Jason S. McMullan <jason.mcmullan@gmail.com>
//

package pattern

import (
	"math"

	"github.com/sigmaslicer/fdm"
)

// Cylinder is a stack of regular polygons, centered on the origin
type Cylinder struct {
	Height         float64
	Radius         float64
	Sides          int
	LayerThickness float64

	layers int
	ring   fdm.Ring
}

func NewCylinder(height, radius float64, sides int, layerThickness float64) (cyl *Cylinder) {
	cyl = &Cylinder{
		Height:         height,
		Radius:         radius,
		Sides:          sides,
		LayerThickness: layerThickness,
	}

	config := fdm.Config{LayerThickness: layerThickness}
	cyl.layers = config.Layers(height)
	cyl.ring = polygon(radius, sides)

	return
}

// polygon walks sides steps around the circle by repeated rotation of the
// previous point; the last point is not snapped back onto the first.
func polygon(radius float64, sides int) (ring fdm.Ring) {
	if sides <= 0 {
		return
	}

	step := 2.0 * math.Pi / float64(sides)
	cosStep, sinStep := math.Cos(step), math.Sin(step)

	x, y := radius, 0.0
	ring = make(fdm.Ring, 0, sides+1)
	ring = append(ring, fdm.Point2{X: x, Y: y})
	for n := 0; n < sides; n++ {
		x, y = x*cosStep-y*sinStep, y*cosStep+x*sinStep
		ring = append(ring, fdm.Point2{X: x, Y: y})
	}

	return
}

func (cyl *Cylinder) Layers() int {
	return cyl.layers
}

func (cyl *Cylinder) Layer(index int) (layer fdm.Layer) {
	layer.Z = float64(index) * cyl.LayerThickness
	if len(cyl.ring) > 0 {
		layer.Rings = []fdm.Ring{cyl.ring}
	}

	return
}
