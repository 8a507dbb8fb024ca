//
// Copyright (c) 2020 Jason S. McMullan <jason.mcmullan@gmail.com>
//

// Package preview draws a top-down picture of a toolpath
package preview

import (
	"errors"
	"image"
	"image/draw"
	"image/png"
	"math"
	"os"

	"golang.org/x/image/colornames"
	"golang.org/x/image/vector"

	"github.com/sigmaslicer/fdm"
)

const (
	defaultMargin = 8   // pixels
	lineWidth     = 1.5 // pixels
	maxDimension  = 4096
)

// Render strokes every extrusion segment of the toolpath, looking down
// the Z axis. Upper layers are drawn darker.
func Render(toolpath fdm.Toolpath, pixelsPerUnit float64) (img *image.RGBA, err error) {
	if !(pixelsPerUnit > 0) {
		err = errors.New("preview: scale must be positive")
		return
	}

	bounds, ok := fdm.ToolpathBounds(toolpath)
	if !ok {
		err = errors.New("preview: toolpath is empty")
		return
	}

	size := bounds.Size()
	pixelsX := math.Ceil(size.X * pixelsPerUnit)
	pixelsY := math.Ceil(size.Y * pixelsPerUnit)
	if !(pixelsX <= maxDimension-defaultMargin*2) || !(pixelsY <= maxDimension-defaultMargin*2) {
		err = errors.New("preview: image would be too large, reduce the scale")
		return
	}

	width := int(pixelsX) + defaultMargin*2
	height := int(pixelsY) + defaultMargin*2

	img = image.NewRGBA(image.Rect(0, 0, width, height))
	draw.Draw(img, img.Bounds(), image.NewUniform(colornames.White), image.Point{}, draw.Src)

	// Image Y grows downward, toolpath Y grows upward
	toPixel := func(pt fdm.Point2) (float32, float32) {
		x := (pt.X-bounds.Min.X)*pixelsPerUnit + defaultMargin
		y := (bounds.Max.Y-pt.Y)*pixelsPerUnit + defaultMargin
		return float32(x), float32(y)
	}

	layers := toolpath.Layers()
	for n := 0; n < layers; n++ {
		layer := toolpath.Layer(n)

		ink := colornames.Lightsteelblue
		if n == layers-1 {
			ink = colornames.Steelblue
		}
		src := image.NewUniform(ink)

		raster := vector.NewRasterizer(width, height)
		raster.DrawOp = draw.Over
		for _, ring := range layer.Rings {
			for i := 1; i < len(ring); i++ {
				ax, ay := toPixel(ring[i-1])
				bx, by := toPixel(ring[i])
				stroke(raster, ax, ay, bx, by)
			}
		}
		raster.Draw(img, img.Bounds(), src, image.Point{})
	}

	return
}

// stroke adds a segment as a closed quad of lineWidth
func stroke(raster *vector.Rasterizer, ax, ay, bx, by float32) {
	dx, dy := bx-ax, by-ay
	length := float32(math.Hypot(float64(dx), float64(dy)))
	if length == 0 {
		return
	}

	nx, ny := -dy/length*lineWidth/2, dx/length*lineWidth/2

	raster.MoveTo(ax+nx, ay+ny)
	raster.LineTo(bx+nx, by+ny)
	raster.LineTo(bx-nx, by-ny)
	raster.LineTo(ax-nx, ay-ny)
	raster.ClosePath()
}

// WritePNG saves the image at path
func WritePNG(path string, img image.Image) (err error) {
	writer, err := os.Create(path)
	if err != nil {
		err = &fdm.IOError{Op: "create", Path: path, Err: err}
		return
	}
	defer func() {
		cerr := writer.Close()
		if err == nil && cerr != nil {
			err = &fdm.IOError{Op: "close", Path: path, Err: cerr}
		}
	}()

	err = png.Encode(writer, img)
	if err != nil {
		err = &fdm.IOError{Op: "write", Path: path, Err: err}
		return
	}

	return
}
