//
// Copyright (c) 2020 Jason S. McMullan <jason.mcmullan@gmail.com>
//

package pattern

import (
	"bytes"
	"errors"
	"fmt"
	"math"
	"strings"
	"testing"

	"github.com/sigmaslicer/fdm"
	"github.com/sigmaslicer/fdm/gcode"
)

func TestEmitCylinder(t *testing.T) {
	buf := &bytes.Buffer{}
	task, err := gcode.NewTask(buf, fdm.DefaultConfig())
	if err != nil {
		t.Fatal(err)
	}

	err = EmitCylinder(task, 2.0, 10.0, 10)
	if err != nil {
		t.Fatal(err)
	}
	task.End()

	lines := strings.Split(strings.TrimSuffix(buf.String(), "\n"), "\n")
	if len(lines) != 6+110 {
		t.Fatalf("expected 116 lines, got %v", len(lines))
	}

	motion := lines[6:]
	for layer := 0; layer < 10; layer++ {
		travel := motion[layer*11]
		expected := fmt.Sprintf("G00 X10.00 Y0.00 Z%.2f", float64(layer)*0.2)
		if travel != expected {
			t.Errorf("layer %d: expected %q, got %q", layer, expected, travel)
		}
		for n := 1; n <= 10; n++ {
			if !strings.HasPrefix(motion[layer*11+n], "G01 ") {
				t.Errorf("layer %d: expected extrusion, got %q", layer, motion[layer*11+n])
			}
		}
	}

	// Every edge of a 10-gon of radius 10 is 2*10*sin(pi/10) long
	edge := 0.14 * 20.0 * math.Sin(math.Pi/10)
	expected := fmt.Sprintf(" E%.2f F400.00", edge)
	if !strings.HasSuffix(motion[1], expected) {
		t.Errorf("expected %q suffix, got %q", expected, motion[1])
	}
}

func TestCylinderLayers(t *testing.T) {
	table := map[string]struct {
		Height    float64
		Thickness float64
		Layers    int
	}{
		"exact":    {2.0, 0.2, 10},
		"partial":  {2.1, 0.2, 11},
		"one":      {0.1, 0.2, 1},
		"zero":     {0.0, 0.2, 0},
		"negative": {-1.0, 0.2, 0},
		"thin":     {1.0, 0.1, 10},
		"flat":     {1.0, 0.0, 0},
		"huge":     {1e20, 0.2, 0},
		"infinite": {math.Inf(1), 0.2, 0},
	}

	for key, item := range table {
		cyl := NewCylinder(item.Height, 5.0, 6, item.Thickness)
		if cyl.Layers() != item.Layers {
			t.Errorf("%v: expected %v layers, got %v", key, item.Layers, cyl.Layers())
			continue
		}
		if item.Layers > 0 && !(cyl.Layer(item.Layers-1).Z < item.Height) {
			t.Errorf("%v: last layer at %v is not below %v", key, cyl.Layer(item.Layers-1).Z, item.Height)
		}
	}
}

func TestCylinderRing(t *testing.T) {
	cyl := NewCylinder(1.0, 10.0, 4, 0.5)

	layer := cyl.Layer(1)
	if layer.Z != 0.5 {
		t.Errorf("expected Z 0.5, got %v", layer.Z)
	}
	if len(layer.Rings) != 1 || len(layer.Rings[0]) != 5 {
		t.Fatalf("expected one ring of 5 points, got %+v", layer.Rings)
	}

	expected := []fdm.Point2{{X: 10, Y: 0}, {X: 0, Y: 10}, {X: -10, Y: 0}, {X: 0, Y: -10}, {X: 10, Y: 0}}
	for n, pt := range layer.Rings[0] {
		if math.Abs(pt.X-expected[n].X) > 1e-9 || math.Abs(pt.Y-expected[n].Y) > 1e-9 {
			t.Errorf("point %d: expected %+v, got %+v", n, expected[n], pt)
		}
	}
}

func TestCylinderNoSides(t *testing.T) {
	for _, sides := range []int{0, -3} {
		buf := &bytes.Buffer{}
		task, err := gcode.NewTask(buf, fdm.DefaultConfig())
		if err != nil {
			t.Fatal(err)
		}
		buf.Reset()

		err = EmitCylinder(task, 2.0, 10.0, sides)
		if err != nil {
			t.Errorf("sides %d: expected no error, got %v", sides, err)
		}
		if buf.Len() != 0 {
			t.Errorf("sides %d: expected no motion, got %q", sides, buf.String())
		}
	}
}

type recordEmitter struct {
	moves    int
	extrudes int
	failAt   int
}

var errEmit = errors.New("emit failed")

func (re *recordEmitter) MoveTo(x, y, z float64) error {
	re.moves++
	if re.moves+re.extrudes == re.failAt {
		return errEmit
	}
	return nil
}

func (re *recordEmitter) ExtrudeTo(x, y float64) error {
	re.extrudes++
	if re.moves+re.extrudes == re.failAt {
		return errEmit
	}
	return nil
}

func TestEmitStops(t *testing.T) {
	re := &recordEmitter{failAt: 14}

	err := Emit(re, NewCylinder(2.0, 10.0, 10, 0.2))
	if err != errEmit {
		t.Fatalf("expected errEmit, got %v", err)
	}
	if re.moves != 2 || re.extrudes != 12 {
		t.Errorf("expected 2 moves and 12 extrusions, got %v and %v", re.moves, re.extrudes)
	}
}

type recordProgress struct {
	shown   []float32
	stopped bool
}

func (rp *recordProgress) Show(percent float32) { rp.shown = append(rp.shown, percent) }
func (rp *recordProgress) Stop()                { rp.stopped = true }

func TestEmitProgress(t *testing.T) {
	rp := &recordProgress{}
	fdm.SetProgress(rp)
	defer fdm.SetProgress(nil)

	err := Emit(&recordEmitter{}, NewCylinder(1.0, 10.0, 3, 0.25))
	if err != nil {
		t.Fatal(err)
	}

	expected := []float32{0, 25, 50, 75, 100}
	if len(rp.shown) != len(expected) {
		t.Fatalf("expected %v, got %v", expected, rp.shown)
	}
	for n, pct := range expected {
		if rp.shown[n] != pct {
			t.Errorf("expected [%d] %v, got %v", n, pct, rp.shown[n])
		}
	}
	if !rp.stopped {
		t.Errorf("expected progress to be stopped")
	}
}
