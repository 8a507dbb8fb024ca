//
// Copyright (c) 2020 Jason S. McMullan <jason.mcmullan@gmail.com>
//

package fdm

import (
	"fmt"
	"math"
	"strings"

	"github.com/pkg/errors"
)

// Units selects the length unit of every emitted coordinate
type Units uint

const (
	UnitsMillimeter = Units(iota)
	UnitsInch
)

func (u Units) String() string {
	switch u {
	case UnitsMillimeter:
		return "mm"
	case UnitsInch:
		return "inch"
	default:
		return fmt.Sprintf("Units(%d)", uint(u))
	}
}

// ParseUnits accepts "mm", "millimeter", "in" or "inch" (any case)
func ParseUnits(text string) (units Units, err error) {
	switch strings.ToLower(text) {
	case "mm", "millimeter", "millimeters":
		units = UnitsMillimeter
	case "in", "inch", "inches":
		units = UnitsInch
	default:
		err = fmt.Errorf("%s: unknown units (expected mm or inch)", text)
	}

	return
}

// Config is the fixed configuration of a single print session
type Config struct {
	Units            Units
	DecimalPrecision int     // Digits after the decimal point
	FanSpeed         int     // 0..255, <= 0 is off
	BedTemp          int     // Celsius
	ExtruderTemp     int     // Celsius
	LayerThickness   float64 // units
	ExtrusionWidth   float64 // units, nominal
	FeedRate         float64 // units/min
	ExtrusionRate    float64 // Filament length per unit traveled
}

// DefaultConfig is a PLA-ish millimeter session
func DefaultConfig() (config Config) {
	config = Config{
		Units:            UnitsMillimeter,
		DecimalPrecision: 2,
		FanSpeed:         0,
		BedTemp:          60,
		ExtruderTemp:     200,
		LayerThickness:   0.2,
		ExtrusionWidth:   0.4,
		FeedRate:         400.0,
		ExtrusionRate:    0.14,
	}

	return
}

// Validate checks the values the emitter depends on
func (config *Config) Validate() (err error) {
	switch config.Units {
	case UnitsMillimeter, UnitsInch:
	default:
		err = errors.Errorf("config: invalid units %v", config.Units)
		return
	}

	if config.DecimalPrecision < 0 {
		err = errors.Errorf("config: decimal precision %d is negative", config.DecimalPrecision)
		return
	}

	if !(config.LayerThickness > 0) {
		err = errors.Errorf("config: layer thickness %v must be positive", config.LayerThickness)
		return
	}

	return
}

// MaxLayers bounds the layer count of a single print
const MaxLayers = math.MaxInt32

// Layers returns how many layers start strictly below height. Stacks
// taller than MaxLayers have no layers; see CheckHeight.
func (config *Config) Layers(height float64) (count int) {
	if !(config.LayerThickness > 0) || !(height > 0) {
		return
	}

	estimate := math.Ceil(height / config.LayerThickness)
	if !(estimate <= MaxLayers) {
		return
	}

	// Estimate, then settle on the exact boundary using the same
	// product LayerZ uses.
	count = int(estimate)
	for count > 0 && config.LayerZ(count-1) >= height {
		count--
	}
	for config.LayerZ(count) < height {
		count++
	}

	return
}

// LayerZ is the height of the bottom of a layer
func (config *Config) LayerZ(index int) float64 {
	return float64(index) * config.LayerThickness
}

// CheckHeight rejects heights needing more than MaxLayers layers
func (config *Config) CheckHeight(height float64) (err error) {
	if height > 0 && !(height/config.LayerThickness <= MaxLayers) {
		err = errors.Errorf("config: height %v needs more than %d layers of %v", height, MaxLayers, config.LayerThickness)
		return
	}

	return
}
