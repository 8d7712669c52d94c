// Package matlib loads named constituent-material presets from an INI
// library, so callers can reference a fiber or matrix by name instead of
// supplying every constant.
package matlib

import (
	"fmt"

	"gopkg.in/ini.v1"
)

// Material is one preset: the constituent constants the property models
// consume. Missing keys default to zero; the models do not validate ranges.
type Material struct {
	E     float64 // Young's modulus
	Nu    float64 // Poisson's ratio
	Alpha float64 // thermal-expansion coefficient
	K     float64 // thermal conductivity
}

// Library is a set of material presets keyed by section name.
type Library map[string]Material

// Load reads an INI material library. Each section defines one material:
//
//	[carbon-t300]
//	E     = 230000
//	Nu    = 0.26
//	Alpha = -0.6e-6
//	K     = 10.5
func Load(path string) (Library, error) {
	file, err := ini.Load(path)
	if err != nil {
		return nil, fmt.Errorf("load material library: %w", err)
	}

	lib := Library{}
	for _, s := range file.Sections() {
		if s.Name() == ini.DefaultSection {
			continue
		}
		lib[s.Name()] = Material{
			E:     s.Key("E").MustFloat64(0),
			Nu:    s.Key("Nu").MustFloat64(0),
			Alpha: s.Key("Alpha").MustFloat64(0),
			K:     s.Key("K").MustFloat64(0),
		}
	}
	return lib, nil
}

// Get returns the named preset, or an error when the library has no section
// with that name.
func (l Library) Get(name string) (Material, error) {
	m, ok := l[name]
	if !ok {
		return Material{}, fmt.Errorf("material %q not found in library", name)
	}
	return m, nil
}
