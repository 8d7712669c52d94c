// Package honeycomb implements homogenized thermal properties of honeycomb
// cores, computed from cell geometry and the wall-material properties.
package honeycomb

import (
	"math"

	"github.com/compmech/matprops/internal/micromech"
)

// ExpansionModel enumerates the honeycomb thermal-expansion models.
type ExpansionModel int

const (
	// ExpansionVanin: Vanin's model. The in-plane secondary coefficient is a
	// geometry-weighted correction over the cell-side ratio and the cosine
	// of the cell angle; the other two directions follow the wall material.
	ExpansionVanin ExpansionModel = 1
)

func expansionModel(id int) (ExpansionModel, error) {
	switch id {
	case 1:
		return ExpansionVanin, nil
	default:
		return 0, micromech.UnknownModel("honeycomb thermal expansion", id)
	}
}

// Core describes a honeycomb core. WallThickness is accepted for future
// cell-wall models and does not enter the Vanin formula.
type Core struct {
	LCell         float64 // l cell side size
	HCell         float64 // h cell side size
	WallThickness float64
	Angle         float64 // cell angle, radians
	Alpha         float64 // wall-material thermal-expansion coefficient
}

// ThermalExpansion computes the effective thermal-expansion coefficients
// [alpha1, alpha2, alpha3] along the principal axes for the selected model.
func (c *Core) ThermalExpansion(model int) (micromech.Directional, error) {
	m, err := expansionModel(model)
	if err != nil {
		return micromech.Directional{}, err
	}

	switch m {
	default: // ExpansionVanin
		return micromech.Eval(func() micromech.Directional {
			alpha1 := c.Alpha
			alpha2 := (c.HCell/c.LCell*c.Alpha - math.Cos(c.Angle)*c.Alpha) /
				(c.HCell/c.LCell - math.Cos(c.Angle))
			alpha3 := c.Alpha
			return micromech.Directional{alpha1, alpha2, alpha3}
		})
	}
}
