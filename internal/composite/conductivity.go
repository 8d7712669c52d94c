package composite

import (
	"math"

	"github.com/compmech/matprops/internal/micromech"
)

// ConductivityModel enumerates the thermal-conductivity models. Identifiers
// start at 1 and are independent of the expansion model numbering.
type ConductivityModel int

const (
	// ConductivityRuleOfMixtures: volume-weighted arithmetic mean along the
	// fibre, volume-weighted harmonic mean across it.
	ConductivityRuleOfMixtures ConductivityModel = 1

	// ConductivityVanin: tetragonal fibre packing (Vanin, "Micromechanics of
	// composite materials", p. 192). The transverse value is the
	// zeroth-order estimate k2° corrected by the packing series with the
	// fixed exponent n = 6.
	ConductivityVanin ConductivityModel = 2
)

// conductivityModel maps a caller-supplied identifier onto the closed model
// set. There is no fallback model.
func conductivityModel(id int) (ConductivityModel, error) {
	switch id {
	case 1:
		return ConductivityRuleOfMixtures, nil
	case 2:
		return ConductivityVanin, nil
	default:
		return 0, micromech.UnknownModel("thermal conductivity", id)
	}
}

// ThermalConductivity computes the effective conductivities [k1, k2, k3]
// along the principal axes for the selected model.
//
// The secondary and tertiary values are evaluated independently even for
// transversely isotropic models: their equality is a property of the model,
// not an assumption of this code.
func (l *Lamina) ThermalConductivity(model int) (micromech.Directional, error) {
	m, err := conductivityModel(model)
	if err != nil {
		return micromech.Directional{}, err
	}

	c, kf, km := l.FibreContent, l.Fiber.K, l.Matrix.K

	switch m {
	case ConductivityRuleOfMixtures:
		return micromech.Eval(func() micromech.Directional {
			k1 := c*kf + (1-c)*km
			k2 := 1 / (c/kf + (1-c)/km)
			k3 := 1 / (c/kf + (1-c)/km)
			return micromech.Directional{k1, k2, k3}
		})
	default: // ConductivityVanin
		return micromech.Eval(func() micromech.Directional {
			k1 := c*kf + (1-c)*km
			k2zero := km * ((1 + c + (1-c)*kf/km) / (1 - c + (1-c)*kf/km))
			n := 6.0
			k2 := k2zero * (1 + n*n*(n-1)*k2zero/km*
				((1-kf/km)/(1-c+(1+c)*kf/km))*
				((1-kf/km)/(1-c+(1+c)*kf/km))*
				(math.Sin(math.Pi/2)*math.Sin(math.Pi/2))/
				math.Pow(math.Pi/2, n)*
				(c*c-math.Pow(c, 2*n)*
					((1-kf/km)/(1+kf/km))*
					((1-kf/km)/(1+kf/km))))
			k3 := k2zero * (1 + n*n*(n-1)*k2zero/km*
				((1-kf/km)/(1-c+(1+c)*kf/km))*
				((1-kf/km)/(1-c+(1+c)*kf/km))*
				(math.Sin(math.Pi/2)*math.Sin(math.Pi/2))/
				math.Pow(math.Pi/2, n)*
				(c*c-math.Pow(c, 2*n)*
					((1-kf/km)/(1+kf/km))*
					((1-kf/km)/(1+kf/km))))
			return micromech.Directional{k1, k2, k3}
		})
	}
}
