package composite

import (
	"github.com/compmech/matprops/internal/elastic"
	"github.com/compmech/matprops/internal/micromech"
)

// ExpansionModel enumerates the thermal-expansion models for the
// unidirectional composite. Numbering is independent of ConductivityModel.
type ExpansionModel int

const (
	// ExpansionVanin: Vanin's model. The longitudinal coefficient blends the
	// constituent expansions with an elastic-mismatch correction; the
	// transverse coefficients extend it through the effective Poisson
	// ratios derived from the elastic modules.
	ExpansionVanin ExpansionModel = 1
)

func expansionModel(id int) (ExpansionModel, error) {
	switch id {
	case 1:
		return ExpansionVanin, nil
	default:
		return 0, micromech.UnknownModel("thermal expansion", id)
	}
}

// planeStrain holds the guarded pre-step values shared by the expansion
// formulas: constituent shear moduli and Kolosov constants chi = 3 - 4nu.
type planeStrain struct {
	gFiber    float64
	gMatrix   float64
	chiFiber  float64
	chiMatrix float64
}

// providerCall carries the provider outcome across the evaluation guard, so
// a panicking provider is intercepted while its returned error passes
// through unchanged.
type providerCall struct {
	modules elastic.Modules
	err     error
}

// ThermalExpansion computes the effective thermal-expansion coefficients
// [alpha1, alpha2, alpha3] along the principal axes for the selected model.
//
// The five elastic modules are obtained from the provider with the
// sub-model fixed at elastic.Vanin, regardless of this function's own model
// number. Provider errors propagate unchanged.
func (l *Lamina) ThermalExpansion(model int, modules elastic.Func) (micromech.Directional, error) {
	m, err := expansionModel(model)
	if err != nil {
		return micromech.Directional{}, err
	}

	c := l.FibreContent
	ef, nuf, af := l.Fiber.E, l.Fiber.Nu, l.Fiber.Alpha
	em, num, am := l.Matrix.E, l.Matrix.Nu, l.Matrix.Alpha

	ps, err := micromech.Eval(func() planeStrain {
		return planeStrain{
			gFiber:    ef / (2 * (1 + nuf)),
			gMatrix:   em / (2 * (1 + num)),
			chiFiber:  3 - 4*nuf,
			chiMatrix: 3 - 4*num,
		}
	})
	if err != nil {
		return micromech.Directional{}, err
	}

	call, err := micromech.Eval(func() providerCall {
		m, err := modules(elastic.Vanin, c, ef, nuf, em, num)
		return providerCall{modules: m, err: err}
	})
	if err != nil {
		return micromech.Directional{}, err
	}
	if call.err != nil {
		return micromech.Directional{}, call.err
	}
	a := call.modules

	switch m {
	default: // ExpansionVanin
		return micromech.Eval(func() micromech.Directional {
			nu21 := a[3] * a[0] / a[1]
			nu31 := a[4] * a[0] / a[2]
			alpha1 := am - (am-af)*c/a[0]*
				(ef+(8*ps.gMatrix*(nuf-num)*(1-c)*(1+nuf))/
					(2-c+c*ps.chiMatrix+(1-c)*(ps.chiFiber+1)*ps.gMatrix/ps.gFiber))
			alpha2 := am + (am-alpha1)*nu21 -
				(am-af)*(1+nuf)*(num-nu21)/(num-nuf)
			alpha3 := am + (am-alpha1)*nu31 -
				(am-af)*(1+nuf)*(num-nu31)/(num-nuf)
			return micromech.Directional{alpha1, alpha2, alpha3}
		})
	}
}
