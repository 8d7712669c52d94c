// Package elastic defines the contract for the elastic-modules provider the
// composite thermal-expansion computation consumes. The provider is an
// external collaborator; its formulas are not part of this module.
package elastic

// Vanin is the provider sub-model the thermal-expansion computation selects,
// independent of the caller's own expansion model number.
const Vanin = 2

// Modules holds the five effective elastic constants of a unidirectional
// composite: the Young's moduli e1, e2, e3 along the principal axes followed
// by the Poisson numerators nu21* and nu31*, such that the effective ratios
// are nu21 = nu21*·e1/e2 and nu31 = nu31*·e1/e3.
type Modules [5]float64

// Func computes the effective elastic modules of a unidirectional composite
// for the given provider model and constituent properties. Implementations
// report unknown models and evaluation faults through the returned error.
type Func func(model int, fibreContent, eFiber, nuFiber, eMatrix, nuMatrix float64) (Modules, error)

// Fixed returns a provider that yields m for every request, ignoring the
// inputs. Used when the five constants were measured or computed outside
// this module.
func Fixed(m Modules) Func {
	return func(int, float64, float64, float64, float64, float64) (Modules, error) {
		return m, nil
	}
}
