// Package composite implements homogenized thermal properties of a
// unidirectional fibre-reinforced lamina, computed from constituent
// properties through published closed-form micromechanical models selected
// by number.
package composite

// Phase holds the constituent-material constants the models consume. Only
// the fields a given computation reads need to be meaningful.
type Phase struct {
	E     float64 // Young's modulus
	Nu    float64 // Poisson's ratio
	Alpha float64 // coefficient of thermal expansion
	K     float64 // thermal conductivity
}

// Lamina describes a unidirectional composite by its fibre volume fraction
// and the two constituent phases.
//
// No range validation is performed: values outside the physical domain
// (e.g. FibreContent > 1) are computed through and may yield physically
// meaningless but numerically well-defined results.
type Lamina struct {
	FibreContent float64 // fibre volume fraction, 0 = pure matrix, 1 = pure fibre
	Fiber        Phase
	Matrix       Phase
}

// NewLamina creates a lamina from the fibre volume fraction and the two
// constituent phases.
func NewLamina(fibreContent float64, fiber, matrix Phase) *Lamina {
	return &Lamina{
		FibreContent: fibreContent,
		Fiber:        fiber,
		Matrix:       matrix,
	}
}
