// Package micromech holds the building blocks shared by the closed-form
// micromechanical models: the directional result type, the two error kinds,
// and the guarded evaluation boundary around formula code.
package micromech

// Directional is an orthotropic property along the three principal material
// axes, in the fixed order primary (fibre direction), secondary, tertiary.
// For transversely isotropic models the secondary and tertiary components
// carry the same value.
type Directional [3]float64
