package composite

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/compmech/matprops/internal/micromech"
)

func TestThermalConductivityVanin(t *testing.T) {
	l := NewLamina(0.2, Phase{K: 100.0}, Phase{K: 1.0})

	k, err := l.ThermalConductivity(2)
	require.NoError(t, err)

	assert.Equal(t, 20.8, k[0])
	assert.InEpsilon(t, 1.3300670235932428, k[1], 1e-12)
	assert.Equal(t, k[1], k[2], "Vanin model is transversely isotropic")
}

func TestThermalConductivityRuleOfMixturesBounds(t *testing.T) {
	fiber := Phase{K: 100.0}
	matrix := Phase{K: 1.0}

	// Pure matrix and pure fibre reduce to the constituent value in every
	// direction.
	k, err := NewLamina(0, fiber, matrix).ThermalConductivity(1)
	require.NoError(t, err)
	for i := range k {
		assert.InDelta(t, matrix.K, k[i], 1e-12, "direction %d", i+1)
	}

	k, err = NewLamina(1, fiber, matrix).ThermalConductivity(1)
	require.NoError(t, err)
	for i := range k {
		assert.InDelta(t, fiber.K, k[i], 1e-12, "direction %d", i+1)
	}
}

func TestThermalConductivityTransverseSymmetry(t *testing.T) {
	contents := []float64{0.05, 0.2, 0.5, 0.75, 0.95}
	for _, model := range []int{1, 2} {
		for _, c := range contents {
			k, err := NewLamina(c, Phase{K: 35.0}, Phase{K: 0.7}).ThermalConductivity(model)
			require.NoError(t, err)
			assert.Equal(t, k[1], k[2], "model %d, content %g", model, c)
		}
	}
}

func TestThermalConductivityUnknownModel(t *testing.T) {
	l := NewLamina(0.2, Phase{K: 100.0}, Phase{K: 1.0})
	for _, id := range []int{0, -1, 3, 42} {
		k, err := l.ThermalConductivity(id)
		assert.ErrorIs(t, err, micromech.ErrUnknownModel, "model %d", id)
		assert.Equal(t, micromech.Directional{}, k)
	}
}

func TestThermalConductivityZeroMatrixConductivity(t *testing.T) {
	// Division by zero in the harmonic-mean term is an ordinary
	// floating-point result, not a fault.
	l := NewLamina(0.2, Phase{K: 100.0}, Phase{K: 0.0})

	k, err := l.ThermalConductivity(1)
	require.NoError(t, err)
	assert.Equal(t, 20.0, k[0])
	assert.Equal(t, 0.0, k[1]) // 1/(+Inf)
	assert.Equal(t, 0.0, k[2])
}
