package composite

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/compmech/matprops/internal/elastic"
	"github.com/compmech/matprops/internal/micromech"
)

// Effective elastic modules of the reference lamina at 20% fibre content, as
// produced by the Vanin elastic-constants provider.
var refModules = elastic.Modules{
	24.011723329425557,
	6.5683701067350135,
	6.5683701067350135,
	0.06240625050144681,
	0.06240625050144681,
}

func refLamina() *Lamina {
	return NewLamina(0.2,
		Phase{E: 100.0, Nu: 0.3, Alpha: 1e-6},
		Phase{E: 5.0, Nu: 0.2, Alpha: 20e-5},
	)
}

type providerLog struct {
	calls int
	model int
}

// recordingProvider yields m on every request and records how it was
// invoked.
func recordingProvider(m elastic.Modules) (elastic.Func, *providerLog) {
	lg := &providerLog{}
	return func(model int, c, ef, nuf, em, num float64) (elastic.Modules, error) {
		lg.calls++
		lg.model = model
		return m, nil
	}, lg
}

func TestThermalExpansionVanin(t *testing.T) {
	provider, lg := recordingProvider(refModules)

	a, err := refLamina().ThermalExpansion(1, provider)
	require.NoError(t, err)

	assert.Equal(t, 3.303092919697953e-05, a[0])
	assert.Equal(t, 0.0001653038466333737, a[1])
	assert.Equal(t, 0.0001653038466333737, a[2])

	assert.Equal(t, 1, lg.calls)
	assert.Equal(t, elastic.Vanin, lg.model, "provider sub-model is fixed")
}

func TestThermalExpansionTransverseSymmetry(t *testing.T) {
	laminae := []*Lamina{
		refLamina(),
		NewLamina(0.6,
			Phase{E: 230000, Nu: 0.26, Alpha: -0.6e-6},
			Phase{E: 3500, Nu: 0.35, Alpha: 58e-6},
		),
	}
	provider, _ := recordingProvider(refModules)

	for _, l := range laminae {
		a, err := l.ThermalExpansion(1, provider)
		require.NoError(t, err)
		assert.Equal(t, a[1], a[2], "fibre content %g", l.FibreContent)
	}
}

func TestThermalExpansionUnknownModel(t *testing.T) {
	provider, lg := recordingProvider(refModules)
	for _, id := range []int{0, -3, 2, 10} {
		a, err := refLamina().ThermalExpansion(id, provider)
		assert.ErrorIs(t, err, micromech.ErrUnknownModel, "model %d", id)
		assert.Equal(t, micromech.Directional{}, a)
	}
	assert.Zero(t, lg.calls, "no provider call for an unknown model")
}

func TestThermalExpansionProviderErrorPropagates(t *testing.T) {
	errProvider := errors.New("elastic modules unavailable")
	provider := func(model int, c, ef, nuf, em, num float64) (elastic.Modules, error) {
		return elastic.Modules{}, errProvider
	}

	a, err := refLamina().ThermalExpansion(1, provider)
	assert.ErrorIs(t, err, errProvider)
	assert.Equal(t, micromech.Directional{}, a)
}

func TestThermalExpansionProviderPanicIsIntercepted(t *testing.T) {
	// A provider fault must surface as a *NumericalError, never unwind past
	// the public API.
	provider := func(model int, c, ef, nuf, em, num float64) (elastic.Modules, error) {
		panic("elastic modules diverged")
	}

	a, err := refLamina().ThermalExpansion(1, provider)

	var numErr *micromech.NumericalError
	require.ErrorAs(t, err, &numErr)
	assert.Equal(t, "elastic modules diverged", numErr.Cause)
	assert.Equal(t, micromech.Directional{}, a)
}

func TestThermalExpansionProviderUnknownModelPropagates(t *testing.T) {
	// The provider's own unknown-model error surfaces unchanged.
	provider := func(model int, c, ef, nuf, em, num float64) (elastic.Modules, error) {
		return elastic.Modules{}, micromech.UnknownModel("elastic modules", model)
	}

	_, err := refLamina().ThermalExpansion(1, provider)
	assert.ErrorIs(t, err, micromech.ErrUnknownModel)
}
