package micromech

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEvalReturnsResult(t *testing.T) {
	res, err := Eval(func() Directional {
		return Directional{1, 2, 3}
	})
	require.NoError(t, err)
	assert.Equal(t, Directional{1, 2, 3}, res)
}

func TestEvalInterceptsPanic(t *testing.T) {
	res, err := Eval(func() Directional {
		panic("bad intermediate value")
	})
	require.Error(t, err)

	var numErr *NumericalError
	require.ErrorAs(t, err, &numErr)
	assert.Equal(t, "bad intermediate value", numErr.Cause)
	assert.Equal(t, Directional{}, res)
}

func TestEvalPassesNonFiniteValuesThrough(t *testing.T) {
	// NaN and ±Inf are ordinary results, never faults.
	res, err := Eval(func() Directional {
		return Directional{math.Inf(1), math.NaN(), 1 / math.Inf(-1)}
	})
	require.NoError(t, err)
	assert.True(t, math.IsInf(res[0], 1))
	assert.True(t, math.IsNaN(res[1]))
}

func TestUnknownModelWrapsSentinel(t *testing.T) {
	err := UnknownModel("thermal conductivity", 7)
	assert.True(t, errors.Is(err, ErrUnknownModel))
	assert.Contains(t, err.Error(), "thermal conductivity model 7")
}
