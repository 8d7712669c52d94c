package elastic

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFixedIgnoresInputs(t *testing.T) {
	m := Modules{24.0, 6.5, 6.5, 0.06, 0.06}
	f := Fixed(m)

	got, err := f(Vanin, 0.2, 100, 0.3, 5, 0.2)
	require.NoError(t, err)
	assert.Equal(t, m, got)

	got, err = f(99, -1, 0, 0, 0, 0)
	require.NoError(t, err)
	assert.Equal(t, m, got)
}
