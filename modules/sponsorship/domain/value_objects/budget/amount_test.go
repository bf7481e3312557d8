package budget_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ghazalrb98/sep/modules/sponsorship/domain/value_objects/budget"
)

func TestNewAmount(t *testing.T) {
	t.Run("Positive", func(t *testing.T) {
		a, err := budget.NewAmount(500)
		require.NoError(t, err)
		assert.True(t, a.IsSet())
		assert.Equal(t, int64(500), a.Value())
	})

	t.Run("Zero_Is_A_Real_Budget", func(t *testing.T) {
		a, err := budget.NewAmount(0)
		require.NoError(t, err)
		assert.True(t, a.IsSet())
		assert.Equal(t, int64(0), a.Value())
	})

	t.Run("Negative", func(t *testing.T) {
		_, err := budget.NewAmount(-1)
		assert.ErrorIs(t, err, budget.ErrNegativeAmount)
	})
}

func TestFromWire_ZeroMeansAbsent(t *testing.T) {
	a, err := budget.FromWire(0)
	require.NoError(t, err)
	assert.False(t, a.IsSet())

	a, err = budget.FromWire(300)
	require.NoError(t, err)
	assert.True(t, a.IsSet())
	assert.Equal(t, int64(300), a.Wire())
}

func TestAmount_Format(t *testing.T) {
	cases := []struct {
		kronor int64
		want   string
	}{
		{500, "500 kr"},
		{1000, "1 000 kr"},
		{12345, "12 345 kr"},
	}
	for _, tc := range cases {
		a, err := budget.NewAmount(tc.kronor)
		require.NoError(t, err)
		assert.Equal(t, tc.want, a.Format())
	}

	assert.Equal(t, "", budget.None().Format())
}
