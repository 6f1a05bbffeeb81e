package application

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func Test_CrossCheck(t *testing.T) {
	t.Parallel()
	rates := map[string]float64{"USD": 1.0, "EUR": 0.92, "GBP": 0.79, "MAD": 9.98}
	refs := map[string]float64{"USD": 1.0, "EUR": 0.80, "GBP": 0.79}

	devs := CrossCheck(rates, refs)
	require.NotContains(t, devs, "USD", "base currency is never compared")
	require.NotContains(t, devs, "MAD", "no reference entry")
	require.InDelta(t, 15.0, devs["EUR"], 1e-9)
	require.InDelta(t, 0.0, devs["GBP"], 1e-12)
}

func Test_CrossCheck_IgnoresNonPositiveReference(t *testing.T) {
	t.Parallel()
	rates := map[string]float64{"EUR": 0.92}
	refs := map[string]float64{"EUR": 0}

	require.Empty(t, CrossCheck(rates, refs))
}

func Test_SortedCodes(t *testing.T) {
	t.Parallel()
	m := map[string]float64{"JPY": 1, "AED": 2, "EUR": 3}
	require.Equal(t, []string{"AED", "EUR", "JPY"}, sortedCodes(m))
}
