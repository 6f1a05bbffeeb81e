package domain

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func Test_Classify(t *testing.T) {
	t.Parallel()
	table := BoundsTable{"EUR": {0.50, 1.50}}

	require.Equal(t, BoundsPass, table.Classify("EUR", 0.92))
	require.Equal(t, BoundsFail, table.Classify("EUR", 3.2))
	require.Equal(t, BoundsFail, table.Classify("EUR", 0.01))
	require.Equal(t, BoundsNoBounds, table.Classify("XAU", 1900))
}

func Test_Classify_EndpointsInclusive(t *testing.T) {
	t.Parallel()
	table := BoundsTable{"EUR": {0.50, 1.50}}

	require.Equal(t, BoundsPass, table.Classify("EUR", 0.50))
	require.Equal(t, BoundsPass, table.Classify("EUR", 1.50))
}

func Test_Classify_Idempotent(t *testing.T) {
	t.Parallel()
	first := RateBounds.Classify("JPY", 148.12)
	for i := 0; i < 3; i++ {
		require.Equal(t, first, RateBounds.Classify("JPY", 148.12))
	}
}

func Test_RateBounds_WellFormed(t *testing.T) {
	t.Parallel()
	for code, b := range RateBounds {
		require.Greater(t, b.Low, 0.0, code)
		require.Less(t, b.Low, b.High, code)
	}
}
