package money_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/invoicely/invoicely-api/pkg/money"
)

func TestFormat(t *testing.T) {
	t.Parallel()

	f := money.New("$", "en")

	require.Equal(t, "$0.00", f.Format(0))
	require.Equal(t, "$250.00", f.Format(250))
	require.Equal(t, "$1,234.50", f.Format(1234.5))
	require.Equal(t, "$1,000,000.00", f.Format(1000000))
}

func TestFormatNonFiniteRendersZero(t *testing.T) {
	t.Parallel()

	f := money.New("$", "en")

	zero := f.Format(0)
	require.Equal(t, zero, f.Format(math.NaN()))
	require.Equal(t, zero, f.Format(math.Inf(1)))
	require.Equal(t, zero, f.Format(math.Inf(-1)))
	require.Equal(t, zero, f.Zero())
}

func TestFormatInvalidLocaleFallsBack(t *testing.T) {
	t.Parallel()

	f := money.New("$", "!!invalid!!")

	require.Equal(t, "$1,234.50", f.Format(1234.5))
}
