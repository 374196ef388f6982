package billing_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/invoicely/invoicely-api/pkg/billing"
)

func TestCompute(t *testing.T) {
	t.Parallel()

	items := []billing.LineItem{
		{Name: "Design work", Quantity: 2, Rate: 100},
		{Name: "Hosting", Quantity: 1, Rate: 50},
	}

	totals := billing.Compute(items, 10)

	require.InDelta(t, 250, totals.Subtotal, 1e-9)
	require.InDelta(t, 25, totals.DiscountAmount, 1e-9)
	require.InDelta(t, 225, totals.Total, 1e-9)
}

func TestComputeEmptyItems(t *testing.T) {
	t.Parallel()

	totals := billing.Compute(nil, 0)

	require.Zero(t, totals.Subtotal)
	require.Zero(t, totals.DiscountAmount)
	require.Zero(t, totals.Total)
}

func TestComputeClampsNegativeInputs(t *testing.T) {
	t.Parallel()

	items := []billing.LineItem{
		{Quantity: -3, Rate: 100},
		{Quantity: 2, Rate: -50},
		{Quantity: 4, Rate: 25},
	}

	totals := billing.Compute(items, 0)

	require.InDelta(t, 100, totals.Subtotal, 1e-9)
	require.InDelta(t, 100, totals.Total, 1e-9)
}

func TestComputeFullDiscount(t *testing.T) {
	t.Parallel()

	items := []billing.LineItem{{Quantity: 1, Rate: 99.99}}

	totals := billing.Compute(items, 100)

	require.InDelta(t, 99.99, totals.Subtotal, 1e-9)
	require.InDelta(t, 99.99, totals.DiscountAmount, 1e-9)
	require.InDelta(t, 0, totals.Total, 1e-9)
}

func TestComputeInvariants(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name     string
		items    []billing.LineItem
		discount float64
	}{
		{"no discount", []billing.LineItem{{Quantity: 3, Rate: 19.99}}, 0},
		{"half discount", []billing.LineItem{{Quantity: 7, Rate: 3.33}, {Quantity: 2, Rate: 120}}, 50},
		{"fractional discount", []billing.LineItem{{Quantity: 1, Rate: 0.01}}, 12.5},
		{"many items", manyItems(100), 33},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			totals := billing.Compute(tc.items, tc.discount)

			require.InDelta(t, totals.Total, totals.Subtotal-totals.DiscountAmount, 1e-9)
			require.LessOrEqual(t, totals.Total, totals.Subtotal+1e-9)
			require.GreaterOrEqual(t, totals.Subtotal, 0.0)
			require.GreaterOrEqual(t, totals.DiscountAmount, 0.0)
		})
	}
}

func TestComputeNoIntermediateRounding(t *testing.T) {
	t.Parallel()

	// 0.1 * 3 accumulates exactly like runtime float addition would; the
	// calculator must not round between items. The expected value is summed
	// in a variable so it carries the same accumulation error.
	items := []billing.LineItem{
		{Quantity: 1, Rate: 0.1},
		{Quantity: 1, Rate: 0.1},
		{Quantity: 1, Rate: 0.1},
	}

	totals := billing.Compute(items, 0)

	var expected float64
	for range items {
		expected += 0.1
	}
	require.Equal(t, expected, totals.Subtotal)
	require.False(t, math.Signbit(totals.Subtotal))
}

func TestClampDiscount(t *testing.T) {
	t.Parallel()

	require.Equal(t, 0.0, billing.ClampDiscount(-5))
	require.Equal(t, 100.0, billing.ClampDiscount(150))
	require.Equal(t, 42.5, billing.ClampDiscount(42.5))
}

func manyItems(n int) []billing.LineItem {
	items := make([]billing.LineItem, n)
	for i := range items {
		items[i] = billing.LineItem{Quantity: float64(i % 5), Rate: float64(i) * 1.25}
	}
	return items
}
