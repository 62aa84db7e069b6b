//go:build unit

package reservation_test

import (
	"testing"

	"oceanview/internal/domain/reservation"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var standardRates = reservation.Rates{TaxPercent: 10.0, ServiceChargePercent: 5.0}

func TestStandardPriceCalculator_Quote(t *testing.T) {
	calc := reservation.NewStandardPriceCalculator()

	t.Run("five nights without discount", func(t *testing.T) {
		quote, err := calc.Quote(15000, 5, 0, standardRates)
		require.NoError(t, err)

		assert.Equal(t, int64(75000), quote.Total.Cents())
		assert.Equal(t, int64(0), quote.Discount.Cents())
		assert.Equal(t, int64(7500), quote.Tax.Cents())
		assert.Equal(t, int64(3750), quote.Service.Cents())
		assert.Equal(t, int64(86250), quote.Final.Cents())
	})

	t.Run("discount reduces the base for tax and service", func(t *testing.T) {
		quote, err := calc.Quote(15000, 5, 10000, standardRates)
		require.NoError(t, err)

		assert.Equal(t, int64(75000), quote.Total.Cents())
		assert.Equal(t, int64(10000), quote.Discount.Cents())
		assert.Equal(t, int64(6500), quote.Tax.Cents())
		assert.Equal(t, int64(3250), quote.Service.Cents())
		assert.Equal(t, int64(74750), quote.Final.Cents())
	})

	t.Run("discount larger than total is not clamped", func(t *testing.T) {
		quote, err := calc.Quote(15000, 1, 20000, standardRates)
		require.NoError(t, err)

		assert.Equal(t, int64(15000), quote.Total.Cents())
		assert.Equal(t, int64(-500), quote.Tax.Cents())
		assert.Equal(t, int64(-250), quote.Service.Cents())
		assert.Equal(t, int64(-5750), quote.Final.Cents())
		assert.True(t, quote.Final.IsNegative())
	})

	t.Run("zero nights yields a zero quote", func(t *testing.T) {
		quote, err := calc.Quote(15000, 0, 0, standardRates)
		require.NoError(t, err)

		assert.Equal(t, int64(0), quote.Total.Cents())
		assert.Equal(t, int64(0), quote.Final.Cents())
	})

	t.Run("percent amounts round half up to the cent", func(t *testing.T) {
		// 15 cents at 10% is 1.5, rounds up to 2.
		quote, err := calc.Quote(15, 1, 0, reservation.Rates{TaxPercent: 10.0})
		require.NoError(t, err)
		assert.Equal(t, int64(2), quote.Tax.Cents())

		// 14 cents at 10% is 1.4, rounds down to 1.
		quote, err = calc.Quote(14, 1, 0, reservation.Rates{TaxPercent: 10.0})
		require.NoError(t, err)
		assert.Equal(t, int64(1), quote.Tax.Cents())

		// Negative base rounds away from zero: -1.5 becomes -2.
		quote, err = calc.Quote(0, 1, 15, reservation.Rates{TaxPercent: 10.0})
		require.NoError(t, err)
		assert.Equal(t, int64(-2), quote.Tax.Cents())
	})

	t.Run("input validation", func(t *testing.T) {
		cases := []struct {
			name     string
			rate     int64
			nights   int
			discount int64
			errIs    error
		}{
			{name: "negative nights", rate: 15000, nights: -1, discount: 0, errIs: reservation.ErrNegativeNights},
			{name: "negative rate", rate: -1, nights: 1, discount: 0, errIs: reservation.ErrNegativeRate},
			{name: "negative discount", rate: 15000, nights: 1, discount: -1, errIs: reservation.ErrNegativeDiscount},
		}
		for _, tc := range cases {
			t.Run(tc.name, func(t *testing.T) {
				_, err := calc.Quote(tc.rate, tc.nights, tc.discount, standardRates)
				assert.ErrorIs(t, err, tc.errIs)
			})
		}
	})
}
