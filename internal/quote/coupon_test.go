package quote

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolveCoupon(t *testing.T) {
	t.Run("Fixed amount codes", func(t *testing.T) {
		p, err := ResolveCoupon("FIRST50")
		require.NoError(t, err)
		assert.Equal(t, DiscountTypeFixed, p.Type)
		assert.Equal(t, int64(50), p.Amount)

		p, err = ResolveCoupon("SAVE100")
		require.NoError(t, err)
		assert.Equal(t, int64(100), p.Amount)
	})

	t.Run("Percent code", func(t *testing.T) {
		p, err := ResolveCoupon("WEEKEND20")
		require.NoError(t, err)
		assert.Equal(t, DiscountTypePercent, p.Type)
		assert.Equal(t, 0.20, p.Fraction)
	})

	t.Run("Case insensitive", func(t *testing.T) {
		p, err := ResolveCoupon("first50")
		require.NoError(t, err)
		assert.Equal(t, "FIRST50", p.Code)

		_, err = ResolveCoupon("  weekend20 ")
		assert.NoError(t, err)
	})

	t.Run("Unknown code", func(t *testing.T) {
		_, err := ResolveCoupon("XYZ")
		assert.ErrorIs(t, err, ErrCouponNotFound)
	})
}

func TestApplyCoupon(t *testing.T) {
	t.Run("Percent of subtotal", func(t *testing.T) {
		discount, err := ApplyCoupon("WEEKEND20", 3000)
		require.NoError(t, err)
		assert.Equal(t, int64(600), discount)
	})

	t.Run("Fixed discount clamped to subtotal", func(t *testing.T) {
		discount, err := ApplyCoupon("SAVE100", 40)
		require.NoError(t, err)
		assert.Equal(t, int64(40), discount)
	})

	t.Run("Zero subtotal yields zero discount", func(t *testing.T) {
		discount, err := ApplyCoupon("FIRST50", 0)
		require.NoError(t, err)
		assert.Equal(t, int64(0), discount)
	})

	t.Run("Unknown code leaves caller state untouched", func(t *testing.T) {
		discount, err := ApplyCoupon("XYZ", 3000)
		assert.ErrorIs(t, err, ErrCouponNotFound)
		assert.Equal(t, int64(0), discount)
	})
}

func TestDiscountFor_ClampLaw(t *testing.T) {
	subtotals := []int64{0, 1, 49, 50, 99, 100, 500, 3000}
	for _, subtotal := range subtotals {
		for code := range couponPolicies {
			p, err := ResolveCoupon(code)
			require.NoError(t, err)
			d := p.DiscountFor(subtotal)
			assert.GreaterOrEqual(t, d, int64(0))
			assert.LessOrEqual(t, d, subtotal)
		}
	}
}
