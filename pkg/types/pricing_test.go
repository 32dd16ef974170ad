package types

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestPriceMinor(t *testing.T) {
	require.Equal(t, int64(1700), PriceMinor(false))
	require.Equal(t, int64(850), PriceMinor(true))
}

func TestDiscountIsHalfPrice(t *testing.T) {
	require.Equal(t, PriceStandardMinor/2, PriceDiscountMinor)
	require.Equal(t, 50, ReferralDiscountPercent)
}

func TestPriceMajor(t *testing.T) {
	require.Equal(t, 17.0, PriceMajor(PriceStandardMinor))
	require.Equal(t, 8.5, PriceMajor(PriceDiscountMinor))
}
