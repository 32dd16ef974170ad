package types

// Flat two-tier pricing in minor currency units (usd cents).
// The discounted tier is exactly half the standard tier.
const (
	PriceStandardMinor int64 = 1700
	PriceDiscountMinor int64 = 850

	ReferralDiscountPercent = 50
)

func PriceMinor(discountApplied bool) int64 {
	if discountApplied {
		return PriceDiscountMinor
	}
	return PriceStandardMinor
}

// PriceMajor converts a minor-unit amount to major units for display.
func PriceMajor(minor int64) float64 {
	return float64(minor) / 100
}
