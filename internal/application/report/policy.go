package report

import "github.com/shopspring/decimal"

// Household-business revenue ceilings below which the store owes no VAT/PIT.
// The ceiling doubles from the 2026 tax year on.
var (
	taxThresholdBefore2026 = decimal.NewFromInt(100_000_000)
	taxThresholdFrom2026   = decimal.NewFromInt(200_000_000)
)

// Rates for the distribution/retail-of-goods tier. The regulation also has
// services/construction and manufacturing/transport tiers; store-level tier
// selection was never built, so every store is taxed as goods distribution.
var (
	vatRateGoods = decimal.RequireFromString("0.01")
	pitRateGoods = decimal.RequireFromString("0.005")
)

// TaxPolicy holds the VAT/PIT treatment of a store for one tax year,
// derived from its accumulated yearly revenue. Never stored; recomputed
// per request.
type TaxPolicy struct {
	Year      int             `json:"year"`
	Threshold decimal.Decimal `json:"threshold"`
	VATRate   decimal.Decimal `json:"vat_rate"`
	PITRate   decimal.Decimal `json:"pit_rate"`
	IsExempt  bool            `json:"is_exempt"`
}

// ResolvePolicy determines the applicable tax policy for a year given the
// revenue accumulated in that year so far. Revenue exactly at the threshold
// is still exempt. Pure function of its inputs.
func ResolvePolicy(year int, accumulatedRevenue decimal.Decimal) TaxPolicy {
	threshold := taxThresholdBefore2026
	if year >= 2026 {
		threshold = taxThresholdFrom2026
	}

	policy := TaxPolicy{
		Year:      year,
		Threshold: threshold,
		VATRate:   decimal.Zero,
		PITRate:   decimal.Zero,
		IsExempt:  true,
	}

	if accumulatedRevenue.GreaterThan(threshold) {
		policy.IsExempt = false
		policy.VATRate = vatRateGoods
		policy.PITRate = pitRateGoods
	}

	return policy
}
