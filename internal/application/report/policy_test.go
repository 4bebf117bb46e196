package report

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestResolvePolicy(t *testing.T) {
	tests := []struct {
		name        string
		year        int
		accumulated string
		wantExempt  bool
		threshold   string
	}{
		{"below threshold 2025", 2025, "99000000", true, "100000000"},
		{"exactly at threshold 2025", 2025, "100000000", true, "100000000"},
		{"one dong over threshold 2025", 2025, "100000000.01", false, "100000000"},
		{"well over threshold 2025", 2025, "150000000", false, "100000000"},
		{"doubled threshold applies from 2026", 2026, "150000000", true, "200000000"},
		{"exactly at threshold 2026", 2026, "200000000", true, "200000000"},
		{"one dong over threshold 2026", 2026, "200000000.01", false, "200000000"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			policy := ResolvePolicy(tt.year, decimal.RequireFromString(tt.accumulated))

			assert.Equal(t, tt.wantExempt, policy.IsExempt)
			assert.True(t, policy.Threshold.Equal(decimal.RequireFromString(tt.threshold)))
			if tt.wantExempt {
				assert.True(t, policy.VATRate.IsZero())
				assert.True(t, policy.PITRate.IsZero())
			} else {
				assert.True(t, policy.VATRate.Equal(decimal.RequireFromString("0.01")))
				assert.True(t, policy.PITRate.Equal(decimal.RequireFromString("0.005")))
			}
		})
	}
}

func TestResolvePolicyTaxAmounts(t *testing.T) {
	policy := ResolvePolicy(2025, decimal.NewFromInt(150_000_000))

	revenue := decimal.NewFromInt(1_000_000)
	assert.True(t, revenue.Mul(policy.VATRate).Equal(decimal.NewFromInt(10_000)))
	assert.True(t, revenue.Mul(policy.PITRate).Equal(decimal.NewFromInt(5_000)))
}
