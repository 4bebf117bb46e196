package report

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAccumulate(t *testing.T) {
	periodStart := time.Date(2025, time.March, 1, 0, 0, 0, 0, time.UTC)
	opening := decimal.NewFromInt(1_000_000)
	entries := []LedgerEntry{
		{Date: day(5), DocumentRef: "INV-1", Inflow: decimal.NewFromInt(500_000), Outflow: decimal.Zero, SourceKind: SourceSale},
		{Date: day(10), DocumentRef: "EXP-1", Inflow: decimal.Zero, Outflow: decimal.NewFromInt(120_000), SourceKind: SourceExpense},
	}

	rows := accumulate(opening, periodStart, entries)
	require.Len(t, rows, 3)

	assert.Equal(t, SourceOpening, rows[0].SourceKind)
	assert.Equal(t, periodStart, rows[0].Date)
	assert.True(t, rows[0].Inflow.IsZero())
	assert.True(t, rows[0].Outflow.IsZero())
	assert.True(t, rows[0].Balance.Equal(opening))

	assert.True(t, rows[1].Balance.Equal(decimal.NewFromInt(1_500_000)))
	assert.True(t, rows[2].Balance.Equal(decimal.NewFromInt(1_380_000)))
}

func TestAccumulateEmptyPeriod(t *testing.T) {
	periodStart := time.Date(2025, time.March, 1, 0, 0, 0, 0, time.UTC)
	rows := accumulate(decimal.NewFromInt(42), periodStart, nil)

	require.Len(t, rows, 1)
	assert.Equal(t, SourceOpening, rows[0].SourceKind)
	assert.True(t, rows[0].Balance.Equal(decimal.NewFromInt(42)))
}

func TestAccumulateRunningBalanceInvariant(t *testing.T) {
	periodStart := time.Date(2025, time.March, 1, 0, 0, 0, 0, time.UTC)
	entries := []LedgerEntry{
		{Date: day(1), Inflow: decimal.NewFromInt(300), Outflow: decimal.Zero},
		{Date: day(2), Inflow: decimal.Zero, Outflow: decimal.NewFromInt(700)},
		{Date: day(3), Inflow: decimal.NewFromInt(50), Outflow: decimal.Zero},
	}

	rows := accumulate(decimal.NewFromInt(100), periodStart, entries)

	for i := 1; i < len(rows); i++ {
		want := rows[i-1].Balance.Add(rows[i].Inflow).Sub(rows[i].Outflow)
		assert.True(t, rows[i].Balance.Equal(want), "row %d breaks the running balance", i)
	}
	// A negative running balance is reported, never clamped.
	assert.True(t, rows[2].Balance.Equal(decimal.NewFromInt(-300)))
}
