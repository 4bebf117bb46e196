package report

import (
	"time"

	"github.com/shopspring/decimal"
)

// accumulate walks chronologically ordered entries and pairs each with the
// running balance after it. The first row is always a synthetic opening
// balance marker (zero inflow/outflow) so consumers see an explicit
// starting point.
//
// Invariant: balance(i) = balance(i-1) + inflow(i) - outflow(i), with
// balance before the first real entry equal to the opening balance.
func accumulate(opening decimal.Decimal, periodStart time.Time, entries []LedgerEntry) []BalancedRow {
	rows := make([]BalancedRow, 0, len(entries)+1)
	rows = append(rows, BalancedRow{
		LedgerEntry: LedgerEntry{
			Date:        periodStart,
			Description: "Opening balance",
			Inflow:      decimal.Zero,
			Outflow:     decimal.Zero,
			SourceKind:  SourceOpening,
		},
		Balance: opening,
	})

	balance := opening
	for _, e := range entries {
		balance = balance.Add(e.Inflow).Sub(e.Outflow)
		rows = append(rows, BalancedRow{LedgerEntry: e, Balance: balance})
	}

	return rows
}
