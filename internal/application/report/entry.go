package report

import (
	"time"

	"github.com/Tanner24/cuahangtaphoa-sub001/internal/domain/enum"
	"github.com/shopspring/decimal"
)

// Channel splits money movements between the cash book and the bank book
type Channel int

const (
	ChannelCash Channel = 0
	ChannelBank Channel = 1
	ChannelAll  Channel = 2
)

func (c Channel) String() string {
	switch c {
	case ChannelCash:
		return "cash"
	case ChannelBank:
		return "bank"
	}
	return "all"
}

// channelOf maps a payment method to its money channel. Debt sales move no
// money at checkout time, so they belong to no channel.
func channelOf(m enum.PaymentMethod) (Channel, bool) {
	switch m {
	case enum.PaymentMethodCash:
		return ChannelCash, true
	case enum.PaymentMethodTransfer:
		return ChannelBank, true
	}
	return 0, false
}

// Import receipts at or above this amount are settled by bank transfer, the
// rest by cash. This is a fixed business rule, not a user choice, and it is
// applied identically to opening-balance replay and period entries.
var importBankThreshold = decimal.NewFromInt(20_000_000)

// importChannel classifies an import receipt by its total amount
func importChannel(totalAmount decimal.Decimal) Channel {
	if totalAmount.GreaterThanOrEqual(importBankThreshold) {
		return ChannelBank
	}
	return ChannelCash
}

// SourceKind tags a ledger entry with the transaction stream it came from.
// The numeric order is the tie-break order for entries on the same date.
type SourceKind int

const (
	SourceSale       SourceKind = 0
	SourceImport     SourceKind = 1
	SourceExpense    SourceKind = 2
	SourceTaxPayment SourceKind = 3
	SourceOpening    SourceKind = 4
)

func (k SourceKind) String() string {
	switch k {
	case SourceSale:
		return "sale"
	case SourceImport:
		return "import"
	case SourceExpense:
		return "expense"
	case SourceTaxPayment:
		return "tax_payment"
	case SourceOpening:
		return "opening"
	}
	return "unknown"
}

func (k SourceKind) MarshalJSON() ([]byte, error) {
	return []byte(`"` + k.String() + `"`), nil
}

// LedgerEntry is one dated movement of money derived from a source
// transaction. Exactly one of Inflow/Outflow is non-zero. Entries are
// derived fresh per report request and never persisted.
type LedgerEntry struct {
	Date        time.Time       `json:"date"`
	DocumentRef string          `json:"document_ref"`
	Description string          `json:"description"`
	Inflow      decimal.Decimal `json:"inflow"`
	Outflow     decimal.Decimal `json:"outflow"`
	SourceKind  SourceKind      `json:"source_kind"`
}

// BalancedRow is a ledger entry paired with the running balance after it
type BalancedRow struct {
	LedgerEntry
	Balance decimal.Decimal `json:"balance"`
}

// sumEntries reduces a set of entries to net inflow minus outflow
func sumEntries(entries []LedgerEntry) decimal.Decimal {
	total := decimal.Zero
	for _, e := range entries {
		total = total.Add(e.Inflow).Sub(e.Outflow)
	}
	return total
}
