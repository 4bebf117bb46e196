package report

import (
	"fmt"
	"sort"
	"time"

	"github.com/Tanner24/cuahangtaphoa-sub001/internal/domain/entity"
	"github.com/Tanner24/cuahangtaphoa-sub001/pkg/apperror"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// mergeSources holds the raw transaction streams for one store and one date
// range, as fetched from the ledger query in a single snapshot.
type mergeSources struct {
	Sales       []entity.SaleInvoice
	Imports     []entity.ImportReceipt
	Expenses    []entity.Expense
	TaxPayments []entity.TaxPayment
}

// mergeEntries transforms the source streams into one chronologically
// ordered list of ledger entries for the requested channel.
//
// Ordering is date ascending; entries on the same date keep the fixed
// source order (sales, imports, expenses, tax payments) and within one
// source the fetch order, so a fixed input set always produces the same
// report.
//
// A record with a missing date, an invalid amount or a foreign store ID
// fails the whole merge: opening-balance correctness depends on every
// historical record being booked, so silently dropping one would corrupt
// the running balance.
func mergeEntries(storeID uuid.UUID, ch Channel, src mergeSources) ([]LedgerEntry, error) {
	entries := make([]LedgerEntry, 0, len(src.Sales)+len(src.Imports)+len(src.Expenses)+len(src.TaxPayments))

	for _, inv := range src.Sales {
		if err := checkRecord(storeID, inv.StoreID, "sale invoice", inv.Code, inv.SoldAt, inv.TotalAmount, false); err != nil {
			return nil, err
		}
		invCh, moved := channelOf(inv.PaymentMethod)
		if !moved || !matchesChannel(ch, invCh) {
			continue
		}
		entries = append(entries, LedgerEntry{
			Date:        inv.SoldAt,
			DocumentRef: inv.Code,
			Description: "Revenue receipt " + inv.Code,
			Inflow:      inv.TotalAmount,
			Outflow:     decimal.Zero,
			SourceKind:  SourceSale,
		})
	}

	for _, rcp := range src.Imports {
		if err := checkRecord(storeID, rcp.StoreID, "import receipt", rcp.Code, rcp.ImportDate, rcp.TotalAmount, true); err != nil {
			return nil, err
		}
		if !matchesChannel(ch, importChannel(rcp.TotalAmount)) {
			continue
		}
		entries = append(entries, LedgerEntry{
			Date:        rcp.ImportDate,
			DocumentRef: rcp.Code,
			Description: fmt.Sprintf("Goods import %s from %s", rcp.Code, rcp.Supplier),
			Inflow:      decimal.Zero,
			Outflow:     rcp.TotalAmount,
			SourceKind:  SourceImport,
		})
	}

	for _, exp := range src.Expenses {
		if err := checkRecord(storeID, exp.StoreID, "expense", exp.ReferenceCode, exp.Date, exp.Amount, true); err != nil {
			return nil, err
		}
		expCh, moved := channelOf(exp.PaymentMethod)
		if !moved {
			return nil, apperror.NewDataIntegrityError(
				fmt.Sprintf("expense %s has unsupported payment method %s", exp.ReferenceCode, exp.PaymentMethod))
		}
		if !matchesChannel(ch, expCh) {
			continue
		}
		desc := exp.Description
		if desc == "" {
			desc = exp.Category.String() + " expense"
		}
		entries = append(entries, LedgerEntry{
			Date:        exp.Date,
			DocumentRef: exp.ReferenceCode,
			Description: desc,
			Inflow:      decimal.Zero,
			Outflow:     exp.Amount,
			SourceKind:  SourceExpense,
		})
	}

	for _, pay := range src.TaxPayments {
		if err := checkRecord(storeID, pay.StoreID, "tax payment", pay.ReferenceCode, pay.Date, pay.Amount, true); err != nil {
			return nil, err
		}
		payCh, moved := channelOf(pay.PaymentMethod)
		if !moved {
			return nil, apperror.NewDataIntegrityError(
				fmt.Sprintf("tax payment %s has unsupported payment method %s", pay.ReferenceCode, pay.PaymentMethod))
		}
		if !matchesChannel(ch, payCh) {
			continue
		}
		desc := pay.Description
		if desc == "" {
			desc = pay.TaxKind.String() + " tax payment"
		}
		entries = append(entries, LedgerEntry{
			Date:        pay.Date,
			DocumentRef: pay.ReferenceCode,
			Description: desc,
			Inflow:      decimal.Zero,
			Outflow:     pay.Amount,
			SourceKind:  SourceTaxPayment,
		})
	}

	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].Date.Before(entries[j].Date)
	})

	return entries, nil
}

// matchesChannel reports whether an entry on channel got belongs to a book
// requested for channel want
func matchesChannel(want, got Channel) bool {
	return want == ChannelAll || want == got
}

// checkRecord validates one source record before it is booked. requirePositive
// distinguishes vouchers whose amount must be strictly positive from sales,
// where a zero-amount invoice is legal.
func checkRecord(wantStore, gotStore uuid.UUID, kind, ref string, date time.Time, amount decimal.Decimal, requirePositive bool) error {
	if gotStore != wantStore {
		return apperror.NewDataIntegrityError(fmt.Sprintf("%s %s belongs to another store", kind, ref))
	}
	if date.IsZero() {
		return apperror.NewDataIntegrityError(fmt.Sprintf("%s %s is missing its date", kind, ref))
	}
	if amount.IsNegative() {
		return apperror.NewDataIntegrityError(fmt.Sprintf("%s %s has a negative amount", kind, ref))
	}
	if requirePositive && amount.IsZero() {
		return apperror.NewDataIntegrityError(fmt.Sprintf("%s %s is missing its amount", kind, ref))
	}
	return nil
}
