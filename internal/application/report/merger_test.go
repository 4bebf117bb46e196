package report

import (
	"net/http"
	"testing"
	"time"

	"github.com/Tanner24/cuahangtaphoa-sub001/internal/domain/entity"
	"github.com/Tanner24/cuahangtaphoa-sub001/internal/domain/enum"
	"github.com/Tanner24/cuahangtaphoa-sub001/pkg/apperror"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func day(d int) time.Time {
	return time.Date(2025, time.March, d, 0, 0, 0, 0, time.UTC)
}

func TestMergeEntriesChannelPartition(t *testing.T) {
	storeID := uuid.New()
	src := mergeSources{
		Sales: []entity.SaleInvoice{
			{StoreID: storeID, Code: "INV-1", SoldAt: day(1), PaymentMethod: enum.PaymentMethodCash, TotalAmount: decimal.NewFromInt(500_000)},
			{StoreID: storeID, Code: "INV-2", SoldAt: day(2), PaymentMethod: enum.PaymentMethodTransfer, TotalAmount: decimal.NewFromInt(700_000)},
			{StoreID: storeID, Code: "INV-3", SoldAt: day(3), PaymentMethod: enum.PaymentMethodDebt, TotalAmount: decimal.NewFromInt(900_000)},
		},
		Imports: []entity.ImportReceipt{
			{StoreID: storeID, Code: "IMP-1", Supplier: "Minh Long", ImportDate: day(4), TotalAmount: decimal.NewFromInt(19_999_999)},
			{StoreID: storeID, Code: "IMP-2", Supplier: "Minh Long", ImportDate: day(5), TotalAmount: decimal.NewFromInt(20_000_000)},
		},
		Expenses: []entity.Expense{
			{StoreID: storeID, ReferenceCode: "EXP-1", Date: day(6), PaymentMethod: enum.PaymentMethodCash, Amount: decimal.NewFromInt(120_000)},
			{StoreID: storeID, ReferenceCode: "EXP-2", Date: day(7), PaymentMethod: enum.PaymentMethodTransfer, Amount: decimal.NewFromInt(80_000)},
		},
		TaxPayments: []entity.TaxPayment{
			{StoreID: storeID, ReferenceCode: "TAX-1", Date: day(8), PaymentMethod: enum.PaymentMethodTransfer, Amount: decimal.NewFromInt(15_000), TaxKind: enum.TaxKindVAT},
		},
	}

	cash, err := mergeEntries(storeID, ChannelCash, src)
	require.NoError(t, err)
	bank, err := mergeEntries(storeID, ChannelBank, src)
	require.NoError(t, err)
	all, err := mergeEntries(storeID, ChannelAll, src)
	require.NoError(t, err)

	cashRefs := refsOf(cash)
	bankRefs := refsOf(bank)

	// Every money-moving record lands in exactly one book; the debt sale
	// INV-3 lands in neither.
	assert.ElementsMatch(t, []string{"INV-1", "IMP-1", "EXP-1"}, cashRefs)
	assert.ElementsMatch(t, []string{"INV-2", "IMP-2", "EXP-2", "TAX-1"}, bankRefs)
	assert.Len(t, all, len(cash)+len(bank))
	assert.NotContains(t, refsOf(all), "INV-3")
}

func TestMergeEntriesImportChannelByAmount(t *testing.T) {
	assert.Equal(t, ChannelCash, importChannel(decimal.NewFromInt(19_999_999)))
	assert.Equal(t, ChannelBank, importChannel(decimal.NewFromInt(20_000_000)))
	assert.Equal(t, ChannelBank, importChannel(decimal.NewFromInt(35_000_000)))
}

func TestMergeEntriesOrdering(t *testing.T) {
	storeID := uuid.New()
	sameDay := day(10)
	src := mergeSources{
		Sales: []entity.SaleInvoice{
			{StoreID: storeID, Code: "INV-B", SoldAt: sameDay, PaymentMethod: enum.PaymentMethodCash, TotalAmount: decimal.NewFromInt(100)},
			{StoreID: storeID, Code: "INV-A", SoldAt: day(9), PaymentMethod: enum.PaymentMethodCash, TotalAmount: decimal.NewFromInt(200)},
		},
		Imports: []entity.ImportReceipt{
			{StoreID: storeID, Code: "IMP-X", Supplier: "Tan Phat", ImportDate: sameDay, TotalAmount: decimal.NewFromInt(300)},
		},
		Expenses: []entity.Expense{
			{StoreID: storeID, ReferenceCode: "EXP-X", Date: sameDay, PaymentMethod: enum.PaymentMethodCash, Amount: decimal.NewFromInt(50)},
		},
	}

	entries, err := mergeEntries(storeID, ChannelCash, src)
	require.NoError(t, err)

	// Date ascending; within one date sales come before imports, imports
	// before expenses.
	assert.Equal(t, []string{"INV-A", "INV-B", "IMP-X", "EXP-X"}, refsOf(entries))
}

func TestMergeEntriesIntegrityFaults(t *testing.T) {
	storeID := uuid.New()

	tests := []struct {
		name string
		src  mergeSources
	}{
		{
			"sale from another store",
			mergeSources{Sales: []entity.SaleInvoice{
				{StoreID: uuid.New(), Code: "INV-1", SoldAt: day(1), PaymentMethod: enum.PaymentMethodCash, TotalAmount: decimal.NewFromInt(100)},
			}},
		},
		{
			"sale with missing date",
			mergeSources{Sales: []entity.SaleInvoice{
				{StoreID: storeID, Code: "INV-1", PaymentMethod: enum.PaymentMethodCash, TotalAmount: decimal.NewFromInt(100)},
			}},
		},
		{
			"negative expense amount",
			mergeSources{Expenses: []entity.Expense{
				{StoreID: storeID, ReferenceCode: "EXP-1", Date: day(1), PaymentMethod: enum.PaymentMethodCash, Amount: decimal.NewFromInt(-5)},
			}},
		},
		{
			"zero expense amount",
			mergeSources{Expenses: []entity.Expense{
				{StoreID: storeID, ReferenceCode: "EXP-1", Date: day(1), PaymentMethod: enum.PaymentMethodCash, Amount: decimal.Zero},
			}},
		},
		{
			"expense paid by debt",
			mergeSources{Expenses: []entity.Expense{
				{StoreID: storeID, ReferenceCode: "EXP-1", Date: day(1), PaymentMethod: enum.PaymentMethodDebt, Amount: decimal.NewFromInt(100)},
			}},
		},
		{
			"tax payment paid by debt",
			mergeSources{TaxPayments: []entity.TaxPayment{
				{StoreID: storeID, ReferenceCode: "TAX-1", Date: day(1), PaymentMethod: enum.PaymentMethodDebt, Amount: decimal.NewFromInt(100)},
			}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := mergeEntries(storeID, ChannelAll, tt.src)
			require.Error(t, err)
			appErr := apperror.GetAppError(err)
			assert.Equal(t, http.StatusUnprocessableEntity, appErr.Code)
			assert.Contains(t, appErr.Message, "integrity")
		})
	}
}

func TestMergeEntriesAllowsZeroAmountSale(t *testing.T) {
	storeID := uuid.New()
	src := mergeSources{Sales: []entity.SaleInvoice{
		{StoreID: storeID, Code: "INV-1", SoldAt: day(1), PaymentMethod: enum.PaymentMethodCash, TotalAmount: decimal.Zero},
	}}

	entries, err := mergeEntries(storeID, ChannelCash, src)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.True(t, entries[0].Inflow.IsZero())
}

func refsOf(entries []LedgerEntry) []string {
	refs := make([]string, 0, len(entries))
	for _, e := range entries {
		refs = append(refs, e.DocumentRef)
	}
	return refs
}
