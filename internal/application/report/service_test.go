package report

import (
	"context"
	"encoding/json"
	"errors"
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

func newTestService(ledger *fakeLedger, products map[uuid.UUID]entity.Product) *ReportService {
	return NewReportService(ledger, &fakeProductRepo{products: products})
}

func TestBuildReportCashBook(t *testing.T) {
	storeID := uuid.New()
	ledger := &fakeLedger{
		sales: []entity.SaleInvoice{
			// Prior history forming the opening balance.
			{StoreID: storeID, Code: "INV-0", SoldAt: time.Date(2025, time.February, 20, 0, 0, 0, 0, time.UTC), PaymentMethod: enum.PaymentMethodCash, TotalAmount: decimal.NewFromInt(1_000_000)},
			// Period activity.
			{StoreID: storeID, Code: "INV-1", SoldAt: day(5), PaymentMethod: enum.PaymentMethodCash, TotalAmount: decimal.NewFromInt(500_000)},
			// A transfer sale must not leak into the cash book.
			{StoreID: storeID, Code: "INV-2", SoldAt: day(6), PaymentMethod: enum.PaymentMethodTransfer, TotalAmount: decimal.NewFromInt(900_000)},
		},
		expenses: []entity.Expense{
			{StoreID: storeID, ReferenceCode: "EXP-1", Date: day(10), PaymentMethod: enum.PaymentMethodCash, Amount: decimal.NewFromInt(120_000), Category: enum.ExpenseCategoryElectricity},
		},
	}
	svc := newTestService(ledger, nil)

	rpt, err := svc.BuildReport(context.Background(), storeID, 3, 2025, enum.BookCash)
	require.NoError(t, err)

	rows, ok := rpt.Rows.([]BalancedRow)
	require.True(t, ok)
	require.Len(t, rows, 3)

	assert.Equal(t, SourceOpening, rows[0].SourceKind)
	assert.True(t, rows[0].Balance.Equal(decimal.NewFromInt(1_000_000)))
	assert.Equal(t, "INV-1", rows[1].DocumentRef)
	assert.True(t, rows[1].Balance.Equal(decimal.NewFromInt(1_500_000)))
	assert.Equal(t, "EXP-1", rows[2].DocumentRef)
	assert.True(t, rows[2].Balance.Equal(decimal.NewFromInt(1_380_000)))

	// Conservation: closing balance equals opening plus the period net.
	net := decimal.Zero
	for _, r := range rows[1:] {
		net = net.Add(r.Inflow).Sub(r.Outflow)
	}
	assert.True(t, rows[len(rows)-1].Balance.Equal(rows[0].Balance.Add(net)))
}

func TestBuildReportBalanceContinuity(t *testing.T) {
	storeID := uuid.New()
	ledger := &fakeLedger{
		sales: []entity.SaleInvoice{
			{StoreID: storeID, Code: "INV-J", SoldAt: time.Date(2025, time.January, 15, 0, 0, 0, 0, time.UTC), PaymentMethod: enum.PaymentMethodCash, TotalAmount: decimal.NewFromInt(1_000_000)},
			{StoreID: storeID, Code: "INV-M", SoldAt: day(3), PaymentMethod: enum.PaymentMethodCash, TotalAmount: decimal.NewFromInt(200_000)},
		},
		expenses: []entity.Expense{
			{StoreID: storeID, ReferenceCode: "EXP-F", Date: time.Date(2025, time.February, 10, 0, 0, 0, 0, time.UTC), PaymentMethod: enum.PaymentMethodCash, Amount: decimal.NewFromInt(400_000)},
		},
	}
	svc := newTestService(ledger, nil)

	feb, err := svc.BuildReport(context.Background(), storeID, 2, 2025, enum.BookCash)
	require.NoError(t, err)
	mar, err := svc.BuildReport(context.Background(), storeID, 3, 2025, enum.BookCash)
	require.NoError(t, err)

	febRows := feb.Rows.([]BalancedRow)
	marRows := mar.Rows.([]BalancedRow)

	closing := febRows[len(febRows)-1].Balance
	opening := marRows[0].Balance
	assert.True(t, closing.Equal(opening), "February closing %s != March opening %s", closing, opening)
	assert.True(t, opening.Equal(decimal.NewFromInt(600_000)))
}

func TestBuildReportIdempotent(t *testing.T) {
	storeID := uuid.New()
	ledger := &fakeLedger{
		sales: []entity.SaleInvoice{
			{StoreID: storeID, Code: "INV-1", SoldAt: day(5), PaymentMethod: enum.PaymentMethodCash, TotalAmount: decimal.NewFromInt(500_000)},
		},
		imports: []entity.ImportReceipt{
			{StoreID: storeID, Code: "IMP-1", Supplier: "Tan Phat", ImportDate: day(7), TotalAmount: decimal.NewFromInt(250_000)},
		},
	}
	svc := newTestService(ledger, nil)

	first, err := svc.BuildReport(context.Background(), storeID, 3, 2025, enum.BookCash)
	require.NoError(t, err)
	second, err := svc.BuildReport(context.Background(), storeID, 3, 2025, enum.BookCash)
	require.NoError(t, err)

	firstJSON, err := json.Marshal(first)
	require.NoError(t, err)
	secondJSON, err := json.Marshal(second)
	require.NoError(t, err)
	assert.JSONEq(t, string(firstJSON), string(secondJSON))
}

func TestBuildReportValidation(t *testing.T) {
	svc := newTestService(&fakeLedger{}, nil)

	_, err := svc.BuildReport(context.Background(), uuid.Nil, 13, 1999, enum.BookType("s9"))
	require.Error(t, err)

	appErr := apperror.GetAppError(err)
	assert.Equal(t, http.StatusUnprocessableEntity, appErr.Code)
	require.Len(t, appErr.Errors, 4)

	fields := make([]string, 0, len(appErr.Errors))
	for _, fe := range appErr.Errors {
		fields = append(fields, fe.Field)
	}
	assert.ElementsMatch(t, []string{"store_id", "month", "year", "book"}, fields)
}

func TestBuildReportUpstreamFailure(t *testing.T) {
	svc := newTestService(&fakeLedger{snapshotErr: errors.New("connection refused")}, nil)

	_, err := svc.BuildReport(context.Background(), uuid.New(), 3, 2025, enum.BookCash)
	require.Error(t, err)

	appErr := apperror.GetAppError(err)
	assert.Equal(t, http.StatusServiceUnavailable, appErr.Code)
	assert.Contains(t, appErr.Message, "unavailable")
}

func TestBuildReportSnapshotConsistencyFault(t *testing.T) {
	// A snapshot that fails to start surfaces as the 500 consistency
	// fault, not wrapped into a 503.
	ledger := &fakeLedger{snapshotErr: apperror.NewConsistencyError("snapshot transaction could not be started")}
	svc := newTestService(ledger, nil)

	_, err := svc.BuildReport(context.Background(), uuid.New(), 3, 2025, enum.BookCash)
	require.Error(t, err)

	appErr := apperror.GetAppError(err)
	assert.Equal(t, http.StatusInternalServerError, appErr.Code)
	assert.Contains(t, appErr.Message, "consistency")
}

func TestBuildReportSingleSnapshot(t *testing.T) {
	storeID := uuid.New()
	ledger := &fakeLedger{
		sales: []entity.SaleInvoice{
			{StoreID: storeID, Code: "INV-1", SoldAt: day(5), PaymentMethod: enum.PaymentMethodCash, TotalAmount: decimal.NewFromInt(100)},
		},
	}
	svc := newTestService(ledger, nil)

	_, err := svc.BuildReport(context.Background(), storeID, 3, 2025, enum.BookCash)
	require.NoError(t, err)
	assert.Equal(t, 1, ledger.snapshots)
}

func TestBuildReportRevenueBookTaxed(t *testing.T) {
	storeID := uuid.New()
	customer := "Chi Hoa"
	ledger := &fakeLedger{
		sales: []entity.SaleInvoice{
			// January revenue pushes the year over the 100M threshold.
			{StoreID: storeID, Code: "INV-J", SoldAt: time.Date(2025, time.January, 10, 0, 0, 0, 0, time.UTC), PaymentMethod: enum.PaymentMethodTransfer, TotalAmount: decimal.NewFromInt(150_000_000)},
			{StoreID: storeID, Code: "INV-1", SoldAt: day(5), PaymentMethod: enum.PaymentMethodCash, TotalAmount: decimal.NewFromInt(1_000_000), CustomerName: &customer},
			// Debt sales are revenue at sale time even though no money moved.
			{StoreID: storeID, Code: "INV-2", SoldAt: day(6), PaymentMethod: enum.PaymentMethodDebt, TotalAmount: decimal.NewFromInt(2_000_000)},
		},
	}
	svc := newTestService(ledger, nil)

	rpt, err := svc.BuildReport(context.Background(), storeID, 3, 2025, enum.BookRevenue)
	require.NoError(t, err)

	assert.False(t, rpt.Summary.IsExempt)
	assert.True(t, rpt.Summary.TotalRevenue.Equal(decimal.NewFromInt(3_000_000)))
	assert.True(t, rpt.Summary.AccumulatedRevenue.Equal(decimal.NewFromInt(153_000_000)))
	assert.True(t, rpt.Summary.VATAmount.Equal(decimal.NewFromInt(30_000)))
	assert.True(t, rpt.Summary.PITAmount.Equal(decimal.NewFromInt(15_000)))
	assert.True(t, rpt.Summary.TotalTax.Equal(decimal.NewFromInt(45_000)))

	rows := rpt.Rows.([]RevenueRow)
	require.Len(t, rows, 2)
	assert.Equal(t, "Chi Hoa", rows[0].Buyer)
	assert.True(t, rows[0].VATAmount.Equal(decimal.NewFromInt(10_000)))
	assert.True(t, rows[0].PITAmount.Equal(decimal.NewFromInt(5_000)))
	assert.Equal(t, "Walk-in customer", rows[1].Buyer)
}

func TestBuildSummaryExemptAtThreshold(t *testing.T) {
	storeID := uuid.New()
	ledger := &fakeLedger{
		sales: []entity.SaleInvoice{
			{StoreID: storeID, Code: "INV-1", SoldAt: day(5), PaymentMethod: enum.PaymentMethodCash, TotalAmount: decimal.NewFromInt(100_000_000)},
		},
	}
	svc := newTestService(ledger, nil)

	sum, err := svc.BuildSummary(context.Background(), storeID, 3, 2025)
	require.NoError(t, err)

	assert.True(t, sum.IsExempt)
	assert.True(t, sum.VATAmount.IsZero())
	assert.True(t, sum.PITAmount.IsZero())
	assert.True(t, sum.TaxThreshold.Equal(decimal.NewFromInt(100_000_000)))
}
