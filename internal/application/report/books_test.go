package report

import (
	"context"
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

func TestBuildInventoryBook(t *testing.T) {
	storeID := uuid.New()
	riceID := uuid.New()
	oilID := uuid.New()
	products := map[uuid.UUID]entity.Product{
		riceID: {ID: riceID, Name: "Rice 5kg", Unit: "bag"},
		oilID:  {ID: oilID, Name: "Cooking oil 1L", Unit: "bottle"},
	}
	ledger := &fakeLedger{
		imports: []entity.ImportReceipt{
			{StoreID: storeID, Code: "IMP-1", Supplier: "Tan Phat", ImportDate: day(2), TotalAmount: decimal.NewFromInt(1_000_000), Items: []entity.ImportItem{
				{ProductID: riceID, Quantity: 10},
				{ProductID: oilID, Quantity: 20},
			}},
		},
		sales: []entity.SaleInvoice{
			{StoreID: storeID, Code: "INV-1", SoldAt: day(2), PaymentMethod: enum.PaymentMethodCash, TotalAmount: decimal.NewFromInt(300_000), Items: []entity.SaleItem{
				{ProductID: riceID, Quantity: 3},
			}},
			{StoreID: storeID, Code: "INV-2", SoldAt: day(8), PaymentMethod: enum.PaymentMethodCash, TotalAmount: decimal.NewFromInt(100_000), Items: []entity.SaleItem{
				{ProductID: riceID, Quantity: 2},
				{ProductID: oilID, Quantity: 5},
			}},
		},
	}
	productRepo := &fakeProductRepo{products: products}
	svc := NewReportService(ledger, productRepo)

	rpt, err := svc.BuildReport(context.Background(), storeID, 3, 2025, enum.BookInventory)
	require.NoError(t, err)

	rows := rpt.Rows.([]InventoryRow)
	require.Len(t, rows, 5)

	// Imports on a date are booked before sales on the same date.
	assert.Equal(t, "IMP-1", rows[0].DocumentRef)
	assert.Equal(t, "Rice 5kg", rows[0].ProductName)
	assert.Equal(t, "bag", rows[0].Unit)
	assert.Equal(t, 10, rows[0].StockAfter)
	assert.Equal(t, 20, rows[1].StockAfter)

	assert.Equal(t, "INV-1", rows[2].DocumentRef)
	assert.Equal(t, 3, rows[2].QuantityOut)
	assert.Equal(t, 7, rows[2].StockAfter)

	assert.Equal(t, 5, rows[3].StockAfter)
	assert.Equal(t, 15, rows[4].StockAfter)

	// All product names resolved with one batched lookup.
	assert.Equal(t, 1, productRepo.batches)
}

func TestBuildInventoryBookRejectsForeignReceipt(t *testing.T) {
	storeID := uuid.New()
	riceID := uuid.New()
	svc := newTestService(&fakeLedger{}, map[uuid.UUID]entity.Product{
		riceID: {ID: riceID, Name: "Rice 5kg", Unit: "bag"},
	})

	rows, err := svc.buildInventoryBook(context.Background(), storeID, nil, []entity.ImportReceipt{
		{StoreID: uuid.New(), Code: "IMP-9", Supplier: "Tan Phat", ImportDate: day(2), TotalAmount: decimal.NewFromInt(600_000), Items: []entity.ImportItem{
			{ProductID: riceID, Quantity: 5},
		}},
	})
	require.Error(t, err)
	assert.Nil(t, rows)

	appErr := apperror.GetAppError(err)
	assert.Equal(t, http.StatusUnprocessableEntity, appErr.Code)
	assert.Contains(t, appErr.Message, "belongs to another store")
}

func TestBuildExpenseBook(t *testing.T) {
	storeID := uuid.New()
	ledger := &fakeLedger{
		expenses: []entity.Expense{
			{StoreID: storeID, ReferenceCode: "EXP-2", Date: day(12), PaymentMethod: enum.PaymentMethodTransfer, Amount: decimal.NewFromInt(80_000), Category: enum.ExpenseCategoryWater},
			{StoreID: storeID, ReferenceCode: "EXP-1", Date: day(4), PaymentMethod: enum.PaymentMethodCash, Amount: decimal.NewFromInt(120_000), Category: enum.ExpenseCategoryElectricity, Description: "March electricity bill"},
		},
	}
	svc := newTestService(ledger, nil)

	rpt, err := svc.BuildReport(context.Background(), storeID, 3, 2025, enum.BookExpense)
	require.NoError(t, err)

	rows := rpt.Rows.([]ExpenseRow)
	require.Len(t, rows, 2)
	assert.Equal(t, "EXP-1", rows[0].ReferenceCode)
	assert.Equal(t, "March electricity bill", rows[0].Description)
	assert.Equal(t, "EXP-2", rows[1].ReferenceCode)
}

func TestBuildTaxPaymentBook(t *testing.T) {
	storeID := uuid.New()
	ledger := &fakeLedger{
		taxPayments: []entity.TaxPayment{
			{StoreID: storeID, ReferenceCode: "TAX-1", Date: day(20), PaymentMethod: enum.PaymentMethodTransfer, Amount: decimal.NewFromInt(45_000), TaxKind: enum.TaxKindVAT},
		},
	}
	svc := newTestService(ledger, nil)

	rpt, err := svc.BuildReport(context.Background(), storeID, 3, 2025, enum.BookTaxPayment)
	require.NoError(t, err)

	rows := rpt.Rows.([]TaxPaymentRow)
	require.Len(t, rows, 1)
	assert.Equal(t, enum.TaxKindVAT, rows[0].TaxKind)
	assert.True(t, rows[0].Amount.Equal(decimal.NewFromInt(45_000)))
}

func TestBuildSalaryBook(t *testing.T) {
	storeID := uuid.New()
	payDate := time.Date(2025, time.March, 31, 0, 0, 0, 0, time.UTC)
	ledger := &fakeLedger{
		salaries: []entity.SalaryPayment{
			{StoreID: storeID, Month: 3, Year: 2025, EmployeeName: "Tran Binh", BaseSalary: decimal.NewFromInt(6_000_000), Bonus: decimal.NewFromInt(500_000), Deduction: decimal.NewFromInt(200_000), TotalAmount: decimal.NewFromInt(6_300_000), PaymentDate: payDate},
			{StoreID: storeID, Month: 3, Year: 2025, EmployeeName: "Le An", BaseSalary: decimal.NewFromInt(5_000_000), Bonus: decimal.Zero, Deduction: decimal.Zero, TotalAmount: decimal.NewFromInt(5_000_000), PaymentDate: payDate},
			// A neighboring period must not leak in.
			{StoreID: storeID, Month: 2, Year: 2025, EmployeeName: "Le An", BaseSalary: decimal.NewFromInt(5_000_000), Bonus: decimal.Zero, Deduction: decimal.Zero, TotalAmount: decimal.NewFromInt(5_000_000), PaymentDate: payDate.AddDate(0, -1, 0)},
		},
	}
	svc := newTestService(ledger, nil)

	rpt, err := svc.BuildReport(context.Background(), storeID, 3, 2025, enum.BookSalary)
	require.NoError(t, err)

	rows := rpt.Rows.([]SalaryRow)
	require.Len(t, rows, 2)
	assert.Equal(t, "Le An", rows[0].EmployeeName)
	assert.Equal(t, "Tran Binh", rows[1].EmployeeName)
	assert.True(t, rows[1].TotalAmount.Equal(decimal.NewFromInt(6_300_000)))
}

func TestBuildSalaryBookInconsistentTotal(t *testing.T) {
	storeID := uuid.New()
	ledger := &fakeLedger{
		salaries: []entity.SalaryPayment{
			{StoreID: storeID, Month: 3, Year: 2025, EmployeeName: "Le An", BaseSalary: decimal.NewFromInt(5_000_000), Bonus: decimal.NewFromInt(300_000), Deduction: decimal.Zero, TotalAmount: decimal.NewFromInt(9_999_999), PaymentDate: day(31)},
		},
	}
	svc := newTestService(ledger, nil)

	_, err := svc.BuildReport(context.Background(), storeID, 3, 2025, enum.BookSalary)
	require.Error(t, err)

	appErr := apperror.GetAppError(err)
	assert.Equal(t, http.StatusUnprocessableEntity, appErr.Code)
	assert.Contains(t, appErr.Message, "inconsistent total")
}
